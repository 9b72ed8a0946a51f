// Package elgamal implements ElGamal encryption over the secp256k1
// group: the ciphertext of a message point M under public key Q is
// (C1, C2) = (M + r·Q, r·G) for a random ephemeral scalar r;
// decryption recovers M as C1 - d·C2 for the matching private
// scalar d.
package elgamal

import (
	"github.com/sammyne/koblitz-elgamal/bigint"
	"github.com/sammyne/koblitz-elgamal/curve"
	"github.com/sammyne/koblitz-elgamal/field"
)

// Generator returns the secp256k1 base point G.
func Generator() curve.Point {
	return curve.New(field.Gx, field.Gy)
}

// Encrypt returns the ciphertext (C1, C2) of message under the public
// key q, sampling its own ephemeral scalar r via field.Sample.
func Encrypt(message, q curve.Point) (c1, c2 curve.Point, err error) {
	r, err := field.Sample()
	if err != nil {
		return curve.Point{}, curve.Point{}, err
	}
	return EncryptWithScalar(message, q, r)
}

// EncryptWithScalar is Encrypt with an explicit ephemeral scalar,
// exposed so the round-trip property (decrypt(encrypt(M,Q,r),d)==M
// for all M, r) can be tested deterministically.
func EncryptWithScalar(message, q curve.Point, r *bigint.Int) (c1, c2 curve.Point, err error) {
	g := Generator()
	c2, err = curve.ScalarMul(g, r)
	if err != nil {
		return curve.Point{}, curve.Point{}, err
	}
	rQ, err := curve.ScalarMul(q, r)
	if err != nil {
		return curve.Point{}, curve.Point{}, err
	}
	c1, err = curve.Add(message, rQ)
	if err != nil {
		return curve.Point{}, curve.Point{}, err
	}
	return c1, c2, nil
}

// Decrypt recovers the message point from a ciphertext (c1, c2) and
// the private scalar d: M = C1 - d·C2.
func Decrypt(c1, c2 curve.Point, d *bigint.Int) (curve.Point, error) {
	dC2, err := curve.ScalarMul(c2, d)
	if err != nil {
		return curve.Point{}, err
	}
	return curve.Add(c1, dC2.Negate())
}

// GenerateKeyPair samples a fresh private scalar d in [1, p-1] and
// computes the matching public key Q = d·G.
func GenerateKeyPair() (d *bigint.Int, q curve.Point, err error) {
	d, err = field.Sample()
	if err != nil {
		return nil, curve.Point{}, err
	}
	if d.Sign() == 0 {
		d = bigint.One()
	}
	q, err = curve.ScalarMul(Generator(), d)
	if err != nil {
		return nil, curve.Point{}, err
	}
	return d, q, nil
}
