// Package field holds the secp256k1 domain constants and the small
// set of helpers layered on bigint.Int to keep values canonical in
// [0, p): reduction, modular inverse, and uniform scalar sampling.
package field

import (
	"errors"

	"github.com/sammyne/koblitz-elgamal/bigint"
)

// ErrNoInverse is returned by Inverse when a has no multiplicative
// inverse modulo p (gcd(a, p) != 1) — the typed replacement for the
// original source's sentinel -1 return.
var ErrNoInverse = errors.New("field: no modular inverse exists")

func mustHex(s string) *bigint.Int {
	v, err := bigint.FromHex(s)
	if err != nil {
		panic("field: invalid hex constant: " + s)
	}
	return v
}

var (
	// P is the secp256k1 field prime.
	P = mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")

	// A and B are the curve coefficients of y² = x³ + A·x + B; for
	// secp256k1, A = 0 and B = 7.
	A = bigint.Zero()
	B = bigint.NewInt(7)

	// Gx and Gy are the generator point's coordinates. These are
	// reproduced verbatim from the source this system is derived
	// from, which carries a generator that is only 128 bits wide in
	// each coordinate rather than the standard secp256k1 generator's
	// full 256-bit coordinates. This is a documented deviation (see
	// DESIGN.md), not a bug fixed in translation.
	Gx = mustHex("79BE667EF9DCBBAC55A06295CE870B07")
	Gy = mustHex("029BFCDB2DCE28D959F2815B16F81798")

	// DefaultD is the private scalar used when the CLI is invoked
	// without a --key file.
	DefaultD = mustHex("dc4f177f659f561f638d88ed9f1f60a7932bdcbb59fed59e460a7949d43547dc")
)

const (
	// BlockSize is the maximum number of plaintext bytes embedded
	// into a single curve point.
	BlockSize = 30

	// K bounds the number of x-candidates Koblitz embedding tries
	// before giving up, and scales the embedded x-coordinate so the
	// original chunk can be recovered by integer division.
	K = 40
)

// Reduce canonicalizes x into [0, p) regardless of the sign bigint's
// truncated-toward-zero Mod left behind.
func Reduce(x *bigint.Int) *bigint.Int {
	r := x.Mod(P)
	if r.Sign() < 0 {
		r = r.Add(P)
	}
	return r
}

// Inverse returns the multiplicative inverse of a modulo p via the
// iterative extended Euclidean algorithm, tracking the remainders
// (r0,r1) and their coefficients of a (s0,s1) until r1 reaches zero;
// gcd = r0. Returns ErrNoInverse when gcd(a, p) != 1.
func Inverse(a *bigint.Int) (*bigint.Int, error) {
	r0, r1 := Reduce(a), P
	s0, s1 := bigint.One(), bigint.Zero()

	for r1.Sign() != 0 {
		q := r0.Div(r1)
		r0, r1 = r1, r0.Sub(q.Mul(r1))
		s0, s1 = s1, s0.Sub(q.Mul(s1))
	}

	if !r0.Equal(bigint.One()) {
		return nil, ErrNoInverse
	}
	return Reduce(s0), nil
}

// Sample draws a uniformly distributed field element: a 256-bit
// random draw reduced mod p. As with the original design, a 256-bit
// uniform value modulo p is slightly biased toward the low end of
// [0, p); the scheme tolerates this bias.
func Sample() (*bigint.Int, error) {
	r, err := bigint.Random(256)
	if err != nil {
		return nil, err
	}
	return Reduce(r), nil
}
