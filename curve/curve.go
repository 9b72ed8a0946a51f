// Package curve implements the affine chord-and-tangent group law for
// a short Weierstrass curve y² = x³ + A·x + B (mod p) over the field
// defined in package field. The group law itself only depends on A
// (the tangent slope at doubling uses 3x²+A; B never appears), so Add
// and ScalarMul are correct for whatever curve a point's (x, y)
// actually satisfies. This matters because field.Gx/Gy (the §3
// truncated-generator deviation) do not lie on the nominal
// y²=x³+7 secp256k1 curve field.B names; package curve does not
// assert curve membership anywhere, by design — see DESIGN.md.
//
// There is no represented point at infinity: additions that would
// produce it (adding a point to its own negation) report
// ErrSymmetricPoints instead, per the data model this system targets.
package curve

import (
	"errors"

	"github.com/sammyne/koblitz-elgamal/bigint"
	"github.com/sammyne/koblitz-elgamal/field"
)

// ErrSymmetricPoints is returned by Add when the two operands are
// negations of each other: their sum is the point at infinity, which
// this affine representation cannot hold.
var ErrSymmetricPoints = errors.New("curve: addition of symmetric points (point at infinity)")

// Point is an affine point (x, y) on the curve, with both coordinates
// canonical in [0, p).
type Point struct {
	X, Y *bigint.Int
}

// New returns the point (x, y) canonicalized into [0, p). It does not
// verify the point lies on the curve; Embedding constructs points by
// solving its own K-scaled embedding equation, and arithmetic results are
// trusted rather than re-checked (per the data model's invariant
// list).
func New(x, y *bigint.Int) Point {
	return Point{X: field.Reduce(x), Y: field.Reduce(y)}
}

// Equal reports whether p and other denote the same point.
func (p Point) Equal(other Point) bool {
	return p.X.Equal(other.X) && p.Y.Equal(other.Y)
}

// Negate returns the point (x, p-y), the group negation of p.
func (p Point) Negate() Point {
	return Point{X: p.X, Y: field.Reduce(p.Y.Neg())}
}

// isSymmetric reports whether p and q are negations of each other:
// same x, and y values that sum to 0 mod p.
func isSymmetric(p, q Point) bool {
	if !p.X.Equal(q.X) {
		return false
	}
	sum := field.Reduce(p.Y.Add(q.Y))
	return sum.Sign() == 0
}

// Add returns p+q using the chord-and-tangent group law: point
// doubling's tangent slope when p == q, the chord slope otherwise,
// and ErrSymmetricPoints when p and q are mutual negations.
func Add(p, q Point) (Point, error) {
	if isSymmetric(p, q) {
		return Point{}, ErrSymmetricPoints
	}

	var k *bigint.Int
	if p.Equal(q) {
		num := field.Reduce(p.X.Mul(p.X).Mul(bigint.NewInt(3)).Add(field.A))
		denomInv, err := field.Inverse(p.Y.Mul(bigint.NewInt(2)))
		if err != nil {
			return Point{}, err
		}
		k = field.Reduce(num.Mul(denomInv))
	} else {
		num := field.Reduce(q.Y.Sub(p.Y))
		denomInv, err := field.Inverse(field.Reduce(q.X.Sub(p.X)))
		if err != nil {
			return Point{}, err
		}
		k = field.Reduce(num.Mul(denomInv))
	}

	x3 := field.Reduce(k.Mul(k).Sub(p.X).Sub(q.X))
	y3 := field.Reduce(k.Mul(p.X.Sub(x3)).Sub(p.Y))
	return Point{X: x3, Y: y3}, nil
}

// ScalarMul returns n·p via left-to-right binary double-and-add over
// the bits of n, most-significant first. n must be positive; the
// walk is seeded with p itself (not the absent identity element), so
// the first bit considered is implicitly already "applied".
func ScalarMul(p Point, n *bigint.Int) (Point, error) {
	bits := n.BitLen()
	if bits == 0 {
		return Point{}, errors.New("curve: scalar multiplication by zero is undefined (no point at infinity)")
	}

	res := p
	for i := bits - 2; i >= 0; i-- {
		var err error
		res, err = Add(res, res)
		if err != nil {
			return Point{}, err
		}
		if n.Bit(i) == 1 {
			res, err = Add(res, p)
			if err != nil {
				return Point{}, err
			}
		}
	}
	return res, nil
}
