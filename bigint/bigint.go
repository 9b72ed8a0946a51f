// Package bigint implements the arbitrary-precision signed integer
// kernel this system is built on. It intentionally does not wrap an
// external bignum library (no math/big, no GMP binding): the source
// this system is derived from wrapped GMP behind a thin C++ template,
// and the redesign calls for a native implementation on fixed-width
// limbs instead. Every Int is immutable once returned from an
// operator; no result aliases another result's backing storage.
package bigint

import (
	"encoding/hex"
	"strings"

	"github.com/sammyne/koblitz-elgamal/rng"
)

// Int is a signed integer of effectively unbounded precision, stored
// as a sign flag plus a little-endian, base-2^32 magnitude. The zero
// value is the integer 0.
type Int struct {
	neg bool
	abs []uint32
}

func fromMag(neg bool, abs []uint32) *Int {
	abs = normalize(abs)
	if len(abs) == 0 {
		neg = false
	}
	return &Int{neg: neg, abs: abs}
}

// NewInt returns the Int representing the given machine integer.
func NewInt(v int64) *Int {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = uint64(-v)
	}
	return fromMag(neg, []uint32{uint32(u), uint32(u >> 32)})
}

// Zero returns the integer 0.
func Zero() *Int { return &Int{} }

// One returns the integer 1.
func One() *Int { return NewInt(1) }

// Sign returns -1, 0 or +1 according to whether x is negative, zero
// or positive.
func (x *Int) Sign() int {
	switch {
	case len(x.abs) == 0:
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Clone returns an independent copy of x.
func (x *Int) Clone() *Int {
	return fromMag(x.neg, append([]uint32(nil), x.abs...))
}

// Add returns x+other.
func (x *Int) Add(other *Int) *Int {
	if x.neg == other.neg {
		return fromMag(x.neg, addMag(x.abs, other.abs))
	}
	switch cmpMag(x.abs, other.abs) {
	case 0:
		return Zero()
	case 1:
		return fromMag(x.neg, subMag(x.abs, other.abs))
	default:
		return fromMag(other.neg, subMag(other.abs, x.abs))
	}
}

// Neg returns -x.
func (x *Int) Neg() *Int {
	return fromMag(!x.neg, append([]uint32(nil), x.abs...))
}

// Sub returns x-other.
func (x *Int) Sub(other *Int) *Int {
	return x.Add(other.Neg())
}

// Mul returns x*other.
func (x *Int) Mul(other *Int) *Int {
	return fromMag(x.neg != other.neg, mulMag(x.abs, other.abs))
}

// DivMod returns the quotient and remainder of x divided by other,
// truncated toward zero (so the remainder takes the sign of the
// dividend x, per §4.1 of the arithmetic spec this package
// implements). Panics if other is zero, matching the convention
// established by the standard library's math/big.
func (x *Int) DivMod(other *Int) (q, r *Int) {
	if other.Sign() == 0 {
		panic("bigint: division by zero")
	}
	qa, ra := divModMag(x.abs, other.abs)
	return fromMag(x.neg != other.neg, qa), fromMag(x.neg, ra)
}

// Div returns the truncated quotient of x divided by other.
func (x *Int) Div(other *Int) *Int {
	q, _ := x.DivMod(other)
	return q
}

// Mod returns the remainder of x divided by other, truncated toward
// zero; the result carries the sign of x (the dividend), not other.
func (x *Int) Mod(other *Int) *Int {
	_, r := x.DivMod(other)
	return r
}

// Xor returns the bitwise XOR of x and other. Both operands must be
// non-negative: only their magnitudes are combined, and the result is
// always non-negative.
func (x *Int) Xor(other *Int) *Int {
	n := len(x.abs)
	if len(other.abs) > n {
		n = len(other.abs)
	}
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		var a, b uint32
		if i < len(x.abs) {
			a = x.abs[i]
		}
		if i < len(other.abs) {
			b = other.abs[i]
		}
		out[i] = a ^ b
	}
	return fromMag(false, out)
}

// Cmp returns -1, 0 or +1 according to whether x is less than, equal
// to, or greater than other.
func (x *Int) Cmp(other *Int) int {
	if x.neg != other.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := cmpMag(x.abs, other.abs)
	if x.neg {
		return -c
	}
	return c
}

// Equal reports whether x and other denote the same integer.
func (x *Int) Equal(other *Int) bool { return x.Cmp(other) == 0 }

// BitLen returns the number of bits required to represent |x|, with
// BitLen of zero being 0.
func (x *Int) BitLen() int { return bitLenMag(x.abs) }

// Bit returns the value of the i-th bit of |x| (0 or 1), counting
// from the least-significant bit.
func (x *Int) Bit(i int) uint32 { return bitMag(x.abs, i) }

// FromBytes imports a big-endian byte string as a non-negative Int,
// most-significant byte first.
func FromBytes(b []byte) *Int {
	n := len(b)
	abs := make([]uint32, (n+3)/4)
	for i := 0; i < n; i++ {
		v := b[n-1-i]
		abs[i/4] |= uint32(v) << uint((i%4)*8)
	}
	return fromMag(false, abs)
}

// Bytes exports the magnitude of x as a big-endian byte string,
// most-significant byte first, with leading zero bytes omitted. The
// sign is not encoded; callers that need it track it separately.
func (x *Int) Bytes() []byte {
	a := normalize(x.abs)
	if len(a) == 0 {
		return []byte{}
	}
	n := len(a)
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		v := a[i]
		base := (n - 1 - i) * 4
		out[base] = byte(v >> 24)
		out[base+1] = byte(v >> 16)
		out[base+2] = byte(v >> 8)
		out[base+3] = byte(v)
	}
	i := 0
	for i < len(out)-1 && out[i] == 0 {
		i++
	}
	return out[i:]
}

// Hex returns the signed base-16 representation of x: lowercase
// digits, no leading zero padding, "0" for zero, with a leading "-"
// for negative values. This is the exact textual form used by the
// key and ciphertext codecs.
func (x *Int) Hex() string {
	s := hex.EncodeToString(x.Bytes())
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	if x.neg {
		return "-" + s
	}
	return s
}

// FromHex parses the signed base-16 representation produced by Hex.
func FromHex(s string) (*Int, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if s == "" {
		return nil, errInvalidHex(s)
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errInvalidHex(s)
	}
	return fromMag(neg, FromBytes(b).abs), nil
}

// Bin returns the signed base-2 representation of x: no leading zero
// padding, "0" for zero, with a leading "-" for negative values.
func (x *Int) Bin() string {
	n := x.BitLen()
	if n == 0 {
		return "0"
	}
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		if bitMag(x.abs, n-1-i) == 1 {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	if x.neg {
		return "-" + string(buf)
	}
	return string(buf)
}

// Random returns a uniformly distributed non-negative Int in
// [0, 2^nBits), drawn from the system CSPRNG via the rng package
// (never from a wall-clock-seeded generator).
func Random(nBits int) (*Int, error) {
	if nBits <= 0 {
		return Zero(), nil
	}
	nBytes := (nBits + 7) / 8
	buf, err := rng.Bytes(nBytes)
	if err != nil {
		return nil, err
	}
	excess := nBytes*8 - nBits
	if excess > 0 {
		buf[0] &= byte(0xff >> uint(excess))
	}
	return FromBytes(buf), nil
}

// uniformMod draws a value uniformly biased towards [0, p) by
// oversampling well beyond p's bit length and reducing; used
// internally by Cipolla's algorithm where a lightly biased candidate
// is acceptable (the same tolerance the scheme's scalar sampling
// documents).
func uniformMod(p *Int) (*Int, error) {
	r, err := Random(p.BitLen() + 64)
	if err != nil {
		return nil, err
	}
	return r.Mod(p), nil
}

type hexError string

func (e hexError) Error() string { return "bigint: invalid hex string: " + string(e) }

func errInvalidHex(s string) error { return hexError(s) }
