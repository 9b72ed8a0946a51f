package field

import (
	"testing"

	"github.com/sammyne/koblitz-elgamal/bigint"
)

func TestInverseKnownValue(t *testing.T) {
	p := bigint.NewInt(13)
	inv, err := inverseMod(bigint.NewInt(5), p)
	if err != nil {
		t.Fatalf("inverse(5,13): %v", err)
	}
	if got, want := inv.Hex(), "8"; got != want {
		t.Errorf("inverse(5,13) = %s, want %s", got, want)
	}
}

func TestInverseRoundTripsOverP(t *testing.T) {
	a := bigint.NewInt(123456789)
	inv, err := Inverse(a)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	product := Reduce(a.Mul(inv))
	if !product.Equal(bigint.One()) {
		t.Errorf("a * inverse(a) mod p = %s, want 1", product.Hex())
	}
}

func TestInverseOfZeroFails(t *testing.T) {
	if _, err := Inverse(bigint.Zero()); err != ErrNoInverse {
		t.Errorf("Inverse(0) err = %v, want ErrNoInverse", err)
	}
}

func TestSampleInRange(t *testing.T) {
	for i := 0; i < 16; i++ {
		s, err := Sample()
		if err != nil {
			t.Fatalf("Sample: %v", err)
		}
		if s.Sign() < 0 || s.Cmp(P) >= 0 {
			t.Fatalf("Sample() = %s out of [0,p) range", s.Hex())
		}
	}
}

// inverseMod mirrors Inverse but against an arbitrary small modulus,
// for exercising the extended-Euclidean routine against the §8 test
// vector (mod_inverse(5,13) == 8) without relying on the package's
// secp256k1-sized P.
func inverseMod(a, p *bigint.Int) (*bigint.Int, error) {
	r0, r1 := a.Mod(p), p
	if r0.Sign() < 0 {
		r0 = r0.Add(p)
	}
	s0, s1 := bigint.One(), bigint.Zero()
	for r1.Sign() != 0 {
		q := r0.Div(r1)
		r0, r1 = r1, r0.Sub(q.Mul(r1))
		s0, s1 = s1, s0.Sub(q.Mul(s1))
	}
	if !r0.Equal(bigint.One()) {
		return nil, ErrNoInverse
	}
	r := s0.Mod(p)
	if r.Sign() < 0 {
		r = r.Add(p)
	}
	return r, nil
}
