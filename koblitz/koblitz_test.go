package koblitz

import (
	"bytes"
	"testing"

	"github.com/sammyne/koblitz-elgamal/curve"
	"github.com/sammyne/koblitz-elgamal/field"
)

// satisfiesEmbeddingEquation reports whether p solves the equation
// Encode actually searches over: y² = K·(x³+a·x+b) (mod p), not the
// nominal secp256k1 curve y²=x³+b — the K-scaling means an embedded
// point does not lie on that curve at all.
func satisfiesEmbeddingEquation(p curve.Point) bool {
	lhs := field.Reduce(p.Y.Mul(p.Y))
	rhs := field.Reduce(bigK.Mul(cubicPlusLine(p.X)))
	return lhs.Equal(rhs)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	chunks := [][]byte{
		[]byte("h"),
		[]byte("hello"),
		bytes.Repeat([]byte("x"), field.BlockSize),
	}
	for _, c := range chunks {
		p, err := Encode(c)
		if err != nil {
			t.Fatalf("Encode(%q): %v", c, err)
		}
		if !satisfiesEmbeddingEquation(p) {
			t.Fatalf("Encode(%q) does not satisfy the embedding equation", c)
		}
		got := Decode(p)
		if !bytes.Equal(got, c) {
			t.Errorf("Decode(Encode(%q)) = %q", c, got)
		}
	}
}

func TestEncodeRejectsOverlongChunk(t *testing.T) {
	oversized := bytes.Repeat([]byte("z"), field.BlockSize+1)
	if _, err := Encode(oversized); err != ErrChunkTooLong {
		t.Errorf("Encode(overlong) err = %v, want ErrChunkTooLong", err)
	}
}

func TestEncodeEmptyChunk(t *testing.T) {
	p, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode(nil): %v", err)
	}
	if got := Decode(p); len(got) != 0 {
		t.Errorf("Decode(Encode(nil)) = %x, want empty", got)
	}
}
