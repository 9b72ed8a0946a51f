package elgamal

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/sammyne/koblitz-elgamal/bigint"
	"github.com/sammyne/koblitz-elgamal/curve"
	"github.com/sammyne/koblitz-elgamal/field"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	d := bigint.NewInt(2973)
	q, err := curve.ScalarMul(Generator(), d)
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}

	message, err := curve.ScalarMul(Generator(), bigint.NewInt(42))
	if err != nil {
		t.Fatalf("ScalarMul(message): %v", err)
	}

	r := bigint.NewInt(777)
	c1, c2, err := EncryptWithScalar(message, q, r)
	if err != nil {
		t.Fatalf("EncryptWithScalar: %v", err)
	}

	got, err := Decrypt(c1, c2, d)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !got.Equal(message) {
		t.Errorf("decrypt(encrypt(M)) = %s, want %s", spew.Sdump(got), spew.Sdump(message))
	}
}

func TestDefaultKeyIsDeterministic(t *testing.T) {
	q1, err := curve.ScalarMul(Generator(), field.DefaultD)
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}
	q2, err := curve.ScalarMul(Generator(), field.DefaultD)
	if err != nil {
		t.Fatalf("ScalarMul: %v", err)
	}
	if !q1.Equal(q2) {
		t.Errorf("Q = d*G is not deterministic across runs")
	}
	if got, want := field.DefaultD.Hex(), "dc4f177f659f561f638d88ed9f1f60a7932bdcbb59fed59e460a7949d43547dc"; got != want {
		t.Errorf("DefaultD.Hex() = %s, want %s", got, want)
	}
}
