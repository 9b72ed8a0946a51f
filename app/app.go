// Package app wires the core arithmetic packages together into the
// three pure operations the CLI driver calls: Generate, Encrypt and
// Decrypt. Nothing here touches argv, files or stdout — that belongs
// to package cliapp.
package app

import (
	"github.com/sammyne/koblitz-elgamal/bigint"
	"github.com/sammyne/koblitz-elgamal/codec"
	"github.com/sammyne/koblitz-elgamal/curve"
	"github.com/sammyne/koblitz-elgamal/elgamal"
	"github.com/sammyne/koblitz-elgamal/field"
	"github.com/sammyne/koblitz-elgamal/koblitz"
)

// Generate returns the textual encoding of a key. With useDefault,
// it returns the deterministic key built from field.DefaultD;
// otherwise it samples a fresh private scalar.
func Generate(useDefault bool) (string, error) {
	var d *bigint.Int
	var q curve.Point
	var err error

	if useDefault {
		d = field.DefaultD
		q, err = curve.ScalarMul(elgamal.Generator(), d)
	} else {
		d, q, err = elgamal.GenerateKeyPair()
	}
	if err != nil {
		return "", err
	}
	return codec.EncodeKey(codec.KeyPair{D: d, Q: q}), nil
}

// Encrypt embeds plaintext into a sequence of curve points, encrypts
// each under key's public point, and returns the textual ciphertext.
func Encrypt(plaintext string, key string) (string, error) {
	kp, err := codec.DecodeKey(key)
	if err != nil {
		return "", err
	}

	chunks := codec.Chunks([]byte(plaintext))
	blocks := make([]codec.Block, 0, len(chunks))
	for _, chunk := range chunks {
		m, err := koblitz.Encode(chunk)
		if err != nil {
			return "", err
		}
		c1, c2, err := elgamal.Encrypt(m, kp.Q)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, codec.Block{C1: c1, C2: c2})
	}
	return codec.EncodeCiphertext(blocks), nil
}

// Decrypt parses ciphertext into blocks, decrypts each under key's
// private scalar, and concatenates the recovered plaintext chunks.
func Decrypt(ciphertext string, key string) (string, error) {
	kp, err := codec.DecodeKey(key)
	if err != nil {
		return "", err
	}

	blocks, err := codec.DecodeCiphertext(ciphertext)
	if err != nil {
		return "", err
	}

	var out []byte
	for _, b := range blocks {
		m, err := elgamal.Decrypt(b.C1, b.C2, kp.D)
		if err != nil {
			return "", err
		}
		out = append(out, koblitz.Decode(m)...)
	}
	return string(out), nil
}
