// Package codec implements the textual wire formats for keys and
// ciphertexts, and the plaintext chunking rule, per the CLI's textual
// interface: semicolon-delimited fields for keys and block
// boundaries, comma-delimited fields within a ciphertext block, all
// BigInt fields serialized as lowercase hex without a 0x prefix or
// leading-zero padding.
package codec

import (
	"errors"
	"strings"

	"github.com/sammyne/koblitz-elgamal/bigint"
	"github.com/sammyne/koblitz-elgamal/curve"
	"github.com/sammyne/koblitz-elgamal/field"
)

// ErrMalformedKey is returned when a key string does not split into
// exactly three ';'-separated hex fields.
var ErrMalformedKey = errors.New("codec: key must have exactly 3 ';'-separated fields")

// ErrMalformedBlock is returned when a ciphertext block does not
// split into exactly four ','-separated hex fields.
var ErrMalformedBlock = errors.New("codec: ciphertext block must have exactly 4 ','-separated fields")

// KeyPair is the textual key: a private scalar and its matching
// public point Q = d·G.
type KeyPair struct {
	D *bigint.Int
	Q curve.Point
}

// Block is one unit of ciphertext: C2 = r·G and C1 = M + r·Q for the
// embedded message point M.
type Block struct {
	C1, C2 curve.Point
}

// EncodeKey renders a key as "hex(d);hex(Qx);hex(Qy)".
func EncodeKey(k KeyPair) string {
	return k.D.Hex() + ";" + k.Q.X.Hex() + ";" + k.Q.Y.Hex()
}

// DecodeKey parses a key rendered by EncodeKey.
func DecodeKey(s string) (KeyPair, error) {
	fields := strings.Split(s, ";")
	if len(fields) != 3 {
		return KeyPair{}, ErrMalformedKey
	}
	d, err := bigint.FromHex(fields[0])
	if err != nil {
		return KeyPair{}, ErrMalformedKey
	}
	qx, err := bigint.FromHex(fields[1])
	if err != nil {
		return KeyPair{}, ErrMalformedKey
	}
	qy, err := bigint.FromHex(fields[2])
	if err != nil {
		return KeyPair{}, ErrMalformedKey
	}
	return KeyPair{D: d, Q: curve.New(qx, qy)}, nil
}

// EncodeBlock renders one ciphertext block as
// "hex(C1x),hex(C1y),hex(C2x),hex(C2y)".
func EncodeBlock(b Block) string {
	return strings.Join([]string{
		b.C1.X.Hex(), b.C1.Y.Hex(), b.C2.X.Hex(), b.C2.Y.Hex(),
	}, ",")
}

// DecodeBlock parses a single block rendered by EncodeBlock.
func DecodeBlock(s string) (Block, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return Block{}, ErrMalformedBlock
	}
	vals := make([]*bigint.Int, 4)
	for i, f := range fields {
		v, err := bigint.FromHex(f)
		if err != nil {
			return Block{}, ErrMalformedBlock
		}
		vals[i] = v
	}
	return Block{
		C1: curve.New(vals[0], vals[1]),
		C2: curve.New(vals[2], vals[3]),
	}, nil
}

// EncodeCiphertext joins a sequence of blocks with ';' and no
// trailing separator. An empty slice encodes as the empty string.
func EncodeCiphertext(blocks []Block) string {
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = EncodeBlock(b)
	}
	return strings.Join(parts, ";")
}

// DecodeCiphertext parses a ciphertext rendered by EncodeCiphertext.
// The empty string decodes to an empty, non-nil slice.
func DecodeCiphertext(s string) ([]Block, error) {
	if s == "" {
		return []Block{}, nil
	}
	fields := strings.Split(s, ";")
	blocks := make([]Block, len(fields))
	for i, f := range fields {
		b, err := DecodeBlock(f)
		if err != nil {
			return nil, err
		}
		blocks[i] = b
	}
	return blocks, nil
}

// Chunks splits plaintext into consecutive field.BlockSize-byte
// chunks; the final chunk may be shorter. An empty input yields no
// chunks.
func Chunks(plaintext []byte) [][]byte {
	if len(plaintext) == 0 {
		return nil
	}
	var out [][]byte
	for i := 0; i < len(plaintext); i += field.BlockSize {
		end := i + field.BlockSize
		if end > len(plaintext) {
			end = len(plaintext)
		}
		out = append(out, plaintext[i:end])
	}
	return out
}
