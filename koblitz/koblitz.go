// Copyright 2010 The Go Authors. All rights reserved.
// Copyright 2011 ThePiachu. All rights reserved.
// Copyright 2013-2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package koblitz implements Koblitz's probabilistic method for
// embedding an arbitrary byte string onto a point of the secp256k1
// curve, and its left inverse for recovering the original bytes.
//
// Given a chunk of at most field.BlockSize bytes, Encode scales its
// big-endian integer value by field.K and searches field.K
// consecutive x-coordinates, starting at the scaled value itself,
// for one whose right-hand side K·(x³+ax+b) is a quadratic residue
// mod p, i.e. one that has a matching y. Decode reverses the scaling
// by integer division, which recovers the original chunk exactly
// because the search never advances x past field.K-1 candidates past
// the scaled value: x stays within [m*K, m*K+K), so x/K always
// floors back to m.
package koblitz

import (
	"errors"

	"github.com/sammyne/koblitz-elgamal/bigint"
	"github.com/sammyne/koblitz-elgamal/curve"
	"github.com/sammyne/koblitz-elgamal/field"
)

// ErrChunkTooLong is returned by Encode when the input exceeds
// field.BlockSize bytes.
var ErrChunkTooLong = errors.New("koblitz: plaintext chunk exceeds block size")

// ErrEmbeddingFailed is returned by Encode when no quadratic residue
// was found within field.K candidate x-coordinates. For a
// cryptographic-sized p and K=40 this has probability roughly 2^-40
// and signals something is badly wrong with the field parameters
// rather than ordinary bad luck.
var ErrEmbeddingFailed = errors.New("koblitz: embedding exhausted candidate x-coordinates")

var bigK = bigint.NewInt(field.K)

// Encode maps a byte chunk onto a curve point.
func Encode(chunk []byte) (curve.Point, error) {
	if len(chunk) > field.BlockSize {
		return curve.Point{}, ErrChunkTooLong
	}

	m := bigint.FromBytes(chunk)
	x := field.Reduce(m.Mul(bigK))

	for i := 0; i < field.K; i++ {
		rhs := field.Reduce(bigK.Mul(cubicPlusLine(x)))
		if y, err := rhs.SqrtMod(field.P); err == nil {
			return curve.New(x, y), nil
		}
		x = field.Reduce(x.Add(bigint.One()))
	}

	return curve.Point{}, ErrEmbeddingFailed
}

// Decode recovers the byte chunk a point was built from.
func Decode(p curve.Point) []byte {
	return p.X.Div(bigK).Bytes()
}

func cubicPlusLine(x *bigint.Int) *bigint.Int {
	return field.Reduce(x.Mul(x).Mul(x).Add(field.A.Mul(x)).Add(field.B))
}
