package bigint

import "errors"

// ErrNotQuadraticResidue is returned by SqrtMod when the receiver has
// no square root modulo the given prime (Legendre symbol != 1).
var ErrNotQuadraticResidue = errors.New("bigint: not a quadratic residue")

// ErrEvenModulus is returned by SqrtMod when asked to work modulo an
// even number; Cipolla's algorithm only makes sense for odd primes.
var ErrEvenModulus = errors.New("bigint: sqrt_mod requires an odd modulus")
