// Package wordfield performs prime-field arithmetic for moduli that fit
// in a single machine word. The product of two residues can occupy up to
// twice the modulus width, so multiplication widens through a 128-bit
// intermediate before reducing.
package wordfield

import "lukechampine.com/uint128"

// Field is a prime field whose modulus fits in a uint64.
type Field struct {
	p uint64
}

// New returns the field of the given modulus. The modulus is assumed
// prime by the caller's contract.
func New(p uint64) Field {
	return Field{p: p}
}

// Modulus returns the field's prime.
func (f Field) Modulus() uint64 {
	return f.p
}

// Add returns a + b mod p. Both inputs must already be residues.
func (f Field) Add(a, b uint64) uint64 {
	// a + b < 2p <= 2^65, so go through the widening path as well.
	return uint128.From64(a).Add64(b).Mod64(f.p)
}

// Mul returns a * b mod p using a 64x64 -> 128 bit multiply.
func (f Field) Mul(a, b uint64) uint64 {
	return uint128.From64(a).Mul64(b).Mod64(f.p)
}

// Pow returns base^exp mod p by square-and-multiply, walking the
// exponent from its least-significant bit upward.
func (f Field) Pow(base, exp uint64) uint64 {
	result := uint64(1)
	base %= f.p
	for exp > 0 {
		if exp&1 == 1 {
			result = f.Mul(result, base)
		}
		base = f.Mul(base, base)
		exp >>= 1
	}
	return result
}
