// Package field implements arithmetic in a finite field of prime order.
//
// An Element is an immutable least-nonnegative residue modulo a prime
// chosen by the caller. The modulus is taken on trust: it is not tested
// for primality, and a composite modulus makes the Fermat-based
// inversion in Div and Pow mathematically meaningless rather than
// producing a runtime error.
package field

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-weierstrass/internal/wordfield"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Element is a residue in a prime field. The zero value of the type is
// not usable; construct elements with New. Every operation returns a
// fresh Element and leaves its operands untouched.
type Element struct {
	value   *big.Int
	modulus *big.Int
}

// New returns the field element for value in the field of the given
// modulus. The value must already be a least-nonnegative residue:
// anything outside [0, modulus) fails with an OutOfRangeError, as does
// a nil or sub-2 modulus.
func New(value, modulus *big.Int) (Element, error) {
	if modulus == nil || modulus.Cmp(two) < 0 {
		return Element{}, &OutOfRangeError{Value: value, Modulus: modulus}
	}
	if value == nil || value.Sign() < 0 || value.Cmp(modulus) >= 0 {
		return Element{}, &OutOfRangeError{Value: value, Modulus: modulus}
	}
	return Element{
		value:   new(big.Int).Set(value),
		modulus: new(big.Int).Set(modulus),
	}, nil
}

// Value returns a copy of the element's residue.
func (e Element) Value() *big.Int {
	return new(big.Int).Set(e.value)
}

// Modulus returns a copy of the field's prime.
func (e Element) Modulus() *big.Int {
	return new(big.Int).Set(e.modulus)
}

// IsZero reports whether the element is the field's additive identity.
func (e Element) IsZero() bool {
	return e.value.Sign() == 0
}

// Equal reports whether both elements hold the same residue in the same
// field.
func (e Element) Equal(other Element) bool {
	return e.modulus.Cmp(other.modulus) == 0 && e.value.Cmp(other.value) == 0
}

func (e Element) String() string {
	return fmt.Sprintf("FieldElement_%s(%s)", e.modulus, e.value)
}

func (e Element) sameField(other Element) error {
	if e.modulus.Cmp(other.modulus) != 0 {
		return &IncompatibleFieldError{Modulus: e.Modulus(), OtherModulus: other.Modulus()}
	}
	return nil
}

// Add returns e + other.
func (e Element) Add(other Element) (Element, error) {
	if err := e.sameField(other); err != nil {
		return Element{}, err
	}
	sum := new(big.Int).Add(e.value, other.value)
	return New(sum.Mod(sum, e.modulus), e.modulus)
}

// Sub returns e - other.
func (e Element) Sub(other Element) (Element, error) {
	if err := e.sameField(other); err != nil {
		return Element{}, err
	}
	diff := new(big.Int).Sub(e.value, other.value)
	// big.Int.Mod is Euclidean, so the result is already nonnegative.
	return New(diff.Mod(diff, e.modulus), e.modulus)
}

// Mul returns e * other.
func (e Element) Mul(other Element) (Element, error) {
	if err := e.sameField(other); err != nil {
		return Element{}, err
	}
	prod := new(big.Int).Mul(e.value, other.value)
	return New(prod.Mod(prod, e.modulus), e.modulus)
}

// Neg returns the additive inverse of e.
func (e Element) Neg() Element {
	if e.value.Sign() == 0 {
		return e
	}
	out, _ := New(new(big.Int).Sub(e.modulus, e.value), e.modulus)
	return out
}

// Pow returns e raised to exp. The exponent may be negative: it is
// first folded into [0, modulus-1) using Fermat's little theorem
// (x^(p-1) = 1 for nonzero x), so e.Pow(-1) is the multiplicative
// inverse of a nonzero element. Pow never fails.
func (e Element) Pow(exp *big.Int) Element {
	pMinus1 := new(big.Int).Sub(e.modulus, one)
	n := new(big.Int).Mod(exp, pMinus1)

	if e.modulus.IsUint64() {
		// Residue and reduced exponent both fit a word whenever the
		// modulus does; the fixed-width backend handles the widening.
		f := wordfield.New(e.modulus.Uint64())
		r := f.Pow(e.value.Uint64(), n.Uint64())
		out, _ := New(new(big.Int).SetUint64(r), e.modulus)
		return out
	}

	// Square-and-multiply, least-significant bit first. Intermediate
	// products exceed the modulus width; big.Int absorbs the widening.
	result := big.NewInt(1)
	base := new(big.Int).Set(e.value)
	for i := 0; i < n.BitLen(); i++ {
		if n.Bit(i) == 1 {
			result.Mul(result, base)
			result.Mod(result, e.modulus)
		}
		base.Mul(base, base)
		base.Mod(base, e.modulus)
	}
	out, _ := New(result, e.modulus)
	return out
}

// Div returns e / other, deriving the inverse as other^(p-2) per
// Fermat's little theorem. Dividing by the zero element fails with a
// DivisionByZeroError.
func (e Element) Div(other Element) (Element, error) {
	if err := e.sameField(other); err != nil {
		return Element{}, err
	}
	if other.IsZero() {
		return Element{}, &DivisionByZeroError{Modulus: e.Modulus()}
	}
	inv := other.Pow(new(big.Int).Sub(e.modulus, two))
	return e.Mul(inv)
}
