package field

import (
	"fmt"
	"math/big"
)

// OutOfRangeError reports a raw value outside [0, modulus) at
// construction time. No Element is ever observable in that state.
type OutOfRangeError struct {
	Value   *big.Int
	Modulus *big.Int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("value %v not in field range 0 to %v", e.Value, e.Modulus)
}

// IncompatibleFieldError reports a binary operation whose operands were
// drawn from fields with different moduli.
type IncompatibleFieldError struct {
	Modulus      *big.Int
	OtherModulus *big.Int
}

func (e *IncompatibleFieldError) Error() string {
	return fmt.Sprintf("cannot combine elements of different fields (%v vs %v)", e.Modulus, e.OtherModulus)
}

// DivisionByZeroError reports division by the field's zero element,
// which has no multiplicative inverse.
type DivisionByZeroError struct {
	Modulus *big.Int
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero in field of modulus %v", e.Modulus)
}
