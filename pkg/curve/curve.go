// Package curve implements the group of points on a short Weierstrass
// elliptic curve y^2 = x^3 + ax + b over a prime field, with the point
// at infinity as the group identity and double-and-add scalar
// multiplication.
//
// Curve parameters (the field prime, coefficients a and b, a generator
// and its order) belong to the caller; the package works with whatever
// valid parameters it is handed.
package curve

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-weierstrass/pkg/field"
)

var (
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Coordinate is one affine coordinate of a point: either a field
// element or the distinguished value at infinity.
type Coordinate struct {
	num field.Element
	inf bool
}

// NewCoordinate wraps a field element as a finite coordinate.
func NewCoordinate(e field.Element) Coordinate {
	return Coordinate{num: e}
}

// Infinity returns the coordinate at infinity.
func Infinity() Coordinate {
	return Coordinate{inf: true}
}

// IsInfinity reports whether the coordinate is the value at infinity.
func (c Coordinate) IsInfinity() bool {
	return c.inf
}

// Num returns the underlying field element; ok is false at infinity.
func (c Coordinate) Num() (e field.Element, ok bool) {
	if c.inf {
		return field.Element{}, false
	}
	return c.num, true
}

func (c Coordinate) String() string {
	if c.inf {
		return "Inf"
	}
	return c.num.String()
}

// Point is an immutable point on a short Weierstrass curve. The zero
// value of the type is not usable; construct points with New. Group
// operations return new Points and never mutate their operands.
type Point struct {
	a, b field.Element
	x, y Coordinate
}

// New validates and returns a curve point. Both coordinates at infinity
// give the group identity. Exactly one coordinate at infinity fails
// with an InvalidCoordinateError, and a finite pair that does not
// satisfy y^2 = x^3 + ax + b fails with a PointNotOnCurveError.
// Coefficients or coordinates drawn from different fields surface an
// IncompatibleFieldError from the field layer.
func New(x, y Coordinate, a, b field.Element) (Point, error) {
	if a.Modulus().Cmp(b.Modulus()) != 0 {
		return Point{}, &field.IncompatibleFieldError{Modulus: a.Modulus(), OtherModulus: b.Modulus()}
	}
	if x.inf && y.inf {
		return Point{a: a, b: b, x: x, y: y}, nil
	}
	if x.inf || y.inf {
		return Point{}, &InvalidCoordinateError{X: x, Y: y}
	}
	onCurve, err := satisfiesEquation(x.num, y.num, a, b)
	if err != nil {
		return Point{}, err
	}
	if !onCurve {
		return Point{}, &PointNotOnCurveError{X: x, Y: y}
	}
	return Point{a: a, b: b, x: x, y: y}, nil
}

func satisfiesEquation(x, y, a, b field.Element) (bool, error) {
	lhs := y.Pow(two)
	ax, err := a.Mul(x)
	if err != nil {
		return false, err
	}
	rhs, err := x.Pow(three).Add(ax)
	if err != nil {
		return false, err
	}
	rhs, err = rhs.Add(b)
	if err != nil {
		return false, err
	}
	return lhs.Equal(rhs), nil
}

// IsInfinity reports whether the point is the group identity.
func (p Point) IsInfinity() bool {
	return p.x.inf
}

// X returns the point's x coordinate.
func (p Point) X() Coordinate { return p.x }

// Y returns the point's y coordinate.
func (p Point) Y() Coordinate { return p.y }

// A returns the curve coefficient a.
func (p Point) A() field.Element { return p.a }

// B returns the curve coefficient b.
func (p Point) B() field.Element { return p.b }

// Equal reports whether both points have the same coordinate state on
// the same curve.
func (p Point) Equal(other Point) bool {
	if !p.a.Equal(other.a) || !p.b.Equal(other.b) {
		return false
	}
	if p.x.inf || other.x.inf {
		return p.x.inf && other.x.inf
	}
	return p.x.num.Equal(other.x.num) && p.y.num.Equal(other.y.num)
}

func (p Point) String() string {
	return fmt.Sprintf("x: %s, y: %s (y^2 = x^3 + %sx + %s)", p.x, p.y, p.a, p.b)
}

func (p Point) sameCurve(other Point) error {
	if !p.a.Equal(other.a) || !p.b.Equal(other.b) {
		return &IncompatibleCurveError{A: p.a, B: p.b, OtherA: other.a, OtherB: other.b}
	}
	return nil
}

// Neg returns the additive inverse of p, its reflection across the x
// axis.
func (p Point) Neg() Point {
	if p.x.inf {
		return p
	}
	return Point{a: p.a, b: p.b, x: p.x, y: NewCoordinate(p.y.num.Neg())}
}

// Add returns p + other under the chord-tangent group law. Points on
// different curves fail with an IncompatibleCurveError.
func (p Point) Add(other Point) (Point, error) {
	if err := p.sameCurve(other); err != nil {
		return Point{}, err
	}

	// Infinity is the identity.
	if p.x.inf {
		return other, nil
	}
	if other.x.inf {
		return p, nil
	}

	x1, y1 := p.x.num, p.y.num
	x2, y2 := other.x.num, other.y.num

	if !x1.Equal(x2) {
		return p.chord(x1, y1, x2, y2)
	}
	if y1.Equal(y2) && !y1.IsZero() {
		return p.tangent(x1, y1)
	}
	// The line through the two points is vertical: they are additive
	// inverses of each other.
	return New(Infinity(), Infinity(), p.a, p.b)
}

// chord intersects the line through two distinct-x points with the
// curve: s = (y2-y1)/(x2-x1), x3 = s^2 - x1 - x2, y3 = s(x1-x3) - y1.
func (p Point) chord(x1, y1, x2, y2 field.Element) (Point, error) {
	dy, err := y2.Sub(y1)
	if err != nil {
		return Point{}, err
	}
	dx, err := x2.Sub(x1)
	if err != nil {
		return Point{}, err
	}
	s, err := dy.Div(dx)
	if err != nil {
		return Point{}, err
	}
	x3, err := s.Pow(two).Sub(x1)
	if err != nil {
		return Point{}, err
	}
	x3, err = x3.Sub(x2)
	if err != nil {
		return Point{}, err
	}
	y3, err := slopeThrough(s, x1, x3, y1)
	if err != nil {
		return Point{}, err
	}
	// Building through New re-checks curve membership, same as the
	// validating construction everywhere else.
	return New(NewCoordinate(x3), NewCoordinate(y3), p.a, p.b)
}

// tangent doubles a point with nonzero y: s = (3*x1^2 + a)/(2*y1),
// x3 = s^2 - 2*x1, y3 = s(x1-x3) - y1. The small constants are formed
// by repeated addition so the formulas stay valid for tiny moduli.
func (p Point) tangent(x1, y1 field.Element) (Point, error) {
	sq := x1.Pow(two)
	num, err := sq.Add(sq)
	if err != nil {
		return Point{}, err
	}
	num, err = num.Add(sq)
	if err != nil {
		return Point{}, err
	}
	num, err = num.Add(p.a)
	if err != nil {
		return Point{}, err
	}
	den, err := y1.Add(y1)
	if err != nil {
		return Point{}, err
	}
	s, err := num.Div(den)
	if err != nil {
		return Point{}, err
	}
	x3, err := s.Pow(two).Sub(x1)
	if err != nil {
		return Point{}, err
	}
	x3, err = x3.Sub(x1)
	if err != nil {
		return Point{}, err
	}
	y3, err := slopeThrough(s, x1, x3, y1)
	if err != nil {
		return Point{}, err
	}
	return New(NewCoordinate(x3), NewCoordinate(y3), p.a, p.b)
}

// slopeThrough computes y3 = s*(x1-x3) - y1, shared by the chord and
// tangent cases.
func slopeThrough(s, x1, x3, y1 field.Element) (field.Element, error) {
	t, err := x1.Sub(x3)
	if err != nil {
		return field.Element{}, err
	}
	t, err = s.Mul(t)
	if err != nil {
		return field.Element{}, err
	}
	return t.Sub(y1)
}

// ScalarMul returns k*p by binary double-and-add, so the cost grows
// with the bit length of k rather than its magnitude. The scalar is
// used as given; callers wanting canonical results reduce k modulo the
// group order themselves. A negative k multiplies the negation of p,
// and k = 0 yields the point at infinity.
func (p Point) ScalarMul(k *big.Int) (Point, error) {
	result, err := New(Infinity(), Infinity(), p.a, p.b)
	if err != nil {
		return Point{}, err
	}
	if k.Sign() == 0 || p.x.inf {
		return result, nil
	}

	base := p
	if k.Sign() < 0 {
		base = p.Neg()
		k = new(big.Int).Neg(k)
	}
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result, err = result.Add(base)
			if err != nil {
				return Point{}, err
			}
		}
		base, err = base.Add(base)
		if err != nil {
			return Point{}, err
		}
	}
	return result, nil
}
