package curve

import (
	"fmt"

	"github.com/smallyu/go-weierstrass/pkg/field"
)

// InvalidCoordinateError reports a point given exactly one coordinate at
// infinity. A valid point is either fully finite or the point at
// infinity.
type InvalidCoordinateError struct {
	X, Y Coordinate
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("(%s, %s) mixes a finite coordinate with infinity", e.X, e.Y)
}

// PointNotOnCurveError reports finite coordinates that do not satisfy
// the curve equation y^2 = x^3 + ax + b.
type PointNotOnCurveError struct {
	X, Y Coordinate
}

func (e *PointNotOnCurveError) Error() string {
	return fmt.Sprintf("(%s, %s) is not on the curve", e.X, e.Y)
}

// IncompatibleCurveError reports a group operation whose operands lie on
// different curves.
type IncompatibleCurveError struct {
	A, B           field.Element
	OtherA, OtherB field.Element
}

func (e *IncompatibleCurveError) Error() string {
	return fmt.Sprintf("cannot combine points on different curves (a=%s, b=%s vs a=%s, b=%s)",
		e.A, e.B, e.OtherA, e.OtherB)
}
