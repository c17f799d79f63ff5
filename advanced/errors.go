package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds. Errors returned by this package match one of these with
// errors.Is; the typed errors below carry the values involved.
var (
	ErrUngrokkableCoercion       = errors.New("ungrokkable coercion")
	ErrDivisionByZero            = errors.New("division by zero")
	ErrCollinearPoints           = errors.New("collinear points")
	ErrInvalidAxis               = errors.New("invalid axis")
	ErrParallelOrCoincidentLines = errors.New("parallel or coincident lines")
	ErrNoIntersection            = errors.New("no intersection")
	ErrCoincidentLines           = errors.New("coincident lines")
	ErrInfiniteLength            = errors.New("infinite length")
	ErrIndexOutOfRange           = errors.New("index out of range")
	ErrDegenerateLine            = errors.New("degenerate line")
	ErrNegativeShift             = errors.New("negative shift count")
	ErrNotMonotone               = errors.New("polygon is not monotone")
	ErrInvalidSide               = errors.New("invalid triangle side")
)

// UngrokkableError is returned when a value cannot be resolved into
// ordinates by any coercion rule.
type UngrokkableError struct {
	Value interface{}
}

func (e *UngrokkableError) Error() string {
	return fmt.Sprintf("object '%T' is ungrokkable: %#v", e.Value, e.Value)
}

func (e *UngrokkableError) Is(target error) bool {
	return target == ErrUngrokkableCoercion
}

// DivisionByZeroError names the operand holding the zero ordinate.
type DivisionByZeroError struct {
	Operand interface{}
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("zero present in %v", e.Operand)
}

func (e *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}

type CollinearPointsError struct {
	A, B, C Point
}

func (e *CollinearPointsError) Error() string {
	return fmt.Sprintf("points (%v), (%v), (%v) are collinear", e.A, e.B, e.C)
}

func (e *CollinearPointsError) Is(target error) bool {
	return target == ErrCollinearPoints
}

type InvalidAxisError struct {
	Axis string
}

func (e *InvalidAxisError) Error() string {
	return fmt.Sprintf("invalid axis %q, must be one of %q", e.Axis, Axes)
}

func (e *InvalidAxisError) Is(target error) bool {
	return target == ErrInvalidAxis
}

type IndexError struct {
	Index, Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range, only have %d items", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// LinesError describes a failed intersection between two lines. Kind is one
// of ErrParallelOrCoincidentLines, ErrNoIntersection or ErrCoincidentLines;
// the latter two also match ErrParallelOrCoincidentLines.
type LinesError struct {
	Kind        error
	First, Next LineLike
}

func (e *LinesError) Error() string {
	switch e.Kind {
	case ErrNoIntersection:
		return fmt.Sprintf("%v and %v do not intersect", e.First, e.Next)
	case ErrCoincidentLines:
		return fmt.Sprintf("%v and %v are coincident", e.First, e.Next)
	}
	return fmt.Sprintf("%v and %v are parallel or coincident", e.First, e.Next)
}

func (e *LinesError) Is(target error) bool {
	return target == e.Kind || target == ErrParallelOrCoincidentLines
}

// Deeply nested computations (the operator funnel, monotone triangulation)
// raise errors by panicking with a geometryError, and the public method
// recovers it. Foreign panics are re-raised.

type geometryError struct {
	error
}

func fatalf(format string, args ...interface{}) {
	panic(geometryError{errors.Errorf(format, args...)})
}

func throw(err error) {
	panic(geometryError{err})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(geometryError); ok {
			return err.error
		}
		panic(r)
	}
	return nil
}
