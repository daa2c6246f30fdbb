package wos

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by geometry construction and by the solver.
var (
	// ErrDegenerateCurve indicates an attempt to build a curve with zero
	// extent, such as a line whose start and end points coincide.
	ErrDegenerateCurve = errors.New("wos: degenerate curve")

	// ErrNonFinitePoint indicates a curve control point with a NaN or
	// infinite coordinate.
	ErrNonFinitePoint = errors.New("wos: non-finite point")

	// ErrEmptyBoundary indicates a solve against a composite without curves.
	ErrEmptyBoundary = errors.New("wos: boundary has no curves")

	// ErrNoClosestPoint indicates that a closest-point query found no
	// candidate on the boundary.
	ErrNoClosestPoint = errors.New("wos: no closest boundary point")

	// ErrNilBoundaryFunc indicates a solve without a boundary function.
	ErrNilBoundaryFunc = errors.New("wos: nil boundary function")

	// ErrInvalidConfig indicates a non-positive solver parameter or an out
	// of range fitting margin.
	ErrInvalidConfig = errors.New("wos: invalid solver configuration")

	// ErrUnsupportedCurve indicates an operation that only handles lines
	// applied to another kind of curve.
	ErrUnsupportedCurve = errors.New("wos: unsupported curve")
)

// WalkError reports the walk that failed during a solve. It unwraps to the
// underlying cause, which is [ErrNoClosestPoint] for geometry failures.
type WalkError struct {
	// Column and row of the cell the walk started from.
	Col, Row int
	// Walk is the index of the walk within its cell.
	Walk int
	// Step is the number of jumps taken before the failure.
	Step int
	// Point is where the walk was when the query failed.
	Point Point
	Err   error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("wos: cell (%d, %d) walk %d step %d at %v: %v",
		e.Col, e.Row, e.Walk, e.Step, e.Point, e.Err)
}

func (e *WalkError) Unwrap() error {
	return e.Err
}
