package wos

import "math"

// Line represents a line segment. It is the boundary's basic [Curve].
//
// Lines built with [NewLine] always have distinct end points. A Line
// constructed directly as a struct literal is not validated, but
// [Composite.Push] and [Composite.PushLine] both reject degenerate and
// non-finite lines.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ Curve = Line{}

// NewLine returns the segment from p0 to p1. It fails with
// [ErrDegenerateCurve] if the points are identical and with
// [ErrNonFinitePoint] if either point is NaN or infinite.
func NewLine(p0, p1 Point) (Line, error) {
	l := Line{P0: p0, P1: p1}
	if l.IsNaN() || l.IsInf() {
		return Line{}, ErrNonFinitePoint
	}
	if p0 == p1 {
		return Line{}, ErrDegenerateCurve
	}
	return l, nil
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Eval returns the point at t, with t clamped to [0, 1]. It never
// extrapolates past the end points.
func (l Line) Eval(t float64) Point {
	switch {
	case t <= 0:
		return l.P0
	case t >= 1:
		return l.P1
	case math.IsNaN(t):
		return Pt(math.NaN(), math.NaN())
	}
	return l.P0.Lerp(l.P1, t)
}

// ClosestPoint projects pt onto the line through P0 and P1 and clamps the
// projection to the segment. It returns false if the projection parameter
// is NaN, which happens for non-finite pt.
func (l Line) ClosestPoint(pt Point) (Point, bool) {
	d := l.P1.Sub(l.P0)
	t := pt.Sub(l.P0).Dot(d) / d.Hypot2()
	if math.IsNaN(t) {
		return Point{}, false
	}
	return l.Eval(t), true
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

// IsInf reports whether either end point has an infinite coordinate.
func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

// IsNaN reports whether either end point has a NaN coordinate.
func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
