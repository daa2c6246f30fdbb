package wos

import (
	"fmt"
	"math"
)

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// A positive angle rotates the positive X direction into positive Y, which
// in the solver's y-up domain is anti-clockwise. The angle th is expressed
// in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenScale creates aff followed by a scale of (x, y).
//
// Equivalent to "Scale(x, y) * aff"
func (aff Affine) ThenScale(x, y float64) Affine {
	return Scale(x, y).Mul(aff)
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// FitUnitSquare returns the transform that uniformly scales and centres r
// into the unit square, leaving margin on every side. margin must lie in
// [0, 0.5).
func FitUnitSquare(r Rect, margin float64) (Affine, error) {
	if !(margin >= 0 && margin < 0.5) {
		return Affine{}, fmt.Errorf("%w: margin %g outside [0, 0.5)", ErrInvalidConfig, margin)
	}
	size := max(r.Width(), r.Height())
	if !(size > 0) || math.IsInf(size, 0) {
		return Affine{}, fmt.Errorf("can't fit %v: %w", r, ErrDegenerateCurve)
	}
	f := (1 - 2*margin) / size
	c := r.Center()
	return Translate(Vec(-c.X, -c.Y)).ThenScale(f, f).ThenTranslate(Vec(0.5, 0.5)), nil
}

// Transform applies aff to pt.
func (pt Point) Transform(aff Affine) Point {
	return Point{
		X: aff.N0*pt.X + aff.N2*pt.Y + aff.N4,
		Y: aff.N1*pt.X + aff.N3*pt.Y + aff.N5,
	}
}

// Transform applies aff to the line's end points.
func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// Transform returns a new composite with aff applied to every curve.
//
// Only lines can be transformed; other curves fail with
// [ErrUnsupportedCurve]. A singular transform, or one that
// collapses a line to a point through rounding, fails with
// [ErrDegenerateCurve]. The receiver is never modified.
func (c *Composite) Transform(aff Affine) (*Composite, error) {
	if aff.Determinant() == 0 {
		return nil, fmt.Errorf("singular transform %v: %w", aff, ErrDegenerateCurve)
	}
	out := &Composite{curves: make([]Curve, 0, c.Len())}
	for i, cv := range c.Curves() {
		l, ok := cv.(Line)
		if !ok {
			return nil, fmt.Errorf("curve %d: can't transform %T: %w", i, cv, ErrUnsupportedCurve)
		}
		l = l.Transform(aff)
		if err := out.PushLine(l.P0, l.P1); err != nil {
			return nil, fmt.Errorf("curve %d: %w", i, err)
		}
	}
	return out, nil
}
