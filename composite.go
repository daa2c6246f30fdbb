package wos

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Composite is an ordered, append-only sequence of curves describing the
// boundary of a domain.
//
// Insertion order is preserved and decides ties between equally close
// curves. The zero value is an empty composite ready to use.
//
// A Composite may be read concurrently, but it must not be modified while a
// [Solver] is using it.
type Composite struct {
	curves []Curve
}

// Polygon returns a composite of lines connecting pts in order, closed by a
// line from the last point back to the first. Consecutive duplicate points
// are an error, as are fewer than three points.
func Polygon(pts ...Point) (*Composite, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf("polygon needs at least 3 points, got %d: %w", len(pts), ErrDegenerateCurve)
	}
	c := &Composite{curves: make([]Curve, 0, len(pts))}
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		if err := c.PushLine(p, q); err != nil {
			return nil, fmt.Errorf("polygon edge %d: %w", i, err)
		}
	}
	return c, nil
}

// PushLine appends the line from p0 to p1. On error the composite is left
// unchanged.
func (c *Composite) PushLine(p0, p1 Point) error {
	l, err := NewLine(p0, p1)
	if err != nil {
		return fmt.Errorf("couldn't push line %v to %v: %w", p0, p1, err)
	}
	c.curves = append(c.curves, l)
	return nil
}

// Push appends a curve. The curve must be immutable. Lines are validated
// as by [NewLine]; on error the composite is left unchanged.
func (c *Composite) Push(cv Curve) error {
	if l, ok := cv.(Line); ok {
		return c.PushLine(l.P0, l.P1)
	}
	c.curves = append(c.curves, cv)
	return nil
}

// Len returns the number of curves in the composite.
func (c *Composite) Len() int {
	if c == nil {
		return 0
	}
	return len(c.curves)
}

// Curves returns an iterator over the composite's curves and their indices,
// in insertion order.
func (c *Composite) Curves() iter.Seq2[int, Curve] {
	return func(yield func(int, Curve) bool) {
		if c == nil {
			return
		}
		for i, cv := range c.curves {
			if !yield(i, cv) {
				return
			}
		}
	}
}

// Perimeter returns the summed length of the composite's lines. Curves that
// aren't lines are measured by the chord between their end points.
func (c *Composite) Perimeter() float64 {
	var sum float64
	for _, cv := range c.Curves() {
		if l, ok := cv.(Line); ok {
			sum += l.Length()
		} else {
			sum += cv.End().Distance(cv.Start())
		}
	}
	return sum
}

// ClosestPoint returns the point on the boundary nearest to pt.
//
// Every curve is queried; curves without an answer and candidates whose
// distance to pt is NaN are skipped. Among the remaining candidates the one
// with the smallest squared distance wins, with the earliest inserted curve
// winning exact ties. It returns false if no candidate remains, which is
// always the case for an empty composite.
func (c *Composite) ClosestPoint(pt Point) (Point, bool) {
	var bestR option[float64]
	var best Point
	for _, cv := range c.Curves() {
		p, ok := cv.ClosestPoint(pt)
		if !ok {
			continue
		}
		r := pt.DistanceSquared(p)
		if math.IsNaN(r) {
			continue
		}
		if !bestR.isSet || r < bestR.value {
			bestR.set(r)
			best = p
		}
	}
	return best, bestR.isSet
}

// String lists the composite's curves, one per line.
func (c *Composite) String() string {
	sb := &strings.Builder{}
	for i, cv := range c.Curves() {
		if i > 0 {
			sb.WriteByte('\n')
		}
		switch cv := cv.(type) {
		case Line:
			fmt.Fprintf(sb, "%d: line %v → %v", i, cv.P0, cv.P1)
		default:
			fmt.Fprintf(sb, "%d: %T %v → %v", i, cv, cv.Start(), cv.End())
		}
	}
	return sb.String()
}
