package wos

type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

// Width returns the rectangle's width.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Contains reports whether pt lies within r, boundary included.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// BoundingBox returns the line's bounding box.
func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

// BoundingBox returns the smallest rectangle enclosing all lines of the
// composite, and false if the composite is empty. Other curves contribute
// their end points only.
func (c *Composite) BoundingBox() (Rect, bool) {
	var bbox option[Rect]
	for _, cv := range c.Curves() {
		var r Rect
		if l, ok := cv.(Line); ok {
			r = l.BoundingBox()
		} else {
			r = NewRectFromPoints(cv.Start(), cv.End())
		}
		if bbox.isSet {
			r = bbox.value.Union(r)
		}
		bbox.set(r)
	}
	return bbox.value, bbox.isSet
}
