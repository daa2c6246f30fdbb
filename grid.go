package wos

import "math"

// Grid is the result of a solve: one estimate per cell, row-major.
//
// Value i belongs to column i mod Width and row i div Width, which sits at
// domain coordinate (col/Width, row/Height). len(Values) is always
// Width*Height.
type Grid struct {
	Width  int
	Height int
	Values []float64
	// Stats counts what the walks behind Values did.
	Stats WalkStats
}

func newGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Values: make([]float64, width*height),
	}
}

// Index returns the position of the cell at (col, row) in Values.
func (g *Grid) Index(col, row int) int {
	return row*g.Width + col
}

// At returns the estimate for the cell at (col, row).
func (g *Grid) At(col, row int) float64 {
	return g.Values[g.Index(col, row)]
}

// Coord returns the domain coordinate of the i'th cell.
func (g *Grid) Coord(i int) Point {
	col := i % g.Width
	row := i / g.Width
	return Pt(float64(col)/float64(g.Width), float64(row)/float64(g.Height))
}

// Range returns the smallest and largest estimate. NaN values are ignored.
// For a grid without any non-NaN values, both results are NaN.
func (g *Grid) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range g.Values {
		if math.IsNaN(v) {
			continue
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}
	if lo > hi {
		return math.NaN(), math.NaN()
	}
	return lo, hi
}

// WalkStats summarizes the walks of a solve.
type WalkStats struct {
	// Walks is the total number of walks.
	Walks int64
	// Stopped counts walks that came within the stop tolerance of the
	// boundary.
	Stopped int64
	// Exhausted counts walks that hit the step cap first. Their terminal
	// point may lie well inside the domain.
	Exhausted int64
	// Steps is the total number of jumps over all walks.
	Steps int64
}

func (st *WalkStats) record(res WalkResult) {
	st.Walks++
	st.Steps += int64(res.Steps)
	switch res.State {
	case Stopped:
		st.Stopped++
	case Exhausted:
		st.Exhausted++
	}
}
