package app

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/mcpde/wos"
)

var boundaries = map[string]func() (*wos.Composite, error){
	"square": func() (*wos.Composite, error) {
		return wos.Polygon(wos.Pt(0, 0), wos.Pt(1, 0), wos.Pt(1, 1), wos.Pt(0, 1))
	},
	"triangle": func() (*wos.Composite, error) {
		return wos.Polygon(wos.Pt(0.05, 0.05), wos.Pt(0.95, 0.05), wos.Pt(0.5, 0.95))
	},
	// A house outline in metres, fitted into the unit square.
	"house": func() (*wos.Composite, error) {
		c, err := wos.Polygon(wos.Pt(0, 0), wos.Pt(10, 0), wos.Pt(10, 6), wos.Pt(5, 9), wos.Pt(0, 6))
		if err != nil {
			return nil, err
		}
		return fit(c, 0.05)
	},
	// The three strokes of a capital A. The domain isn't closed, so walks
	// starting outside the letter often end exhausted.
	"letter-a": func() (*wos.Composite, error) {
		var c wos.Composite
		strokes := [][2]wos.Point{
			{wos.Pt(0.1, 0), wos.Pt(0.5, 1)},
			{wos.Pt(0.3, 0.5), wos.Pt(0.7, 0.5)},
			{wos.Pt(0.5, 1), wos.Pt(0.9, 0)},
		}
		for _, s := range strokes {
			if err := c.PushLine(s[0], s[1]); err != nil {
				return nil, err
			}
		}
		return &c, nil
	},
}

var boundaryFuncs = map[string]wos.BoundaryFunc{
	"linear":   func(p wos.Point) float64 { return p.X + p.Y },
	"constant": func(wos.Point) float64 { return 1 },
	"x":        func(p wos.Point) float64 { return p.X },
	"saddle":   func(p wos.Point) float64 { return p.X*p.X - p.Y*p.Y },
	"sin":      func(p wos.Point) float64 { return math.Sin(2 * math.Pi * p.X) },
}

func names[V any](m map[string]V) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return strings.Join(keys, ", ")
}

// fit scales c uniformly into the unit square, leaving margin on every side.
func fit(c *wos.Composite, margin float64) (*wos.Composite, error) {
	bbox, ok := c.BoundingBox()
	if !ok {
		return nil, wos.ErrEmptyBoundary
	}
	aff, err := wos.FitUnitSquare(bbox, margin)
	if err != nil {
		return nil, err
	}
	return c.Transform(aff)
}

// Boundary builds the named boundary.
func Boundary(name string) (*wos.Composite, error) {
	build, ok := boundaries[name]
	if !ok {
		return nil, fmt.Errorf("unknown shape %q (want one of %s)", name, names(boundaries))
	}
	return build()
}

// BoundaryFunc returns the named boundary function.
func BoundaryFunc(name string) (wos.BoundaryFunc, error) {
	fn, ok := boundaryFuncs[name]
	if !ok {
		return nil, fmt.Errorf("unknown boundary function %q (want one of %s)", name, names(boundaryFuncs))
	}
	return fn, nil
}
