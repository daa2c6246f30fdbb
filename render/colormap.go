package render

import (
	"image/color"
	"math"
)

// Material design colours used by [DefaultColorMap].
var (
	BlueGrey700     = color.RGBA{0x45, 0x5a, 0x64, 0xff}
	Amber           = color.RGBA{0xff, 0xc1, 0x07, 0xff}
	DeepOrangeA700  = color.RGBA{0xdd, 0x2c, 0x00, 0xff}
	DefaultColorMap = NewColorMap(BlueGrey700, Amber, DeepOrangeA700)
)

// ColorMap maps normalized values in [0, 1] to colours by linear
// interpolation between evenly spaced stops.
type ColorMap struct {
	stops []color.RGBA
}

// NewColorMap returns a colour map through stops. It panics if fewer than
// two stops are given.
func NewColorMap(stops ...color.RGBA) ColorMap {
	if len(stops) < 2 {
		panic("render: a colour map needs at least two stops")
	}
	return ColorMap{stops: append([]color.RGBA(nil), stops...)}
}

// Normalized returns the colour at t, clamped to [0, 1]. NaN maps to
// transparent black.
func (m ColorMap) Normalized(t float64) color.RGBA {
	if math.IsNaN(t) {
		return color.RGBA{}
	}
	t = min(max(t, 0), 1)
	pos := t * float64(len(m.stops)-1)
	i := min(int(pos), len(m.stops)-2)
	frac := pos - float64(i)
	a, b := m.stops[i], m.stops[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + frac*(float64(y)-float64(x))))
	}
	return color.RGBA{
		R: lerp(a.R, b.R),
		G: lerp(a.G, b.G),
		B: lerp(a.B, b.B),
		A: lerp(a.A, b.A),
	}
}

// At returns the colour of v within [lo, hi]. If lo == hi, the range is
// widened to [lo, lo+1].
func (m ColorMap) At(v, lo, hi float64) color.RGBA {
	if hi == lo {
		hi = lo + 1
	}
	return m.Normalized((v - lo) / (hi - lo))
}
