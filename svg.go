package wos

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [Composite.SVG] and
// [Composite.WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts the composite to a string of SVG path commands.
//
// See [Composite.WriteSVG] for a version that writes to an [io.Writer]
// instead of returning a string.
func (c *Composite) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	c.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG converts the composite to SVG path commands and writes them to w.
//
// Each curve becomes its own subpath. A curve that starts where the previous
// one ended continues the current subpath without a move.
func (c *Composite) WriteSVG(w io.Writer, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			s = strings.TrimRight(s, "0")
			return strings.TrimSuffix(s, ".")
		}
	}
	var prev option[Point]
	for i, cv := range c.Curves() {
		if err != nil {
			return err
		}
		if i > 0 {
			writef(" ")
		}
		start := cv.Start()
		if !prev.isSet || prev.value != start {
			writef("M%s,%s ", format(start.X), format(start.Y))
		}
		switch cv := cv.(type) {
		case Line:
			writef("L%s,%s", format(cv.P1.X), format(cv.P1.Y))
		default:
			// Curves without a native SVG command are approximated by
			// their chord.
			end := cv.End()
			writef("L%s,%s", format(end.X), format(end.Y))
		}
		prev.set(cv.End())
	}
	return err
}
