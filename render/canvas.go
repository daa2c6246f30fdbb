package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/mcpde/wos"
	"golang.org/x/image/vector"
)

// ErrResolutionMismatch indicates a grid whose size differs from the
// canvas.
var ErrResolutionMismatch = errors.New("render: grid does not match canvas resolution")

// Canvas is a raster image of the unit square. Domain point (0, 0) is the
// bottom-left corner and (1, 1) the top-right corner.
type Canvas struct {
	Width  int
	Height int
	img    *image.RGBA
}

// NewCanvas returns a transparent canvas of the given size in pixels.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// Image returns the canvas' backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// pixel returns the continuous pixel coordinates of a domain point.
func (c *Canvas) pixel(pt wos.Point) (float32, float32) {
	return float32(pt.X * float64(c.Width)), float32((1 - pt.Y) * float64(c.Height))
}

// DrawGrid colours every pixel from its grid cell, normalizing over the
// grid's range. The grid must have exactly Width*Height values; anything
// else is rejected with [ErrResolutionMismatch] rather than cropped or
// padded.
func (c *Canvas) DrawGrid(g *wos.Grid, cm ColorMap) error {
	if len(g.Values) != c.Width*c.Height || g.Width != c.Width {
		return fmt.Errorf("%w: %d values for %dx%d canvas", ErrResolutionMismatch, len(g.Values), c.Width, c.Height)
	}
	lo, hi := g.Range()
	for i, v := range g.Values {
		col := i % c.Width
		row := i / c.Width
		c.img.SetRGBA(col, c.Height-1-row, cm.At(v, lo, hi))
	}
	return nil
}

// DrawBoundary strokes every curve of b with the given width in pixels.
// Curves other than lines are drawn as their chord.
func (c *Canvas) DrawBoundary(b *wos.Composite, width float64, clr color.Color) {
	if b.Len() == 0 || width <= 0 {
		return
	}
	r := vector.NewRasterizer(c.Width, c.Height)
	r.DrawOp = draw.Over
	hw := float32(width / 2)
	for _, cv := range b.Curves() {
		x0, y0 := c.pixel(cv.Start())
		x1, y1 := c.pixel(cv.End())
		d := wos.Vec(float64(x1-x0), float64(y1-y0))
		l := float32(d.Hypot())
		if l == 0 {
			continue
		}
		// Unit direction and left normal, scaled to half the stroke width.
		dx, dy := (x1-x0)/l*hw, (y1-y0)/l*hw
		nx, ny := -dy, dx
		// Square caps.
		x0, y0 = x0-dx, y0-dy
		x1, y1 = x1+dx, y1+dy
		r.MoveTo(x0+nx, y0+ny)
		r.LineTo(x1+nx, y1+ny)
		r.LineTo(x1-nx, y1-ny)
		r.LineTo(x0-nx, y0-ny)
		r.ClosePath()
	}
	r.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{})
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Options control [Render].
type Options struct {
	ColorMap ColorMap
	// LineWidth is the boundary's stroke width in pixels. Zero omits the
	// boundary.
	LineWidth float64
	LineColor color.Color
}

// Render draws g and, on top, b onto a canvas of g's size.
func Render(g *wos.Grid, b *wos.Composite, opts Options) (*Canvas, error) {
	cm := opts.ColorMap
	if cm.stops == nil {
		cm = DefaultColorMap
	}
	clr := opts.LineColor
	if clr == nil {
		clr = color.Black
	}
	c := NewCanvas(g.Width, g.Height)
	if err := c.DrawGrid(g, cm); err != nil {
		return nil, err
	}
	c.DrawBoundary(b, opts.LineWidth, clr)
	return c, nil
}
