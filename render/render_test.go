package render

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcpde/wos"
)

func unitSquare(t *testing.T) *wos.Composite {
	t.Helper()
	c, err := wos.Polygon(wos.Pt(0, 0), wos.Pt(1, 0), wos.Pt(1, 1), wos.Pt(0, 1))
	require.NoError(t, err)
	return c
}

func TestColorMapStops(t *testing.T) {
	cm := DefaultColorMap
	require.Equal(t, BlueGrey700, cm.Normalized(0))
	require.Equal(t, Amber, cm.Normalized(0.5))
	require.Equal(t, DeepOrangeA700, cm.Normalized(1))
	require.Equal(t, BlueGrey700, cm.Normalized(-4))
	require.Equal(t, DeepOrangeA700, cm.Normalized(7))
	require.Equal(t, color.RGBA{}, cm.Normalized(math.NaN()))

	bw := NewColorMap(color.RGBA{0, 0, 0, 255}, color.RGBA{200, 100, 50, 255})
	require.Equal(t, color.RGBA{100, 50, 25, 255}, bw.Normalized(0.5))
	require.Equal(t, color.RGBA{100, 50, 25, 255}, bw.At(3, 2, 4))
	// A flat range is widened by one.
	require.Equal(t, color.RGBA{0, 0, 0, 255}, bw.At(5, 5, 5))

	require.Panics(t, func() { NewColorMap(Amber) })
}

func TestDrawGridRejectsMismatch(t *testing.T) {
	c := NewCanvas(4, 3)
	g := &wos.Grid{Width: 4, Height: 2, Values: make([]float64, 8)}
	require.ErrorIs(t, c.DrawGrid(g, DefaultColorMap), ErrResolutionMismatch)

	g = &wos.Grid{Width: 4, Height: 3, Values: make([]float64, 13)}
	require.ErrorIs(t, c.DrawGrid(g, DefaultColorMap), ErrResolutionMismatch)

	_, err := Render(&wos.Grid{Width: 2, Height: 2, Values: []float64{1}}, nil, Options{})
	require.ErrorIs(t, err, ErrResolutionMismatch)
}

func TestDrawGridOrientation(t *testing.T) {
	// Row 0 is the bottom of the domain and the bottom of the image.
	g := &wos.Grid{Width: 2, Height: 2, Values: []float64{0, 0, 1, 1}}
	c := NewCanvas(2, 2)
	require.NoError(t, c.DrawGrid(g, DefaultColorMap))
	img := c.Image()
	require.Equal(t, BlueGrey700, img.RGBAAt(0, 1))
	require.Equal(t, BlueGrey700, img.RGBAAt(1, 1))
	require.Equal(t, DeepOrangeA700, img.RGBAAt(0, 0))
	require.Equal(t, DeepOrangeA700, img.RGBAAt(1, 0))
}

func TestDrawBoundary(t *testing.T) {
	var b wos.Composite
	require.NoError(t, b.PushLine(wos.Pt(0, 0.5), wos.Pt(1, 0.5)))
	c := NewCanvas(40, 40)
	c.DrawBoundary(&b, 4, color.Black)
	img := c.Image()
	// The line runs through pixel row 20.
	require.GreaterOrEqual(t, img.RGBAAt(20, 20).A, uint8(0xf0))
	require.GreaterOrEqual(t, img.RGBAAt(5, 19).A, uint8(0xf0))
	require.Equal(t, uint8(0), img.RGBAAt(20, 5).A)
	require.Equal(t, uint8(0), img.RGBAAt(20, 35).A)

	// Nothing to draw.
	empty := NewCanvas(8, 8)
	empty.DrawBoundary(&wos.Composite{}, 4, color.Black)
	empty.DrawBoundary(&b, 0, color.Black)
	for _, px := range empty.Image().Pix {
		require.Zero(t, px)
	}
}

func TestRenderPNG(t *testing.T) {
	solver, err := wos.NewSolver(wos.Config{
		Width: 16, Height: 12, WalksPerCell: 4, MaxWalkLength: 50, StopTolerance: 1e-3,
	}, wos.WithSeed(5))
	require.NoError(t, err)
	square := unitSquare(t)
	g, err := solver.Solve(square, func(p wos.Point) float64 { return p.X * p.Y })
	require.NoError(t, err)

	c, err := Render(g, square, Options{LineWidth: 2})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, c.WritePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 16, img.Bounds().Dx())
	require.Equal(t, 12, img.Bounds().Dy())
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, unitSquare(t), 100, 50, 2, Amber))
	out := buf.String()
	require.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="100" height="50"`))
	require.Contains(t, out, `transform="matrix(100 0 0 -50 0 50)"`)
	require.Contains(t, out, `stroke="#ffc107"`)
	require.Contains(t, out, `d="M0,0 L1,0 L1,1 L0,1 L0,0"/>`)
}
