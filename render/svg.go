package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/mcpde/wos"
)

// WriteSVG writes a standalone SVG document showing b on the unit square,
// scaled to width×height pixels with y pointing up.
func WriteSVG(w io.Writer, b *wos.Composite, width, height int, lineWidth float64, clr color.Color) error {
	r, g, bl, _ := clr.RGBA()
	stroke := fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, bl>>8)
	if _, err := fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n"+
			`<g transform="matrix(%d 0 0 %d 0 %d)">`+"\n"+
			`<path fill="none" stroke="%s" stroke-width="%g" vector-effect="non-scaling-stroke" d="`,
		width, height, width, height, width, -height, height, stroke, lineWidth); err != nil {
		return err
	}
	if err := b.WriteSVG(w, wos.SVGOptions{MaxPrecision: 6}); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\"/>\n</g>\n</svg>\n")
	return err
}
