package raster

import "image/color"

var (
	Magenta = color.RGBA{R: 0xFF, B: 0xFF, A: 0xFF}
	Black   = color.RGBA{A: 0xFF}
)

// Style controls how a figure is drawn. Strokes always use round caps and
// round joins.
type Style struct {
	// Width is the stroke width in canvas units. It is scaled together with
	// the canvas.
	Width      float64
	Stroke     color.RGBA
	Background color.RGBA
}

// DefaultStyle returns a 3 units wide magenta stroke on black.
func DefaultStyle() Style {
	return Style{
		Width:      3,
		Stroke:     Magenta,
		Background: Black,
	}
}
