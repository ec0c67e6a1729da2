// Package raster draws figures into images in software, using the
// rasterizer from golang.org/x/image/vector.
package raster

import (
	"image"
	"image/draw"
	"iter"

	"golang.org/x/image/vector"

	"honnef.co/go/lissajous"
	"honnef.co/go/lissajous/curve"
)

// DefaultTolerance is the default flattening tolerance, in output pixels.
const DefaultTolerance = 0.1

// Renderer draws figures into RGBA images. A Renderer reuses its buffers
// between frames and must not be used concurrently.
type Renderer struct {
	// Tolerance is the maximum distance, in output pixels, between the
	// figure and the lines it is approximated with.
	Tolerance float64

	r       *vector.Rasterizer
	outline curve.BezPath
}

// NewRenderer returns a renderer using [DefaultTolerance].
func NewRenderer() *Renderer {
	return &Renderer{Tolerance: DefaultTolerance}
}

// Clear fills dst with the style's background color.
func Clear(dst draw.Image, style Style) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(style.Background), image.Point{}, draw.Src)
}

// RenderFrame clears dst and draws the frame's path through its viewport.
// dst should have the size of the frame's output surface.
func (rd *Renderer) RenderFrame(dst *image.RGBA, f lissajous.Frame, style Style) {
	rd.Render(dst, f.Path.Elements(), f.Viewport, style)
}

// Render clears dst and strokes the path described by elements, which are in
// canvas coordinates, mapping them into dst with vp. The output surface's
// origin is dst's top-left corner, whatever dst's bounds.
func (rd *Renderer) Render(dst *image.RGBA, elements iter.Seq[curve.PathElement], vp lissajous.Viewport, style Style) {
	Clear(dst, style)

	bounds := dst.Bounds()
	if bounds.Empty() {
		return
	}
	tol := rd.Tolerance
	if !(tol > 0) {
		tol = DefaultTolerance
	}
	surface := curve.Rect{X1: float64(bounds.Dx()), Y1: float64(bounds.Dy())}
	rd.outline = StrokeOutline(rd.outline[:0], curve.Transform(elements, vp.Transform), style.Width*vp.Ratio, tol, surface)
	if len(rd.outline) == 0 {
		return
	}

	if rd.r == nil {
		rd.r = vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	} else {
		rd.r.Reset(bounds.Dx(), bounds.Dy())
	}
	rd.r.DrawOp = draw.Over
	fill(rd.r, rd.outline)
	rd.r.Draw(dst, bounds, image.NewUniform(style.Stroke), image.Point{})
}

// fill adds the outline to the rasterizer.
func fill(r *vector.Rasterizer, outline curve.BezPath) {
	for _, el := range outline {
		switch el.Kind {
		case curve.MoveToKind:
			r.MoveTo(float32(el.P0.X), float32(el.P0.Y))
		case curve.LineToKind:
			r.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case curve.QuadToKind:
			r.QuadTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y),
			)
		case curve.CubicToKind:
			r.CubeTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y),
				float32(el.P2.X), float32(el.P2.Y),
			)
		case curve.ClosePathKind:
			r.ClosePath()
		}
	}
}
