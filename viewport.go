package lissajous

import (
	"errors"
	"fmt"
	"math"

	"honnef.co/go/lissajous/curve"
)

// ErrDegenerateViewport is returned by [Project] when either size has a side
// that isn't a positive, finite number.
var ErrDegenerateViewport = errors.New("lissajous: degenerate viewport")

// Viewport maps the logical canvas onto the output surface.
type Viewport struct {
	Work curve.Size
	Out  curve.Size
	// Ratio is the uniform scale factor from canvas to output.
	Ratio float64
	// Transform scales the canvas by Ratio and centers it in the output.
	Transform curve.Affine
}

func validSize(sz curve.Size) bool {
	return !sz.IsEmpty() && !sz.IsInf()
}

// Project computes the viewport that scales a canvas of size work uniformly
// so that it fits into out, and centers it there. The axis with room to
// spare gets equal padding on both sides. Both sizes use y-down coordinates
// with the origin in the top-left corner.
func Project(work, out curve.Size) (Viewport, error) {
	if !validSize(out) {
		return Viewport{}, fmt.Errorf("%w: output size %s", ErrDegenerateViewport, out)
	}
	if !validSize(work) {
		return Viewport{}, fmt.Errorf("%w: canvas size %s", ErrDegenerateViewport, work)
	}

	ratio := math.Min(out.Width/work.Width, out.Height/work.Height)
	offset := curve.Vec(
		(out.Width-work.Width*ratio)*0.5,
		(out.Height-work.Height*ratio)*0.5,
	)
	return Viewport{
		Work:      work,
		Out:       out,
		Ratio:     ratio,
		Transform: curve.UniformScale(ratio).ThenTranslate(offset),
	}, nil
}

// Offset returns the position of the canvas' top-left corner in the output,
// which is also the padding on the left and top.
func (vp Viewport) Offset() curve.Vec2 {
	return vp.Transform.Translation()
}

// Content returns the area of the output covered by the canvas.
func (vp Viewport) Content() curve.Rect {
	return curve.NewRectFromOrigin(curve.Point(vp.Offset()), vp.Work.Scale(vp.Ratio))
}

// Clip returns Transform followed by the projection from the output surface
// to clip space, as used by GPU backends.
func (vp Viewport) Clip() curve.Affine {
	return curve.Orthographic(vp.Out).Mul(vp.Transform)
}

// ToCanvas maps a point of the output surface back onto the canvas.
func (vp Viewport) ToCanvas(pt curve.Point) curve.Point {
	return pt.Transform(vp.Transform.Invert())
}
