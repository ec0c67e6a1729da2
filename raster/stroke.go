package raster

import (
	"iter"

	"honnef.co/go/lissajous/curve"
)

// The distance of the control points of a cubic Bézier approximating a
// quarter circle of radius 1.
const quarterArcK = 0.5522847498

// StrokeOutline appends to dst the outline of the path described by
// elements, stroked with the given width, round caps and round joins.
//
// The path is first flattened to lines with the given tolerance. Each line
// then becomes a capsule: a rectangle with a half circle on either end. All
// capsules wind the same way, so filling the outline with the nonzero rule
// yields their union, and the half circles of adjacent capsules form the
// round joins. Lines shorter than tolerance are merged with the lines
// following them.
//
// Lines are cut off a pixel beyond the reach of the stroke outside of clip,
// and dropped if they lie entirely outside of it, so the outline stays close
// to clip however far the path strays.
func StrokeOutline(dst curve.BezPath, elements iter.Seq[curve.PathElement], width, tolerance float64, clip curve.Rect) curve.BezPath {
	r := width / 2
	if !(r > 0) {
		return dst
	}
	clip = clip.Inflate(r+1, r+1)

	var (
		start   curve.Point // start of the subpath
		anchor  curve.Point // start of the next capsule
		last    curve.Point // current point
		open    bool        // whether there is a current point
		pending bool        // whether anchor..last hasn't been stroked yet
	)
	flush := func() {
		if pending {
			if l, ok := (curve.Line{P0: anchor, P1: last}).Clip(clip); ok {
				dst = capsule(dst, l.P0, l.P1, r)
			}
			pending = false
		}
	}
	lineTo := func(pt curve.Point) {
		last = pt
		pending = true
		if anchor.Distance(pt) >= tolerance {
			flush()
			anchor = pt
		}
	}

	for el := range curve.Flatten(elements, tolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			flush()
			start, anchor, last = el.P0, el.P0, el.P0
			open = true
		case curve.LineToKind:
			if open {
				lineTo(el.P0)
			}
		case curve.ClosePathKind:
			if open {
				lineTo(start)
				flush()
				anchor, last = start, start
			}
		}
	}
	flush()
	return dst
}

// capsule appends the outline of the line from a to b stroked with radius r
// and round caps. The outline always turns the same way, whatever the
// direction of the line. A line of zero length becomes a circle.
func capsule(dst curve.BezPath, a, b curve.Point, r float64) curve.BezPath {
	d, ok := curve.Line{P0: a, P1: b}.Direction()
	if !ok {
		d = curve.Vec(1, 0)
	}
	e := d.Mul(r)
	n := d.Turn90().Mul(r)

	dst.MoveTo(a.Translate(n))
	dst.LineTo(b.Translate(n))
	dst = quarterArc(dst, b, n, e)
	dst = quarterArc(dst, b, e, n.Negate())
	dst.LineTo(a.Translate(n.Negate()))
	dst = quarterArc(dst, a, n.Negate(), e.Negate())
	dst = quarterArc(dst, a, e.Negate(), n)
	dst.ClosePath()
	return dst
}

// quarterArc appends a cubic approximating the quarter circle around c from
// c+u to c+v. u and v must be perpendicular and of equal length.
func quarterArc(dst curve.BezPath, c curve.Point, u, v curve.Vec2) curve.BezPath {
	dst.CubicTo(
		c.Translate(u.Add(v.Mul(quarterArcK))),
		c.Translate(v.Add(u.Mul(quarterArcK))),
		c.Translate(v),
	)
	return dst
}
