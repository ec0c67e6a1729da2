package lissajous

import (
	"iter"
	"slices"

	"honnef.co/go/lissajous/curve"
)

// QuadSegment is a quadratic segment of a [Path]. It starts where the
// previous segment ended.
type QuadSegment struct {
	Ctrl curve.Point
	End  curve.Point
}

// Path is a single continuous path of quadratic segments. The zero value is
// the empty path.
type Path struct {
	Start    curve.Point
	Segments []QuadSegment
}

// ControlPoint returns the control point used between the samples pt and
// next: the point two thirds of the way from pt to next.
func ControlPoint(pt, next curve.Point) curve.Point {
	return curve.Point{
		X: (pt.X + 2*next.X) / 3,
		Y: (pt.Y + 2*next.Y) / 3,
	}
}

// SmoothElements turns sample pairs into path elements: a MoveTo to the
// first sample, then one QuadTo per pair, ending at the pair's next sample.
// There is never more than one MoveTo, so the result can be stroked as one
// piece. No pairs yield no elements.
func SmoothElements(pairs iter.Seq[SamplePair]) iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		first := true
		for pair := range pairs {
			if first {
				if !yield(curve.MoveTo(pair.Point)) {
					return
				}
				first = false
			}
			if !yield(curve.QuadTo(ControlPoint(pair.Point, pair.Next), pair.Next)) {
				return
			}
		}
	}
}

// Smooth collects the path described by [SmoothElements].
func Smooth(pairs iter.Seq[SamplePair]) Path {
	var p Path
	p.Build(pairs)
	return p
}

// Build replaces the contents of p with the path through pairs, reusing the
// memory of p's segments.
func (p *Path) Build(pairs iter.Seq[SamplePair]) {
	p.Start = curve.Point{}
	p.Segments = p.Segments[:0]
	first := true
	for pair := range pairs {
		if first {
			p.Start = pair.Point
			first = false
		}
		p.Segments = append(p.Segments, QuadSegment{
			Ctrl: ControlPoint(pair.Point, pair.Next),
			End:  pair.Next,
		})
	}
}

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.Segments)
}

// Elements returns the path as path elements. An empty path yields nothing.
func (p Path) Elements() iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		if p.IsEmpty() {
			return
		}
		if !yield(curve.MoveTo(p.Start)) {
			return
		}
		for _, seg := range p.Segments {
			if !yield(curve.QuadTo(seg.Ctrl, seg.End)) {
				return
			}
		}
	}
}

// BezPath converts the path to a [curve.BezPath].
func (p Path) BezPath() curve.BezPath {
	return slices.Collect(p.Elements())
}
