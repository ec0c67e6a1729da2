package raster

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/lissajous/curve"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func line(a, b curve.Point) curve.BezPath {
	return curve.BezPath{curve.MoveTo(a), curve.LineTo(b)}
}

var everywhere = curve.Rect{
	X0: math.Inf(-1), Y0: math.Inf(-1),
	X1: math.Inf(1), Y1: math.Inf(1),
}

func subpaths(p curve.BezPath) int {
	var n int
	for _, el := range p {
		if el.Kind == curve.MoveToKind {
			n++
		}
	}
	return n
}

// controlBox returns the bounds of all points of p, control points included.
func controlBox(p curve.BezPath) curve.Rect {
	var pts []curve.Point
	for _, el := range p {
		switch el.Kind {
		case curve.MoveToKind, curve.LineToKind:
			pts = append(pts, el.P0)
		case curve.QuadToKind:
			pts = append(pts, el.P0, el.P1)
		case curve.CubicToKind:
			pts = append(pts, el.P0, el.P1, el.P2)
		}
	}
	if len(pts) == 0 {
		return curve.Rect{}
	}
	box := curve.Rect{X0: pts[0].X, Y0: pts[0].Y, X1: pts[0].X, Y1: pts[0].Y}
	for _, pt := range pts[1:] {
		box.X0, box.Y0 = min(box.X0, pt.X), min(box.Y0, pt.Y)
		box.X1, box.Y1 = max(box.X1, pt.X), max(box.Y1, pt.Y)
	}
	return box
}

// signedArea returns the area enclosed by p, closing subpaths implicitly.
// Clockwise subpaths have positive area.
func signedArea(p curve.BezPath) float64 {
	var (
		a           float64
		start, last curve.Point
	)
	edge := func(to curve.Point) {
		a += last.X*to.Y - to.X*last.Y
		last = to
	}
	for el := range curve.Flatten(p.Elements(), 1e-5) {
		switch el.Kind {
		case curve.MoveToKind:
			edge(start)
			start, last = el.P0, el.P0
		case curve.LineToKind:
			edge(el.P0)
		case curve.ClosePathKind:
			edge(start)
		}
	}
	edge(start)
	return a / 2
}

func TestStrokeOutlineCapsule(t *testing.T) {
	out := StrokeOutline(nil, line(curve.Pt(10, 20), curve.Pt(30, 20)).Elements(), 3, 0.1, everywhere)
	kinds := make([]curve.PathElementKind, len(out))
	for i, el := range out {
		kinds[i] = el.Kind
	}
	want := []curve.PathElementKind{
		curve.MoveToKind,
		curve.LineToKind,
		curve.CubicToKind,
		curve.CubicToKind,
		curve.LineToKind,
		curve.CubicToKind,
		curve.CubicToKind,
		curve.ClosePathKind,
	}
	diff(t, want, kinds)
	diff(t, curve.Rect{X0: 8.5, Y0: 18.5, X1: 31.5, Y1: 21.5}, controlBox(out))

	// A rectangle plus a circle.
	wantArea := 20*3 + math.Pi*1.5*1.5
	if a := signedArea(out); math.Abs(math.Abs(a)-wantArea) > 0.01 {
		t.Errorf("got area %g, want ±%g", a, wantArea)
	}
}

func TestStrokeOutlineOrientation(t *testing.T) {
	// Capsules must all wind the same way, or overlapping capsules would
	// cancel out when filled.
	c := curve.Pt(50, 50)
	var signs []bool
	for deg := 0; deg < 360; deg += 30 {
		th := float64(deg) * math.Pi / 180
		end := c.Translate(curve.Vec(math.Cos(th), math.Sin(th)).Mul(20))
		out := StrokeOutline(nil, line(c, end).Elements(), 4, 0.1, everywhere)
		if n := subpaths(out); n != 1 {
			t.Fatalf("%d°: got %d subpaths", deg, n)
		}
		signs = append(signs, signedArea(out) > 0)
	}
	for i := range signs {
		if signs[i] != signs[0] {
			t.Fatalf("winding differs between directions: %v", signs)
		}
	}
}

func TestStrokeOutlineMergesShortLines(t *testing.T) {
	var p curve.BezPath
	p.MoveTo(curve.Pt(0, 0))
	p.LineTo(curve.Pt(0.01, 0))
	p.LineTo(curve.Pt(0.02, 0))
	p.LineTo(curve.Pt(5, 0))
	p.LineTo(curve.Pt(5, 0.01))
	out := StrokeOutline(nil, p.Elements(), 2, 0.1, everywhere)
	// 0→5 becomes one capsule, the short tail another.
	if n := subpaths(out); n != 2 {
		t.Errorf("got %d capsules, want 2", n)
	}
}

func TestStrokeOutlineDegenerate(t *testing.T) {
	if out := StrokeOutline(nil, line(curve.Pt(0, 0), curve.Pt(1, 1)).Elements(), 0, 0.1, everywhere); len(out) != 0 {
		t.Errorf("zero width produced %d elements", len(out))
	}
	if out := StrokeOutline(nil, slices.Values([]curve.PathElement{curve.MoveTo(curve.Pt(1, 1))}), 2, 0.1, everywhere); len(out) != 0 {
		t.Errorf("lone MoveTo produced %d elements", len(out))
	}

	// A line without length is a dot.
	out := StrokeOutline(nil, line(curve.Pt(5, 5), curve.Pt(5, 5)).Elements(), 2, 0.1, everywhere)
	if a := signedArea(out); math.Abs(math.Abs(a)-math.Pi) > 0.01 {
		t.Errorf("got area %g, want ±π", a)
	}
}

func TestStrokeOutlineQuads(t *testing.T) {
	var p curve.BezPath
	p.MoveTo(curve.Pt(0, 0))
	p.QuadTo(curve.Pt(50, 100), curve.Pt(100, 0))
	out := StrokeOutline(nil, p.Elements(), 2, 0.5, everywhere)
	box := controlBox(out)
	if box.X0 > -1 || box.X1 < 101 || box.Y1 < 50 || box.Y1 > 52 {
		t.Errorf("unexpected outline bounds %v", box)
	}
}

func TestStrokeOutlineClip(t *testing.T) {
	clip := curve.Rect{X1: 100, Y1: 50}

	// Cut a pixel beyond the reach of the stroke.
	out := StrokeOutline(nil, line(curve.Pt(-1e6, 20), curve.Pt(1e6, 20)).Elements(), 2, 0.1, clip)
	if n := subpaths(out); n != 1 {
		t.Fatalf("got %d subpaths, want 1", n)
	}
	box := controlBox(out)
	want := curve.Rect{X0: -3, Y0: 19, X1: 103, Y1: 21}
	if math.Abs(box.X0-want.X0) > 1e-6 || math.Abs(box.X1-want.X1) > 1e-6 ||
		math.Abs(box.Y0-want.Y0) > 1e-6 || math.Abs(box.Y1-want.Y1) > 1e-6 {
		t.Errorf("got outline bounds %v, want %v", box, want)
	}

	// Lines out of reach are dropped, lines within reach are kept.
	var p curve.BezPath
	p.MoveTo(curve.Pt(-50, -50))
	p.LineTo(curve.Pt(-50, 100))
	p.MoveTo(curve.Pt(-1.5, 10))
	p.LineTo(curve.Pt(-1.5, 20))
	p.MoveTo(curve.Pt(500, 500))
	p.LineTo(curve.Pt(500, 500))
	if n := subpaths(StrokeOutline(nil, p.Elements(), 2, 0.1, clip)); n != 1 {
		t.Errorf("got %d capsules, want 1", n)
	}
}
