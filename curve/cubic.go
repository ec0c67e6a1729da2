package curve

import (
	"iter"
	"math"
)

// CubicBez is a cubic Bézier curve from P0 to P3 with control points P1 and
// P2.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval returns the point of the curve at t, with t in [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	v := Vec2(c.P0).Mul(mt * mt * mt).
		Add(Vec2(c.P1).Mul(mt * mt * 3.0).
			Add(Vec2(c.P2).Mul(mt * 3.0).
				Add(Vec2(c.P3).Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Flatten approximates the curve with lines such that no point of the curve
// deviates from the lines by more than tolerance. It yields the end points
// of the lines, excluding P0 and including P3.
//
// Unlike [QuadBez.Flatten], this subdivides uniformly in t, using the bound
// on the second derivative to pick the number of lines. This is good enough
// for the short arcs the stroker produces.
func (c CubicBez) Flatten(tolerance float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		dd0 := Vec2(c.P0).Sub(Vec2(c.P1).Mul(2)).Add(Vec2(c.P2)).Hypot()
		dd1 := Vec2(c.P1).Sub(Vec2(c.P2).Mul(2)).Add(Vec2(c.P3)).Hypot()
		// |B''(t)| <= 6·max(dd0, dd1), and a chord of a curve with bounded
		// second derivative M deviates by at most M·h²/8.
		m := 6 * max(dd0, dd1)
		n := 1
		if m > 0 && tolerance > 0 {
			n = max(int(math.Ceil(math.Sqrt(m/(8*tolerance)))), 1)
		}
		step := 1.0 / float64(n)
		for i := 1; i < n; i++ {
			if !yield(c.Eval(float64(i) * step)) {
				return
			}
		}
		yield(c.P3)
	}
}
