package curve

import (
	"iter"
	"math"
)

// QuadBez is a quadratic Bézier curve from P0 to P2 with control point P1.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// IsLinear reports whether all three points lie on one line, within
// accuracy. A linear quadratic Bézier still isn't necessarily a line segment
// from P0 to P2: if the control point lies outside of the two end points, the
// curve doubles back.
func (q QuadBez) IsLinear(accuracy float64) bool {
	chord := q.P2.Sub(q.P0)
	cross := chord.Cross(q.P1.Sub(q.P0))
	return cross*cross <= accuracy*accuracy*chord.Hypot2()
}

// Flatten approximates the curve with lines such that no point of the curve
// deviates from the lines by more than tolerance. It yields the end points
// of the lines, excluding P0 and including P2.
func (q QuadBez) Flatten(tolerance float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if q.IsLinear(tolerance * 1e-3) {
			// The parabola degenerates to a line. The only point of
			// interest is where it turns around, if it does.
			dd := Vec2(q.P0).Sub(Vec2(q.P1).Mul(2)).Add(Vec2(q.P2))
			if a := dd.Hypot2(); a != 0 {
				t := -q.P1.Sub(q.P0).Dot(dd) / a
				if t > 0 && t < 1 {
					if !yield(q.Eval(t)) {
						return
					}
				}
			}
			yield(q.P2)
			return
		}

		sqrtTol := math.Sqrt(tolerance)
		params := q.estimateSubdiv(sqrtTol)
		n := max(int(math.Ceil(0.5*params.val/sqrtTol)), 1)
		step := 1.0 / float64(n)
		for i := 1; i < n; i++ {
			t := q.determineSubdivT(&params, float64(i)*step)
			if !yield(q.Eval(t)) {
				return
			}
		}
		yield(q.P2)
	}
}

// An approximation to $\int (1 + 4x^2) ^ -0.25 dx$
//
// This is used for flattening curves.
func approxParabolaIntegral(x float64) float64 {
	const d = 0.67
	return x / (1.0 - d + math.Sqrt(math.Sqrt(math.Pow(d, 4)+0.25*x*x)))
}

// An approximation to the inverse parabola integral.
func approxParabolaInvIntegral(x float64) float64 {
	const b = 0.39
	return x * (1.0 - b + math.Sqrt(b*b+0.25*x*x))
}

// Maps a value from 0..1 to 0..1.
func (q QuadBez) determineSubdivT(params *flattenParams, x float64) float64 {
	a := params.a0 + (params.a2-params.a0)*x
	u := approxParabolaInvIntegral(a)
	return (u - params.u0) * params.uscale
}

// estimateSubdiv maps the curve onto the parabola y = x² and measures how
// many subdivisions it needs. The curve must not be linear.
func (q QuadBez) estimateSubdiv(sqrtTol float64) flattenParams {
	d01 := q.P1.Sub(q.P0)
	d12 := q.P2.Sub(q.P1)
	dd := d01.Sub(d12)
	cross := q.P2.Sub(q.P0).Cross(dd)
	x0 := d01.Dot(dd) * (1.0 / cross)
	x2 := d12.Dot(dd) * (1.0 / cross)
	scale := math.Abs(cross / (dd.Hypot() * (x2 - x0)))

	a0 := approxParabolaIntegral(x0)
	a2 := approxParabolaIntegral(x2)
	var val float64
	if !math.IsInf(scale, 0) {
		da := math.Abs(a2 - a0)
		sqrtScale := math.Sqrt(scale)
		if math.Signbit(x0) == math.Signbit(x2) {
			val = da * sqrtScale
		} else {
			// The segment contains the curvature maximum.
			xmin := sqrtTol / sqrtScale
			val = sqrtTol * da / approxParabolaIntegral(xmin)
		}
	}
	u0 := approxParabolaInvIntegral(a0)
	u2 := approxParabolaInvIntegral(a2)
	return flattenParams{
		a0:     a0,
		a2:     a2,
		u0:     u0,
		uscale: 1.0 / (u2 - u0),
		val:    val,
	}
}

type flattenParams struct {
	a0     float64
	a2     float64
	u0     float64
	uscale float64
	// The number of subdivisions * 2 * sqrtTol.
	val float64
}
