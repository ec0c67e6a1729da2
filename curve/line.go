package curve

// Line is a line segment from P0 to P1.
type Line struct {
	P0 Point
	P1 Point
}

// Direction returns the unit vector pointing from P0 to P1, and false if the
// line has no length.
func (l Line) Direction() (Vec2, bool) {
	d := l.P1.Sub(l.P0)
	if h := d.Hypot(); h > 0 {
		return d.Mul(1 / h), true
	}
	return Vec2{}, false
}

// Clip returns the part of the line inside the normalized rectangle r,
// including its edges, and false if the line misses r entirely. The clipped
// line keeps its direction.
func (l Line) Clip(r Rect) (Line, bool) {
	if r.Contains(l.P0) && r.Contains(l.P1) {
		return l, true
	}

	// Liang–Barsky: each edge of r is a constraint p·t <= q on the line's
	// parameter t.
	d := l.P1.Sub(l.P0)
	t0, t1 := 0.0, 1.0
	edge := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return false
			}
			t1 = min(t1, t)
		}
		return true
	}
	if !edge(-d.X, l.P0.X-r.X0) ||
		!edge(d.X, r.X1-l.P0.X) ||
		!edge(-d.Y, l.P0.Y-r.Y0) ||
		!edge(d.Y, r.Y1-l.P0.Y) {
		return Line{}, false
	}

	out := l
	if t0 > 0 {
		out.P0 = l.P0.Translate(d.Mul(t0))
	}
	if t1 < 1 {
		out.P1 = l.P0.Translate(d.Mul(t1))
	}
	return out, true
}
