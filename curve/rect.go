package curve

// Rect is an axis-aligned rectangle spanning from (X0, Y0) to (X1, Y1).
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns the rectangle with opposite corners p0 and p1.
// The result is normalized: X0 <= X1 and Y0 <= Y1.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromOrigin returns the normalized rectangle of the given size with
// one corner at origin.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return NewRectFromPoints(origin, origin.Translate(size.AsVec2()))
}

// Abs swaps coordinates as needed so that X0 <= X1 and Y0 <= Y1.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Contains reports whether pt lies inside the rectangle. The right and bottom
// edges are exclusive.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 && pt.X < r.X1 &&
		pt.Y >= r.Y0 && pt.Y < r.Y1
}

// Inflate grows the rectangle by dx on the left and right and by dy on the
// top and bottom.
func (r Rect) Inflate(dx, dy float64) Rect {
	r = r.Abs()
	return Rect{r.X0 - dx, r.Y0 - dy, r.X1 + dx, r.Y1 + dy}
}
