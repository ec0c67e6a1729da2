package curve

import (
	"fmt"
	"math"
)

// Size is a width and a height.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{Width: w, Height: h}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) AsVec2() Vec2 {
	return Vec2{X: sz.Width, Y: sz.Height}
}

// Center returns the middle of a rectangle of this size at the origin.
func (sz Size) Center() Point {
	return Point{X: sz.Width / 2, Y: sz.Height / 2}
}

// IsEmpty reports whether either side is zero or negative. NaN sides count as
// empty.
func (sz Size) IsEmpty() bool {
	return !(sz.Width > 0) || !(sz.Height > 0)
}

// IsInf reports whether either side is infinite.
func (sz Size) IsInf() bool {
	return math.IsInf(sz.Width, 0) || math.IsInf(sz.Height, 0)
}

// Scale multiplies both sides by f.
func (sz Size) Scale(f float64) Size {
	return Size{Width: sz.Width * f, Height: sz.Height * f}
}
