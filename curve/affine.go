package curve

import "iter"

// Affine is a 2D affine transform. Its six fields are the first two rows of
// the augmented matrix
//
//	| N0 N2 N4 |
//	| N1 N3 N5 |
//	|  0  0  1 |
//
// so that N4 and N5 hold the translation.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// UniformScale returns the transform scaling both axes by f about the origin.
func UniformScale(f float64) Affine {
	return Affine{N0: f, N3: f}
}

// Orthographic returns the transform from a y-down surface of the given size,
// origin top-left, to y-up clip space, where the surface spans [-1, 1] on both
// axes.
func Orthographic(screen Size) Affine {
	return Affine{
		N0: 2 / screen.Width,
		N3: -2 / screen.Height,
		N4: -1,
		N5: 1,
	}
}

// Mul composes two transforms. The result applies o first, then aff.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		N0: aff.N0*o.N0 + aff.N2*o.N1,
		N1: aff.N1*o.N0 + aff.N3*o.N1,
		N2: aff.N0*o.N2 + aff.N2*o.N3,
		N3: aff.N1*o.N2 + aff.N3*o.N3,
		N4: aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		N5: aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenTranslate returns aff followed by a translation by v.
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// Invert returns the inverse transform. A singular transform inverts to NaNs
// and infinities.
func (aff Affine) Invert() Affine {
	k := 1 / aff.Determinant()
	return Affine{
		N0: k * aff.N3,
		N1: -k * aff.N1,
		N2: -k * aff.N2,
		N3: k * aff.N0,
		N4: k * (aff.N2*aff.N5 - aff.N3*aff.N4),
		N5: k * (aff.N1*aff.N4 - aff.N0*aff.N5),
	}
}

// Translation returns the offset aff applies to the origin.
func (aff Affine) Translation() Vec2 {
	return Vec2{X: aff.N4, Y: aff.N5}
}

// Transform returns an iterator that applies aff to every value of seq.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				return
			}
		}
	}
}
