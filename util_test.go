package lissajous

import (
	"math"
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

func assertNear(t *testing.T, got, want curve.Point, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Hypot(); d > epsilon || math.IsNaN(d) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func finite(pt curve.Point) bool {
	return !math.IsNaN(pt.X) && !math.IsInf(pt.X, 0) &&
		!math.IsNaN(pt.Y) && !math.IsInf(pt.Y, 0)
}
