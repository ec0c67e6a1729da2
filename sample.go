package lissajous

import (
	"iter"
	"math"

	"golang.org/x/sync/errgroup"

	"honnef.co/go/lissajous/curve"
)

// WorkSize is the size of the logical canvas figures are drawn on.
var WorkSize = curve.Sz(1920, 1080)

// SamplePair is one sample of a figure together with the sample that follows
// it, in logical canvas coordinates.
type SamplePair struct {
	Point curve.Point
	Next  curve.Point
}

// Sampler evaluates figures centered on a canvas of the given size.
type Sampler struct {
	Canvas curve.Size
}

// NewSampler returns a sampler for the [WorkSize] canvas.
func NewSampler() Sampler {
	return Sampler{Canvas: WorkSize}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// eval is the figure with the animation time already folded into the phases.
type eval struct {
	ax, ay float64
	fx, fy float64
	px, py float64
	center curve.Point
}

func (s Sampler) eval(p Params, time float64) eval {
	return eval{
		ax:     p.AmplitudeX,
		ay:     p.AmplitudeY,
		fx:     p.FrequencyX,
		fy:     p.FrequencyY,
		px:     p.PhaseX + time,
		py:     p.PhaseY + time,
		center: s.Canvas.Center(),
	}
}

func (e *eval) at(i int) curve.Point {
	t := Radians(float64(i))
	return curve.Point{
		X: e.ax*math.Sin(e.fx*t+e.px) + e.center.X,
		Y: e.ay*math.Sin(e.fy*t+e.py) + e.center.Y,
	}
}

// At returns sample i of the figure at the given time. The angle advances by
// one degree per index.
func (s Sampler) At(p Params, time float64, i int) curve.Point {
	e := s.eval(p, time)
	return e.at(i)
}

// Sample returns the p.Detail sample pairs of the figure at the given time.
// Pair i holds samples i and i+1, so the Next point of one pair is exactly
// the Point of the pair after it. A Detail of zero or less yields nothing.
//
// The sequence is computed on the fly and can be iterated any number of
// times.
func (s Sampler) Sample(p Params, time float64) iter.Seq[SamplePair] {
	return func(yield func(SamplePair) bool) {
		if p.Detail <= 0 {
			return
		}
		e := s.eval(p, time)
		pt := e.at(0)
		for i := range p.Detail {
			next := e.at(i + 1)
			if !yield(SamplePair{Point: pt, Next: next}) {
				return
			}
			pt = next
		}
	}
}

// Append appends the sample pairs of the figure to dst and returns the
// extended slice.
func (s Sampler) Append(dst []SamplePair, p Params, time float64) []SamplePair {
	n := max(p.Detail, 0)
	dst = growPairs(dst, n)
	e := s.eval(p, time)
	fill(dst[len(dst)-n:], &e, 0)
	return dst
}

// parallelChunk is the number of samples evaluated by one goroutine.
const parallelChunk = 512

// SampleParallel is like [Sampler.Append], but evaluates chunks of the index
// range on up to workers goroutines. The result is identical to that of
// Append. Small figures are sampled on the calling goroutine.
func (s Sampler) SampleParallel(dst []SamplePair, p Params, time float64, workers int) []SamplePair {
	n := max(p.Detail, 0)
	if workers <= 1 || n <= parallelChunk {
		return s.Append(dst, p, time)
	}

	dst = growPairs(dst, n)
	out := dst[len(dst)-n:]
	e := s.eval(p, time)

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += parallelChunk {
		hi := min(lo+parallelChunk, n)
		g.Go(func() error {
			fill(out[lo:hi], &e, lo)
			return nil
		})
	}
	_ = g.Wait()
	return dst
}

func growPairs(dst []SamplePair, n int) []SamplePair {
	l := len(dst)
	if cap(dst)-l < n {
		grown := make([]SamplePair, l, l+n)
		copy(grown, dst)
		dst = grown
	}
	return dst[:l+n]
}

// fill computes the pairs starting at index first into out.
func fill(out []SamplePair, e *eval, first int) {
	if len(out) == 0 {
		return
	}
	pt := e.at(first)
	for i := range out {
		next := e.at(first + i + 1)
		out[i] = SamplePair{Point: pt, Next: next}
		pt = next
	}
}
