package lissajous

import "math"

// Clock is the animation clock. It holds the elapsed time in seconds, which
// only ever grows. The zero value is a clock at time 0.
type Clock struct {
	elapsed float64
}

// Elapsed returns the elapsed time in seconds.
func (c Clock) Elapsed() float64 {
	return c.elapsed
}

// Set moves the clock to elapsed. Values that would move the clock backwards,
// and values that aren't finite, are ignored. Set reports whether the clock
// changed.
func (c *Clock) Set(elapsed float64) bool {
	if math.IsNaN(elapsed) || math.IsInf(elapsed, 0) || elapsed <= c.elapsed {
		return false
	}
	c.elapsed = elapsed
	return true
}

// Advance moves the clock forward by dt seconds. Negative and non-finite
// durations are ignored.
func (c *Clock) Advance(dt float64) bool {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return false
	}
	return c.Set(c.elapsed + dt)
}
