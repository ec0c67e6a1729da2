package lissajous

import (
	"slices"

	"honnef.co/go/lissajous/curve"
)

// State is everything that outlives a frame: the figure's parameters and the
// animation clock.
type State struct {
	Params Params
	Clock  Clock
}

// NewState returns a state with [DefaultParams] at time 0.
func NewState() *State {
	return &State{Params: DefaultParams()}
}

// Apply applies updates in order.
func (s *State) Apply(updates ...Update) {
	for _, u := range updates {
		s.Params.Set(u.ID, u.Value)
	}
}

// Frame is everything needed to draw one frame.
type Frame struct {
	// Params are the sanitized parameters the path was sampled with.
	Params Params
	// Time is the clock value the path was sampled at.
	Time     float64
	Path     Path
	Viewport Viewport
	// Invalid is non-nil if the state's parameters had to be sanitized. It
	// wraps ErrInvalidParameter. The frame is still valid.
	Invalid error
}

// Pipeline turns a [State] into frames. The zero value samples sequentially
// on the [WorkSize] canvas.
type Pipeline struct {
	Sampler Sampler
	// Workers is the number of goroutines sampling may use.
	Workers int

	pairs []SamplePair
	path  Path
}

func (pl *Pipeline) canvas() curve.Size {
	if pl.Sampler.Canvas == (curve.Size{}) {
		return WorkSize
	}
	return pl.Sampler.Canvas
}

// Frame samples the figure described by s and projects the canvas onto an
// output of size out. It returns an error wrapping [ErrDegenerateViewport] if
// out is degenerate, in which case nothing should be drawn this frame.
//
// The returned frame's path may share memory with the previous frame's.
func (pl *Pipeline) Frame(s *State, out curve.Size) (Frame, error) {
	canvas := pl.canvas()
	vp, err := Project(canvas, out)
	if err != nil {
		return Frame{}, err
	}

	params, invalid := s.Params.Sanitize()
	time := s.Clock.Elapsed()
	sampler := Sampler{Canvas: canvas}
	pl.pairs = sampler.SampleParallel(pl.pairs[:0], params, time, pl.Workers)

	pl.path.Build(slices.Values(pl.pairs))
	return Frame{
		Params:   params,
		Time:     time,
		Path:     pl.path,
		Viewport: vp,
		Invalid:  invalid,
	}, nil
}
