package lissajous

import (
	"errors"
	"math"
	"slices"
	"testing"

	"honnef.co/go/lissajous/curve"
)

func TestStateApply(t *testing.T) {
	s := NewState()
	s.Apply(
		Update{ID: AmplitudeX, Value: 100},
		Update{ID: Detail, Value: 12.6},
		Update{ID: AmplitudeX, Value: 200},
	)
	want := DefaultParams()
	want.AmplitudeX = 200
	want.Detail = 13
	diff(t, want, s.Params)
}

func TestPipelineFrame(t *testing.T) {
	s := NewState()
	s.Clock.Set(2)
	var pl Pipeline
	f, err := pl.Frame(s, curve.Sz(960, 1080))
	if err != nil {
		t.Fatal(err)
	}
	if f.Invalid != nil {
		t.Errorf("unexpected invalid parameters: %v", f.Invalid)
	}
	if f.Time != 2 {
		t.Errorf("got time %g, want 2", f.Time)
	}
	if f.Viewport.Ratio != 0.5 {
		t.Errorf("got ratio %g, want 0.5", f.Viewport.Ratio)
	}
	want := Smooth(NewSampler().Sample(s.Params, 2))
	diff(t, want, f.Path)

	pl.Workers = 4
	f, err = pl.Frame(s, curve.Sz(960, 1080))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, want, f.Path)
}

func TestPipelineFrameDegenerate(t *testing.T) {
	s := NewState()
	var pl Pipeline
	for _, out := range []curve.Size{curve.Sz(0, 1080), curve.Sz(1920, -1)} {
		if _, err := pl.Frame(s, out); !errors.Is(err, ErrDegenerateViewport) {
			t.Errorf("%s: got error %v, want ErrDegenerateViewport", out, err)
		}
	}
	// The next frame recovers.
	if _, err := pl.Frame(s, curve.Sz(1920, 1080)); err != nil {
		t.Errorf("got error %v after resize", err)
	}
}

func TestPipelineFrameSanitizes(t *testing.T) {
	s := NewState()
	s.Params.AmplitudeY = math.NaN()
	s.Params.Detail = -3
	var pl Pipeline
	f, err := pl.Frame(s, curve.Sz(1920, 1080))
	if err != nil {
		t.Fatal(err)
	}
	if !errors.Is(f.Invalid, ErrInvalidParameter) {
		t.Errorf("got %v, want ErrInvalidParameter", f.Invalid)
	}
	if !f.Path.IsEmpty() {
		t.Errorf("got %d segments for negative detail", f.Path.Len())
	}
	if !math.IsNaN(s.Params.AmplitudeY) {
		t.Errorf("Frame modified the state")
	}

	s.Params.Detail = 10
	f, _ = pl.Frame(s, curve.Sz(1920, 1080))
	for el := range f.Path.Elements() {
		if !finite(el.P0) || !finite(el.P1) {
			t.Fatalf("non-finite point in %s", el)
		}
	}
	if n := len(slices.Collect(f.Path.Elements())); n != 11 {
		t.Errorf("got %d elements, want 11", n)
	}
}

func TestPipelineCanvas(t *testing.T) {
	s := NewState()
	s.Params = Params{Detail: 1}
	pl := Pipeline{Sampler: Sampler{Canvas: curve.Sz(200, 100)}}
	f, err := pl.Frame(s, curve.Sz(400, 400))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, curve.Pt(100, 50), f.Path.Start)
	if f.Viewport.Ratio != 2 {
		t.Errorf("got ratio %g, want 2", f.Viewport.Ratio)
	}
}
