// Package app ties the figure, the control panel and the renderer together.
// It is independent of the window system, so it can run headless.
package app

import (
	"errors"
	"image"
	"io"
	"log"
	"runtime"

	"honnef.co/go/lissajous"
	"honnef.co/go/lissajous/curve"
	"honnef.co/go/lissajous/internal/control"
	"honnef.co/go/lissajous/raster"
)

// Config configures an [App].
type Config struct {
	// Params is the initial figure. It is sanitized and clamped to the
	// control ranges before use.
	Params lissajous.Params
	// Workers is the number of goroutines used for sampling. Zero means
	// GOMAXPROCS.
	Workers int
	Style   raster.Style
	// HidePanel starts with the control panel hidden.
	HidePanel bool
	// Logger receives runtime notices. nil discards them.
	Logger *log.Logger
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Params: lissajous.DefaultParams(),
		Style:  raster.DefaultStyle(),
	}
}

// App is the application state shared by the window and the headless
// runner. It must only be used from one goroutine.
type App struct {
	State    *lissajous.State
	Panel    *control.Panel
	Renderer *raster.Renderer
	Style    raster.Style
	// Scale is the number of device pixels per logical pixel, used for the
	// panel.
	Scale float64

	pipeline lissajous.Pipeline
	log      *log.Logger
	// The last reported problems, so that each is only logged once.
	invalid    string
	degenerate bool
}

// New returns an app configured by cfg.
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	panel, err := control.NewPanel()
	if err != nil {
		return nil, err
	}
	panel.Hidden = cfg.HidePanel

	params, err := cfg.Params.Sanitize()
	if err != nil {
		logger.Printf("initial parameters: %v", err)
	}
	// The configuration is a control surface like the panel, so it gets
	// the same ranges.
	clamped := params.Clamp()
	for _, id := range lissajous.ParamIDs {
		if v, c := params.Get(id), clamped.Get(id); v != c {
			logger.Printf("initial parameters: %s is %g, using %g", id, v, c)
		}
	}
	params = clamped
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	style := cfg.Style
	if style == (raster.Style{}) {
		style = raster.DefaultStyle()
	}

	return &App{
		State:    &lissajous.State{Params: params},
		Panel:    panel,
		Renderer: raster.NewRenderer(),
		Style:    style,
		Scale:    1,
		pipeline: lissajous.Pipeline{Sampler: lissajous.NewSampler(), Workers: workers},
		log:      logger,
	}, nil
}

// Step advances the app to elapsed seconds since the start and handles one
// tick of keyboard input.
func (a *App) Step(elapsed float64, keys control.Keys) {
	if keys.Any() {
		ups := a.Panel.Handle(keys, a.State.Params)
		a.State.Apply(ups...)
	}
	a.State.Clock.Set(elapsed)
}

// Draw draws the current frame into dst, followed by the control panel. If
// dst is empty, it is cleared and nothing else is drawn.
func (a *App) Draw(dst *image.RGBA) error {
	b := dst.Bounds()
	f, err := a.pipeline.Frame(a.State, curve.Sz(float64(b.Dx()), float64(b.Dy())))
	if err != nil {
		if !errors.Is(err, lissajous.ErrDegenerateViewport) {
			return err
		}
		if !a.degenerate {
			a.log.Printf("skipping frames: %v", err)
			a.degenerate = true
		}
		raster.Clear(dst, a.Style)
		return nil
	}
	a.degenerate = false

	if f.Invalid != nil {
		if msg := f.Invalid.Error(); msg != a.invalid {
			a.log.Printf("drawing with sanitized parameters: %v", f.Invalid)
			a.invalid = msg
		}
	} else {
		a.invalid = ""
	}

	a.Renderer.RenderFrame(dst, f, a.Style)
	return a.Panel.Draw(dst, a.State.Params, a.Scale)
}
