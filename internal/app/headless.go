package app

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"honnef.co/go/lissajous/internal/control"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	// Hz is the tick rate. The animation clock advances by 1/Hz seconds per
	// tick, independent of how long rendering takes.
	Hz int
	// Frames stops the runner after this many ticks. Zero runs until ctx is
	// done.
	Frames uint64
	Width  int
	Height int
	// Out is the directory snapshots are written to. Empty disables
	// snapshots.
	Out string
	// Every writes a snapshot every this many ticks. Zero and one write
	// every frame.
	Every uint64
}

// RunHeadless runs the app without a window, drawing one frame per tick into
// an offscreen image of the configured size.
func RunHeadless(ctx context.Context, a *App, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Every == 0 {
		cfg.Every = 1
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid headless size: %dx%d", cfg.Width, cfg.Height)
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	if cfg.Out != "" {
		if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
			return err
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			a.Step(float64(tick)/float64(cfg.Hz), control.Keys{})
			if err := a.Draw(img); err != nil {
				return err
			}
			if cfg.Out != "" && tick%cfg.Every == 0 {
				name := filepath.Join(cfg.Out, fmt.Sprintf("frame-%05d.png", tick))
				if err := writePNG(name, img); err != nil {
					return err
				}
				a.log.Printf("wrote %s", name)
			}
			tick++
			if cfg.Frames > 0 && tick >= cfg.Frames {
				return nil
			}
		}
	}
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", name, err)
	}
	return f.Close()
}
