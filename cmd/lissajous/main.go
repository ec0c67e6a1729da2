// Command lissajous draws an animated Lissajous figure whose parameters can
// be edited with the keyboard.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"honnef.co/go/lissajous/internal/app"
	"honnef.co/go/lissajous/internal/window"
)

func main() {
	cfg := app.DefaultConfig()
	var hcfg app.HeadlessConfig
	var headless, quiet bool
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Frames, "frames", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.StringVar(&hcfg.Out, "out", "", "Write PNG snapshots to this directory in headless mode.")
	flag.Uint64Var(&hcfg.Every, "every", 1, "Write a snapshot every N frames.")
	flag.IntVar(&hcfg.Width, "width", 1920, "Image width in headless mode.")
	flag.IntVar(&hcfg.Height, "height", 1080, "Image height in headless mode.")
	flag.IntVar(&cfg.Workers, "workers", 0, "Goroutines used for sampling (0 = GOMAXPROCS).")
	flag.IntVar(&cfg.Params.Detail, "detail", cfg.Params.Detail, "Number of samples, one per degree.")
	flag.Float64Var(&cfg.Params.AmplitudeX, "ax", cfg.Params.AmplitudeX, "X-axis amplitude.")
	flag.Float64Var(&cfg.Params.AmplitudeY, "ay", cfg.Params.AmplitudeY, "Y-axis amplitude.")
	flag.Float64Var(&cfg.Params.FrequencyX, "fx", cfg.Params.FrequencyX, "X-axis frequency.")
	flag.Float64Var(&cfg.Params.FrequencyY, "fy", cfg.Params.FrequencyY, "Y-axis frequency.")
	flag.Float64Var(&cfg.Params.PhaseX, "px", cfg.Params.PhaseX, "X-axis phase shift.")
	flag.Float64Var(&cfg.Params.PhaseY, "py", cfg.Params.PhaseY, "Y-axis phase shift.")
	flag.BoolVar(&cfg.HidePanel, "hide-panel", false, "Start with the control panel hidden.")
	flag.BoolVar(&quiet, "q", false, "Don't log runtime notices.")
	flag.Parse()

	if !quiet {
		cfg.Logger = log.New(os.Stderr, "lissajous: ", log.LstdFlags)
	}
	a, err := app.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := app.RunHeadless(ctx, a, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := window.Run(a); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
