//go:build cgo

// Package window shows the app in a desktop window.
package window

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"honnef.co/go/lissajous/internal/app"
	"honnef.co/go/lissajous/internal/control"
)

const title = "Lissajous"

// Key repeat timing, in ticks.
const (
	repeatDelay    = 24
	repeatInterval = 3
)

// Run opens a resizable, maximized window showing a and blocks until the
// window is closed or Escape is pressed.
func Run(a *app.App) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.MaximizeWindow()
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(60)
	return ebiten.RunGame(&game{app: a, start: time.Now()})
}

type game struct {
	app   *app.App
	start time.Time
	img   *image.RGBA
	err   error
}

func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.app.Step(time.Since(g.start).Seconds(), pollKeys())
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if b.Empty() {
		return
	}
	if g.img == nil || g.img.Bounds().Size() != b.Size() {
		g.img = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	if err := g.app.Draw(g.img); err != nil {
		g.err = err
		return
	}
	screen.WritePixels(g.img.Pix)
}

// Layout renders at the device's resolution rather than in logical pixels,
// so that the figure stays sharp on high-DPI displays.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	if !(s > 0) {
		s = 1
	}
	g.app.Scale = s
	return int(float64(outsideWidth) * s), int(float64(outsideHeight) * s)
}

func pressed(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0)
}

func pollKeys() control.Keys {
	return control.Keys{
		Up:     pressed(ebiten.KeyArrowUp),
		Down:   pressed(ebiten.KeyArrowDown),
		Left:   pressed(ebiten.KeyArrowLeft),
		Right:  pressed(ebiten.KeyArrowRight),
		Home:   inpututil.IsKeyJustPressed(ebiten.KeyHome),
		End:    inpututil.IsKeyJustPressed(ebiten.KeyEnd),
		Shift:  ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		Reset:  inpututil.IsKeyJustPressed(ebiten.KeyR),
		Toggle: inpututil.IsKeyJustPressed(ebiten.KeyH),
	}
}
