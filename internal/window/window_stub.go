//go:build !cgo

// Package window shows the app in a desktop window.
package window

import (
	"errors"

	"honnef.co/go/lissajous/internal/app"
)

func Run(_ *app.App) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
