//go:build headless

package host

import (
	"errors"
)

var ErrNoWindow = errors.New(f("built without window support"))

// Window is unavailable in headless builds.
type Window struct {
	*Session
	Scale int
}

// NewWindow creates a window stub for the session.
func NewWindow(s *Session, scale int) *Window {
	return &Window{Session: s, Scale: scale}
}

// Run always fails with ErrNoWindow.
func (w *Window) Run() error {
	return ErrNoWindow
}
