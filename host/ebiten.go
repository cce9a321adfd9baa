//go:build !headless

// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package host

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/ezrec/chip8/display"
	"github.com/ezrec/chip8/machine"
)

const (
	STATUS_HEIGHT = 16 // Height of the status line, in pixels.
)

// EBITEN_KEYS are the host keys of KEY_LAYOUT.
var EBITEN_KEYS = [16]ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyR,
	ebiten.KeyA, ebiten.KeyS, ebiten.KeyD, ebiten.KeyF,
	ebiten.KeyZ, ebiten.KeyX, ebiten.KeyC, ebiten.KeyV,
}

var (
	pixelOn     = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	pixelOff    = color.RGBA{0x10, 0x10, 0x10, 0xff}
	statusColor = color.RGBA{190, 190, 190, 255}
)

// Window is the ebiten frontend.
type Window struct {
	*Session
	Scale int // Host pixels per display pixel.

	frame  *ebiten.Image
	pixels []byte
}

// NewWindow creates an ebiten frontend for the session.
func NewWindow(s *Session, scale int) *Window {
	return &Window{
		Session: s,
		Scale:   max(1, scale),
		pixels:  make([]byte, display.WIDTH*display.HEIGHT*4),
	}
}

// Update polls the keyboard, and runs one timer period of the machine.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for n, key := range EBITEN_KEYS {
		if inpututil.IsKeyJustPressed(key) {
			w.SetKey(KEY_PAD[n], true)
		}
		if inpututil.IsKeyJustReleased(key) {
			w.SetKey(KEY_PAD[n], false)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		w.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		_ = w.Single()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		w.AdjustClock(-CLOCK_STEP)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		w.AdjustClock(CLOCK_STEP)
	}

	// A halted machine stays on screen with its fault in the status line.
	_ = w.Frame(time.Second / time.Duration(ebiten.TPS()))

	return nil
}

// Draw renders the framebuffer and the status line.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.frame == nil {
		w.frame = ebiten.NewImage(display.WIDTH, display.HEIGHT)
	}

	for y, row := range w.Machine.Display().Rows() {
		for x, lit := range row {
			c := pixelOff
			if lit {
				c = pixelOn
			}
			offset := (y*display.WIDTH + x) * 4
			w.pixels[offset+0] = c.R
			w.pixels[offset+1] = c.G
			w.pixels[offset+2] = c.B
			w.pixels[offset+3] = c.A
		}
	}
	w.frame.WritePixels(w.pixels)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(w.Scale), float64(w.Scale))
	screen.DrawImage(w.frame, opts)

	text.Draw(screen, w.Status(), basicfont.Face7x13, 2, display.HEIGHT*w.Scale+STATUS_HEIGHT-3, statusColor)
}

// Layout returns the fixed logical screen size.
func (w *Window) Layout(_, _ int) (int, int) {
	return display.WIDTH * w.Scale, display.HEIGHT*w.Scale + STATUS_HEIGHT
}

// Run the window until it is closed, or Escape is pressed.
func (w *Window) Run() (err error) {
	width, height := w.Layout(0, 0)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("chip8")
	ebiten.SetTPS(machine.TIMER_HZ)

	err = ebiten.RunGame(w)
	if err != nil {
		return
	}

	return w.Err()
}
