// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package display implements the monochrome CHIP-8 display surface.
package display

import (
	"errors"
	"iter"
	"log"
	"strings"

	"github.com/ezrec/chip8/translate"
)

var f = translate.From

const (
	WIDTH        = 64 // Pixels per row.
	HEIGHT       = 32 // Rows.
	SPRITE_WIDTH = 8  // Pixels per sprite row, one per bit.
)

var (
	ErrScreenBounds = errors.New(f("out of screen bounds"))
)

// ErrOutOfScreenBounds reports a sprite origin outside of the grid.
type ErrOutOfScreenBounds struct {
	X int
	Y int
}

func (err ErrOutOfScreenBounds) Error() string {
	return f("out of screen bounds: %d, %d", err.X, err.Y)
}

func (err ErrOutOfScreenBounds) Is(target error) (ok bool) {
	if target == ErrScreenBounds {
		return true
	}
	_, ok = target.(ErrOutOfScreenBounds)
	return
}

// Display is a WIDTH x HEIGHT grid of pixels, addressed [y][x].
type Display struct {
	Verbose bool // Set to enable verbose logging.

	Pixel [HEIGHT][WIDTH]bool // Pixel state, true is lit.

	Flipped int // Pixels toggled since the last Clear.
}

// NewDisplay creates a new, blank display.
func NewDisplay() (dp *Display) {
	dp = &Display{}
	return
}

// Width of the display in pixels.
func (dp *Display) Width() int {
	return WIDTH
}

// Height of the display in pixels.
func (dp *Display) Height() int {
	return HEIGHT
}

// Clear turns off all pixels.
func (dp *Display) Clear() {
	if dp.Verbose {
		log.Printf("display: clear")
	}

	for y := range dp.Pixel {
		clear(dp.Pixel[y][:])
	}

	dp.Flipped = 0
}

// Lit returns the state of the pixel at x, y, wrapping both coordinates.
func (dp *Display) Lit(x, y int) bool {
	return dp.Pixel[wrap(y, HEIGHT)][wrap(x, WIDTH)]
}

// Draw XORs a sprite onto the display with its top left corner at x, y.
//
// Each byte of the sprite is one row, most significant bit leftmost. Pixels
// that run past the right or bottom edge wrap to the opposite edge.
//
// collision is true if any lit sprite bit landed on an already lit pixel.
func (dp *Display) Draw(x, y int, sprite []byte) (collision bool, err error) {
	if x < 0 || x >= WIDTH || y < 0 || y >= HEIGHT {
		err = ErrOutOfScreenBounds{X: x, Y: y}
		return
	}

	if dp.Verbose {
		log.Printf("display: draw %d,%d % 02x", x, y, sprite)
	}

	for row, bits := range sprite {
		py := (y + row) % HEIGHT
		for col := range SPRITE_WIDTH {
			bit := (bits>>(SPRITE_WIDTH-1-col))&1 != 0
			if !bit {
				continue
			}
			px := (x + col) % WIDTH
			collision = collision || dp.Pixel[py][px]
			dp.Pixel[py][px] = !dp.Pixel[py][px]
			dp.Flipped++
		}
	}

	return
}

// Rows returns an iterator over the rows of the display.
func (dp *Display) Rows() iter.Seq2[int, []bool] {
	return func(yield func(y int, row []bool) bool) {
		for y := range dp.Pixel {
			if !yield(y, dp.Pixel[y][:]) {
				return
			}
		}
	}
}

// String renders the display as text, '*' for lit pixels.
func (dp *Display) String() string {
	var sb strings.Builder

	sb.Grow((WIDTH + 1) * HEIGHT)
	for _, row := range dp.Rows() {
		for _, lit := range row {
			if lit {
				sb.WriteByte('*')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func wrap(value, limit int) int {
	value %= limit
	if value < 0 {
		value += limit
	}
	return value
}
