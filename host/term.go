package host

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/ezrec/chip8/display"
	"github.com/ezrec/chip8/keypad"
	"github.com/ezrec/chip8/machine"
)

const (
	KEY_HOLD = 150 * time.Millisecond // Terminals report no releases, so presses are held this long.

	TERM_WIDTH  = display.WIDTH
	TERM_HEIGHT = display.HEIGHT/2 + 1 // Two pixel rows per line, plus the status line.
)

var (
	ErrNotTerminal  = errors.New(f("input is not a terminal"))
	ErrTerminalSize = errors.New(f("terminal too small"))
)

// ErrSize reports a terminal too small for the display.
type ErrSize struct {
	Width, Height int
}

func (err *ErrSize) Error() string {
	return f("terminal is %dx%d, need %dx%d", err.Width, err.Height, TERM_WIDTH, TERM_HEIGHT)
}

func (err *ErrSize) Is(target error) bool {
	return target == ErrTerminalSize
}

// Terminal is the text frontend, drawing with half-block characters.
type Terminal struct {
	*Session
	In  *os.File
	Out io.Writer

	keys    chan byte
	stop    chan struct{}
	stopped sync.Once
	held    [keypad.KEY_COUNT]time.Time
}

// NewTerminal creates a terminal frontend on stdin and stdout.
func NewTerminal(s *Session) *Terminal {
	return &Terminal{
		Session: s,
		In:      os.Stdin,
		Out:     os.Stdout,
		keys:    make(chan byte, 16),
		stop:    make(chan struct{}),
	}
}

// read forwards input bytes to the frame loop.
func (t *Terminal) read() {
	defer close(t.keys)

	buf := make([]byte, 1)
	for {
		n, err := t.In.Read(buf)
		if n > 0 {
			select {
			case t.keys <- buf[0]:
			case <-t.stop:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// Stop the frame loop.
func (t *Terminal) Stop() {
	t.stopped.Do(func() {
		close(t.stop)
	})
}

// Key handles one input byte. quit is set for Escape and Ctrl-C.
func (t *Terminal) Key(b byte, now time.Time) (quit bool) {
	switch b {
	case 0x03, 0x1b:
		return true
	case 'p', 'P':
		t.TogglePause()
	case 'm', 'M':
		_ = t.Single()
	case '[':
		t.AdjustClock(-CLOCK_STEP)
	case ']':
		t.AdjustClock(CLOCK_STEP)
	default:
		key, ok := KeyOf(rune(b))
		if !ok {
			break
		}
		if t.held[key].IsZero() {
			t.SetKey(key, true)
		}
		t.held[key] = now.Add(KEY_HOLD)
	}

	return
}

// release lets go of keys held past their deadline.
func (t *Terminal) release(now time.Time) {
	for key, until := range t.held {
		if until.IsZero() || now.Before(until) {
			continue
		}
		t.held[key] = time.Time{}
		t.SetKey(key, false)
	}
}

// Render returns the screen text, with the cursor homed first.
func Render(dp *display.Display, status string) string {
	var sb strings.Builder

	sb.WriteString("\x1b[H")
	for y := 0; y < display.HEIGHT; y += 2 {
		for x := range display.WIDTH {
			upper := dp.Pixel[y][x]
			lower := dp.Pixel[y+1][x]
			switch {
			case upper && lower:
				sb.WriteRune('█')
			case upper:
				sb.WriteRune('▀')
			case lower:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\r\n")
	}
	sb.WriteString("\x1b[2K")
	sb.WriteString(status)

	return sb.String()
}

// Run the terminal frontend until Escape or Ctrl-C is pressed.
func (t *Terminal) Run() (err error) {
	fd := int(t.In.Fd())
	if !term.IsTerminal(fd) {
		err = ErrNotTerminal
		return
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	if width < TERM_WIDTH || height < TERM_HEIGHT {
		err = &ErrSize{Width: width, Height: height}
		return
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return
	}
	defer term.Restore(fd, state)

	io.WriteString(t.Out, "\x1b[2J\x1b[?25l")
	defer io.WriteString(t.Out, "\x1b[?25h\r\n")

	go t.read()
	defer t.Stop()

	ticker := time.NewTicker(time.Second / machine.TIMER_HZ)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case b, ok := <-t.keys:
			if !ok || t.Key(b, time.Now()) {
				return t.Err()
			}
		case now := <-ticker.C:
			t.release(now)
			_ = t.Frame(now.Sub(last))
			last = now
			io.WriteString(t.Out, Render(t.Machine.Display(), t.Status()))
		}
	}
}
