// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package host

import (
	"errors"
	"log"
	"time"

	"github.com/ezrec/chip8/keypad"
	"github.com/ezrec/chip8/machine"
	"github.com/ezrec/chip8/translate"
)

var f = translate.From

const (
	CLOCK_STEP = 10 // Clock adjustment, in Hz.
	CLOCK_MIN  = 10 // Slowest clock.
)

// Session holds the run controls shared by the frontends.
type Session struct {
	Verbose bool
	Machine *machine.Machine
	Paused  bool   // Set while execution is suspended.
	Message string // Last break or fault, for the status line.

	err error
}

// NewSession creates a session running the machine.
func NewSession(m *machine.Machine) *Session {
	return &Session{
		Verbose: m.Verbose,
		Machine: m,
	}
}

// Err returns the fault that halted the session, if any.
func (s *Session) Err() error {
	return s.err
}

// SetKey forwards a key transition to the machine.
func (s *Session) SetKey(key int, pressed bool) {
	err := s.Machine.SetKey(key, pressed)
	if err != nil && s.Verbose {
		log.Printf("host: %v", err)
	}
}

// TogglePause suspends or resumes execution.
func (s *Session) TogglePause() {
	s.Paused = !s.Paused
	if !s.Paused {
		s.Message = ""
	}
}

// AdjustClock changes the clock rate by delta Hz, stopping at CLOCK_MIN.
func (s *Session) AdjustClock(delta int) {
	hz := max(CLOCK_MIN, s.Machine.Config().ClockHz+delta)
	_ = s.Machine.SetClock(hz)
}

// Single executes one instruction while paused.
func (s *Session) Single() (err error) {
	if !s.Paused || s.err != nil {
		return
	}

	return s.handle(s.Machine.Step())
}

// Frame advances the machine by dt of host time.
func (s *Session) Frame(dt time.Duration) (err error) {
	if s.err != nil {
		return s.err
	}

	if s.Paused {
		return
	}

	return s.handle(s.Machine.Tick(s.Machine.Budget(dt)))
}

// handle pauses on a break, and halts on a fault.
func (s *Session) handle(err error) error {
	switch {
	case err == nil:
	case errors.Is(err, machine.ErrBreakpoint):
		s.Paused = true
		s.Message = err.Error()
		if s.Verbose {
			log.Printf("host: %v", err)
		}
		err = nil
	default:
		s.Message = err.Error()
		s.err = err
	}

	return err
}

// Status returns the status line text.
func (s *Session) Status() string {
	regs := s.Machine.Registers()

	state := f("RUN")
	switch {
	case s.err != nil:
		state = f("HALT")
	case s.Paused:
		state = f("PAUSE")
	default:
		if _, ok := s.Machine.State().(keypad.AwaitingKey); ok {
			state = f("WAIT")
		}
	}

	text := f("%v %vHz PC %03X I %03X", state, s.Machine.Config().ClockHz, regs.Pc, regs.I)
	if s.Message != "" {
		text += " " + s.Message
	}

	return text
}
