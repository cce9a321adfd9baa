// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"errors"
	"iter"
	"log"
	"maps"
	"math"
	"slices"
	"time"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/display"
	"github.com/ezrec/chip8/internal"
	"github.com/ezrec/chip8/keypad"
)

const (
	CLOCK_HZ = 540 // Default instruction rate.
	TIMER_HZ = 60  // Rate of the delay and sound timers.
)

var _machine_defines = map[string]int{
	"WIDTH":     display.WIDTH,
	"HEIGHT":    display.HEIGHT,
	"KEY_COUNT": keypad.KEY_COUNT,
	"CLOCK_HZ":  CLOCK_HZ,
}

// Config of a machine.
type Config struct {
	Verbose bool       // If set, enables the decode trace.
	ClockHz int        // Instructions per second of host time.
	Quirks  cpu.Quirks // Interpreter compatibility choices.
	Break   string     // Break expression, empty for none.
}

// DefaultConfig returns the configuration of the reference interpreter.
func DefaultConfig() Config {
	return Config{
		ClockHz: CLOCK_HZ,
		Quirks:  cpu.DefaultQuirks(),
	}
}

// Budget returns the number of instructions to run for dt of host time.
// At least one instruction is always allowed.
func (cfg Config) Budget(dt time.Duration) int {
	budget := int(math.Round(dt.Seconds() * float64(cfg.ClockHz)))
	return max(1, budget)
}

// Machine state. CPU + display + keypad.
type Machine struct {
	Verbose bool // If set, enables verbose logging.

	config     Config
	program    []byte
	cpu        *cpu.Cpu
	breakpoint *Breakpoint
	resumed    bool
}

// New creates a machine with the program image loaded.
func New(program []byte, cfg Config) (m *Machine, err error) {
	if cfg.ClockHz <= 0 {
		err = ErrClockInvalid
		return
	}

	m = &Machine{
		Verbose: cfg.Verbose,
		config:  cfg,
		program: slices.Clone(program),
	}

	err = m.Reset()
	if err != nil {
		m = nil
		return
	}

	if cfg.Break != "" {
		m.breakpoint = &Breakpoint{Expr: cfg.Break}
		_, err = m.breakpoint.Eval(m.Defines())
		if err != nil {
			err = errors.Join(ErrBreakExpression, err)
			m = nil
			return
		}
	}

	return
}

// Reset the machine to its power-on state, reloading the program image.
func (m *Machine) Reset() (err error) {
	cp, err := cpu.NewCpu(m.program)
	if err != nil {
		return
	}

	cp.Quirks = m.config.Quirks
	m.cpu = cp
	m.resumed = false

	return
}

// Config returns the configuration of the machine.
func (m *Machine) Config() Config {
	return m.config
}

// SetClock changes the instruction rate.
func (m *Machine) SetClock(hz int) (err error) {
	if hz <= 0 {
		err = ErrClockInvalid
		return
	}

	if m.Verbose {
		log.Printf("machine: clock %d Hz", hz)
	}
	m.config.ClockHz = hz
	return
}

// Budget returns the number of instructions to run for dt of host time.
func (m *Machine) Budget(dt time.Duration) int {
	return m.config.Budget(dt)
}

// Defines returns an iterator over all of the defines and register symbols.
func (m *Machine) Defines() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(maps.All(_machine_defines),
		m.cpu.Defines(),
		m.cpu.Symbols(),
	)
}

// Display returns the framebuffer. Callers must treat it as read-only.
func (m *Machine) Display() *display.Display {
	return m.cpu.Display
}

// State returns the execution state.
func (m *Machine) State() keypad.State {
	return m.cpu.Keypad.State
}

// Registers returns a copy of the register file.
func (m *Machine) Registers() cpu.Registers {
	return m.cpu.Registers
}

// Ticks returns the total instructions executed since a reset.
func (m *Machine) Ticks() int {
	return m.cpu.Ticks
}

// String returns the register dump.
func (m *Machine) String() string {
	return m.cpu.String()
}

// SetKey records a key press or release.
func (m *Machine) SetKey(key int, pressed bool) (err error) {
	if m.Verbose {
		log.Printf("machine: key %d pressed=%v", key, pressed)
	}

	return m.cpu.SetKey(key, pressed)
}

// Step performs a single instruction.
//
// If the break expression holds, Step returns an *ErrBreak without
// executing. The following Step executes the instruction.
func (m *Machine) Step() (err error) {
	m.cpu.Verbose = m.Verbose
	m.cpu.Display.Verbose = m.Verbose

	pc := m.cpu.Pc
	defer func() {
		if err != nil && !errors.Is(err, ErrBreakpoint) {
			err = &ErrRuntime{Pc: pc, Err: err}
		}
	}()

	if m.cpu.Waiting() {
		return
	}

	if m.breakpoint != nil && !m.resumed {
		var hit bool
		hit, err = m.breakpoint.Eval(m.Defines())
		if err != nil {
			return
		}
		if hit {
			if m.Verbose {
				log.Printf("machine: break at %03X", pc)
			}
			m.resumed = true
			err = &ErrBreak{Pc: pc, Expr: m.breakpoint.Expr}
			return
		}
	}
	m.resumed = false

	err = m.cpu.Step()

	return
}

// Tick performs one timer period: the timers are decremented once, then
// up to budget instructions run. Tick stops early when the machine begins
// waiting for a key, or a step fails.
func (m *Machine) Tick(budget int) (err error) {
	m.cpu.Tock()

	for range budget {
		if m.cpu.Waiting() {
			break
		}

		err = m.Step()
		if err != nil {
			return
		}
	}

	return
}
