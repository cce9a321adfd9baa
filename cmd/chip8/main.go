// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ezrec/chip8/host"
	"github.com/ezrec/chip8/machine"
)

// headless runs up to steps instructions, one timer period at a time.
func headless(m *machine.Machine, steps int) (err error) {
	period := time.Second / machine.TIMER_HZ

	for m.Ticks() < steps {
		budget := min(m.Budget(period), steps-m.Ticks())
		before := m.Ticks()

		err = m.Tick(budget)
		if err != nil {
			return
		}

		// No input arrives in headless mode.
		if m.Ticks() == before && budget > 0 {
			log.Printf("chip8: waiting for a key at %03X", m.Registers().Pc)
			return
		}
	}

	return
}

func main() {
	var ui string
	var clock int
	var scale int
	var verbose bool
	var expr string
	var steps int
	var shiftVy bool
	var loadStoreI bool
	var wrap bool

	cfg := machine.DefaultConfig()

	flag.StringVar(&ui, "ui", "ebiten", "Frontend: ebiten, term or headless")
	flag.IntVar(&clock, "clock", cfg.ClockHz, "Instructions per second")
	flag.IntVar(&scale, "scale", 10, "Window pixels per display pixel")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&expr, "break", "", "Break expression, such as 'pc == 0x208'")
	flag.IntVar(&steps, "steps", 1000, "Instructions to run in headless mode")
	flag.BoolVar(&shiftVy, "shift-vy", false, "8xy6 and 8xyE shift Vy into Vx")
	flag.BoolVar(&loadStoreI, "load-store-i", false, "Fx55 and Fx65 advance I")
	flag.BoolVar(&wrap, "wrap", false, "Wrap sprite origins onto the display")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected one ROM file, got %v", os.Args[0], flag.Args())
	}
	rom := flag.Arg(0)

	program, err := os.ReadFile(rom)
	if err != nil {
		log.Fatalf("%v: %v", rom, err)
	}

	cfg.Verbose = verbose
	cfg.ClockHz = clock
	cfg.Break = expr
	cfg.Quirks.ShiftUsesVy = shiftVy
	cfg.Quirks.LoadStoreIncrementsI = loadStoreI
	cfg.Quirks.WrapSpriteOrigin = wrap

	m, err := machine.New(program, cfg)
	if err != nil {
		log.Fatalf("%v: %v", rom, err)
	}

	switch ui {
	case "ebiten":
		err = host.NewWindow(host.NewSession(m), scale).Run()
	case "term":
		err = host.NewTerminal(host.NewSession(m)).Run()
	case "headless":
		err = headless(m, steps)
		fmt.Print(m.Display().String())
		fmt.Print(m.String())
		if errors.Is(err, machine.ErrBreakpoint) {
			fmt.Println(err)
			err = nil
		}
	default:
		log.Fatalf("%v: unknown frontend %q", os.Args[0], ui)
	}

	if err != nil {
		log.Fatalf("%v: %v", rom, err)
	}
}
