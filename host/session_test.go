package host

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/machine"
)

func program(words ...uint16) (image []byte) {
	for _, word := range words {
		image = append(image, byte(word>>8), byte(word))
	}
	return
}

func newTestSession(t *testing.T, cfg machine.Config, words ...uint16) *Session {
	m, err := machine.New(program(words...), cfg)
	if err != nil {
		t.Fatal(err)
	}
	return NewSession(m)
}

func TestSession_Frame(t *testing.T) {
	assert := assert.New(t)

	// ADD V0, 1 in a loop.
	s := newTestSession(t, machine.DefaultConfig(), 0x7001, 0x1200)

	assert.NoError(s.Frame(time.Second / 60))
	assert.Equal(9, s.Machine.Ticks())
	assert.Equal("RUN 540Hz PC 202 I 000", s.Status())

	s.TogglePause()
	assert.NoError(s.Frame(time.Second / 60))
	assert.Equal(9, s.Machine.Ticks())
	assert.Contains(s.Status(), "PAUSE")

	assert.NoError(s.Single())
	assert.Equal(10, s.Machine.Ticks())

	s.TogglePause()
	assert.NoError(s.Single())
	assert.Equal(10, s.Machine.Ticks())
}

func TestSession_Clock(t *testing.T) {
	assert := assert.New(t)

	s := newTestSession(t, machine.DefaultConfig())

	s.AdjustClock(CLOCK_STEP)
	assert.Equal(550, s.Machine.Config().ClockHz)

	s.AdjustClock(-1000)
	assert.Equal(CLOCK_MIN, s.Machine.Config().ClockHz)
}

func TestSession_Break(t *testing.T) {
	assert := assert.New(t)

	cfg := machine.DefaultConfig()
	cfg.Break = "pc == 0x200 and v0 == 3"
	s := newTestSession(t, cfg, 0x7001, 0x1200)

	assert.NoError(s.Frame(time.Second / 60))
	assert.True(s.Paused)
	assert.Equal(byte(3), s.Machine.Registers().V[0])
	assert.Contains(s.Status(), "break at 200")

	assert.NoError(s.Single())
	assert.Equal(byte(4), s.Machine.Registers().V[0])

	s.TogglePause()
	assert.Empty(s.Message)
}

func TestSession_Fault(t *testing.T) {
	assert := assert.New(t)

	s := newTestSession(t, machine.DefaultConfig(), 0x00ee)

	err := s.Frame(time.Second / 60)
	assert.ErrorIs(err, cpu.ErrStackUnderflow)
	assert.ErrorIs(s.Err(), cpu.ErrStackUnderflow)
	assert.Contains(s.Status(), "HALT")

	// A halted session stays halted.
	err = s.Frame(time.Second / 60)
	assert.ErrorIs(err, cpu.ErrStackUnderflow)
	assert.Equal(0, s.Machine.Ticks())
}

func TestSession_Wait(t *testing.T) {
	assert := assert.New(t)

	s := newTestSession(t, machine.DefaultConfig(), 0xf20a, 0x1202)

	assert.NoError(s.Frame(time.Second / 60))
	assert.Contains(s.Status(), "WAIT")

	s.SetKey(0xe, true)
	s.SetKey(0xe, false)
	s.SetKey(99, true)
	assert.Equal(byte(0xe), s.Machine.Registers().V[2])
	assert.Contains(s.Status(), "RUN")
}
