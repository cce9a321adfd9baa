package machine

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/keypad"
)

func program(words ...uint16) (image []byte) {
	for _, word := range words {
		image = append(image, byte(word>>8), byte(word))
	}
	return
}

func newTestMachine(t *testing.T, cfg Config, words ...uint16) *Machine {
	m, err := New(program(words...), cfg)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestMachine(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t, DefaultConfig(), 0x00e0)

	assert.False(m.Verbose)
	assert.Equal(keypad.Ready{}, m.State())
	assert.Equal(uint16(cpu.PROGRAM_START), m.Registers().Pc)
	assert.Equal(CLOCK_HZ, m.Config().ClockHz)
	assert.NotNil(m.Display())
}

func TestNew_Invalid(t *testing.T) {
	assert := assert.New(t)

	_, err := New(make([]byte, cpu.PROGRAM_LIMIT+1), DefaultConfig())
	assert.ErrorIs(err, cpu.ErrProgramTooLarge)

	cfg := DefaultConfig()
	cfg.ClockHz = 0
	_, err = New(nil, cfg)
	assert.ErrorIs(err, ErrClockInvalid)

	cfg = DefaultConfig()
	cfg.Break = "pc =="
	_, err = New(nil, cfg)
	assert.ErrorIs(err, ErrBreakExpression)

	cfg.Break = "nonesuch > 3"
	_, err = New(nil, cfg)
	assert.ErrorIs(err, ErrBreakExpression)

	cfg.Break = "pc + 1"
	_, err = New(nil, cfg)
	assert.ErrorIs(err, ErrBreakExpression)
}

func TestConfig_Budget(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()

	table := [](struct {
		dt     time.Duration
		budget int
	}){
		{time.Second, 540},
		{time.Second / 60, 9},
		{time.Millisecond, 1},
		{0, 1},
		{-time.Second, 1},
	}

	for _, entry := range table {
		assert.Equal(entry.budget, cfg.Budget(entry.dt), entry.dt)
	}

	cfg.ClockHz = 700
	assert.Equal(12, cfg.Budget(time.Second/60))
}

func TestMachine_Step(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t, DefaultConfig(), 0xa200, 0xf029)

	assert.NoError(m.Step())
	assert.Equal(uint16(0x200), m.Registers().I)
	assert.NoError(m.Step())
	assert.Equal(uint16(0), m.Registers().I)
	assert.Equal(2, m.Ticks())
}

func TestMachine_Tick(t *testing.T) {
	assert := assert.New(t)

	// LD DT, V1 with V1 = 3, then spin on JP.
	m := newTestMachine(t, DefaultConfig(), 0x6103, 0xf115, 0x1204)

	assert.NoError(m.Tick(2))
	assert.Equal(byte(3), m.Registers().Delay)
	assert.Equal(2, m.Ticks())

	assert.NoError(m.Tick(5))
	assert.Equal(byte(2), m.Registers().Delay)
	assert.Equal(7, m.Ticks())
	assert.Equal(uint16(0x204), m.Registers().Pc)

	assert.NoError(m.Tick(0))
	assert.Equal(byte(1), m.Registers().Delay)
	assert.Equal(7, m.Ticks())
}

func TestMachine_TickWaitKey(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t, DefaultConfig(), 0x6102, 0xf115, 0xf50a, 0x6601)

	assert.NoError(m.Tick(10))
	assert.Equal(keypad.AwaitingKey{Register: 5}, m.State())
	assert.Equal(3, m.Ticks())
	assert.Equal(uint16(0x206), m.Registers().Pc)

	// Timers still run while waiting.
	assert.NoError(m.Tick(10))
	assert.Equal(byte(1), m.Registers().Delay)
	assert.NoError(m.Tick(10))
	assert.Equal(byte(0), m.Registers().Delay)
	assert.Equal(3, m.Ticks())
	assert.Equal(uint16(0x206), m.Registers().Pc)

	assert.NoError(m.SetKey(0xb, true))
	assert.Equal(keypad.Ready{}, m.State())
	assert.Equal(byte(0xb), m.Registers().V[5])

	assert.NoError(m.Tick(1))
	assert.Equal(byte(1), m.Registers().V[6])

	err := m.SetKey(16, true)
	assert.ErrorIs(err, keypad.ErrInvalidKey)
}

func TestMachine_TickError(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t, DefaultConfig(), 0x6001, 0x00ee, 0x6002)

	err := m.Tick(10)
	assert.ErrorIs(err, cpu.ErrStackUnderflow)

	var re *ErrRuntime
	if assert.True(errors.As(err, &re)) {
		assert.Equal(uint16(0x202), re.Pc)
	}
	assert.Equal(1, strings.Count(err.Error(), "202"), err.Error())
	assert.True(strings.HasPrefix(err.Error(), "202: 00EE"), err.Error())

	assert.Equal(1, m.Ticks())
	assert.Equal(uint16(0x202), m.Registers().Pc)
	assert.Equal(byte(1), m.Registers().V[0])
}

func TestMachine_BreakEvalError(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	cfg.Break = "v0 if v0 else False"

	// LD V0, 1 then spin.
	m := newTestMachine(t, cfg, 0x6001, 0x1202)

	assert.NoError(m.Step())

	err := m.Step()
	assert.ErrorIs(err, ErrBreakExpression)
	assert.NotErrorIs(err, ErrBreakpoint)

	var re *ErrRuntime
	if assert.True(errors.As(err, &re)) {
		assert.Equal(uint16(0x202), re.Pc)
	}
	assert.True(strings.HasPrefix(err.Error(), "pc 202 "), err.Error())
	assert.Equal(1, m.Ticks())
}

func TestMachine_Break(t *testing.T) {
	assert := assert.New(t)

	cfg := DefaultConfig()
	cfg.Break = "pc == 0x204 and v0 > 3"

	m := newTestMachine(t, cfg, 0x6005, 0x0000, 0x7001, 0x1204)

	err := m.Tick(10)
	assert.ErrorIs(err, ErrBreakpoint)

	var eb *ErrBreak
	if assert.True(errors.As(err, &eb)) {
		assert.Equal(uint16(0x204), eb.Pc)
		assert.Equal(cfg.Break, eb.Expr)
	}
	assert.Equal(2, m.Ticks())
	assert.Equal(byte(5), m.Registers().V[0])

	// Resuming executes the instruction at the break.
	assert.NoError(m.Step())
	assert.Equal(byte(6), m.Registers().V[0])
	assert.Equal(uint16(0x206), m.Registers().Pc)

	err = m.Tick(10)
	assert.ErrorIs(err, ErrBreakpoint)
	assert.Equal(byte(6), m.Registers().V[0])
}

func TestMachine_Reset(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t, DefaultConfig(), 0xa000, 0xd015, 0x6a42)
	assert.NoError(m.Tick(3))
	assert.True(m.Display().Lit(0, 0))
	assert.Equal(byte(0x42), m.Registers().V[0xa])

	assert.NoError(m.Reset())
	assert.False(m.Display().Lit(0, 0))
	assert.Equal(uint16(cpu.PROGRAM_START), m.Registers().Pc)
	assert.Equal(0, m.Ticks())

	assert.NoError(m.Tick(3))
	assert.Equal(byte(0x42), m.Registers().V[0xa])
}

func TestMachine_SetClock(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t, DefaultConfig())
	assert.NoError(m.SetClock(600))
	assert.Equal(10, m.Budget(time.Second/60))

	assert.ErrorIs(m.SetClock(0), ErrClockInvalid)
	assert.Equal(600, m.Config().ClockHz)
}

func TestMachine_Defines(t *testing.T) {
	assert := assert.New(t)

	m := newTestMachine(t, DefaultConfig(), 0x6c07)
	assert.NoError(m.Step())

	defines := map[string]int{}
	for name, value := range m.Defines() {
		defines[name] = value
	}

	assert.Equal(64, defines["WIDTH"])
	assert.Equal(0x202, defines["pc"])
	assert.Equal(7, defines["vc"])
	assert.Equal(1, defines["ticks"])
}
