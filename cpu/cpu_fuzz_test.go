package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzDecode(f *testing.F) {
	for _, entry := range decodeTable {
		f.Add(entry.match)
		f.Add(entry.match | ^entry.mask)
	}
	f.Add(uint16(0xffff))

	f.Fuzz(func(t *testing.T, word uint16) {
		assert := assert.New(t)

		in, err := Decode(word)
		if err != nil {
			assert.ErrorIs(err, ErrOpcodeDecode)
			return
		}

		assert.Equal(word, in.Word)
		assert.True(in.Op >= 0 && in.Op < OP_COUNT)

		// The word must match the rule of its operation, and no earlier rule.
		for _, entry := range decodeTable {
			if entry.op == in.Op {
				assert.Equal(entry.match, word&entry.mask)
				break
			}
			assert.NotEqual(entry.match, word&entry.mask, "%04X shadowed by %v", word, entry.op)
		}

		assert.NotEmpty(in.String())
	})
}

func FuzzStep(f *testing.F) {
	f.Add(uint16(0x00ee), byte(0), byte(0), uint16(0))
	f.Add(uint16(0x2200), byte(0), byte(0), uint16(0))
	f.Add(uint16(0xd12f), byte(63), byte(31), uint16(0xff0))
	f.Add(uint16(0xff55), byte(0), byte(0), uint16(0xff8))
	f.Add(uint16(0xff65), byte(0), byte(0), uint16(0xfff))
	f.Add(uint16(0xbfff), byte(0xff), byte(0), uint16(0))
	f.Add(uint16(0xe19e), byte(0), byte(0x10), uint16(0))

	f.Fuzz(func(t *testing.T, word uint16, v0 byte, v1 byte, index uint16) {
		assert := assert.New(t)

		cpu, err := NewCpu(program(word))
		if !assert.NoError(err) {
			return
		}
		cpu.Random = func() byte { return 0x5a }
		cpu.V[0] = v0
		cpu.V[1] = v1
		cpu.V[2] = v1 ^ 0xff
		cpu.I = index

		regs := cpu.Registers
		stack := cpu.Stack
		mem := *cpu.Memory
		pixel := cpu.Display.Pixel

		err = cpu.Step()
		if err != nil {
			var ee *ErrExecute
			assert.True(errors.As(err, &ee))
			assert.Equal(uint16(PROGRAM_START), ee.Pc)

			// Failed steps leave the machine untouched.
			assert.Equal(regs, cpu.Registers)
			assert.Equal(stack, cpu.Stack)
			assert.Equal(mem, *cpu.Memory)
			assert.Equal(pixel, cpu.Display.Pixel)
			assert.Equal(0, cpu.Ticks)
			return
		}

		assert.Equal(1, cpu.Ticks)

		in, _ := Decode(word)
		switch in.Op {
		case OP_JP, OP_CALL, OP_JP_V0:
		default:
			assert.Contains([]uint16{PROGRAM_START + 2, PROGRAM_START + 4}, cpu.Pc, "%04X", word)
		}
	})
}
