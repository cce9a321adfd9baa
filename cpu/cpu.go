// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"iter"
	"log"
	"maps"
	"math/rand/v2"

	"github.com/ezrec/chip8/display"
	"github.com/ezrec/chip8/keypad"
)

var _cpu_defines = map[string]int{
	"MEMORY_SIZE":   MEMORY_SIZE,
	"PROGRAM_START": PROGRAM_START,
	"PROGRAM_END":   PROGRAM_END,
	"STACK_LIMIT":   STACK_LIMIT,
	"FLAG":          REGISTER_FLAG,
}

// Cpu is the simulation context for the CHIP-8 interpreter.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Quirks Quirks      // Interpreter compatibility choices.
	Random func() byte // Source for RND, defaults to math/rand/v2.

	Memory *Memory // Memory bank.
	Registers
	Stack Stack // Return address stack.

	Display *display.Display // Display driven by CLS and DRW.
	Keypad  *keypad.Keypad   // Key input latch.

	Ticks int // Instructions executed.
}

// NewCpu creates a CPU with the program image loaded at PROGRAM_START.
func NewCpu(program []byte) (cpu *Cpu, err error) {
	mem, err := NewMemory(program)
	if err != nil {
		return
	}

	cpu = &Cpu{
		Quirks:  DefaultQuirks(),
		Random:  func() byte { return byte(rand.UintN(256)) },
		Memory:  mem,
		Display: display.NewDisplay(),
		Keypad:  keypad.NewKeypad(),
	}
	cpu.Registers.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, int] {
	return maps.All(_cpu_defines)
}

// Symbols returns the current register values, by lower case register name.
func (cpu *Cpu) Symbols() iter.Seq2[string, int] {
	return func(yield func(name string, value int) bool) {
		named := []struct {
			name  string
			value int
		}{
			{"pc", int(cpu.Pc)},
			{"i", int(cpu.I)},
			{"dt", int(cpu.Delay)},
			{"st", int(cpu.Sound)},
			{"sp", cpu.Stack.Depth()},
			{"ticks", cpu.Ticks},
		}
		for _, reg := range named {
			if !yield(reg.name, reg.value) {
				return
			}
		}
		for n, value := range cpu.V {
			if !yield(fmt.Sprintf("v%x", n), int(value)) {
				return
			}
		}
	}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %03X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 5s: %03X\n", "i", cpu.I)
	for n, value := range cpu.V {
		text += fmt.Sprintf("% 5s: %02X\n", fmt.Sprintf("v%X", n), value)
	}
	text += fmt.Sprintf("% 5s: %02X\n", "dt", cpu.Delay)
	text += fmt.Sprintf("% 5s: %02X\n", "st", cpu.Sound)

	strval := "---"
	if val, ok := cpu.Stack.Peek(); ok {
		strval = fmt.Sprintf("%03X", val)
	}
	text += fmt.Sprintf("% 5s: %v (%d)\n", "stack", strval, cpu.Stack.Depth())

	return
}

// Waiting returns true if execution is blocked on a key press.
func (cpu *Cpu) Waiting() bool {
	return cpu.Keypad.Waiting()
}

// SetKey records a key press or release. A press resolves a pending
// LD Vx, K by writing the key index to Vx.
func (cpu *Cpu) SetKey(key int, pressed bool) (err error) {
	register, resolved, err := cpu.Keypad.Set(key, pressed)
	if err != nil {
		return
	}

	if resolved {
		if cpu.Verbose {
			log.Printf("cpu: key %X resolves wait on V%X", key, register)
		}
		cpu.V[register] = byte(key)
	}

	return
}

// Fetch reads the instruction word at the program counter.
func (cpu *Cpu) Fetch() (word uint16, err error) {
	return cpu.Memory.Word(cpu.Pc)
}

// Step executes a single instruction. Step does nothing while waiting
// for a key.
func (cpu *Cpu) Step() (err error) {
	if cpu.Waiting() {
		return
	}

	word, err := cpu.Fetch()
	if err != nil {
		err = &ErrExecute{Word: word, Pc: cpu.Pc, Err: err}
		return
	}

	in, err := Decode(word)
	if err != nil {
		err = &ErrExecute{Word: word, Pc: cpu.Pc, Err: err}
		return
	}

	err = cpu.Execute(in)

	return
}

// jumpTarget validates the target of a jump or call.
func (cpu *Cpu) jumpTarget(addr uint16) (err error) {
	if cpu.Quirks.StrictAlignment && addr&1 != 0 {
		err = ErrUneven(addr)
	}
	return
}

// Execute executes a single decoded instruction.
//
// On failure the machine state is left as it was before the instruction.
func (cpu *Cpu) Execute(in Instruction) (err error) {
	defer func() {
		if err != nil {
			err = &ErrExecute{Instruction: &in, Word: in.Word, Pc: cpu.Pc, Err: err}
		}
	}()

	if cpu.Verbose {
		log.Printf("cpu: %03X: %v", cpu.Pc, in)
	}

	next_pc := cpu.Pc + 2

	v := &cpu.V
	x := in.X()
	y := in.Y()

	// shift source register
	sy := x
	if cpu.Quirks.ShiftUsesVy {
		sy = y
	}

	switch in.Op {
	case OP_CLS:
		cpu.Display.Clear()
	case OP_RET:
		addr, ok := cpu.Stack.Pop()
		if !ok {
			err = ErrStackUnderflow
			return
		}
		next_pc = addr + 2
	case OP_SYS:
		// Machine code routines are not supported, and are ignored.
	case OP_JP:
		addr := in.NNN()
		err = cpu.jumpTarget(addr)
		if err != nil {
			return
		}
		next_pc = addr
	case OP_CALL:
		addr := in.NNN()
		err = cpu.jumpTarget(addr)
		if err != nil {
			return
		}
		if !cpu.Stack.Push(cpu.Pc) {
			err = ErrStackOverflow
			return
		}
		next_pc = addr
	case OP_JP_V0:
		addr := int(v[0]) + int(in.NNN())
		if addr < PROGRAM_START || addr > PROGRAM_END {
			err = ErrAddress(addr)
			return
		}
		err = cpu.jumpTarget(uint16(addr))
		if err != nil {
			return
		}
		next_pc = uint16(addr)
	case OP_SE_VX_KK:
		if v[x] == in.KK() {
			next_pc += 2
		}
	case OP_SNE_VX_KK:
		if v[x] != in.KK() {
			next_pc += 2
		}
	case OP_SE_VX_VY:
		if v[x] == v[y] {
			next_pc += 2
		}
	case OP_SNE_VX_VY:
		if v[x] != v[y] {
			next_pc += 2
		}
	case OP_SKP, OP_SKNP:
		var pressed bool
		pressed, err = cpu.Keypad.Pressed(int(v[x]))
		if err != nil {
			return
		}
		if pressed == (in.Op == OP_SKP) {
			next_pc += 2
		}
	case OP_LD_VX_KK:
		v[x] = in.KK()
	case OP_ADD_VX_KK:
		v[x] += in.KK()
	case OP_LD_VX_VY:
		v[x] = v[y]
	case OP_OR_VX_VY:
		v[x] |= v[y]
	case OP_AND_VX_VY:
		v[x] &= v[y]
	case OP_XOR_VX_VY:
		v[x] ^= v[y]
	case OP_ADD_VX_VY:
		sum := uint16(v[x]) + uint16(v[y])
		v[x] = byte(sum)
		v[REGISTER_FLAG] = byte(sum >> 8)
	case OP_SUB_VX_VY:
		a, b := v[x], v[y]
		v[x] = a - b
		v[REGISTER_FLAG] = flag(a >= b)
	case OP_SUBN_VX_VY:
		a, b := v[x], v[y]
		v[x] = b - a
		v[REGISTER_FLAG] = flag(b >= a)
	case OP_SHR_VX_VY:
		value := v[sy]
		v[x] = value >> 1
		v[REGISTER_FLAG] = value & 1
	case OP_SHL_VX_VY:
		value := v[sy]
		v[x] = value << 1
		v[REGISTER_FLAG] = value >> 7
	case OP_LD_I:
		cpu.I = in.NNN()
	case OP_RND:
		v[x] = cpu.Random() & in.KK()
	case OP_DRW:
		err = cpu.draw(int(v[x]), int(v[y]), int(in.N()))
		if err != nil {
			return
		}
	case OP_LD_VX_DT:
		v[x] = cpu.Delay
	case OP_LD_VX_K:
		cpu.Keypad.Await(byte(x))
	case OP_LD_DT_VX:
		cpu.Delay = v[x]
	case OP_LD_ST_VX:
		cpu.Sound = v[x]
	case OP_ADD_I_VX:
		cpu.I += uint16(v[x])
	case OP_LD_F_VX:
		var addr uint16
		addr, err = DigitAddress(v[x])
		if err != nil {
			return
		}
		cpu.I = addr
	case OP_LD_B_VX:
		value := v[x]
		err = cpu.Memory.Write(cpu.I, value/100, (value%100)/10, value%10)
		if err != nil {
			return
		}
	case OP_LD_MEM_VX:
		err = cpu.Memory.Write(cpu.I, v[:x+1]...)
		if err != nil {
			return
		}
		if cpu.Quirks.LoadStoreIncrementsI {
			cpu.I += uint16(x) + 1
		}
	case OP_LD_VX_MEM:
		var data []byte
		data, err = cpu.Memory.Read(cpu.I, int(x)+1)
		if err != nil {
			return
		}
		copy(v[:], data)
		if cpu.Quirks.LoadStoreIncrementsI {
			cpu.I += uint16(x) + 1
		}
	default:
		err = ErrDecode(in.Word)
		return
	}

	cpu.Pc = next_pc
	cpu.Ticks++

	return
}

// draw draws the n byte sprite at I to the display, setting VF on collision.
func (cpu *Cpu) draw(x, y, n int) (err error) {
	if cpu.Quirks.WrapSpriteOrigin {
		x %= display.WIDTH
		y %= display.HEIGHT
	}

	sprite, err := cpu.Memory.Read(cpu.I, n)
	if err != nil {
		return
	}

	collision, err := cpu.Display.Draw(x, y, sprite)
	if err != nil {
		return
	}

	cpu.V[REGISTER_FLAG] = flag(collision)

	return
}

func flag(set bool) byte {
	if set {
		return 1
	}
	return 0
}
