package cpu

const (
	REGISTER_COUNT = 16  // General purpose registers, V0 through VF.
	REGISTER_FLAG  = 0xf // VF, overwritten by carry, borrow, shift and collision.
)

// Registers is the register file.
type Registers struct {
	V     [REGISTER_COUNT]byte // General purpose registers.
	I     uint16               // Index register.
	Pc    uint16               // Program counter.
	Delay byte                 // Delay timer.
	Sound byte                 // Sound timer.
}

// Reset the registers to their power-on state.
func (regs *Registers) Reset() {
	*regs = Registers{
		Pc: PROGRAM_START,
	}
}

// Tock decrements the timers once, stopping at zero.
func (regs *Registers) Tock() {
	if regs.Delay > 0 {
		regs.Delay--
	}
	if regs.Sound > 0 {
		regs.Sound--
	}
}
