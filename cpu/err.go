package cpu

import (
	"errors"

	"github.com/ezrec/chip8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrStackOverflow      = errors.New(f("stack overflow"))
	ErrStackUnderflow     = errors.New(f("stack underflow"))
	ErrAddressOutOfBounds = errors.New(f("address out of bounds"))
	ErrAddressUneven      = errors.New(f("address uneven"))
	ErrNoSuchDigitSprite  = errors.New(f("no such digit sprite"))
	ErrProgramTooLarge    = errors.New(f("program too large"))

	// Instruction decode errors
	ErrOpcodeDecode   = errors.New(f("decode"))
	ErrOperandInvalid = errors.New(f("invalid operand"))
)

// ErrDecode reports an instruction word that matches no operation.
type ErrDecode uint16

func (ed ErrDecode) Error() string {
	return f("unsupported opcode 0x%v", translate.Hex(uint16(ed)))
}

// Is matches any ErrDecode, and ErrOpcodeDecode.
func (ed ErrDecode) Is(err error) (ok bool) {
	if err == ErrOpcodeDecode {
		return true
	}
	_, ok = err.(ErrDecode)
	return
}

// ErrOperand reports a value that does not fit its operand slot.
type ErrOperand byte

func (eo ErrOperand) Error() string {
	return f("invalid nybble value 0x%02X", byte(eo))
}

func (eo ErrOperand) Is(err error) bool {
	return err == ErrOperandInvalid
}

// ErrAddress reports an address outside of the valid memory or program region.
type ErrAddress int

func (ea ErrAddress) Error() string {
	return f("address 0x%03X out of bounds", int(ea))
}

func (ea ErrAddress) Is(err error) bool {
	return err == ErrAddressOutOfBounds
}

// ErrUneven reports a jump target that is not instruction aligned.
type ErrUneven uint16

func (eu ErrUneven) Error() string {
	return f("address 0x%03X is uneven", uint16(eu))
}

func (eu ErrUneven) Is(err error) bool {
	return err == ErrAddressUneven
}

// ErrDigit reports a value with no digit glyph.
type ErrDigit byte

func (ed ErrDigit) Error() string {
	return f("value %d is not a valid digit sprite", byte(ed))
}

func (ed ErrDigit) Is(err error) bool {
	return err == ErrNoSuchDigitSprite
}

// ErrExecute wraps the failure of a single step, with the instruction and
// the address it was fetched from. Instruction is nil when the word was
// never decoded.
type ErrExecute struct {
	Instruction *Instruction
	Word        uint16
	Pc          uint16
	Err         error
}

func (err *ErrExecute) Error() string {
	if err.Instruction == nil {
		return f("%03X: %04X: %v", err.Pc, err.Word, err.Err)
	}
	return f("%03X: %v: %v", err.Pc, err.Instruction, err.Err)
}

func (err *ErrExecute) Unwrap() error {
	return err.Err
}
