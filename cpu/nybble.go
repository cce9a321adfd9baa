package cpu

import (
	"fmt"
)

// Nybble is a single 4-bit operand, taken from bits 8-11 of an
// instruction word. It is used where only one register index is needed.
type Nybble byte

// NewNybble validates that value fits in four bits.
func NewNybble(value byte) (nyb Nybble, err error) {
	if value&0xf0 != 0 {
		err = ErrOperand(value)
		return
	}

	nyb = Nybble(value)
	return
}

// NybbleOf slices the register index from an instruction word.
func NybbleOf(word uint16) Nybble {
	return Nybble((word >> 8) & 0xf)
}

func (nyb Nybble) String() string {
	return fmt.Sprintf("%X", byte(nyb))
}

// Pair is a two register operand: X in the high nybble, Y in the low nybble.
// It is taken from bits 4-11 of an instruction word.
type Pair byte

// NewPair validates that x and y are both register indexes.
func NewPair(x, y byte) (pair Pair, err error) {
	for _, value := range []byte{x, y} {
		if value&0xf0 != 0 {
			err = ErrOperand(value)
			return
		}
	}

	pair = Pair(x<<4 | y)
	return
}

// PairOf slices the register pair from an instruction word.
func PairOf(word uint16) Pair {
	return Pair((word >> 4) & 0xff)
}

// X returns the first register index.
func (pair Pair) X() Nybble {
	return Nybble(pair >> 4)
}

// Y returns the second register index.
func (pair Pair) Y() Nybble {
	return Nybble(pair & 0xf)
}

func (pair Pair) String() string {
	return fmt.Sprintf("%v%v", pair.X(), pair.Y())
}

// Triple is a 12-bit operand: an X nybble and a low byte.
//
// The low byte is read as an immediate (KK), as a Y nybble and row count
// (N), or together with X as an address (NNN).
type Triple uint16

// NewTriple validates that x fits in four bits.
func NewTriple(x, low byte) (triple Triple, err error) {
	if x&0xf0 != 0 {
		err = ErrOperand(x)
		return
	}

	triple = Triple(uint16(x)<<8 | uint16(low))
	return
}

// TripleOf slices the 12-bit operand from an instruction word.
func TripleOf(word uint16) Triple {
	return Triple(word & 0xfff)
}

// X returns the register index.
func (triple Triple) X() Nybble {
	return Nybble(triple >> 8)
}

// Y returns the second register index.
func (triple Triple) Y() Nybble {
	return Nybble((triple >> 4) & 0xf)
}

// N returns the lowest nybble.
func (triple Triple) N() byte {
	return byte(triple & 0xf)
}

// Byte returns the low byte.
func (triple Triple) Byte() byte {
	return byte(triple & 0xff)
}

// Addr returns the 12-bit address.
func (triple Triple) Addr() uint16 {
	return uint16(triple)
}

func (triple Triple) String() string {
	return fmt.Sprintf("%03X", uint16(triple))
}
