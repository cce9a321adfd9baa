package cpu

const (
	MEMORY_SIZE   = 4095  // Size of the memory bank, 0x000 through 0xFFE.
	PROGRAM_START = 0x200 // Load address of the program image.
	PROGRAM_END   = 0xffe // Highest valid jump target.
	GLYPH_SIZE    = 5     // Bytes per digit glyph.
	GLYPH_COUNT   = 16    // Digit glyphs, 0 through F.

	PROGRAM_LIMIT = MEMORY_SIZE - PROGRAM_START // Largest program image.
)

// Glyph is the bitmap of a hexadecimal digit, 4 pixels wide.
var Glyph = [GLYPH_COUNT][GLYPH_SIZE]byte{
	{0xf0, 0x90, 0x90, 0x90, 0xf0}, // 0
	{0x20, 0x60, 0x20, 0x20, 0x70}, // 1
	{0xf0, 0x10, 0xf0, 0x80, 0xf0}, // 2
	{0xf0, 0x10, 0xf0, 0x10, 0xf0}, // 3
	{0x90, 0x90, 0xf0, 0x10, 0x10}, // 4
	{0xf0, 0x80, 0xf0, 0x10, 0xf0}, // 5
	{0xf0, 0x80, 0xf0, 0x90, 0xf0}, // 6
	{0xf0, 0x10, 0x20, 0x40, 0x40}, // 7
	{0xf0, 0x90, 0xf0, 0x90, 0xf0}, // 8
	{0xf0, 0x90, 0xf0, 0x10, 0xf0}, // 9
	{0xf0, 0x90, 0xf0, 0x90, 0x90}, // A
	{0xe0, 0x90, 0xe0, 0x90, 0xe0}, // B
	{0xf0, 0x80, 0x80, 0x80, 0xf0}, // C
	{0xe0, 0x90, 0x90, 0x90, 0xe0}, // D
	{0xf0, 0x80, 0xf0, 0x80, 0xf0}, // E
	{0xf0, 0x80, 0xf0, 0x80, 0x80}, // F
}

// DigitAddress returns the address of the glyph for a digit.
func DigitAddress(digit byte) (addr uint16, err error) {
	if digit >= GLYPH_COUNT {
		err = ErrDigit(digit)
		return
	}

	addr = uint16(digit) * GLYPH_SIZE
	return
}

// Memory is the addressable memory bank.
type Memory [MEMORY_SIZE]byte

// NewMemory creates a memory bank with the digit glyphs installed, and
// the program image copied to PROGRAM_START.
func NewMemory(program []byte) (mem *Memory, err error) {
	if len(program) > PROGRAM_LIMIT {
		err = ErrProgramTooLarge
		return
	}

	mem = &Memory{}
	for n, glyph := range Glyph {
		copy(mem[n*GLYPH_SIZE:], glyph[:])
	}
	copy(mem[PROGRAM_START:], program)

	return
}

// check verifies that count bytes at addr lie within the bank.
func (mem *Memory) check(addr uint16, count int) (err error) {
	if int(addr)+count > MEMORY_SIZE {
		err = ErrAddress(int(addr) + count - 1)
	}
	return
}

// Read returns count bytes starting at addr. The returned slice aliases
// the bank.
func (mem *Memory) Read(addr uint16, count int) (data []byte, err error) {
	err = mem.check(addr, count)
	if err != nil {
		return
	}

	data = mem[addr : int(addr)+count]
	return
}

// Write copies data into the bank starting at addr. Nothing is written if
// any byte would land outside of the bank.
func (mem *Memory) Write(addr uint16, data ...byte) (err error) {
	err = mem.check(addr, len(data))
	if err != nil {
		return
	}

	copy(mem[addr:], data)
	return
}

// Word returns the big-endian instruction word at addr.
func (mem *Memory) Word(addr uint16) (word uint16, err error) {
	data, err := mem.Read(addr, 2)
	if err != nil {
		return
	}

	word = uint16(data[0])<<8 | uint16(data[1])
	return
}
