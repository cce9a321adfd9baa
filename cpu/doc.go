// Package cpu implements the CHIP-8 interpreter core.
//
// The CPU consists of a 4095 byte memory bank with the hexadecimal digit
// glyphs at its base and the program at 0x200, sixteen 8-bit general-purpose
// registers (V0-VF, where VF doubles as the carry, borrow and collision flag),
// a 16-bit index register (I), delay and sound timers, a program counter, and
// a 16 entry return-address stack. It drives a display.Display for sprite
// output, and a keypad.Keypad for key input.
//
// Instructions are 16-bit big-endian words, decoded by Decode into one of 35
// operations, and executed by Cpu.Execute.
package cpu
