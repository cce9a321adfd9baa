package host

import (
	"unicode"
)

// KEY_LAYOUT is the host keyboard layout of the keypad, row by row.
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
const KEY_LAYOUT = "1234qwerasdfzxcv"

// KEY_PAD is the keypad index at each position of KEY_LAYOUT.
var KEY_PAD = [16]int{
	0x1, 0x2, 0x3, 0xc,
	0x4, 0x5, 0x6, 0xd,
	0x7, 0x8, 0x9, 0xe,
	0xa, 0x0, 0xb, 0xf,
}

// KeyOf returns the keypad index for a host key character.
func KeyOf(r rune) (key int, ok bool) {
	r = unicode.ToLower(r)
	for n, c := range KEY_LAYOUT {
		if c == r {
			return KEY_PAD[n], true
		}
	}
	return
}
