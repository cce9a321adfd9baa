package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyOf(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		r   rune
		key int
		ok  bool
	}){
		{'1', 0x1, true},
		{'4', 0xc, true},
		{'q', 0x4, true},
		{'R', 0xd, true},
		{'s', 0x8, true},
		{'x', 0x0, true},
		{'V', 0xf, true},
		{'z', 0xa, true},
		{'p', 0, false},
		{'5', 0, false},
		{' ', 0, false},
	}

	for _, entry := range table {
		key, ok := KeyOf(entry.r)
		assert.Equal(entry.ok, ok, string(entry.r))
		assert.Equal(entry.key, key, string(entry.r))
	}
}

func TestKeyLayout(t *testing.T) {
	assert := assert.New(t)

	seen := map[int]bool{}
	for _, c := range KEY_LAYOUT {
		key, ok := KeyOf(c)
		assert.True(ok)
		seen[key] = true
	}
	assert.Equal(16, len(seen))
}
