package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := slices.All([]string{"pc", "i"})
	b := slices.All([]string{"v0"})

	var names []string
	for _, name := range IterSeq2Concat(a, b) {
		names = append(names, name)
	}
	assert.Equal([]string{"pc", "i", "v0"}, names)

	// Early stop.
	count := 0
	for range IterSeq2Concat(a, b) {
		count++
		break
	}
	assert.Equal(1, count)

	merged := maps.Collect(IterSeq2Concat(maps.All(map[string]int{"x": 1}), maps.All(map[string]int{"y": 2})))
	assert.Equal(map[string]int{"x": 1, "y": 2}, merged)

	assert.Empty(maps.Collect(IterSeq2Concat[string, int]()))
}
