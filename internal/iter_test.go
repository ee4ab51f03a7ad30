package internal

import (
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	first := maps.All(map[string]int{"a": 1})
	second := maps.All(map[string]int{"b": 2})

	seen := map[string]int{}
	for key, value := range IterSeq2Concat(first, second) {
		seen[key] = value
	}

	assert.Equal(map[string]int{"a": 1, "b": 2}, seen)
}

func TestIterSeq2ConcatEarlyStop(t *testing.T) {
	assert := assert.New(t)

	first := maps.All(map[string]int{"a": 1, "b": 2})
	second := maps.All(map[string]int{"c": 3})

	count := 0
	for range IterSeq2Concat(first, second) {
		count++
		if count == 1 {
			break
		}
	}

	assert.Equal(1, count)
}
