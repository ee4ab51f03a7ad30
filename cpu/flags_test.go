package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlags(t *testing.T) {
	assert := assert.New(t)

	var fl Flags

	for bit := FlagBit(0); bit < FLAG_COUNT; bit++ {
		assert.False(fl.Get(bit))
	}

	fl.Set(FLAG_OVERFLOW, true)
	assert.True(fl.Get(FLAG_OVERFLOW))
	assert.False(fl.Get(FLAG_CARRY))

	fl.Set(FLAG_OVERFLOW, false)
	assert.False(fl.Get(FLAG_OVERFLOW))

	fl.Set(FLAG_ZERO, true)
	fl.Set(FLAG_TRAP, true)
	fl.Reset()
	for bit := FlagBit(0); bit < FLAG_COUNT; bit++ {
		assert.False(fl.Get(bit))
	}
}

func TestFlagsString(t *testing.T) {
	assert := assert.New(t)

	var fl Flags
	assert.Equal("-", fl.String())

	fl.Set(FLAG_OVERFLOW, true)
	assert.Equal("overflow", fl.String())

	fl.Set(FLAG_ZERO, true)
	assert.Equal("zero,overflow", fl.String())
}
