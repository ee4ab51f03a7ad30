package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterAliasing(t *testing.T) {
	assert := assert.New(t)

	var rf RegisterFile

	rf.Set(REG_EAX, Dword(0x11223344))
	assert.Equal(uint32(0x11223344), rf.Get(REG_EAX))
	assert.Equal(uint32(0x3344), rf.Get(REG_AX))

	// A word write leaves the upper lanes alone.
	rf.Set(REG_AX, Word(0xbeef))
	assert.Equal(uint32(0x1122beef), rf.Get(REG_EAX))

	// A byte write touches only the lowest lane.
	rf.Set(REG_AX, Byte(0x7f))
	assert.Equal(uint32(0xbe7f), rf.Get(REG_AX))
	assert.Equal(uint32(0x1122be7f), rf.Get(REG_EAX))

	// Families do not bleed into each other.
	assert.Equal(uint32(0), rf.Get(REG_EBX))
}

func TestRegisterTruncation(t *testing.T) {
	assert := assert.New(t)

	var rf RegisterFile

	stored, truncated := rf.Set(REG_BX, Dword(0x11223344))
	assert.True(truncated)
	assert.Equal(Word(0x3344), stored)
	assert.Equal(uint32(0x3344), rf.Get(REG_BX))
	assert.Equal(uint32(0x3344), rf.Get(REG_EBX))

	_, truncated = rf.Set(REG_ECX, Dword(0x11223344))
	assert.False(truncated)
}

func TestRegisterAliased(t *testing.T) {
	assert := assert.New(t)

	assert.True(Aliased(REG_AX, REG_EAX))
	assert.True(Aliased(REG_EDX, REG_DX))
	assert.False(Aliased(REG_AX, REG_EBX))
	assert.False(Aliased(REG_SP, REG_BP))
}

func TestRegisterSpecials(t *testing.T) {
	assert := assert.New(t)

	var rf RegisterFile

	rf.Set(REG_IP, Word(0x1234))
	assert.Equal(uint32(0x1234), rf.Get(REG_IP))

	// A byte write keeps the counter's upper byte.
	rf.Set(REG_IP, Byte(0x01))
	assert.Equal(uint32(0x1201), rf.Get(REG_IP))

	rf.Set(REG_SP, Word(0xffff))
	rf.Set(REG_BP, Word(0x8000))
	assert.Equal(uint32(0xffff), rf.Get(REG_SP))
	assert.Equal(uint32(0x8000), rf.Get(REG_BP))

	rf.Reset()
	assert.Equal(uint32(0), rf.Get(REG_SP))
	assert.Equal(uint32(0), rf.Get(REG_IP))
}

func TestRegisterAll(t *testing.T) {
	assert := assert.New(t)

	var rf RegisterFile
	rf.Set(REG_EAX, Dword(0x11223344))

	seen := map[RegisterID]uint32{}
	for id, value := range rf.All() {
		seen[id] = value
	}

	assert.Len(seen, REGISTER_COUNT)
	assert.Equal(uint32(0x11223344), seen[REG_EAX])
	assert.Equal(uint32(0x3344), seen[REG_AX])
}

func TestRegisterUnknown(t *testing.T) {
	assert := assert.New(t)

	var rf RegisterFile
	assert.Panics(func() { rf.Get(RegisterID(99)) })
	assert.Panics(func() { rf.Set(RegisterID(99), Word(0)) })
}
