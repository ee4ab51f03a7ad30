package cpu

import (
	"iter"
)

// RegisterID identifies a register view.
type RegisterID int

//go:generate go tool stringer -linecomment -type=RegisterID
const (
	REG_AX  = RegisterID(0)  // ax
	REG_BX  = RegisterID(1)  // bx
	REG_CX  = RegisterID(2)  // cx
	REG_DX  = RegisterID(3)  // dx
	REG_EAX = RegisterID(4)  // eax
	REG_EBX = RegisterID(5)  // ebx
	REG_ECX = RegisterID(6)  // ecx
	REG_EDX = RegisterID(7)  // edx
	REG_SP  = RegisterID(8)  // sp
	REG_BP  = RegisterID(9)  // bp
	REG_IP  = RegisterID(10) // ip
)

// REGISTER_COUNT is the number of register views.
const REGISTER_COUNT = 11

// Valid reports whether id names a register view.
func (id RegisterID) Valid() bool {
	return id >= REG_AX && id <= REG_IP
}

// Extended reports whether the view covers all four lanes of its family.
func (id RegisterID) Extended() bool {
	return id >= REG_EAX && id <= REG_EDX
}

// Width returns the native width of the register view.
func (id RegisterID) Width() Width {
	if id.Extended() {
		return WIDTH_DWORD
	}
	return WIDTH_WORD
}

// family returns the byte-lane family index for general-purpose views,
// or -1 for the special counters.
func (id RegisterID) family() int {
	switch {
	case id >= REG_AX && id <= REG_DX:
		return int(id - REG_AX)
	case id.Extended():
		return int(id - REG_EAX)
	}
	return -1
}

// Aliased reports whether two register views share byte lanes.
func Aliased(a, b RegisterID) bool {
	fam := a.family()
	return fam >= 0 && fam == b.family()
}

// RegisterFile holds the machine registers. Each general-purpose family
// is a single 4-byte little-endian lane array; the 16-bit view and its
// 32-bit superset slice the same lanes, so aliased views can never
// desynchronize. SP, BP and IP are plain 16-bit counters.
type RegisterFile struct {
	lanes   [4][4]byte
	special [3]uint16
}

// Reset zeroes every register.
func (rf *RegisterFile) Reset() {
	*rf = RegisterFile{}
}

// Get returns the current value of a register view, zero-extended.
func (rf *RegisterFile) Get(id RegisterID) (value uint32) {
	if fam := id.family(); fam >= 0 {
		lanes := &rf.lanes[fam]
		value = uint32(lanes[0]) | uint32(lanes[1])<<8
		if id.Extended() {
			value |= uint32(lanes[2])<<16 | uint32(lanes[3])<<24
		}
		return
	}

	switch id {
	case REG_SP, REG_BP, REG_IP:
		value = uint32(rf.special[id-REG_SP])
	default:
		panic("unknown register")
	}
	return
}

// Data returns the register view's value tagged at its native width.
func (rf *RegisterFile) Data(id RegisterID) Data {
	return MakeData(id.Width(), rf.Get(id))
}

// Set writes a value through to the view's byte lanes. Byte data touches
// only the lowest lane and word data the low two; lanes outside the
// written span keep their prior contents. Data wider than the view is
// narrowed to the view's width, never dropped; truncated reports the
// narrowing and stored is the value actually written.
func (rf *RegisterFile) Set(id RegisterID, value Data) (stored Data, truncated bool) {
	width := value.Width
	if width > id.Width() {
		truncated = true
		width = id.Width()
	}
	stored = MakeData(width, value.Value())

	if fam := id.family(); fam >= 0 {
		lanes := &rf.lanes[fam]
		for n := range int(width) {
			lanes[n] = byte(stored.Value() >> (8 * n))
		}
		return
	}

	switch id {
	case REG_SP, REG_BP, REG_IP:
		counter := rf.special[id-REG_SP]
		for n := range int(width) {
			shift := 8 * n
			counter = counter&^(0xff<<shift) | uint16(stored.Value()>>shift&0xff)<<shift
		}
		rf.special[id-REG_SP] = counter
	default:
		panic("unknown register")
	}
	return
}

// All iterates every register view with its current value.
func (rf *RegisterFile) All() iter.Seq2[RegisterID, uint32] {
	return func(yield func(RegisterID, uint32) bool) {
		for id := RegisterID(0); id < REGISTER_COUNT; id++ {
			if !yield(id, rf.Get(id)) {
				return
			}
		}
	}
}
