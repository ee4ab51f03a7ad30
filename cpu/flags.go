package cpu

// FlagBit identifies a single condition flag.
type FlagBit int

//go:generate go tool stringer -linecomment -type=FlagBit
const (
	FLAG_CARRY     = FlagBit(0) // carry
	FLAG_ZERO      = FlagBit(1) // zero
	FLAG_SIGN      = FlagBit(2) // sign
	FLAG_OVERFLOW  = FlagBit(3) // overflow
	FLAG_PARITY    = FlagBit(4) // parity
	FLAG_AUX_CARRY = FlagBit(5) // aux
	FLAG_INTERRUPT = FlagBit(6) // interrupt
	FLAG_DIRECTION = FlagBit(7) // direction
	FLAG_TRAP      = FlagBit(8) // trap
)

// FLAG_COUNT is the number of condition flags.
const FLAG_COUNT = 9

// Flags is the condition flag register. A flag stays latched until an
// operation that defines its semantics writes it again; today only the
// arithmetic overflow flag is ever written.
type Flags struct {
	bits uint16
}

// Get returns the current value of a flag.
func (fl *Flags) Get(bit FlagBit) bool {
	return fl.bits&(1<<uint(bit)) != 0
}

// Set latches a flag to a value.
func (fl *Flags) Set(bit FlagBit, value bool) {
	if value {
		fl.bits |= 1 << uint(bit)
	} else {
		fl.bits &^= 1 << uint(bit)
	}
}

// Reset clears every flag.
func (fl *Flags) Reset() {
	fl.bits = 0
}

// String returns the names of the set flags, or "-" when none are set.
func (fl *Flags) String() (text string) {
	for bit := FlagBit(0); bit < FLAG_COUNT; bit++ {
		if !fl.Get(bit) {
			continue
		}
		if text != "" {
			text += ","
		}
		text += bit.String()
	}
	if text == "" {
		text = "-"
	}
	return
}
