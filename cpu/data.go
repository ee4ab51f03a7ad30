package cpu

import (
	"fmt"
)

// Width is the byte width of a Data value.
type Width int

const (
	WIDTH_BYTE  = Width(1) // 1-byte value
	WIDTH_WORD  = Width(2) // 2-byte value
	WIDTH_DWORD = Width(4) // 4-byte value
)

// String returns the assembly name of the width.
func (w Width) String() string {
	switch w {
	case WIDTH_BYTE:
		return "byte"
	case WIDTH_WORD:
		return "word"
	case WIDTH_DWORD:
		return "dword"
	}
	return fmt.Sprintf("Width(%d)", int(w))
}

// Valid reports whether w is one of the three defined widths.
func (w Width) Valid() bool {
	return w == WIDTH_BYTE || w == WIDTH_WORD || w == WIDTH_DWORD
}

// Mask returns the unsigned value mask for the width.
func (w Width) Mask() uint32 {
	return uint32((uint64(1) << (8 * uint(w))) - 1)
}

// Data is a tagged numeric value of a fixed byte width. The stored value
// never exceeds the width's numeric range; narrowing is always explicit
// through Fit.
type Data struct {
	Width Width
	value uint32
}

// Byte returns a 1-byte Data value.
func Byte(value uint8) Data {
	return Data{Width: WIDTH_BYTE, value: uint32(value)}
}

// Word returns a 2-byte Data value.
func Word(value uint16) Data {
	return Data{Width: WIDTH_WORD, value: uint32(value)}
}

// Dword returns a 4-byte Data value.
func Dword(value uint32) Data {
	return Data{Width: WIDTH_DWORD, value: value}
}

// MakeData builds a Data of the given width, masking the value to the
// width's range.
func MakeData(width Width, value uint32) Data {
	if !width.Valid() {
		panic("unknown width")
	}
	return Data{Width: width, value: value & width.Mask()}
}

// DataFromBytes builds a Data from little-endian bytes. One byte makes a
// byte value, two a word, three or four a dword.
func DataFromBytes(raw []byte) (value Data, err error) {
	var width Width
	switch len(raw) {
	case 1:
		width = WIDTH_BYTE
	case 2:
		width = WIDTH_WORD
	case 3, 4:
		width = WIDTH_DWORD
	default:
		err = ErrBufferSize(len(raw))
		return
	}

	var bits uint32
	for n, b := range raw {
		bits |= uint32(b) << (8 * n)
	}
	value = MakeData(width, bits)
	return
}

// Value returns the value, zero-extended to 32 bits.
func (d Data) Value() uint32 {
	return d.value
}

// IsZero reports whether the value is all zero.
func (d Data) IsZero() bool {
	return d.value == 0
}

// Bytes returns the little-endian bytes of the value, Width long.
func (d Data) Bytes() (out []byte) {
	for n := range int(d.Width) {
		out = append(out, byte(d.value>>(8*n)))
	}
	return
}

// Fit re-tags the value at the destination width. Truncated reports a
// narrowing and widened a zero-extension; the conversion itself always
// completes.
func (d Data) Fit(width Width) (out Data, truncated, widened bool) {
	out = MakeData(width, d.value)
	truncated = d.Width > width
	widened = d.Width < width
	return
}

// String returns the width-tagged value, e.g. "word(0x12c)".
func (d Data) String() string {
	return fmt.Sprintf("%v(%#x)", d.Width, d.value)
}
