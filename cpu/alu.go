package cpu

// AluMode selects the arithmetic unit's active operation.
type AluMode int

//go:generate go tool stringer -linecomment -type=AluMode
const (
	ALU_OFF = AluMode(0) // off
	ALU_ADD = AluMode(1) // add
	ALU_SUB = AluMode(2) // sub
)

// Alu is the arithmetic execution unit. OperandFetch loads a
// destination/source scratch pair and Execute applies the active mode
// over it. Arithmetic wraps modulo 2^32; overflow is an observable
// result, never a fault.
type Alu struct {
	Mode AluMode

	dest uint32
	src  uint32
}

// OperandFetch loads the scratch operand pair.
func (alu *Alu) OperandFetch(dest, src uint32) {
	alu.dest = dest
	alu.src = src
}

// Execute applies the active mode over the scratch pair. Executing with
// the mode off signals a decode bug and fails with ErrAluMode.
func (alu *Alu) Execute() (result uint32, overflow bool, err error) {
	switch alu.Mode {
	case ALU_ADD:
		result = alu.dest + alu.src
		overflow = result < alu.dest
	case ALU_SUB:
		result = alu.dest - alu.src
		overflow = alu.src > alu.dest
	default:
		err = ErrAluMode(alu.Mode)
	}
	return
}
