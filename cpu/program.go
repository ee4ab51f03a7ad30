package cpu

// Declaration is a labeled memory cell declaration. For the data section
// Value carries the initial contents; for the bss section only the width
// matters and the value starts at zero.
type Declaration struct {
	Label string
	Value Data
}

// Program is the loader's input to the CPU: the pre-initialized data
// section, the uninitialized bss section, and the read-only text
// section. Lines optionally carries the source line number of each text
// instruction for runtime error reporting; it may be shorter than Text
// or nil for hand-built programs.
type Program struct {
	Data  []Declaration
	Bss   []Declaration
	Text  []Instruction
	Lines []int
}

// LineNo returns the source line of a text instruction, or 0 when the
// program carries no line information.
func (prog *Program) LineNo(index int) int {
	if index < 0 || index >= len(prog.Lines) {
		return 0
	}
	return prog.Lines[index]
}
