package cpu

import (
	"fmt"
)

// Opcode is the operation tag of an instruction. The full mnemonic set
// of the instruction list format is enumerated; executing anything
// outside mov, add, sub and syscall fails with ErrUnimplemented.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_MOV     = Opcode(0)  // mov
	OP_ADD     = Opcode(1)  // add
	OP_SUB     = Opcode(2)  // sub
	OP_MUL     = Opcode(3)  // mul
	OP_DIV     = Opcode(4)  // div
	OP_AND     = Opcode(5)  // and
	OP_OR      = Opcode(6)  // or
	OP_XOR     = Opcode(7)  // xor
	OP_NOT     = Opcode(8)  // not
	OP_CMP     = Opcode(9)  // cmp
	OP_JMP     = Opcode(10) // jmp
	OP_JE      = Opcode(11) // je
	OP_JNE     = Opcode(12) // jne
	OP_JG      = Opcode(13) // jg
	OP_JGE     = Opcode(14) // jge
	OP_JL      = Opcode(15) // jl
	OP_JLE     = Opcode(16) // jle
	OP_CALL    = Opcode(17) // call
	OP_RET     = Opcode(18) // ret
	OP_PUSH    = Opcode(19) // push
	OP_POP     = Opcode(20) // pop
	OP_SYSCALL = Opcode(21) // syscall
)

// OPCODE_COUNT is the number of enumerated opcodes.
const OPCODE_COUNT = 22

// Valid reports whether op names an enumerated opcode.
func (op Opcode) Valid() bool {
	return op >= OP_MOV && op < OPCODE_COUNT
}

// Arity returns the fixed operand count the opcode requires.
func (op Opcode) Arity() int {
	switch op {
	case OP_MOV, OP_ADD, OP_SUB, OP_MUL, OP_DIV, OP_AND, OP_OR, OP_XOR, OP_CMP:
		return 2
	case OP_NOT, OP_JMP, OP_JE, OP_JNE, OP_JG, OP_JGE, OP_JL, OP_JLE, OP_CALL, OP_PUSH, OP_POP:
		return 1
	}
	return 0
}

// OperandKind is the variant tag of an operand.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	KIND_REGISTER  = OperandKind(0) // register
	KIND_MEMORY    = OperandKind(1) // memory
	KIND_IMMEDIATE = OperandKind(2) // immediate
)

// Operand is a closed variant over a register view, a memory label
// reference, or an immediate value.
type Operand struct {
	Kind      OperandKind
	Register  RegisterID
	Label     string
	Immediate Data
}

// Reg returns a register operand.
func Reg(id RegisterID) Operand {
	return Operand{Kind: KIND_REGISTER, Register: id}
}

// Mem returns a memory reference operand.
func Mem(label string) Operand {
	return Operand{Kind: KIND_MEMORY, Label: label}
}

// Imm returns an immediate operand.
func Imm(value Data) Operand {
	return Operand{Kind: KIND_IMMEDIATE, Immediate: value}
}

// String returns the assembly form of the operand.
func (op Operand) String() string {
	switch op.Kind {
	case KIND_REGISTER:
		return op.Register.String()
	case KIND_MEMORY:
		return "[" + op.Label + "]"
	case KIND_IMMEDIATE:
		return op.Immediate.String()
	}
	return fmt.Sprintf("OperandKind(%d)", int(op.Kind))
}

// Instruction is an opcode with exactly the operands the opcode
// requires. Instructions are built once at program-build time and never
// mutated during execution.
type Instruction struct {
	Opcode   Opcode
	Operands []Operand
}

// MakeInstruction builds an instruction from an opcode and operands.
func MakeInstruction(op Opcode, operands ...Operand) Instruction {
	return Instruction{Opcode: op, Operands: operands}
}

// String returns the assembly form of the instruction.
func (in Instruction) String() (out string) {
	out = in.Opcode.String()
	for n, op := range in.Operands {
		if n == 0 {
			out += " " + op.String()
		} else {
			out += ", " + op.String()
		}
	}
	return
}
