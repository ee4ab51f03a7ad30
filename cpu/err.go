package cpu

import (
	"errors"

	"vx86/translate"
)

var f = translate.From

var (
	// ErrNoConsole is returned when a syscall needs the console device
	// and none was injected.
	ErrNoConsole = errors.New(f("no console device attached"))
)

// ErrUndeclaredLabel reports a memory operand naming a label absent from
// both the data and bss sections.
type ErrUndeclaredLabel string

func (e ErrUndeclaredLabel) Error() string {
	return f("label %v undeclared", string(e))
}

func (e ErrUndeclaredLabel) Is(err error) (ok bool) {
	_, ok = err.(ErrUndeclaredLabel)
	return
}

// ErrUninitialized reports a read of a cell that was never written and
// still holds the all-zero sentinel.
type ErrUninitialized string

func (e ErrUninitialized) Error() string {
	return f("label %v read before initialization", string(e))
}

func (e ErrUninitialized) Is(err error) (ok bool) {
	_, ok = err.(ErrUninitialized)
	return
}

// ErrLabelDuplicate reports a label declared twice.
type ErrLabelDuplicate string

func (e ErrLabelDuplicate) Error() string {
	return f("label %v already declared", string(e))
}

func (e ErrLabelDuplicate) Is(err error) (ok bool) {
	_, ok = err.(ErrLabelDuplicate)
	return
}

// ErrBadAddress reports a memory address outside the declared labels.
type ErrBadAddress uint32

func (e ErrBadAddress) Error() string {
	return f("address %#x outside declared memory", uint32(e))
}

func (e ErrBadAddress) Is(err error) (ok bool) {
	_, ok = err.(ErrBadAddress)
	return
}

// ErrBufferSize reports a byte buffer that cannot form a Data value.
type ErrBufferSize int

func (e ErrBufferSize) Error() string {
	return f("%d bytes do not form a value", int(e))
}

func (e ErrBufferSize) Is(err error) (ok bool) {
	_, ok = err.(ErrBufferSize)
	return
}

// ErrUnimplemented reports an opcode the machine does not execute.
type ErrUnimplemented Opcode

func (e ErrUnimplemented) Error() string {
	return f("opcode %v not implemented", Opcode(e))
}

func (e ErrUnimplemented) Is(err error) (ok bool) {
	_, ok = err.(ErrUnimplemented)
	return
}

// ErrAluMode reports an Execute call in a mode that cannot run; it
// signals a decode bug, not a data condition.
type ErrAluMode AluMode

func (e ErrAluMode) Error() string {
	return f("alu cannot execute in mode %v", AluMode(e))
}

func (e ErrAluMode) Is(err error) (ok bool) {
	_, ok = err.(ErrAluMode)
	return
}

// ErrSyscallNumber reports an unknown syscall number. It is recoverable:
// the instruction pointer has already advanced, so the caller may resume
// the run.
type ErrSyscallNumber uint32

func (e ErrSyscallNumber) Error() string {
	return f("unknown syscall %d", uint32(e))
}

func (e ErrSyscallNumber) Is(err error) (ok bool) {
	_, ok = err.(ErrSyscallNumber)
	return
}

// ErrArity reports an operand count that does not match the opcode's
// fixed arity.
type ErrArity struct {
	Opcode Opcode
	Want   int
	Got    int
}

func (e ErrArity) Error() string {
	return f("opcode %v wants %d operands, got %d", e.Opcode, e.Want, e.Got)
}

func (e ErrArity) Is(err error) (ok bool) {
	_, ok = err.(ErrArity)
	return
}

// ErrAddressingMode reports an illegal operand-kind combination:
// memory-to-memory, or an immediate used as the destination.
type ErrAddressingMode struct {
	Dest Operand
	Src  Operand
}

func (e ErrAddressingMode) Error() string {
	return f("illegal addressing mode %v, %v", e.Dest, e.Src)
}

func (e ErrAddressingMode) Is(err error) (ok bool) {
	_, ok = err.(ErrAddressingMode)
	return
}

// ErrInstruction wraps an execution failure with the instruction that
// triggered it and its text-section index.
type ErrInstruction struct {
	Index       int
	Instruction Instruction
	Err         error
}

func (e ErrInstruction) Error() string {
	return f("instruction %d '%v' %v", e.Index, e.Instruction, e.Err)
}

func (e ErrInstruction) Unwrap() error {
	return e.Err
}
