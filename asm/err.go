package asm

import (
	"errors"

	"vx86/translate"
)

var f = translate.From

var (
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrSectionSyntax   = errors.New(f("section syntax"))
	ErrOutsideSection  = errors.New(f("statement outside any section"))
)

// ErrSectionUnknown reports a section directive naming no known section.
type ErrSectionUnknown string

func (e ErrSectionUnknown) Error() string {
	return f("section %v unknown", string(e))
}

// ErrOpcodeInvalid reports an unknown mnemonic.
type ErrOpcodeInvalid string

func (e ErrOpcodeInvalid) Error() string {
	return f("'%v' is not an opcode", string(e))
}

// ErrOperandInvalid reports an operand that parses as nothing.
type ErrOperandInvalid string

func (e ErrOperandInvalid) Error() string {
	return f("'%v' is not a register, memory reference or value", string(e))
}

// ErrDeclarationSyntax reports a malformed data or bss declaration.
type ErrDeclarationSyntax string

func (e ErrDeclarationSyntax) Error() string {
	return f("'%v' is not a declaration", string(e))
}

// ErrParseNumber reports a word that is not a number.
type ErrParseNumber string

func (e ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(e))
}

// ErrParseExpression reports a $(...) expression that did not evaluate
// to an integer.
type ErrParseExpression string

func (e ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(e))
}

// ErrSyntax locates a parse error in the source stream.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
