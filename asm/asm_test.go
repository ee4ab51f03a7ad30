package asm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"vx86/cpu"
)

const subtractSource = `; compute 300 - 10
section .data
num2    dw 10          ; subtrahend
section .bss
result  resw
section .text
        mov ax, 300
        mov bx, [num2]
        mov cx, ax
        sub cx, bx
        mov [result], cx
`

func TestParseSubtract(t *testing.T) {
	assert := assert.New(t)

	as := &Assembler{}
	prog, err := as.Parse(strings.NewReader(subtractSource))
	assert.NoError(err)

	assert.Equal([]cpu.Declaration{
		{Label: "num2", Value: cpu.Word(10)},
	}, prog.Data)
	assert.Equal([]cpu.Declaration{
		{Label: "result", Value: cpu.Word(0)},
	}, prog.Bss)

	assert.Equal([]cpu.Instruction{
		cpu.MakeInstruction(cpu.OP_MOV, cpu.Reg(cpu.REG_AX), cpu.Imm(cpu.Word(300))),
		cpu.MakeInstruction(cpu.OP_MOV, cpu.Reg(cpu.REG_BX), cpu.Mem("num2")),
		cpu.MakeInstruction(cpu.OP_MOV, cpu.Reg(cpu.REG_CX), cpu.Reg(cpu.REG_AX)),
		cpu.MakeInstruction(cpu.OP_SUB, cpu.Reg(cpu.REG_CX), cpu.Reg(cpu.REG_BX)),
		cpu.MakeInstruction(cpu.OP_MOV, cpu.Mem("result"), cpu.Reg(cpu.REG_CX)),
	}, prog.Text)

	assert.Equal([]int{7, 8, 9, 10, 11}, prog.Lines)
}

func TestParseAndRun(t *testing.T) {
	assert := assert.New(t)

	as := &Assembler{}
	prog, err := as.Parse(strings.NewReader(subtractSource))
	assert.NoError(err)

	machine, err := cpu.NewCpu(prog)
	assert.NoError(err)
	assert.NoError(machine.Run())

	value, err := machine.Memory.Read("result")
	assert.NoError(err)
	assert.Equal(cpu.Word(290), value)
}

func TestParseEquates(t *testing.T) {
	assert := assert.New(t)

	source := `.equ count 3
section .text
mov ax, count
mov bx, $(count * 100)
`
	as := &Assembler{}
	prog, err := as.Parse(strings.NewReader(source))
	assert.NoError(err)

	assert.Equal(cpu.Imm(cpu.Byte(3)), prog.Text[0].Operands[1])
	assert.Equal(cpu.Imm(cpu.Word(300)), prog.Text[1].Operands[1])
}

func TestParsePredefine(t *testing.T) {
	assert := assert.New(t)

	as := &Assembler{}
	as.Predefine("limit", "0x10")

	prog, err := as.Parse(strings.NewReader("section .text\nmov ax, limit\n"))
	assert.NoError(err)
	assert.Equal(cpu.Imm(cpu.Byte(0x10)), prog.Text[0].Operands[1])
}

func TestParseLabelAddress(t *testing.T) {
	assert := assert.New(t)

	source := `section .data
num dw 1
buf dw 2
section .text
mov ecx, buf
`
	as := &Assembler{}
	prog, err := as.Parse(strings.NewReader(source))
	assert.NoError(err)

	// A bare label stands for its own address.
	assert.Equal(cpu.Imm(cpu.Word(1)), prog.Text[0].Operands[1])
}

func TestParseLabelAddressSectionOrder(t *testing.T) {
	assert := assert.New(t)

	// The bss section comes first in the source, but addresses follow
	// the loader's data-then-bss layout.
	source := `section .bss
buf resw
section .data
msg dw 300
section .text
mov ax, buf
mov bx, msg
`
	as := &Assembler{}
	prog, err := as.Parse(strings.NewReader(source))
	assert.NoError(err)

	assert.Equal(cpu.Imm(cpu.Word(1)), prog.Text[0].Operands[1])
	assert.Equal(cpu.Imm(cpu.Word(0)), prog.Text[1].Operands[1])

	machine, err := cpu.NewCpu(prog)
	assert.NoError(err)

	addr, err := machine.Memory.AddressOf("buf")
	assert.NoError(err)
	assert.Equal(uint16(1), addr)

	label, err := machine.Memory.LabelAt(0)
	assert.NoError(err)
	assert.Equal("msg", label)
}

func TestParseWidthPrefix(t *testing.T) {
	assert := assert.New(t)

	source := `section .text
mov ax, byte 23
mov ax, word 23
mov eax, dword 1
`
	as := &Assembler{}
	prog, err := as.Parse(strings.NewReader(source))
	assert.NoError(err)

	assert.Equal(cpu.Imm(cpu.Byte(23)), prog.Text[0].Operands[1])
	assert.Equal(cpu.Imm(cpu.Word(23)), prog.Text[1].Operands[1])
	assert.Equal(cpu.Imm(cpu.Dword(1)), prog.Text[2].Operands[1])
}

func TestParseImmediateWidths(t *testing.T) {
	assert := assert.New(t)

	source := `section .text
mov ax, 255
mov ax, 300
mov eax, 0x10000
`
	as := &Assembler{}
	prog, err := as.Parse(strings.NewReader(source))
	assert.NoError(err)

	assert.Equal(cpu.Imm(cpu.Byte(255)), prog.Text[0].Operands[1])
	assert.Equal(cpu.Imm(cpu.Word(300)), prog.Text[1].Operands[1])
	assert.Equal(cpu.Imm(cpu.Dword(0x10000)), prog.Text[2].Operands[1])
}

func TestParseCaseFolding(t *testing.T) {
	assert := assert.New(t)

	source := "SECTION .TEXT\nMOV AX, 300\n"
	as := &Assembler{}
	prog, err := as.Parse(strings.NewReader(source))
	assert.NoError(err)

	assert.Equal(cpu.MakeInstruction(cpu.OP_MOV,
		cpu.Reg(cpu.REG_AX), cpu.Imm(cpu.Word(300))), prog.Text[0])
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		lineno int
		target error
	}){
		{"outside_section", "mov ax, 1\n", 1, ErrOutsideSection},
		{"unknown_section", "section .rodata\n", 1, ErrSectionUnknown(".rodata")},
		{"section_syntax", "section\n", 1, ErrSectionSyntax},
		{"equ_syntax", ".equ broken\n", 1, ErrEquateSyntax},
		{"equ_duplicate", ".equ a 1\n.equ a 2\n", 2, ErrEquateDuplicate},
		{"bad_mnemonic", "section .text\nfrob ax\n", 2, ErrOpcodeInvalid("frob")},
		{"bad_number", "section .text\nmov ax, fnord\n", 2, ErrParseNumber("fnord")},
		{"bad_bracket", "section .text\nmov ax, [x\n", 2, ErrOperandInvalid("[x")},
		{"bad_declaration", "section .data\na dq 1\n", 2, ErrDeclarationSyntax("a dq 1")},
		{"bss_with_value", "section .bss\na resw 1\n", 2, ErrDeclarationSyntax("a resw 1")},
		{"duplicate_label", "section .data\na dw 1\na dw 2\n", 3, cpu.ErrLabelDuplicate("a")},
	}

	for _, entry := range table {
		as := &Assembler{}
		_, err := as.Parse(strings.NewReader(entry.source))

		var serr ErrSyntax
		assert.ErrorAs(err, &serr, entry.name)
		assert.Equal(entry.lineno, serr.LineNo, entry.name)
		assert.ErrorIs(err, entry.target, entry.name)
	}
}

func TestParseBadExpression(t *testing.T) {
	assert := assert.New(t)

	as := &Assembler{}
	_, err := as.Parse(strings.NewReader("section .text\nmov ax, $(nope)\n"))

	var serr ErrSyntax
	assert.ErrorAs(err, &serr)
	assert.Equal(2, serr.LineNo)
}

func TestParseLineno(t *testing.T) {
	assert := assert.New(t)

	as := &Assembler{}
	prog, err := as.Parse(strings.NewReader("section .text\nmov ax, $(lineno)\n"))
	assert.NoError(err)

	assert.Equal(cpu.Imm(cpu.Byte(2)), prog.Text[0].Operands[1])
}
