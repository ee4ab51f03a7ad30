// Package asm provides the program loader: a single-pass assembler from
// a small NASM-flavored text format into a cpu.Program.
//
// A source file is divided by `section .data`, `section .bss` and
// `section .text` directives. Data lines declare initialized cells
// (`num dw 300`), bss lines declare zeroed cells (`result resw`), and
// text lines hold one instruction each (`mov ax, 300`). Immediates may
// carry an explicit width (`mov ax, word 23`); a bare declared label
// used as a source evaluates to the label's memory address, which is how
// a program points the syscall buffer register at a cell. `.equ`
// equates and compile-time `$(...)` expressions are evaluated with
// starlark before parsing.
package asm

import (
	"bufio"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"vx86/cpu"
)

type section int

const (
	sectionNone = section(iota)
	sectionData
	sectionBss
	sectionText
)

// mnemonics maps text mnemonics to opcodes.
var mnemonics = func() map[string]cpu.Opcode {
	m := map[string]cpu.Opcode{}
	for op := cpu.Opcode(0); op < cpu.OPCODE_COUNT; op++ {
		m[op.String()] = op
	}
	return m
}()

// registers maps register names to register views.
var registers = func() map[string]cpu.RegisterID {
	m := map[string]cpu.RegisterID{}
	for id := cpu.RegisterID(0); id < cpu.REGISTER_COUNT; id++ {
		m[id.String()] = id
	}
	return m
}()

// declWidth maps data declaration keywords to cell widths.
var declWidth = map[string]cpu.Width{
	"db": cpu.WIDTH_BYTE,
	"dw": cpu.WIDTH_WORD,
	"dd": cpu.WIDTH_DWORD,
}

// bssWidth maps bss reservation keywords to cell widths.
var bssWidth = map[string]cpu.Width{
	"resb": cpu.WIDTH_BYTE,
	"resw": cpu.WIDTH_WORD,
	"resd": cpu.WIDTH_DWORD,
}

// immWidth maps explicit immediate width keywords.
var immWidth = map[string]cpu.Width{
	"byte":  cpu.WIDTH_BYTE,
	"word":  cpu.WIDTH_WORD,
	"dword": cpu.WIDTH_DWORD,
}

// Assembler is a single-pass assembler for the vx86 instruction list
// format.
type Assembler struct {
	Verbose bool              // If set, verbosely logs the assembler actions.
	Equate  map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.Equate == nil {
		asm.Equate = map[string]string{}
	}
	asm.Equate[equ] = value
}

// valueOf returns the numeric value of a simple word, resolving equates
// first. Negative values wrap into the unsigned range.
func (asm *Assembler) valueOf(word string) (value uint32, err error) {
	if equ, ok := asm.Equate[word]; ok {
		word = equ
	}

	v64, err := strconv.ParseInt(word, 0, 33)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}
	value = uint32(v64)
	return
}

var parenRe = regexp.MustCompile(`\$\(([^)]*)\)`)

// expand does compile-time $(...) evaluations on a line.
func (asm *Assembler) expand(line string, lineno int) (out string, err error) {
	asm.Equate["lineno"] = strconv.Itoa(lineno)

	out = parenRe.ReplaceAllStringFunc(line, func(match string) string {
		if err != nil {
			return match
		}
		var value uint32
		value, err = asm.parenEval(match[2 : len(match)-1])
		if err != nil {
			return match
		}
		return strconv.FormatUint(uint64(value), 10)
	})
	return
}

// parenEval evaluates a $(...) expression, with all integer equates
// predeclared.
func (asm *Assembler) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		value32, verr := asm.valueOf(str)
		if verr != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt(int(value32))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint32(st_int64)
	return
}

// operand parses a single operand: a memory reference in brackets, a
// register name, a width-prefixed or bare immediate, or a declared
// label standing for its own address. A bare label parses as a word
// immediate placeholder; label reports it so Parse can patch in the
// final address once every section has been read.
func (asm *Assembler) operand(text string, symbols map[string]bool) (op cpu.Operand, label string, err error) {
	text = strings.TrimSpace(text)
	words := strings.Fields(text)
	if len(words) == 0 {
		err = ErrOperandInvalid(text)
		return
	}

	joined := strings.Join(words, "")
	if strings.HasPrefix(joined, "[") {
		if !strings.HasSuffix(joined, "]") || len(joined) < 3 {
			err = ErrOperandInvalid(text)
			return
		}
		op = cpu.Mem(joined[1 : len(joined)-1])
		return
	}

	if width, ok := immWidth[words[0]]; ok {
		if len(words) != 2 {
			err = ErrOperandInvalid(text)
			return
		}
		var value uint32
		value, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		op = cpu.Imm(cpu.MakeData(width, value))
		return
	}

	if len(words) != 1 {
		err = ErrOperandInvalid(text)
		return
	}

	if id, ok := registers[words[0]]; ok {
		op = cpu.Reg(id)
		return
	}

	if symbols[words[0]] {
		op = cpu.Imm(cpu.Word(0))
		label = words[0]
		return
	}

	value, err := asm.valueOf(words[0])
	if err != nil {
		return
	}
	switch {
	case value <= 0xff:
		op = cpu.Imm(cpu.Byte(uint8(value)))
	case value <= 0xffff:
		op = cpu.Imm(cpu.Word(uint16(value)))
	default:
		op = cpu.Imm(cpu.Dword(value))
	}
	return
}

// instruction parses a text-section line into an instruction. refs maps
// operand positions holding a bare-label placeholder to the label name.
func (asm *Assembler) instruction(line string, symbols map[string]bool) (in cpu.Instruction, refs map[int]string, err error) {
	words := strings.Fields(line)
	op, ok := mnemonics[words[0]]
	if !ok {
		err = ErrOpcodeInvalid(words[0])
		return
	}

	rest := strings.TrimSpace(line[len(words[0]):])
	var operands []cpu.Operand
	if rest != "" {
		for _, text := range strings.Split(rest, ",") {
			var operand cpu.Operand
			var label string
			operand, label, err = asm.operand(text, symbols)
			if err != nil {
				return
			}
			if label != "" {
				if refs == nil {
					refs = map[int]string{}
				}
				refs[len(operands)] = label
			}
			operands = append(operands, operand)
		}
	}

	in = cpu.MakeInstruction(op, operands...)
	return
}

// declaration parses a data or bss declaration line.
func (asm *Assembler) declaration(words []string, sect section) (decl cpu.Declaration, err error) {
	if sect == sectionBss {
		if len(words) != 2 {
			err = ErrDeclarationSyntax(strings.Join(words, " "))
			return
		}
		width, ok := bssWidth[words[1]]
		if !ok {
			err = ErrDeclarationSyntax(strings.Join(words, " "))
			return
		}
		decl = cpu.Declaration{Label: words[0], Value: cpu.MakeData(width, 0)}
		return
	}

	if len(words) != 3 {
		err = ErrDeclarationSyntax(strings.Join(words, " "))
		return
	}
	width, ok := declWidth[words[1]]
	if !ok {
		err = ErrDeclarationSyntax(strings.Join(words, " "))
		return
	}
	value, err := asm.valueOf(words[2])
	if err != nil {
		return
	}
	decl = cpu.Declaration{Label: words[0], Value: cpu.MakeData(width, value)}
	return
}

// labelRef locates a bare-label operand awaiting its final address.
type labelRef struct {
	text    int
	operand int
	label   string
}

// Parse assembles a source stream into a program.
func (asm *Assembler) Parse(r io.Reader) (prog *cpu.Program, err error) {
	if asm.Equate == nil {
		asm.Equate = map[string]string{}
	}

	prog = &cpu.Program{}
	symbols := map[string]bool{}
	var refs []labelRef
	sect := sectionNone

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if n := strings.IndexByte(line, ';'); n >= 0 {
			line = line[:n]
		}
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" {
			continue
		}

		line, err = asm.expand(line, lineno)
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}

		if asm.Verbose {
			log.Printf("asm: %3d: %v", lineno, line)
		}

		words := strings.Fields(line)
		switch words[0] {
		case ".equ":
			if len(words) != 3 {
				err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrEquateSyntax}
				return
			}
			if _, ok := asm.Equate[words[1]]; ok {
				err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrEquateDuplicate}
				return
			}
			asm.Equate[words[1]] = words[2]
			continue
		case "section":
			if len(words) != 2 {
				err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrSectionSyntax}
				return
			}
			switch words[1] {
			case ".data":
				sect = sectionData
			case ".bss":
				sect = sectionBss
			case ".text":
				sect = sectionText
			default:
				err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrSectionUnknown(words[1])}
				return
			}
			continue
		}

		switch sect {
		case sectionData, sectionBss:
			var decl cpu.Declaration
			decl, err = asm.declaration(words, sect)
			if err == nil && symbols[decl.Label] {
				err = cpu.ErrLabelDuplicate(decl.Label)
			}
			if err != nil {
				err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
			symbols[decl.Label] = true
			if sect == sectionData {
				prog.Data = append(prog.Data, decl)
			} else {
				prog.Bss = append(prog.Bss, decl)
			}
		case sectionText:
			var in cpu.Instruction
			var inRefs map[int]string
			in, inRefs, err = asm.instruction(line, symbols)
			if err != nil {
				err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
			for operand, label := range inRefs {
				refs = append(refs, labelRef{text: len(prog.Text), operand: operand, label: label})
			}
			prog.Text = append(prog.Text, in)
			prog.Lines = append(prog.Lines, lineno)
		default:
			err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrOutsideSection}
			return
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	// Label addresses follow the loader's memory layout: every data cell
	// first, then every bss cell, in declaration order. Source section
	// order does not matter.
	addresses := map[string]uint16{}
	for _, decl := range prog.Data {
		addresses[decl.Label] = uint16(len(addresses))
	}
	for _, decl := range prog.Bss {
		addresses[decl.Label] = uint16(len(addresses))
	}
	for _, ref := range refs {
		prog.Text[ref.text].Operands[ref.operand] = cpu.Imm(cpu.Word(addresses[ref.label]))
	}
	return
}
