package emulator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"vx86/asm"
	"vx86/cpu"
)

const subtractSource = `section .data
num2    dw 10
section .bss
result  resw
section .text
        mov ax, 300
        mov bx, [num2]
        mov cx, ax
        sub cx, bx
        mov [result], cx
`

func TestEmulatorRun(t *testing.T) {
	assert := assert.New(t)

	as := &asm.Assembler{}
	prog, err := as.Parse(strings.NewReader(subtractSource))
	assert.NoError(err)

	emu := NewEmulator()
	emu.Program = prog

	assert.NoError(emu.Reset())
	assert.NoError(emu.Run())

	assert.Equal(uint32(290), emu.Cpu.Registers.Get(cpu.REG_CX))

	value, err := emu.Cpu.Memory.Read("result")
	assert.NoError(err)
	assert.Equal(cpu.Word(290), value)
}

func TestEmulatorString(t *testing.T) {
	assert := assert.New(t)

	as := &asm.Assembler{}
	prog, err := as.Parse(strings.NewReader(subtractSource))
	assert.NoError(err)

	emu := NewEmulator()
	emu.Program = prog
	assert.NoError(emu.Reset())
	assert.NoError(emu.Run())

	dump := emu.String()
	assert.Contains(dump, "cx: 0x00000122")
	assert.Contains(dump, "flags: -")
	assert.Contains(dump, "result: word(0x122)")
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	source := `section .text
mov ax, 1
push ax
`
	as := &asm.Assembler{}
	prog, err := as.Parse(strings.NewReader(source))
	assert.NoError(err)

	emu := NewEmulator()
	emu.Program = prog
	assert.NoError(emu.Reset())

	err = emu.Run()
	var rte *ErrRuntime
	assert.ErrorAs(err, &rte)
	assert.Equal(3, rte.LineNo)
	assert.ErrorIs(err, cpu.ErrUnimplemented(0))
}

func TestEmulatorConsole(t *testing.T) {
	assert := assert.New(t)

	source := `.equ sys_write 2
.equ sys_exit 60
.equ stdout 1
section .data
msg dw 0x6948          ; "Hi"
section .text
mov eax, sys_write
mov ebx, stdout
mov ecx, msg
mov edx, 2
syscall
mov eax, sys_exit
mov ebx, 9
syscall
`
	as := &asm.Assembler{}
	prog, err := as.Parse(strings.NewReader(source))
	assert.NoError(err)

	emu := NewEmulator()
	emu.Program = prog

	output := &bytes.Buffer{}
	emu.Console.Output = output

	assert.NoError(emu.Reset())
	assert.NoError(emu.Run())

	assert.Equal("Hi", output.String())
	assert.Equal(uint32(9), emu.Cpu.Status)
}

func TestEmulatorBssFirstBuffer(t *testing.T) {
	assert := assert.New(t)

	// A buffer label declared in a bss section ahead of the data section
	// still addresses its own cell across the syscall boundary.
	source := `section .bss
inbuf   resw
section .data
msg     dw 0x6948
section .text
mov eax, 1
mov ebx, 0
mov ecx, inbuf
mov edx, 2
syscall
`
	as := &asm.Assembler{}
	prog, err := as.Parse(strings.NewReader(source))
	assert.NoError(err)

	emu := NewEmulator()
	emu.Program = prog
	emu.Console.Input = bytes.NewReader([]byte{0x2c, 0x01})

	assert.NoError(emu.Reset())
	assert.NoError(emu.Run())

	value, err := emu.Cpu.Memory.Read("inbuf")
	assert.NoError(err)
	assert.Equal(cpu.Word(300), value)

	value, err = emu.Cpu.Memory.Read("msg")
	assert.NoError(err)
	assert.Equal(cpu.Word(0x6948), value)
}

func TestEmulatorReload(t *testing.T) {
	assert := assert.New(t)

	as := &asm.Assembler{}
	prog, err := as.Parse(strings.NewReader(subtractSource))
	assert.NoError(err)

	emu := NewEmulator()
	emu.Program = prog
	assert.NoError(emu.Reset())
	assert.NoError(emu.Run())

	// Reset rewinds to a cold machine.
	assert.NoError(emu.Reset())
	assert.Equal(uint32(0), emu.Cpu.Registers.Get(cpu.REG_CX))
	assert.Equal(cpu.STATE_IDLE, emu.Cpu.State)
}
