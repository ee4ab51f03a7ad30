package cpu

import (
	"errors"
	"log"

	"vx86/io"
)

// State names the decode loop's current phase.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_IDLE     = State(0) // idle
	STATE_FETCHING = State(1) // fetching
	STATE_DECODING = State(2) // decoding
	STATE_HALTED   = State(3) // halted
)

// Syscall numbers understood by the dispatcher.
const (
	SYS_READ  = uint32(1)  // read bytes from the console input
	SYS_WRITE = uint32(2)  // write bytes to the console output
	SYS_EXIT  = uint32(60) // terminate with a status code
)

// Syscall calling convention registers.
const (
	SYSCALL_NUMBER = REG_EAX // syscall number
	SYSCALL_FD     = REG_EBX // file descriptor, also the exit status
	SYSCALL_BUFFER = REG_ECX // memory address of the buffer label
	SYSCALL_COUNT  = REG_EDX // byte count
)

// Cpu owns every piece of mutable machine state: registers, memory,
// flags and the ALU. All mutation happens inside a single Step, and an
// isolated Cpu per test is the concurrency model; there is exactly one
// logical thread of control.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers RegisterFile
	Memory    *MemoryUnit
	Flags     Flags
	Alu       Alu

	Console io.Device   // Injected syscall boundary.
	Trace   func(Event) // Optional structured event sink.

	State  State
	Status uint32 // Status code from the last exit syscall.
	Ticks  int    // Instructions executed since the last load.

	text []Instruction
}

// NewCpu creates a CPU with the program's sections loaded.
func NewCpu(prog *Program) (cpu *Cpu, err error) {
	cpu = &Cpu{}
	err = cpu.Load(prog)
	return
}

// Load resets the machine and loads a program: data and bss declarations
// into a fresh memory unit, the text section as the read-only
// instruction list.
func (cpu *Cpu) Load(prog *Program) (err error) {
	cpu.Registers.Reset()
	cpu.Flags.Reset()
	cpu.Alu = Alu{}
	cpu.Memory = NewMemoryUnit()
	cpu.State = STATE_IDLE
	cpu.Status = 0
	cpu.Ticks = 0
	cpu.text = nil

	if prog == nil {
		return
	}

	for _, decl := range prog.Data {
		err = cpu.Memory.Declare(decl.Label, decl.Value)
		if err != nil {
			return
		}
	}
	for _, decl := range prog.Bss {
		err = cpu.Memory.DeclareBss(decl.Label, decl.Value.Width)
		if err != nil {
			return
		}
	}
	cpu.text = prog.Text

	if cpu.Verbose {
		log.Printf("cpu: loaded %d instructions, %d labels", len(cpu.text), cpu.Memory.Len())
	}

	return
}

// Text returns the length of the loaded text section.
func (cpu *Cpu) Text() int {
	return len(cpu.text)
}

// Fetch returns the instruction under the program counter, advancing the
// counter exactly once, before decode.
func (cpu *Cpu) Fetch() (in Instruction, ok bool) {
	pc := cpu.Registers.Get(REG_IP)
	if int(pc) >= len(cpu.text) {
		return
	}
	in = cpu.text[pc]
	cpu.Registers.Set(REG_IP, Word(uint16(pc)+1))
	ok = true
	return
}

// Step fetches and executes a single instruction. done reports that the
// run is complete, either because the text section is exhausted or
// because an exit syscall halted the machine.
func (cpu *Cpu) Step() (done bool, err error) {
	cpu.State = STATE_FETCHING
	in, ok := cpu.Fetch()
	if !ok {
		cpu.State = STATE_HALTED
		done = true
		return
	}
	index := int(cpu.Registers.Get(REG_IP)) - 1

	cpu.State = STATE_DECODING
	done, err = cpu.Execute(in)
	cpu.Ticks++

	if err != nil {
		err = ErrInstruction{Index: index, Instruction: in, Err: err}
		if !errors.Is(err, ErrSyscallNumber(0)) {
			// Fatal; recoverable syscall errors leave the machine
			// resumable.
			cpu.State = STATE_HALTED
		}
		return
	}

	if done {
		cpu.State = STATE_HALTED
	}
	return
}

// Run drives the fetch-decode-execute loop to completion. Fatal errors
// abort the run with a cause naming the instruction and operand; an
// unknown syscall number is returned to the caller, who may call Run
// again to continue past it.
func (cpu *Cpu) Run() (err error) {
	for {
		var done bool
		done, err = cpu.Step()
		if done || err != nil {
			return
		}
	}
}

// Execute decodes and applies a single instruction against the register
// file, memory, ALU and flags.
func (cpu *Cpu) Execute(in Instruction) (done bool, err error) {
	if cpu.Verbose {
		log.Printf("cpu: %03x: %v", cpu.Registers.Get(REG_IP)-1, in)
	}

	if len(in.Operands) != in.Opcode.Arity() {
		err = ErrArity{Opcode: in.Opcode, Want: in.Opcode.Arity(), Got: len(in.Operands)}
		return
	}

	switch in.Opcode {
	case OP_MOV:
		err = cpu.mov(in)
	case OP_ADD:
		err = cpu.arith(in, ALU_ADD)
	case OP_SUB:
		err = cpu.arith(in, ALU_SUB)
	case OP_SYSCALL:
		done, err = cpu.syscall(in)
	default:
		err = ErrUnimplemented(in.Opcode)
	}
	return
}

// emit hands an event to the trace sink, if any.
func (cpu *Cpu) emit(ev Event) {
	if cpu.Trace != nil {
		cpu.Trace(ev)
	}
	if cpu.Verbose {
		log.Printf("cpu: %v", ev)
	}
}

// checkMode rejects the operand-kind combinations no two-operand opcode
// accepts: an immediate destination, and memory-to-memory. It runs
// before any operand resolution so an illegal instruction cannot leave a
// partial write behind.
func checkMode(dest, src Operand) (err error) {
	if dest.Kind == KIND_IMMEDIATE || (dest.Kind == KIND_MEMORY && src.Kind == KIND_MEMORY) {
		err = ErrAddressingMode{Dest: dest, Src: src}
	}
	return
}

// resolve returns an operand's current value, tagged at the width of the
// storage it came from.
func (cpu *Cpu) resolve(op Operand) (value Data, err error) {
	switch op.Kind {
	case KIND_REGISTER:
		value = cpu.Registers.Data(op.Register)
	case KIND_MEMORY:
		value, err = cpu.Memory.Read(op.Label)
	case KIND_IMMEDIATE:
		value = op.Immediate
	default:
		panic("unknown operand kind")
	}
	return
}

// nativeWidth returns the width a destination operand stores at.
func (cpu *Cpu) nativeWidth(dest Operand) (width Width, err error) {
	switch dest.Kind {
	case KIND_REGISTER:
		width = dest.Register.Width()
	case KIND_MEMORY:
		width, err = cpu.Memory.WidthOf(dest.Label)
	default:
		panic("no native width for operand kind")
	}
	return
}

// store writes a value into a register or memory destination at the
// destination's native width, emitting the write event and any
// width-mismatch diagnostics.
func (cpu *Cpu) store(in Instruction, dest Operand, value Data) (err error) {
	switch dest.Kind {
	case KIND_REGISTER:
		stored, truncated := cpu.Registers.Set(dest.Register, value)
		if truncated {
			cpu.emit(DiagEvent{Kind: DIAG_TRUNCATED, Instruction: in,
				Detail: f("%v into %v keeps only the low %v", value, dest.Register, stored.Width)})
		}
		cpu.emit(RegisterEvent{Register: dest.Register, Value: cpu.Registers.Get(dest.Register)})
	case KIND_MEMORY:
		stored, truncated, widened, werr := cpu.Memory.Write(dest.Label, value)
		if werr != nil {
			err = werr
			return
		}
		if truncated {
			cpu.emit(DiagEvent{Kind: DIAG_TRUNCATED, Instruction: in,
				Detail: f("%v into %v keeps only the low %v", value, dest.Label, stored.Width)})
		}
		if widened {
			cpu.emit(DiagEvent{Kind: DIAG_WIDENED, Instruction: in,
				Detail: f("%v into %v wastes %d bytes", value, dest.Label, int(stored.Width-value.Width))})
		}
		cpu.emit(MemoryEvent{Label: dest.Label, Value: stored})
	default:
		panic("store to non-storage operand")
	}
	return
}

// mov copies the resolved source into the destination at the
// destination's native width. Moving a register onto itself is a
// diagnostic no-op.
func (cpu *Cpu) mov(in Instruction) (err error) {
	dest, src := in.Operands[0], in.Operands[1]
	err = checkMode(dest, src)
	if err != nil {
		return
	}

	if dest.Kind == KIND_REGISTER && src.Kind == KIND_REGISTER && dest.Register == src.Register {
		cpu.emit(DiagEvent{Kind: DIAG_SELF_MOVE, Instruction: in,
			Detail: f("%v to itself has no effect", dest.Register)})
		return
	}

	value, err := cpu.resolve(src)
	if err != nil {
		return
	}
	err = cpu.store(in, dest, value)
	return
}

// arith runs the ALU over both resolved operands, writes the result back
// at the destination's native width, and latches the overflow flag from
// the ALU output.
func (cpu *Cpu) arith(in Instruction, mode AluMode) (err error) {
	dest, src := in.Operands[0], in.Operands[1]
	err = checkMode(dest, src)
	if err != nil {
		return
	}

	destValue, err := cpu.resolve(dest)
	if err != nil {
		return
	}
	srcValue, err := cpu.resolve(src)
	if err != nil {
		return
	}
	width, err := cpu.nativeWidth(dest)
	if err != nil {
		return
	}

	cpu.Alu.Mode = mode
	cpu.Alu.OperandFetch(destValue.Value(), srcValue.Value())
	result, overflow, err := cpu.Alu.Execute()
	cpu.Alu.Mode = ALU_OFF
	if err != nil {
		return
	}

	err = cpu.store(in, dest, MakeData(width, result))
	if err != nil {
		return
	}

	cpu.Flags.Set(FLAG_OVERFLOW, overflow)
	cpu.emit(FlagEvent{Flag: FLAG_OVERFLOW, Value: overflow})
	return
}

// syscall dispatches on the accumulator's syscall number. read and write
// move bytes between the console device and the memory cell whose
// address is in the buffer register; exit halts the machine immediately,
// independent of the program counter.
func (cpu *Cpu) syscall(in Instruction) (done bool, err error) {
	number := cpu.Registers.Get(SYSCALL_NUMBER)

	switch number {
	case SYS_EXIT:
		cpu.Status = cpu.Registers.Get(SYSCALL_FD)
		done = true
		if cpu.Verbose {
			log.Printf("cpu: exit status %d", cpu.Status)
		}
		return
	case SYS_READ, SYS_WRITE:
		// handled below
	default:
		err = ErrSyscallNumber(number)
		return
	}

	if cpu.Console == nil {
		err = ErrNoConsole
		return
	}

	fd := cpu.Registers.Get(SYSCALL_FD)
	count := int(cpu.Registers.Get(SYSCALL_COUNT))
	if count > int(WIDTH_DWORD) {
		cpu.emit(DiagEvent{Kind: DIAG_TRUNCATED, Instruction: in,
			Detail: f("transfer of %d bytes clamped to %d", count, int(WIDTH_DWORD))})
		count = int(WIDTH_DWORD)
	}
	label, err := cpu.Memory.LabelAt(cpu.Registers.Get(SYSCALL_BUFFER))
	if err != nil {
		return
	}

	switch number {
	case SYS_READ:
		buf := make([]byte, count)
		var n int
		n, err = cpu.Console.Read(fd, buf)
		if err != nil {
			return
		}
		if n == 0 {
			err = io.ErrEndOfInput
			return
		}
		var value Data
		value, err = DataFromBytes(buf[:n])
		if err != nil {
			return
		}
		err = cpu.store(in, Mem(label), value)
	case SYS_WRITE:
		var value Data
		value, err = cpu.Memory.Read(label)
		if err != nil {
			return
		}
		raw := value.Bytes()
		if count < len(raw) {
			raw = raw[:count]
		}
		_, err = cpu.Console.Write(fd, raw)
	}
	return
}
