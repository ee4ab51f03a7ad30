// Package cpu implements the core of the vx86 processor simulator.
//
// The machine consists of four general-purpose register families with
// overlapping 16-bit and 32-bit views (AX/EAX through DX/EDX), the SP, BP
// and IP special registers, a condition flag register, an arithmetic unit,
// and a symbol-addressed memory built from a program's data and bss
// sections. The decode loop fetches instructions from the read-only text
// section by instruction pointer and executes them until the section is
// exhausted or an exit syscall halts the machine.
//
// Programs reach the outside world only through the injectable console
// device, and every mutating step is observable as a structured Event.
package cpu
