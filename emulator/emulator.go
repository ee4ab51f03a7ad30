// Package emulator ties the CPU core, a program listing and the console
// streams into a runnable machine, and maps runtime errors back to
// source line numbers.
package emulator

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"vx86/cpu"
	"vx86/internal"
	"vx86/io"
)

// Emulator state. CPU + program listing + console.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing.

	Console io.Console // Console IO streams.
}

// NewEmulator creates a new emulator with an empty program loaded.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Program: &cpu.Program{},
	}
	emu.Cpu, _ = cpu.NewCpu(nil) // an empty program cannot fail to load
	emu.Cpu.Console = &emu.Console
	return
}

// Reset reloads the current program into a fresh machine.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	err = emu.Cpu.Load(emu.Program)
	return
}

// Step performs a single instruction step.
func (emu *Emulator) Step() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose
	done, err = emu.Cpu.Step()
	err = emu.locate(err)
	return
}

// Run drives the machine to completion. An unknown syscall is returned
// located but leaves the machine resumable; call Run again to continue
// past it.
func (emu *Emulator) Run() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	err = emu.locate(emu.Cpu.Run())
	return
}

// locate attaches the source line number to an instruction error.
func (emu *Emulator) locate(err error) error {
	var in cpu.ErrInstruction
	if errors.As(err, &in) {
		return &ErrRuntime{LineNo: emu.Program.LineNo(in.Index), Err: err}
	}
	return err
}

// registerDump iterates the register views and their current values.
func (emu *Emulator) registerDump() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for id, value := range emu.Cpu.Registers.All() {
			if !yield(id.String(), fmt.Sprintf("0x%08x", value)) {
				return
			}
		}
	}
}

// flagDump iterates the flag summary.
func (emu *Emulator) flagDump() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		yield("flags", emu.Cpu.Flags.String())
	}
}

// memoryDump iterates every declared memory cell and its value.
func (emu *Emulator) memoryDump() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for label, value := range emu.Cpu.Memory.Labels() {
			if !yield(label, value.String()) {
				return
			}
		}
	}
}

// String renders the machine state: registers, flags and every memory
// cell, one per line.
func (emu *Emulator) String() string {
	var sb strings.Builder
	dump := internal.IterSeq2Concat(
		emu.registerDump(),
		emu.flagDump(),
		emu.memoryDump(),
	)
	for name, value := range dump {
		fmt.Fprintf(&sb, "%8s: %s\n", name, value)
	}
	return sb.String()
}
