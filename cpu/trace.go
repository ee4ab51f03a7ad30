package cpu

import (
	"fmt"
)

// DiagKind classifies a diagnostic-only condition: the operation still
// completed, but something about it deserves a warning.
type DiagKind int

//go:generate go tool stringer -linecomment -type=DiagKind
const (
	DIAG_TRUNCATED = DiagKind(0) // truncated
	DIAG_WIDENED   = DiagKind(1) // widened
	DIAG_SELF_MOVE = DiagKind(2) // self-move
)

// Event is a structured observation of a single mutating step.
type Event interface {
	fmt.Stringer
	event()
}

// RegisterEvent records a register write.
type RegisterEvent struct {
	Register RegisterID
	Value    uint32
}

func (ev RegisterEvent) event() {}

func (ev RegisterEvent) String() string {
	return f("register %v set to %#x", ev.Register, ev.Value)
}

// MemoryEvent records a memory cell write.
type MemoryEvent struct {
	Label string
	Value Data
}

func (ev MemoryEvent) event() {}

func (ev MemoryEvent) String() string {
	return f("memory %v set to %v", ev.Label, ev.Value)
}

// FlagEvent records a condition flag update.
type FlagEvent struct {
	Flag  FlagBit
	Value bool
}

func (ev FlagEvent) event() {}

func (ev FlagEvent) String() string {
	return f("flag %v set to %v", ev.Flag, ev.Value)
}

// DiagEvent surfaces a warning about an instruction that completed.
type DiagEvent struct {
	Kind        DiagKind
	Instruction Instruction
	Detail      string
}

func (ev DiagEvent) event() {}

func (ev DiagEvent) String() string {
	return f("diagnostic %v at '%v': %v", ev.Kind, ev.Instruction, ev.Detail)
}

// Recorder is an event sink that keeps everything it sees, for tests and
// trace output.
type Recorder struct {
	Events []Event
}

// Record appends an event; install it as the CPU's Trace func.
func (rec *Recorder) Record(ev Event) {
	rec.Events = append(rec.Events, ev)
}

// Diags returns only the diagnostic events.
func (rec *Recorder) Diags() (diags []DiagEvent) {
	for _, ev := range rec.Events {
		if diag, ok := ev.(DiagEvent); ok {
			diags = append(diags, diag)
		}
	}
	return
}
