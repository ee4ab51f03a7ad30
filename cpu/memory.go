package cpu

import (
	"iter"
)

// cell is a single symbol-addressed storage cell. A cell that still
// holds all zeroes and has never been written counts as uninitialized.
type cell struct {
	data    Data
	written bool
}

// MemoryUnit is the symbol-addressed data store. Every declared label
// owns one typed cell, and the declaration order gives each label a
// stable small-integer address so a register can carry a memory
// reference across the syscall boundary.
type MemoryUnit struct {
	cells map[string]*cell
	order []string
}

// NewMemoryUnit creates an empty memory unit.
func NewMemoryUnit() *MemoryUnit {
	return &MemoryUnit{cells: map[string]*cell{}}
}

// Declare adds a pre-initialized data-section cell. A nonzero initial
// value marks the cell as initialized.
func (mu *MemoryUnit) Declare(label string, value Data) (err error) {
	return mu.declare(label, value, !value.IsZero())
}

// DeclareBss adds an uninitialized-section cell of the given width,
// starting at zero.
func (mu *MemoryUnit) DeclareBss(label string, width Width) (err error) {
	return mu.declare(label, MakeData(width, 0), false)
}

func (mu *MemoryUnit) declare(label string, value Data, written bool) (err error) {
	if _, ok := mu.cells[label]; ok {
		err = ErrLabelDuplicate(label)
		return
	}
	mu.cells[label] = &cell{data: value, written: written}
	mu.order = append(mu.order, label)
	return
}

// Len returns the number of declared labels.
func (mu *MemoryUnit) Len() int {
	return len(mu.order)
}

// AddressOf returns the stable address of a declared label.
func (mu *MemoryUnit) AddressOf(label string) (addr uint16, err error) {
	for n, l := range mu.order {
		if l == label {
			addr = uint16(n)
			return
		}
	}
	err = ErrUndeclaredLabel(label)
	return
}

// LabelAt returns the label declared at an address.
func (mu *MemoryUnit) LabelAt(addr uint32) (label string, err error) {
	if int(addr) >= len(mu.order) {
		err = ErrBadAddress(addr)
		return
	}
	label = mu.order[addr]
	return
}

// WidthOf returns the declared width of a label's cell.
func (mu *MemoryUnit) WidthOf(label string) (width Width, err error) {
	c, ok := mu.cells[label]
	if !ok {
		err = ErrUndeclaredLabel(label)
		return
	}
	width = c.data.Width
	return
}

// Read returns the current value of a label's cell. Reading a cell that
// still holds the all-zero sentinel and has never been written fails
// with ErrUninitialized; this is stricter than real hardware on purpose,
// to catch use-before-init in programs.
func (mu *MemoryUnit) Read(label string) (value Data, err error) {
	c, ok := mu.cells[label]
	if !ok {
		err = ErrUndeclaredLabel(label)
		return
	}
	if !c.written && c.data.IsZero() {
		err = ErrUninitialized(label)
		return
	}
	value = c.data
	return
}

// Write stores a value into a label's cell at the cell's declared width.
// Truncated and widened report width mismatches against the declared
// width; stored is the value actually kept. The first write is always
// legal, including to bss cells that started at zero.
func (mu *MemoryUnit) Write(label string, value Data) (stored Data, truncated, widened bool, err error) {
	c, ok := mu.cells[label]
	if !ok {
		err = ErrUndeclaredLabel(label)
		return
	}
	stored, truncated, widened = value.Fit(c.data.Width)
	c.data = stored
	c.written = true
	return
}

// Labels iterates the declared labels in address order with their
// current values.
func (mu *MemoryUnit) Labels() iter.Seq2[string, Data] {
	return func(yield func(string, Data) bool) {
		for _, label := range mu.order {
			if !yield(label, mu.cells[label].data) {
				return
			}
		}
	}
}
