// Package io provides the console boundary between the CPU core and the
// outside world. The device is injectable, so tests can run programs
// against in-memory streams instead of the process console.
package io

// Standard descriptor numbers understood by the console.
const (
	FD_STDIN  = uint32(0) // console input
	FD_STDOUT = uint32(1) // console output
	FD_STDERR = uint32(2) // console error output
)

// Device is the syscall I/O capability: descriptor-routed byte reads
// and writes. It is the only point where the core touches the outside
// world.
type Device interface {
	// Read fills p with bytes from the descriptor's stream.
	Read(fd uint32, p []byte) (n int, err error)
	// Write sends p to the descriptor's stream.
	Write(fd uint32, p []byte) (n int, err error)
}
