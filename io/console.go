package io

import (
	"io"
)

// Console is a Device over a byte stream pair. Descriptor 0 routes to
// Input; descriptors 1 and 2 route to Output. Either side may be left
// nil, in which case access to it fails with ErrBadDescriptor.
type Console struct {
	Input  io.Reader
	Output io.Writer
}

// Read fills p from the console input. An exhausted input reads as
// ErrEndOfInput; a partial read delivers its bytes and the end surfaces
// on the next call.
func (con *Console) Read(fd uint32, p []byte) (n int, err error) {
	if fd != FD_STDIN || con.Input == nil {
		err = ErrBadDescriptor(fd)
		return
	}
	n, err = con.Input.Read(p)
	if n > 0 {
		err = nil
	} else if err == io.EOF {
		err = ErrEndOfInput
	}
	return
}

// Write sends p to the console output.
func (con *Console) Write(fd uint32, p []byte) (n int, err error) {
	if (fd != FD_STDOUT && fd != FD_STDERR) || con.Output == nil {
		err = ErrBadDescriptor(fd)
		return
	}
	n, err = con.Output.Write(p)
	return
}
