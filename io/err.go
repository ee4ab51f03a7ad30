package io

import (
	"errors"

	"vx86/translate"
)

var f = translate.From

// ErrEndOfInput is returned when the console input has no more bytes.
var ErrEndOfInput = errors.New(f("console input exhausted"))

// ErrBadDescriptor reports an access to a descriptor the console does
// not route.
type ErrBadDescriptor uint32

func (e ErrBadDescriptor) Error() string {
	return f("descriptor %d not open", uint32(e))
}

func (e ErrBadDescriptor) Is(err error) (ok bool) {
	_, ok = err.(ErrBadDescriptor)
	return
}
