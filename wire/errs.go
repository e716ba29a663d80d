package wire

import (
	"errors"
)

var (
	// ErrUnitTooSmall reports a length prefix too narrow for the
	// actual count; the caller must pick a wider unit.
	ErrUnitTooSmall = errors.New("length unit too small")

	// ErrNotImplemented reports a type name with no registered
	// factory. This is a wiring error, not a data error.
	ErrNotImplemented = errors.New("not implemented")

	// ErrShortBuffer reports a read past the end of the input.
	ErrShortBuffer = errors.New("short buffer")

	// ErrBadValue reports a malformed Value projection on the wire.
	ErrBadValue = errors.New("bad wire value")
)
