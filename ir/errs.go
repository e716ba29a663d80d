package ir

import (
	"errors"
)

var (
	// ErrNotObject is returned by Set when the receiver is a literal.
	ErrNotObject = errors.New("not an object")

	// ErrCombine is returned by Combine when the requested variant
	// combination is disabled by the options in effect.
	ErrCombine = errors.New("combine not allowed")
)
