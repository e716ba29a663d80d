package parse

import (
	"errors"

	"github.com/tern-format/go-tern/token"
)

var (
	// ErrSyntax is raised by the JSON parser on malformed
	// structure. The tern parser is lenient and never raises it.
	ErrSyntax = errors.New("syntax error")

	// ErrParse covers structural failures both parsers share, such
	// as trailing input after the document root.
	ErrParse = errors.New("parse error")

	// ErrEndless reports a loop that exceeded its iteration cap.
	ErrEndless = token.ErrEndless
)

// maxIters bounds every object and array loop, converting an
// unterminated construct bug into a deterministic failure.
const maxIters = token.MaxIters
