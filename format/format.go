package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	TernFormat Format = iota
	JSONFormat
	WireFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"t":    TernFormat,
		"tern": TernFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"w":    WireFormat,
		"wire": WireFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case TernFormat:
		return []byte("tern"), nil
	case JSONFormat:
		return []byte("json"), nil
	case WireFormat:
		return []byte("wire"), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrBadFormat, int(f))
}

func (f *Format) UnmarshalText(d []byte) error {
	ff, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = ff
	return nil
}

// IsText reports whether f has a textual representation that the
// parse and encode packages handle.
func (f Format) IsText() bool {
	return f == TernFormat || f == JSONFormat
}

// Suffix returns the file extension conventionally used for f.
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case WireFormat:
		return ".wire"
	default:
		return ".tern"
	}
}
