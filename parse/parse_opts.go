package parse

import (
	"github.com/tern-format/go-tern/format"
)

type parseOpts struct {
	format      format.Format
	synthLength bool
	refs        bool
}

type ParseOption func(*parseOpts)

func ParseTern() ParseOption {
	return ParseFormat(format.TernFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// SynthLength records a Length key on parsed arrays, matching older
// encodings that carried an explicit count.
func SynthLength() ParseOption {
	return func(o *parseOpts) { o.synthLength = true }
}

// Refs enables &name reference literals in tern input.
func Refs(v bool) ParseOption {
	return func(o *parseOpts) { o.refs = v }
}
