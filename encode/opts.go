package encode

import "github.com/tern-format/go-tern/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeTern() EncodeOption {
	return EncodeFormat(format.TernFormat)
}

func EncodeJSON() EncodeOption {
	return EncodeFormat(format.JSONFormat)
}

// Minimal suppresses newlines, indentation and the space after ':'.
func Minimal(v bool) EncodeOption {
	return func(es *EncState) { es.minimal = v }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// Depth sets the starting indent depth; a nonzero depth also
// disables the bare top-level object form.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
