// Package tern ties the toolkit together: convenience wrappers over
// parse and encode, and file loading with the soft-failure contract.
package tern

import (
	"os"

	"github.com/tern-format/go-tern/encode"
	"github.com/tern-format/go-tern/ir"
	"github.com/tern-format/go-tern/parse"
)

// ParseText parses a tern document.
func ParseText(d string) (*ir.Node, error) {
	return parse.ParseString(d)
}

// ParseJSON parses a strict JSON document.
func ParseJSON(d string) (*ir.Node, error) {
	return parse.ParseString(d, parse.ParseJSON())
}

// Text renders node as a tern document, compact when minimal.
func Text(node *ir.Node, minimal bool) string {
	return encode.MustString(node, encode.EncodeTern(), encode.Minimal(minimal))
}

// JSON renders node as a JSON document, compact when minimal.
func JSON(node *ir.Node, minimal bool) string {
	return encode.MustString(node, encode.EncodeJSON(), encode.Minimal(minimal))
}

// LoadFile parses the file at path. A missing or unreadable file is
// a soft failure: the result is an empty object and false, never an
// error, so callers decide whether absence matters.
func LoadFile(path string, opts ...parse.ParseOption) (*ir.Node, bool) {
	d, err := os.ReadFile(path)
	if err != nil {
		return ir.Object(), false
	}
	y, err := parse.Parse(d, opts...)
	if err != nil {
		return ir.Object(), false
	}
	return y, true
}
