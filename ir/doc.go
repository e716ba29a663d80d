// Package ir provides the value tree at the center of go-tern.
//
// # Overview
//
// Every tern document, JSON document, and wire blob is a projection
// of the same recursive structure: a Node is either a literal
// holding optional text, or an object holding an insertion-ordered
// mapping from string keys to child nodes. The union is closed;
// there is no third variant.
//
// Numbers and booleans are not distinct node kinds. A literal keeps
// its raw text and is reinterpreted lazily through the Int, Float
// and Bool accessors, which report no value when the text does not
// parse.
//
// Arrays are objects whose keys are the stringified indices 0..n-1;
// AsArray derives the ordered view.
//
// # Related Packages
//
//   - github.com/tern-format/go-tern/parse - Parse text to IR
//   - github.com/tern-format/go-tern/encode - Encode IR to text
//   - github.com/tern-format/go-tern/wire - Binary codec
package ir
