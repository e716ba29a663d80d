// Package format enumerates the encodings understood by go-tern.
//
// # Related Packages
//
//   - github.com/tern-format/go-tern/parse - Parse text to IR
//   - github.com/tern-format/go-tern/encode - Encode IR to text
//   - github.com/tern-format/go-tern/wire - Binary codec
package format
