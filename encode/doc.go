// Package encode renders IR nodes to tern or JSON text.
//
// # Usage
//
//	var buf bytes.Buffer
//	err := encode.Encode(node, &buf)                       // pretty tern
//	err = encode.Encode(node, &buf, encode.EncodeJSON())   // pretty JSON
//	err = encode.Encode(node, &buf, encode.Minimal(true))  // one line
//
// # Related Packages
//
//   - github.com/tern-format/go-tern/ir - IR representation
//   - github.com/tern-format/go-tern/parse - Parse text to IR
package encode
