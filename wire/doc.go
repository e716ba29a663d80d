// Package wire is the length-prefixed, big-endian binary codec for
// go-tern primitives, strings, arrays, dictionaries, the value
// tree, and user-defined record types.
//
// # Conventions
//
// Fixed-width scalars are big-endian regardless of host. Strings
// carry a signed length prefix counting UTF-16 code units, then an
// encoding-flag byte selecting one or two bytes per unit, chosen
// per string; length -1 is the null string. Dictionaries mirror the
// -1 convention for absence. The Serializer and a matching
// Deserializer are symmetric by construction: reads consume exactly
// what writes produce, in order.
//
// User-defined records implement Marshaler and Unmarshaler;
// Tagged values go through a Registry of named factories built
// before use.
//
// # Related Packages
//
//   - github.com/tern-format/go-tern/ir - IR representation
//   - github.com/tern-format/go-tern/pack - File packer over this codec
package wire
