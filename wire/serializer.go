package wire

import (
	"fmt"
	"math"
	"unicode/utf16"

	"github.com/tern-format/go-tern/debug"
)

// Serializer accumulates a length-prefixed, big-endian binary
// encoding in a growable buffer. Every Write method has a matching
// Deserializer read consuming exactly the bytes written. A single
// instance serializes one logical message at a time; Reset hands
// back the accumulated bytes and clears it for the next message.
type Serializer struct {
	buf []byte
	cfg *config
}

func New(opts ...Option) *Serializer {
	return &Serializer{cfg: newConfig(opts)}
}

// Bytes returns the accumulated encoding without resetting.
func (s *Serializer) Bytes() []byte {
	return s.buf
}

// Len returns the number of bytes accumulated so far.
func (s *Serializer) Len() int {
	return len(s.buf)
}

// Reset returns the accumulated bytes and clears the buffer for
// reuse across logical messages.
func (s *Serializer) Reset() []byte {
	d := s.buf
	s.buf = nil
	return d
}

// Fixed-width scalars, big-endian by explicit byte composition so
// the wire format is host-independent.

func (s *Serializer) Uint8(v uint8) {
	s.buf = append(s.buf, v)
}

func (s *Serializer) Uint16(v uint16) {
	s.buf = append(s.buf, byte(v>>8), byte(v))
}

func (s *Serializer) Uint32(v uint32) {
	s.buf = append(s.buf,
		byte(v>>24),
		byte(v>>16),
		byte(v>>8),
		byte(v),
	)
}

func (s *Serializer) Uint64(v uint64) {
	s.buf = append(s.buf,
		byte(v>>56),
		byte(v>>48),
		byte(v>>40),
		byte(v>>32),
		byte(v>>24),
		byte(v>>16),
		byte(v>>8),
		byte(v),
	)
}

func (s *Serializer) Int8(v int8)   { s.Uint8(uint8(v)) }
func (s *Serializer) Int16(v int16) { s.Uint16(uint16(v)) }
func (s *Serializer) Int32(v int32) { s.Uint32(uint32(v)) }
func (s *Serializer) Int64(v int64) { s.Uint64(uint64(v)) }

func (s *Serializer) Float32(v float32) {
	s.Uint32(math.Float32bits(v))
}

func (s *Serializer) Float64(v float64) {
	s.Uint64(math.Float64bits(v))
}

// Float16 writes v as an IEEE 754 half, rounding toward zero.
func (s *Serializer) Float16(v float32) {
	s.Uint16(float16bits(v))
}

func (s *Serializer) Bool(v bool) {
	if v {
		s.Uint8(1)
		return
	}
	s.Uint8(0)
}

// Rune16 writes a single UTF-16 code unit.
func (s *Serializer) Rune16(v uint16) {
	s.Uint16(v)
}

// writeLen writes a signed length in the configured unit. -1 is the
// null sentinel for strings and dictionaries.
func (s *Serializer) writeLen(n int) error {
	if n > s.cfg.lenUnit.maxLen() {
		return fmt.Errorf("%w: %d exceeds %d-bit prefix",
			ErrUnitTooSmall, n, 8*int(s.cfg.lenUnit))
	}
	switch s.cfg.lenUnit {
	case Len8:
		s.Int8(int8(n))
	case Len16:
		s.Int16(int16(n))
	default:
		s.Int32(int32(n))
	}
	return nil
}

// string encoding flags: one byte per code unit when every unit
// fits, two otherwise.
const (
	narrowFlag byte = 0
	wideFlag   byte = 1
)

// String writes a length prefix (in UTF-16 code units), an encoding
// flag byte, and the units themselves. The narrow encoding is
// chosen iff every code unit is <= 0xFF.
func (s *Serializer) String(v string) error {
	units := utf16.Encode([]rune(v))
	if err := s.writeLen(len(units)); err != nil {
		return err
	}
	narrow := true
	for _, u := range units {
		if u > 0xFF {
			narrow = false
			break
		}
	}
	if narrow {
		s.Uint8(narrowFlag)
		for _, u := range units {
			s.Uint8(uint8(u))
		}
		return nil
	}
	s.Uint8(wideFlag)
	for _, u := range units {
		s.Uint16(u)
	}
	return nil
}

// NullString writes the null-string sentinel: length -1, nothing
// following, distinct from a zero-length string.
func (s *Serializer) NullString() error {
	return s.writeLen(-1)
}

// StringPtr writes *v, or the null sentinel when v is nil.
func (s *Serializer) StringPtr(v *string) error {
	if v == nil {
		return s.NullString()
	}
	return s.String(*v)
}

// BytesN writes raw bytes with a length prefix, -1 when nil.
func (s *Serializer) BytesN(v []byte) error {
	if v == nil {
		return s.writeLen(-1)
	}
	if err := s.writeLen(len(v)); err != nil {
		return err
	}
	s.buf = append(s.buf, v...)
	return nil
}

// Array writes a length prefix followed by n elements produced by
// elem. Nested arrays recurse through elem.
func (s *Serializer) Array(n int, elem func(s *Serializer, i int) error) error {
	if err := s.writeLen(n); err != nil {
		return err
	}
	for i := range n {
		if err := elem(s, i); err != nil {
			return err
		}
	}
	return nil
}

// Dict writes a length prefix, or -1 when absent, followed by n
// interleaved key/value pairs produced by entry.
func (s *Serializer) Dict(n int, entry func(s *Serializer, i int) error) error {
	if n < 0 {
		return s.writeLen(-1)
	}
	return s.Array(n, entry)
}

// Marshal writes a user-defined record through its own contract.
func (s *Serializer) Marshal(v Marshaler) error {
	return v.MarshalWire(s)
}

// Tagged writes the registered type name then the record payload,
// so the reader can reconstruct it through the registry.
func (s *Serializer) Tagged(name string, v Marshaler) error {
	if s.cfg.reg != nil && !s.cfg.reg.Has(name) {
		return fmt.Errorf("%w: serialize %q", ErrNotImplemented, name)
	}
	if debug.Wire() {
		debug.Logf("tagged %q at offset %d\n", name, s.Len())
	}
	if err := s.String(name); err != nil {
		return err
	}
	return v.MarshalWire(s)
}
