package wire

import (
	"fmt"
	"math"
	"unicode/utf16"
)

// Deserializer consumes a fixed buffer produced by a Serializer,
// reading fields back in the order they were written.
type Deserializer struct {
	buf []byte
	off int
	cfg *config
}

func NewDeserializer(d []byte, opts ...Option) *Deserializer {
	return &Deserializer{buf: d, cfg: newConfig(opts)}
}

// Remaining returns the number of unread bytes.
func (d *Deserializer) Remaining() int {
	return len(d.buf) - d.off
}

func (d *Deserializer) take(n int) ([]byte, error) {
	if d.Remaining() < n {
		return nil, fmt.Errorf("%w: need %d bytes, have %d at offset %d",
			ErrShortBuffer, n, d.Remaining(), d.off)
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b, nil
}

func (d *Deserializer) Uint8() (uint8, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *Deserializer) Uint16() (uint16, error) {
	b, err := d.take(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0])<<8 | uint16(b[1]), nil
}

func (d *Deserializer) Uint32() (uint32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]), nil
}

func (d *Deserializer) Uint64() (uint64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return uint64(b[0])<<56 | uint64(b[1])<<48 | uint64(b[2])<<40 | uint64(b[3])<<32 |
		uint64(b[4])<<24 | uint64(b[5])<<16 | uint64(b[6])<<8 | uint64(b[7]), nil
}

func (d *Deserializer) Int8() (int8, error) {
	v, err := d.Uint8()
	return int8(v), err
}

func (d *Deserializer) Int16() (int16, error) {
	v, err := d.Uint16()
	return int16(v), err
}

func (d *Deserializer) Int32() (int32, error) {
	v, err := d.Uint32()
	return int32(v), err
}

func (d *Deserializer) Int64() (int64, error) {
	v, err := d.Uint64()
	return int64(v), err
}

func (d *Deserializer) Float32() (float32, error) {
	v, err := d.Uint32()
	return math.Float32frombits(v), err
}

func (d *Deserializer) Float64() (float64, error) {
	v, err := d.Uint64()
	return math.Float64frombits(v), err
}

func (d *Deserializer) Float16() (float32, error) {
	v, err := d.Uint16()
	return float16frombits(v), err
}

func (d *Deserializer) Bool() (bool, error) {
	v, err := d.Uint8()
	return v != 0, err
}

func (d *Deserializer) Rune16() (uint16, error) {
	return d.Uint16()
}

func (d *Deserializer) readLen() (int, error) {
	switch d.cfg.lenUnit {
	case Len8:
		v, err := d.Int8()
		return int(v), err
	case Len16:
		v, err := d.Int16()
		return int(v), err
	default:
		v, err := d.Int32()
		return int(v), err
	}
}

// String reads a string written by Serializer.String or
// NullString; nil means the null string.
func (d *Deserializer) String() (*string, error) {
	n, err := d.readLen()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, nil
	}
	flag, err := d.Uint8()
	if err != nil {
		return nil, err
	}
	// validate the untrusted length before allocating for it
	var need int
	switch flag {
	case narrowFlag:
		need = n
	case wideFlag:
		need = 2 * n
	default:
		return nil, fmt.Errorf("%w: string encoding flag %d", ErrBadValue, flag)
	}
	if d.Remaining() < need {
		return nil, fmt.Errorf("%w: string of %d units, have %d bytes at offset %d",
			ErrShortBuffer, n, d.Remaining(), d.off)
	}
	units := make([]uint16, n)
	switch flag {
	case narrowFlag:
		b, err := d.take(n)
		if err != nil {
			return nil, err
		}
		for i, c := range b {
			units[i] = uint16(c)
		}
	case wideFlag:
		for i := range n {
			u, err := d.Uint16()
			if err != nil {
				return nil, err
			}
			units[i] = u
		}
	}
	res := string(utf16.Decode(units))
	return &res, nil
}

// MustStringVal reads a string that may not be null.
func (d *Deserializer) MustStringVal() (string, error) {
	s, err := d.String()
	if err != nil {
		return "", err
	}
	if s == nil {
		return "", fmt.Errorf("%w: unexpected null string", ErrBadValue)
	}
	return *s, nil
}

// BytesN reads bytes written by Serializer.BytesN; nil for -1.
func (d *Deserializer) BytesN() ([]byte, error) {
	n, err := d.readLen()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, nil
	}
	b, err := d.take(n)
	if err != nil {
		return nil, err
	}
	res := make([]byte, n)
	copy(res, b)
	return res, nil
}

// Array reads a length prefix and invokes elem once per element.
// Arrays are never absent: a negative length is corrupt input, not
// the dictionary -1 convention.
func (d *Deserializer) Array(elem func(d *Deserializer, i int) error) (int, error) {
	n, err := d.readLen()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: array length %d", ErrBadValue, n)
	}
	for i := range n {
		if err := elem(d, i); err != nil {
			return i, err
		}
	}
	return n, nil
}

// Dict reads a length prefix, -1 meaning absent, and invokes entry
// once per key/value pair.
func (d *Deserializer) Dict(entry func(d *Deserializer, i int) error) (int, error) {
	n, err := d.readLen()
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return -1, nil
	}
	for i := range n {
		if err := entry(d, i); err != nil {
			return i, err
		}
	}
	return n, nil
}

// Unmarshal populates a user-defined record through its contract.
func (d *Deserializer) Unmarshal(v Unmarshaler) error {
	return v.UnmarshalWire(d)
}

// Tagged reads a type name, builds a fresh record through the
// registry, and populates it.
func (d *Deserializer) Tagged() (Unmarshaler, error) {
	if d.cfg.reg == nil {
		return nil, fmt.Errorf("%w: no registry", ErrNotImplemented)
	}
	name, err := d.MustStringVal()
	if err != nil {
		return nil, err
	}
	v, err := d.cfg.reg.New(name)
	if err != nil {
		return nil, err
	}
	if err := v.UnmarshalWire(d); err != nil {
		return nil, err
	}
	return v, nil
}
