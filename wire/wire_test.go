package wire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBigEndianInt32(t *testing.T) {
	s := New()
	s.Int32(0x01020304)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, s.Bytes())

	d := NewDeserializer(s.Bytes())
	v, err := d.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(0x01020304), v)
}

func TestScalarRoundTrip(t *testing.T) {
	s := New()
	s.Uint8(0xAB)
	s.Int8(-5)
	s.Uint16(0xBEEF)
	s.Int16(-300)
	s.Uint32(0xDEADBEEF)
	s.Int64(-1 << 40)
	s.Uint64(1 << 63)
	s.Float32(1.5)
	s.Float64(-2.5e-3)
	s.Bool(true)
	s.Bool(false)
	s.Rune16('é')

	d := NewDeserializer(s.Bytes())
	u8, err := d.Uint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xAB), u8)
	i8, err := d.Int8()
	require.NoError(t, err)
	require.Equal(t, int8(-5), i8)
	u16, err := d.Uint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0xBEEF), u16)
	i16, err := d.Int16()
	require.NoError(t, err)
	require.Equal(t, int16(-300), i16)
	u32, err := d.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xDEADBEEF), u32)
	i64, err := d.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(-1<<40), i64)
	u64, err := d.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(1<<63), u64)
	f32, err := d.Float32()
	require.NoError(t, err)
	require.Equal(t, float32(1.5), f32)
	f64, err := d.Float64()
	require.NoError(t, err)
	require.Equal(t, -2.5e-3, f64)
	b, err := d.Bool()
	require.NoError(t, err)
	require.True(t, b)
	b, err = d.Bool()
	require.NoError(t, err)
	require.False(t, b)
	r, err := d.Rune16()
	require.NoError(t, err)
	require.Equal(t, uint16('é'), r)
	require.Equal(t, 0, d.Remaining())
}

func TestFloat16(t *testing.T) {
	for _, f := range []float32{0, 1, -1, 0.5, 1.5, 65504, -0.25} {
		s := New()
		s.Float16(f)
		require.Equal(t, 2, s.Len())
		d := NewDeserializer(s.Bytes())
		got, err := d.Float16()
		require.NoError(t, err)
		require.Equal(t, f, got)
	}
	// values past half range saturate to infinity
	s := New()
	s.Float16(1e6)
	d := NewDeserializer(s.Bytes())
	got, err := d.Float16()
	require.NoError(t, err)
	require.True(t, math.IsInf(float64(got), 1))
}

func TestStringNarrow(t *testing.T) {
	s := New()
	require.NoError(t, s.String("hello"))
	// 4-byte length, flag, then one byte per unit
	require.Equal(t, []byte{0, 0, 0, 5, narrowFlag, 'h', 'e', 'l', 'l', 'o'}, s.Bytes())

	d := NewDeserializer(s.Bytes())
	v, err := d.String()
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Equal(t, "hello", *v)
}

func TestStringWide(t *testing.T) {
	in := "héllo☃" // snowman forces wide units
	s := New()
	require.NoError(t, s.String(in))
	require.Equal(t, byte(wideFlag), s.Bytes()[4])

	d := NewDeserializer(s.Bytes())
	v, err := d.String()
	require.NoError(t, err)
	require.Equal(t, in, *v)
}

func TestStringLatin1Narrow(t *testing.T) {
	// é is U+00E9: one code unit, still narrow
	s := New()
	require.NoError(t, s.String("café"))
	require.Equal(t, byte(narrowFlag), s.Bytes()[4])
	d := NewDeserializer(s.Bytes())
	v, err := d.String()
	require.NoError(t, err)
	require.Equal(t, "café", *v)
}

func TestNullString(t *testing.T) {
	s := New()
	require.NoError(t, s.StringPtr(nil))
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, s.Bytes())

	d := NewDeserializer(s.Bytes())
	v, err := d.String()
	require.NoError(t, err)
	require.Nil(t, v)
	require.Equal(t, 0, d.Remaining())

	// null and empty are distinct on the wire
	s = New()
	require.NoError(t, s.String(""))
	require.Equal(t, []byte{0, 0, 0, 0, narrowFlag}, s.Bytes())
}

func TestUnitTooSmall(t *testing.T) {
	s := New(WithLenUnit(Len8))
	err := s.Array(300, func(s *Serializer, i int) error {
		s.Uint8(0)
		return nil
	})
	require.ErrorIs(t, err, ErrUnitTooSmall)
}

func TestLenUnits(t *testing.T) {
	for _, u := range []LenUnit{Len8, Len16, Len32} {
		s := New(WithLenUnit(u))
		require.NoError(t, s.String("ab"))
		d := NewDeserializer(s.Bytes(), WithLenUnit(u))
		v, err := d.String()
		require.NoError(t, err)
		require.Equal(t, "ab", *v)
		require.Equal(t, 0, d.Remaining())
	}
}

func TestArrayNested(t *testing.T) {
	rows := [][]int32{{1, 2}, {3}, {}}
	s := New()
	err := s.Array(len(rows), func(s *Serializer, i int) error {
		return s.Array(len(rows[i]), func(s *Serializer, j int) error {
			s.Int32(rows[i][j])
			return nil
		})
	})
	require.NoError(t, err)

	var got [][]int32
	d := NewDeserializer(s.Bytes())
	_, err = d.Array(func(d *Deserializer, i int) error {
		var row []int32
		if _, err := d.Array(func(d *Deserializer, j int) error {
			v, err := d.Int32()
			row = append(row, v)
			return err
		}); err != nil {
			return err
		}
		got = append(got, row)
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, []int32{1, 2}, got[0])
	require.Equal(t, []int32{3}, got[1])
	require.Empty(t, got[2])
}

func TestDictAbsent(t *testing.T) {
	s := New()
	require.NoError(t, s.Dict(-1, nil))
	d := NewDeserializer(s.Bytes())
	n, err := d.Dict(func(d *Deserializer, i int) error { return nil })
	require.NoError(t, err)
	require.Equal(t, -1, n)
}

func TestShortBuffer(t *testing.T) {
	d := NewDeserializer([]byte{0x01})
	_, err := d.Int32()
	require.ErrorIs(t, err, ErrShortBuffer)
}

func TestReset(t *testing.T) {
	s := New()
	s.Uint8(1)
	first := s.Reset()
	require.Equal(t, []byte{1}, first)
	require.Equal(t, 0, s.Len())
	s.Uint8(2)
	require.Equal(t, []byte{2}, s.Bytes())
}

func TestStringLengthBeyondBuffer(t *testing.T) {
	// a corrupt huge length prefix fails before allocating for it
	d := NewDeserializer([]byte{0x7F, 0xFF, 0xFF, 0xFF, narrowFlag})
	_, err := d.String()
	require.ErrorIs(t, err, ErrShortBuffer)

	// wide needs two bytes per unit
	d = NewDeserializer([]byte{0, 0, 0, 3, wideFlag, 0, 'a', 0, 'b'})
	_, err = d.String()
	require.ErrorIs(t, err, ErrShortBuffer)
}

func TestArrayNegativeLength(t *testing.T) {
	d := NewDeserializer([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	n, err := d.Array(func(d *Deserializer, i int) error { return nil })
	require.ErrorIs(t, err, ErrBadValue)
	require.Equal(t, 0, n)
}
