package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type span struct {
	Start int32
	End   int32
	Label *string
}

func (p *span) MarshalWire(s *Serializer) error {
	s.Int32(p.Start)
	s.Int32(p.End)
	return s.StringPtr(p.Label)
}

func (p *span) UnmarshalWire(d *Deserializer) error {
	var err error
	if p.Start, err = d.Int32(); err != nil {
		return err
	}
	if p.End, err = d.Int32(); err != nil {
		return err
	}
	p.Label, err = d.String()
	return err
}

func TestMarshalUnmarshal(t *testing.T) {
	label := "body"
	in := &span{Start: 3, End: 17, Label: &label}
	s := New()
	require.NoError(t, s.Marshal(in))

	out := &span{}
	d := NewDeserializer(s.Bytes())
	require.NoError(t, d.Unmarshal(out))
	require.Equal(t, in, out)
}

func TestTagged(t *testing.T) {
	reg := NewRegistry()
	reg.Register("span", func() Unmarshaler { return &span{} })

	in := &span{Start: 1, End: 2}
	s := New(WithRegistry(reg))
	require.NoError(t, s.Tagged("span", in))

	d := NewDeserializer(s.Bytes(), WithRegistry(reg))
	got, err := d.Tagged()
	require.NoError(t, err)
	require.Equal(t, in, got)
}

func TestTaggedUnregistered(t *testing.T) {
	reg := NewRegistry()
	s := New(WithRegistry(reg))
	err := s.Tagged("mystery", &span{})
	require.ErrorIs(t, err, ErrNotImplemented)

	d := NewDeserializer(nil)
	_, err = d.Tagged()
	require.ErrorIs(t, err, ErrNotImplemented)
}

func TestTaggedMissingFactory(t *testing.T) {
	// writer side had the factory, reader side does not
	reg := NewRegistry()
	reg.Register("span", func() Unmarshaler { return &span{} })
	s := New(WithRegistry(reg))
	require.NoError(t, s.Tagged("span", &span{Start: 9}))

	d := NewDeserializer(s.Bytes(), WithRegistry(NewRegistry()))
	_, err := d.Tagged()
	require.ErrorIs(t, err, ErrNotImplemented)
}
