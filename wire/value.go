package wire

import (
	"fmt"

	"github.com/tern-format/go-tern/ir"
)

// Value-tree wire tags, one discriminant byte per node.
const (
	literalTag byte = 0
	objectTag  byte = 1
)

// Value writes the canonical binary projection of a value tree:
// the discriminant, then the optional text for a literal or the
// child dictionary for an object. A nil node is the null literal.
func (s *Serializer) Value(y *ir.Node) error {
	if y == nil {
		y = ir.Null()
	}
	switch y.Type {
	case ir.LiteralType:
		s.Uint8(literalTag)
		return s.StringPtr(y.Text)
	case ir.ObjectType:
		s.Uint8(objectTag)
		return s.Dict(len(y.Keys), func(s *Serializer, i int) error {
			if err := s.String(y.Keys[i]); err != nil {
				return err
			}
			return s.Value(y.Values[i])
		})
	}
	return fmt.Errorf("%w: type %s", ErrBadValue, y.Type)
}

// Value reads a tree written by Serializer.Value.
func (d *Deserializer) Value() (*ir.Node, error) {
	tag, err := d.Uint8()
	if err != nil {
		return nil, err
	}
	switch tag {
	case literalTag:
		t, err := d.String()
		if err != nil {
			return nil, err
		}
		return ir.LiteralPtr(t), nil
	case objectTag:
		y := ir.Object()
		_, err := d.Dict(func(d *Deserializer, i int) error {
			key, err := d.MustStringVal()
			if err != nil {
				return err
			}
			v, err := d.Value()
			if err != nil {
				return err
			}
			return y.Set(key, v)
		})
		if err != nil {
			return nil, err
		}
		return y, nil
	default:
		return nil, fmt.Errorf("%w: discriminant %d", ErrBadValue, tag)
	}
}
