package ir

import (
	"fmt"
)

// CombineOptions are the three independent override switches
// governing variant mismatches during Combine. Object-into-object
// always deep-merges regardless of the switches.
type CombineOptions struct {
	// LiteralToObject lets an object overwrite a literal base.
	LiteralToObject bool
	// LiteralToLiteral lets a literal overwrite a literal base.
	LiteralToLiteral bool
	// ObjectToLiteral lets a literal collapse an object base.
	ObjectToLiteral bool
}

// DefaultCombineOptions enables only literal-overwrites-literal.
func DefaultCombineOptions() CombineOptions {
	return CombineOptions{LiteralToLiteral: true}
}

// Combine merges other into y, y being the base. Shared object keys
// recurse with the same options; new keys are appended in other's
// order. A variant combination disabled by opts fails with
// ErrCombine naming the path.
func (y *Node) Combine(other *Node, opts CombineOptions) error {
	switch {
	case y.Type == ObjectType && other.Type == ObjectType:
		for i, k := range other.Keys {
			ov := other.Values[i]
			cur, ok := y.Lookup(k)
			if !ok {
				y.Set(k, ov.Clone())
				continue
			}
			if err := cur.Combine(ov, opts); err != nil {
				return err
			}
		}
		return nil
	case y.Type == LiteralType && other.Type == LiteralType:
		if !opts.LiteralToLiteral {
			return fmt.Errorf("%w: literal onto literal at %q", ErrCombine, y.Path())
		}
		y.Text = nil
		if other.Text != nil {
			t := *other.Text
			y.Text = &t
		}
		y.Ref = other.Ref
		return nil
	case y.Type == LiteralType && other.Type == ObjectType:
		if !opts.LiteralToObject {
			return fmt.Errorf("%w: object onto literal at %q", ErrCombine, y.Path())
		}
		parent, field := y.Parent, y.ParentField
		other.CloneTo(y)
		y.Parent, y.ParentField = parent, field
		return nil
	case y.Type == ObjectType && other.Type == LiteralType:
		if !opts.ObjectToLiteral {
			return fmt.Errorf("%w: literal onto object at %q", ErrCombine, y.Path())
		}
		y.Type = LiteralType
		y.Keys = nil
		y.Values = nil
		y.Text = nil
		if other.Text != nil {
			t := *other.Text
			y.Text = &t
		}
		y.Ref = other.Ref
		return nil
	}
	// both variants are covered above; a third Type is a bug
	panic(fmt.Sprintf("combine: unknown variants %s/%s", y.Type, other.Type))
}
