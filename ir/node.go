package ir

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/tern-format/go-tern/token"
)

// Node is a value in a tern document: either a literal holding
// optional text, or an object holding an insertion-ordered mapping
// from string keys to child nodes. Keys and Values are parallel
// slices; keys are unique.
type Node struct {
	Type Type

	// Text is the literal payload. nil is the null literal,
	// distinct from a pointer to the empty string.
	Text *string

	// Ref marks a literal parsed from a &name reference, to be
	// resolved against a symbol table after parsing.
	Ref bool

	Keys   []string
	Values []*Node

	Parent      *Node
	ParentField string

	// Pos is where the node was parsed from; diagnostics only.
	Pos token.Pos
}

func Literal(v string) *Node {
	return &Node{Type: LiteralType, Text: &v, Pos: token.NoPos}
}

// LiteralPtr builds a literal from optional text; a nil pointer
// yields the null literal. The text is copied.
func LiteralPtr(v *string) *Node {
	if v == nil {
		return Null()
	}
	return Literal(*v)
}

func Null() *Node {
	return &Node{Type: LiteralType, Pos: token.NoPos}
}

func Object() *Node {
	return &Node{Type: ObjectType, Pos: token.NoPos}
}

// FromMap builds an object with keys in sorted order.
func FromMap(m map[string]*Node) *Node {
	res := Object()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Set(key, m[key])
	}
	return res
}

// FromSlice builds the object projection of an array: children
// keyed by their stringified 0-based index.
func FromSlice(elts []*Node) *Node {
	res := Object()
	for i, e := range elts {
		res.Set(strconv.Itoa(i), e)
	}
	return res
}

func FromStrings(vs []string) *Node {
	elts := make([]*Node, len(vs))
	for i, v := range vs {
		elts[i] = Literal(v)
	}
	return FromSlice(elts)
}

// IsNull reports whether the node is the null literal.
func (y *Node) IsNull() bool {
	return y.Type == LiteralType && y.Text == nil
}

// IsEmpty reports whether the node is a literal with empty text.
func (y *Node) IsEmpty() bool {
	return y.Type == LiteralType && y.Text != nil && *y.Text == ""
}

// String returns the literal text. No value for objects and the
// null literal.
func (y *Node) String() (string, bool) {
	if y.Type != LiteralType || y.Text == nil {
		return "", false
	}
	return *y.Text, true
}

// Int reinterprets the literal text as an integer. Literals carry
// text only; numbers are parsed on read.
func (y *Node) Int() (int64, bool) {
	v, ok := y.String()
	if !ok {
		return 0, false
	}
	i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, false
	}
	return i, true
}

// Float reinterprets the literal text as a float on read.
func (y *Node) Float() (float64, bool) {
	v, ok := y.String()
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Bool reinterprets the literal text as a boolean on read.
// Recognized, case-insensitively and trimmed: true/yes/1 and
// false/no/0. Anything else is no value.
func (y *Node) Bool() (bool, bool) {
	v, ok := y.String()
	if !ok {
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "yes", "1":
		return true, true
	case "false", "no", "0":
		return false, true
	}
	return false, false
}

// Lookup returns the child at key with an existence flag.
func (y *Node) Lookup(key string) (*Node, bool) {
	if y.Type != ObjectType {
		return nil, false
	}
	for i, k := range y.Keys {
		if k == key {
			return y.Values[i], true
		}
	}
	return nil, false
}

func (y *Node) Has(key string) bool {
	_, ok := y.Lookup(key)
	return ok
}

// Get returns the child at key, or a fresh null literal when the
// key is missing or the receiver is not an object. Chained access
// is total; a missing key and a present null are indistinguishable
// through Get. Use Lookup to tell them apart.
func (y *Node) Get(key string) *Node {
	if v, ok := y.Lookup(key); ok {
		return v
	}
	return Null()
}

// Set upserts a child, preserving insertion order on overwrite.
// Setting a key on a literal is an error.
func (y *Node) Set(key string, v *Node) error {
	if y.Type != ObjectType {
		return ErrNotObject
	}
	v.Parent = y
	v.ParentField = key
	for i, k := range y.Keys {
		if k == key {
			y.Values[i] = v
			return nil
		}
	}
	y.Keys = append(y.Keys, key)
	y.Values = append(y.Values, v)
	return nil
}

// Delete removes a child by key. Missing keys are a no-op.
func (y *Node) Delete(key string) {
	for i, k := range y.Keys {
		if k == key {
			y.Keys = slices.Delete(y.Keys, i, i+1)
			y.Values = slices.Delete(y.Values, i, i+1)
			return
		}
	}
}

// Len returns the child count of an object, 0 for literals.
func (y *Node) Len() int {
	return len(y.Values)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

// CloneTo deep-copies y into dst and returns dst. Parent linkage of
// dst itself is preserved; children are re-parented to dst.
func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Ref = y.Ref
	dst.Pos = y.Pos
	dst.Text = nil
	if y.Text != nil {
		t := *y.Text
		dst.Text = &t
	}
	dst.Keys = slices.Clone(y.Keys)
	dst.Values = make([]*Node, len(y.Values))
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentField = y.Keys[i]
		dst.Values[i] = dstI
	}
	return dst
}

// Visit walks the tree pre- and post-order. f is called with
// isPost=false before children and isPost=true after; returning
// dive=false skips the children.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
