package ir

import "fmt"

// Type discriminates the two Node variants. The union is closed:
// a literal never has children and an object never has text.
type Type int

const (
	LiteralType Type = iota
	ObjectType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		LiteralType: "Literal",
		ObjectType:  "Object",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Literal": LiteralType,
		"Object":  ObjectType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{LiteralType, ObjectType}
}
