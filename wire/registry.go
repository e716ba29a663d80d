package wire

import (
	"fmt"
)

// Marshaler is the write half of the user-defined record contract.
type Marshaler interface {
	MarshalWire(s *Serializer) error
}

// Unmarshaler is the read half: populate the receiver from d.
type Unmarshaler interface {
	UnmarshalWire(d *Deserializer) error
}

// Registry maps type names to factories producing fresh instances
// for Deserializer.Tagged. It replaces any notion of reflective
// default construction: a missing factory is ErrNotImplemented.
// Populate it before wiring it into a Serializer or Deserializer;
// it is read-only from then on.
type Registry struct {
	factories map[string]func() Unmarshaler
}

func NewRegistry() *Registry {
	return &Registry{factories: map[string]func() Unmarshaler{}}
}

func (r *Registry) Register(name string, f func() Unmarshaler) {
	r.factories[name] = f
}

func (r *Registry) Has(name string) bool {
	_, ok := r.factories[name]
	return ok
}

func (r *Registry) New(name string) (Unmarshaler, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: no factory for %q", ErrNotImplemented, name)
	}
	return f(), nil
}
