package wire

// LenUnit selects the width of length prefixes. Lengths are written
// signed so that -1 can denote a null string or absent dictionary.
type LenUnit int

const (
	Len8  LenUnit = 1
	Len16 LenUnit = 2
	Len32 LenUnit = 4
)

// maxLen returns the largest count the unit can carry.
func (u LenUnit) maxLen() int {
	switch u {
	case Len8:
		return 1<<7 - 1
	case Len16:
		return 1<<15 - 1
	default:
		return 1<<31 - 1
	}
}

type config struct {
	lenUnit LenUnit
	reg     *Registry
}

type Option func(*config)

// WithLenUnit sets the length-prefix width, default Len32.
func WithLenUnit(u LenUnit) Option {
	return func(c *config) { c.lenUnit = u }
}

// WithRegistry supplies the factory table used by Tagged values.
func WithRegistry(r *Registry) Option {
	return func(c *config) { c.reg = r }
}

func newConfig(opts []Option) *config {
	c := &config{lenUnit: Len32}
	for _, o := range opts {
		o(c)
	}
	return c
}
