package token

import (
	"errors"
	"strings"
)

// MaxIters bounds every consume loop. Input documents are in-memory
// and finite, so tripping the bound signals a cursor bug or
// pathological input, never a condition to cap silently.
const MaxIters = 1 << 24

var ErrEndless = errors.New("endless loop guard tripped")

// Cursor is a one-way view over a text buffer. It exposes the
// current byte, advances one byte at a time while tracking line and
// column, and provides bounded run-consumption primitives. There is
// no pushback: parsers look ahead only via Ch.
type Cursor struct {
	d    []byte
	off  int
	line int
	col  int
}

func NewCursor(d []byte) *Cursor {
	return &Cursor{d: d}
}

// Ch returns the byte under the cursor, or 0 past the end.
func (c *Cursor) Ch() byte {
	if c.off >= len(c.d) {
		return 0
	}
	return c.d[c.off]
}

func (c *Cursor) EOF() bool {
	return c.off >= len(c.d)
}

// Next advances one byte and returns the byte now under the cursor.
func (c *Cursor) Next() byte {
	if c.off >= len(c.d) {
		return 0
	}
	if c.d[c.off] == '\n' {
		c.line++
		c.col = 0
	} else {
		c.col++
	}
	c.off++
	return c.Ch()
}

func (c *Cursor) Pos() Pos {
	return Pos{Off: c.off, Line: c.line, Col: c.col}
}

// Doc returns the underlying document, for error-message context.
func (c *Cursor) Doc() []byte {
	return c.d
}

// ConsumeWhile advances past a run of bytes drawn from set and
// returns the run. The loop is bounded by MaxIters.
func (c *Cursor) ConsumeWhile(set string) (string, error) {
	start := c.off
	for i := 0; ; i++ {
		if i >= MaxIters {
			return "", ErrEndless
		}
		ch := c.Ch()
		if ch == 0 || strings.IndexByte(set, ch) < 0 {
			break
		}
		c.Next()
	}
	return string(c.d[start:c.off]), nil
}

// ConsumeUntil advances up to (not including) the first byte drawn
// from set, or EOF, and returns what was consumed.
func (c *Cursor) ConsumeUntil(set string) (string, error) {
	start := c.off
	for i := 0; ; i++ {
		if i >= MaxIters {
			return "", ErrEndless
		}
		ch := c.Ch()
		if ch == 0 || strings.IndexByte(set, ch) >= 0 {
			break
		}
		c.Next()
	}
	return string(c.d[start:c.off]), nil
}

// ConsumeUntilString advances up to the first occurrence of delim.
// If delim does not occur before EOF the cursor does not move and
// the empty string is returned.
func (c *Cursor) ConsumeUntilString(delim string) string {
	i := strings.Index(string(c.d[c.off:]), delim)
	if i < 0 {
		return ""
	}
	start := c.off
	for range i {
		c.Next()
	}
	return string(c.d[start:c.off])
}
