package token

import (
	"fmt"
)

// Pos is a position in an input document: byte offset plus the
// 0-based line and column it falls on. Positions are attached to
// nodes by the parsers for diagnostics only; they never take part
// in equality.
type Pos struct {
	Off  int
	Line int
	Col  int
}

// NoPos is the sentinel position carried by synthesized nodes.
var NoPos = Pos{Off: -1}

func (p Pos) IsValid() bool {
	return p.Off >= 0
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.Off, p.Line, p.Col)
}

// Context renders p together with a quoted snippet of d around the
// position, for error messages.
func (p Pos) Context(d []byte) string {
	if !p.IsValid() || len(d) == 0 {
		return p.String()
	}
	lo := max(0, p.Off-5)
	hi := min(p.Off+5, len(d))
	sample := fmt.Sprintf("%q", d[lo:hi])
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at %s", sample, p)
}
