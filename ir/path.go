package ir

import (
	"fmt"
	"strings"

	"github.com/tern-format/go-tern/token"
)

// Path returns the dotted key path of this node from the document
// root, for error messages. The root path is "".
func (y *Node) Path() string {
	if y.Parent == nil {
		return ""
	}
	f := y.ParentField
	if token.NeedsQuote(f) {
		f = token.Quote(f)
	}
	prefix := y.Parent.Path()
	if prefix == "" {
		return f
	}
	return prefix + "." + f
}

// GetPath navigates a dotted key path, e.g. "a.b.0.c". Array
// elements are addressed by their numeric keys. Returns an error
// naming the missing segment.
func (y *Node) GetPath(p string) (*Node, error) {
	if p == "" {
		return y, nil
	}
	res := y
	for _, seg := range strings.Split(p, ".") {
		v, ok := res.Lookup(seg)
		if !ok {
			return nil, fmt.Errorf("no %q under %q", seg, res.Path())
		}
		res = v
	}
	return res, nil
}
