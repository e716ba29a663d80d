package ir

import (
	"cmp"
	"strings"
)

// Equal reports structural equality. Literals are equal iff their
// text matches, null matching only null. Objects are equal iff each
// key of one maps to an equal value in the other, regardless of
// insertion order. Pos and Parent never participate.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	if a.Type == LiteralType {
		if a.Text == nil || b.Text == nil {
			return a.Text == nil && b.Text == nil
		}
		return *a.Text == *b.Text
	}
	if len(a.Keys) != len(b.Keys) {
		return false
	}
	for i, k := range a.Keys {
		bv, ok := b.Lookup(k)
		if !ok || !Equal(a.Values[i], bv) {
			return false
		}
	}
	return true
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Order: null < literal < object; literals by text, objects by
// key/value pairs then size.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a)
	rankB := rank(b)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	if a.Type == LiteralType {
		if a.Text == nil {
			return 0
		}
		return strings.Compare(*a.Text, *b.Text)
	}
	return compareObjects(a, b)
}

func rank(y *Node) int {
	switch {
	case y.Type == LiteralType && y.Text == nil:
		return 0
	case y.Type == LiteralType:
		return 1
	default:
		return 2
	}
}

func compareObjects(a, b *Node) int {
	lenA := len(a.Keys)
	lenB := len(b.Keys)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.Keys[i], b.Keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
