package ir

import (
	"strconv"
)

// LengthKey is the optional child recording an array's element
// count. Hand-authored documents and older encodings carry it; when
// present its value must agree with the remaining child count.
const LengthKey = "Length"

// AsArray projects an object onto an ordered element sequence. The
// projection succeeds iff every key other than LengthKey parses as
// a non-negative integer and the indices exactly cover 0..n-1 with
// no duplicates. An object with no indexed children projects to a
// zero-length array.
func (y *Node) AsArray() ([]*Node, bool) {
	if y.Type != ObjectType {
		return nil, false
	}
	var want *int64
	n := 0
	for i, k := range y.Keys {
		if k == LengthKey {
			lv, ok := y.Values[i].Int()
			if !ok {
				return nil, false
			}
			want = &lv
			continue
		}
		n++
	}
	if want != nil && *want != int64(n) {
		return nil, false
	}
	elts := make([]*Node, n)
	for i, k := range y.Keys {
		if k == LengthKey {
			continue
		}
		idx, err := strconv.Atoi(k)
		if err != nil || idx < 0 || idx >= n {
			return nil, false
		}
		if elts[idx] != nil {
			return nil, false
		}
		elts[idx] = y.Values[i]
	}
	return elts, true
}

// IsArray reports whether AsArray would succeed.
func (y *Node) IsArray() bool {
	_, ok := y.AsArray()
	return ok
}

// Append adds v at the next free index of an array-shaped object.
func (y *Node) Append(v *Node) error {
	if y.Type != ObjectType {
		return ErrNotObject
	}
	n := len(y.Keys)
	if y.Has(LengthKey) {
		n--
	}
	return y.Set(strconv.Itoa(n), v)
}
