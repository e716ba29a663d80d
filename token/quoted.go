package token

import (
	"strings"
)

// Whitespace is the set of bytes the parsers treat as insignificant
// between tokens.
const Whitespace = " \t\r\n"

// NeedsQuote reports whether v cannot be written as a bare token in
// tern text: it is empty, collides with a keyword or number shape,
// or contains whitespace or structural bytes.
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	switch v {
	case "null", "true", "false":
		return true
	}
	switch v[0] {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '-', '&':
		return true
	}
	return strings.ContainsAny(v, Whitespace+`{}[]:,"\`)
}

// Quote renders v as a double-quoted token with '\' and '"'
// backslash-escaped.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '"', '\\':
			d = append(d, '\\', v[i])
		default:
			d = append(d, v[i])
		}
	}
	return string(append(d, '"'))
}

// Unescape resolves a generic backslash escape: every escaped byte
// stands for itself. There is no fixed escape table; \n is a
// literal 'n'.
func Unescape(v string) string {
	if !strings.ContainsRune(v, '\\') {
		return v
	}
	d := make([]byte, 0, len(v))
	for i := 0; i < len(v); i++ {
		if v[i] == '\\' && i+1 < len(v) {
			i++
		}
		d = append(d, v[i])
	}
	return string(d)
}
