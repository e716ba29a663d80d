package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tern-format/go-tern/format"
	"github.com/tern-format/go-tern/ir"
	"github.com/tern-format/go-tern/token"
)

type EncState struct {
	col, depth, indent int

	minimal bool
	format  format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode renders node to w in the configured text format. The
// default is pretty tern; Minimal(true) strips newlines, indent and
// the space after ':'.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2, format: format.TernFormat}
	for _, opt := range opts {
		opt(es)
	}
	if !es.format.IsText() {
		return fmt.Errorf("%w: cannot encode %s text", format.ErrBadFormat, es.format)
	}
	if err := encode(node, w, es, es.depth == 0); err != nil {
		return err
	}
	if !es.minimal {
		return writeString(w, es, "\n")
	}
	return nil
}

func encode(node *ir.Node, w io.Writer, es *EncState, top bool) error {
	if node == nil {
		node = ir.Null()
	}
	switch node.Type {
	case ir.LiteralType:
		return encodeLiteral(node, w, es)
	case ir.ObjectType:
		// Length-carrying arrays keep object form so the count key
		// survives a round trip. An empty object stays {}.
		if elts, ok := node.AsArray(); ok && len(elts) > 0 && !node.Has(ir.LengthKey) {
			return encodeArray(node, elts, w, es)
		}
		return encodeObject(node, w, es, top)
	default:
		panic("type")
	}
}

// scalarText renders the literal payload, reporting whether it can
// be written bare: null, float-round-tripping text, and the two
// boolean words go unquoted.
func scalarText(node *ir.Node) (string, bool) {
	if node.Text == nil {
		return "null", true
	}
	v := *node.Text
	if f, err := strconv.ParseFloat(v, 64); err == nil &&
		!math.IsNaN(f) && !math.IsInf(f, 0) &&
		strconv.FormatFloat(f, 'g', -1, 64) == v {
		return v, true
	}
	if v == "true" || v == "false" {
		return v, true
	}
	return v, false
}

func encodeLiteral(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Ref && es.format == format.TernFormat && node.Text != nil {
		v := *node.Text
		if token.NeedsQuote(v) {
			v = token.Quote(v)
		}
		return writeString(w, es, applyColor(es, node.Type, ValueColor, "&"+v))
	}
	v, bare := scalarText(node)
	if !bare {
		v = token.Quote(v)
	}
	attr := ValueColor
	if node.IsNull() {
		attr = NullColor
	}
	return writeString(w, es, applyColor(es, node.Type, attr, v))
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState, top bool) error {
	switch es.format {
	case format.JSONFormat:
		return encodeJSONObject(node, w, es)
	case format.TernFormat:
		return encodeTernObject(node, w, es, top)
	}
	panic("format")
}

func encodeTernObject(node *ir.Node, w io.Writer, es *EncState, top bool) error {
	bare := top && !es.minimal
	if !bare {
		if err := writeString(w, es, punct(es, "{")); err != nil {
			return err
		}
		es.depth++
	}
	for i, key := range node.Keys {
		switch {
		case bare && i == 0:
		case es.minimal:
			if i > 0 {
				if err := writeString(w, es, " "); err != nil {
					return err
				}
			}
		default:
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		if err := writeKey(w, es, key, ":"); err != nil {
			return err
		}
		if !es.minimal {
			if err := writeString(w, es, " "); err != nil {
				return err
			}
		}
		if err := encode(node.Values[i], w, es, false); err != nil {
			return err
		}
	}
	if !bare {
		es.depth--
		if !es.minimal && len(node.Keys) > 0 {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		return writeString(w, es, punct(es, "}"))
	}
	return nil
}

func encodeArray(node *ir.Node, elts []*ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, es, punct(es, "[")); err != nil {
		return err
	}
	multi := false
	if !es.minimal {
		for _, e := range elts {
			if e.Type == ir.ObjectType && e.Len() > 0 {
				multi = true
				break
			}
		}
	}
	if multi {
		es.depth++
	}
	for i, e := range elts {
		if i > 0 {
			if err := writeString(w, es, punct(es, ",")); err != nil {
				return err
			}
		}
		if multi {
			if err := writeNL(w, es); err != nil {
				return err
			}
		} else if i > 0 && !es.minimal {
			if err := writeString(w, es, " "); err != nil {
				return err
			}
		}
		if err := encode(e, w, es, false); err != nil {
			return err
		}
	}
	if multi {
		es.depth--
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, es, punct(es, "]"))
}

func encodeJSONObject(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeString(w, es, punct(es, "{")); err != nil {
		return err
	}
	es.depth++
	for i, key := range node.Keys {
		if i > 0 {
			if err := writeString(w, es, punct(es, ",")); err != nil {
				return err
			}
		}
		if !es.minimal {
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		if err := writeKey(w, es, token.Quote(key), ":"); err != nil {
			return err
		}
		if !es.minimal {
			if err := writeString(w, es, " "); err != nil {
				return err
			}
		}
		if err := encode(node.Values[i], w, es, false); err != nil {
			return err
		}
	}
	es.depth--
	if !es.minimal && len(node.Keys) > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeString(w, es, punct(es, "}"))
}

// Helper functions for writing

func writeNL(w io.Writer, es *EncState) error {
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	if err := writeString(w, es, "\n"+indentString); err != nil {
		return err
	}
	es.col = len(indentString)
	return nil
}

func writeString(w io.Writer, es *EncState, s string) error {
	es.col += len(s)
	_, err := w.Write([]byte(s))
	return err
}

func writeKey(w io.Writer, es *EncState, key, sep string) error {
	k := key
	if es.format == format.TernFormat && token.NeedsQuote(key) {
		k = token.Quote(key)
	}
	k = applyColor(es, ir.ObjectType, FieldColor, k)
	if err := writeString(w, es, k); err != nil {
		return err
	}
	return writeString(w, es, punct(es, sep))
}

func punct(es *EncState, s string) string {
	return applyColor(es, ir.ObjectType, SepColor, s)
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}
