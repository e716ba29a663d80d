// Package parse parses tern and JSON text into IR nodes.
package parse

import (
	"fmt"
	"strconv"

	"github.com/tern-format/go-tern/debug"
	"github.com/tern-format/go-tern/format"
	"github.com/tern-format/go-tern/ir"
	"github.com/tern-format/go-tern/token"
)

// Parse parses d into a value tree. The default format is tern;
// ParseJSON selects the strict JSON grammar.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.TernFormat, refs: true}
	for _, f := range opts {
		f(pOpts)
	}
	var (
		res *ir.Node
		err error
	)
	switch pOpts.format {
	case format.JSONFormat:
		res, err = parseJSONDoc(d, pOpts)
	case format.TernFormat:
		res, err = parseTernDoc(d, pOpts)
	default:
		return nil, fmt.Errorf("%w: cannot parse %s", format.ErrBadFormat, pOpts.format)
	}
	if debug.Parse() && err == nil {
		debug.Logf("parsed %s document:\n%v", pOpts.format, res)
	}
	return res, err
}

// ParseString is Parse over a string.
func ParseString(v string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(v), opts...)
}

// bareDelims end a bare value token. ':' is deliberately absent:
// values may contain it, keys are cut at it separately.
const bareDelims = token.Whitespace + "{}[],"

// ternParser is the lenient recursive-descent parser for the tern
// grammar. It best-effort consumes malformed structure rather than
// raising; only the iteration cap and trailing input abort.
type ternParser struct {
	c    *token.Cursor
	opts *parseOpts
}

func parseTernDoc(d []byte, opts *parseOpts) (*ir.Node, error) {
	p := &ternParser{c: token.NewCursor(d), opts: opts}
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	var (
		res *ir.Node
		err error
	)
	if ch := p.c.Ch(); ch == '{' || ch == '[' {
		res, err = p.value()
	} else {
		// bare root: key: value pairs up to EOF
		res = ir.Object()
		res.Pos = p.c.Pos()
		err = p.pairs(res, 0)
	}
	if err != nil {
		return nil, err
	}
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	if !p.c.EOF() {
		return nil, fmt.Errorf("%w: trailing input %s", ErrParse, p.c.Pos().Context(d))
	}
	return res, nil
}

// skipSpace consumes whitespace and commas, both insignificant
// between tern tokens.
func (p *ternParser) skipSpace() error {
	_, err := p.c.ConsumeWhile(token.Whitespace + ",")
	return err
}

func (p *ternParser) value() (*ir.Node, error) {
	pos := p.c.Pos()
	switch ch := p.c.Ch(); {
	case ch == 0:
		y := ir.Null()
		y.Pos = pos
		return y, nil
	case ch == '&' && p.opts.refs:
		p.c.Next()
		y, err := p.value()
		if err != nil {
			return nil, err
		}
		if y.Type == ir.LiteralType {
			y.Ref = true
		}
		return y, nil
	case ch == '{':
		p.c.Next()
		y := ir.Object()
		y.Pos = pos
		return y, p.pairs(y, '}')
	case ch == '[':
		p.c.Next()
		y := ir.Object()
		y.Pos = pos
		return y, p.elements(y)
	case ch == '"':
		v, err := p.quoted()
		if err != nil {
			return nil, err
		}
		y := ir.Literal(v)
		y.Pos = pos
		return y, nil
	default:
		bare, err := p.c.ConsumeUntil(bareDelims)
		if err != nil {
			return nil, fmt.Errorf("%w: bare token %s", err, pos)
		}
		if bare == "" {
			// stray structural byte; consume it and move on
			p.c.Next()
			y := ir.Null()
			y.Pos = pos
			return y, nil
		}
		var y *ir.Node
		if bare == "null" {
			y = ir.Null()
		} else {
			y = ir.Literal(bare)
		}
		y.Pos = pos
		return y, nil
	}
}

// pairs parses key: value pairs into obj until term (or EOF when
// term is 0, the bare-root case).
func (p *ternParser) pairs(obj *ir.Node, term byte) error {
	pos := p.c.Pos()
	for i := 0; ; i++ {
		if i >= maxIters {
			return fmt.Errorf("%w: object %s", ErrEndless, pos)
		}
		if err := p.skipSpace(); err != nil {
			return err
		}
		ch := p.c.Ch()
		if ch == 0 {
			return nil
		}
		if term != 0 && ch == term {
			p.c.Next()
			return nil
		}
		key, err := p.key()
		if err != nil {
			return err
		}
		if err := p.skipSpace(); err != nil {
			return err
		}
		if p.c.Ch() == ':' {
			p.c.Next()
		}
		if err := p.skipSpace(); err != nil {
			return err
		}
		val, err := p.value()
		if err != nil {
			return err
		}
		if key == "" {
			// keyless value; drop it and keep going
			continue
		}
		obj.Set(key, val)
	}
}

func (p *ternParser) key() (string, error) {
	if p.c.Ch() == '"' {
		return p.quoted()
	}
	key, err := p.c.ConsumeUntil(":" + bareDelims)
	if err != nil {
		return "", fmt.Errorf("%w: key %s", err, p.c.Pos())
	}
	if key == "" && p.c.Ch() != ':' {
		// stray byte where a key should be
		p.c.Next()
	}
	return key, nil
}

func (p *ternParser) elements(arr *ir.Node) error {
	pos := p.c.Pos()
	n := 0
	for i := 0; ; i++ {
		if i >= maxIters {
			return fmt.Errorf("%w: array %s", ErrEndless, pos)
		}
		if err := p.skipSpace(); err != nil {
			return err
		}
		ch := p.c.Ch()
		if ch == ']' {
			p.c.Next()
			break
		}
		if ch == 0 {
			break
		}
		elt, err := p.value()
		if err != nil {
			return err
		}
		arr.Set(strconv.Itoa(n), elt)
		n++
	}
	if p.opts.synthLength {
		arr.Set(ir.LengthKey, ir.Literal(strconv.Itoa(n)))
	}
	return nil
}

// quoted consumes a double-quoted token. Escapes are generic: a
// backslash makes the following byte literal. An unterminated quote
// yields the text up to EOF, per the lenient contract.
func (p *ternParser) quoted() (string, error) {
	pos := p.c.Pos()
	p.c.Next()
	var d []byte
	for i := 0; ; i++ {
		if i >= maxIters {
			return "", fmt.Errorf("%w: quoted token %s", ErrEndless, pos)
		}
		ch := p.c.Ch()
		if ch == 0 {
			break
		}
		if ch == '"' {
			p.c.Next()
			break
		}
		if ch == '\\' {
			ch = p.c.Next()
			if ch == 0 {
				break
			}
		}
		d = append(d, ch)
		p.c.Next()
	}
	return string(d), nil
}
