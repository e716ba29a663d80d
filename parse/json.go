package parse

import (
	"fmt"
	"strconv"

	"github.com/tern-format/go-tern/ir"
	"github.com/tern-format/go-tern/token"
)

// jsonParser is the strict sibling of ternParser: missing
// delimiters and unexpected bytes abort the parse with ErrSyntax
// naming the offending byte and position.
type jsonParser struct {
	c    *token.Cursor
	doc  []byte
	opts *parseOpts
}

func parseJSONDoc(d []byte, opts *parseOpts) (*ir.Node, error) {
	p := &jsonParser{c: token.NewCursor(d), doc: d, opts: opts}
	res, err := p.value()
	if err != nil {
		return nil, err
	}
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	if !p.c.EOF() {
		return nil, p.errUnexpected("trailing input")
	}
	return res, nil
}

func (p *jsonParser) skipSpace() error {
	_, err := p.c.ConsumeWhile(token.Whitespace)
	return err
}

func (p *jsonParser) errUnexpected(what string) error {
	ch := p.c.Ch()
	if ch == 0 {
		return fmt.Errorf("%w: %s: unexpected end of input %s",
			ErrSyntax, what, p.c.Pos().Context(p.doc))
	}
	return fmt.Errorf("%w: %s: unexpected %q %s",
		ErrSyntax, what, ch, p.c.Pos().Context(p.doc))
}

func (p *jsonParser) value() (*ir.Node, error) {
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	pos := p.c.Pos()
	switch ch := p.c.Ch(); {
	case ch == '{':
		p.c.Next()
		y := ir.Object()
		y.Pos = pos
		return y, p.object(y, pos)
	case ch == '[':
		p.c.Next()
		y := ir.Object()
		y.Pos = pos
		return y, p.array(y, pos)
	case ch == '"':
		v, err := p.string()
		if err != nil {
			return nil, err
		}
		y := ir.Literal(v)
		y.Pos = pos
		return y, nil
	case ch == 't', ch == 'f', ch == 'n':
		return p.word(pos)
	case ch == '-' || (ch >= '0' && ch <= '9'):
		return p.number(pos)
	default:
		return nil, p.errUnexpected("value")
	}
}

func (p *jsonParser) object(obj *ir.Node, pos token.Pos) error {
	if err := p.skipSpace(); err != nil {
		return err
	}
	if p.c.Ch() == '}' {
		p.c.Next()
		return nil
	}
	for i := 0; ; i++ {
		if i >= maxIters {
			return fmt.Errorf("%w: object %s", ErrEndless, pos)
		}
		if err := p.skipSpace(); err != nil {
			return err
		}
		if p.c.Ch() != '"' {
			return p.errUnexpected("object key")
		}
		key, err := p.string()
		if err != nil {
			return err
		}
		if err := p.skipSpace(); err != nil {
			return err
		}
		if p.c.Ch() != ':' {
			return p.errUnexpected("after object key")
		}
		p.c.Next()
		val, err := p.value()
		if err != nil {
			return err
		}
		obj.Set(key, val)
		if err := p.skipSpace(); err != nil {
			return err
		}
		switch p.c.Ch() {
		case ',':
			p.c.Next()
		case '}':
			p.c.Next()
			return nil
		default:
			return p.errUnexpected("after object value")
		}
	}
}

func (p *jsonParser) array(arr *ir.Node, pos token.Pos) error {
	if err := p.skipSpace(); err != nil {
		return err
	}
	n := 0
	if p.c.Ch() == ']' {
		p.c.Next()
	} else {
		for i := 0; ; i++ {
			if i >= maxIters {
				return fmt.Errorf("%w: array %s", ErrEndless, pos)
			}
			elt, err := p.value()
			if err != nil {
				return err
			}
			arr.Set(strconv.Itoa(n), elt)
			n++
			if err := p.skipSpace(); err != nil {
				return err
			}
			if p.c.Ch() == ',' {
				p.c.Next()
				continue
			}
			if p.c.Ch() == ']' {
				p.c.Next()
				break
			}
			return p.errUnexpected("after array element")
		}
	}
	if p.opts.synthLength {
		arr.Set(ir.LengthKey, ir.Literal(strconv.Itoa(n)))
	}
	return nil
}

func (p *jsonParser) string() (string, error) {
	pos := p.c.Pos()
	p.c.Next()
	var d []byte
	for i := 0; ; i++ {
		if i >= maxIters {
			return "", fmt.Errorf("%w: string %s", ErrEndless, pos)
		}
		ch := p.c.Ch()
		if ch == 0 {
			return "", p.errUnexpected("in string")
		}
		if ch == '"' {
			p.c.Next()
			return string(d), nil
		}
		if ch == '\\' {
			ch = p.c.Next()
			if ch == 0 {
				return "", p.errUnexpected("in string escape")
			}
		}
		d = append(d, ch)
		p.c.Next()
	}
}

func (p *jsonParser) word(pos token.Pos) (*ir.Node, error) {
	w, err := p.c.ConsumeUntil(bareDelims + ":")
	if err != nil {
		return nil, fmt.Errorf("%w: word %s", err, pos)
	}
	var y *ir.Node
	switch w {
	case "true", "false":
		y = ir.Literal(w)
	case "null":
		y = ir.Null()
	default:
		return nil, fmt.Errorf("%w: value: unknown word %q %s",
			ErrSyntax, w, pos.Context(p.doc))
	}
	y.Pos = pos
	return y, nil
}

// number consumes a JSON number: optional leading '-', digits, at
// most one '.' fraction and one 'e' exponent. Unlike tern literals,
// the number is literalized eagerly: the stored text is the
// canonical formatting of the parsed value.
func (p *jsonParser) number(pos token.Pos) (*ir.Node, error) {
	start := p.c.Pos().Off
	if p.c.Ch() == '-' {
		p.c.Next()
	}
	if err := p.digits("number"); err != nil {
		return nil, err
	}
	isFloat := false
	if p.c.Ch() == '.' {
		isFloat = true
		p.c.Next()
		if err := p.digits("number fraction"); err != nil {
			return nil, err
		}
	}
	if ch := p.c.Ch(); ch == 'e' || ch == 'E' {
		isFloat = true
		p.c.Next()
		if ch := p.c.Ch(); ch == '+' || ch == '-' {
			p.c.Next()
		}
		if err := p.digits("number exponent"); err != nil {
			return nil, err
		}
	}
	// a second '.' or 'e' lands here and is reported as unexpected
	if ch := p.c.Ch(); ch == '.' || ch == 'e' || ch == 'E' {
		return nil, p.errUnexpected("number")
	}
	text := string(p.doc[start:p.c.Pos().Off])
	if !isFloat {
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			y := ir.Literal(strconv.FormatInt(v, 10))
			y.Pos = pos
			return y, nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad number %q %s", ErrSyntax, text, pos.Context(p.doc))
	}
	y := ir.Literal(strconv.FormatFloat(f, 'g', -1, 64))
	y.Pos = pos
	return y, nil
}

func (p *jsonParser) digits(what string) error {
	run, err := p.c.ConsumeWhile("0123456789")
	if err != nil {
		return fmt.Errorf("%w: %s %s", err, what, p.c.Pos())
	}
	if run == "" {
		return p.errUnexpected(what)
	}
	return nil
}
