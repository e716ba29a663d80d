package parse

import (
	"errors"
	"testing"

	"github.com/tern-format/go-tern/ir"
)

type parseTest struct {
	in string
	e  error
}

func TestParseTernOK(t *testing.T) {
	pts := []parseTest{
		{in: ``},
		{in: `a: 1`},
		{in: `a: 1 b: 2`},
		{in: "a: 1\nb: 2"},
		{in: `{}`},
		{in: `{ a: 1 }`},
		{in: `{a:1 b:{c:"x"}}`},
		{in: `a: { b: { c: deep } }`},
		{in: `a: []`},
		{in: `a: [1, 2, 3]`},
		{in: `a: [ x y z ]`},
		{in: `a: [[1] [2]]`},
		{in: `a: "quoted \"text\" with \\ escapes"`},
		{in: `a: "unterminated`},
		{in: `"spaced key": 1`},
		{in: `a: &ref`},
		{in: `a: true b: yes c: 0`},
		{in: `a: null`},
		{in: "a: 1,\nb: 2"},
		{in: `url: http://example.com/x`},
	}
	for _, pt := range pts {
		_, err := ParseString(pt.in)
		if !errors.Is(err, pt.e) {
			t.Errorf("Parse(%q) err = %v, want %v", pt.in, err, pt.e)
		}
	}
}

func TestParseTernScenario(t *testing.T) {
	y, err := ParseString("a: 1\r\nb: { c: \"x\" }")
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := y.Get("a").Int(); !ok || got != 1 {
		t.Errorf("a.Int = %d, %v", got, ok)
	}
	if got, ok := y.Get("b").Get("c").String(); !ok || got != "x" {
		t.Errorf("b.c.String = %q, %v", got, ok)
	}
}

func TestParseTernLazyLiterals(t *testing.T) {
	y, err := ParseString(`n: 01.50 b: YES w: word`)
	if err != nil {
		t.Fatal(err)
	}
	// numbers stay text until read
	if got, _ := y.Get("n").String(); got != "01.50" {
		t.Errorf("n = %q", got)
	}
	if f, ok := y.Get("n").Float(); !ok || f != 1.5 {
		t.Errorf("n.Float = %v, %v", f, ok)
	}
	if b, ok := y.Get("b").Bool(); !ok || !b {
		t.Errorf("b.Bool = %v, %v", b, ok)
	}
	if _, ok := y.Get("w").Bool(); ok {
		t.Error("w.Bool parsed")
	}
}

func TestParseTernArrays(t *testing.T) {
	y, err := ParseString(`a: [10, 20, 30]`)
	if err != nil {
		t.Fatal(err)
	}
	elts, ok := y.Get("a").AsArray()
	if !ok || len(elts) != 3 {
		t.Fatalf("AsArray = %v, %v", elts, ok)
	}
	if got, _ := elts[1].Int(); got != 20 {
		t.Errorf("elts[1] = %d", got)
	}
	// arrays carry no Length key unless asked for
	if y.Get("a").Has(ir.LengthKey) {
		t.Error("unexpected Length key")
	}
	y, err = ParseString(`a: [10]`, SynthLength())
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := y.Get("a").Get(ir.LengthKey).Int(); got != 1 {
		t.Errorf("Length = %d", got)
	}
}

func TestParseTernRefs(t *testing.T) {
	y, err := ParseString(`a: &width b: plain`)
	if err != nil {
		t.Fatal(err)
	}
	if !y.Get("a").Ref {
		t.Error("a not a reference")
	}
	if y.Get("b").Ref {
		t.Error("b is a reference")
	}
	y, err = ParseString(`a: &width`, Refs(false))
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := y.Get("a").String(); got != "&width" {
		t.Errorf("refs disabled: a = %q", got)
	}
}

func TestParseTernNullLiteral(t *testing.T) {
	y, err := ParseString(`a: null b: "null" c: ""`)
	if err != nil {
		t.Fatal(err)
	}
	if !y.Get("a").IsNull() {
		t.Error("a not null")
	}
	if got, ok := y.Get("b").String(); !ok || got != "null" {
		t.Errorf("b = %q, %v", got, ok)
	}
	if !y.Get("c").IsEmpty() {
		t.Error("c not empty")
	}
}

// The tern parser is lenient where the JSON parser raises: the same
// malformed input yields a best-effort tree on one side and a
// syntax error on the other. The divergence is intentional.
func TestLeniencyDivergence(t *testing.T) {
	ins := []string{
		`{a 1}`,
		`{a: }`,
		`{a: 1`,
	}
	for _, in := range ins {
		if _, err := ParseString(in); err != nil {
			t.Errorf("tern Parse(%q) err = %v", in, err)
		}
		if _, err := ParseString(in, ParseJSON()); !errors.Is(err, ErrSyntax) {
			t.Errorf("json Parse(%q) err = %v, want ErrSyntax", in, err)
		}
	}
}

func TestParseTernTrailing(t *testing.T) {
	if _, err := ParseString(`{a: 1} extra`); !errors.Is(err, ErrParse) {
		t.Error("trailing input accepted")
	}
}
