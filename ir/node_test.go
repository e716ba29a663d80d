package ir

import (
	"testing"
)

func TestNullVsEmpty(t *testing.T) {
	null := Null()
	empty := Literal("")
	if !null.IsNull() {
		t.Error("Null() not null")
	}
	if null.IsEmpty() {
		t.Error("Null() empty")
	}
	if empty.IsNull() {
		t.Error("Literal(\"\") null")
	}
	if !empty.IsEmpty() {
		t.Error("Literal(\"\") not empty")
	}
	if Equal(null, empty) {
		t.Error("null == empty")
	}
	if !Equal(null, Null()) {
		t.Error("null != null")
	}
}

func TestGetTotal(t *testing.T) {
	obj := Object()
	obj.Set("a", Literal("1"))
	// chained access through missing keys never fails
	v := obj.Get("nope").Get("deeper").Get("still")
	if !v.IsNull() {
		t.Errorf("chained get: got %v", v)
	}
	if _, ok := obj.Lookup("nope"); ok {
		t.Error("Lookup found missing key")
	}
	if got, ok := obj.Get("a").Int(); !ok || got != 1 {
		t.Errorf("a.Int = %d, %v", got, ok)
	}
}

func TestSetUpsert(t *testing.T) {
	obj := Object()
	obj.Set("a", Literal("1"))
	obj.Set("b", Literal("2"))
	obj.Set("a", Literal("3"))
	if n := obj.Len(); n != 2 {
		t.Fatalf("len = %d", n)
	}
	if obj.Keys[0] != "a" || obj.Keys[1] != "b" {
		t.Errorf("order = %v", obj.Keys)
	}
	if got, _ := obj.Get("a").Int(); got != 3 {
		t.Errorf("a = %d", got)
	}
	if err := Literal("x").Set("a", Null()); err == nil {
		t.Error("Set on literal: no error")
	}
}

type boolTest struct {
	in string
	v  bool
	ok bool
}

func TestBool(t *testing.T) {
	bts := []boolTest{
		{"true", true, true},
		{"TRUE", true, true},
		{"yes", true, true},
		{"Yes", true, true},
		{"1", true, true},
		{" 1 ", true, true},
		{"false", false, true},
		{"no", false, true},
		{"NO", false, true},
		{"0", false, true},
		{"maybe", false, false},
		{"2", false, false},
		{"", false, false},
	}
	for _, bt := range bts {
		v, ok := Literal(bt.in).Bool()
		if v != bt.v || ok != bt.ok {
			t.Errorf("Bool(%q) = %v, %v; want %v, %v", bt.in, v, ok, bt.v, bt.ok)
		}
	}
	if _, ok := Null().Bool(); ok {
		t.Error("null has bool value")
	}
}

func TestLazyNumbers(t *testing.T) {
	if f, ok := Literal("-2.5e1").Float(); !ok || f != -25.0 {
		t.Errorf("Float = %v, %v", f, ok)
	}
	if _, ok := Literal("x").Float(); ok {
		t.Error("Float parsed garbage")
	}
	if i, ok := Literal("42").Int(); !ok || i != 42 {
		t.Errorf("Int = %v, %v", i, ok)
	}
	if _, ok := Literal("4.2").Int(); ok {
		t.Error("Int parsed float text")
	}
	if _, ok := Object().Int(); ok {
		t.Error("Int on object")
	}
}

func TestEqualObjects(t *testing.T) {
	a := Object()
	a.Set("x", Literal("1"))
	a.Set("y", Object())

	b := Object()
	b.Set("y", Object())
	b.Set("x", Literal("1"))

	if !Equal(a, b) {
		t.Error("order-independent equality failed")
	}
	b.Set("z", Null())
	if Equal(a, b) {
		t.Error("unmatched key passed equality")
	}
}

func TestCloneIndependent(t *testing.T) {
	a := Object()
	a.Set("x", Literal("1"))
	c := a.Clone()
	c.Set("x", Literal("2"))
	if got, _ := a.Get("x").Int(); got != 1 {
		t.Errorf("clone aliases base: %d", got)
	}
	if !Equal(a, a.Clone()) {
		t.Error("clone not equal")
	}
}

func TestPath(t *testing.T) {
	root := Object()
	b := Object()
	root.Set("a", b)
	leaf := Literal("1")
	b.Set("the key", leaf)
	if got := leaf.Path(); got != `a."the key"` {
		t.Errorf("path = %q", got)
	}
	got, err := root.GetPath("a")
	if err != nil || got != b {
		t.Errorf("GetPath(a) = %v, %v", got, err)
	}
	if _, err := root.GetPath("a.zzz"); err == nil {
		t.Error("GetPath missing: no error")
	}
}

func TestResolveRefs(t *testing.T) {
	root := Object()
	root.Set("a", &Node{Type: LiteralType, Text: ptr("sym"), Ref: true})
	root.Set("b", &Node{Type: LiteralType, Text: ptr("gone"), Ref: true})
	ResolveRefs(root, map[string]*Node{"sym": Literal("resolved")})
	if got, _ := root.Get("a").String(); got != "resolved" {
		t.Errorf("a = %q", got)
	}
	if !root.Get("b").IsNull() {
		t.Error("missing ref not a soft miss")
	}
}

func ptr(v string) *string { return &v }
