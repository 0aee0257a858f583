package foltl

import "testing"

func TestConstructorsBuildAFormula(t *testing.T) {
	root := NewRoot(StringLabel("test"), Forbidden)
	e := NewEntity(StringLabel("p"), FunctionType(nil, BooleanType()), root, State)
	p := Atom(Object(e))
	f := Always(Until(p, Negation(p)))
	if f.Type() != BooleanType() {
		t.Fatalf("expected a Boolean-typed formula, got %v", f.Type())
	}
}

func TestEncodeRoundTripsThroughFacade(t *testing.T) {
	root := NewRoot(StringLabel("test2"), Forbidden)
	e := NewEntity(StringLabel("q"), FunctionType(nil, BooleanType()), root, State)
	p := Atom(Object(e))
	auto, err := Encode(Eventually(p))
	if err != nil {
		t.Fatalf("Encode returned an error: %v", err)
	}
	if !auto.Anchor.IsValid() {
		t.Fatalf("expected a valid anchor term")
	}
}

func TestModuleDeclareAndResolve(t *testing.T) {
	m := NewModule(StringLabel("m"))
	m2, ref, err := m.Declare(StringLabel("x"), BooleanType(), State)
	if err != nil {
		t.Fatalf("Declare returned an error: %v", err)
	}
	if !ref.IsValid() {
		t.Fatalf("Declare should return a valid reference term")
	}
	got, err := m2.Resolve(StringLabel("x"))
	if err != nil {
		t.Fatalf("Resolve returned an error: %v", err)
	}
	if got != ref {
		t.Fatalf("Resolve(x) = %v, want %v", got, ref)
	}
}

func TestRewritePolaritySwapThroughFacade(t *testing.T) {
	root := NewRoot(StringLabel("test3"), Forbidden)
	e := NewEntity(StringLabel("r"), FunctionType(nil, BooleanType()), root, State)
	p := Atom(Object(e))
	got := Rewrite(Eventually(p), FutureToPast)
	want := Once(p)
	if got != want {
		t.Fatalf("Rewrite(Eventually(p), FutureToPast) = %v, want %v", got, want)
	}
}
