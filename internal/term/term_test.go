package term

import (
	"testing"

	"github.com/foltl/foltl/internal/ident"
)

func TestHashConsingIdentity(t *testing.T) {
	a := Conjunction(BooleanConst(true), BooleanConst(false))
	b := Conjunction(BooleanConst(true), BooleanConst(false))
	if a != b {
		t.Fatalf("two structurally identical Conjunctions did not intern to the same Term")
	}
	if a.UniqueID() != b.UniqueID() {
		t.Fatalf("UniqueID should agree for interned-equal Terms")
	}

	c := Conjunction(BooleanConst(true), BooleanConst(true))
	if a == c {
		t.Fatalf("structurally distinct Conjunctions must not share an allocation")
	}
}

func TestVariableInterning(t *testing.T) {
	x1 := Variable(ident.String("x"))
	x2 := Variable(ident.String("x"))
	if x1 != x2 {
		t.Fatalf("Variable(\"x\") should intern across calls")
	}
}

func TestTypeOfArithmetic(t *testing.T) {
	sum := Sum(Integer(1), Integer(2))
	if sum.Type().Variant() != TInteger {
		t.Fatalf("Sum(int, int) type = %v, want Integer", sum.Type())
	}
	mixed := Sum(Integer(1), Real(2.5))
	if mixed.Type().Variant() != TReal {
		t.Fatalf("Sum(int, real) type = %v, want Real", mixed.Type())
	}
}

func TestTypeOfPropagatesError(t *testing.T) {
	bad := Sum(BooleanConst(true), Integer(1))
	if bad.Type().Variant() != TError {
		t.Fatalf("Sum(bool, int) type = %v, want Error", bad.Type())
	}
	wrapped := Negation(bad)
	if wrapped.Type().Variant() != TError {
		t.Fatalf("Negation of an ill-typed term should itself be Error, got %v", wrapped.Type())
	}
}

func TestIteRequiresMatchingBranches(t *testing.T) {
	ok := Ite(BooleanConst(true), Integer(1), Integer(2))
	if ok.Type().Variant() != TInteger {
		t.Fatalf("well-typed Ite type = %v, want Integer", ok.Type())
	}
	bad := Ite(BooleanConst(true), Integer(1), Real(2))
	if bad.Type().Variant() != TError {
		t.Fatalf("Ite with mismatched branches should type as Error, got %v", bad.Type())
	}
}

func TestMatchDispatchesByVariant(t *testing.T) {
	x := Variable(ident.String("x"))
	label := Match(x,
		On(VInteger, func(Term) string { return "int" }),
		On(VVariable, func(Term) string { return "var" }),
	)
	if label != "var" {
		t.Fatalf("Match dispatched to %q, want %q", label, "var")
	}
}

func TestMatchPanicsWhenNonExhaustive(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Match to panic on an uncovered variant")
		}
	}()
	Match(Integer(1), On(VReal, func(Term) string { return "real" }))
}

func TestFragmentMembership(t *testing.T) {
	tom := Tomorrow(BooleanConst(true))
	if tom.InFragment(FragmentFirstOrder) {
		t.Fatalf("Tomorrow(...) should not be in FragmentFirstOrder")
	}
	if !tom.InFragment(FragmentTemporal) {
		t.Fatalf("Tomorrow(...) should be in FragmentTemporal")
	}
}

func TestToDowncast(t *testing.T) {
	neg := Negation(BooleanConst(true))
	u, ok := To[Unary](neg)
	if !ok || u.Operand() != BooleanConst(true) {
		t.Fatalf("To[Unary] failed on Negation")
	}
	if _, ok := To[Binary](neg); ok {
		t.Fatalf("To[Binary] should fail on a unary term")
	}
}

func TestFreeVars(t *testing.T) {
	x, y := ident.String("x"), ident.String("y")
	p := Variable(x)
	q := Variable(y)
	body := Conjunction(Equal(p, q), BooleanConst(true))
	bound := Exists([]Decl{NewDecl(x, IntegerType(), Rigid)}, body)

	free := FreeVars(bound)
	if len(free) != 1 || free[0] != y {
		t.Fatalf("FreeVars(exists x. x = y /\\ true) = %v, want [y]", free)
	}
	if IsClosed(bound) {
		t.Fatalf("formula with a free variable should not be reported as closed")
	}
}

func TestObjectWeakEntity(t *testing.T) {
	root := NewRoot(ident.String("root"), Forbidden)
	e := NewEntity(ident.String("foo"), BooleanType(), root, State)
	obj := Object(e)
	if obj.Entity() != e {
		t.Fatalf("Object(e).Entity() should resolve back to e while e is alive")
	}
}

func TestAtomHeadMustBeFunctionTyped(t *testing.T) {
	root := NewRoot(ident.String("root"), Forbidden)
	e := NewEntity(ident.String("p"), BooleanType(), root, State)
	a := Atom(Object(e))
	if a.Type().Variant() != TError {
		t.Fatalf("Atom with a non-Function-typed head should type as Error, got %v", a.Type())
	}
}

func TestAtomArityMustMatchHeadParameters(t *testing.T) {
	root := NewRoot(ident.String("root"), Forbidden)
	e := NewEntity(ident.String("p"), FunctionType([]Type{IntegerType()}, BooleanType()), root, State)
	a := Atom(Object(e), Integer(1), Integer(2))
	if a.Type().Variant() != TError {
		t.Fatalf("Atom with a mismatched arity should type as Error, got %v", a.Type())
	}
}

func TestAtomWellTypedHeadAndArity(t *testing.T) {
	root := NewRoot(ident.String("root"), Forbidden)
	e := NewEntity(ident.String("p"), FunctionType([]Type{IntegerType()}, BooleanType()), root, State)
	a := Atom(Object(e), Integer(1))
	if a.Type() != BooleanType() {
		t.Fatalf("well-typed Atom should be Boolean, got %v", a.Type())
	}
}
