package term

import (
	"fmt"

	"github.com/foltl/foltl/internal/ident"
)

// Integer builds the constant integer term n.
func Integer(n int64) Term {
	return intern(fmt.Sprintf("I:%d", n), node{variant: VInteger, i64: n})
}

// Real builds the constant real term x.
func Real(x float64) Term {
	return intern(fmt.Sprintf("R:%x", x), node{variant: VReal, f64: x})
}

// BooleanConst builds the constant truth value b. Named to avoid
// colliding with the Boolean Type constructor.
func BooleanConst(b bool) Term {
	return intern(fmt.Sprintf("B:%t", b), node{variant: VBoolean, b: b})
}

// Variable builds a free or bound first-order variable named by name.
func Variable(name ident.Label) Term {
	return intern("V:"+name.String(), node{variant: VVariable, lbl: name})
}

// Object builds a term that names entity. The term does not keep entity
// (or its owning Root) alive on its own (invariant E2): the reference is
// weak and Entity() returns the zero *Entity once the owner is gone.
func Object(entity *Entity) Term {
	key := fmt.Sprintf("O:%p", entity)
	return intern(key, node{variant: VObject, ent: newWeakEntity(entity)})
}

func requireArity(args []Term, min int, tag string) {
	if len(args) < min {
		panic(fmt.Sprintf("term: %s requires at least %d arguments, got %d", tag, min, len(args)))
	}
}

// Equal builds an equality atom over two or more arguments, true iff all
// arguments are structurally equal.
func Equal(args ...Term) Term {
	requireArity(args, 2, "Equal")
	return intern(keyOfKids("Eq", args), node{variant: VEqual, kids: append([]Term(nil), args...)})
}

// Distinct builds an atom true iff every pair among args is unequal.
func Distinct(args ...Term) Term {
	requireArity(args, 2, "Distinct")
	return intern(keyOfKids("Ds", args), node{variant: VDistinct, kids: append([]Term(nil), args...)})
}

// Atom builds an uninterpreted-predicate application: head applied to
// args. head is itself a Term (typically an Object naming the predicate
// symbol) so that predicate identity follows the same hash-consing rule
// as everything else.
func Atom(head Term, args ...Term) Term {
	kids := append([]Term{head}, args...)
	return intern(keyOfKids("At", kids), node{variant: VAtom, kids: kids})
}

// Exists builds an existentially quantified formula over binds.
func Exists(binds []Decl, body Term) Term {
	return intern(keyOfBinder("Ex", binds, body), node{variant: VExists, binds: append([]Decl(nil), binds...), kids: []Term{body}})
}

// Forall builds a universally quantified formula over binds.
func Forall(binds []Decl, body Term) Term {
	return intern(keyOfBinder("Fa", binds, body), node{variant: VForall, binds: append([]Decl(nil), binds...), kids: []Term{body}})
}

// Negation builds the logical negation of operand.
func Negation(operand Term) Term {
	return intern(keyOfKids("Ng", []Term{operand}), node{variant: VNegation, kids: []Term{operand}})
}

// Conjunction builds the logical AND of two or more arguments.
func Conjunction(args ...Term) Term {
	requireArity(args, 2, "Conjunction")
	return intern(keyOfKids("Cj", args), node{variant: VConjunction, kids: append([]Term(nil), args...)})
}

// Disjunction builds the logical OR of two or more arguments.
func Disjunction(args ...Term) Term {
	requireArity(args, 2, "Disjunction")
	return intern(keyOfKids("Dj", args), node{variant: VDisjunction, kids: append([]Term(nil), args...)})
}

// Implication builds left -> right.
func Implication(left, right Term) Term {
	return intern(keyOfKids("Im", []Term{left, right}), node{variant: VImplication, kids: []Term{left, right}})
}

// Ite builds an if-then-else term: guard selects between ifTrue and
// ifFalse.
func Ite(guard, ifTrue, ifFalse Term) Term {
	return intern(keyOfKids("It", []Term{guard, ifTrue, ifFalse}), node{variant: VIte, kids: []Term{guard, ifTrue, ifFalse}})
}

// Lambda builds a functional abstraction over params with the given body.
func Lambda(params []Decl, body Term) Term {
	return intern(keyOfBinder("Lm", params, body), node{variant: VLambda, binds: append([]Decl(nil), params...), kids: []Term{body}})
}

func unaryTemporalCtor(tag string, v Variant) func(Term) Term {
	return func(operand Term) Term {
		return intern(keyOfKids(tag, []Term{operand}), node{variant: v, kids: []Term{operand}})
	}
}

func binaryTemporalCtor(tag string, v Variant) func(Term, Term) Term {
	return func(left, right Term) Term {
		return intern(keyOfKids(tag, []Term{left, right}), node{variant: v, kids: []Term{left, right}})
	}
}

// Tomorrow builds X(operand): operand holds at the next instant.
var Tomorrow = unaryTemporalCtor("Xf", VTomorrow)

// WTomorrow builds weak-X(operand): operand holds at the next instant, or
// there is no next instant.
var WTomorrow = unaryTemporalCtor("wX", VWTomorrow)

// Eventually builds F(operand): operand holds at some future instant.
var Eventually = unaryTemporalCtor("Fe", VEventually)

// Always builds G(operand): operand holds at every future instant.
var Always = unaryTemporalCtor("Gl", VAlways)

// Until builds left U right: left holds until right holds, and right
// eventually holds.
var Until = binaryTemporalCtor("Un", VUntil)

// Release builds left R right: right holds up to and including the first
// instant left holds, or forever.
var Release = binaryTemporalCtor("Rl", VRelease)

// Yesterday builds Y(operand): operand held at the previous instant (false
// at the initial instant).
var Yesterday = unaryTemporalCtor("Yt", VYesterday)

// WYesterday builds weak-Y(operand): operand held at the previous
// instant, or this is the initial instant.
var WYesterday = unaryTemporalCtor("wY", VWYesterday)

// Once builds O(operand): operand held at some past instant.
var Once = unaryTemporalCtor("On", VOnce)

// Historically builds H(operand): operand held at every past instant.
var Historically = unaryTemporalCtor("Hs", VHistorically)

// Since builds left S right: right held at some past instant and left has
// held at every instant since.
var Since = binaryTemporalCtor("Sn", VSince)

// Triggered builds left T right: right has held at every instant since
// (and including) the first time left held, or forever in the past.
var Triggered = binaryTemporalCtor("Tg", VTriggered)

// Minus builds the arithmetic negation of operand.
func Minus(operand Term) Term {
	return intern(keyOfKids("Mn", []Term{operand}), node{variant: VMinus, kids: []Term{operand}})
}

func binaryArithCtor(tag string, v Variant) func(Term, Term) Term {
	return func(left, right Term) Term {
		return intern(keyOfKids(tag, []Term{left, right}), node{variant: v, kids: []Term{left, right}})
	}
}

// Sum builds left + right.
var Sum = binaryArithCtor("Sm", VSum)

// Product builds left * right.
var Product = binaryArithCtor("Pr", VProduct)

// Difference builds left - right.
var Difference = binaryArithCtor("Df", VDifference)

// Division builds left / right.
var Division = binaryArithCtor("Dv", VDivision)

// LessThan builds left < right.
var LessThan = binaryArithCtor("Lt", VLessThan)

// LessThanEq builds left <= right.
var LessThanEq = binaryArithCtor("Le", VLessThanEq)

// GreaterThan builds left > right.
var GreaterThan = binaryArithCtor("Gt", VGreaterThan)

// GreaterThanEq builds left >= right.
var GreaterThanEq = binaryArithCtor("Ge", VGreaterThanEq)

// Error builds a term that records a construction or typing failure:
// source is the term the failure was raised against (the zero Term if
// there is none) and message explains why.
func Error(source Term, message string) Term {
	key := fmt.Sprintf("Er:%d:%s", source.id(), message)
	return intern(key, node{variant: VError, errSource: source, message: message})
}
