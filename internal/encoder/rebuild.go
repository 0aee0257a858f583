package encoder

import "github.com/foltl/foltl/internal/term"

// rebuildChildren reapplies fn to every immediate Term child of t and
// reconstructs a term of the same variant from the results, leaving
// literals (no Term children) untouched. Shared by snf (structural
// recursion through non-temporal connectives) and prime (structural
// recursion through every connective, temporal or not).
func rebuildChildren(t term.Term, fn func(term.Term) term.Term) term.Term {
	if t.Variant() == term.VAtom {
		head := fn(t.Head())
		args := t.AtomArgs()
		out := make([]term.Term, len(args))
		for i, a := range args {
			out[i] = fn(a)
		}
		return term.Atom(head, out...)
	}
	if u, ok := term.To[term.Unary](t); ok {
		return rebuildUnary(t.Variant(), fn(u.Operand()))
	}
	if b, ok := term.To[term.Binary](t); ok {
		return rebuildBinary(t.Variant(), fn(b.Left()), fn(b.Right()))
	}
	if tn, ok := term.To[term.Ternary](t); ok {
		return term.Ite(fn(tn.Guard()), fn(tn.IfTrue()), fn(tn.IfFalse()))
	}
	if a, ok := term.To[term.Atomic](t); ok {
		args := a.Args()
		out := make([]term.Term, len(args))
		for i, x := range args {
			out[i] = fn(x)
		}
		return rebuildAtomic(t.Variant(), out)
	}
	if q, ok := term.To[term.Quantifier](t); ok {
		return rebuildQuantifier(t.Variant(), q.Binds(), fn(q.Body()))
	}
	return t
}

func rebuildUnary(v term.Variant, operand term.Term) term.Term {
	switch v {
	case term.VNegation:
		return term.Negation(operand)
	case term.VMinus:
		return term.Minus(operand)
	case term.VTomorrow:
		return term.Tomorrow(operand)
	case term.VWTomorrow:
		return term.WTomorrow(operand)
	case term.VEventually:
		return term.Eventually(operand)
	case term.VAlways:
		return term.Always(operand)
	case term.VYesterday:
		return term.Yesterday(operand)
	case term.VWYesterday:
		return term.WYesterday(operand)
	case term.VOnce:
		return term.Once(operand)
	case term.VHistorically:
		return term.Historically(operand)
	default:
		return operand
	}
}

func rebuildBinary(v term.Variant, left, right term.Term) term.Term {
	switch v {
	case term.VImplication:
		return term.Implication(left, right)
	case term.VUntil:
		return term.Until(left, right)
	case term.VRelease:
		return term.Release(left, right)
	case term.VSince:
		return term.Since(left, right)
	case term.VTriggered:
		return term.Triggered(left, right)
	case term.VSum:
		return term.Sum(left, right)
	case term.VProduct:
		return term.Product(left, right)
	case term.VDifference:
		return term.Difference(left, right)
	case term.VDivision:
		return term.Division(left, right)
	case term.VLessThan:
		return term.LessThan(left, right)
	case term.VLessThanEq:
		return term.LessThanEq(left, right)
	case term.VGreaterThan:
		return term.GreaterThan(left, right)
	case term.VGreaterThanEq:
		return term.GreaterThanEq(left, right)
	default:
		return left
	}
}

func rebuildAtomic(v term.Variant, args []term.Term) term.Term {
	switch v {
	case term.VEqual:
		return term.Equal(args...)
	case term.VDistinct:
		return term.Distinct(args...)
	case term.VConjunction:
		return term.Conjunction(args...)
	case term.VDisjunction:
		return term.Disjunction(args...)
	default:
		return args[0]
	}
}

func rebuildQuantifier(v term.Variant, binds []term.Decl, body term.Term) term.Term {
	switch v {
	case term.VExists:
		return term.Exists(binds, body)
	case term.VForall:
		return term.Forall(binds, body)
	case term.VLambda:
		return term.Lambda(binds, body)
	default:
		return body
	}
}

func biconditional(a, b term.Term) term.Term {
	return term.Conjunction(term.Implication(a, b), term.Implication(b, a))
}

func conjunctAll(ts []term.Term) term.Term {
	switch len(ts) {
	case 0:
		return term.BooleanConst(true)
	case 1:
		return ts[0]
	default:
		return term.Conjunction(ts...)
	}
}
