package encoder

import "github.com/foltl/foltl/internal/term"

// toNNF pushes every Negation down to the leaves, dualizing connectives and
// temporal operators along the way (Negation(Eventually(p)) becomes
// Always(Negation(p)), and so on through the full future/past operator
// table). Encode runs this once, ahead of SNF, so encodeTemporal never has
// to special-case a negated temporal subformula.
func toNNF(t term.Term) term.Term {
	return nnf(t, false)
}

func nnf(t term.Term, neg bool) term.Term {
	switch t.Variant() {
	case term.VNegation:
		return nnf(t.Operand(), !neg)

	case term.VConjunction:
		args := mapNNF(t.Args(), neg)
		if neg {
			return term.Disjunction(args...)
		}
		return term.Conjunction(args...)

	case term.VDisjunction:
		args := mapNNF(t.Args(), neg)
		if neg {
			return term.Conjunction(args...)
		}
		return term.Disjunction(args...)

	case term.VImplication:
		p, q := t.Left(), t.Right()
		if neg {
			return term.Conjunction(nnf(p, false), nnf(q, true))
		}
		return term.Disjunction(nnf(p, true), nnf(q, false))

	case term.VTomorrow:
		if neg {
			return term.WTomorrow(nnf(t.Operand(), true))
		}
		return term.Tomorrow(nnf(t.Operand(), false))
	case term.VWTomorrow:
		if neg {
			return term.Tomorrow(nnf(t.Operand(), true))
		}
		return term.WTomorrow(nnf(t.Operand(), false))
	case term.VEventually:
		if neg {
			return term.Always(nnf(t.Operand(), true))
		}
		return term.Eventually(nnf(t.Operand(), false))
	case term.VAlways:
		if neg {
			return term.Eventually(nnf(t.Operand(), true))
		}
		return term.Always(nnf(t.Operand(), false))
	case term.VUntil:
		l, r := t.Left(), t.Right()
		if neg {
			return term.Release(nnf(l, true), nnf(r, true))
		}
		return term.Until(nnf(l, false), nnf(r, false))
	case term.VRelease:
		l, r := t.Left(), t.Right()
		if neg {
			return term.Until(nnf(l, true), nnf(r, true))
		}
		return term.Release(nnf(l, false), nnf(r, false))

	case term.VYesterday:
		if neg {
			return term.WYesterday(nnf(t.Operand(), true))
		}
		return term.Yesterday(nnf(t.Operand(), false))
	case term.VWYesterday:
		if neg {
			return term.Yesterday(nnf(t.Operand(), true))
		}
		return term.WYesterday(nnf(t.Operand(), false))
	case term.VOnce:
		if neg {
			return term.Historically(nnf(t.Operand(), true))
		}
		return term.Once(nnf(t.Operand(), false))
	case term.VHistorically:
		if neg {
			return term.Once(nnf(t.Operand(), true))
		}
		return term.Historically(nnf(t.Operand(), false))
	case term.VSince:
		l, r := t.Left(), t.Right()
		if neg {
			return term.Triggered(nnf(l, true), nnf(r, true))
		}
		return term.Since(nnf(l, false), nnf(r, false))
	case term.VTriggered:
		l, r := t.Left(), t.Right()
		if neg {
			return term.Since(nnf(l, true), nnf(r, true))
		}
		return term.Triggered(nnf(l, false), nnf(r, false))

	case term.VIte:
		g := nnf(t.Guard(), false)
		a := nnf(t.IfTrue(), neg)
		b := nnf(t.IfFalse(), neg)
		return term.Ite(g, a, b)

	case term.VExists:
		body := nnf(t.Body(), neg)
		if neg {
			return term.Forall(t.Binds(), body)
		}
		return term.Exists(t.Binds(), body)
	case term.VForall:
		body := nnf(t.Body(), neg)
		if neg {
			return term.Exists(t.Binds(), body)
		}
		return term.Forall(t.Binds(), body)

	default:
		// Atoms, equalities, arithmetic, and literals: negation cannot be
		// pushed any further.
		if neg {
			return term.Negation(t)
		}
		return t
	}
}

func mapNNF(args []term.Term, neg bool) []term.Term {
	out := make([]term.Term, len(args))
	for i, a := range args {
		out[i] = nnf(a, neg)
	}
	return out
}
