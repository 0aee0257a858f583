package encoder

import (
	"github.com/foltl/foltl/internal/ident"
	"github.com/foltl/foltl/internal/term"
)

// encodeState accumulates the side effects of one SNF pass over one
// formula: every fresh surrogate it mints, the equations tying surrogates
// to their unfolding (asserted at every state, so they belong to both the
// initial-state and transition-relation conjuncts), the extra constraints
// that only hold at the initial state, and the closing obligations that
// belong to the final-state conjunct (the "has this promise been kept"
// side of Eventually/Until).
type encodeState struct {
	root   *term.Root
	prime  *primer
	snf    map[uint64]term.Term
	global []term.Term
	init   []term.Term
	final  []term.Term
	// future records whether any Tomorrow/WTomorrow/Eventually/Always/
	// Until/Release surrogate was minted, deciding which of the two
	// top-level closing schemas (§4.5.4) applies to the whole formula.
	future bool
	// surrogates collects every x_ψ (and, once minted, the top-level
	// anchor) this pass declared, standing in for Γ.resolve() (§4.5.1):
	// a Stage adopts these on its downstream once encoding finishes.
	surrogates []*term.Entity
}

func newEncodeState() *encodeState {
	root := term.NewRoot(ident.String("encoder"), term.Allowed)
	return &encodeState{
		root:  root,
		prime: newPrimer(root),
		snf:   make(map[uint64]term.Term),
	}
}

// freshSurrogate mints x_ψ: Function[fv_types, Boolean] declared with
// Role::State (§4.5.3) — every surrogate the encoder introduces, and the
// top-level anchor, is a state variable the transition relation pins
// down, never an input or output.
func (st *encodeState) freshSurrogate(tag string) term.Term {
	name := ident.Fresh(ident.String(tag))
	e := term.NewEntity(name, term.FunctionType(nil, term.BooleanType()), st.root, term.State)
	st.surrogates = append(st.surrogates, e)
	return term.Atom(term.Object(e))
}

// encode computes the SNF value of t: a non-temporal term built from t's
// structure with every temporal subformula replaced by the surrogate atom
// that stands for it, recording the equations that pin the surrogate's
// meaning down (§4.5.3's twelve-operator table).
func (st *encodeState) encode(t term.Term) term.Term {
	if cached, ok := st.snf[t.UniqueID()]; ok {
		return cached
	}
	var out term.Term
	if t.Variant().IsTemporal() {
		out = st.encodeTemporal(t)
	} else {
		out = rebuildChildren(t, st.encode)
	}
	st.snf[t.UniqueID()] = out
	return out
}

func (st *encodeState) encodeTemporal(t term.Term) term.Term {
	switch t.Variant() {
	case term.VTomorrow, term.VWTomorrow, term.VEventually, term.VAlways, term.VUntil, term.VRelease:
		st.future = true
	}

	switch t.Variant() {
	case term.VTomorrow:
		sp := st.encode(t.Operand())
		s := st.freshSurrogate("Xf")
		st.global = append(st.global, biconditional(s, st.prime.prime(sp)))
		return s

	case term.VWTomorrow:
		// Collapsed to the strong form: over the unbounded traces this
		// encoding targets there is always a next state, so weak and
		// strong tomorrow coincide.
		sp := st.encode(t.Operand())
		s := st.freshSurrogate("wXf")
		st.global = append(st.global, biconditional(s, st.prime.prime(sp)))
		return s

	case term.VEventually:
		sp := st.encode(t.Operand())
		s := st.freshSurrogate("Fe")
		rec := term.Disjunction(sp, s)
		st.global = append(st.global, biconditional(s, st.prime.prime(rec)))
		st.final = append(st.final, term.Negation(s))
		return rec

	case term.VAlways:
		sp := st.encode(t.Operand())
		s := st.freshSurrogate("Gl")
		rec := term.Conjunction(sp, s)
		st.global = append(st.global, biconditional(s, st.prime.prime(rec)))
		st.final = append(st.final, s)
		return rec

	case term.VUntil:
		spL, spR := st.encode(t.Left()), st.encode(t.Right())
		s := st.freshSurrogate("Un")
		rec := term.Disjunction(spR, term.Conjunction(spL, s))
		st.global = append(st.global, biconditional(s, st.prime.prime(rec)))
		st.final = append(st.final, term.Negation(s))
		return rec

	case term.VRelease:
		spL, spR := st.encode(t.Left()), st.encode(t.Right())
		s := st.freshSurrogate("Rl")
		rec := term.Conjunction(spR, term.Disjunction(spL, s))
		st.global = append(st.global, biconditional(s, st.prime.prime(rec)))
		st.final = append(st.final, s)
		return rec

	case term.VYesterday:
		sp := st.encode(t.Operand())
		s := st.freshSurrogate("Yt")
		st.global = append(st.global, biconditional(st.prime.prime(s), sp))
		st.init = append(st.init, term.Negation(s))
		return s

	case term.VWYesterday:
		sp := st.encode(t.Operand())
		s := st.freshSurrogate("wYt")
		st.global = append(st.global, biconditional(st.prime.prime(s), sp))
		st.init = append(st.init, s)
		return s

	case term.VOnce:
		sp := st.encode(t.Operand())
		s := st.freshSurrogate("On")
		rec := term.Disjunction(sp, s)
		st.global = append(st.global, biconditional(st.prime.prime(s), rec))
		st.init = append(st.init, term.Negation(s))
		return rec

	case term.VHistorically:
		sp := st.encode(t.Operand())
		s := st.freshSurrogate("Hs")
		rec := term.Conjunction(sp, s)
		st.global = append(st.global, biconditional(st.prime.prime(s), rec))
		st.init = append(st.init, s)
		return rec

	case term.VSince:
		spL, spR := st.encode(t.Left()), st.encode(t.Right())
		s := st.freshSurrogate("Sn")
		rec := term.Disjunction(spR, term.Conjunction(spL, s))
		st.global = append(st.global, biconditional(st.prime.prime(s), rec))
		st.init = append(st.init, term.Negation(s))
		return rec

	case term.VTriggered:
		spL, spR := st.encode(t.Left()), st.encode(t.Right())
		s := st.freshSurrogate("Tg")
		rec := term.Conjunction(spR, term.Disjunction(spL, s))
		st.global = append(st.global, biconditional(st.prime.prime(s), rec))
		st.init = append(st.init, s)
		return rec

	default:
		return t
	}
}
