// Package encoder turns a closed LTL+P formula into a finite triple of
// quantifier-bearing first-order formulas — an initial-state constraint,
// a transition-relation constraint, and a final-state constraint — whose
// conjunction is satisfiable iff the original formula is. Each of the
// twelve temporal operators is replaced by a fresh propositional
// surrogate plus an equation pinning the surrogate's value at one state
// to its operand's value and the surrogate's own value at an adjacent
// state (the stepped normal form, SNF), following the same shape the
// teacher's module engine uses for everything else in this tree: build a
// value once, thread it through a small accumulator, never mutate in
// place.
package encoder

import "github.com/foltl/foltl/internal/term"

// Automaton is the result of encoding one formula: Init constrains the
// first state, Transition constrains every pair of consecutive states,
// Final additionally constrains states the search accepts at (discharging
// any outstanding Eventually/Until promise), and Anchor is the fresh
// propositional atom whose truth at the initial state is equivalent to
// the original formula's truth.
type Automaton struct {
	Init       term.Term
	Transition term.Term
	Final      term.Term
	Anchor     term.Term
	// Surrogates lists every x_ψ and the anchor itself, in minting order
	// — Γ.resolve() (§4.5.1), the declarations a Stage adopts on its
	// downstream once a formula has been encoded.
	Surrogates []*term.Entity
}

// Encode builds the Automaton for formula, tagging its anchor surrogate
// "phi". See EncodeTagged to pick a different tag (useful when a caller
// encodes several independent formulas and wants their anchors visually
// distinguishable in a dumped Transition formula).
func Encode(formula term.Term) (Automaton, error) {
	return EncodeTagged(formula, "phi")
}

// EncodeTagged builds the Automaton for formula. formula must be closed and
// Boolean-typed; EncodeTagged first pushes negations to the leaves (toNNF),
// then computes SNF, then closes the result with a fresh anchor predicate,
// named using anchorTag, equated to the formula's top-level SNF value.
func EncodeTagged(formula term.Term, anchorTag string) (Automaton, error) {
	if formula.Type().Variant() == term.TError {
		return Automaton{}, &IllTypedFormulaError{Message: formula.Type().ErrMessage()}
	}

	st := newEncodeState()
	top := st.encode(toNNF(formula))

	anchor := st.freshSurrogate(anchorTag)
	if st.future {
		// Init: x_φ ; Transition: x_φ ↔ prime(φ') ; Final: ¬x_φ
		st.global = append(st.global, biconditional(anchor, st.prime.prime(top)))
		st.init = append(st.init, anchor)
		st.final = append(st.final, term.Negation(anchor))
	} else {
		// Init: ¬x_φ ; Transition: prime(x_φ) ↔ φ' ; Final: x_φ
		st.global = append(st.global, biconditional(st.prime.prime(anchor), top))
		st.init = append(st.init, term.Negation(anchor))
		st.final = append(st.final, anchor)
	}

	global := conjunctAll(st.global)
	init := conjunctAll(append([]term.Term{global}, st.init...))
	final := conjunctAll(st.final)

	return Automaton{
		Init:       init,
		Transition: global,
		Final:      final,
		Anchor:     anchor,
		Surrogates: st.surrogates,
	}, nil
}
