package main

import (
	"fmt"

	"github.com/foltl/foltl/internal/ident"
	"github.com/foltl/foltl/internal/module"
	"github.com/foltl/foltl/internal/term"
)

// unaryOperators and binaryOperators map the --op flag's accepted names to
// the temporal/boolean constructor they pick. Binary entries read
// left/right from --left/--right; unary entries read --operand.
var unaryOperators = map[string]func(term.Term) term.Term{
	"tomorrow":     term.Tomorrow,
	"eventually":   term.Eventually,
	"always":       term.Always,
	"yesterday":    term.Yesterday,
	"once":         term.Once,
	"historically": term.Historically,
	"not":          term.Negation,
}

var binaryOperators = map[string]func(term.Term, term.Term) term.Term{
	"until":     term.Until,
	"release":   term.Release,
	"since":     term.Since,
	"triggered": term.Triggered,
	"and":       func(l, r term.Term) term.Term { return term.Conjunction(l, r) },
	"or":        func(l, r term.Term) term.Term { return term.Disjunction(l, r) },
	"implies":   term.Implication,
}

// buildFormula declares every name in atoms as a fresh Boolean proposition
// in a throwaway Module, then applies op to the resolved propositions
// named by operand (unary) or left/right (binary).
func buildFormula(atoms []string, op, operand, left, right string) (term.Term, error) {
	m := module.New(ident.String("folp-cli"))
	resolved := make(map[string]term.Term, len(atoms))
	for _, name := range atoms {
		label := ident.String(name)
		next, ref, err := m.Declare(label, term.BooleanType(), term.State)
		if err != nil {
			return term.Term{}, fmt.Errorf("declaring %s: %w", name, err)
		}
		m = next
		resolved[name] = ref
	}

	if fn, ok := unaryOperators[op]; ok {
		p, ok := resolved[operand]
		if !ok {
			return term.Term{}, fmt.Errorf("operand %q was not declared via --atom", operand)
		}
		return fn(p), nil
	}
	if fn, ok := binaryOperators[op]; ok {
		l, ok := resolved[left]
		if !ok {
			return term.Term{}, fmt.Errorf("left operand %q was not declared via --atom", left)
		}
		r, ok := resolved[right]
		if !ok {
			return term.Term{}, fmt.Errorf("right operand %q was not declared via --atom", right)
		}
		return fn(l, r), nil
	}
	return term.Term{}, fmt.Errorf("unknown operator %q", op)
}
