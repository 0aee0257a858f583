package encoder

import (
	"github.com/foltl/foltl/internal/ident"
	"github.com/foltl/foltl/internal/term"
)

// FreeVarOccurrences counts how many times each free Variable occurs in t,
// supplementing term.FreeVars (which only reports the distinct set) with
// per-name frequency — used to flag formulas where a single free variable
// dominates a quantifier-free fragment, a cheap diagnostic the bridge can
// surface before ever talking to an SMT process.
func FreeVarOccurrences(t term.Term) map[ident.Label]int {
	bound := map[ident.Label]int{}
	counts := map[ident.Label]int{}

	var walk func(term.Term)
	walk = func(u term.Term) {
		switch u.Variant() {
		case term.VVariable:
			name := u.VarName()
			if bound[name] == 0 {
				counts[name]++
			}
		case term.VExists, term.VForall, term.VLambda:
			for _, d := range u.Binds() {
				bound[d.Name]++
			}
			walk(u.Body())
			for _, d := range u.Binds() {
				bound[d.Name]--
			}
		case term.VAtom:
			walk(u.Head())
			for _, a := range u.AtomArgs() {
				walk(a)
			}
		case term.VInteger, term.VReal, term.VBoolean, term.VObject, term.VError:
			// leaves with no Term children beyond what Rewrite/prime
			// already special-case elsewhere
		default:
			if a, ok := term.To[term.Atomic](u); ok {
				for _, x := range a.Args() {
					walk(x)
				}
				return
			}
			if un, ok := term.To[term.Unary](u); ok {
				walk(un.Operand())
				return
			}
			if b, ok := term.To[term.Binary](u); ok {
				walk(b.Left())
				walk(b.Right())
				return
			}
			if tn, ok := term.To[term.Ternary](u); ok {
				walk(tn.Guard())
				walk(tn.IfTrue())
				walk(tn.IfFalse())
			}
		}
	}
	walk(t)
	return counts
}
