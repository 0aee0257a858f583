package term

import "github.com/foltl/foltl/internal/ident"

// FreeVars computes the set of Variable names occurring in t that are not
// bound by an enclosing Exists, Forall, or Lambda (§4.2's free-variable
// rule). The result preserves first-occurrence order and contains no
// duplicates.
func FreeVars(t Term) []ident.Label {
	bound := map[ident.Label]int{}
	seen := map[ident.Label]bool{}
	var out []ident.Label

	var walk func(Term)
	walk = func(u Term) {
		switch u.Variant() {
		case VVariable:
			name := u.VarName()
			if bound[name] == 0 && !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		case VExists, VForall, VLambda:
			for _, d := range u.Binds() {
				bound[d.Name]++
			}
			walk(u.Body())
			for _, d := range u.Binds() {
				bound[d.Name]--
			}
		case VError:
			if src := u.ErrSource(); src.IsValid() {
				walk(src)
			}
		case VInteger, VReal, VBoolean, VObject:
			// leaves with no Term children
		default:
			for _, k := range u.n.kids {
				walk(k)
			}
		}
	}
	walk(t)
	return out
}

// IsClosed reports whether t has no free variables.
func IsClosed(t Term) bool { return len(FreeVars(t)) == 0 }
