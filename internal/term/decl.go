package term

import "github.com/foltl/foltl/internal/ident"

// Role distinguishes why a Decl or Entity exists, independently of its
// Type (§3.3). Rigid is time-invariant: a quantifier- or lambda-bound
// variable, or any module-level constant that does not change from state
// to state. Input, State, and Output classify the remaining declarations
// by where they sit in an automaton's data flow; the encoder declares
// every surrogate it mints with State (§4.5.3).
type Role uint8

const (
	// Rigid marks a binding that does not vary across states: the names
	// introduced by Exists/Forall/Lambda, and any module-level constant.
	Rigid Role = iota
	// Input marks a declaration whose value is supplied from outside the
	// automaton at every state.
	Input
	// State marks a declaration the automaton's transition relation
	// itself constrains from state to state (the role every encoder
	// surrogate is declared with).
	State
	// Output marks a declaration the automaton reports but does not
	// itself constrain.
	Output
)

func (r Role) String() string {
	switch r {
	case Rigid:
		return "rigid"
	case Input:
		return "input"
	case State:
		return "state"
	case Output:
		return "output"
	default:
		return "role(?)"
	}
}

// Decl is a single name/type binding carried by a binder (Exists, Forall,
// Lambda). Decls are plain values, not hash-consed: their Type is already
// interned, so comparing a Decl slice is cheap without its own pool.
type Decl struct {
	Name ident.Label
	Type Type
	Role Role
}

// NewDecl builds a Decl with the given role.
func NewDecl(name ident.Label, typ Type, role Role) Decl {
	return Decl{Name: name, Type: typ, Role: role}
}

func declsEqual(a, b []Decl) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Type != b[i].Type || a[i].Role != b[i].Role {
			return false
		}
	}
	return true
}

func declsKey(ds []Decl) string {
	var b []byte
	for _, d := range ds {
		b = appendKeyPart(b, "d", int64(d.Role))
		b = appendKeyStr(b, d.Name.String())
		b = appendKeyPart(b, "t", int64(d.Type.id()))
	}
	return string(b)
}
