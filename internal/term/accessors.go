package term

import "github.com/foltl/foltl/internal/ident"

// IntValue returns an Integer term's value.
func (t Term) IntValue() int64 { return t.n.i64 }

// RealValue returns a Real term's value.
func (t Term) RealValue() float64 { return t.n.f64 }

// BoolValue returns a Boolean constant term's value.
func (t Term) BoolValue() bool { return t.n.b }

// VarName returns a Variable term's name.
func (t Term) VarName() ident.Label { return t.n.lbl }

// Entity resolves an Object term's weak reference, returning nil once the
// owning Root has been collected.
func (t Term) Entity() *Entity { return t.n.ent.value() }

// Args returns the argument vector of an Equal, Distinct, Conjunction, or
// Disjunction term (arity >= 2).
func (t Term) Args() []Term { return t.n.kids }

// Head returns an Atom term's predicate-symbol term.
func (t Term) Head() Term { return t.n.kids[0] }

// AtomArgs returns an Atom term's argument vector (possibly empty).
func (t Term) AtomArgs() []Term { return t.n.kids[1:] }

// Binds returns the binder list of an Exists, Forall, or Lambda term.
func (t Term) Binds() []Decl { return t.n.binds }

// Body returns the quantified or abstracted body of an Exists, Forall, or
// Lambda term.
func (t Term) Body() Term { return t.n.kids[0] }

// Operand returns the single subterm of a unary connective or temporal
// operator (Negation, Minus, and every unary LTL+P operator).
func (t Term) Operand() Term { return t.n.kids[0] }

// Left returns the first subterm of a binary operator (Implication,
// arithmetic comparisons, and every binary LTL+P operator).
func (t Term) Left() Term { return t.n.kids[0] }

// Right returns the second subterm of a binary operator.
func (t Term) Right() Term { return t.n.kids[1] }

// Guard returns an Ite term's condition.
func (t Term) Guard() Term { return t.n.kids[0] }

// IfTrue returns an Ite term's true branch.
func (t Term) IfTrue() Term { return t.n.kids[1] }

// IfFalse returns an Ite term's false branch.
func (t Term) IfFalse() Term { return t.n.kids[2] }

// ErrSource returns an Error term's offending subterm (the zero Term if
// none was given).
func (t Term) ErrSource() Term { return t.n.errSource }

// ErrMessage returns an Error term's diagnostic message.
func (t Term) ErrMessage() string { return t.n.message }
