package consumer

import "github.com/foltl/foltl/internal/term"

// StatementKind tags a state statement by the role it plays in the
// automaton the encoder eventually builds from a Module: which of the
// requirement/init/transition/final conjuncts it belongs to.
type StatementKind uint8

const (
	Requirement StatementKind = iota
	InitStatement
	TransitionStatement
	FinalStatement
)

func (k StatementKind) String() string {
	switch k {
	case Requirement:
		return "require"
	case InitStatement:
		return "init"
	case TransitionStatement:
		return "transition"
	case FinalStatement:
		return "final"
	default:
		return "statement(?)"
	}
}

// Statement is one requirement/init/transition/final formula reported to
// a Consumer's State method, in declaration order.
type Statement struct {
	Kind    StatementKind
	Formula term.Term
}
