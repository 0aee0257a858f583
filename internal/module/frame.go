package module

import (
	"github.com/foltl/foltl/internal/consumer"
	"github.com/foltl/foltl/internal/ident"
	"github.com/foltl/foltl/internal/persist"
	"github.com/foltl/foltl/internal/term"
)

// Def is the payload attached to a declared name: its type, and its body
// once one has been given (the zero Term before Define/Finalize runs).
type Def struct {
	Name ident.Label
	Type term.Type
	Body term.Term
}

// StatementKind tags a Frame's accumulated formulas by the role they play
// in the automaton the encoder eventually builds from a Module. Aliased
// to consumer.StatementKind so a replayed Frame's statements carry their
// kind all the way to a Consumer's State call without conversion.
type StatementKind = consumer.StatementKind

const (
	Requirement         = consumer.Requirement
	InitStatement       = consumer.InitStatement
	TransitionStatement = consumer.TransitionStatement
	FinalStatement      = consumer.FinalStatement
)

// Statement is one requirement/init/transition/final formula recorded
// against a Frame, in declaration order.
type Statement = consumer.Statement

// Frame is one level of a Module's scope stack: the names declared
// directly in it, the modules it imports under an alias, and the
// statements asserted while it was the innermost frame. Frames are
// never mutated in place — every Module operation that changes a Frame
// builds a new one and swaps it into the Module's persistent Vector, so
// an older Module value keeps seeing the original Frame (invariant M1).
type Frame struct {
	root    *term.Root
	scope   persist.Map[ident.Label, *term.Entity]
	defs    persist.Map[*term.Entity, Def]
	imports persist.Map[ident.Label, *Module]
	// importOrder and adopted record, respectively, import and
	// declaration order within this frame: Diff's within-frame prefix
	// check (§4.3.8 step 3) needs an ordered view of "imports" and
	// "roots" (our adopted entities), not just the lookup maps.
	importOrder persist.Vector[ident.Label]
	adopted     persist.Vector[*term.Entity]
	statements  persist.Vector[Statement]
}

func newFrame(root *term.Root) *Frame {
	return &Frame{
		root:        root,
		scope:       persist.NewMap[ident.Label, *term.Entity](),
		defs:        persist.NewMap[*term.Entity, Def](),
		imports:     persist.NewMap[ident.Label, *Module](),
		importOrder: persist.NewVector[ident.Label](),
		adopted:     persist.NewVector[*term.Entity](),
		statements:  persist.NewVector[Statement](),
	}
}

func (f *Frame) scopeEntities() []*term.Entity {
	return f.adopted.Slice()
}

// importBinding pairs an alias with the Module it names, in the order
// the frame's imports were added.
type importBinding struct {
	alias ident.Label
	other *Module
}

func (f *Frame) importBindings() []importBinding {
	aliases := f.importOrder.Slice()
	out := make([]importBinding, 0, len(aliases))
	for _, alias := range aliases {
		if other, ok := f.imports.Get(alias); ok {
			out = append(out, importBinding{alias: alias, other: other})
		}
	}
	return out
}
