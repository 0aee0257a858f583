package smtbridge

import (
	"context"

	"github.com/foltl/foltl/internal/consumer"
	"github.com/foltl/foltl/internal/ident"
	"github.com/foltl/foltl/internal/term"
)

// AsConsumer adapts a Bridge to consumer.Consumer, asserting every
// statement a replayed Module reports and ignoring the structural events
// (Push/Pop/Adopt/Import) the backend has no use for: an SMT process only
// cares about formulas, not about the scope they were declared in — that
// bookkeeping already happened inside the Module before replay started.
// ctx is fixed for the adapter's lifetime since consumer.Consumer's
// methods carry no context parameter of their own.
type AsConsumer struct {
	Bridge *Bridge
	Ctx    context.Context
}

func (a AsConsumer) Import(ident.Label, map[ident.Label]term.Term) error { return nil }
func (a AsConsumer) Adopt(*term.Entity) error                            { return nil }
func (a AsConsumer) Push(term.RecursionMode) error                       { return nil }
func (a AsConsumer) Pop(int) error                                       { return nil }

// State asserts every statement from the reported frame. Formulas whose
// type_of computation produced an Error are skipped rather than sent to
// the backend: there is nothing a solver can do with an ill-typed
// formula, and surfacing that failure is the encoder's job (see
// internal/encoder), not this adapter's. The statement's Kind plays no
// role here: an SMT process asserts formulas regardless of which
// automaton conjunct they came from.
func (a AsConsumer) State(statements []consumer.Statement) error {
	well := make([]term.Term, 0, len(statements))
	for _, s := range statements {
		if s.Formula.Type().Variant() != term.TError {
			well = append(well, s.Formula)
		}
	}
	return a.Bridge.AssertBatch(a.Ctx, well)
}
