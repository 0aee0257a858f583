// Package consumer defines the push-style protocol a Module's frame
// stack is replayed against (import/adopt/state/push/pop) and a Pipeline
// composer for chaining transformations in front of a terminal sink —
// the same "ordered stages forwarding to the next" shape as the
// teacher's internal/pipeline, generalized from a single batch Process
// call to a five-method event stream.
package consumer

import (
	"github.com/foltl/foltl/internal/ident"
	"github.com/foltl/foltl/internal/term"
)

// Consumer receives the events a Module emits while replaying its frame
// stack (see internal/module's Replay). Each method corresponds to one
// of the five things that can happen to a Frame: an import binding is
// recorded, an Entity becomes visible in scope, a frame's accumulated
// statements are reported, and a frame is pushed or popped.
type Consumer interface {
	// Import records that alias now refers to another module's exports.
	Import(alias ident.Label, exports map[ident.Label]term.Term) error
	// Adopt records that entity is now visible in the current frame.
	Adopt(entity *term.Entity) error
	// State reports a frame's accumulated requirement/init/transition/
	// final statements, in declaration order, each still tagged with the
	// kind that distinguishes which automaton conjunct it belongs to.
	State(statements []Statement) error
	// Push records that a new frame was opened with the given recursion
	// policy.
	Push(mode term.RecursionMode) error
	// Pop records that the innermost n frames were closed.
	Pop(n int) error
}

// Nop is a Consumer that does nothing and never fails; useful as a
// Pipeline's terminal sink when only a Stage's side effects matter (e.g.
// a Stage that only counts events for a test).
type Nop struct{}

func (Nop) Import(ident.Label, map[ident.Label]term.Term) error { return nil }
func (Nop) Adopt(*term.Entity) error                            { return nil }
func (Nop) State([]Statement) error                             { return nil }
func (Nop) Push(term.RecursionMode) error                       { return nil }
func (Nop) Pop(int) error                                       { return nil }
