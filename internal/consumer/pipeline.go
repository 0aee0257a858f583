package consumer

import (
	"github.com/foltl/foltl/internal/ident"
	"github.com/foltl/foltl/internal/term"
)

// Stage transforms or observes events on their way to a downstream
// Consumer. Embed BaseStage to get pass-through defaults and override
// only the methods a given Stage cares about — the same pattern the
// teacher's AST visitors use for "do nothing, just recurse" defaults.
type Stage interface {
	Import(next Consumer, alias ident.Label, exports map[ident.Label]term.Term) error
	Adopt(next Consumer, entity *term.Entity) error
	State(next Consumer, statements []Statement) error
	Push(next Consumer, mode term.RecursionMode) error
	Pop(next Consumer, n int) error
}

// BaseStage forwards every event to next unchanged. Embed it in a Stage
// that only needs to intercept one or two of the five methods.
type BaseStage struct{}

func (BaseStage) Import(next Consumer, alias ident.Label, exports map[ident.Label]term.Term) error {
	return next.Import(alias, exports)
}
func (BaseStage) Adopt(next Consumer, entity *term.Entity) error { return next.Adopt(entity) }
func (BaseStage) State(next Consumer, statements []Statement) error {
	return next.State(statements)
}
func (BaseStage) Push(next Consumer, mode term.RecursionMode) error { return next.Push(mode) }
func (BaseStage) Pop(next Consumer, n int) error                    { return next.Pop(n) }

type composed struct {
	stage Stage
	next  Consumer
}

func (c composed) Import(alias ident.Label, exports map[ident.Label]term.Term) error {
	return c.stage.Import(c.next, alias, exports)
}
func (c composed) Adopt(entity *term.Entity) error { return c.stage.Adopt(c.next, entity) }
func (c composed) State(statements []Statement) error {
	return c.stage.State(c.next, statements)
}
func (c composed) Push(mode term.RecursionMode) error { return c.stage.Push(c.next, mode) }
func (c composed) Pop(n int) error                     { return c.stage.Pop(c.next, n) }

// Compose builds a single Consumer out of an ordered list of stages
// terminating at sink: stages[0] sees every event first and decides what
// (if anything) to forward to stages[1], and so on down to sink.
func Compose(stages []Stage, sink Consumer) Consumer {
	c := sink
	for i := len(stages) - 1; i >= 0; i-- {
		c = composed{stage: stages[i], next: c}
	}
	return c
}

// Pipeline is a named, reusable Compose: built once from a sink and an
// ordered stage list, mirroring the teacher's Pipeline{processors
// []Processor}.
type Pipeline struct {
	stages []Stage
	sink   Consumer
}

// New builds a Pipeline ending at sink.
func New(sink Consumer, stages ...Stage) *Pipeline {
	return &Pipeline{stages: append([]Stage(nil), stages...), sink: sink}
}

// Consumer returns the composed Consumer a Module should be replayed
// against.
func (p *Pipeline) Consumer() Consumer {
	return Compose(p.stages, p.sink)
}
