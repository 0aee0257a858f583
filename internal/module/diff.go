package module

import (
	"github.com/foltl/foltl/internal/consumer"
	"github.com/foltl/foltl/internal/term"
)

// Patch is the event sequence Apply replays against a Consumer that has
// already seen from, bringing it up to to: how many frames above their
// shared prefix to pop in a single call, an optional incremental
// continuation of the one frame straddling that boundary, the boundary
// frame re-emitted whole when it diverged instead of merely grew, and
// the frames to pushes on top that from never had at all (§4.3.8).
type Patch struct {
	popCount  int
	continued *boundaryContinuation
	reopened  *Frame
	added     []*Frame
}

// boundaryContinuation is the tail of the one frame shared, up to a
// point, by from and to: the imports, adopted entities, and statements
// to has beyond what from already reported.
type boundaryContinuation struct {
	imports    []importBinding
	adopted    []*term.Entity
	statements []Statement
}

// Diff compares from and to frame-by-frame, from the base outward,
// stopping at the first frame where they diverge (persistent sharing
// makes this pointer comparison, not a deep one). Because every Module
// mutation replaces only the frames it actually changes (invariant M1),
// two Modules derived from a common ancestor typically share a long
// prefix, making this comparison cheap regardless of how large either
// Module has grown.
func Diff(from, to *Module) Patch {
	k := 0
	for k < from.frames.Len() && k < to.frames.Len() && from.frames.Get(k) == to.frames.Get(k) {
		k++
	}

	var p Patch
	d := from.frames.Len() - k
	if d > 1 {
		p.popCount = d - 1
	}

	fromHasBoundary := k < from.frames.Len()
	toHasBoundary := k < to.frames.Len()
	next := k

	switch {
	case fromHasBoundary && toHasBoundary:
		ff, ft := from.frames.Get(k), to.frames.Get(k)
		if cont, ok := continuationOf(ff, ft); ok {
			p.continued = &cont
		} else {
			p.popCount++
			p.reopened = ft
		}
		next = k + 1
	case fromHasBoundary && !toHasBoundary:
		// from has content beyond k that to lacks entirely: pop all of
		// it, not just down to one frame above the boundary.
		p.popCount = d
	}

	for i := next; i < to.frames.Len(); i++ {
		p.added = append(p.added, to.frames.Get(i))
	}
	return p
}

// continuationOf reports whether ft's imports, adopted entities, and
// statements each extend ff's corresponding vector as a simple
// append-only prefix; if so it returns the tail items to emit.
func continuationOf(ff, ft *Frame) (boundaryContinuation, bool) {
	ffImports, ftImports := ff.importBindings(), ft.importBindings()
	if !isPrefix(ffImports, ftImports) {
		return boundaryContinuation{}, false
	}
	ffAdopted, ftAdopted := ff.adopted.Slice(), ft.adopted.Slice()
	if !isPrefix(ffAdopted, ftAdopted) {
		return boundaryContinuation{}, false
	}
	ffStmts, ftStmts := ff.statements.Slice(), ft.statements.Slice()
	if !isPrefix(ffStmts, ftStmts) {
		return boundaryContinuation{}, false
	}
	return boundaryContinuation{
		imports:    ftImports[len(ffImports):],
		adopted:    ftAdopted[len(ffAdopted):],
		statements: ftStmts[len(ffStmts):],
	}, true
}

func isPrefix[T comparable](prefix, full []T) bool {
	if len(prefix) > len(full) {
		return false
	}
	for i, v := range prefix {
		if v != full[i] {
			return false
		}
	}
	return true
}

// Apply replays p against c: pops the frames from had beyond the shared
// prefix in one call, emits the boundary frame's new tail (or re-emits
// it whole if it diverged rather than grew), then pushes and emits every
// frame to adds on top.
func (p Patch) Apply(c consumer.Consumer) error {
	if p.popCount > 0 {
		if err := c.Pop(p.popCount); err != nil {
			return err
		}
	}
	if p.continued != nil {
		for _, b := range p.continued.imports {
			if err := c.Import(b.alias, b.other.Exports()); err != nil {
				return err
			}
		}
		for _, e := range p.continued.adopted {
			if err := c.Adopt(e); err != nil {
				return err
			}
		}
		if err := c.State(p.continued.statements); err != nil {
			return err
		}
	} else if p.reopened != nil {
		if err := emitFrame(c, p.reopened); err != nil {
			return err
		}
	}
	for _, fr := range p.added {
		if err := emitFrame(c, fr); err != nil {
			return err
		}
	}
	return nil
}
