package encoder

import (
	"fmt"

	"github.com/foltl/foltl/internal/term"
)

// Direction picks which way Rewrite swaps temporal operators.
type Direction uint8

const (
	// FutureToPast swaps every future operator for its past dual
	// (Tomorrow->Yesterday, Eventually->Once, Always->Historically,
	// Until->Since, Release->Triggered).
	FutureToPast Direction = iota
	// PastToFuture swaps every past operator for its future dual.
	PastToFuture
)

// Rewrite swaps every temporal operator in t for its dual in the direction
// dir names, rebuilding every non-temporal connective around its rewritten
// children. It is a best-effort structural transform, not a
// semantics-preserving one: a formula mixing both polarities has no single
// well-formed "mirror", so encountering an operator already belonging to
// dir's target polarity — the polarity Rewrite is trying to introduce —
// yields an Error term rather than a panic, per this tree's "errors are
// values" discipline.
//
// The SNF pass in this package does not call Rewrite; it is exposed
// publicly for callers building their own bounded search loop on top of
// this package's primitives.
func Rewrite(t term.Term, dir Direction) term.Term {
	switch t.Variant() {
	case term.VTomorrow:
		if dir != FutureToPast {
			return wrongPolarity(t)
		}
		return term.Yesterday(Rewrite(t.Operand(), dir))
	case term.VWTomorrow:
		if dir != FutureToPast {
			return wrongPolarity(t)
		}
		return term.WYesterday(Rewrite(t.Operand(), dir))
	case term.VEventually:
		if dir != FutureToPast {
			return wrongPolarity(t)
		}
		return term.Once(Rewrite(t.Operand(), dir))
	case term.VAlways:
		if dir != FutureToPast {
			return wrongPolarity(t)
		}
		return term.Historically(Rewrite(t.Operand(), dir))
	case term.VUntil:
		if dir != FutureToPast {
			return wrongPolarity(t)
		}
		return term.Since(Rewrite(t.Left(), dir), Rewrite(t.Right(), dir))
	case term.VRelease:
		if dir != FutureToPast {
			return wrongPolarity(t)
		}
		return term.Triggered(Rewrite(t.Left(), dir), Rewrite(t.Right(), dir))

	case term.VYesterday:
		if dir != PastToFuture {
			return wrongPolarity(t)
		}
		return term.Tomorrow(Rewrite(t.Operand(), dir))
	case term.VWYesterday:
		if dir != PastToFuture {
			return wrongPolarity(t)
		}
		return term.WTomorrow(Rewrite(t.Operand(), dir))
	case term.VOnce:
		if dir != PastToFuture {
			return wrongPolarity(t)
		}
		return term.Eventually(Rewrite(t.Operand(), dir))
	case term.VHistorically:
		if dir != PastToFuture {
			return wrongPolarity(t)
		}
		return term.Always(Rewrite(t.Operand(), dir))
	case term.VSince:
		if dir != PastToFuture {
			return wrongPolarity(t)
		}
		return term.Until(Rewrite(t.Left(), dir), Rewrite(t.Right(), dir))
	case term.VTriggered:
		if dir != PastToFuture {
			return wrongPolarity(t)
		}
		return term.Release(Rewrite(t.Left(), dir), Rewrite(t.Right(), dir))

	default:
		return rebuildChildren(t, func(child term.Term) term.Term { return Rewrite(child, dir) })
	}
}

func wrongPolarity(t term.Term) term.Term {
	return term.Error(t, fmt.Sprintf("encoder: Rewrite found a %s operator already in the target polarity", t.Variant()))
}
