package encoder

import (
	"github.com/foltl/foltl/internal/ident"
	"github.com/foltl/foltl/internal/term"
)

// primer builds the "next-state copy" of a term: every Variable and Object
// leaf is replaced by a fresh, distinct leaf standing for its value one
// instant later, and every other node is rebuilt around primed children.
// The same leaf always primes to the same copy within one primer (so two
// occurrences of the same object in one formula prime consistently), but
// a primer never reuses a copy across separate Encode calls.
type primer struct {
	root    *term.Root
	cache   map[uint64]term.Term
	objects map[*term.Entity]*term.Entity
}

func newPrimer(root *term.Root) *primer {
	return &primer{
		root:    root,
		cache:   make(map[uint64]term.Term),
		objects: make(map[*term.Entity]*term.Entity),
	}
}

func (p *primer) prime(t term.Term) term.Term {
	if cached, ok := p.cache[t.UniqueID()]; ok {
		return cached
	}
	var out term.Term
	switch t.Variant() {
	case term.VVariable:
		out = term.Variable(ident.Fresh(t.VarName()))
	case term.VObject:
		out = term.Object(p.primeEntity(t.Entity()))
	case term.VInteger, term.VReal, term.VBoolean, term.VError:
		out = t
	default:
		out = rebuildChildren(t, p.prime)
	}
	p.cache[t.UniqueID()] = out
	return out
}

func (p *primer) primeEntity(e *term.Entity) *term.Entity {
	if e == nil {
		return nil
	}
	if pe, ok := p.objects[e]; ok {
		return pe
	}
	pe := term.NewEntity(ident.Fresh(e.Name()), e.Type(), p.root, e.Role())
	p.objects[e] = pe
	return pe
}
