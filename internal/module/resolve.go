package module

import (
	"github.com/foltl/foltl/internal/ident"
	"github.com/foltl/foltl/internal/obslog"
	"github.com/foltl/foltl/internal/term"
	"go.uber.org/zap"
)

var logger = obslog.Nop()

// SetLogger replaces the package's resolution-trace logger. cmd/folp calls
// this at startup with the zap logger it builds there; tests and
// library callers that never call it get the no-op default.
func SetLogger(l *zap.Logger) {
	logger = obslog.Named(l, "module")
}

// Lookup searches the frame stack from innermost to outermost for name,
// returning the Object term naming it. A Tuple label is treated as a
// qualified reference (alias, member): if the plain name is not found
// directly, Lookup checks whether the first part names an import and, if
// so, continues the search in that Module's exports.
func (m *Module) Lookup(name ident.Label) (term.Term, bool) {
	for i := m.frames.Len() - 1; i >= 0; i-- {
		fr := m.frames.Get(i)
		if e, ok := fr.scope.Get(name); ok {
			return term.Object(e), true
		}
	}
	if name.Kind() == ident.KindTuple {
		parts := name.Parts()
		if len(parts) == 2 {
			if other, ok := m.lookupImport(parts[0]); ok {
				return other.Lookup(parts[1])
			}
		}
	}
	return term.Term{}, false
}

func (m *Module) lookupImport(alias ident.Label) (*Module, bool) {
	for i := m.frames.Len() - 1; i >= 0; i-- {
		fr := m.frames.Get(i)
		if other, ok := fr.imports.Get(alias); ok {
			return other, true
		}
	}
	return nil, false
}

// Resolve is Lookup with a typed error instead of a boolean, for call
// sites where failure must propagate rather than be branched on locally.
func (m *Module) Resolve(name ident.Label) (term.Term, error) {
	t, ok := m.Lookup(name)
	if !ok {
		return term.Term{}, &UnresolvedNameError{Name: name}
	}
	if e := t.Entity(); e != nil && e.Root() != nil {
		if e.Root().Mode() == term.Forbidden {
			if def, ok := m.defOf(e); ok && def.Body.IsValid() && mentions(def.Body, e) {
				logger.Debug("resolve: rejected self-reference", zap.String("name", name.String()))
				return term.Term{}, &RecursionForbiddenError{Name: name}
			}
		}
	}
	logger.Debug("resolve: ok", zap.String("name", name.String()))
	return t, nil
}

func (m *Module) defOf(entity *term.Entity) (Def, bool) {
	for i := m.frames.Len() - 1; i >= 0; i-- {
		if d, ok := m.frames.Get(i).defs.Get(entity); ok {
			return d, true
		}
	}
	return Def{}, false
}

// mentions reports whether entity's Object term occurs anywhere in body,
// the check Resolve uses to enforce a Forbidden Root's no-self-reference
// invariant (E3) once a definition is actually in hand.
func mentions(body term.Term, entity *term.Entity) bool {
	if body.Variant() == term.VObject && body.Entity() == entity {
		return true
	}
	found := false
	walkChildren(body, func(child term.Term) {
		if mentions(child, entity) {
			found = true
		}
	})
	return found
}

func walkChildren(t term.Term, visit func(term.Term)) {
	switch t.Variant() {
	case term.VExists, term.VForall, term.VLambda:
		visit(t.Body())
	case term.VInteger, term.VReal, term.VBoolean, term.VVariable, term.VObject:
	case term.VError:
		if src := t.ErrSource(); src.IsValid() {
			visit(src)
		}
	default:
		if u, ok := term.To[term.Unary](t); ok {
			visit(u.Operand())
			return
		}
		if b, ok := term.To[term.Binary](t); ok {
			visit(b.Left())
			visit(b.Right())
			return
		}
		if tn, ok := term.To[term.Ternary](t); ok {
			visit(tn.Guard())
			visit(tn.IfTrue())
			visit(tn.IfFalse())
			return
		}
		if a, ok := term.To[term.Atomic](t); ok {
			for _, arg := range a.Args() {
				visit(arg)
			}
		}
	}
}
