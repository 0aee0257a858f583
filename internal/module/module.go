// Package module implements the scoped, persistent module/resolution
// engine: a Module is a stack of Frames supporting push/pop, two-phase
// (declare-now, define-later) name resolution, and cheap structural
// diffing against another Module for incremental replay.
//
// Grounded on the teacher's internal/modules.Module (exports/imports,
// two-phase Headers/Bodies analysis flags) and internal/symbols'
// outer-chain SymbolTable, generalized from a single mutable struct with
// a linked outer pointer to a persistent Vector of Frames so that two
// Module values can share structure and be diffed cheaply.
package module

import (
	"fmt"

	"github.com/foltl/foltl/internal/ident"
	"github.com/foltl/foltl/internal/persist"
	"github.com/foltl/foltl/internal/term"
)

type pendingResolution struct {
	entity *term.Entity
	build  func(*Module) term.Term
}

// Module is a persistent stack of Frames. Every method that would
// conceptually mutate a Module instead returns a new *Module; the
// receiver is left untouched, and frames unaffected by the change are
// shared, not copied (invariant M1).
type Module struct {
	name    ident.Label
	frames  persist.Vector[*Frame]
	pending persist.Vector[pendingResolution]
}

// New creates a Module with a single base frame whose Root forbids
// self-recursion.
func New(name ident.Label) *Module {
	root := term.NewRoot(name, term.Forbidden)
	return &Module{
		name:    name,
		frames:  persist.NewVector[*Frame]().Push(newFrame(root)),
		pending: persist.NewVector[pendingResolution](),
	}
}

// Name returns the Module's declared name.
func (m *Module) Name() ident.Label { return m.name }

// Depth returns the number of frames currently on the stack (always
// >= 1).
func (m *Module) Depth() int { return m.frames.Len() }

func (m *Module) top() *Frame { return m.frames.Get(m.frames.Len() - 1) }

func (m *Module) withTop(f *Frame) *Module {
	cp := *m
	cp.frames = m.frames.Set(m.frames.Len()-1, f)
	return &cp
}

func (m *Module) replaceFrame(idx int, f *Frame) *Module {
	cp := *m
	cp.frames = m.frames.Set(idx, f)
	return &cp
}

// Push opens a new frame on top of the stack, owned by a fresh Root with
// the given recursion policy (invariant E3).
func (m *Module) Push(mode term.RecursionMode) *Module {
	root := term.NewRoot(m.name, mode)
	cp := *m
	cp.frames = m.frames.Push(newFrame(root))
	return &cp
}

// Pop closes the innermost n frames. If n >= Depth(), the Module resets
// to a single fresh empty frame rather than failing — popping past the
// bottom truncates, it is never an error (invariant M2: a Module always
// has at least one frame).
func (m *Module) Pop(n int) (*Module, error) {
	if n <= 0 {
		return nil, &InvalidPopCountError{Count: n}
	}
	cp := *m
	if n >= m.frames.Len() {
		root := term.NewRoot(m.name, term.Forbidden)
		cp.frames = persist.NewVector[*Frame]().Push(newFrame(root))
		return &cp, nil
	}
	cp.frames = m.frames.Truncate(m.frames.Len() - n)
	return &cp, nil
}

// Declare binds name to a freshly created Entity in the current frame,
// with the given type, role, and no body yet, and returns the Object
// term naming it. Redeclaring a name already bound in the current frame
// (shadowing an outer frame's binding is fine; redeclaring the same
// frame's binding is not) is an error.
func (m *Module) Declare(name ident.Label, typ term.Type, role term.Role) (*Module, term.Term, error) {
	f := m.top()
	if _, ok := f.scope.Get(name); ok {
		return nil, term.Term{}, &AlreadyDeclaredError{Name: name}
	}
	entity := term.NewEntity(name, typ, f.root, role)
	nf := *f
	nf.scope = f.scope.With(name, entity)
	nf.defs = f.defs.With(entity, Def{Name: name, Type: typ})
	nf.adopted = f.adopted.Push(entity)
	return m.withTop(&nf), term.Object(entity), nil
}

// Define attaches body to name, which must already have been Declared in
// some still-open frame (the current one or an enclosing one). This is
// the Immediate half of two-phase resolution: the caller already has
// body in hand.
func (m *Module) Define(name ident.Label, body term.Term) (*Module, error) {
	idx, fr, entity, def, ok := m.findOwn(name)
	if !ok {
		return nil, &UnresolvedNameError{Name: name}
	}
	def.Body = body
	nf := *fr
	nf.defs = fr.defs.With(entity, def)
	return m.replaceFrame(idx, &nf), nil
}

// DeclareDelayed is Declare plus registering build to run later, during
// Finalize, once every name in the current compilation unit is visible
// (the Delayed half of two-phase resolution: build may itself Lookup
// names declared after this call, e.g. mutually recursive definitions).
func (m *Module) DeclareDelayed(name ident.Label, typ term.Type, role term.Role, build func(*Module) term.Term) (*Module, term.Term, error) {
	nm, obj, err := m.Declare(name, typ, role)
	if err != nil {
		return nil, term.Term{}, err
	}
	cp := *nm
	cp.pending = nm.pending.Push(pendingResolution{entity: obj.Entity(), build: build})
	return &cp, obj, nil
}

// Finalize runs every pending DeclareDelayed build against the Module as
// it stands after all of them were registered, and attaches the results.
// An entity whose owning frame was popped before Finalize runs is simply
// skipped: its definition no longer matters to anything still reachable.
func (m *Module) Finalize() (*Module, error) {
	cur := m
	pending := m.pending.Slice()
	for _, p := range pending {
		idx, fr, entity, def, ok := cur.findOwnEntity(p.entity)
		if !ok {
			continue
		}
		body := p.build(cur)
		if body.Type().Variant() == term.TError {
			return nil, fmt.Errorf("module: finalizing %q: %s", p.entity.Name(), body.Type().ErrMessage())
		}
		def.Body = body
		nf := *fr
		nf.defs = fr.defs.With(entity, def)
		cur = cur.replaceFrame(idx, &nf)
	}
	cp := *cur
	cp.pending = persist.NewVector[pendingResolution]()
	return &cp, nil
}

func (m *Module) findOwn(name ident.Label) (idx int, frame *Frame, entity *term.Entity, def Def, ok bool) {
	for i := m.frames.Len() - 1; i >= 0; i-- {
		fr := m.frames.Get(i)
		if e, found := fr.scope.Get(name); found {
			d, _ := fr.defs.Get(e)
			return i, fr, e, d, true
		}
	}
	return 0, nil, nil, Def{}, false
}

func (m *Module) findOwnEntity(entity *term.Entity) (idx int, frame *Frame, e *term.Entity, def Def, ok bool) {
	for i := m.frames.Len() - 1; i >= 0; i-- {
		fr := m.frames.Get(i)
		if d, found := fr.defs.Get(entity); found {
			return i, fr, entity, d, true
		}
	}
	return 0, nil, nil, Def{}, false
}

// Import binds alias to other in the current frame.
func (m *Module) Import(alias ident.Label, other *Module) *Module {
	f := m.top()
	nf := *f
	nf.imports = f.imports.With(alias, other)
	nf.importOrder = f.importOrder.Push(alias)
	return m.withTop(&nf)
}

// Exports flattens every name visible at the top of the Module (outer
// frames first, so an inner frame's binding wins on a name clash) into a
// plain map, the representation an importer's Lookup needs.
func (m *Module) Exports() map[ident.Label]term.Term {
	out := make(map[ident.Label]term.Term)
	for i := 0; i < m.frames.Len(); i++ {
		fr := m.frames.Get(i)
		for name, e := range fr.scope.Entries() {
			out[name] = term.Object(e)
		}
	}
	return out
}

func (m *Module) appendStatement(kind StatementKind, formula term.Term) *Module {
	f := m.top()
	nf := *f
	nf.statements = f.statements.Push(Statement{Kind: kind, Formula: formula})
	return m.withTop(&nf)
}

// Require asserts formula as a standing requirement of the current frame.
func (m *Module) Require(formula term.Term) *Module {
	return m.appendStatement(Requirement, formula)
}

// Init asserts formula as part of the current frame's initial-state
// constraint.
func (m *Module) Init(formula term.Term) *Module {
	return m.appendStatement(InitStatement, formula)
}

// Transition asserts formula as part of the current frame's
// transition-relation constraint.
func (m *Module) Transition(formula term.Term) *Module {
	return m.appendStatement(TransitionStatement, formula)
}

// Final asserts formula as part of the current frame's final-state
// constraint.
func (m *Module) Final(formula term.Term) *Module {
	return m.appendStatement(FinalStatement, formula)
}

// State returns the current frame's statements, in declaration order.
func (m *Module) State() []Statement {
	return m.top().statements.Slice()
}
