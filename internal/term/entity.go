package term

import (
	"weak"

	"github.com/foltl/foltl/internal/ident"
)

// RecursionMode controls whether a Root may appear, directly or
// transitively, inside its own definition.
type RecursionMode uint8

const (
	// Forbidden rejects any reference cycle back to the owning Root.
	Forbidden RecursionMode = iota
	// Allowed permits a Root to refer to itself, e.g. a recursive module.
	Allowed
)

// Entity is the thing an Object term names: a declared name plus the Root
// that owns its definition. Entities are allocated once by a Module and
// referenced afterward only through weak pointers (see Object), so that a
// Root can be dropped from a Module without the Term graph keeping it
// artificially alive (invariant E2).
type Entity struct {
	name ident.Label
	typ  Type
	root *Root
	role Role
}

// NewEntity allocates a fresh Entity owned by root, declared with type
// typ and role. An Object term naming this Entity reports typ as its own
// type (see computeType), so that terms built from it type-check against
// the Entity's declared type rather than against a placeholder.
func NewEntity(name ident.Label, typ Type, root *Root, role Role) *Entity {
	return &Entity{name: name, typ: typ, root: root, role: role}
}

// Name returns the Entity's declared name.
func (e *Entity) Name() ident.Label { return e.name }

// Type returns the Entity's declared type.
func (e *Entity) Type() Type { return e.typ }

// Role returns the Entity's declared role (§3.3).
func (e *Entity) Role() Role { return e.role }

// Root returns the Root that owns this Entity's definition.
func (e *Entity) Root() *Root { return e.root }

// Root is the owner of a group of Entities sharing a recursion policy,
// e.g. a module, a let-block, or a fixpoint definition.
type Root struct {
	name ident.Label
	mode RecursionMode
}

// NewRoot allocates a fresh Root with the given recursion policy.
func NewRoot(name ident.Label, mode RecursionMode) *Root {
	return &Root{name: name, mode: mode}
}

// Name returns the Root's declared name.
func (r *Root) Name() ident.Label { return r.name }

// Mode reports whether r permits self-reference (invariant E3).
func (r *Root) Mode() RecursionMode { return r.mode }

// weakEntity wraps weak.Pointer[Entity] so Object nodes never keep an
// Entity (and transitively its Root) alive on their own; only a Module's
// own bookkeeping is a strong reference (invariant E2).
type weakEntity struct {
	w weak.Pointer[Entity]
}

func newWeakEntity(e *Entity) weakEntity {
	return weakEntity{w: weak.Make(e)}
}

// value resolves the weak reference, returning nil if the Entity has
// since been collected.
func (w weakEntity) value() *Entity {
	return w.w.Value()
}
