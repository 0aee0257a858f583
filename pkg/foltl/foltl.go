// Package foltl is the public entry point for this module: it re-exports
// the AST constructors, the Module/resolution engine, the encoder, and the
// SMT bridge so a client can depend on one package instead of reaching
// into internal/*. Everything here is a thin alias or a one-line
// forwarding call — no logic lives in this package.
package foltl

import (
	"github.com/foltl/foltl/internal/consumer"
	"github.com/foltl/foltl/internal/encoder"
	"github.com/foltl/foltl/internal/ident"
	"github.com/foltl/foltl/internal/module"
	"github.com/foltl/foltl/internal/smtbridge"
	"github.com/foltl/foltl/internal/term"
)

// Core AST types.
type (
	Term          = term.Term
	Type          = term.Type
	Decl          = term.Decl
	Role          = term.Role
	Label         = ident.Label
	Entity        = term.Entity
	Root          = term.Root
	RecursionMode = term.RecursionMode
)

// Role values, §3.3.
const (
	Rigid  = term.Rigid
	Input  = term.Input
	State  = term.State
	Output = term.Output
)

// Identifier constructors, §6.1's "alphabet" factory.
var (
	StringLabel = ident.String
	IntLabel    = ident.Int
	TupleLabel  = ident.Tuple
)

// Root construction, §3.3's E3 (a Root fixes its recursion policy once).
var (
	NewRoot = term.NewRoot
	Allowed = term.Allowed

	Forbidden = term.Forbidden
)

// NewEntity mints a fresh Entity bound to root.
var NewEntity = term.NewEntity

// Type constructors, §3.1.
var (
	BooleanType  = term.BooleanType
	IntegerType  = term.IntegerType
	RealType     = term.RealType
	FunctionType = term.FunctionType
)

// Atomic and literal constructors, §6.1.
var (
	Boolean  = term.BooleanConst
	Integer  = term.Integer
	Real     = term.Real
	Variable = term.Variable
	Object   = term.Object
	Atom     = term.Atom
)

// Composite constructors, one per §3.2 variant.
var (
	Equal       = term.Equal
	Distinct    = term.Distinct
	Exists      = term.Exists
	Forall      = term.Forall
	Negation    = term.Negation
	Conjunction = term.Conjunction
	Disjunction = term.Disjunction
	Implication = term.Implication
	Ite         = term.Ite
	Lambda      = term.Lambda

	Tomorrow   = term.Tomorrow
	WTomorrow  = term.WTomorrow
	Eventually = term.Eventually
	Always     = term.Always
	Until      = term.Until
	Release    = term.Release

	Yesterday    = term.Yesterday
	WYesterday   = term.WYesterday
	Once         = term.Once
	Historically = term.Historically
	Since        = term.Since
	Triggered    = term.Triggered

	Minus         = term.Minus
	Sum           = term.Sum
	Product       = term.Product
	Difference    = term.Difference
	Division      = term.Division
	LessThan      = term.LessThan
	LessThanEq    = term.LessThanEq
	GreaterThan   = term.GreaterThan
	GreaterThanEq = term.GreaterThanEq

	Error = term.Error
)

// FreeVars computes t's free variables, §6.1's free_vars.
func FreeVars(t Term) []Label { return term.FreeVars(t) }

// FreeVarOccurrences counts, rather than just lists, t's free-variable
// occurrences (supplemented feature, grounded on original_source's
// standalone counter API).
func FreeVarOccurrences(t Term) map[Label]int { return encoder.FreeVarOccurrences(t) }

// TypeOf reports t's computed or cached Type.
func TypeOf(t Term) Type { return t.Type() }

// Module is the scoped resolution engine, §3.4 / §6.1.
type Module = module.Module

// NewModule opens a fresh Module named name.
func NewModule(name Label) *Module { return module.New(name) }

// Consumer is the five-method push protocol a Module replays against.
type Consumer = consumer.Consumer

// Pipeline composes Stages in front of a terminal Consumer.
type (
	Pipeline = consumer.Pipeline
	Stage    = consumer.Stage
)

// NewPipeline builds a Pipeline ending at sink, threaded through stages
// in order.
func NewPipeline(sink Consumer, stages ...Stage) *Pipeline {
	return consumer.New(sink, stages...)
}

// Diff/Patch, §3.4's incremental replay support.
type Patch = module.Patch

// Diff computes the Patch that replays b's new statements over a shared
// prefix with a.
func Diff(a, b *Module) Patch { return module.Diff(a, b) }

// Automaton is the encoder's output triple plus its anchor predicate.
type Automaton = encoder.Automaton

// Encode turns a closed, Boolean-typed formula into an Automaton.
func Encode(formula Term) (Automaton, error) { return encoder.Encode(formula) }

// NewEncoderStage builds the Pipeline Stage that turns a Module's plain
// Requirement statements into encoded Init/Transition/Final ones as it
// replays, Component G's wiring into the push protocol (§4.5.1).
func NewEncoderStage() Stage { return encoder.NewStage() }

// Direction picks Rewrite's polarity swap direction.
type Direction = encoder.Direction

const (
	FutureToPast = encoder.FutureToPast
	PastToFuture = encoder.PastToFuture
)

// Rewrite swaps every temporal operator in t for its dual in direction dir.
func Rewrite(t Term, dir Direction) Term { return encoder.Rewrite(t, dir) }

// Bridge is the opaque gRPC-backed SMT oracle connection.
type Bridge = smtbridge.Bridge

// DialBridge opens a Bridge to an SMT backend reachable at target.
var DialBridge = smtbridge.Dial
