package term

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"weak"
)

// TypeVariant tags the six constructors of the Type sum (§3.1).
type TypeVariant uint8

const (
	TInteger TypeVariant = iota
	TReal
	TBoolean
	TFunction
	TInferred
	TError

	numTypeVariants
)

func (v TypeVariant) String() string {
	switch v {
	case TInteger:
		return "Integer"
	case TReal:
		return "Real"
	case TBoolean:
		return "Boolean"
	case TFunction:
		return "Function"
	case TInferred:
		return "Inferred"
	case TError:
		return "Error"
	default:
		return "TypeVariant(?)"
	}
}

// typeNode is the pool-owned representation behind a Type handle. Only
// Function and Error populate the slice/scalar fields; the rest are pure
// tags and share a single allocation each.
type typeNode struct {
	variant TypeVariant
	params  []Type // Function: argument types
	rng     Type   // Function: result type
	source  Term   // Error: the term the type error was raised against
	message string // Error: diagnostic text
}

// Type is a hash-consed handle: two Types compare equal with == iff they
// were built from identical constructor and field values (invariant I1).
type Type struct {
	n *typeNode
}

// IsValid reports whether t was produced by a constructor, as opposed to
// the zero Type.
func (t Type) IsValid() bool { return t.n != nil }

// Variant reports which of the six Type constructors built t.
func (t Type) Variant() TypeVariant {
	if t.n == nil {
		return numTypeVariants
	}
	return t.n.variant
}

func (t Type) id() uintptr {
	return uintptr(reflect.ValueOf(t.n).Pointer())
}

// Parameters returns the argument types of a Function type.
func (t Type) Parameters() []Type { return t.n.params }

// Range returns the result type of a Function type.
func (t Type) Range() Type { return t.n.rng }

// ErrSource returns the term an Error type was raised against.
func (t Type) ErrSource() Term { return t.n.source }

// ErrMessage returns an Error type's diagnostic text.
func (t Type) ErrMessage() string { return t.n.message }

func (t Type) String() string {
	switch t.Variant() {
	case TInteger:
		return "int"
	case TReal:
		return "real"
	case TBoolean:
		return "bool"
	case TInferred:
		return "?"
	case TError:
		return fmt.Sprintf("<type error: %s>", t.n.message)
	case TFunction:
		parts := make([]string, len(t.n.params))
		for i, p := range t.n.params {
			parts[i] = p.String()
		}
		return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), t.n.rng.String())
	default:
		return "<invalid type>"
	}
}

var (
	typePoolMu sync.RWMutex
	typePool   = make(map[string]weak.Pointer[typeNode])
)

func internType(key string, tmpl typeNode) Type {
	typePoolMu.RLock()
	if w, ok := typePool[key]; ok {
		if n := w.Value(); n != nil {
			typePoolMu.RUnlock()
			return Type{n: n}
		}
	}
	typePoolMu.RUnlock()

	typePoolMu.Lock()
	defer typePoolMu.Unlock()
	if w, ok := typePool[key]; ok {
		if n := w.Value(); n != nil {
			return Type{n: n}
		}
	}
	n := new(typeNode)
	*n = tmpl
	typePool[key] = weak.Make(n)
	return Type{n: n}
}

// IntegerType is the type of integer-valued terms.
func IntegerType() Type { return internType("I", typeNode{variant: TInteger}) }

// RealType is the type of real-valued terms.
func RealType() Type { return internType("R", typeNode{variant: TReal}) }

// BooleanType is the type of formula-valued terms.
func BooleanType() Type { return internType("B", typeNode{variant: TBoolean}) }

// InferredType is the placeholder type given to a term before its real
// type has been computed or resolved.
func InferredType() Type { return internType("?", typeNode{variant: TInferred}) }

// FunctionType is the type of a Lambda with the given parameter types and
// result type.
func FunctionType(params []Type, rng Type) Type {
	var b strings.Builder
	b.WriteString("F(")
	for _, p := range params {
		fmt.Fprintf(&b, "%d,", p.id())
	}
	fmt.Fprintf(&b, ")%d", rng.id())
	ps := append([]Type(nil), params...)
	return internType(b.String(), typeNode{variant: TFunction, params: ps, rng: rng})
}

// TypeError is the type assigned to a term whose typing failed; source is
// the term the failure was raised against and message explains why.
func TypeError(source Term, message string) Type {
	key := fmt.Sprintf("E(%d,%s)", source.id(), message)
	return internType(key, typeNode{variant: TError, source: source, message: message})
}
