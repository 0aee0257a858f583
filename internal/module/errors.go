package module

import (
	"fmt"

	"github.com/foltl/foltl/internal/ident"
)

// UnresolvedNameError reports that Resolve could not find name in any
// enclosing frame or import. Go-level errors for failures that cannot be
// represented as a term.Term Error value (there is no term to attach one
// to) are typed errors satisfying error, matching the teacher's
// *SymbolNotFoundError idiom.
type UnresolvedNameError struct {
	Name ident.Label
}

func (e *UnresolvedNameError) Error() string {
	return fmt.Sprintf("module: unresolved name %q", e.Name)
}

// RecursionForbiddenError reports that a name resolved back to its own
// Root while that Root's RecursionMode is Forbidden.
type RecursionForbiddenError struct {
	Name ident.Label
}

func (e *RecursionForbiddenError) Error() string {
	return fmt.Sprintf("module: %q recurses into its own definition, which its Root forbids", e.Name)
}

// InvalidPopCountError reports a non-positive count passed to Pop.
type InvalidPopCountError struct {
	Count int
}

func (e *InvalidPopCountError) Error() string {
	return fmt.Sprintf("module: pop count must be positive, got %d", e.Count)
}

// AlreadyDeclaredError reports a second Declare for a name already bound
// in the current frame.
type AlreadyDeclaredError struct {
	Name ident.Label
}

func (e *AlreadyDeclaredError) Error() string {
	return fmt.Sprintf("module: %q is already declared in this frame", e.Name)
}
