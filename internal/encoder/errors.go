package encoder

import "fmt"

// IllTypedFormulaError reports that Encode was asked to encode a formula
// whose type_of computation already produced a type Error — there is no
// automaton to build from a formula that never type-checked.
type IllTypedFormulaError struct {
	Message string
}

func (e *IllTypedFormulaError) Error() string {
	return fmt.Sprintf("encoder: cannot encode an ill-typed formula: %s", e.Message)
}
