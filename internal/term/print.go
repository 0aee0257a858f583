package term

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders t for diagnostics and tests. It is not a parseable
// surface syntax, just a readable s-expression.
func (t Term) String() string {
	if !t.IsValid() {
		return "<invalid>"
	}
	switch t.Variant() {
	case VInteger:
		return strconv.FormatInt(t.IntValue(), 10)
	case VReal:
		return strconv.FormatFloat(t.RealValue(), 'g', -1, 64)
	case VBoolean:
		return strconv.FormatBool(t.BoolValue())
	case VVariable:
		return t.VarName().String()
	case VObject:
		if e := t.Entity(); e != nil {
			return e.Name().String()
		}
		return "<dead-object>"
	case VAtom:
		parts := make([]string, len(t.AtomArgs()))
		for i, a := range t.AtomArgs() {
			parts[i] = a.String()
		}
		return fmt.Sprintf("%s(%s)", t.Head(), strings.Join(parts, ", "))
	case VError:
		return fmt.Sprintf("<error: %s>", t.ErrMessage())
	case VExists, VForall, VLambda:
		return fmt.Sprintf("%s%s. %s", binderKeyword(t.Variant()), declsString(t.Binds()), t.Body())
	}

	if u, ok := To[Unary](t); ok {
		return fmt.Sprintf("%s(%s)", t.Variant(), u.Operand())
	}
	if b, ok := To[Binary](t); ok {
		return fmt.Sprintf("(%s %s %s)", b.Left(), t.Variant(), b.Right())
	}
	if tn, ok := To[Ternary](t); ok {
		return fmt.Sprintf("ite(%s, %s, %s)", tn.Guard(), tn.IfTrue(), tn.IfFalse())
	}
	if a, ok := To[Atomic](t); ok {
		parts := make([]string, len(a.Args()))
		for i, p := range a.Args() {
			parts[i] = p.String()
		}
		return fmt.Sprintf("%s(%s)", t.Variant(), strings.Join(parts, ", "))
	}
	return t.Variant().String()
}

func binderKeyword(v Variant) string {
	switch v {
	case VExists:
		return "exists "
	case VForall:
		return "forall "
	case VLambda:
		return "lambda "
	default:
		return "?"
	}
}

func declsString(ds []Decl) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = fmt.Sprintf("%s:%s", d.Name, d.Type)
	}
	return strings.Join(parts, ", ")
}
