package term

// computeType implements type_of (§4.2.5): each constructor fixes its
// result type from its children's already-computed types, propagating a
// type Error rather than panicking when an operand is itself ill-typed
// (§4.2.6). It runs once per node, at construction time, and the result
// is cached on the node (Term.Type).
func computeType(t Term) Type {
	switch t.Variant() {
	case VInteger:
		return IntegerType()
	case VReal:
		return RealType()
	case VBoolean:
		return BooleanType()
	case VVariable:
		return InferredType()
	case VObject:
		if e := t.Entity(); e != nil {
			return e.Type()
		}
		return InferredType()

	case VEqual, VDistinct:
		if errT, ok := firstError(t.Args()...); ok {
			return errT
		}
		return BooleanType()

	case VAtom:
		head := t.Head()
		if errT, ok := firstError(head); ok {
			return errT
		}
		if errT, ok := firstError(t.AtomArgs()...); ok {
			return errT
		}
		if head.Variant() != VObject {
			return TypeError(head, "atom head must be an Object")
		}
		if head.Type().Variant() != TFunction {
			return TypeError(head, "atom head must resolve to a Function-typed declaration")
		}
		args := t.AtomArgs()
		params := head.Type().Parameters()
		if len(args) != len(params) {
			return TypeError(t, "atom arity does not match its head's declared parameters")
		}
		return BooleanType()

	case VExists, VForall:
		body := t.Body()
		if body.Type().Variant() == TError {
			return body.Type()
		}
		if body.Type().Variant() != TBoolean {
			return TypeError(body, "quantifier body must be Boolean")
		}
		return BooleanType()

	case VNegation:
		return requireBoolean(t, t.Operand())

	case VConjunction, VDisjunction:
		return requireBoolean(t, t.Args()...)

	case VImplication:
		return requireBoolean(t, t.Left(), t.Right())

	case VIte:
		if errT, ok := firstError(t.Guard(), t.IfTrue(), t.IfFalse()); ok {
			return errT
		}
		if t.Guard().Type().Variant() != TBoolean {
			return TypeError(t.Guard(), "if condition must be Boolean")
		}
		if t.IfTrue().Type() != t.IfFalse().Type() {
			return TypeError(t, "if branches must share a type")
		}
		return t.IfTrue().Type()

	case VLambda:
		body := t.Body()
		if body.Type().Variant() == TError {
			return body.Type()
		}
		params := make([]Type, len(t.Binds()))
		for i, d := range t.Binds() {
			params[i] = d.Type
		}
		return FunctionType(params, body.Type())

	case VTomorrow, VWTomorrow, VEventually, VAlways, VYesterday, VWYesterday, VOnce, VHistorically:
		return requireBoolean(t, t.Operand())

	case VUntil, VRelease, VSince, VTriggered:
		return requireBoolean(t, t.Left(), t.Right())

	case VMinus:
		op := t.Operand()
		if op.Type().Variant() == TError {
			return op.Type()
		}
		if !isNumeric(op.Type()) {
			return TypeError(op, "unary minus requires a numeric operand")
		}
		return op.Type()

	case VSum, VProduct, VDifference, VDivision:
		return requireNumeric(t, t.Left(), t.Right())

	case VLessThan, VLessThanEq, VGreaterThan, VGreaterThanEq:
		if errT, ok := firstError(t.Left(), t.Right()); ok {
			return errT
		}
		if !isNumeric(t.Left().Type()) || !isNumeric(t.Right().Type()) {
			return TypeError(t, "comparison requires numeric operands")
		}
		return BooleanType()

	case VError:
		return TypeError(t.ErrSource(), t.ErrMessage())

	default:
		return TypeError(t, "unrecognized variant")
	}
}

func isNumeric(ty Type) bool {
	return ty.Variant() == TInteger || ty.Variant() == TReal
}

func firstError(ts ...Term) (Type, bool) {
	for _, sub := range ts {
		if sub.Type().Variant() == TError {
			return sub.Type(), true
		}
	}
	return Type{}, false
}

func requireBoolean(t Term, operands ...Term) Type {
	if errT, ok := firstError(operands...); ok {
		return errT
	}
	for _, op := range operands {
		if op.Type().Variant() != TBoolean {
			return TypeError(op, "operand must be Boolean")
		}
	}
	return BooleanType()
}

func requireNumeric(t Term, left, right Term) Type {
	if errT, ok := firstError(left, right); ok {
		return errT
	}
	if !isNumeric(left.Type()) || !isNumeric(right.Type()) {
		return TypeError(t, "arithmetic operator requires numeric operands")
	}
	if left.Type().Variant() == TReal || right.Type().Variant() == TReal {
		return RealType()
	}
	return IntegerType()
}
