package term

// Variant tags every constructor listed in the term sum. The matcher and
// the fragment bitset (fragment.go) both index by Variant, so its order
// here must stay stable (inserting a new variant appends at the end).
type Variant uint8

const (
	VInteger Variant = iota
	VReal
	VBoolean
	VVariable
	VObject
	VEqual
	VDistinct
	VAtom
	VExists
	VForall
	VNegation
	VConjunction
	VDisjunction
	VImplication
	VIte
	VLambda
	VTomorrow
	VWTomorrow
	VEventually
	VAlways
	VUntil
	VRelease
	VYesterday
	VWYesterday
	VOnce
	VHistorically
	VSince
	VTriggered
	VMinus
	VSum
	VProduct
	VDifference
	VDivision
	VLessThan
	VLessThanEq
	VGreaterThan
	VGreaterThanEq
	VError

	numVariants
)

var variantNames = [numVariants]string{
	VInteger: "Integer", VReal: "Real", VBoolean: "Boolean",
	VVariable: "Variable", VObject: "Object",
	VEqual: "Equal", VDistinct: "Distinct", VAtom: "Atom",
	VExists: "Exists", VForall: "Forall",
	VNegation: "Negation", VConjunction: "Conjunction", VDisjunction: "Disjunction",
	VImplication: "Implication", VIte: "Ite", VLambda: "Lambda",
	VTomorrow: "Tomorrow", VWTomorrow: "WTomorrow", VEventually: "Eventually", VAlways: "Always",
	VUntil: "Until", VRelease: "Release",
	VYesterday: "Yesterday", VWYesterday: "WYesterday", VOnce: "Once", VHistorically: "Historically",
	VSince: "Since", VTriggered: "Triggered",
	VMinus: "Minus", VSum: "Sum", VProduct: "Product", VDifference: "Difference", VDivision: "Division",
	VLessThan: "LessThan", VLessThanEq: "LessThanEq", VGreaterThan: "GreaterThan", VGreaterThanEq: "GreaterThanEq",
	VError: "Error",
}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		if n := variantNames[v]; n != "" {
			return n
		}
	}
	return "Variant(?)"
}

// unaryTemporalFuture/Past and binaryTemporalFuture/Past list the variants §4.5.3 assigns a
// surrogate rule to; the encoder uses these to detect a "temporal
// subformula" without repeating the list.
var unaryTemporalFuture = map[Variant]bool{
	VTomorrow: true, VWTomorrow: true, VEventually: true, VAlways: true,
}
var unaryTemporalPast = map[Variant]bool{
	VYesterday: true, VWYesterday: true, VOnce: true, VHistorically: true,
}
var binaryTemporalFuture = map[Variant]bool{
	VUntil: true, VRelease: true,
}
var binaryTemporalPast = map[Variant]bool{
	VSince: true, VTriggered: true,
}

// IsTemporal reports whether v is one of the twelve LTL+P operators that
// the encoder's surrogate table (§4.5.3) assigns an equation to.
func (v Variant) IsTemporal() bool {
	return unaryTemporalFuture[v] || unaryTemporalPast[v] || binaryTemporalFuture[v] || binaryTemporalPast[v]
}

// IsFutureTemporal reports whether v is a strictly-future operator
// (Tomorrow/WTomorrow/Eventually/Always/Until/Release).
func (v Variant) IsFutureTemporal() bool {
	return unaryTemporalFuture[v] || binaryTemporalFuture[v]
}

// IsPastTemporal reports whether v is a strictly-past operator
// (Yesterday/WYesterday/Once/Historically/Since/Triggered).
func (v Variant) IsPastTemporal() bool {
	return unaryTemporalPast[v] || binaryTemporalPast[v]
}
