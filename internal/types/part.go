package types

// Kind identifies the concrete variant of a statement part.
// Dialect renderers dispatch on it to special-case rendering for a
// specific database engine without modifying the core node family.
type Kind string

const (
	KindTable              Kind = "TABLE"
	KindColumn             Kind = "COLUMN"
	KindParam              Kind = "PARAM"
	KindNumberRoot         Kind = "NUMBER_ROOT"
	KindNumberFloor        Kind = "NUMBER_FLOOR"
	KindNumberCeiling      Kind = "NUMBER_CEILING"
	KindNumberAbsolute     Kind = "NUMBER_ABSOLUTE"
	KindStringToUpper      Kind = "STRING_TO_UPPER"
	KindStringToLower      Kind = "STRING_TO_LOWER"
	KindConditionalCase    Kind = "CONDITIONAL_CASE"
	KindComparison         Kind = "COMPARISON"
	KindGroup              Kind = "CONDITION_GROUP"
	KindExists             Kind = "EXISTS"
	KindConditionPredicate Kind = "CONDITION_PREDICATE"
	KindSelect             Kind = "SELECT"
)

// StatementPart is implemented by every node in the statement tree.
// The node family is closed: renderers dispatch over it with an
// exhaustive type switch.
type StatementPart interface {
	Kind() Kind
}

// Condition marks a part as boolean-valued, usable after WHERE or WHEN.
// Whether a ConditionalCase test is a condition is decided by a single
// assertion against this interface, never by inspecting rendered text.
type Condition interface {
	StatementPart
	IsCondition()
}
