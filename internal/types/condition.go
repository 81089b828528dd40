package types

// Operator represents query comparison operators.
type Operator string

const (
	// Basic comparison operators.
	EQ Operator = "="
	NE Operator = "!="
	GT Operator = ">"
	GE Operator = ">="
	LT Operator = "<"
	LE Operator = "<="

	// Extended operators.
	IN        Operator = "IN"
	NotIn     Operator = "NOT IN"
	LIKE      Operator = "LIKE"
	NotLike   Operator = "NOT LIKE"
	IsNull    Operator = "IS NULL"
	IsNotNull Operator = "IS NOT NULL"
)

// LogicOperator represents how grouped conditions are combined.
type LogicOperator string

const (
	AND LogicOperator = "AND"
	OR  LogicOperator = "OR"
)

// Comparison is a binary boolean expression between two parts.
// For the unary IS NULL / IS NOT NULL operators Right is ignored.
type Comparison struct {
	Left     StatementPart
	Operator Operator
	Right    StatementPart
	Not      bool
}

// Kind reports the part discriminator.
func (Comparison) Kind() Kind { return KindComparison }

// IsCondition marks Comparison as boolean-valued.
func (Comparison) IsCondition() {}

// Negate returns a copy with the negation flag flipped.
func (c Comparison) Negate() Comparison {
	c.Not = !c.Not
	return c
}

// Group combines conditions with AND/OR logic.
type Group struct {
	Logic LogicOperator
	Items []StatementPart
	Not   bool
}

// Kind reports the part discriminator.
func (Group) Kind() Kind { return KindGroup }

// IsCondition marks Group as boolean-valued.
func (Group) IsCondition() {}

// Negate returns a copy with the negation flag flipped.
func (g Group) Negate() Group {
	g.Not = !g.Not
	return g
}

// Exists wraps a sub-select as an existence test.
// The sub-select is opaque to rendering beyond producing its own
// parenthesized SQL text. Not is inspected only at the point Exists
// itself is rendered; nothing else reads or mutates it.
type Exists struct {
	Select *SelectStatement
	Not    bool
}

// Kind reports the part discriminator.
func (Exists) Kind() Kind { return KindExists }

// IsCondition marks Exists as boolean-valued.
func (Exists) IsCondition() {}

// Negate returns a copy with the negation flag flipped.
func (e Exists) Negate() Exists {
	e.Not = !e.Not
	return e
}

// ConditionPredicate embeds a boolean condition where a scalar value is
// expected, rendering (CASE WHEN pred THEN True ELSE False), optionally
// aliased. It is the inverse of using a condition as a ConditionalCase
// test.
type ConditionPredicate struct {
	Predicate StatementPart
	Alias     string
}

// Kind reports the part discriminator.
func (ConditionPredicate) Kind() Kind { return KindConditionPredicate }

// GetAlias returns the output alias.
func (p ConditionPredicate) GetAlias() string {
	return p.Alias
}

// WithAlias returns a copy with the output alias set.
func (p ConditionPredicate) WithAlias(alias string) ConditionPredicate {
	p.Alias = alias
	return p
}
