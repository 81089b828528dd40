package partsql

import (
	"github.com/zoobzio/partsql/internal/render"
	"github.com/zoobzio/partsql/internal/types"
)

// C creates a comparison condition between two parts.
func C(left StatementPart, op Operator, right StatementPart) types.Comparison {
	// For IS NULL / IS NOT NULL the right side is ignored
	if op == IsNull || op == IsNotNull {
		right = nil
	}
	return types.Comparison{
		Left:     left,
		Operator: op,
		Right:    right,
	}
}

// Null creates an IS NULL condition.
func Null(part StatementPart) types.Comparison {
	return types.Comparison{Left: part, Operator: IsNull}
}

// NotNull creates an IS NOT NULL condition.
func NotNull(part StatementPart) types.Comparison {
	return types.Comparison{Left: part, Operator: IsNotNull}
}

// TryAnd creates an AND condition group, returning an error if invalid.
// Every item must carry the Condition capability.
func TryAnd(conditions ...StatementPart) (types.Group, error) {
	return tryGroup(types.AND, conditions)
}

// And creates an AND condition group.
func And(conditions ...StatementPart) types.Group {
	g, err := TryAnd(conditions...)
	if err != nil {
		panic(err)
	}
	return g
}

// TryOr creates an OR condition group, returning an error if invalid.
func TryOr(conditions ...StatementPart) (types.Group, error) {
	return tryGroup(types.OR, conditions)
}

// Or creates an OR condition group.
func Or(conditions ...StatementPart) types.Group {
	g, err := TryOr(conditions...)
	if err != nil {
		panic(err)
	}
	return g
}

func tryGroup(logic types.LogicOperator, conditions []StatementPart) (types.Group, error) {
	if len(conditions) == 0 {
		return types.Group{}, render.NewInvalidConstructionError(string(types.KindGroup),
			string(logic)+" requires at least one condition")
	}
	for _, cond := range conditions {
		if cond == nil {
			return types.Group{}, render.NewInvalidConstructionError(string(types.KindGroup), "nil condition")
		}
		if _, ok := cond.(Condition); !ok {
			return types.Group{}, render.NewInvalidConstructionError(string(types.KindGroup),
				"items must be conditions, got "+string(cond.Kind()))
		}
	}
	return types.Group{Logic: logic, Items: conditions}, nil
}

// Exists creates an existence test over a sub-select.
func Exists(sel *types.SelectStatement) types.Exists {
	return types.Exists{Select: sel}
}

// NotExists creates a negated existence test over a sub-select.
func NotExists(sel *types.SelectStatement) types.Exists {
	return types.Exists{Select: sel, Not: true}
}

// TryPredicate converts a boolean condition into a scalar part,
// returning an error if the part is not a condition.
func TryPredicate(cond StatementPart) (types.ConditionPredicate, error) {
	if cond == nil {
		return types.ConditionPredicate{}, render.NewInvalidConstructionError(string(types.KindConditionPredicate), "predicate must not be nil")
	}
	if _, ok := cond.(Condition); !ok {
		return types.ConditionPredicate{}, render.NewInvalidConstructionError(string(types.KindConditionPredicate),
			"predicate must be a condition, got "+string(cond.Kind()))
	}
	return types.ConditionPredicate{Predicate: cond}, nil
}

// Predicate converts a boolean condition into a scalar part.
// Use WithAlias on the result to name the output column.
func Predicate(cond StatementPart) types.ConditionPredicate {
	p, err := TryPredicate(cond)
	if err != nil {
		panic(err)
	}
	return p
}
