package partsql

import (
	"fmt"

	"github.com/zoobzio/partsql/internal/render"
	"github.com/zoobzio/partsql/internal/types"
)

// TryF creates a column reference, returning an error if invalid.
func TryF(name string) (types.Column, error) {
	if name == "" {
		return types.Column{}, render.NewInvalidConstructionError(string(types.KindColumn), "name must not be empty")
	}
	if !isValidSQLIdentifier(name) {
		return types.Column{}, render.NewInvalidConstructionError(string(types.KindColumn), fmt.Sprintf("unsafe column name: %s", name))
	}
	// Once structs have been scanned, only registered columns are allowed.
	if registryHasColumns() {
		if err := ValidateColumn(name); err != nil {
			return types.Column{}, render.NewInvalidConstructionError(string(types.KindColumn), err.Error())
		}
	}
	return types.Column{Name: name}, nil
}

// F creates a column reference.
func F(name string) types.Column {
	column, err := TryF(name)
	if err != nil {
		panic(err)
	}
	return column
}

// validateQualifier validates a table name or single-letter alias used
// as a column qualifier.
func validateQualifier(tableOrAlias string) error {
	// Must be either:
	// 1. A single lowercase letter (table alias), OR
	// 2. A safe table identifier
	if isValidTableAlias(tableOrAlias) {
		return nil
	}
	if isValidSQLIdentifier(tableOrAlias) {
		return nil
	}
	return fmt.Errorf("qualifier must be single-letter alias (a-z) or safe table name, got: %s", tableOrAlias)
}

// the types package calls back into this validator so that
// Column.WithQualifier enforces the same rules as the constructors.
func init() {
	types.SetQualifierValidator(validateQualifier)
}
