package partsql

import (
	"fmt"

	"github.com/zoobzio/partsql/internal/render"
	"github.com/zoobzio/partsql/internal/types"
)

// TryT creates a table reference, returning an error if invalid.
// A table name is required and screened for identifier safety; an
// empty name is an invalid construction, reported here rather than at
// render time.
func TryT(name string, alias ...string) (types.Table, error) {
	if name == "" {
		return types.Table{}, render.NewInvalidConstructionError(string(types.KindTable), "name must not be empty")
	}
	if !isValidSQLIdentifier(name) {
		return types.Table{}, render.NewInvalidConstructionError(string(types.KindTable), fmt.Sprintf("unsafe table name: %s", name))
	}
	// Once structs have been scanned, only registered tables are allowed.
	if registryHasTables() {
		if err := ValidateTable(name); err != nil {
			return types.Table{}, render.NewInvalidConstructionError(string(types.KindTable), err.Error())
		}
	}

	t := types.Table{Name: name}
	if len(alias) > 0 {
		// Enforce single lowercase letter for aliases
		if !isValidTableAlias(alias[0]) {
			return types.Table{}, render.NewInvalidConstructionError(string(types.KindTable),
				fmt.Sprintf("alias must be single lowercase letter (a-z), got: %s", alias[0]))
		}
		t.Alias = alias[0]
	}
	return t, nil
}

// T creates a table reference.
func T(name string, alias ...string) types.Table {
	table, err := TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return table
}

// TryTS creates a schema-qualified table reference, returning an error if invalid.
// The default renderer ignores the schema; dialect renderers that
// support qualification prefix it.
func TryTS(schema, name string, alias ...string) (types.Table, error) {
	t, err := TryT(name, alias...)
	if err != nil {
		return types.Table{}, err
	}
	if !isValidSQLIdentifier(schema) {
		return types.Table{}, render.NewInvalidConstructionError(string(types.KindTable), fmt.Sprintf("unsafe schema name: %s", schema))
	}
	return t.WithSchema(schema), nil
}

// TS creates a schema-qualified table reference.
func TS(schema, name string, alias ...string) types.Table {
	table, err := TryTS(schema, name, alias...)
	if err != nil {
		panic(err)
	}
	return table
}

// isValidTableAlias checks if a string is a valid single-letter table alias.
func isValidTableAlias(alias string) bool {
	return len(alias) == 1 && alias[0] >= 'a' && alias[0] <= 'z'
}
