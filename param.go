package partsql

import (
	"fmt"

	"github.com/zoobzio/partsql/internal/render"
	"github.com/zoobzio/partsql/internal/types"
)

// TryP creates a named parameter reference, returning an error if invalid.
// Parameter names share the identifier screening used for tables and
// columns: values always travel as driver parameters, never as inline
// literals, so the name is the only text that reaches the SQL.
func TryP(name string) (types.Param, error) {
	if name == "" {
		return types.Param{}, render.NewInvalidConstructionError(string(types.KindParam), "name must not be empty")
	}
	if !isValidSQLIdentifier(name) {
		return types.Param{}, render.NewInvalidConstructionError(string(types.KindParam), fmt.Sprintf("unsafe parameter name: %s", name))
	}
	return types.Param{Name: name}, nil
}

// P creates a named parameter reference.
func P(name string) types.Param {
	param, err := TryP(name)
	if err != nil {
		panic(err)
	}
	return param
}
