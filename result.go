package partsql

import "github.com/zoobzio/partsql/internal/types"

// QueryResult contains the rendered SQL query and required parameters.
type QueryResult = types.QueryResult
