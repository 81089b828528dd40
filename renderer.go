package partsql

import "github.com/zoobzio/partsql/internal/types"

// Renderer defines the interface for SQL dialect-specific rendering.
// Implementations convert statement parts to dialect-specific SQL with
// named parameters.
type Renderer interface {
	// RenderPart converts a single statement part to SQL text.
	RenderPart(part types.StatementPart) (*types.QueryResult, error)

	// Render converts a full select statement to SQL text.
	Render(stmt *types.SelectStatement) (*types.QueryResult, error)
}
