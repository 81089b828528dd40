package partsql

import (
	"fmt"

	"github.com/zoobzio/partsql/internal/types"
)

// Builder provides a fluent API for constructing select statements.
// The tree is frozen by Build; the builder itself is the only mutation
// point.
type Builder struct {
	stmt *types.SelectStatement
	err  error
}

// Select creates a new select statement builder.
func Select(t types.Table) *Builder {
	return &Builder{
		stmt: &types.SelectStatement{
			Target: t,
		},
	}
}

// Parts sets the select list. Calling it multiple times appends.
func (b *Builder) Parts(parts ...StatementPart) *Builder {
	if b.err != nil {
		return b
	}
	for _, part := range parts {
		if part == nil {
			b.err = fmt.Errorf("nil select list part")
			return b
		}
	}
	b.stmt.Parts = append(b.stmt.Parts, parts...)
	return b
}

// Distinct marks the statement as SELECT DISTINCT.
func (b *Builder) Distinct() *Builder {
	if b.err != nil {
		return b
	}
	b.stmt.Distinct = true
	return b
}

// Where sets the statement condition. Multiple calls combine with AND.
func (b *Builder) Where(cond StatementPart) *Builder {
	if b.err != nil {
		return b
	}
	if cond == nil {
		b.err = fmt.Errorf("nil WHERE condition")
		return b
	}
	if _, ok := cond.(Condition); !ok {
		b.err = fmt.Errorf("WHERE requires a condition, got %s", cond.Kind())
		return b
	}

	if b.stmt.Where == nil {
		b.stmt.Where = cond
		return b
	}

	// Combine with any existing condition, flattening repeated calls
	// into a single AND group.
	if g, ok := b.stmt.Where.(types.Group); ok && g.Logic == types.AND && !g.Not {
		// Copy the items so a group held by the caller is not mutated
		// through slice aliasing.
		items := make([]StatementPart, 0, len(g.Items)+1)
		items = append(items, g.Items...)
		g.Items = append(items, cond)
		b.stmt.Where = g
		return b
	}
	b.stmt.Where = types.Group{
		Logic: types.AND,
		Items: []StatementPart{b.stmt.Where, cond},
	}
	return b
}

// OrderBy appends an ordering over an arbitrary part.
func (b *Builder) OrderBy(part StatementPart, direction types.Direction) *Builder {
	if b.err != nil {
		return b
	}
	if part == nil {
		b.err = fmt.Errorf("nil ORDER BY part")
		return b
	}
	b.stmt.Ordering = append(b.stmt.Ordering, types.OrderBy{Part: part, Direction: direction})
	return b
}

// Limit sets the row limit.
func (b *Builder) Limit(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 0 {
		b.err = fmt.Errorf("LIMIT must not be negative, got %d", n)
		return b
	}
	b.stmt.Limit = &n
	return b
}

// Offset sets the row offset.
func (b *Builder) Offset(n int) *Builder {
	if b.err != nil {
		return b
	}
	if n < 0 {
		b.err = fmt.Errorf("OFFSET must not be negative, got %d", n)
		return b
	}
	b.stmt.Offset = &n
	return b
}

// Build validates and returns the finished statement.
func (b *Builder) Build() (*types.SelectStatement, error) {
	if b.err != nil {
		return nil, b.err
	}
	if err := b.stmt.Validate(); err != nil {
		return nil, err
	}
	return b.stmt, nil
}

// Render builds the statement and renders it with the given renderer.
func (b *Builder) Render(r Renderer) (*QueryResult, error) {
	stmt, err := b.Build()
	if err != nil {
		return nil, err
	}
	return r.Render(stmt)
}

// Sub builds the statement for use as a subquery, panicking on error.
func Sub(builder *Builder) *types.SelectStatement {
	stmt, err := builder.Build()
	if err != nil {
		panic(fmt.Errorf("failed to build subquery: %w", err))
	}
	return stmt
}
