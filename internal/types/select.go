package types

import "fmt"

// Direction represents sort direction.
type Direction string

const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// OrderBy represents an ORDER BY entry.
type OrderBy struct {
	Part      StatementPart
	Direction Direction
}

// Constants for subquery handling.
const (
	MaxSubqueryDepth = 3 // Prevent DoS via deep nesting
)

// SelectStatement represents a full SELECT query over statement parts.
// Exists treats it as an opaque renderable sub-tree.
// This is exported from the internal package so dialect packages can use it,
// but external users cannot import this package.
//
//nolint:govet // fieldalignment: Logical grouping is preferred over memory optimization
type SelectStatement struct {
	Target   Table
	Parts    []StatementPart // select list; empty means *
	Where    StatementPart   // must satisfy Condition when set
	Ordering []OrderBy
	Limit    *int
	Offset   *int
	Distinct bool
}

// Kind reports the part discriminator.
func (*SelectStatement) Kind() Kind { return KindSelect }

// Validate performs basic structural validation on the statement.
func (s *SelectStatement) Validate() error {
	if s.Target.Name == "" {
		return fmt.Errorf("target table is required")
	}

	for i, part := range s.Parts {
		if part == nil {
			return fmt.Errorf("select list entry %d is nil", i)
		}
	}

	if s.Where != nil {
		if _, ok := s.Where.(Condition); !ok {
			return fmt.Errorf("WHERE clause requires a condition, got %s", s.Where.Kind())
		}
	}

	for i, order := range s.Ordering {
		if order.Part == nil {
			return fmt.Errorf("ORDER BY entry %d is nil", i)
		}
		if order.Direction != ASC && order.Direction != DESC {
			return fmt.Errorf("ORDER BY entry %d has invalid direction: %s", i, order.Direction)
		}
	}

	if s.Limit != nil && *s.Limit < 0 {
		return fmt.Errorf("LIMIT must not be negative")
	}
	if s.Offset != nil && *s.Offset < 0 {
		return fmt.Errorf("OFFSET must not be negative")
	}

	return nil
}
