// Package partsql provides a typed SQL statement-part tree with
// dialect-specific rendering.
//
// Queries are modeled as a closed family of statement parts: table and
// column references, named parameters, function wrappers, conditional
// CASE parts, existence tests over sub-selects, and boolean-to-scalar
// predicates. Rendering is a pure recursive reduction of the tree into
// SQL text with named parameters.
//
// # Basic Usage
//
// Parts are built with short validated constructors and rendered either
// with the dialect-neutral default renderer or a dialect package:
//
//	part := partsql.Floor(partsql.F("price"))
//
//	result, err := partsql.RenderPart(part)
//	// result.SQL: FLOOR(price)
//
// A full select statement uses the fluent builder:
//
//	import "github.com/zoobzio/partsql/postgres"
//
//	stmt := partsql.Select(partsql.T("orders", "o")).
//		Parts(partsql.F("id"), partsql.Upper(partsql.F("status"))).
//		Where(partsql.C(partsql.F("total"), partsql.GT, partsql.P("min_total"))).
//		OrderBy(partsql.F("id"), partsql.ASC).
//		Limit(10)
//
//	result, err := stmt.Render(postgres.New())
//	// result.SQL: SELECT "id", UPPER("status") FROM "orders" o WHERE "total" > :min_total ORDER BY "id" ASC LIMIT 10
//	// result.RequiredParams: []string{"min_total"}
//
// # Multi-Dialect Support
//
// The package supports multiple SQL dialects through the Renderer
// interface. Available dialects: postgres, mysql, sqlite, mssql. The
// default renderer in this package is dialect-neutral and keeps the
// tree's own function keywords (ROOT, FLOOR, TOUPPER, ...); dialect
// renderers substitute engine-specific spellings, quote identifiers,
// and apply schema qualification where supported.
//
// # Conditional Parts
//
// A ConditionalCase renders one of two shapes depending on whether its
// test carries the Condition capability. A boolean test collapses the
// else-if chain into a flat ladder:
//
//	(CASE WHEN age >= :adult THEN grown WHEN age >= :teen THEN teen ELSE child)
//
// while a value test emits a single-arm simple CASE. A ConditionPredicate
// goes the other way, embedding a condition where a value is expected:
//
//	(CASE WHEN x > :limit THEN True ELSE False) AS flag
//
// # Schema-Validated Usage
//
// For schema safety, create a PartQL instance from a DBML project:
//
//	instance, err := partsql.NewFromDBML(project)
//	if err != nil {
//		return err
//	}
//
//	// These panic if the column/table doesn't exist in the schema
//	orders := instance.T("orders")
//	total := instance.F("total")
//
// # Output Format
//
// All parameters render as named placeholders (`:param_name`); values
// are never inlined as literals. QueryResult carries the rendered SQL
// together with the ordered list of required parameter names.
package partsql

import "github.com/zoobzio/partsql/internal/types"

// StatementPart is the interface implemented by every node in the tree.
type StatementPart = types.StatementPart

// Condition marks a statement part as boolean-valued.
type Condition = types.Condition

// Kind identifies the concrete variant of a statement part.
type Kind = types.Kind

// Re-export part kind constants for public API.
const (
	KindTable              = types.KindTable
	KindColumn             = types.KindColumn
	KindParam              = types.KindParam
	KindNumberRoot         = types.KindNumberRoot
	KindNumberFloor        = types.KindNumberFloor
	KindNumberCeiling      = types.KindNumberCeiling
	KindNumberAbsolute     = types.KindNumberAbsolute
	KindStringToUpper      = types.KindStringToUpper
	KindStringToLower      = types.KindStringToLower
	KindConditionalCase    = types.KindConditionalCase
	KindComparison         = types.KindComparison
	KindGroup              = types.KindGroup
	KindExists             = types.KindExists
	KindConditionPredicate = types.KindConditionPredicate
	KindSelect             = types.KindSelect
)
