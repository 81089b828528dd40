// Package sqlite provides the SQLite dialect renderer for partsql.
package sqlite

import (
	"fmt"
	"strings"

	"github.com/zoobzio/partsql/internal/render"
	"github.com/zoobzio/partsql/internal/types"
)

// renderContext tracks rendering state for parameter namespacing and depth limiting.
type renderContext struct {
	usedParams    map[string]bool
	paramCallback func(types.Param) string
	paramPrefix   string
	depth         int
}

// newRenderContext creates a new render context.
func newRenderContext(paramCallback func(types.Param) string) *renderContext {
	return &renderContext{
		depth:         0,
		paramPrefix:   "",
		usedParams:    make(map[string]bool),
		paramCallback: paramCallback,
	}
}

// withSubquery creates a child context for rendering a subquery.
func (ctx *renderContext) withSubquery() (*renderContext, error) {
	if ctx.depth >= types.MaxSubqueryDepth {
		return nil, fmt.Errorf("maximum subquery depth (%d) exceeded", types.MaxSubqueryDepth)
	}

	return &renderContext{
		depth:         ctx.depth + 1,
		paramPrefix:   fmt.Sprintf("sq%d_", ctx.depth+1),
		usedParams:    ctx.usedParams,
		paramCallback: ctx.paramCallback,
	}, nil
}

// addParam adds a parameter with proper namespacing.
func (ctx *renderContext) addParam(param types.Param) string {
	if ctx.paramPrefix != "" {
		param = types.Param{Name: ctx.paramPrefix + param.Name}
	}
	return ctx.paramCallback(param)
}

// Renderer implements the SQLite dialect renderer.
type Renderer struct{}

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{}
}

// Capabilities reports the SQL surface supported by SQLite.
func (r *Renderer) Capabilities() render.Capabilities {
	return render.Capabilities{
		SchemaQualification: false,
		CeilingFunction:     false, // requires the math extension
		RootExpression:      false, // requires the math extension
		BooleanKeywords:     false,
	}
}

// RenderPart converts a statement part to SQLite SQL.
func (r *Renderer) RenderPart(part types.StatementPart) (*types.QueryResult, error) {
	if part == nil {
		return nil, render.NewMalformedTreeError("part", "self")
	}

	// Validate unsupported features before emitting anything
	if err := r.validatePart(part); err != nil {
		return nil, err
	}

	var sql strings.Builder
	var params []string
	usedParams := make(map[string]bool)

	addParam := func(param types.Param) string {
		placeholder := ":" + param.Name

		if !usedParams[param.Name] {
			params = append(params, param.Name)
			usedParams[param.Name] = true
		}

		return placeholder
	}

	ctx := newRenderContext(addParam)

	if err := r.renderPart(part, &sql, ctx); err != nil {
		return nil, err
	}

	return &types.QueryResult{
		SQL:            sql.String(),
		RequiredParams: params,
	}, nil
}

// Render converts a select statement to SQLite SQL.
func (r *Renderer) Render(stmt *types.SelectStatement) (*types.QueryResult, error) {
	if stmt == nil {
		return nil, render.NewMalformedTreeError(string(types.KindSelect), "self")
	}
	return r.RenderPart(stmt)
}

// validatePart walks the tree for features SQLite cannot express.
// Structural (nil child) checks stay in the render pass; this pass only
// rejects whole features so rendering never starts on them.
func (r *Renderer) validatePart(part types.StatementPart) error {
	switch p := part.(type) {
	case types.Table:
		if p.Schema != "" {
			return render.NewUnsupportedFeatureError("sqlite", "schema-qualified table names",
				"SQLite attaches databases instead of schemas")
		}
	case types.NumberRoot:
		return render.NewUnsupportedFeatureError("sqlite", "ROOT expressions",
			"POWER requires the SQLite math extension")
	case types.NumberCeiling:
		return render.NewUnsupportedFeatureError("sqlite", "CEILING",
			"CEIL requires the SQLite math extension")
	case types.NumberFloor:
		return r.validatePart(p.Argument)
	case types.NumberAbsolute:
		return r.validatePart(p.Argument)
	case types.StringToUpper:
		return r.validatePart(p.Argument)
	case types.StringToLower:
		return r.validatePart(p.Argument)
	case types.ConditionalCase:
		if err := r.validatePart(p.Test); err != nil {
			return err
		}
		if err := r.validatePart(p.IfTrue); err != nil {
			return err
		}
		return r.validatePart(p.IfFalse)
	case types.Comparison:
		if err := r.validatePart(p.Left); err != nil {
			return err
		}
		return r.validatePart(p.Right)
	case types.Group:
		for _, item := range p.Items {
			if err := r.validatePart(item); err != nil {
				return err
			}
		}
	case types.Exists:
		if p.Select != nil {
			return r.validateSelect(p.Select)
		}
	case types.ConditionPredicate:
		return r.validatePart(p.Predicate)
	case *types.SelectStatement:
		return r.validateSelect(p)
	}
	return nil
}

func (r *Renderer) validateSelect(stmt *types.SelectStatement) error {
	if err := r.validatePart(stmt.Target); err != nil {
		return err
	}
	for _, part := range stmt.Parts {
		if err := r.validatePart(part); err != nil {
			return err
		}
	}
	if stmt.Where != nil {
		if err := r.validatePart(stmt.Where); err != nil {
			return err
		}
	}
	for _, order := range stmt.Ordering {
		if err := r.validatePart(order.Part); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderPart(part types.StatementPart, sql *strings.Builder, ctx *renderContext) error {
	switch p := part.(type) {
	case types.Table:
		sql.WriteString(r.renderTable(p))
	case types.Column:
		sql.WriteString(r.renderColumn(p))
	case types.Param:
		sql.WriteString(ctx.addParam(p))
	case types.NumberFloor:
		return r.renderUnaryFunc(p.Kind(), "FLOOR", p.Argument, sql, ctx)
	case types.NumberAbsolute:
		return r.renderUnaryFunc(p.Kind(), "ABS", p.Argument, sql, ctx)
	case types.StringToUpper:
		return r.renderUnaryFunc(p.Kind(), "UPPER", p.Argument, sql, ctx)
	case types.StringToLower:
		return r.renderUnaryFunc(p.Kind(), "LOWER", p.Argument, sql, ctx)
	case types.ConditionalCase:
		return r.renderConditionalCase(p, sql, ctx)
	case types.Comparison:
		return r.renderComparison(p, sql, ctx)
	case types.Group:
		return r.renderGroup(p, sql, ctx)
	case types.Exists:
		return r.renderExists(p, sql, ctx)
	case types.ConditionPredicate:
		return r.renderPredicate(p, sql, ctx)
	case *types.SelectStatement:
		if err := p.Validate(); err != nil {
			return fmt.Errorf("invalid select statement: %w", err)
		}
		return r.renderSelect(p, sql, ctx)
	default:
		return fmt.Errorf("unknown statement part: %T", part)
	}
	return nil
}

func (r *Renderer) renderUnaryFunc(kind types.Kind, keyword string, argument types.StatementPart, sql *strings.Builder, ctx *renderContext) error {
	if argument == nil {
		return render.NewMalformedTreeError(string(kind), "Argument")
	}
	sql.WriteString(keyword)
	sql.WriteString("(")
	if err := r.renderPart(argument, sql, ctx); err != nil {
		return err
	}
	sql.WriteString(")")
	return nil
}

// renderConditionalCase keeps the core's two CASE shapes. SQLite has no
// boolean keywords in older versions, so the value-test arm compares
// against 1.
func (r *Renderer) renderConditionalCase(cc types.ConditionalCase, sql *strings.Builder, ctx *renderContext) error {
	if cc.Test == nil {
		return render.NewMalformedTreeError(string(types.KindConditionalCase), "Test")
	}
	if cc.IfTrue == nil {
		return render.NewMalformedTreeError(string(types.KindConditionalCase), "IfTrue")
	}
	if cc.IfFalse == nil {
		return render.NewMalformedTreeError(string(types.KindConditionalCase), "IfFalse")
	}

	if _, ok := cc.Test.(types.Condition); !ok {
		sql.WriteString("(CASE ")
		if err := r.renderPart(cc.Test, sql, ctx); err != nil {
			return err
		}
		sql.WriteString(" WHEN 1 THEN ")
		if err := r.renderPart(cc.IfTrue, sql, ctx); err != nil {
			return err
		}
		sql.WriteString(" ELSE ")
		if err := r.renderPart(cc.IfFalse, sql, ctx); err != nil {
			return err
		}
		sql.WriteString(")")
		return nil
	}

	sql.WriteString("(CASE WHEN ")
	if err := r.renderPart(cc.Test, sql, ctx); err != nil {
		return err
	}
	sql.WriteString(" THEN ")
	if err := r.renderPart(cc.IfTrue, sql, ctx); err != nil {
		return err
	}

	tail := cc.IfFalse
	for {
		link, ok := tail.(types.ConditionalCase)
		if !ok {
			break
		}
		if link.Test == nil {
			return render.NewMalformedTreeError(string(types.KindConditionalCase), "Test")
		}
		if link.IfTrue == nil {
			return render.NewMalformedTreeError(string(types.KindConditionalCase), "IfTrue")
		}
		if link.IfFalse == nil {
			return render.NewMalformedTreeError(string(types.KindConditionalCase), "IfFalse")
		}
		sql.WriteString(" WHEN ")
		if err := r.renderPart(link.Test, sql, ctx); err != nil {
			return err
		}
		sql.WriteString(" THEN ")
		if err := r.renderPart(link.IfTrue, sql, ctx); err != nil {
			return err
		}
		tail = link.IfFalse
	}

	sql.WriteString(" ELSE ")
	if err := r.renderPart(tail, sql, ctx); err != nil {
		return err
	}
	sql.WriteString(")")
	return nil
}

func (r *Renderer) renderComparison(c types.Comparison, sql *strings.Builder, ctx *renderContext) error {
	if c.Left == nil {
		return render.NewMalformedTreeError(string(types.KindComparison), "Left")
	}
	unary := c.Operator == types.IsNull || c.Operator == types.IsNotNull
	if !unary && c.Right == nil {
		return render.NewMalformedTreeError(string(types.KindComparison), "Right")
	}

	if c.Not {
		sql.WriteString("NOT (")
	}
	if err := r.renderPart(c.Left, sql, ctx); err != nil {
		return err
	}
	sql.WriteString(" ")
	sql.WriteString(string(c.Operator))
	if !unary {
		sql.WriteString(" ")
		if err := r.renderPart(c.Right, sql, ctx); err != nil {
			return err
		}
	}
	if c.Not {
		sql.WriteString(")")
	}
	return nil
}

func (r *Renderer) renderGroup(g types.Group, sql *strings.Builder, ctx *renderContext) error {
	if len(g.Items) == 0 {
		return render.NewMalformedTreeError(string(types.KindGroup), "Items")
	}
	for _, item := range g.Items {
		if item == nil {
			return render.NewMalformedTreeError(string(types.KindGroup), "Items")
		}
	}

	if g.Not {
		sql.WriteString("NOT ")
	}
	sql.WriteString("(")
	for i, item := range g.Items {
		if i > 0 {
			fmt.Fprintf(sql, " %s ", g.Logic)
		}
		if err := r.renderPart(item, sql, ctx); err != nil {
			return err
		}
	}
	sql.WriteString(")")
	return nil
}

func (r *Renderer) renderExists(e types.Exists, sql *strings.Builder, ctx *renderContext) error {
	if e.Select == nil {
		return render.NewMalformedTreeError(string(types.KindExists), "Select")
	}
	if err := e.Select.Validate(); err != nil {
		return fmt.Errorf("invalid EXISTS subquery: %w", err)
	}

	subCtx, err := ctx.withSubquery()
	if err != nil {
		return err
	}

	if e.Not {
		sql.WriteString("NOT ")
	}
	sql.WriteString("EXISTS (")
	if err := r.renderSelect(e.Select, sql, subCtx); err != nil {
		return err
	}
	sql.WriteString(")")
	return nil
}

func (r *Renderer) renderPredicate(p types.ConditionPredicate, sql *strings.Builder, ctx *renderContext) error {
	if p.Predicate == nil {
		return render.NewMalformedTreeError(string(types.KindConditionPredicate), "Predicate")
	}

	sql.WriteString("(CASE WHEN ")
	if err := r.renderPart(p.Predicate, sql, ctx); err != nil {
		return err
	}
	sql.WriteString(" THEN 1 ELSE 0)")
	if p.Alias != "" {
		sql.WriteString(" AS ")
		sql.WriteString(r.quoteIdentifier(p.Alias))
	}
	return nil
}

func (r *Renderer) renderSelect(stmt *types.SelectStatement, sql *strings.Builder, ctx *renderContext) error {
	sql.WriteString("SELECT ")

	if stmt.Distinct {
		sql.WriteString("DISTINCT ")
	}

	if len(stmt.Parts) == 0 {
		sql.WriteString("*")
	} else {
		for i, part := range stmt.Parts {
			if i > 0 {
				sql.WriteString(", ")
			}
			if err := r.renderPart(part, sql, ctx); err != nil {
				return err
			}
		}
	}

	sql.WriteString(" FROM ")
	sql.WriteString(r.renderTable(stmt.Target))

	if stmt.Where != nil {
		sql.WriteString(" WHERE ")
		if err := r.renderPart(stmt.Where, sql, ctx); err != nil {
			return err
		}
	}

	if len(stmt.Ordering) > 0 {
		sql.WriteString(" ORDER BY ")
		for i, order := range stmt.Ordering {
			if i > 0 {
				sql.WriteString(", ")
			}
			if err := r.renderPart(order.Part, sql, ctx); err != nil {
				return err
			}
			sql.WriteString(" ")
			sql.WriteString(string(order.Direction))
		}
	}

	if stmt.Limit != nil {
		fmt.Fprintf(sql, " LIMIT %d", *stmt.Limit)
	}

	if stmt.Offset != nil {
		fmt.Fprintf(sql, " OFFSET %d", *stmt.Offset)
	}

	return nil
}

// quoteIdentifier quotes a SQLite identifier with double quotes.
func (r *Renderer) quoteIdentifier(name string) string {
	escaped := strings.ReplaceAll(name, `"`, `""`)
	return `"` + escaped + `"`
}

func (r *Renderer) renderTable(table types.Table) string {
	quotedName := r.quoteIdentifier(table.Name)
	if table.Alias != "" {
		return fmt.Sprintf("%s %s", quotedName, table.Alias)
	}
	return quotedName
}

func (r *Renderer) renderColumn(column types.Column) string {
	quotedName := r.quoteIdentifier(column.Name)
	if column.Qualifier != "" {
		return fmt.Sprintf("%s.%s", column.Qualifier, quotedName)
	}
	return quotedName
}
