package partsql

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
		usedParams:    ctx.usedParams, // Share the same map
		paramCallback: ctx.paramCallback,
	}, nil
}

// addParam adds a parameter with proper namespacing.
func (ctx *renderContext) addParam(param types.Param) string {
	// Apply prefix for subqueries
	if ctx.paramPrefix != "" {
		param = types.Param{Name: ctx.paramPrefix + param.Name}
	}
	return ctx.paramCallback(param)
}

// Default is the dialect-neutral renderer. It keeps the tree's own
// function keywords (ROOT, FLOOR, TOUPPER, ...), emits identifiers
// unquoted, and ignores table schemas. Dialect packages provide
// engine-specific spellings on top of the same tree.
//
// Rendering is a pure read-only traversal: the same tree renders to the
// same text on every call, and distinct trees may be rendered
// concurrently. Mutating a tree while it renders is undefined.
type Default struct{}

// NewDefault creates the dialect-neutral renderer.
func NewDefault() *Default {
	return &Default{}
}

// RenderPart converts a single statement part to SQL text.
// Rendering is all-or-nothing: on any error no SQL is returned.
func (d *Default) RenderPart(part types.StatementPart) (*types.QueryResult, error) {
	if part == nil {
		return nil, render.NewMalformedTreeError("part", "self")
	}

	var sql strings.Builder
	var params []string
	usedParams := make(map[string]bool)

	addParam := func(param types.Param) string {
		placeholder := ":" + param.Name

		// Track unique parameter names
		if !usedParams[param.Name] {
			params = append(params, param.Name)
			usedParams[param.Name] = true
		}

		return placeholder
	}

	ctx := newRenderContext(addParam)

	if err := d.renderPart(part, &sql, ctx); err != nil {
		return nil, err
	}

	return &types.QueryResult{
		SQL:            sql.String(),
		RequiredParams: params,
	}, nil
}

// Render converts a full select statement to SQL text.
func (d *Default) Render(stmt *types.SelectStatement) (*types.QueryResult, error) {
	if stmt == nil {
		return nil, render.NewMalformedTreeError(string(types.KindSelect), "self")
	}
	return d.RenderPart(stmt)
}

// renderPart is the recursive dispatch over the closed part family.
func (d *Default) renderPart(part types.StatementPart, sql *strings.Builder, ctx *renderContext) error {
	switch p := part.(type) {
	case types.Table:
		sql.WriteString(d.renderTable(p))
	case types.Column:
		sql.WriteString(d.renderColumn(p))
	case types.Param:
		sql.WriteString(ctx.addParam(p))
	case types.NumberRoot:
		return d.renderFunc(p.Kind(), "ROOT", sql, ctx,
			child{"Argument", p.Argument}, child{"Root", p.Root})
	case types.NumberFloor:
		return d.renderFunc(p.Kind(), "FLOOR", sql, ctx, child{"Argument", p.Argument})
	case types.NumberCeiling:
		return d.renderFunc(p.Kind(), "CEILING", sql, ctx, child{"Argument", p.Argument})
	case types.NumberAbsolute:
		return d.renderFunc(p.Kind(), "ABS", sql, ctx, child{"Argument", p.Argument})
	case types.StringToUpper:
		return d.renderFunc(p.Kind(), "TOUPPER", sql, ctx, child{"Argument", p.Argument})
	case types.StringToLower:
		return d.renderFunc(p.Kind(), "TOLOWER", sql, ctx, child{"Argument", p.Argument})
	case types.ConditionalCase:
		return d.renderConditionalCase(p, sql, ctx)
	case types.Comparison:
		return d.renderComparison(p, sql, ctx)
	case types.Group:
		return d.renderGroup(p, sql, ctx)
	case types.Exists:
		return d.renderExists(p, sql, ctx)
	case types.ConditionPredicate:
		return d.renderPredicate(p, sql, ctx)
	case *types.SelectStatement:
		if err := p.Validate(); err != nil {
			return fmt.Errorf("invalid select statement: %w", err)
		}
		return d.renderSelect(p, sql, ctx)
	default:
		return fmt.Errorf("unknown statement part: %T", part)
	}
	return nil
}

// child pairs a mandatory child part with its name for error reporting.
type child struct {
	name string
	part types.StatementPart
}

// renderFunc renders KEYWORD(arg[, arg2]). All children are checked
// before any text is written so a malformed node emits nothing.
func (d *Default) renderFunc(kind types.Kind, keyword string, sql *strings.Builder, ctx *renderContext, children ...child) error {
	for _, c := range children {
		if c.part == nil {
			return render.NewMalformedTreeError(string(kind), c.name)
		}
	}

	sql.WriteString(keyword)
	sql.WriteString("(")
	for i, c := range children {
		if i > 0 {
			sql.WriteString(", ")
		}
		if err := d.renderPart(c.part, sql, ctx); err != nil {
			return err
		}
	}
	sql.WriteString(")")
	return nil
}

// renderConditionalCase renders one of the two CASE shapes. The shape
// is decided once at this node by the Condition capability of Test;
// chain links are walked only for the boolean-test shape.
//
// Neither shape emits a trailing END keyword. The target dialect family
// tolerates the bare form and downstream consumers depend on the exact
// text, so the omission is preserved rather than corrected.
func (d *Default) renderConditionalCase(cc types.ConditionalCase, sql *strings.Builder, ctx *renderContext) error {
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
		// Value test: single-arm simple CASE. No chain walking - a
		// nested ConditionalCase in IfFalse renders verbatim as the
		// ELSE expression.
		sql.WriteString("(CASE ")
		if err := d.renderPart(cc.Test, sql, ctx); err != nil {
			return err
		}
		sql.WriteString(" WHEN True THEN ")
		if err := d.renderPart(cc.IfTrue, sql, ctx); err != nil {
			return err
		}
		sql.WriteString(" ELSE ")
		if err := d.renderPart(cc.IfFalse, sql, ctx); err != nil {
			return err
		}
		sql.WriteString(")")
		return nil
	}

	// Boolean test: WHEN/THEN ladder. The IfFalse chain is unwrapped
	// iteratively so arbitrarily long else-if chains render with flat
	// stack usage.
	sql.WriteString("(CASE WHEN ")
	if err := d.renderPart(cc.Test, sql, ctx); err != nil {
		return err
	}
	sql.WriteString(" THEN ")
	if err := d.renderPart(cc.IfTrue, sql, ctx); err != nil {
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
		if err := d.renderPart(link.Test, sql, ctx); err != nil {
			return err
		}
		sql.WriteString(" THEN ")
		if err := d.renderPart(link.IfTrue, sql, ctx); err != nil {
			return err
		}
		tail = link.IfFalse
	}

	sql.WriteString(" ELSE ")
	if err := d.renderPart(tail, sql, ctx); err != nil {
		return err
	}
	sql.WriteString(")")
	return nil
}

func (d *Default) renderComparison(c types.Comparison, sql *strings.Builder, ctx *renderContext) error {
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
	if err := d.renderPart(c.Left, sql, ctx); err != nil {
		return err
	}
	sql.WriteString(" ")
	sql.WriteString(string(c.Operator))
	if !unary {
		sql.WriteString(" ")
		if err := d.renderPart(c.Right, sql, ctx); err != nil {
			return err
		}
	}
	if c.Not {
		sql.WriteString(")")
	}
	return nil
}

func (d *Default) renderGroup(g types.Group, sql *strings.Builder, ctx *renderContext) error {
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
		if err := d.renderPart(item, sql, ctx); err != nil {
			return err
		}
	}
	sql.WriteString(")")
	return nil
}

// renderExists emits EXISTS (select) or NOT EXISTS (select). The Not
// flag is read here and nowhere else.
func (d *Default) renderExists(e types.Exists, sql *strings.Builder, ctx *renderContext) error {
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
	if err := d.renderSelect(e.Select, sql, subCtx); err != nil {
		return err
	}
	sql.WriteString(")")
	return nil
}

func (d *Default) renderPredicate(p types.ConditionPredicate, sql *strings.Builder, ctx *renderContext) error {
	if p.Predicate == nil {
		return render.NewMalformedTreeError(string(types.KindConditionPredicate), "Predicate")
	}

	sql.WriteString("(CASE WHEN ")
	if err := d.renderPart(p.Predicate, sql, ctx); err != nil {
		return err
	}
	sql.WriteString(" THEN True ELSE False)")
	if p.Alias != "" {
		sql.WriteString(" AS ")
		sql.WriteString(p.Alias)
	}
	return nil
}

func (d *Default) renderSelect(stmt *types.SelectStatement, sql *strings.Builder, ctx *renderContext) error {
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
			if err := d.renderPart(part, sql, ctx); err != nil {
				return err
			}
		}
	}

	sql.WriteString(" FROM ")
	sql.WriteString(d.renderTable(stmt.Target))

	if stmt.Where != nil {
		sql.WriteString(" WHERE ")
		if err := d.renderPart(stmt.Where, sql, ctx); err != nil {
			return err
		}
	}

	if len(stmt.Ordering) > 0 {
		sql.WriteString(" ORDER BY ")
		for i, order := range stmt.Ordering {
			if i > 0 {
				sql.WriteString(", ")
			}
			if err := d.renderPart(order.Part, sql, ctx); err != nil {
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

// renderTable emits <name> or <name> AS <alias>. Schema is carried on
// the node but not rendered here; dialects that support qualification
// prefix it themselves.
func (d *Default) renderTable(table types.Table) string {
	if table.Alias != "" {
		return fmt.Sprintf("%s AS %s", table.Name, table.Alias)
	}
	return table.Name
}

func (d *Default) renderColumn(column types.Column) string {
	if column.Qualifier != "" {
		return fmt.Sprintf("%s.%s", column.Qualifier, column.Name)
	}
	return column.Name
}

// RenderPart renders a single part with the dialect-neutral renderer.
func RenderPart(part types.StatementPart) (*QueryResult, error) {
	return NewDefault().RenderPart(part)
}

// Render renders a select statement with the dialect-neutral renderer.
func Render(stmt *types.SelectStatement) (*QueryResult, error) {
	return NewDefault().Render(stmt)
}
