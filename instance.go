package partsql

import (
	"fmt"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/partsql/internal/types"
)

// PartQL is an instance of the part constructors bound to a specific
// DBML schema. Constructors on the instance reject tables and columns
// the schema does not know about.
type PartQL struct {
	project *dbml.Project
	// Internal indexes for fast validation
	tables  map[string]*dbml.Table
	columns map[string]map[string]*dbml.Column // table -> column name -> column
}

// NewFromDBML creates a new PartQL instance from a DBML project.
func NewFromDBML(project *dbml.Project) (*PartQL, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	p := &PartQL{
		project: project,
		tables:  make(map[string]*dbml.Table),
		columns: make(map[string]map[string]*dbml.Column),
	}

	// Build indexes for fast validation
	for _, table := range project.Tables {
		p.tables[table.Name] = table
		p.columns[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			p.columns[table.Name][col.Name] = col
		}
	}

	return p, nil
}

// validateTable checks if a table exists in the schema.
func (p *PartQL) validateTable(name string) error {
	if _, ok := p.tables[name]; !ok {
		return fmt.Errorf("table '%s' not found in schema", name)
	}
	return nil
}

// validateColumn checks if a column exists in any table in the schema.
func (p *PartQL) validateColumn(name string) error {
	for _, tableColumns := range p.columns {
		if _, ok := tableColumns[name]; ok {
			return nil // Found it
		}
	}
	return fmt.Errorf("column '%s' not found in schema", name)
}

// validateTableOrAlias validates both table names and aliases.
func (p *PartQL) validateTableOrAlias(tableOrAlias string) error {
	// Must be either:
	// 1. A single lowercase letter (table alias), OR
	// 2. A registered table name
	if isValidTableAlias(tableOrAlias) {
		return nil
	}
	if err := p.validateTable(tableOrAlias); err == nil {
		return nil
	}
	return fmt.Errorf("qualifier requires single-letter alias (a-z) or schema table name, got: %s", tableOrAlias)
}

// TryT creates a schema-validated table reference, returning an error if invalid.
func (p *PartQL) TryT(name string, alias ...string) (types.Table, error) {
	if err := p.validateTable(name); err != nil {
		return types.Table{}, fmt.Errorf("invalid table: %w", err)
	}
	return TryT(name, alias...)
}

// T creates a schema-validated table reference.
func (p *PartQL) T(name string, alias ...string) types.Table {
	t, err := p.TryT(name, alias...)
	if err != nil {
		panic(err)
	}
	return t
}

// TryF creates a schema-validated column reference, returning an error if invalid.
func (p *PartQL) TryF(name string) (types.Column, error) {
	if err := p.validateColumn(name); err != nil {
		return types.Column{}, fmt.Errorf("invalid column: %w", err)
	}
	return TryF(name)
}

// F creates a schema-validated column reference.
func (p *PartQL) F(name string) types.Column {
	c, err := p.TryF(name)
	if err != nil {
		panic(err)
	}
	return c
}

// TryP creates a validated parameter reference, returning an error if invalid.
func (*PartQL) TryP(name string) (types.Param, error) {
	return TryP(name)
}

// P creates a validated parameter reference.
func (p *PartQL) P(name string) types.Param {
	param, err := p.TryP(name)
	if err != nil {
		panic(err)
	}
	return param
}

// TryC creates a schema-validated comparison, returning an error if invalid.
func (p *PartQL) TryC(column types.Column, op types.Operator, param types.Param) (types.Comparison, error) {
	if err := p.validateColumn(column.Name); err != nil {
		return types.Comparison{}, err
	}
	return C(column, op, param), nil
}

// C creates a schema-validated comparison.
func (p *PartQL) C(column types.Column, op types.Operator, param types.Param) types.Comparison {
	c, err := p.TryC(column, op, param)
	if err != nil {
		panic(err)
	}
	return c
}

// WithQualifier creates a new column with a table/alias prefix,
// validated against the schema.
func (p *PartQL) WithQualifier(column types.Column, tableOrAlias string) types.Column {
	c, err := p.TryWithQualifier(column, tableOrAlias)
	if err != nil {
		panic(err)
	}
	return c
}

// TryWithQualifier creates a new column with a table/alias prefix,
// returning an error if invalid.
func (p *PartQL) TryWithQualifier(column types.Column, tableOrAlias string) (types.Column, error) {
	if err := p.validateTableOrAlias(tableOrAlias); err != nil {
		return types.Column{}, err
	}
	return types.Column{
		Name:      column.Name,
		Qualifier: tableOrAlias,
	}, nil
}
