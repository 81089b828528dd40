package types

// Table represents a validated table reference.
// Name, Alias and Schema are fixed at construction; renderers never
// mutate them. The default renderer ignores Schema - dialect renderers
// that support qualification prefix it themselves.
// This is exported from the internal package so dialect packages can use it,
// but external users cannot import this package.
type Table struct {
	Name   string
	Alias  string
	Schema string
}

// Kind reports the part discriminator.
func (Table) Kind() Kind { return KindTable }

// GetName returns the table name.
func (t Table) GetName() string {
	return t.Name
}

// GetAlias returns the table alias.
func (t Table) GetAlias() string {
	return t.Alias
}

// GetSchema returns the schema name.
func (t Table) GetSchema() string {
	return t.Schema
}

// WithSchema returns a copy of the table with the schema set.
func (t Table) WithSchema(schema string) Table {
	t.Schema = schema
	return t
}
