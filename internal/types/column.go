package types

// Column represents a validated column reference.
// This is exported from the internal package so dialect packages can use it,
// but external users cannot import this package.
type Column struct {
	Name      string // The column name (required)
	Qualifier string // Optional table/alias prefix
}

// Kind reports the part discriminator.
func (Column) Kind() Kind { return KindColumn }

// QualifierValidator is a function that validates table names and aliases.
type QualifierValidator func(string) error

// Global qualifier validator - set by the main package.
var validateQualifier QualifierValidator

// GetName returns the column name.
func (c Column) GetName() string {
	return c.Name
}

// GetQualifier returns the table/alias prefix.
func (c Column) GetQualifier() string {
	return c.Qualifier
}

// WithQualifier returns a copy of the column with a table/alias prefix.
func (c Column) WithQualifier(tableOrAlias string) Column {
	if validateQualifier != nil {
		if err := validateQualifier(tableOrAlias); err != nil {
			panic(err)
		}
	}

	c.Qualifier = tableOrAlias
	return c
}

// SetQualifierValidator sets the global qualifier validator function.
// This is called by the main package during initialization.
func SetQualifierValidator(validator QualifierValidator) {
	validateQualifier = validator
}
