package types

// Param represents a named parameter reference in a query.
// Values are always parameters, never literals.
// This is exported from the internal package so dialect packages can use it,
// but external users cannot import this package.
type Param struct {
	Name string
}

// Kind reports the part discriminator.
func (Param) Kind() Kind { return KindParam }

// GetName returns the parameter name.
func (p Param) GetName() string {
	return p.Name
}
