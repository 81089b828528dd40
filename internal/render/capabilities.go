package render

// Capabilities describes the SQL surface supported by a dialect renderer.
type Capabilities struct {
	SchemaQualification bool // schema-prefixed table names
	CeilingFunction     bool // CEILING(x) / CEIL(x)
	RootExpression      bool // n-th root via POWER rewrite
	BooleanKeywords     bool // TRUE/FALSE keywords (vs 1/0)
}
