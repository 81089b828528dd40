package types

// Function parts wrap one or two child parts and render as
// KEYWORD(arg[, arg2]). Mandatory children are checked at render time:
// a nil child is a malformed tree, reported before any text is emitted
// for the node.

// NumberRoot represents the n-th root of a numeric expression.
// The default renderer emits ROOT(argument, root); dialects without a
// ROOT function rewrite it as a fractional POWER.
type NumberRoot struct {
	Argument StatementPart
	Root     StatementPart
}

// Kind reports the part discriminator.
func (NumberRoot) Kind() Kind { return KindNumberRoot }

// NumberFloor rounds a numeric expression down: FLOOR(argument).
type NumberFloor struct {
	Argument StatementPart
}

// Kind reports the part discriminator.
func (NumberFloor) Kind() Kind { return KindNumberFloor }

// NumberCeiling rounds a numeric expression up: CEILING(argument).
type NumberCeiling struct {
	Argument StatementPart
}

// Kind reports the part discriminator.
func (NumberCeiling) Kind() Kind { return KindNumberCeiling }

// NumberAbsolute takes the absolute value: ABS(argument).
type NumberAbsolute struct {
	Argument StatementPart
}

// Kind reports the part discriminator.
func (NumberAbsolute) Kind() Kind { return KindNumberAbsolute }

// StringToUpper upper-cases a string expression.
// The default renderer emits TOUPPER(argument); most dialects emit UPPER.
type StringToUpper struct {
	Argument StatementPart
}

// Kind reports the part discriminator.
func (StringToUpper) Kind() Kind { return KindStringToUpper }

// StringToLower lower-cases a string expression.
// The default renderer emits TOLOWER(argument); most dialects emit LOWER.
type StringToLower struct {
	Argument StatementPart
}

// Kind reports the part discriminator.
func (StringToLower) Kind() Kind { return KindStringToLower }
