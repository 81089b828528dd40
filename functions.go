package partsql

import "github.com/zoobzio/partsql/internal/types"

// Constructors for function parts. Children are ordinary statement
// parts; a missing mandatory child is reported at render time as a
// malformed tree, not here.

// Root creates an n-th root expression: ROOT(argument, root).
func Root(argument, root StatementPart) types.NumberRoot {
	return types.NumberRoot{Argument: argument, Root: root}
}

// Floor creates a round-down expression: FLOOR(argument).
func Floor(argument StatementPart) types.NumberFloor {
	return types.NumberFloor{Argument: argument}
}

// Ceiling creates a round-up expression: CEILING(argument).
func Ceiling(argument StatementPart) types.NumberCeiling {
	return types.NumberCeiling{Argument: argument}
}

// Abs creates an absolute-value expression: ABS(argument).
func Abs(argument StatementPart) types.NumberAbsolute {
	return types.NumberAbsolute{Argument: argument}
}

// Upper creates an upper-case expression: TOUPPER(argument).
func Upper(argument StatementPart) types.StringToUpper {
	return types.StringToUpper{Argument: argument}
}

// Lower creates a lower-case expression: TOLOWER(argument).
func Lower(argument StatementPart) types.StringToLower {
	return types.StringToLower{Argument: argument}
}

// Case creates a conditional CASE part. When test carries the Condition
// capability the part renders as a WHEN/THEN ladder that collapses an
// else-if chain in ifFalse; otherwise it renders as a single-arm simple
// CASE over the test value.
func Case(test, ifTrue, ifFalse StatementPart) types.ConditionalCase {
	return types.ConditionalCase{Test: test, IfTrue: ifTrue, IfFalse: ifFalse}
}
