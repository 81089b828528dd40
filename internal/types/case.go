package types

// ConditionalCase is a ternary-like part: a test, a value when the test
// holds, and a value otherwise. IfFalse may itself be a ConditionalCase,
// forming an else-if chain; the chain is acyclic by construction since
// every node is freshly built top-down.
//
// Rendering has two mutually exclusive shapes, selected once at the root
// node by whether Test satisfies the Condition capability:
//
//   - boolean test: (CASE WHEN t THEN a WHEN t2 THEN a2 ... ELSE z)
//     where the WHEN arms after the first come from walking the IfFalse
//     chain iteratively.
//   - value test: (CASE t WHEN True THEN a ELSE z)
//     with no chain walking; a nested ConditionalCase in IfFalse is
//     rendered verbatim as the ELSE expression.
//
// Neither shape emits a trailing END keyword. That matches the dialect
// convention this tree was built for and is preserved deliberately; see
// the case render tests.
type ConditionalCase struct {
	Test    StatementPart
	IfTrue  StatementPart
	IfFalse StatementPart
}

// Kind reports the part discriminator.
func (ConditionalCase) Kind() Kind { return KindConditionalCase }
