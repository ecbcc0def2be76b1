package selector

import (
	"errors"
	"fmt"
)

// ErrMissingOperand is reported when nil selector is passed to Combine.
var ErrMissingOperand = errors.New("combined selector requires both operands")

// DuplicatePartError is reported when singular part (element, id or
// pseudo-element) is appended to a compound selector which already has it.
type DuplicatePartError struct {
	Part PartKind
}

func (e *DuplicatePartError) Error() string {
	return fmt.Sprintf("duplicate %s: element, id and pseudo-element should not occur more than one time inside the selector",
		e.Part.Label())
}

// OrderError is reported when part is appended after a part which must
// follow it.
type OrderError struct {
	Part  PartKind // part being appended
	After PartKind // last part already present
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("%s after %s: selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element",
		e.Part.Label(), e.After.Label())
}

// InvalidCombinatorError is reported for unsupported combinator symbol.
type InvalidCombinatorError struct {
	Symbol string
}

func (e *InvalidCombinatorError) Error() string {
	return fmt.Sprintf("invalid combinator %q: expected one of ' ', '+', '~', '>'", e.Symbol)
}
