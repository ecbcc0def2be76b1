package selector

// Combinator joins two selectors into a complex one.
type Combinator byte

const (
	Descendant Combinator = ' ' // A B
	Child      Combinator = '>' // A > B
	Adjacent   Combinator = '+' // A + B
	Sibling    Combinator = '~' // A ~ B
)

// Combinators lists supported combinators.
func Combinators() []Combinator {
	return []Combinator{Descendant, Adjacent, Sibling, Child}
}

// ParseCombinator converts combinator symbol to Combinator. Symbol must be
// exactly one of the supported characters, surrounding whitespace is not
// accepted since a lone space is a valid combinator.
func ParseCombinator(symbol string) (Combinator, error) {
	if len(symbol) == 1 {
		switch c := Combinator(symbol[0]); c {
		case Descendant, Child, Adjacent, Sibling:
			return c, nil
		}
	}
	return 0, &InvalidCombinatorError{Symbol: symbol}
}

// String returns combinator symbol.
func (c Combinator) String() string {
	return string(rune(c))
}

// Name returns human readable name of the combinator.
func (c Combinator) Name() string {
	switch c {
	case Descendant:
		return "descendant"
	case Child:
		return "child"
	case Adjacent:
		return "next-sibling"
	case Sibling:
		return "subsequent-sibling"
	default:
		return "unknown"
	}
}
