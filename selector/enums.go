package selector

//go:generate go tool go-enum --marshal --names

// Kind of a simple selector part. Values are declared in the order parts
// must appear in a compound selector.
// ENUM(element, id, class, attribute, pseudoClass, pseudoElement)
type PartKind int

// Singular reports whether part may occur only once in a compound selector.
func (x PartKind) Singular() bool {
	return x == PartKindElement || x == PartKindId || x == PartKindPseudoElement
}

// Label returns CSS name of the part kind as used in messages.
func (x PartKind) Label() string {
	switch x {
	case PartKindPseudoClass:
		return "pseudo-class"
	case PartKindPseudoElement:
		return "pseudo-element"
	default:
		return x.String()
	}
}

// decorate wraps value into the syntax of this part kind.
func (x PartKind) decorate(value string) string {
	switch x {
	case PartKindId:
		return "#" + value
	case PartKindClass:
		return "." + value
	case PartKindAttribute:
		return "[" + value + "]"
	case PartKindPseudoClass:
		return ":" + value
	case PartKindPseudoElement:
		return "::" + value
	default:
		return value
	}
}
