package selector

import (
	"slices"
	"strings"

	"go.uber.org/zap"
)

// Part is a single simple selector within compound selector.
type Part struct {
	Kind  PartKind
	Value string // as supplied, without decoration
}

// String returns CSS text of the part.
func (p Part) String() string {
	return p.Kind.decorate(p.Value)
}

// Compound is a sequence of simple selectors: element, id, classes,
// attributes, pseudo-classes and pseudo-element. Since parts are only
// accepted in that order, parts slice is kept in append order which is also
// render order.
type Compound struct {
	log   *zap.Logger
	parts []Part
	seen  uint8 // bit per PartKind present
	err   error
}

// Element appends type selector.
func (c *Compound) Element(value string) *Compound {
	return c.add(PartKindElement, value)
}

// ID appends id selector.
func (c *Compound) ID(value string) *Compound {
	return c.add(PartKindId, value)
}

// Class appends class selector.
func (c *Compound) Class(value string) *Compound {
	return c.add(PartKindClass, value)
}

// Attr appends attribute selector, value is a complete attribute expression
// (for example `href$=".png"`) to be put inside brackets.
func (c *Compound) Attr(value string) *Compound {
	return c.add(PartKindAttribute, value)
}

// PseudoClass appends pseudo-class.
func (c *Compound) PseudoClass(value string) *Compound {
	return c.add(PartKindPseudoClass, value)
}

// PseudoElement appends pseudo-element.
func (c *Compound) PseudoElement(value string) *Compound {
	return c.add(PartKindPseudoElement, value)
}

// Append appends part of any kind, returns new compound selector.
func (c *Compound) Append(kind PartKind, value string) *Compound {
	return c.add(kind, value)
}

func (c *Compound) add(kind PartKind, value string) *Compound {
	if c == nil {
		c = &Compound{}
	}
	if c.err != nil {
		return c
	}

	var err error
	switch {
	case !kind.IsValid():
		err = ErrInvalidPartKind
	case kind.Singular() && c.has(kind):
		err = &DuplicatePartError{Part: kind}
	case len(c.parts) > 0 && c.last() > kind:
		err = &OrderError{Part: kind, After: c.last()}
	}

	next := &Compound{log: c.log, parts: c.parts, seen: c.seen}
	if err != nil {
		if c.log != nil {
			c.log.Debug("Rejected selector part",
				zap.Stringer("kind", kind), zap.String("value", value), zap.String("selector", c.String()), zap.Error(err))
		}
		next.err = err
		return next
	}
	// Clip forces reallocation so branches built from the same prefix never
	// share backing array.
	next.parts = append(slices.Clip(c.parts), Part{Kind: kind, Value: value})
	next.seen |= 1 << kind
	return next
}

func (c *Compound) has(kind PartKind) bool {
	return c.seen&(1<<kind) != 0
}

func (c *Compound) last() PartKind {
	return c.parts[len(c.parts)-1].Kind
}

// Parts returns copy of the accumulated parts in render order.
func (c *Compound) Parts() []Part {
	if c == nil {
		return nil
	}
	return slices.Clone(c.parts)
}

// Empty reports whether selector has no parts.
func (c *Compound) Empty() bool {
	return c == nil || len(c.parts) == 0
}

// Err returns first validation error recorded while building this selector.
func (c *Compound) Err() error {
	if c == nil {
		return ErrMissingOperand
	}
	return c.err
}

// Render returns canonical text of the selector.
func (c *Compound) Render() (string, error) {
	if err := c.Err(); err != nil {
		return "", err
	}
	var sb strings.Builder
	c.writeTo(&sb)
	return sb.String(), nil
}

// String returns canonical text of valid parts, it never fails.
func (c *Compound) String() string {
	if c == nil {
		return ""
	}
	var sb strings.Builder
	c.writeTo(&sb)
	return sb.String()
}

func (c *Compound) writeTo(sb *strings.Builder) {
	for _, p := range c.parts {
		sb.WriteString(p.String())
	}
}
