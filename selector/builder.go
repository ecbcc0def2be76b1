package selector

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Selector is either a *Compound or a *Complex.
type Selector interface {
	fmt.Stringer

	// Render returns canonical text of the selector or the first validation
	// errors found anywhere in it.
	Render() (string, error)
	// Err returns validation errors without rendering.
	Err() error

	writeTo(sb *strings.Builder)
}

// Builder is an entry point for constructing selectors. It keeps no state
// between calls, every method starts an independent selector, so a single
// Builder may be shared freely.
type Builder struct {
	log *zap.Logger
}

// New creates selector builder. Rejected parts and combinators are logged at
// debug level.
func New(log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{log: log.Named("selector")}
}

func (b *Builder) start() *Compound {
	c := &Compound{}
	if b != nil {
		c.log = b.log
	}
	return c
}

// Element starts a new compound selector with type selector.
func (b *Builder) Element(value string) *Compound {
	return b.start().Element(value)
}

// ID starts a new compound selector with id selector.
func (b *Builder) ID(value string) *Compound {
	return b.start().ID(value)
}

// Class starts a new compound selector with class selector.
func (b *Builder) Class(value string) *Compound {
	return b.start().Class(value)
}

// Attr starts a new compound selector with attribute selector.
func (b *Builder) Attr(value string) *Compound {
	return b.start().Attr(value)
}

// PseudoClass starts a new compound selector with pseudo-class.
func (b *Builder) PseudoClass(value string) *Compound {
	return b.start().PseudoClass(value)
}

// PseudoElement starts a new compound selector with pseudo-element.
func (b *Builder) PseudoElement(value string) *Compound {
	return b.start().PseudoElement(value)
}

// Empty returns compound selector without parts.
func (b *Builder) Empty() *Compound {
	return b.start()
}

// Combine joins two finished selectors with combinator, which must be one of
// " ", "+", "~" or ">". Operands are kept as is and are not validated again,
// their errors are reported by the resulting selector.
func (b *Builder) Combine(first Selector, combinator string, second Selector) *Complex {
	cx := &Complex{left: first, right: second}

	c, err := ParseCombinator(combinator)
	if err == nil {
		cx.combinator = c
		if isNil(first) || isNil(second) {
			err = ErrMissingOperand
		}
	}
	if err != nil {
		if b != nil && b.log != nil {
			b.log.Debug("Rejected combination", zap.String("combinator", combinator), zap.Error(err))
		}
		cx.err = err
	}
	return cx
}

func isNil(s Selector) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *Compound:
		return v == nil
	case *Complex:
		return v == nil
	}
	return false
}
