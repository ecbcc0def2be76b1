package selector

import (
	"strings"

	"go.uber.org/multierr"
)

// Complex is a pair of selectors joined by combinator. Either side may be
// complex itself, rendering follows the tree.
type Complex struct {
	left, right Selector
	combinator  Combinator
	err         error
}

// Left returns the first operand.
func (c *Complex) Left() Selector {
	return c.left
}

// Right returns the second operand.
func (c *Complex) Right() Selector {
	return c.right
}

// Combinator returns combinator joining operands, zero when combinator was
// rejected.
func (c *Complex) Combinator() Combinator {
	return c.combinator
}

// Err returns errors of this selector and of both operands.
func (c *Complex) Err() error {
	if c == nil {
		return ErrMissingOperand
	}
	err := c.err
	if !isNil(c.left) {
		err = multierr.Append(err, c.left.Err())
	}
	if !isNil(c.right) {
		err = multierr.Append(err, c.right.Err())
	}
	return err
}

// Render returns canonical text of the selector. Combinator is always
// surrounded by single spaces, so descendant combinator renders as three
// spaces.
func (c *Complex) Render() (string, error) {
	if err := c.Err(); err != nil {
		return "", err
	}
	var sb strings.Builder
	c.writeTo(&sb)
	return sb.String(), nil
}

// String returns text of the selector ignoring validation errors.
func (c *Complex) String() string {
	if c == nil {
		return ""
	}
	var sb strings.Builder
	c.writeTo(&sb)
	return sb.String()
}

func (c *Complex) writeTo(sb *strings.Builder) {
	if !isNil(c.left) {
		c.left.writeTo(sb)
	}
	sb.WriteByte(' ')
	if c.combinator != 0 {
		sb.WriteByte(byte(c.combinator))
	} else {
		sb.WriteByte('?')
	}
	sb.WriteByte(' ')
	if !isNil(c.right) {
		c.right.writeTo(sb)
	}
}
