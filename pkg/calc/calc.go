// Package calc is a small decimal calculator that remembers the operations it performed.
package calc

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/aretw0/aide/pkg/core"
)

// ErrDivisionByZero is returned when dividing by zero.
var ErrDivisionByZero = errors.New("division by zero")

// divisionPrecision is the number of decimal places kept by Divide.
const divisionPrecision = 16

// Operator is one of + - * /.
type Operator string

const (
	Add      Operator = "+"
	Subtract Operator = "-"
	Multiply Operator = "*"
	Divide   Operator = "/"
)

// ParseOperator accepts the operator symbols and x or × for multiplication.
func ParseOperator(s string) (Operator, error) {
	switch s {
	case "+":
		return Add, nil
	case "-":
		return Subtract, nil
	case "*", "x", "×":
		return Multiply, nil
	case "/", ":", "÷":
		return Divide, nil
	}
	return "", core.Invalid("operator", s, nil)
}

// Calculator evaluates binary operations and keeps a history of the successful ones.
// The zero value is ready to use.
type Calculator struct {
	history []string
}

// Apply computes a op b and records "a op b = result".
func (c *Calculator) Apply(a decimal.Decimal, op Operator, b decimal.Decimal) (decimal.Decimal, error) {
	var r decimal.Decimal
	switch op {
	case Add:
		r = a.Add(b)
	case Subtract:
		r = a.Sub(b)
	case Multiply:
		r = a.Mul(b)
	case Divide:
		if b.IsZero() {
			return decimal.Zero, ErrDivisionByZero
		}
		r = a.DivRound(b, divisionPrecision)
	default:
		return decimal.Zero, core.Invalid("operator", string(op), nil)
	}
	c.history = append(c.history, fmt.Sprintf("%s %s %s = %s", a, op, b, r))
	return r, nil
}

// Eval parses both operands and the operator, then applies them.
func (c *Calculator) Eval(a, op, b string) (decimal.Decimal, error) {
	x, err := decimal.NewFromString(a)
	if err != nil {
		return decimal.Zero, core.Invalid("operand", a, err)
	}
	y, err := decimal.NewFromString(b)
	if err != nil {
		return decimal.Zero, core.Invalid("operand", b, err)
	}
	o, err := ParseOperator(op)
	if err != nil {
		return decimal.Zero, err
	}
	return c.Apply(x, o, y)
}

// History returns the performed operations, oldest first.
func (c *Calculator) History() []string {
	return append([]string(nil), c.history...)
}
