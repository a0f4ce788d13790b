package parser

import (
	"math"

	"github.com/math-server/math-server/lexer"
)

type assoc int

const (
	left assoc = iota
	right
)

// minPrecedence is the loosest binding level.
const minPrecedence = 0

// operator describes how a binary operator binds and what it computes.
type operator struct {
	prec  int
	assoc assoc
	apply func(lhs, rhs float64) (float64, error)
}

var operators = map[lexer.Type]operator{
	lexer.Plus:     {0, left, func(l, r float64) (float64, error) { return l + r, nil }},
	lexer.Minus:    {0, left, func(l, r float64) (float64, error) { return l - r, nil }},
	lexer.Asterisk: {1, left, func(l, r float64) (float64, error) { return l * r, nil }},
	lexer.Slash:    {1, left, divide},
	lexer.Caret:    {2, right, func(l, r float64) (float64, error) { return math.Pow(l, r), nil }},
}

func divide(lhs, rhs float64) (float64, error) {
	if rhs == 0 {
		return 0, newError(DivisionByZero, "division by zero")
	}
	return lhs / rhs, nil
}

func binaryOperator(t lexer.Type) (operator, bool) {
	op, ok := operators[t]
	return op, ok
}

// absorbs reports whether next must be folded into the right operand of prev before prev is applied.
func (next operator) absorbs(prev operator) bool {
	if next.assoc == left {
		return next.prec > prev.prec
	}
	return next.prec == prev.prec
}
