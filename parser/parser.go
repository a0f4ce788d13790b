// Package parser evaluates arithmetic expressions while parsing them.
//
// Grammar, loosest binding first:
//
//	expr   := factor { binop factor }
//	factor := { '-' | '+' } power
//	power  := atom [ '^' factor ]
//	atom   := '(' expr ')' | NUMBER
//
// Binary operators are folded by precedence climbing: '+' and '-' bind
// loosest, then '*' and '/', then '^', which is right-associative.
package parser

import (
	"github.com/math-server/math-server/lexer"
)

// maxDepth bounds the nesting of parentheses, unary operators and exponents.
const maxDepth = 4096

type Parser struct {
	input string
	lex   *lexer.Lexer
	depth int
}

func New(input string) *Parser {
	return &Parser{input: input}
}

// Eval parses and evaluates a single expression.
func Eval(input string) (float64, error) {
	return New(input).Exec()
}

// Exec evaluates the whole input as one expression.
func (p *Parser) Exec() (float64, error) {
	lex, err := lexer.New(p.input)
	if err != nil {
		return 0, err
	}
	p.lex, p.depth = lex, 0

	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if p.lex.HasToken() {
		return 0, trailingInput()
	}
	return v, nil
}

func (p *Parser) expr() (float64, error) {
	lhs, err := p.factor()
	if err != nil {
		return 0, err
	}
	return p.fold(lhs, minPrecedence)
}

// fold applies binary operators binding at least as tightly as minPrec to lhs.
func (p *Parser) fold(lhs float64, minPrec int) (float64, error) {
	for {
		prev, ok := p.peekOperator()
		if !ok || prev.prec < minPrec {
			return lhs, nil
		}
		if err := p.lex.Drop(); err != nil {
			return 0, err
		}
		rhs, err := p.factor()
		if err != nil {
			return 0, err
		}

		for {
			next, ok := p.peekOperator()
			if !ok || !next.absorbs(prev) {
				break
			}
			if rhs, err = p.fold(rhs, next.prec); err != nil {
				return 0, err
			}
		}

		if lhs, err = prev.apply(lhs, rhs); err != nil {
			return 0, err
		}
	}
}

func (p *Parser) peekOperator() (operator, bool) {
	tok, ok := p.lex.Peek()
	if !ok {
		return operator{}, false
	}
	return binaryOperator(tok.Type)
}

func (p *Parser) factor() (float64, error) {
	if p.depth >= maxDepth {
		return 0, tooDeep()
	}
	p.depth++
	defer func() { p.depth-- }()

	if !p.lex.HasToken() {
		return 0, missingOperand()
	}

	if _, ok, err := p.lex.DropOfType(lexer.Minus); err != nil {
		return 0, err
	} else if ok {
		v, err := p.factor()
		return -v, err
	}
	if _, ok, err := p.lex.DropOfType(lexer.Plus); err != nil {
		return 0, err
	} else if ok {
		return p.factor()
	}
	return p.power()
}

func (p *Parser) power() (float64, error) {
	base, err := p.atom()
	if err != nil {
		return 0, err
	}
	_, ok, err := p.lex.DropOfType(lexer.Caret)
	if err != nil || !ok {
		return base, err
	}
	exp, err := p.factor()
	if err != nil {
		return 0, err
	}
	return operators[lexer.Caret].apply(base, exp)
}

func (p *Parser) atom() (float64, error) {
	if !p.lex.HasToken() {
		return 0, missingOperand()
	}

	if _, ok, err := p.lex.DropOfType(lexer.LeftParen); err != nil {
		return 0, err
	} else if ok {
		inner, err := p.expr()
		if err != nil {
			return 0, err
		}
		if _, ok, err := p.lex.DropOfType(lexer.RightParen); err != nil {
			return 0, err
		} else if !ok {
			return 0, unmatchedParen()
		}
		return inner, nil
	}

	tok, ok, err := p.lex.DropOfType(lexer.Number)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, missingOperand()
	}
	return tok.Value, nil
}
