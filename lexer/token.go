package lexer

import (
	"math"
	"strconv"
)

// Type is the kind of a token.
type Type int

const (
	LeftParen Type = iota
	RightParen
	Plus
	Minus
	Asterisk
	Slash
	Caret
	// Number is the only token type carrying a value.
	Number
)

var lexemes = [...]string{
	LeftParen:  "(",
	RightParen: ")",
	Plus:       "+",
	Minus:      "-",
	Asterisk:   "*",
	Slash:      "/",
	Caret:      "^",
}

// constTypes lists the fixed-lexeme token types in matching order.
var constTypes = []Type{LeftParen, RightParen, Plus, Minus, Asterisk, Slash, Caret}

// IsConst reports whether tokens of this type always match the same text.
func (t Type) IsConst() bool {
	return t >= LeftParen && t < Number
}

// Lexeme returns the text a constant token matches, or the empty string for numbers.
func (t Type) Lexeme() string {
	if !t.IsConst() {
		return ""
	}
	return lexemes[t]
}

func (t Type) String() string {
	switch {
	case t.IsConst():
		return lexemes[t]
	case t == Number:
		return "number"
	default:
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
}

// Token is a lexical unit of an expression.
type Token struct {
	Type Type
	// Value is only meaningful for Number tokens.
	Value float64
}

func NewToken(t Type) Token {
	return Token{Type: t}
}

func NewNumber(v float64) Token {
	return Token{Type: Number, Value: v}
}

// Is reports whether the token has type t.
func (t Token) Is(typ Type) bool {
	return t.Type == typ
}

// Equal compares constant tokens by type and numbers by value. Two NaN numbers are equal.
func (t Token) Equal(o Token) bool {
	if t.Type != o.Type {
		return false
	}
	if t.Type != Number {
		return true
	}
	if math.IsNaN(t.Value) && math.IsNaN(o.Value) {
		return true
	}
	return t.Value == o.Value
}

func (t Token) String() string {
	if t.Type == Number {
		return strconv.FormatFloat(t.Value, 'g', -1, 64)
	}
	return t.Type.String()
}

// ParsedToken is a token together with the byte range of the input it was scanned from.
type ParsedToken struct {
	Token
	Pos int
	Len int
}
