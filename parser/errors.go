package parser

// ErrorKind classifies parse and evaluation failures.
type ErrorKind int

const (
	// MissingOperand is reported where a unary operator, '(' or a number was required.
	MissingOperand ErrorKind = iota
	UnmatchedParen
	// TrailingInput is a complete expression followed by something other than a binary operator.
	TrailingInput
	DivisionByZero
	TooDeep
)

// Error is returned for every failure detected by the parser.
// Lexer failures are passed through unchanged.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return "parser error: " + e.Msg
}

func newError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func missingOperand() error {
	return newError(MissingOperand, "expected '-', '+', '(' or a number")
}

func unmatchedParen() error {
	return newError(UnmatchedParen, "missing closing ')'")
}

func trailingInput() error {
	return newError(TrailingInput, "expected a binary operator")
}

func tooDeep() error {
	return newError(TooDeep, "expression is nested too deeply")
}
