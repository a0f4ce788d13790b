package lexer

// ErrorKind classifies lexer failures.
type ErrorKind int

const (
	// MalformedNumber is an exponent marker with no digits after it.
	MalformedNumber ErrorKind = iota
	// InvalidInput is text that starts neither a number nor an operator.
	InvalidInput
	// Internal failures indicate misuse of the lexer or an unconvertible number.
	Internal
)

// Error is returned for every lexing failure.
type Error struct {
	Kind ErrorKind
	Msg  string
	// Pos is the byte offset in the input where the failure was detected.
	Pos int
}

func (e *Error) Error() string {
	return "lexer error: " + e.Msg
}

func newError(kind ErrorKind, pos int, msg string) *Error {
	return &Error{Kind: kind, Msg: msg, Pos: pos}
}
