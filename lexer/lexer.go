// Package lexer splits an arithmetic expression into tokens.
//
// The lexer keeps a single scanned token buffered: Peek inspects it and Drop
// replaces it with the next token from the input.
package lexer

// Lexer scans tokens lazily from a single line of input.
type Lexer struct {
	input string
	// pos is the offset of the first unscanned byte.
	pos int

	tok    ParsedToken
	hasTok bool
}

// New returns a lexer positioned at the first token of input.
// It fails when the first token can't be scanned.
func New(input string) (*Lexer, error) {
	l := &Lexer{input: input}
	if err := l.scan(); err != nil {
		return nil, err
	}
	return l, nil
}

// HasToken reports whether a token is buffered, ie. the input is not exhausted.
func (l *Lexer) HasToken() bool {
	return l.hasTok
}

// Peek returns the buffered token without consuming it.
func (l *Lexer) Peek() (ParsedToken, bool) {
	return l.tok, l.hasTok
}

// Drop discards the buffered token and scans the next one.
func (l *Lexer) Drop() error {
	if !l.hasTok {
		return newError(Internal, l.pos, "internal: no tokens to drop")
	}
	return l.scan()
}

// DropOfType drops the buffered token only if it has type t, and returns it.
func (l *Lexer) DropOfType(t Type) (ParsedToken, bool, error) {
	tok, ok := l.Peek()
	if !ok || !tok.Is(t) {
		return ParsedToken{}, false, nil
	}
	if err := l.Drop(); err != nil {
		return ParsedToken{}, false, err
	}
	return tok, true, nil
}

// ForEach calls fn for each remaining token until fn returns false or the input is exhausted.
// It reports whether every token was visited.
func (l *Lexer) ForEach(fn func(ParsedToken) bool) (bool, error) {
	for l.hasTok {
		if !fn(l.tok) {
			return false, nil
		}
		if err := l.Drop(); err != nil {
			return false, err
		}
	}
	return true, nil
}

// Tokens consumes the lexer and returns every remaining token.
func (l *Lexer) Tokens() ([]ParsedToken, error) {
	var tokens []ParsedToken
	_, err := l.ForEach(func(tok ParsedToken) bool {
		tokens = append(tokens, tok)
		return true
	})
	return tokens, err
}

func (l *Lexer) scan() error {
	l.tok, l.hasTok = ParsedToken{}, false
	l.pos += skipSpace(l.input[l.pos:])
	rest := l.input[l.pos:]
	if rest == "" {
		return nil
	}

	if t, ok := scanConst(rest); ok {
		l.buffer(NewToken(t), len(lexemes[t]))
		return nil
	}
	if v, n, err := scanNumber(rest, l.pos); err != nil {
		return err
	} else if n > 0 {
		l.buffer(NewNumber(v), n)
		return nil
	}
	return newError(InvalidInput, l.pos, "invalid input at: "+rest)
}

func (l *Lexer) buffer(tok Token, n int) {
	l.tok = ParsedToken{Token: tok, Pos: l.pos, Len: n}
	l.hasTok = true
	l.pos += n
}
