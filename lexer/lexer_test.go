package lexer

import (
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokens(t *testing.T, input string) []Token {
	l, err := New(input)
	require.NoError(t, err, input)
	parsed, err := l.Tokens()
	require.NoError(t, err, input)
	ret := make([]Token, 0, len(parsed))
	for _, tok := range parsed {
		ret = append(ret, tok.Token)
	}
	return ret
}

func num(v float64) Token { return NewNumber(v) }

func tok(t Type) Token { return NewToken(t) }

func TestTokens(t *testing.T) {
	for _, test := range []struct {
		input  string
		tokens []Token
	}{
		{"", []Token{}},
		{"   ", []Token{}},
		{" + - ", []Token{tok(Plus), tok(Minus)}},
		{"1+2", []Token{num(1), tok(Plus), num(2)}},
		{"1+2 *  (3- 4e-2)", []Token{
			num(1), tok(Plus), num(2), tok(Asterisk), tok(LeftParen),
			num(3), tok(Minus), num(4e-2), tok(RightParen),
		}},
		{" 2 * (1 + 3 * (1 - -3)) ", []Token{
			num(2), tok(Asterisk), tok(LeftParen), num(1), tok(Plus), num(3), tok(Asterisk),
			tok(LeftParen), num(1), tok(Minus), tok(Minus), num(3), tok(RightParen), tok(RightParen),
		}},
		{"2^3/.5", []Token{num(2), tok(Caret), num(3), tok(Slash), num(.5)}},
	} {
		got := tokens(t, test.input)
		if diff := cmp.Diff(test.tokens, got); diff != "" {
			t.Errorf("%q: tokens mismatch (-want +got):\n%s\n%s", test.input, diff, spew.Sdump(got))
		}
	}
}

func TestTokenPositions(t *testing.T) {
	l, err := New(" 12.5 +(3e2)")
	require.NoError(t, err)
	parsed, err := l.Tokens()
	require.NoError(t, err)
	require.Len(t, parsed, 5, spew.Sdump(parsed))

	for i, want := range []struct{ pos, len int }{{1, 4}, {6, 1}, {7, 1}, {8, 3}, {11, 1}} {
		assert.Equal(t, want.pos, parsed[i].Pos, "token %d", i)
		assert.Equal(t, want.len, parsed[i].Len, "token %d", i)
	}
}

func TestInvalidInput(t *testing.T) {
	_, err := New("&")
	require.Error(t, err)
	assert.Equal(t, "lexer error: invalid input at: &", err.Error())

	l, err := New(" 1 + 123 & 456")
	require.NoError(t, err)
	_, err = l.Tokens()
	require.Error(t, err)
	assert.Equal(t, "lexer error: invalid input at: & 456", err.Error())

	var lexErr *Error
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, InvalidInput, lexErr.Kind)
	assert.Equal(t, 9, lexErr.Pos)
}

func TestMalformedNumberInStream(t *testing.T) {
	l, err := New("1 + 12e")
	require.NoError(t, err)
	_, err = l.Tokens()
	require.Error(t, err)
	assert.Equal(t, "lexer error: exponent has no digits: 12e", err.Error())
}

func TestPeekAndDrop(t *testing.T) {
	l, err := New("1 -")
	require.NoError(t, err)

	require.True(t, l.HasToken())
	tk, ok := l.Peek()
	require.True(t, ok)
	assert.True(t, tk.Equal(num(1)))

	// peeking doesn't consume
	tk, _ = l.Peek()
	assert.True(t, tk.Equal(num(1)))

	require.NoError(t, l.Drop())
	tk, ok = l.Peek()
	require.True(t, ok)
	assert.True(t, tk.Is(Minus))

	require.NoError(t, l.Drop())
	assert.False(t, l.HasToken())
	_, ok = l.Peek()
	assert.False(t, ok)

	err = l.Drop()
	require.Error(t, err)
	assert.Equal(t, "lexer error: internal: no tokens to drop", err.Error())
	var lexErr *Error
	require.True(t, errors.As(err, &lexErr))
	assert.Equal(t, Internal, lexErr.Kind)
}

func TestDropOfType(t *testing.T) {
	l, err := New("(1")
	require.NoError(t, err)

	_, ok, err := l.DropOfType(RightParen)
	require.NoError(t, err)
	assert.False(t, ok)

	tk, ok, err := l.DropOfType(LeftParen)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, tk.Pos)

	tk, ok, err = l.DropOfType(Number)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1.0, tk.Value)

	_, ok, err = l.DropOfType(Number)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestForEachStops(t *testing.T) {
	l, err := New("1 2 3")
	require.NoError(t, err)

	var seen int
	all, err := l.ForEach(func(ParsedToken) bool {
		seen++
		return seen < 2
	})
	require.NoError(t, err)
	assert.False(t, all)
	assert.Equal(t, 2, seen)

	// the token that stopped the iteration is still buffered
	tk, ok := l.Peek()
	require.True(t, ok)
	assert.Equal(t, 2.0, tk.Value)
}

func TestTokenEqual(t *testing.T) {
	assert.True(t, tok(Plus).Equal(tok(Plus)))
	assert.False(t, tok(Plus).Equal(tok(Minus)))
	assert.True(t, num(1).Equal(num(1)))
	assert.False(t, num(1).Equal(num(2)))
	assert.False(t, num(0).Equal(tok(Plus)))
	assert.True(t, num(math.NaN()).Equal(num(math.NaN())))
	assert.False(t, num(math.NaN()).Equal(num(1)))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "(", LeftParen.String())
	assert.Equal(t, "^", Caret.String())
	assert.Equal(t, "number", Number.String())
	assert.Equal(t, "Type(42)", Type(42).String())
	assert.Equal(t, "", Number.Lexeme())
	assert.Equal(t, "*", Asterisk.Lexeme())
	assert.Equal(t, "2.5", num(2.5).String())
	assert.Equal(t, "/", tok(Slash).String())
}
