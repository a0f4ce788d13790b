package lexer

import (
	"strconv"
	"strings"
	"unicode"
)

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// skipSpace returns the number of leading whitespace bytes in s.
func skipSpace(s string) int {
	return len(s) - len(strings.TrimLeftFunc(s, isSpace))
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

// scanConst matches a constant lexeme at the start of s.
func scanConst(s string) (Type, bool) {
	for _, t := range constTypes {
		if strings.HasPrefix(s, lexemes[t]) {
			return t, true
		}
	}
	return 0, false
}

// scanNumber matches a number at the start of s:
//
//	digits [ '.' digits? ] | '.' digits, optionally followed by [eE] [+-]? digits
//
// It returns the number of bytes matched, or zero when s does not start with a number.
// An exponent marker without digits is an error.
func scanNumber(s string, pos int) (float64, int, error) {
	n := countDigits(s)
	switch {
	case n > 0:
		if n < len(s) && s[n] == '.' {
			n++
			n += countDigits(s[n:])
		}
	case len(s) > 1 && s[0] == '.':
		frac := countDigits(s[1:])
		if frac == 0 {
			return 0, 0, nil
		}
		n = 1 + frac
	default:
		return 0, 0, nil
	}

	if n < len(s) && (s[n] == 'e' || s[n] == 'E') {
		exp := n + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		digits := countDigits(s[exp:])
		if digits == 0 {
			return 0, 0, newError(MalformedNumber, pos, "exponent has no digits: "+s[:exp])
		}
		n = exp + digits
	}

	v, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		return 0, 0, newError(Internal, pos, "internal: couldn't parse number from: "+s[:n])
	}
	return v, n, nil
}
