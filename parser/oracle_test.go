package parser

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/expr-lang/expr"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var oracleOps = []string{"+", "-", "*", "/"}

// randomExpr builds a fully random expression over small integers, with
// optional redundant parentheses and irregular spacing.
func randomExpr(r *rand.Rand, depth int) string {
	if depth == 0 || r.Intn(3) == 0 {
		return strconv.Itoa(1 + r.Intn(20))
	}
	var sb strings.Builder
	lhs, rhs := randomExpr(r, depth-1), randomExpr(r, depth-1)
	paren := r.Intn(2) == 0
	if paren {
		sb.WriteString("(")
	}
	sb.WriteString(lhs)
	sb.WriteString(strings.Repeat(" ", r.Intn(3)))
	sb.WriteString(oracleOps[r.Intn(len(oracleOps))])
	sb.WriteString(strings.Repeat(" ", r.Intn(3)))
	sb.WriteString(rhs)
	if paren {
		sb.WriteString(")")
	}
	return sb.String()
}

func toFloat(t *testing.T, v interface{}) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	}
	t.Fatalf("unexpected result type %T", v)
	return 0
}

func TestAgainstReferenceEvaluator(t *testing.T) {
	r := rand.New(rand.NewSource(18000))
	for i := 0; i < 2000; i++ {
		input := randomExpr(r, 3)

		got, err := Eval(input)
		var parseErr *Error
		if errors.As(err, &parseErr) && parseErr.Kind == DivisionByZero {
			continue
		}
		require.NoError(t, err, input)

		out, err := expr.Eval(input, nil)
		require.NoError(t, err, input)
		want := toFloat(t, out)

		assert.InDelta(t, want, got, 1e-9*math.Max(1, math.Abs(want)), input)
	}
}
