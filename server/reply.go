package server

import (
	"github.com/pkg/errors"

	"github.com/math-server/math-server/numbers"
	"github.com/math-server/math-server/parser"
)

// calcReply evaluates one request line. Evaluation failures become the reply text.
func calcReply(input string) string {
	v, err := parser.Eval(input)
	if err != nil {
		return errors.Wrap(err, "server error").Error()
	}
	return numbers.Format(v)
}
