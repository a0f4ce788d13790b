package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// UsageError is a malformed command line.
type UsageError struct {
	Err   error
	Usage string
}

func (e *UsageError) Error() string {
	return "usage error: " + e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func newUsageError(cmd *cobra.Command, err error) error {
	return &UsageError{Err: err, Usage: cmd.UsageString()}
}

// Execute runs cmd and returns the process exit code. Errors are reported on
// the command's error stream.
func Execute(ctx context.Context, cmd *cobra.Command) (code int) {
	stderr := cmd.ErrOrStderr()
	defer func() {
		if r := recover(); r != nil {
			ReportError(stderr, fmt.Sprintf("An unknown error occurred: %v", r))
			code = 1
		}
	}()

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		ReportError(stderr, usageErr.Error())
		fmt.Fprint(stderr, usageErr.Usage)
		return 1
	}
	ReportError(stderr, "An error occurred: "+err.Error())
	return 1
}

// ReportError prints msg on w, in red if w is a terminal.
func ReportError(w io.Writer, msg string) {
	c := color.New(color.FgRed)
	if isTerminal(w) {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	c.Fprintln(w, msg)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
