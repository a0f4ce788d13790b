// Command math-client sends arithmetic expressions to math-server and prints the results.
//
// Expressions come from the -c flag, else from the files named on the command
// line, else from stdin.
package main

import (
	"context"
	"io"
	"os"

	"github.com/math-server/math-server/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	cmd := cli.NewClientCommand(stdin)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cli.Execute(context.Background(), cmd)
}
