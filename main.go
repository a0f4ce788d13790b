// Command math-server evaluates arithmetic expressions for clients connected over TCP.
//
// It stops accepting connections and closes every session on SIGINT or SIGTERM.
package main

import (
	"context"
	"io"
	"os"

	"github.com/math-server/math-server/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := cli.NewServerCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cli.Execute(context.Background(), cmd)
}
