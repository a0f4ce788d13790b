package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/math-server/math-server/client"
	"github.com/math-server/math-server/out"
)

// NewClientCommand returns the math-client command line. Expressions are read from stdin
// unless a command or files are given.
func NewClientCommand(stdin *os.File) *cobra.Command {
	defaults := client.DefaultSettings()
	cmd := &cobra.Command{
		Use:           "math-client [file...]",
		Short:         "Sends arithmetic expressions to a math server and prints the results",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClient(cmd, args, stdin)
		},
	}
	cmd.SetFlagErrorFunc(newUsageError)

	f := cmd.Flags()
	f.StringP("command", "c", "", "evaluate the argument expression and exit")
	f.StringP("host", "H", defaults.Host, "server host address")
	f.StringP("port", "p", defaults.Port, "server port number")
	f.Duration("timeout", defaults.DialTimeout, "connection timeout")
	f.String("log-level", "warn", "one of trace, debug, info, warn, error")
	f.String("config", "", "config file")
	return cmd
}

func runClient(cmd *cobra.Command, args []string, stdin *os.File) error {
	c, err := newConfig(cmd, clientEnvPrefix)
	if err != nil {
		return newUsageError(cmd, err)
	}
	out.SetLogger(cmd.ErrOrStderr(), c.GetString("log-level"))

	s := client.Settings{
		Command:    c.GetString("command"),
		HasCommand: c.IsSet("command"),
		Files:      args,
		Host:       c.GetString("host"),
		Port:       c.GetString("port"),
	}
	if s.DialTimeout, err = c.duration(cmd, "timeout"); err != nil {
		return err
	}

	cl, err := client.Connect(cmd.Context(), s, stdin, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer cl.Close()
	return cl.Run()
}
