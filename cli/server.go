package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/math-server/math-server/out"
	"github.com/math-server/math-server/server"
)

// NewServerCommand returns the math-server command line.
func NewServerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "math-server",
		Short:         "Evaluates arithmetic expressions sent over TCP, one per line",
		Args:          noArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runServer,
	}
	cmd.SetFlagErrorFunc(newUsageError)

	f := cmd.Flags()
	f.IntP("port", "p", server.DefaultPort, "server port number")
	f.IntP("threads", "n", runtime.NumCPU(), "number of threads")
	f.String("host", "", "address to bind to, all interfaces if empty")
	f.Int("max-connections", 0, "maximum number of clients served at once, 0 for no limit")
	f.String("log-level", "info", "one of trace, debug, info, warn, error")
	f.String("config", "", "config file")
	return cmd
}

func runServer(cmd *cobra.Command, _ []string) error {
	c, err := newConfig(cmd, serverEnvPrefix)
	if err != nil {
		return newUsageError(cmd, err)
	}
	out.SetLogger(cmd.ErrOrStderr(), c.GetString("log-level"))

	cfg := server.Config{Host: c.GetString("host")}
	if cfg.Port, err = c.int(cmd, "port"); err != nil {
		return err
	}
	if cfg.Threads, err = c.int(cmd, "threads"); err != nil {
		return err
	}
	if cfg.MaxConnections, err = c.int(cmd, "max-connections"); err != nil {
		return err
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}
	return srv.Run(cmd.Context())
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return newUsageError(cmd, err)
	}
	return nil
}
