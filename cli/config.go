// Package cli implements the command lines of math-server and math-client.
//
// Every flag can also be set through an environment variable named after
// the flag (MATH_SERVER_THREADS, MATH_CLIENT_HOST, ...) or through a config
// file passed with --config. Flags take precedence over the environment,
// which takes precedence over the config file.
package cli

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	serverEnvPrefix = "MATH_SERVER"
	clientEnvPrefix = "MATH_CLIENT"
)

// config resolves settings from flags, the environment and an optional config file.
type config struct {
	*viper.Viper
}

func newConfig(cmd *cobra.Command, envPrefix string) (config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config{}, errors.Wrap(err, "bind flags failed")
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, errors.Wrapf(err, "read config file %s failed", path)
		}
	}
	return config{v}, nil
}

// Values coming from the environment or a config file are only checked on
// conversion, so bad ones are reported as usage errors.

func (c config) int(cmd *cobra.Command, key string) (int, error) {
	n, err := cast.ToIntE(c.Get(key))
	if err != nil {
		return 0, newUsageError(cmd, errors.Errorf("invalid value for %s: %v", key, c.Get(key)))
	}
	return n, nil
}

func (c config) duration(cmd *cobra.Command, key string) (time.Duration, error) {
	d, err := cast.ToDurationE(c.Get(key))
	if err != nil {
		return 0, newUsageError(cmd, errors.Errorf("invalid value for %s: %v", key, c.Get(key)))
	}
	return d, nil
}
