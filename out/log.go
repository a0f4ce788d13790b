// Package out holds what both binaries write out: log records and reply lines.
package out

import (
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// SetLogger configures the standard logger with timestamped records at the given level.
// Unknown levels fall back to info.
func SetLogger(w io.Writer, level string) {
	formatter := new(logrus.TextFormatter)
	formatter.TimestampFormat = time.RFC3339Nano
	formatter.FullTimestamp = true
	logrus.SetFormatter(formatter)
	logrus.SetOutput(w)
	logrus.SetLevel(ParseLevel(level))
}

func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
