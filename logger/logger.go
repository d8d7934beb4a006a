// Package logger wires zerolog to stderr for degradation warnings, so
// report output on stdout stays pipeable.
package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Log is the process-wide logger. Reports never go through it; it only
// carries warnings about skipped sub-reports and missing tools.
var Log = zerolog.Nop()

// Init configures the console writer. Level comes from SYSGLANCE_LOG
// (default warn), keeping the normal run silent unless something
// degrades.
func Init(noColor bool) {
	w := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}
	Log = zerolog.New(w).Level(logLevel()).With().Timestamp().Logger()
}

func logLevel() zerolog.Level {
	switch strings.ToLower(os.Getenv("SYSGLANCE_LOG")) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}
