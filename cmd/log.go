package cmd

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// newLogger returns a logger writing to stderr. Verbose enables the debug
// level, otherwise only warnings are logged.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
