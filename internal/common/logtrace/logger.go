// Package logtrace provides logging and request tracing helpers built on zerolog.
package logtrace

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the global zerolog logger to write console-formatted
// output to stderr. Debug output is enabled only when verbose is set.
func InitLogger(verbose bool) zerolog.Logger {
	return initLogger(os.Stderr, verbose)
}

func initLogger(w io.Writer, verbose bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
	return log.Logger
}
