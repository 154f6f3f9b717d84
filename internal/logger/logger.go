package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the root logger. Production logs JSON to stdout; anything else
// gets the human console writer at debug level.
func New(production bool) zerolog.Logger {
	if production {
		return zerolog.New(os.Stdout).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
