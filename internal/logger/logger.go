package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// ParseLevel maps a configured level name to a zerolog level.
func ParseLevel(lvl string) (zerolog.Level, error) {
	switch strings.ToLower(lvl) {
	case "error":
		return zerolog.ErrorLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	}
	return zerolog.InfoLevel, fmt.Errorf("invalid log level: %s", lvl)
}

// New creates a console logger on stderr, keeping stdout for command output.
func New(level zerolog.Level) zerolog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a console logger writing to w.
func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
