
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type Logger struct {
	zl zerolog.Logger
}

// New logs human-readable lines to stderr at info level.
func New() *Logger { return NewWithWriter(os.Stderr, false) }

// NewWithWriter logs to w; verbose enables debug output.
func NewWithWriter(w io.Writer, verbose bool) *Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: w != os.Stderr}
	return &Logger{zl: zerolog.New(out).Level(level).With().Timestamp().Logger()}
}

// With returns a child logger carrying an extra field.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{zl: l.zl.With().Str(key, value).Logger()}
}

func (l *Logger) Debugf(format string, args ...any) {
	l.zl.Debug().Msgf(format, args...)
}
func (l *Logger) Infof(format string, args ...any) {
	l.zl.Info().Msgf(format, args...)
}
func (l *Logger) Errorf(format string, args ...any) {
	l.zl.Error().Msgf(format, args...)
}
