package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a leveled logger with a printf-style surface, backed by zerolog.
// When a file path is given, entries are written there as JSON; otherwise the
// logger writes human-readable output to stdout.
type Logger struct {
	zl     zerolog.Logger
	closer io.Closer
}

// New creates a logger writing to the given file (or stdout when file is
// empty). Level is one of debug/info/warn/error; unknown values fall back
// to info.
func New(file, level string) (*Logger, error) {
	lvl := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil && parsed != zerolog.NoLevel {
		lvl = parsed
	}

	var output io.Writer
	var closer io.Closer

	if file == "" {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	} else {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		output = f
		closer = f
	}

	zl := zerolog.New(output).Level(lvl).With().Timestamp().Logger()

	return &Logger{zl: zl, closer: closer}, nil
}

// Debug logs a message at debug level
func (l *Logger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

// Info logs a message at info level
func (l *Logger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

// Warn logs a message at warn level
func (l *Logger) Warn(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

// Error logs a message at error level
func (l *Logger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Fatal logs a message at fatal level and terminates the process
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.zl.Fatal().Msgf(format, v...)
}

// Close releases the underlying log file, if any
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}
