package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

var log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Init reconfigures the package logger. The level comes from LOG_LEVEL
// (debug/info/warn/error), defaulting to info.
func Init() {
	opts := &slog.HandlerOptions{Level: levelFromEnv()}
	log = slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// New wraps a handler in a slog.Logger. Exposed so tests can swap in a
// handler writing to a buffer.
func New(h slog.Handler) *slog.Logger {
	return slog.New(h)
}

// NewJSONHandler mirrors slog.NewJSONHandler for test use.
func NewJSONHandler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	return slog.NewJSONHandler(w, opts)
}

func levelFromEnv() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Info(msg string, args ...any) {
	log.Info(msg, args...)
}

func Infof(format string, v ...any) {
	log.Info(fmt.Sprintf(format, v...))
}

func Error(msg string, args ...any) {
	log.Error(msg, args...)
}

func Errorf(format string, v ...any) {
	log.Error(fmt.Sprintf(format, v...))
}

func Debug(msg string, args ...any) {
	log.Debug(msg, args...)
}

func Debugf(format string, v ...any) {
	log.Debug(fmt.Sprintf(format, v...))
}

func Fatal(msg string, args ...any) {
	log.Error(msg, args...)
	os.Exit(1)
}

func Fatalf(format string, v ...any) {
	log.Error(fmt.Sprintf(format, v...))
	os.Exit(1)
}

// WithError returns a logger carrying the error as a field.
func WithError(err error) *slog.Logger {
	return log.With("error", err)
}

// WithFields returns a logger carrying the given fields.
func WithFields(fields map[string]interface{}) *slog.Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return log.With(args...)
}
