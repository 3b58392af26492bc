// Package logger wraps slog with the JSON shape the rest of the service
// logs in: every record carries the service name and a short action tag.
package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger struct {
	sl *slog.Logger
}

func New(service string) *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	sl := slog.New(handler).With(slog.String("service", service))
	return &Logger{sl: sl}
}

// Discard returns a logger that drops everything. Used by tests.
func Discard() *Logger {
	return &Logger{sl: slog.New(slog.NewJSONHandler(io.Discard, nil))}
}

func (l *Logger) Info(action, msg string, args ...any) {
	l.sl.Info(msg, append([]any{slog.String("action", action)}, args...)...)
}

func (l *Logger) Warn(action, msg string, args ...any) {
	l.sl.Warn(msg, append([]any{slog.String("action", action)}, args...)...)
}

func (l *Logger) Error(action, msg string, err error, args ...any) {
	args = append([]any{slog.String("action", action), slog.String("error", err.Error())}, args...)
	l.sl.Error(msg, args...)
}
