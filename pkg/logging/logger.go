// Package logging provides structured logging for the timing engine,
// backed by Go's slog package.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// contextKey is used for context keys to avoid collisions
type contextKey string

const (
	// ContextKeyLogger is the context key for the logger instance
	ContextKeyLogger contextKey = "logger"
)

// Logger emits structured analysis logs. Records are slog key-value
// pairs; the With* helpers pin the identifiers an analysis carries from
// start to finish. The zero value is not usable, call New.
type Logger struct {
	l *slog.Logger
}

// Config holds logging configuration
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string
	// Output is where logs are written (default: os.Stderr)
	Output io.Writer
	// Pretty enables human-readable text output (default: false for JSON)
	Pretty bool
	// IncludeCaller includes source location in logs (default: false)
	IncludeCaller bool
}

// DefaultConfig returns the logging defaults: info level, JSON records on
// stderr. Diagnostics go to stderr so the sta command's report keeps
// stdout to itself.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Output: os.Stderr,
	}
}

// ParseLevel converts a level name to its slog level. The empty string
// means info; unknown names fail with ErrInvalidLogLevel.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLogLevel, level)
}

// New creates a logger with the given configuration. An unknown level
// name falls back to info rather than failing: logging must never keep an
// analysis from running.
func New(cfg Config) *Logger {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		level = slog.LevelInfo
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cfg.IncludeCaller,
	}

	var handler slog.Handler
	if cfg.Pretty {
		handler = slog.NewTextHandler(output, opts)
	} else {
		handler = slog.NewJSONHandler(output, opts)
	}

	return &Logger{l: slog.New(handler)}
}

// WithContext adds the logger to a context
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, l)
}

// FromContext retrieves the logger from context, or returns default logger
func FromContext(ctx context.Context) *Logger {
	if logger, ok := ctx.Value(ContextKeyLogger).(*Logger); ok {
		return logger
	}
	return New(DefaultConfig())
}

// WithAnalysis pins the analysis ID, and the netlist ID when one is
// known, onto every subsequent record. Every run logs through a logger
// derived this way, so its records can be correlated with observer events
// and telemetry carrying the same IDs.
func (l *Logger) WithAnalysis(analysisID, netlistID string) *Logger {
	args := []any{slog.String("analysis_id", analysisID)}
	if netlistID != "" {
		args = append(args, slog.String("netlist_id", netlistID))
	}
	return &Logger{l: l.l.With(args...)}
}

// WithStage marks records with the pipeline stage that produced them
// (parse, topo, forward, backward, slack, paths).
func (l *Logger) WithStage(stage string) *Logger {
	return &Logger{l: l.l.With(slog.String("stage", stage))}
}

// WithError adds the error to subsequent records
func (l *Logger) WithError(err error) *Logger {
	return &Logger{l: l.l.With(slog.Any("error", err))}
}

// With adds arbitrary key-value pairs, slog style.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{l: l.l.With(args...)}
}

// Debug logs a debug message with optional key-value pairs
func (l *Logger) Debug(msg string, args ...any) {
	l.l.Debug(msg, args...)
}

// Info logs an info message with optional key-value pairs
func (l *Logger) Info(msg string, args ...any) {
	l.l.Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs
func (l *Logger) Warn(msg string, args ...any) {
	l.l.Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs
func (l *Logger) Error(msg string, args ...any) {
	l.l.Error(msg, args...)
}
