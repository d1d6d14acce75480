package logger

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const commandKey contextKey = "command"

var (
	logger *slog.Logger
	once   sync.Once
)

// Init initializes the global logger with the given level. Output goes to
// stderr so encoded results on stdout stay pipeable.
func Init(level string) {
	once.Do(func() {
		var logLevel slog.Level
		switch level {
		case "DEBUG":
			logLevel = slog.LevelDebug
		case "INFO":
			logLevel = slog.LevelInfo
		case "WARN":
			logLevel = slog.LevelWarn
		case "ERROR":
			logLevel = slog.LevelError
		default:
			logLevel = slog.LevelInfo
		}

		opts := &slog.HandlerOptions{
			Level: logLevel,
		}

		logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
	})
}

// GetLogger returns the global logger.
func GetLogger() *slog.Logger {
	if logger == nil {
		Init("INFO")
	}
	return logger
}

// WithCommand returns a new context carrying the active sub-command name.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, commandKey, command)
}

// CommandFromContext extracts the sub-command name from context.
func CommandFromContext(ctx context.Context) string {
	if v := ctx.Value(commandKey); v != nil {
		if name, ok := v.(string); ok {
			return name
		}
	}
	return ""
}

// LoggerForContext returns a logger instance tagged with the sub-command
// name from context.
func LoggerForContext(ctx context.Context) *slog.Logger {
	base := GetLogger()
	if command := CommandFromContext(ctx); command != "" {
		return base.With("command", command)
	}
	return base
}

// LogAttrs logs a message with slog.Attr attributes.
func LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	log := LoggerForContext(ctx)
	log.LogAttrs(ctx, level, msg, attrs...)
}
