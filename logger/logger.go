package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const workerIDKey contextKey = "worker"

var (
	logger *slog.Logger
	once   sync.Once
)

// ParseLevel maps a level name to a slog.Level, defaulting to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init initializes the global logger with the given level. Output goes to
// stderr so command results on stdout stay clean.
func Init(level string) {
	once.Do(func() {
		opts := &slog.HandlerOptions{
			Level: ParseLevel(level),
		}

		handler := slog.NewTextHandler(os.Stderr, opts)
		logger = slog.New(handler)
	})
}

// GetLogger returns the global logger.
func GetLogger() *slog.Logger {
	if logger == nil {
		Init("INFO")
	}
	return logger
}

// WithWorkerID returns a new context with the worker ID attached.
func WithWorkerID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, workerIDKey, id)
}

// WorkerIDFromContext extracts the worker ID from context, or -1 if unset.
func WorkerIDFromContext(ctx context.Context) int {
	if v := ctx.Value(workerIDKey); v != nil {
		if id, ok := v.(int); ok {
			return id
		}
	}
	return -1
}

// LoggerForContext returns a logger instance with the worker ID from context.
func LoggerForContext(ctx context.Context) *slog.Logger {
	base := GetLogger()
	if id := WorkerIDFromContext(ctx); id >= 0 {
		return base.With("worker", id)
	}
	return base
}

// LogAttrs logs a message with slog.Attr attributes.
func LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	log := LoggerForContext(ctx)
	log.LogAttrs(ctx, level, msg, attrs...)
}
