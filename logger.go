package lrucache

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with cache-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// DebugEnabled reports whether debug records would be emitted. Hot paths
// check it before building log attributes, which box their arguments.
func (l *Logger) DebugEnabled() bool {
	return l.Enabled(context.Background(), slog.LevelDebug)
}

// LogEvict logs the eviction of the least recently used entry.
func (l *Logger) LogEvict(key any, size int) {
	l.Debug("evicted least recently used entry",
		"key", key,
		"size", size,
	)
}

// LogPurge logs the removal of all entries.
func (l *Logger) LogPurge(removed int) {
	l.Debug("cache purged",
		"removed", removed,
	)
}

// LogResize logs a capacity change.
func (l *Logger) LogResize(limit, evicted int) {
	l.Debug("cache resized",
		"limit", limit,
		"evicted", evicted,
	)
}
