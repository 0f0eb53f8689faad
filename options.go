package lrucache

import (
	"log/slog"
)

type options[K comparable, V any] struct {
	onEvict func(key K, value V)
	logger  *Logger
}

// Option configures Cache construction.
type Option[K comparable, V any] func(*options[K, V])

// WithOnEvict registers fn to be called once for every entry that leaves
// the cache, whatever the reason: capacity evictions during Put, explicit
// Remove and RemoveOldest calls, and the entries dropped by Resize and
// Purge. Replacing the value of a resident key is not a removal and does
// not trigger fn.
//
// fn runs synchronously after the entry has already been removed, so the
// cache is consistent when it executes. fn must not call back into the
// cache.
func WithOnEvict[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(o *options[K, V]) {
		o.onEvict = fn
	}
}

// WithLogger configures structured logging for cache operations.
//
// If nil is passed, logging is disabled.
func WithLogger[K comparable, V any](logger *Logger) Option[K, V] {
	return func(o *options[K, V]) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel[K comparable, V any](level slog.Level) Option[K, V] {
	return func(o *options[K, V]) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions[K comparable, V any](optFns []Option[K, V]) options[K, V] {
	o := options[K, V]{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
