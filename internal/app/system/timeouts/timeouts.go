// Package timeouts holds the request deadlines used by handlers.
//
// Values start at their defaults and can be overridden once at startup with
// Configure. Getters are safe to call from any goroutine.
//
//   - Short: page renders and JSON reads
//   - StreamGrace: slack added to a counter stream's animation length before
//     the stream is cut off
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultShort       = 5 * time.Second
	DefaultStreamGrace = 5 * time.Second
)

var (
	mu          sync.RWMutex
	short       = DefaultShort
	streamGrace = DefaultStreamGrace
)

// Short is the deadline for page renders and JSON reads.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// StreamGrace is added to the longest counter duration to bound a stream.
func StreamGrace() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return streamGrace
}

// Config holds overrides. Non-positive fields keep the current value.
type Config struct {
	Short       time.Duration
	StreamGrace time.Duration
}

// Configure applies cfg. Call during startup before serving.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Short > 0 {
		short = cfg.Short
	}
	if cfg.StreamGrace > 0 {
		streamGrace = cfg.StreamGrace
	}
}

// Reset restores the defaults. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	short = DefaultShort
	streamGrace = DefaultStreamGrace
}

// Current returns the active configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{Short: short, StreamGrace: streamGrace}
}

// StreamBudget is the maximum time a stream animating for d may stay open.
func StreamBudget(d time.Duration) time.Duration {
	return d + StreamGrace()
}

// WithTimeout derives a context with the given timeout. The returned cancel
// logs a warning when the deadline was what ended the context.
//
//	ctx, cancel := timeouts.WithTimeout(r.Context(), budget, h.Log, "counter stream")
//	defer cancel()
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
