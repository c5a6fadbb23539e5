// Package debug provides context-based debug mode with structured logging.
package debug

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"
)

type contextKey string

const debugKey contextKey = "debug_enabled"

// EnvVar enables debug mode without the --debug flag.
const EnvVar = "BIRDSONG_DEBUG"

// FromEnv reports whether the BIRDSONG_DEBUG environment variable requests
// debug mode.
func FromEnv() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvVar))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// WithDebug returns a context with debug mode enabled/disabled.
func WithDebug(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, debugKey, enabled)
}

// IsEnabled returns true if debug mode is enabled in the context.
func IsEnabled(ctx context.Context) bool {
	if v, ok := ctx.Value(debugKey).(bool); ok {
		return v
	}
	return false
}

// LogRequest emits one line per completed HTTP round trip. It is a no-op
// unless debug mode is enabled in ctx, so callers log unconditionally.
func LogRequest(ctx context.Context, method, url string, status int, duration time.Duration) {
	if !IsEnabled(ctx) {
		return
	}
	slog.Debug("request complete",
		"method", method,
		"url", url,
		"status", status,
		"duration", duration)
}

// SetupLogger configures slog based on debug mode.
func SetupLogger(debugEnabled bool) {
	var level slog.Level
	if debugEnabled {
		level = slog.LevelDebug
	} else {
		level = slog.LevelWarn
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
