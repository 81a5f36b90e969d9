package geocluster

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with geocluster-specific context.
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

// WithZoom adds a zoom field to the logger.
func (l *Logger) WithZoom(zoom int) *Logger {
	return &Logger{
		Logger: l.Logger.With("zoom", zoom),
	}
}

// WithThreshold adds a threshold (pixel distance) field to the logger.
func (l *Logger) WithThreshold(threshold int) *Logger {
	return &Logger{
		Logger: l.Logger.With("threshold", threshold),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBucket logs a bucketing operation.
func (l *Logger) LogBucket(ctx context.Context, zoom, points, buckets int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "bucket failed",
			"zoom", zoom,
			"points", points,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "bucket completed",
			"zoom", zoom,
			"points", points,
			"buckets", buckets,
		)
	}
}

// LogMerge logs a neighbor merge pass.
func (l *Logger) LogMerge(ctx context.Context, zoom, absorbed int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "merge failed",
			"zoom", zoom,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "merge completed",
			"zoom", zoom,
			"absorbed", absorbed,
		)
	}
}

// LogCluster logs a full clustering run.
func (l *Logger) LogCluster(ctx context.Context, zoom, points, clusters int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "cluster failed",
			"zoom", zoom,
			"points", points,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "cluster completed",
			"zoom", zoom,
			"points", points,
			"clusters", clusters,
		)
	}
}
