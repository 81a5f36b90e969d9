package geocluster

import (
	"log/slog"
)

type options struct {
	defaultDistance  int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Geocluster constructor behavior.
//
// Today options primarily exist to avoid exploding the API surface
// (e.g. distance-specific constructor variants).
type Option func(*options)

// WithDefaultDistance configures the pixel distance used when a request
// does not carry its own threshold. The distance must be positive; the
// constructor rejects anything else.
//
// The default of 65 pixels matches a typical marker footprint at 256px
// tiles. Smaller values produce more, tighter clusters; larger values
// produce fewer, coarser ones.
func WithDefaultDistance(distance int) Option {
	return func(o *options) {
		o.defaultDistance = distance
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
//
// Example with BasicMetricsCollector:
//
//	metrics := &geocluster.BasicMetricsCollector{}
//	gc, _ := geocluster.New[string](geocluster.WithMetricsCollector(metrics))
//	// ... use gc ...
//	stats := metrics.GetStats()
//	fmt.Printf("Clusters: %d, Avg latency: %dns\n", stats.ClusterCount, stats.ClusterAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
//
// Example with JSON logging:
//
//	logger := geocluster.NewJSONLogger(slog.LevelInfo)
//	gc, _ := geocluster.New[string](geocluster.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		defaultDistance:  DefaultDistance,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
