package arena

import "log/slog"

type options struct {
	logger           *Logger
	metrics          MetricsCollector
	defragmentFactor int
	autoDefragment   bool
}

// Option configures an Arena at construction.
type Option func(*options)

// WithLogger configures structured logging for allocator operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := arena.NewJSONLogger(slog.LevelDebug)
//	a, _ := arena.New(4096, arena.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
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

// WithMetricsCollector configures a collector notified after every
// Allocate, Free and Defragment. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithDefragmentFactor sets the load factor of the automatic trigger: Free
// defragments once the free list holds more than factor regions per live
// allocation. Values below 1 keep DefaultDefragmentFactor.
func WithDefragmentFactor(factor int) Option {
	return func(o *options) {
		if factor >= 1 {
			o.defragmentFactor = factor
		}
	}
}

// WithAutoDefragment enables or disables defragmentation after Free.
// Defragment can always be called explicitly.
func WithAutoDefragment(enabled bool) Option {
	return func(o *options) {
		o.autoDefragment = enabled
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:           NoopLogger(),
		metrics:          NoopMetricsCollector{},
		defragmentFactor: DefaultDefragmentFactor,
		autoDefragment:   true,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
