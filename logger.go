package arena

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with allocator-specific helpers.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogAllocate logs an allocation attempt.
func (l *Logger) LogAllocate(size, offset int, err error) {
	if err != nil {
		l.Warn("allocate failed",
			"size", size,
			"error", err,
		)
	} else {
		l.Debug("allocate completed",
			"size", size,
			"offset", offset,
		)
	}
}

// LogFree logs a release attempt.
func (l *Logger) LogFree(offset int, err error) {
	if err != nil {
		l.Warn("free failed",
			"offset", offset,
			"error", err,
		)
	} else {
		l.Debug("free completed",
			"offset", offset,
		)
	}
}

// LogDefragment logs a defragmentation pass.
func (l *Logger) LogDefragment(merged, freeRegions int) {
	l.Debug("defragment completed",
		"merged", merged,
		"free_regions", freeRegions,
	)
}
