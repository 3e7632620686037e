package langtab

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/langtab/model"
)

// Logger wraps slog.Logger with langtab-specific context.
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

// WithKind adds a backend kind field to the logger.
func (l *Logger) WithKind(kind string) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", kind),
	}
}

// WithLanguage adds a language field to the logger.
func (l *Logger) WithLanguage(language string) *Logger {
	return &Logger{
		Logger: l.Logger.With("language", language),
	}
}

// WithYear adds a year field to the logger.
func (l *Logger) WithYear(year int) *Logger {
	return &Logger{
		Logger: l.Logger.With("year", year),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(ctx context.Context, rec model.Record, err error) {
	if err != nil {
		l.ErrorContext(ctx, "insert failed",
			"year", rec.Year,
			"language", rec.Language,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "insert completed",
			"year", rec.Year,
			"language", rec.Language,
		)
	}
}

// LogBatchInsert logs a batch insert operation.
func (l *Logger) LogBatchInsert(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch insert rejected",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch insert completed",
			"count", count,
		)
	}
}

// LogLookup logs a year-created lookup.
func (l *Logger) LogLookup(ctx context.Context, language string, year int, err error) {
	if err != nil {
		l.DebugContext(ctx, "lookup missed",
			"language", language,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "lookup completed",
			"language", language,
			"year", year,
		)
	}
}

// LogCount logs a count-by-year query.
func (l *Logger) LogCount(ctx context.Context, year, count int) {
	l.DebugContext(ctx, "count completed",
		"year", year,
		"count", count,
	)
}

// LogSnapshot logs a snapshot save operation.
func (l *Logger) LogSnapshot(ctx context.Context, name string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot saved",
			"name", name,
		)
	}
}

// LogLoad logs a snapshot load operation.
func (l *Logger) LogLoad(ctx context.Context, name string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot loaded",
			"name", name,
			"count", count,
		)
	}
}
