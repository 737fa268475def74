package search

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/pairpath/cache"
	"github.com/katalvlaran/pairpath/domain"
)

// LevelTrace logs every popped node and every candidate step.
const LevelTrace = slog.LevelDebug - 4

// Logger wraps slog.Logger with search-specific messages.
//
// Levels:
//   - Info: search goals, new cost records.
//   - Debug: per-worker progress, tied paths in EnumerateTies mode.
//   - LevelTrace: every pop and every candidate step.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger writing human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger writing JSON to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger discards everything.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// WithWorker tags every record with a worker id.
func (l *Logger) WithWorker(id int) *Logger {
	return &Logger{Logger: l.Logger.With("worker", id)}
}

// LogGoal logs the search parameters.
func (l *Logger) LogGoal(ctx context.Context, p Problem, l1Entries int, seeds int, policy TiePolicy) {
	l.InfoContext(ctx, "searching for a better path",
		"feeds", p.NumFeeds,
		"entry_size", p.EntrySize,
		"l1_entries", l1Entries,
		"max_radius", p.MaxRadius,
		"bound", p.Bound,
		"path_length", p.PathLength(),
		"seeds", seeds,
		"tie_policy", policy.String(),
	)
}

// LogRecord logs a new cost record.
func (l *Logger) LogRecord(ctx context.Context, cost cache.Cost, path []domain.Pair) {
	l.InfoContext(ctx, "reached new cache cost record",
		"cost", cost,
		"path", path,
	)
}

// LogTie logs a complete path matching the best cost.
func (l *Logger) LogTie(ctx context.Context, cost cache.Cost, path []domain.Pair) {
	l.DebugContext(ctx, "found a path that matches current cache cost",
		"cost", cost,
		"path", path,
	)
}

// LogDone logs the end of a search.
func (l *Logger) LogDone(ctx context.Context, res Result, err error) {
	if err != nil {
		l.WarnContext(ctx, "search stopped early",
			"found", res.Found,
			"cost", res.Cost,
			"pops", res.Stats.Pops,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "search completed",
		"found", res.Found,
		"cost", res.Cost,
		"pops", res.Stats.Pops,
		"records", res.Stats.Records,
	)
}
