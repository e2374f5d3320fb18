package gridest

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/gridest/estimate"
	"github.com/hupe1980/gridest/gridstat"
	"github.com/hupe1980/gridest/summary"
)

// Logger wraps slog.Logger with gridest-specific context.
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

// WithDataset adds a dataset name field to the logger.
func (l *Logger) WithDataset(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("dataset", name),
	}
}

// WithCells adds a cell count field to the logger.
func (l *Logger) WithCells(cells int) *Logger {
	return &Logger{
		Logger: l.Logger.With("cells", cells),
	}
}

// LogLoad logs a summary load operation.
func (l *Logger) LogLoad(ctx context.Context, name string, s *summary.Summary, err error) {
	if err != nil {
		l.ErrorContext(ctx, "summary load failed",
			"name", name,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "summary loaded",
		"name", name,
		"vertices", len(s.Vertices),
		"triangles", len(s.Triangles),
		"objects", s.ObjectCount,
		"has_grid", s.HasGrid(),
	)
}

// LogAnalyze logs a grid analysis.
func (l *Logger) LogAnalyze(ctx context.Context, stats gridstat.Stats) {
	l.DebugContext(ctx, "grid analyzed",
		"total_cells", stats.TotalCells,
		"non_empty_cells", stats.NonEmptyCells,
		"occupancy_ratio", stats.OccupancyRatio,
		"global_avg_size", stats.GlobalAvgSize,
	)
}

// LogEstimate logs an overlap estimation.
func (l *Logger) LogEstimate(ctx context.Context, r *estimate.Report, err error) {
	if err != nil {
		l.ErrorContext(ctx, "estimation failed",
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "estimation completed",
		"raw_estimate", r.RawEstimate,
		"alpha", r.Alpha,
		"final_estimate", r.FinalEstimate,
		"co_occupied_cells", r.CoOccupiedCells,
		"saturated_cells", r.SaturatedCells,
	)
}

// LogBatch logs a batch estimation run.
func (l *Logger) LogBatch(ctx context.Context, pairs int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "batch estimation failed",
			"pairs", pairs,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "batch estimation completed",
		"pairs", pairs,
	)
}
