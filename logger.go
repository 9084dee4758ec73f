package topicgo

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/hupe1980/topicgo/gibbs"
)

// Logger wraps slog.Logger with topicgo-specific context.
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

// WithNumTopics adds a topic count field to the logger (useful for tagging
// sweep candidates).
func (l *Logger) WithNumTopics(k int) *Logger {
	return &Logger{
		Logger: l.Logger.With("num_topics", k),
	}
}

// WithSeed adds a seed field to the logger.
func (l *Logger) WithSeed(seed int64) *Logger {
	return &Logger{
		Logger: l.Logger.With("seed", seed),
	}
}

// LogInitialize logs an initialization sweep.
func (l *Logger) LogInitialize(ctx context.Context, docs, topics int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "initialization failed",
			"documents", docs,
			"num_topics", topics,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "sampler initialized",
			"documents", docs,
			"num_topics", topics,
		)
	}
}

// LogIteration logs one completed sampling iteration. It takes no context
// because it is invoked from observer callbacks.
func (l *Logger) LogIteration(iteration int, likelihood, relChange float64) {
	l.Info("iteration completed",
		"iteration", iteration,
		"likelihood", likelihood,
		"relative_change", relChange,
	)
}

// LogRun logs a completed inference run.
func (l *Logger) LogRun(ctx context.Context, res gibbs.Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"iterations", res.Iterations,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "run completed",
			"iterations", res.Iterations,
			"converged", res.Converged,
			"likelihood", res.Likelihood,
		)
	}
}

// LogSweep logs a model-selection sweep over candidate topic counts.
func (l *Logger) LogSweep(ctx context.Context, candidates int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "sweep failed",
			"candidates", candidates,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "sweep completed",
			"candidates", candidates,
		)
	}
}

// LogCorpusLoad logs a corpus load.
func (l *Logger) LogCorpusLoad(ctx context.Context, name string, docs, terms int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "corpus load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "corpus loaded",
			"name", name,
			"documents", docs,
			"terms", terms,
		)
	}
}

// samplerLogger adapts Logger to the core sampler's logging interface.
// Per-sweep detail logs at debug; failures log at error.
type samplerLogger struct {
	l *Logger
}

var _ gibbs.Logger = samplerLogger{}

func (sl samplerLogger) Infof(format string, args ...interface{}) {
	sl.l.Debug(fmt.Sprintf(format, args...))
}

func (sl samplerLogger) Errorf(format string, args ...interface{}) {
	sl.l.Error(fmt.Sprintf(format, args...))
}
