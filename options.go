package topicgo

import (
	"log/slog"

	"github.com/hupe1980/topicgo/gibbs"
)

type options struct {
	numTopics int
	alpha     float64
	beta      float64
	seed      *int64
	logger    *Logger
	metrics   MetricsCollector
	observer  gibbs.Observer
}

// Option configures Model construction behavior.
type Option func(*options)

// WithNumTopics configures the number of latent topics.
//
// More topics produce finer-grained themes at the cost of slower sweeps and
// more data needed per topic. Typical corpora use 10-200.
func WithNumTopics(k int) Option {
	return func(o *options) {
		o.numTopics = k
	}
}

// WithAlpha configures the document-topic Dirichlet smoothing.
//
// Smaller values concentrate each document on fewer topics. Must be > 0.
func WithAlpha(alpha float64) Option {
	return func(o *options) {
		o.alpha = alpha
	}
}

// WithBeta configures the topic-term Dirichlet smoothing.
//
// Smaller values concentrate each topic on fewer terms. Must be > 0.
func WithBeta(beta float64) Option {
	return func(o *options) {
		o.beta = beta
	}
}

// WithSeed pins the random stream for reproducible runs.
// Two models with the same seed and corpus produce identical assignments.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := topicgo.NewJSONLogger(slog.LevelInfo)
//	m, _ := topicgo.New(c, topicgo.WithLogger(logger))
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

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &topicgo.BasicMetricsCollector{}
//	m, _ := topicgo.New(c, topicgo.WithMetricsCollector(metrics))
//	// ... train ...
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Avg latency: %dns\n", stats.RunCount, stats.RunAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metrics = mc
	}
}

// WithObserver configures a sampling observer receiving per-document and
// per-iteration callbacks, e.g. a ProgressObserver.
func WithObserver(obs gibbs.Observer) Option {
	return func(o *options) {
		if obs == nil {
			obs = gibbs.NoopObserver{}
		}
		o.observer = obs
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		numTopics: gibbs.DefaultOptions.NumTopics,
		alpha:     gibbs.DefaultOptions.Alpha,
		beta:      gibbs.DefaultOptions.Beta,
		logger:    NoopLogger(),
		metrics:   NoopMetricsCollector{},
		observer:  gibbs.NoopObserver{},
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
