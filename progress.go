package topicgo

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/topicgo/gibbs"
)

// ProgressObserverOptions contains configuration options for a
// ProgressObserver.
type ProgressObserverOptions struct {
	// Interval is the minimum time between per-document progress lines.
	// Iteration summaries are always logged.
	Interval time.Duration
}

// DefaultProgressObserverOptions contains the default configuration options
// for a ProgressObserver.
var DefaultProgressObserverOptions = ProgressObserverOptions{
	Interval: time.Second,
}

// ProgressObserver logs sampling progress through a Logger. Per-document
// progress is rate-limited so long sweeps stay readable; every completed
// iteration logs a summary line.
type ProgressObserver struct {
	logger  *Logger
	limiter *rate.Limiter
}

// Compile time check to ensure ProgressObserver satisfies the Observer interface.
var _ gibbs.Observer = (*ProgressObserver)(nil)

// NewProgressObserver creates a ProgressObserver logging through logger.
func NewProgressObserver(logger *Logger, optFns ...func(o *ProgressObserverOptions)) *ProgressObserver {
	opts := DefaultProgressObserverOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Interval <= 0 {
		opts.Interval = DefaultProgressObserverOptions.Interval
	}
	if logger == nil {
		logger = NoopLogger()
	}

	return &ProgressObserver{
		logger:  logger,
		limiter: rate.NewLimiter(rate.Every(opts.Interval), 1),
	}
}

// OnDocument implements gibbs.Observer.
func (p *ProgressObserver) OnDocument(iteration, processed, total int) {
	if !p.limiter.Allow() {
		return
	}
	p.logger.Info("sampling progress",
		"iteration", iteration,
		"documents", processed,
		"total", total,
	)
}

// OnIteration implements gibbs.Observer.
func (p *ProgressObserver) OnIteration(iteration int, likelihood, relChange float64) {
	p.logger.LogIteration(iteration, likelihood, relChange)
}
