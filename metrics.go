package topicgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    runCounter     prometheus.Counter
//	    runHistogram   prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordRun(iterations int, duration time.Duration, err error) {
//	    p.runCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordInitialize is called after each initialization sweep.
	// duration is the total time taken, err is nil if successful.
	RecordInitialize(duration time.Duration, err error)

	// RecordRun is called after each inference run.
	// iterations is the number of completed sampling iterations, duration
	// is the total time taken, err is nil if successful.
	RecordRun(iterations int, duration time.Duration, err error)

	// RecordSweep is called after each model-selection sweep.
	// candidates is the number of topic counts trained, duration is the
	// total time taken, err is nil if successful.
	RecordSweep(candidates int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInitialize(time.Duration, error) {}
func (NoopMetricsCollector) RecordRun(int, time.Duration, error)   {}
func (NoopMetricsCollector) RecordSweep(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InitializeCount      atomic.Int64
	InitializeErrors     atomic.Int64
	InitializeTotalNanos atomic.Int64
	RunCount             atomic.Int64
	RunErrors            atomic.Int64
	RunIterations        atomic.Int64
	RunTotalNanos        atomic.Int64
	SweepCount           atomic.Int64
	SweepErrors          atomic.Int64
	SweepCandidates      atomic.Int64
	SweepTotalNanos      atomic.Int64
}

// RecordInitialize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInitialize(duration time.Duration, err error) {
	b.InitializeCount.Add(1)
	b.InitializeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InitializeErrors.Add(1)
	}
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(iterations int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunIterations.Add(int64(iterations))
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// RecordSweep implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSweep(candidates int, duration time.Duration, err error) {
	b.SweepCount.Add(1)
	b.SweepCandidates.Add(int64(candidates))
	b.SweepTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SweepErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InitializeCount:  b.InitializeCount.Load(),
		InitializeErrors: b.InitializeErrors.Load(),
		RunCount:         b.RunCount.Load(),
		RunErrors:        b.RunErrors.Load(),
		RunIterations:    b.RunIterations.Load(),
		RunAvgNanos:      b.getAvgRunNanos(),
		SweepCount:       b.SweepCount.Load(),
		SweepErrors:      b.SweepErrors.Load(),
		SweepCandidates:  b.SweepCandidates.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRunNanos() int64 {
	count := b.RunCount.Load()
	if count == 0 {
		return 0
	}
	return b.RunTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InitializeCount  int64
	InitializeErrors int64
	RunCount         int64
	RunErrors        int64
	RunIterations    int64
	RunAvgNanos      int64
	SweepCount       int64
	SweepErrors      int64
	SweepCandidates  int64
}
