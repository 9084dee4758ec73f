package topicgo

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/topicgo/corpus"
	"github.com/hupe1980/topicgo/gibbs"
)

// SweepOptions contains options for a model-selection sweep.
type SweepOptions struct {
	// Parallelism caps how many candidates train concurrently.
	// Zero or negative means GOMAXPROCS.
	Parallelism int

	// ModelOptions configure every candidate model. The candidate's topic
	// count overrides any WithNumTopics among them. A WithSeed acts as the
	// base seed: candidate i runs with seed+i so the random streams differ
	// while the sweep stays reproducible.
	ModelOptions []Option

	// RunOptions configure every candidate's run.
	RunOptions []func(o *gibbs.RunOptions)
}

// SweepResult is one trained candidate of a sweep.
type SweepResult struct {
	NumTopics int
	Result    gibbs.Result
	Model     *Model
}

// Sweep trains one model per candidate topic count and returns all of them,
// in topicCounts order. Candidates train concurrently; each owns a private
// sampler, so per-run sampling stays sequential and seeded runs stay
// reproducible regardless of scheduling.
func Sweep(ctx context.Context, v corpus.View, topicCounts []int, iterations int, optFns ...func(o *SweepOptions)) ([]SweepResult, error) {
	opts := SweepOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}

	if len(topicCounts) == 0 {
		return nil, fmt.Errorf("%w: no candidate topic counts", ErrInvalidConfiguration)
	}

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	base := applyOptions(opts.ModelOptions)
	start := time.Now()

	results := make([]SweepResult, len(topicCounts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, k := range topicCounts {
		g.Go(func() error {
			candidateOpts := make([]Option, 0, len(opts.ModelOptions)+3)
			candidateOpts = append(candidateOpts, opts.ModelOptions...)
			candidateOpts = append(candidateOpts,
				WithNumTopics(k),
				WithLogger(base.logger.WithNumTopics(k)),
			)
			if base.seed != nil {
				candidateOpts = append(candidateOpts, WithSeed(*base.seed+int64(i)))
			}

			m, err := New(v, candidateOpts...)
			if err != nil {
				return fmt.Errorf("candidate %d topics: %w", k, err)
			}

			res, err := m.Run(gctx, iterations, opts.RunOptions...)
			if err != nil {
				return fmt.Errorf("candidate %d topics: %w", k, err)
			}

			results[i] = SweepResult{NumTopics: k, Result: res, Model: m}
			return nil
		})
	}

	err := g.Wait()
	base.metrics.RecordSweep(len(topicCounts), time.Since(start), err)
	base.logger.LogSweep(ctx, len(topicCounts), err)
	if err != nil {
		return nil, err
	}

	return results, nil
}

// BestByLikelihood returns the sweep candidate with the highest corpus
// log-likelihood. The second return is false for an empty slice.
func BestByLikelihood(results []SweepResult) (SweepResult, bool) {
	if len(results) == 0 {
		return SweepResult{}, false
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Result.Likelihood > best.Result.Likelihood {
			best = r
		}
	}
	return best, true
}
