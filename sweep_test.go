package topicgo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/topicgo/gibbs"
	"github.com/hupe1980/topicgo/testutil"
)

func TestSweep(t *testing.T) {
	ctx := context.Background()

	rng := testutil.NewRNG(4711)
	c := rng.RandomCorpus(20, 40, 10, 25)

	topicCounts := []int{2, 3, 4}

	results, err := Sweep(ctx, c, topicCounts, 10, func(o *SweepOptions) {
		o.ModelOptions = []Option{WithSeed(42)}
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, topicCounts[i], r.NumTopics)
		assert.GreaterOrEqual(t, r.Result.Iterations, 1)
		assert.Negative(t, r.Result.Likelihood)

		require.NotNil(t, r.Model)
		assert.True(t, r.Model.Initialized())
		assert.Equal(t, topicCounts[i], r.Model.NumTopics())
	}
}

func TestSweep_Reproducible(t *testing.T) {
	ctx := context.Background()

	rng := testutil.NewRNG(4711)
	c := rng.RandomCorpus(15, 30, 10, 20)

	run := func(t *testing.T) []SweepResult {
		t.Helper()

		results, err := Sweep(ctx, c, []int{2, 3}, 8, func(o *SweepOptions) {
			o.ModelOptions = []Option{WithSeed(1337)}
			o.Parallelism = 2
		})
		require.NoError(t, err)

		return results
	}

	first := run(t)
	second := run(t)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Result, second[i].Result, "candidate %d", first[i].NumTopics)
	}
}

func TestSweep_EmptyCandidates(t *testing.T) {
	rng := testutil.NewRNG(4711)
	c := rng.RandomCorpus(5, 20, 5, 10)

	_, err := Sweep(context.Background(), c, nil, 10)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestSweep_InvalidCandidate(t *testing.T) {
	rng := testutil.NewRNG(4711)
	c := rng.RandomCorpus(5, 20, 5, 10)

	_, err := Sweep(context.Background(), c, []int{2, 0}, 10)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestSweep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rng := testutil.NewRNG(4711)
	c := rng.RandomCorpus(10, 20, 5, 15)

	_, err := Sweep(ctx, c, []int{2, 3}, 10)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSweep_Metrics(t *testing.T) {
	ctx := context.Background()

	rng := testutil.NewRNG(4711)
	c := rng.RandomCorpus(10, 25, 5, 15)

	collector := &BasicMetricsCollector{}

	_, err := Sweep(ctx, c, []int{2, 3, 4}, 5, func(o *SweepOptions) {
		o.ModelOptions = []Option{WithSeed(42), WithMetricsCollector(collector)}
	})
	require.NoError(t, err)

	stats := collector.GetStats()
	assert.Equal(t, int64(1), stats.SweepCount)
	assert.Equal(t, int64(0), stats.SweepErrors)
	assert.Equal(t, int64(3), stats.SweepCandidates)
	assert.Equal(t, int64(3), stats.RunCount)
}

func TestBestByLikelihood(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, ok := BestByLikelihood(nil)
		assert.False(t, ok)
	})

	t.Run("PicksHighest", func(t *testing.T) {
		results := []SweepResult{
			{NumTopics: 2, Result: gibbs.Result{Likelihood: -120.5}},
			{NumTopics: 3, Result: gibbs.Result{Likelihood: -98.2}},
			{NumTopics: 4, Result: gibbs.Result{Likelihood: -110.7}},
		}

		best, ok := BestByLikelihood(results)
		require.True(t, ok)
		assert.Equal(t, 3, best.NumTopics)
	})
}
