package benchmark_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/hupe1980/topicgo"
	"github.com/hupe1980/topicgo/corpus"
	"github.com/hupe1980/topicgo/gibbs"
	"github.com/hupe1980/topicgo/testutil"
)

// benchSweeps is the fixed per-op iteration budget. Convergence is disabled
// so every op does identical work.
const benchSweeps = 5

func noConvergence(o *gibbs.RunOptions) {
	o.ConvergenceThreshold = -1
}

func BenchmarkInitialize_K10(b *testing.B) {
	benchmarkInitialize(b, 10)
}

func BenchmarkInitialize_K50(b *testing.B) {
	benchmarkInitialize(b, 50)
}

func benchmarkInitialize(b *testing.B, topics int) {
	b.ReportAllocs()

	c := getCorpus(QuickCorpora[0])

	m, err := topicgo.New(c, topicgo.WithNumTopics(topics), topicgo.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	ctx := context.Background()
	b.ResetTimer()
	for b.Loop() {
		if err := m.Initialize(ctx); err != nil {
			b.Fatal(err)
		}
	}

	b.ReportMetric(float64(c.TotalTokens())*float64(b.N)/b.Elapsed().Seconds(), "tokens/s")
}

func BenchmarkRun_K10(b *testing.B) {
	benchmarkRun(b, 10)
}

func BenchmarkRun_K50(b *testing.B) {
	benchmarkRun(b, 50)
}

func benchmarkRun(b *testing.B, topics int) {
	b.ReportAllocs()

	c := getCorpus(QuickCorpora[0])

	m, err := topicgo.New(c, topicgo.WithNumTopics(topics), topicgo.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	ctx := context.Background()
	b.ResetTimer()
	for b.Loop() {
		if _, err := m.Run(ctx, benchSweeps, noConvergence); err != nil {
			b.Fatal(err)
		}
	}

	// Each op is one initialization sweep plus benchSweeps sampling sweeps.
	sweeps := int64(benchSweeps + 1)
	b.ReportMetric(float64(c.TotalTokens()*sweeps)*float64(b.N)/b.Elapsed().Seconds(), "tokens/s")
}

func BenchmarkSweep_Serial(b *testing.B) {
	benchmarkSweep(b, 1)
}

func BenchmarkSweep_Parallel(b *testing.B) {
	benchmarkSweep(b, 0)
}

func benchmarkSweep(b *testing.B, parallelism int) {
	b.ReportAllocs()

	c := getCorpus(QuickCorpora[0])
	candidates := []int{5, 10, 20}

	ctx := context.Background()
	b.ResetTimer()
	for b.Loop() {
		_, err := topicgo.Sweep(ctx, c, candidates, benchSweeps, func(o *topicgo.SweepOptions) {
			o.Parallelism = parallelism
			o.ModelOptions = []topicgo.Option{topicgo.WithSeed(1)}
			o.RunOptions = []func(o *gibbs.RunOptions){noConvergence}
		})
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPhi(b *testing.B) {
	b.ReportAllocs()

	m := trainedModel(b, 20)

	b.ResetTimer()
	for b.Loop() {
		if _, err := m.Phi(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTheta(b *testing.B) {
	b.ReportAllocs()

	m := trainedModel(b, 20)

	b.ResetTimer()
	for b.Loop() {
		if _, err := m.Theta(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTopTerms(b *testing.B) {
	b.ReportAllocs()

	m := trainedModel(b, 20)

	b.ResetTimer()
	for b.Loop() {
		if _, err := m.TopTerms(0, 10); err != nil {
			b.Fatal(err)
		}
	}
}

// trainedModel trains a small model once so export benchmarks measure only
// the export path.
func trainedModel(b *testing.B, topics int) *topicgo.Model {
	b.Helper()

	c := getCorpus(QuickCorpora[0])

	m, err := topicgo.New(c, topicgo.WithNumTopics(topics), topicgo.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	if _, err := m.Run(context.Background(), benchSweeps, noConvergence); err != nil {
		b.Fatal(err)
	}
	return m
}

func BenchmarkBuilderBuild(b *testing.B) {
	b.ReportAllocs()

	// Pre-generate token streams outside the timed region.
	rng := testutil.NewRNG(1)
	docs := make([][]string, 500)
	for i := range docs {
		docs[i] = rng.Tokens(200, 2000)
	}

	b.ResetTimer()
	for b.Loop() {
		builder := corpus.NewBuilder()
		for _, tokens := range docs {
			builder.Add(tokens)
		}
		if _, err := builder.Build(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuilderAddText(b *testing.B) {
	b.ReportAllocs()

	rng := testutil.NewRNG(1)
	text := strings.Join(rng.Tokens(200, 2000), " ")

	builder := corpus.NewBuilder()
	b.ResetTimer()
	for b.Loop() {
		builder.AddText(text)
	}
}

func BenchmarkSnapshotSave(b *testing.B) {
	b.ReportAllocs()

	c := getCorpus(QuickCorpora[0])

	var buf bytes.Buffer
	b.ResetTimer()
	for b.Loop() {
		buf.Reset()
		if err := c.SaveTo(&buf); err != nil {
			b.Fatal(err)
		}
	}

	b.StopTimer()
	b.ReportMetric(float64(buf.Len()), "bytes")
}

func BenchmarkSnapshotLoad(b *testing.B) {
	b.ReportAllocs()

	c := getCorpus(QuickCorpora[0])

	var buf bytes.Buffer
	if err := c.SaveTo(&buf); err != nil {
		b.Fatal(err)
	}
	data := buf.Bytes()

	b.ResetTimer()
	for b.Loop() {
		if _, err := corpus.Load(bytes.NewReader(data)); err != nil {
			b.Fatal(err)
		}
	}
}
