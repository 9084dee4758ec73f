package benchmark_test

import (
	"sync"

	"github.com/hupe1980/topicgo/corpus"
	"github.com/hupe1980/topicgo/testutil"
)

// ============================================================================
// Fixture Configuration
// ============================================================================

// CorpusConfig defines a benchmark corpus's parameters.
type CorpusConfig struct {
	Name    string
	NumDocs int
	Vocab   int
	MinLen  int
	MaxLen  int
	Seed    int64
}

// StandardCorpora defines the canonical set of benchmark corpora.
var StandardCorpora = []CorpusConfig{
	// Small corpus for CI
	{Name: "small_1k", NumDocs: 1_000, Vocab: 5_000, MinLen: 50, MaxLen: 150, Seed: 42},

	// Medium corpus, roughly a small news collection
	{Name: "medium_5k", NumDocs: 5_000, Vocab: 20_000, MinLen: 80, MaxLen: 250, Seed: 42},
}

// QuickCorpora are fast corpora for CI.
var QuickCorpora = []CorpusConfig{
	{Name: "small_1k", NumDocs: 1_000, Vocab: 5_000, MinLen: 50, MaxLen: 150, Seed: 42},
}

// ============================================================================
// Fixture Cache
// ============================================================================

var (
	corpusCache   = make(map[string]*corpus.Corpus)
	corpusCacheMu sync.RWMutex
)

// getCorpus returns the corpus for a config, generating it on first use.
// Generation is deterministic for a seed, so every benchmark in a run
// samples against identical data.
func getCorpus(cfg CorpusConfig) *corpus.Corpus {
	corpusCacheMu.RLock()
	if c, ok := corpusCache[cfg.Name]; ok {
		corpusCacheMu.RUnlock()
		return c
	}
	corpusCacheMu.RUnlock()

	rng := testutil.NewRNG(cfg.Seed)
	c := rng.RandomCorpus(cfg.NumDocs, cfg.Vocab, cfg.MinLen, cfg.MaxLen)

	corpusCacheMu.Lock()
	corpusCache[cfg.Name] = c
	corpusCacheMu.Unlock()

	return c
}
