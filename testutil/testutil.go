package testutil

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/topicgo/corpus"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
// s=1.0 gives standard Zipf, s=1.5 gives heavy-tail (80/20 rule).
// This is how real-world term frequencies are distributed (power law).
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Compute normalization constant (harmonic number with exponent s)
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Sample from uniform and use inverse transform
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// zipfSkew is the term-frequency skew used by the corpus generators.
const zipfSkew = 1.2

// RandomCorpus generates a corpus of numDocs documents over a vocabulary of
// vocabSize terms. Document lengths are uniform in [minLen, maxLen] and term
// draws follow a Zipf distribution, so a few terms dominate the way natural
// language does.
func (r *RNG) RandomCorpus(numDocs, vocabSize, minLen, maxLen int) *corpus.Corpus {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs := make([][]corpus.TermCount, numDocs)
	for d := range numDocs {
		length := minLen
		if maxLen > minLen {
			length += r.rand.Intn(maxLen - minLen + 1)
		}

		draws := make([]int, length)
		for t := range length {
			draws[t] = r.zipfLocked(vocabSize, zipfSkew)
		}
		docs[d] = pairsFromDraws(draws)
	}

	return mustCorpus(vocabSize, docs)
}

// PlantedCorpus generates documents from disjoint topic-vocabulary blocks.
// The vocabulary has topics*vocabPerTopic terms; document d draws its tokens
// uniformly from block d%topics, except for a noise fraction drawn from the
// whole vocabulary. The planted structure is recoverable by a sampler, which
// makes it useful as an end-to-end fixture.
func (r *RNG) PlantedCorpus(topics, numDocs, vocabPerTopic, docLen int, noise float64) *corpus.Corpus {
	r.mu.Lock()
	defer r.mu.Unlock()

	vocabSize := topics * vocabPerTopic

	docs := make([][]corpus.TermCount, numDocs)
	for d := range numDocs {
		block := d % topics

		draws := make([]int, docLen)
		for t := range docLen {
			if r.rand.Float64() < noise {
				draws[t] = r.rand.Intn(vocabSize)
			} else {
				draws[t] = block*vocabPerTopic + r.rand.Intn(vocabPerTopic)
			}
		}
		docs[d] = pairsFromDraws(draws)
	}

	return mustCorpus(vocabSize, docs)
}

// Tokens generates n word tokens drawn Zipf-distributed from a synthetic
// vocabulary of vocabSize distinct words (term0, term1, ...). Useful as
// Builder input.
func (r *RNG) Tokens(n, vocabSize int) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	tokens := make([]string, n)
	for i := range n {
		tokens[i] = fmt.Sprintf("term%d", r.zipfLocked(vocabSize, zipfSkew))
	}

	return tokens
}

// pairsFromDraws folds raw token draws into (term, count) pairs in
// first-seen order, so generated corpora are deterministic for a seed.
func pairsFromDraws(draws []int) []corpus.TermCount {
	counts := make(map[int]int, len(draws))
	order := make([]int, 0, len(draws))

	for _, term := range draws {
		if counts[term] == 0 {
			order = append(order, term)
		}
		counts[term]++
	}

	pairs := make([]corpus.TermCount, 0, len(order))
	for _, term := range order {
		pairs = append(pairs, corpus.TermCount{Term: corpus.TermID(term), Count: counts[term]}) //nolint:gosec
	}

	return pairs
}

func mustCorpus(vocabSize int, docs [][]corpus.TermCount) *corpus.Corpus {
	c, err := corpus.New(vocabSize, docs)
	if err != nil {
		panic(err)
	}
	return c
}
