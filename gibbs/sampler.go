package gibbs

import (
	"math"

	"github.com/hupe1980/topicgo/corpus"
)

// sampleTopic draws a topic for one occurrence of term in doc from the
// collapsed conditional distribution over the current counts. The weight of
// topic j is the product of a smoothed term-given-topic factor and a
// smoothed topic-given-document factor.
func (s *Sampler) sampleTopic(doc corpus.DocID, term corpus.TermID) TopicID {
	k := s.opts.NumTopics
	vBeta := float64(s.numTerms) * s.opts.Beta
	kAlpha := float64(k) * s.opts.Alpha
	docLen := float64(s.corpus.DocLength(doc))

	total := 0.0

	for j := 0; j < k; j++ {
		topic := TopicID(j) //nolint:gosec // j < NumTopics which fits uint32

		termFactor := (float64(s.counts.termTopicCount(topic, term)) + s.opts.Beta) /
			(float64(s.counts.total(topic)) + vBeta)
		docFactor := (float64(s.counts.docTopicCount(doc, topic)) + s.opts.Alpha) /
			(docLen + kAlpha)

		w := termFactor * docFactor
		s.weights[j] = w
		total += w
	}

	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		// Degenerate weights cannot drive a categorical draw; fall back to a
		// uniform pick so sampling always terminates.
		return TopicID(s.rng.Intn(k)) //nolint:gosec // Intn result fits uint32
	}

	u := s.rng.Float64() * total

	cum := 0.0
	for j := 0; j < k; j++ {
		cum += s.weights[j]
		if u < cum {
			return TopicID(j) //nolint:gosec // j < NumTopics which fits uint32
		}
	}

	// Rounding can push the cumulative sum fractionally below total.
	return TopicID(k - 1) //nolint:gosec // NumTopics fits uint32
}
