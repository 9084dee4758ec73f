package gibbs

import (
	"math"
)

// CorpusLikelihood computes the collapsed log-likelihood of the corpus under
// the current counts. It reads the sampler state as-is and never mutates it,
// so the value is reproducible for a fixed state.
func (s *Sampler) CorpusLikelihood() float64 {
	k := s.opts.NumTopics
	vBeta := float64(s.numTerms) * s.opts.Beta

	likelihood := float64(k) * (lgamma(vBeta) - float64(s.numTerms)*lgamma(s.opts.Beta))

	for j := 0; j < k; j++ {
		topic := TopicID(j) //nolint:gosec // j < NumTopics which fits uint32

		for doc := range s.corpus.Docs() {
			for term, freq := range s.corpus.TermFreqs(doc) {
				likelihood += float64(freq) * lgamma(float64(s.counts.termTopicCount(topic, term))+s.opts.Beta)
			}
		}

		likelihood -= lgamma(float64(s.counts.total(topic)) + vBeta)
	}

	return likelihood
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
