package topicgo

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/topicgo/corpus"
	"github.com/hupe1980/topicgo/gibbs"
)

// TermWeight is one term of a topic with its smoothed probability.
type TermWeight struct {
	Term   corpus.TermID
	Weight float64
}

// WordWeight is one term of a topic resolved to its vocabulary label.
type WordWeight struct {
	Word   string
	Weight float64
}

// termLabeler is the optional vocabulary surface of a corpus view.
type termLabeler interface {
	Term(id corpus.TermID) string
}

// Phi returns the fitted topic-term distributions as a NumTopics x NumTerms
// dense matrix. Row j holds the smoothed probability of each term under
// topic j; every row sums to one.
func (m *Model) Phi() (*mat.Dense, error) {
	if !m.sampler.Initialized() {
		return nil, ErrNotInitialized
	}

	k, v := m.sampler.NumTopics(), m.sampler.NumTerms()
	beta := m.sampler.Beta()
	vBeta := float64(v) * beta

	phi := mat.NewDense(k, v, nil)
	for j := 0; j < k; j++ {
		topic := gibbs.TopicID(j) //nolint:gosec // j < NumTopics which fits uint32
		denom := float64(m.sampler.TopicTotal(topic)) + vBeta
		for w := 0; w < v; w++ {
			term := corpus.TermID(w) //nolint:gosec // w < NumTerms which fits uint32
			phi.Set(j, w, (float64(m.sampler.TermTopicCount(topic, term))+beta)/denom)
		}
	}

	return phi, nil
}

// Theta returns the fitted document-topic distributions as a NumDocs x
// NumTopics dense matrix. Row d holds the smoothed probability of each topic
// in document d; every row sums to one.
func (m *Model) Theta() (*mat.Dense, error) {
	if !m.sampler.Initialized() {
		return nil, ErrNotInitialized
	}

	d, k := m.view.NumDocs(), m.sampler.NumTopics()
	alpha := m.sampler.Alpha()
	kAlpha := float64(k) * alpha

	theta := mat.NewDense(d, k, nil)
	for doc := range m.view.Docs() {
		if int(doc) >= d {
			return nil, fmt.Errorf("%w: document id %d outside dense range [0,%d)", ErrCorpusInconsistency, doc, d)
		}
		denom := float64(m.view.DocLength(doc)) + kAlpha
		for j := 0; j < k; j++ {
			topic := gibbs.TopicID(j) //nolint:gosec // j < NumTopics which fits uint32
			theta.Set(int(doc), j, (float64(m.sampler.DocTopicCount(doc, topic))+alpha)/denom)
		}
	}

	return theta, nil
}

// TopTerms returns the topic's n highest-probability terms in descending
// weight order. Ties break toward the lower term id.
func (m *Model) TopTerms(topic gibbs.TopicID, n int) ([]TermWeight, error) {
	if !m.sampler.Initialized() {
		return nil, ErrNotInitialized
	}
	if int(topic) >= m.sampler.NumTopics() {
		return nil, &ErrTopicOutOfRange{Topic: topic, NumTopics: m.sampler.NumTopics()}
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: term count must be positive, got %d", ErrInvalidConfiguration, n)
	}

	v := m.sampler.NumTerms()
	beta := m.sampler.Beta()
	denom := float64(m.sampler.TopicTotal(topic)) + float64(v)*beta

	weights := make([]TermWeight, v)
	for w := 0; w < v; w++ {
		term := corpus.TermID(w) //nolint:gosec // w < NumTerms which fits uint32
		weights[w] = TermWeight{
			Term:   term,
			Weight: (float64(m.sampler.TermTopicCount(topic, term)) + beta) / denom,
		}
	}

	sort.Slice(weights, func(i, j int) bool {
		if weights[i].Weight != weights[j].Weight {
			return weights[i].Weight > weights[j].Weight
		}
		return weights[i].Term < weights[j].Term
	})

	if n > len(weights) {
		n = len(weights)
	}
	return weights[:n], nil
}

// TopWords returns the topic's n highest-probability terms resolved to their
// vocabulary labels. Terms without a label fall back to the decimal term id.
func (m *Model) TopWords(topic gibbs.TopicID, n int) ([]WordWeight, error) {
	terms, err := m.TopTerms(topic, n)
	if err != nil {
		return nil, err
	}

	labeler, _ := m.view.(termLabeler)

	words := make([]WordWeight, len(terms))
	for i, tw := range terms {
		word := ""
		if labeler != nil {
			word = labeler.Term(tw.Term)
		}
		if word == "" {
			word = strconv.Itoa(int(tw.Term))
		}
		words[i] = WordWeight{Word: word, Weight: tw.Weight}
	}

	return words, nil
}
