package gibbs

import (
	"fmt"

	"github.com/hupe1980/topicgo/corpus"
)

// countStore holds the three sufficient statistics of a collapsed state:
// term-topic counts, document-topic counts and per-topic totals. All maps
// store strictly positive values; entries are deleted the moment they reach
// zero, so the zero value of a lookup always means "count is zero".
type countStore struct {
	termTopic  map[TopicID]map[corpus.TermID]int
	docTopic   map[corpus.DocID]map[TopicID]int
	topicTotal map[TopicID]int
}

func newCountStore() *countStore {
	return &countStore{
		termTopic:  make(map[TopicID]map[corpus.TermID]int),
		docTopic:   make(map[corpus.DocID]map[TopicID]int),
		topicTotal: make(map[TopicID]int),
	}
}

func (cs *countStore) reset() {
	cs.termTopic = make(map[TopicID]map[corpus.TermID]int)
	cs.docTopic = make(map[corpus.DocID]map[TopicID]int)
	cs.topicTotal = make(map[TopicID]int)
}

// termTopicCount returns the number of occurrences of term assigned to topic.
func (cs *countStore) termTopicCount(topic TopicID, term corpus.TermID) int {
	return cs.termTopic[topic][term]
}

// docTopicCount returns the number of tokens in doc assigned to topic.
func (cs *countStore) docTopicCount(doc corpus.DocID, topic TopicID) int {
	return cs.docTopic[doc][topic]
}

// total returns the number of tokens assigned to topic across the corpus.
func (cs *countStore) total(topic TopicID) int {
	return cs.topicTotal[topic]
}

// increment records one occurrence of term in doc assigned to topic.
func (cs *countStore) increment(doc corpus.DocID, term corpus.TermID, topic TopicID) {
	tt := cs.termTopic[topic]
	if tt == nil {
		tt = make(map[corpus.TermID]int)
		cs.termTopic[topic] = tt
	}
	tt[term]++

	dt := cs.docTopic[doc]
	if dt == nil {
		dt = make(map[TopicID]int)
		cs.docTopic[doc] = dt
	}
	dt[topic]++

	cs.topicTotal[topic]++
}

// decrement removes one occurrence of term in doc assigned to topic. All
// three statistics are verified before any of them is touched, so a failed
// decrement leaves the store unchanged.
func (cs *countStore) decrement(doc corpus.DocID, term corpus.TermID, topic TopicID) error {
	tt, ok := cs.termTopic[topic]
	if !ok || tt[term] == 0 {
		return fmt.Errorf("%w: term %d has no occurrences under topic %d", ErrInvariantViolation, term, topic)
	}

	dt, ok := cs.docTopic[doc]
	if !ok || dt[topic] == 0 {
		return fmt.Errorf("%w: document %d has no tokens under topic %d", ErrInvariantViolation, doc, topic)
	}

	if cs.topicTotal[topic] == 0 {
		return fmt.Errorf("%w: topic %d has no tokens assigned", ErrInvariantViolation, topic)
	}

	tt[term]--
	if tt[term] == 0 {
		delete(tt, term)
		if len(tt) == 0 {
			delete(cs.termTopic, topic)
		}
	}

	dt[topic]--
	if dt[topic] == 0 {
		delete(dt, topic)
		if len(dt) == 0 {
			delete(cs.docTopic, doc)
		}
	}

	cs.topicTotal[topic]--
	if cs.topicTotal[topic] == 0 {
		delete(cs.topicTotal, topic)
	}

	return nil
}
