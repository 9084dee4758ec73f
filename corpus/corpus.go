package corpus

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrTermOutOfRange is returned when a term id is outside the vocabulary.
	ErrTermOutOfRange = errors.New("term id out of vocabulary range")

	// ErrInvalidCount is returned when a term count is zero or negative.
	ErrInvalidCount = errors.New("term count must be positive")

	// ErrVocabSizeMismatch is returned when a vocabulary does not match the
	// corpus term space.
	ErrVocabSizeMismatch = errors.New("vocabulary size mismatch")
)

// DocID is a dense, zero-based document identifier within one corpus.
type DocID uint32

// TermID is a dense, zero-based vocabulary term identifier within one corpus.
type TermID uint32

// TermCount is one (term, count) pair of a document.
type TermCount struct {
	Term  TermID
	Count int
}

// document is a bag of words: ordered (term, count) pairs plus the
// precomputed token count.
type document struct {
	counts []TermCount
	length int
}

// View is the read contract inference engines depend on.
//
// Enumeration order must be stable across calls: Docs always yields the same
// document sequence, and TermFreqs always yields a document's pairs in the
// same order. DocLength reports the document's token count, which must equal
// the sum of its pair counts.
type View interface {
	// NumDocs returns the number of documents.
	NumDocs() int

	// NumTerms returns the vocabulary size.
	NumTerms() int

	// Docs yields every document id in stable order.
	Docs() iter.Seq[DocID]

	// TermFreqs yields a document's (term, frequency) pairs in stable order.
	TermFreqs(doc DocID) iter.Seq2[TermID, int]

	// DocLength returns the token count of a document (0 if unknown).
	DocLength(doc DocID) int
}

// Corpus is the in-memory View implementation.
// It is immutable after construction apart from SetVocab.
type Corpus struct {
	docs     []document
	vocab    []string
	numTerms int
}

// Compile-time check that Corpus satisfies View.
var _ View = (*Corpus)(nil)

// New creates a corpus over a vocabulary of numTerms dense term ids.
// Each document is an ordered slice of (term, count) pairs; the order is
// preserved and observable through TermFreqs.
func New(numTerms int, docs [][]TermCount) (*Corpus, error) {
	if numTerms < 0 {
		return nil, fmt.Errorf("%w: %d", ErrTermOutOfRange, numTerms)
	}

	c := &Corpus{
		docs:     make([]document, 0, len(docs)),
		numTerms: numTerms,
	}

	for i, pairs := range docs {
		d := document{counts: make([]TermCount, 0, len(pairs))}
		for _, tc := range pairs {
			if int(tc.Term) >= numTerms {
				return nil, fmt.Errorf("%w: doc %d has term %d, vocabulary size %d", ErrTermOutOfRange, i, tc.Term, numTerms)
			}
			if tc.Count <= 0 {
				return nil, fmt.Errorf("%w: doc %d term %d has count %d", ErrInvalidCount, i, tc.Term, tc.Count)
			}
			d.counts = append(d.counts, tc)
			d.length += tc.Count
		}
		c.docs = append(c.docs, d)
	}

	return c, nil
}

// NumDocs returns the number of documents.
func (c *Corpus) NumDocs() int { return len(c.docs) }

// NumTerms returns the vocabulary size.
func (c *Corpus) NumTerms() int { return c.numTerms }

// Docs yields document ids 0..NumDocs-1 in order.
func (c *Corpus) Docs() iter.Seq[DocID] {
	return func(yield func(DocID) bool) {
		for i := range c.docs {
			if !yield(DocID(i)) { //nolint:gosec
				return
			}
		}
	}
}

// TermFreqs yields the document's (term, frequency) pairs in insertion order.
// Unknown documents yield nothing.
func (c *Corpus) TermFreqs(doc DocID) iter.Seq2[TermID, int] {
	return func(yield func(TermID, int) bool) {
		if int(doc) >= len(c.docs) {
			return
		}
		for _, tc := range c.docs[doc].counts {
			if !yield(tc.Term, tc.Count) {
				return
			}
		}
	}
}

// DocLength returns the token count of a document, 0 if unknown.
func (c *Corpus) DocLength(doc DocID) int {
	if int(doc) >= len(c.docs) {
		return 0
	}
	return c.docs[doc].length
}

// TotalTokens returns the token count of the whole corpus.
func (c *Corpus) TotalTokens() int64 {
	var total int64
	for i := range c.docs {
		total += int64(c.docs[i].length)
	}
	return total
}

// SetVocab attaches term labels. The vocabulary length must equal NumTerms.
func (c *Corpus) SetVocab(vocab []string) error {
	if len(vocab) != c.numTerms {
		return fmt.Errorf("%w: got %d labels for %d terms", ErrVocabSizeMismatch, len(vocab), c.numTerms)
	}
	c.vocab = vocab
	return nil
}

// Vocab returns the attached term labels, nil if none.
// The returned slice must not be modified.
func (c *Corpus) Vocab() []string { return c.vocab }

// Term returns the label of a term id, "" when no vocabulary is attached or
// the id is out of range.
func (c *Corpus) Term(id TermID) string {
	if int(id) >= len(c.vocab) {
		return ""
	}
	return c.vocab[id]
}
