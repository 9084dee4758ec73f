package corpus

import (
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// BuilderOptions contains configuration options for corpus building.
type BuilderOptions struct {
	// MinDocFreq drops terms occurring in fewer than this many documents.
	MinDocFreq int

	// MaxDocFreqRatio drops terms occurring in more than this fraction of
	// all documents. 1.0 keeps everything.
	MaxDocFreqRatio float64

	// Stopwords are dropped during Add, before interning.
	Stopwords []string
}

// DefaultBuilderOptions contains the default configuration options for
// corpus building.
var DefaultBuilderOptions = BuilderOptions{
	MinDocFreq:      1,
	MaxDocFreqRatio: 1.0,
}

// Builder accumulates tokenized documents and produces a Corpus.
//
// Terms are interned to provisional ids on first sight. Per-term document
// frequencies are tracked as Roaring bitmaps over document ids, so Build can
// prune rare and ubiquitous terms before densifying the final term ids.
// Builder is not safe for concurrent use.
type Builder struct {
	opts    BuilderOptions
	terms   map[string]TermID
	names   []string
	docFreq []*roaring.Bitmap
	docs    [][]TermCount
	stop    map[string]struct{}
}

// NewBuilder creates a new corpus builder.
func NewBuilder(optFns ...func(o *BuilderOptions)) *Builder {
	opts := DefaultBuilderOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	stop := make(map[string]struct{}, len(opts.Stopwords))
	for _, w := range opts.Stopwords {
		stop[strings.ToLower(w)] = struct{}{}
	}

	return &Builder{
		opts:  opts,
		terms: make(map[string]TermID),
		stop:  stop,
	}
}

// AddText tokenizes text (lowercase, whitespace-split) and adds it as one
// document.
func (b *Builder) AddText(text string) DocID {
	return b.Add(strings.Fields(strings.ToLower(text)))
}

// Add adds one document from already-tokenized terms and returns its id.
// Stopwords are skipped; a document may end up empty and still keeps its id.
func (b *Builder) Add(tokens []string) DocID {
	doc := DocID(len(b.docs)) //nolint:gosec

	tf := make(map[TermID]int)
	var order []TermID

	for _, tok := range tokens {
		if _, ok := b.stop[tok]; ok {
			continue
		}
		id, ok := b.terms[tok]
		if !ok {
			id = TermID(len(b.names)) //nolint:gosec
			b.terms[tok] = id
			b.names = append(b.names, tok)
			b.docFreq = append(b.docFreq, roaring.New())
		}
		if tf[id] == 0 {
			order = append(order, id)
			b.docFreq[id].Add(uint32(doc))
		}
		tf[id]++
	}

	counts := make([]TermCount, 0, len(order))
	for _, id := range order {
		counts = append(counts, TermCount{Term: id, Count: tf[id]})
	}
	b.docs = append(b.docs, counts)

	return doc
}

// NumDocs returns the number of documents added so far.
func (b *Builder) NumDocs() int { return len(b.docs) }

// DocFreq returns the number of documents containing the term, 0 if the
// term was never seen.
func (b *Builder) DocFreq(term string) int {
	id, ok := b.terms[term]
	if !ok {
		return 0
	}
	return int(b.docFreq[id].GetCardinality())
}

// Build applies the pruning options, densifies the surviving term ids in
// first-seen order and returns the finished corpus with its vocabulary
// attached. Documents that lose all terms to pruning stay in place as empty
// documents, so ids assigned by Add remain valid.
func (b *Builder) Build() (*Corpus, error) {
	numDocs := len(b.docs)

	maxDF := numDocs
	if b.opts.MaxDocFreqRatio < 1.0 {
		maxDF = int(b.opts.MaxDocFreqRatio * float64(numDocs))
	}

	remap := make(map[TermID]TermID, len(b.names))
	var vocab []string
	for old, name := range b.names {
		df := int(b.docFreq[old].GetCardinality())
		if df < b.opts.MinDocFreq || df > maxDF {
			continue
		}
		remap[TermID(old)] = TermID(len(vocab)) //nolint:gosec
		vocab = append(vocab, name)
	}

	docs := make([][]TermCount, numDocs)
	for i, counts := range b.docs {
		kept := make([]TermCount, 0, len(counts))
		for _, tc := range counts {
			id, ok := remap[tc.Term]
			if !ok {
				continue
			}
			kept = append(kept, TermCount{Term: id, Count: tc.Count})
		}
		docs[i] = kept
	}

	c, err := New(len(vocab), docs)
	if err != nil {
		return nil, err
	}
	if err := c.SetVocab(vocab); err != nil {
		return nil, err
	}

	return c, nil
}
