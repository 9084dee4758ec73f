// Package corpus provides the document collections consumed by the samplers.
//
// A corpus is an ordered collection of documents, each reduced to (term,
// count) pairs over a dense integer vocabulary. The View interface is the
// narrow read contract the inference engine depends on; Corpus is the
// in-memory implementation.
//
// # Building
//
// Builder turns tokenized documents into a Corpus, interning terms and
// tracking per-term document frequencies with Roaring bitmaps so the
// vocabulary can be pruned (stopwords, minimum/maximum document frequency)
// before ids are densified:
//
//	b := corpus.NewBuilder(func(o *corpus.BuilderOptions) {
//	    o.MinDocFreq = 2
//	    o.Stopwords = []string{"the", "a"}
//	})
//	b.AddText("the quick brown fox")
//	b.AddText("the lazy dog")
//	c, err := b.Build()
//
// # Loading
//
// ReadBagOfWords parses the UCI sparse bag-of-words format (docword files),
// transparently decompressing gzip input. ReadVocab reads the matching
// one-term-per-line vocabulary file. Save/Load round-trip a built corpus
// through a compact LZ4-compressed binary snapshot. The Open* helpers read
// any of these out of a blobstore.BlobStore.
package corpus
