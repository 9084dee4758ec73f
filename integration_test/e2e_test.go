package integration_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/topicgo"
	"github.com/hupe1980/topicgo/blobstore"
	"github.com/hupe1980/topicgo/corpus"
	"github.com/hupe1980/topicgo/gibbs"
)

var newsTexts = []string{
	"the team won the match and the league title",
	"the coach praised the team after the final match",
	"a late goal decided the match for the home team",
	"stocks rallied as the central bank held rates steady",
	"the bank reported record profits and rising stock prices",
	"investors sold stocks after the bank warned on rates",
}

func buildNewsCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()

	builder := corpus.NewBuilder(func(o *corpus.BuilderOptions) {
		o.Stopwords = []string{"the", "a", "and", "as", "on", "for", "after"}
	})
	for _, text := range newsTexts {
		builder.AddText(text)
	}

	c, err := builder.Build()
	require.NoError(t, err)
	return c
}

func TestE2E_SnapshotRestart(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewLocalStore(t.TempDir())

	// 1. Build a corpus and train against it.
	c := buildNewsCorpus(t)

	m1, err := topicgo.New(c, topicgo.WithNumTopics(2), topicgo.WithSeed(7))
	require.NoError(t, err)

	res1, err := m1.Run(ctx, 40)
	require.NoError(t, err)

	// 2. Snapshot the corpus to the store.
	err = corpus.WriteSnapshot(ctx, store, "corpora/news.snap", c)
	require.NoError(t, err)

	// 3. Restore and verify the corpus survived byte-exactly enough to
	// reproduce the seeded run.
	restored, err := corpus.OpenSnapshot(ctx, store, "corpora/news.snap")
	require.NoError(t, err)

	require.Equal(t, c.NumDocs(), restored.NumDocs())
	require.Equal(t, c.NumTerms(), restored.NumTerms())
	require.Equal(t, c.TotalTokens(), restored.TotalTokens())
	require.Equal(t, c.Vocab(), restored.Vocab())

	m2, err := topicgo.New(restored, topicgo.WithNumTopics(2), topicgo.WithSeed(7))
	require.NoError(t, err)

	res2, err := m2.Run(ctx, 40)
	require.NoError(t, err)

	assert.Equal(t, res1, res2)
}

func TestE2E_BagOfWordsPipeline(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	// 1. Publish a gzipped UCI bag-of-words corpus plus its vocabulary.
	docword := "4\n6\n8\n" +
		"1 1 3\n1 2 2\n" +
		"2 2 2\n2 3 3\n" +
		"3 4 4\n3 5 1\n" +
		"4 5 2\n4 6 3\n"

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(docword))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	require.NoError(t, store.Put(ctx, "news/docword.txt.gz", buf.Bytes()))
	require.NoError(t, store.Put(ctx, "news/vocab.txt", []byte("goal\nmatch\nleague\nstock\nmarket\ntrade\n")))

	// 2. Load both halves back.
	c, err := corpus.OpenBagOfWords(ctx, store, "news/docword.txt.gz")
	require.NoError(t, err)

	vocab, err := corpus.OpenVocab(ctx, store, "news/vocab.txt")
	require.NoError(t, err)
	require.NoError(t, c.SetVocab(vocab))

	require.Equal(t, 4, c.NumDocs())
	require.Equal(t, 6, c.NumTerms())
	require.EqualValues(t, 20, c.TotalTokens())

	// 3. Train and inspect.
	m, err := topicgo.New(c, topicgo.WithNumTopics(2), topicgo.WithSeed(42))
	require.NoError(t, err)

	res, err := m.Run(ctx, 60)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Iterations, 1)
	assert.Negative(t, res.Likelihood)

	for j := range 2 {
		words, err := m.TopWords(gibbs.TopicID(j), 3) //nolint:gosec // j < 2
		require.NoError(t, err)
		require.NotEmpty(t, words)
		for _, w := range words {
			assert.Contains(t, vocab, w.Word)
		}
	}

	theta, err := m.Theta()
	require.NoError(t, err)

	rows, cols := theta.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 2, cols)
	for d := range rows {
		sum := 0.0
		for j := range cols {
			sum += theta.At(d, j)
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}
