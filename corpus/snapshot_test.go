package corpus

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshotFixture(t *testing.T, withVocab bool) *Corpus {
	t.Helper()

	c, err := New(3, [][]TermCount{
		{{Term: 0, Count: 2}, {Term: 2, Count: 1}},
		{},
		{{Term: 1, Count: 7}},
	})
	require.NoError(t, err)

	if withVocab {
		require.NoError(t, c.SetVocab([]string{"alpha", "beta", "gamma"}))
	}

	return c
}

func assertSameCorpus(t *testing.T, want, got *Corpus) {
	t.Helper()

	require.Equal(t, want.NumDocs(), got.NumDocs())
	require.Equal(t, want.NumTerms(), got.NumTerms())
	assert.Equal(t, want.Vocab(), got.Vocab())

	for doc := range want.Docs() {
		assert.Equal(t, want.DocLength(doc), got.DocLength(doc))

		var wantPairs, gotPairs []TermCount
		for term, count := range want.TermFreqs(doc) {
			wantPairs = append(wantPairs, TermCount{Term: term, Count: count})
		}
		for term, count := range got.TermFreqs(doc) {
			gotPairs = append(gotPairs, TermCount{Term: term, Count: count})
		}
		assert.Equal(t, wantPairs, gotPairs, "doc %d", doc)
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	c := snapshotFixture(t, true)

	var buf bytes.Buffer
	require.NoError(t, c.SaveTo(&buf))

	got, err := Load(&buf)
	require.NoError(t, err)
	assertSameCorpus(t, c, got)
}

func TestSnapshot_RoundTripWithoutVocab(t *testing.T) {
	c := snapshotFixture(t, false)

	var buf bytes.Buffer
	require.NoError(t, c.SaveTo(&buf))

	got, err := Load(&buf)
	require.NoError(t, err)
	assertSameCorpus(t, c, got)
	assert.Nil(t, got.Vocab())
}

func TestSnapshot_BadMagic(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte("XXXX\x01rest")))
	require.ErrorIs(t, err, ErrInvalidSnapshot)
}

func TestSnapshot_BadVersion(t *testing.T) {
	c := snapshotFixture(t, false)

	var buf bytes.Buffer
	require.NoError(t, c.SaveTo(&buf))

	data := buf.Bytes()
	data[4] = 99
	_, err := Load(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrIncompatibleSnapshotVersion)
}

func TestSnapshot_Truncated(t *testing.T) {
	c := snapshotFixture(t, true)

	var buf bytes.Buffer
	require.NoError(t, c.SaveTo(&buf))

	data := buf.Bytes()
	for _, cut := range []int{5, len(data) / 2, len(data) - 1} {
		_, err := Load(bytes.NewReader(data[:cut]))
		require.ErrorIs(t, err, ErrInvalidSnapshot, "cut at %d", cut)
	}
}
