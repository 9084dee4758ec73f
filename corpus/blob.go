package corpus

import (
	"context"
	"io"

	"github.com/hupe1980/topicgo/blobstore"
)

// OpenBagOfWords reads a bag-of-words corpus out of a blob store.
func OpenBagOfWords(ctx context.Context, store blobstore.BlobStore, name string) (*Corpus, error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	return ReadBagOfWords(io.NewSectionReader(b, 0, b.Size()))
}

// OpenVocab reads a vocabulary file out of a blob store.
func OpenVocab(ctx context.Context, store blobstore.BlobStore, name string) ([]string, error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	return ReadVocab(io.NewSectionReader(b, 0, b.Size()))
}

// OpenSnapshot reads a binary corpus snapshot out of a blob store.
func OpenSnapshot(ctx context.Context, store blobstore.BlobStore, name string) (*Corpus, error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	return Load(io.NewSectionReader(b, 0, b.Size()))
}

// WriteSnapshot saves a binary corpus snapshot into a blob store.
func WriteSnapshot(ctx context.Context, store blobstore.BlobStore, name string, c *Corpus) error {
	w, err := store.Create(ctx, name)
	if err != nil {
		return err
	}

	if err := c.SaveTo(w); err != nil {
		_ = w.Close()
		return err
	}

	return w.Close()
}
