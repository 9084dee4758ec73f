package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/hupe1980/topicgo"
	s3store "github.com/hupe1980/topicgo/blobstore/s3"
	"github.com/hupe1980/topicgo/corpus"
)

// Corpus source flags, shared by train and sweep.
var (
	inputPath    string
	vocabPath    string
	snapshotPath string
	logLevel     string
	logJSON      bool
)

func addCorpusFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Bag-of-words corpus file (docword format, gzip supported, s3:// accepted)")
	cmd.Flags().StringVar(&vocabPath, "vocab", "", "Vocabulary file, one term per line (gzip supported, s3:// accepted)")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Binary corpus snapshot (s3:// accepted); replaces --input/--vocab")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Minimum log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")
}

func newLogger() (*topicgo.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", logLevel, err)
	}

	if logJSON {
		return topicgo.NewJSONLogger(level), nil
	}
	return topicgo.NewTextLogger(level), nil
}

// loadCorpus resolves the corpus source flags into a corpus. Snapshot wins
// over bag-of-words input; s3:// paths go through the S3 blob store, anything
// else is a local file.
func loadCorpus(ctx context.Context, logger *topicgo.Logger) (*corpus.Corpus, error) {
	var (
		c    *corpus.Corpus
		name string
		err  error
	)

	switch {
	case snapshotPath != "":
		name = snapshotPath
		c, err = loadSnapshot(ctx, snapshotPath)
	case inputPath != "":
		name = inputPath
		c, err = loadBagOfWords(ctx, inputPath, vocabPath)
	default:
		return nil, fmt.Errorf("no corpus source: pass --input or --snapshot")
	}

	if err != nil {
		logger.LogCorpusLoad(ctx, name, 0, 0, err)
		return nil, fmt.Errorf("load corpus %s: %w", name, err)
	}

	logger.LogCorpusLoad(ctx, name, c.NumDocs(), c.NumTerms(), nil)
	return c, nil
}

func loadSnapshot(ctx context.Context, path string) (*corpus.Corpus, error) {
	if isS3Path(path) {
		store, key, err := openS3(ctx, path)
		if err != nil {
			return nil, err
		}
		return corpus.OpenSnapshot(ctx, store, key)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return corpus.Load(f)
}

func loadBagOfWords(ctx context.Context, input, vocab string) (*corpus.Corpus, error) {
	c, err := readBagOfWords(ctx, input)
	if err != nil {
		return nil, err
	}

	if vocab == "" {
		return c, nil
	}

	labels, err := readVocab(ctx, vocab)
	if err != nil {
		return nil, err
	}
	if err := c.SetVocab(labels); err != nil {
		return nil, err
	}

	return c, nil
}

func readBagOfWords(ctx context.Context, path string) (*corpus.Corpus, error) {
	if isS3Path(path) {
		store, key, err := openS3(ctx, path)
		if err != nil {
			return nil, err
		}
		return corpus.OpenBagOfWords(ctx, store, key)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return corpus.ReadBagOfWords(f)
}

func readVocab(ctx context.Context, path string) ([]string, error) {
	if isS3Path(path) {
		store, key, err := openS3(ctx, path)
		if err != nil {
			return nil, err
		}
		return corpus.OpenVocab(ctx, store, key)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return corpus.ReadVocab(f)
}

func isS3Path(path string) bool {
	return strings.HasPrefix(path, "s3://")
}

func splitS3Path(path string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(path, "s3://")
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid S3 path %q: want s3://bucket/key", path)
	}
	return bucket, key, nil
}

// openS3 splits s3://bucket/key and builds a store from the ambient AWS
// configuration (environment, shared config, instance role).
func openS3(ctx context.Context, path string) (*s3store.Store, string, error) {
	bucket, key, err := splitS3Path(path)
	if err != nil {
		return nil, "", err
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("load AWS config: %w", err)
	}

	return s3store.NewStore(awss3.NewFromConfig(cfg), bucket, ""), key, nil
}
