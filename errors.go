package topicgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/topicgo/gibbs"
)

var (
	// ErrInvalidConfiguration is returned when model options or call
	// arguments are unusable.
	ErrInvalidConfiguration = errors.New("invalid model configuration")

	// ErrCorpusInconsistency is returned when the corpus view contradicts
	// itself during sampling.
	ErrCorpusInconsistency = errors.New("corpus inconsistency")

	// ErrNotInitialized is returned when distributions are requested before
	// topic assignments exist.
	ErrNotInitialized = errors.New("model not initialized")
)

// ErrTopicOutOfRange indicates a topic id outside the configured topic count.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrTopicOutOfRange struct {
	Topic     gibbs.TopicID
	NumTopics int
	cause     error
}

func (e *ErrTopicOutOfRange) Error() string {
	return fmt.Sprintf("topic %d out of range: model has %d topics", e.Topic, e.NumTopics)
}

func (e *ErrTopicOutOfRange) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gibbs.ErrInvalidConfiguration) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if errors.Is(err, gibbs.ErrCorpusInconsistency) {
		return fmt.Errorf("%w: %w", ErrCorpusInconsistency, err)
	}

	return err
}
