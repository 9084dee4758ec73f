package gibbs

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/hupe1980/topicgo/corpus"
)

// TopicID identifies a latent topic. Topics are numbered 0..NumTopics-1.
type TopicID uint32

// Logger is a simple interface for logging.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// noopLogger is a default logger that does nothing.
type noopLogger struct{}

func (l *noopLogger) Infof(format string, args ...interface{})  {}
func (l *noopLogger) Errorf(format string, args ...interface{}) {}

// Sampler is a collapsed Gibbs sampler over a fixed corpus. It owns the
// sparse count tables and the per-occurrence topic labels and advances them
// one full corpus sweep at a time. A Sampler is not safe for concurrent use.
type Sampler struct {
	corpus   corpus.View
	opts     Options
	numTerms int

	counts *countStore
	labels *assignmentTable

	rng     *rand.Rand
	weights []float64

	initialized bool
}

// Result summarizes a completed run.
type Result struct {
	// Iterations is the number of sweeps performed, not counting the
	// initialization sweep.
	Iterations int

	// Converged reports whether the run stopped before exhausting its
	// iteration budget because the likelihood change fell below the
	// convergence threshold.
	Converged bool

	// Likelihood is the corpus log-likelihood after the final sweep.
	Likelihood float64
}

// New creates a new Sampler over the given corpus view.
func New(c corpus.View, optFns ...func(o *Options)) (*Sampler, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = &noopLogger{}
	}

	if opts.Observer == nil {
		opts.Observer = NoopObserver{}
	}

	if c == nil {
		return nil, fmt.Errorf("%w: corpus view must not be nil", ErrInvalidConfiguration)
	}

	if opts.NumTopics <= 0 {
		return nil, fmt.Errorf("%w: number of topics must be >= 1, got %d", ErrInvalidConfiguration, opts.NumTopics)
	}

	if !(opts.Alpha > 0) {
		return nil, fmt.Errorf("%w: alpha must be > 0, got %v", ErrInvalidConfiguration, opts.Alpha)
	}

	if !(opts.Beta > 0) {
		return nil, fmt.Errorf("%w: beta must be > 0, got %v", ErrInvalidConfiguration, opts.Beta)
	}

	if c.NumTerms() <= 0 {
		return nil, fmt.Errorf("%w: corpus vocabulary is empty", ErrInvalidConfiguration)
	}

	var rng *rand.Rand
	if opts.RandomSeed != nil {
		rng = rand.New(rand.NewSource(*opts.RandomSeed))
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Sampler{
		corpus:   c,
		opts:     opts,
		numTerms: c.NumTerms(),
		counts:   newCountStore(),
		labels:   newAssignmentTable(),
		rng:      rng,
		weights:  make([]float64, opts.NumTopics),
	}, nil
}

// Initialize assigns an initial topic to every token occurrence, discarding
// any previous state. Each label is drawn against the counts accumulated
// earlier in the same sweep, so the result depends on corpus order.
func (s *Sampler) Initialize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.counts.reset()
	s.labels.reset()
	s.initialized = false

	if err := s.sweep(0, true); err != nil {
		return err
	}

	s.initialized = true

	return nil
}

// Run re-initializes the sampler and performs up to the given number of
// sweeps over the corpus. It stops early once the relative change of the
// corpus log-likelihood between consecutive sweeps is at or below the
// convergence threshold, or when ctx is cancelled at an iteration boundary.
func (s *Sampler) Run(ctx context.Context, iterations int, optFns ...func(o *RunOptions)) (Result, error) {
	runOpts := DefaultRunOptions
	for _, fn := range optFns {
		fn(&runOpts)
	}

	if iterations < 0 {
		return Result{}, fmt.Errorf("%w: iterations must be >= 0, got %d", ErrInvalidConfiguration, iterations)
	}

	if err := s.Initialize(ctx); err != nil {
		return Result{}, err
	}

	s.opts.Logger.Infof("initialized %d documents across %d topics", s.corpus.NumDocs(), s.opts.NumTopics)

	prev := s.CorpusLikelihood()
	res := Result{Likelihood: prev}

	for it := 1; it <= iterations; it++ {
		if err := ctx.Err(); err != nil {
			s.opts.Logger.Errorf("run cancelled after %d iterations: %v", res.Iterations, err)
			return Result{}, err
		}

		if err := s.sweep(it, false); err != nil {
			s.initialized = false
			s.opts.Logger.Errorf("sweep %d failed: %v", it, err)

			return Result{}, err
		}

		cur := s.CorpusLikelihood()
		rel := math.Abs(prev-cur) / math.Abs(prev)

		res.Iterations = it
		res.Likelihood = cur

		s.opts.Observer.OnIteration(it, cur, rel)
		s.opts.Logger.Infof("iteration %d: likelihood %.4f, relative change %.3e", it, cur, rel)

		if rel <= runOpts.ConvergenceThreshold {
			res.Converged = true
			break
		}

		prev = cur
	}

	return res, nil
}

// sweep walks every token occurrence of the corpus once. During
// initialization labels are drawn directly against the partial counts;
// afterwards each occurrence's current label is removed first, a replacement
// drawn, and the counts updated before moving on.
func (s *Sampler) sweep(iteration int, initializing bool) error {
	total := s.corpus.NumDocs()
	processed := 0

	for doc := range s.corpus.Docs() {
		declared := s.corpus.DocLength(doc)

		if initializing {
			s.labels.ensure(doc, declared)
		} else if got := s.labels.length(doc); got != declared {
			return fmt.Errorf("%w: document %d reports %d tokens but sampler holds %d labels",
				ErrCorpusInconsistency, doc, declared, got)
		}

		n := 0

		for term, freq := range s.corpus.TermFreqs(doc) {
			if int(term) >= s.numTerms {
				return fmt.Errorf("%w: document %d references term %d outside vocabulary of size %d",
					ErrCorpusInconsistency, doc, term, s.numTerms)
			}

			if freq < 0 {
				return fmt.Errorf("%w: document %d reports negative frequency %d for term %d",
					ErrCorpusInconsistency, doc, freq, term)
			}

			for i := 0; i < freq; i++ {
				if n >= declared {
					return fmt.Errorf("%w: document %d enumerates more tokens than its declared length %d",
						ErrCorpusInconsistency, doc, declared)
				}

				if !initializing {
					if err := s.counts.decrement(doc, term, s.labels.get(doc, n)); err != nil {
						return err
					}
				}

				topic := s.sampleTopic(doc, term)
				s.counts.increment(doc, term, topic)
				s.labels.set(doc, n, topic)
				n++
			}
		}

		if n != declared {
			return fmt.Errorf("%w: document %d declares %d tokens but enumerates %d",
				ErrCorpusInconsistency, doc, declared, n)
		}

		processed++
		s.opts.Observer.OnDocument(iteration, processed, total)
	}

	return nil
}

// Initialized reports whether the sampler currently holds a complete set of
// topic labels, i.e. the last Initialize (or Run) succeeded.
func (s *Sampler) Initialized() bool {
	return s.initialized
}

// TermTopicCount returns the number of occurrences of term assigned to topic.
func (s *Sampler) TermTopicCount(topic TopicID, term corpus.TermID) int {
	return s.counts.termTopicCount(topic, term)
}

// DocTopicCount returns the number of tokens in doc assigned to topic.
func (s *Sampler) DocTopicCount(doc corpus.DocID, topic TopicID) int {
	return s.counts.docTopicCount(doc, topic)
}

// TopicTotal returns the number of tokens assigned to topic across the
// corpus.
func (s *Sampler) TopicTotal(topic TopicID) int {
	return s.counts.total(topic)
}

// NumTopics returns the configured number of topics.
func (s *Sampler) NumTopics() int {
	return s.opts.NumTopics
}

// NumTerms returns the vocabulary size of the underlying corpus.
func (s *Sampler) NumTerms() int {
	return s.numTerms
}

// Alpha returns the document-topic smoothing parameter.
func (s *Sampler) Alpha() float64 {
	return s.opts.Alpha
}

// Beta returns the topic-term smoothing parameter.
func (s *Sampler) Beta() float64 {
	return s.opts.Beta
}
