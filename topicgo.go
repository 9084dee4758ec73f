package topicgo

import (
	"context"
	"time"

	"github.com/hupe1980/topicgo/corpus"
	"github.com/hupe1980/topicgo/gibbs"
)

// Model trains latent topics over a corpus with collapsed Gibbs sampling and
// exports the fitted distributions.
//
// A Model is not safe for concurrent use; train one model per goroutine
// (see Sweep for parallel model selection).
type Model struct {
	view    corpus.View
	sampler *gibbs.Sampler
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Model over a corpus view.
//
// The view must stay unchanged for the model's lifetime; its document
// enumeration order is part of the sampling stream.
func New(v corpus.View, optFns ...Option) (*Model, error) {
	opts := applyOptions(optFns)

	s, err := gibbs.New(v, func(o *gibbs.Options) {
		o.NumTopics = opts.numTopics
		o.Alpha = opts.alpha
		o.Beta = opts.beta
		o.RandomSeed = opts.seed
		o.Logger = samplerLogger{l: opts.logger}
		o.Observer = opts.observer
	})
	if err != nil {
		return nil, translateError(err)
	}

	return &Model{
		view:    v,
		sampler: s,
		logger:  opts.logger,
		metrics: opts.metrics,
	}, nil
}

// Initialize assigns every token a topic in one initialization sweep,
// discarding any previous state. Run calls this implicitly; explicit use is
// only needed to inspect the initial state.
func (m *Model) Initialize(ctx context.Context) error {
	start := time.Now()
	err := translateError(m.sampler.Initialize(ctx))
	m.metrics.RecordInitialize(time.Since(start), err)
	m.logger.LogInitialize(ctx, m.view.NumDocs(), m.sampler.NumTopics(), err)
	return err
}

// Run reinitializes the model and performs up to iterations sampling sweeps,
// stopping early once the corpus log-likelihood stabilizes (see
// gibbs.RunOptions).
func (m *Model) Run(ctx context.Context, iterations int, optFns ...func(o *gibbs.RunOptions)) (gibbs.Result, error) {
	start := time.Now()
	res, err := m.sampler.Run(ctx, iterations, optFns...)
	err = translateError(err)
	m.metrics.RecordRun(res.Iterations, time.Since(start), err)
	m.logger.LogRun(ctx, res, err)
	return res, err
}

// CorpusLikelihood returns the log-likelihood of the corpus under the
// current topic assignments.
func (m *Model) CorpusLikelihood() float64 {
	return m.sampler.CorpusLikelihood()
}

// Initialized reports whether topic assignments exist.
func (m *Model) Initialized() bool {
	return m.sampler.Initialized()
}

// NumTopics returns the configured number of topics.
func (m *Model) NumTopics() int {
	return m.sampler.NumTopics()
}

// NumTerms returns the vocabulary size of the underlying corpus.
func (m *Model) NumTerms() int {
	return m.sampler.NumTerms()
}

// View returns the corpus view the model was built over.
func (m *Model) View() corpus.View {
	return m.view
}

// TermTopicCount returns how many occurrences of term are assigned to topic.
func (m *Model) TermTopicCount(topic gibbs.TopicID, term corpus.TermID) int {
	return m.sampler.TermTopicCount(topic, term)
}

// DocTopicCount returns how many of the document's tokens are assigned to
// topic.
func (m *Model) DocTopicCount(doc corpus.DocID, topic gibbs.TopicID) int {
	return m.sampler.DocTopicCount(doc, topic)
}

// TopicTotal returns how many tokens corpus-wide are assigned to topic.
func (m *Model) TopicTotal(topic gibbs.TopicID) int {
	return m.sampler.TopicTotal(topic)
}
