package gibbs

// Options contains configuration options for the sampler.
type Options struct {
	// NumTopics is the number of latent topics. It must be >= 1.
	NumTopics int

	// Alpha is the document-topic Dirichlet smoothing. It must be > 0.
	Alpha float64

	// Beta is the topic-term Dirichlet smoothing. It must be > 0.
	Beta float64

	// RandomSeed pins the seed of the sampler's random stream for
	// reproducible runs. When nil the stream is seeded from the current
	// time, so two runs generally differ.
	RandomSeed *int64

	// Logger receives sampler progress and failure logs.
	Logger Logger

	// Observer receives per-document and per-iteration callbacks. It is
	// purely observational and never influences sampling.
	Observer Observer
}

// DefaultOptions contains the default configuration options for the sampler.
var DefaultOptions = Options{
	NumTopics: 10,
	Alpha:     0.1,
	Beta:      0.1,
}

// RunOptions contains options for a single run.
type RunOptions struct {
	// ConvergenceThreshold stops the run early once the relative change of
	// the corpus log-likelihood between consecutive sweeps is at or below
	// this value. A negative threshold disables early stopping.
	ConvergenceThreshold float64
}

// DefaultRunOptions contains the default options for a single run.
var DefaultRunOptions = RunOptions{
	ConvergenceThreshold: 1e-6,
}
