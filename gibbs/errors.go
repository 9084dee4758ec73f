package gibbs

import "errors"

var (
	// ErrInvalidConfiguration is returned by New when the sampler cannot be
	// constructed: no topics, non-positive smoothing, or an empty vocabulary.
	ErrInvalidConfiguration = errors.New("invalid sampler configuration")

	// ErrInvariantViolation is returned when a count update targets an
	// absent or already-zero entry. It signals corrupted sampler state and
	// is fatal for the run.
	ErrInvariantViolation = errors.New("count invariant violation")

	// ErrCorpusInconsistency is returned when the corpus view contradicts
	// itself, e.g. a document whose declared token count disagrees with the
	// sum of its term frequencies. It is fatal for the run.
	ErrCorpusInconsistency = errors.New("corpus inconsistency")
)
