package gibbs

// Observer receives sampler progress events. Callbacks run synchronously on
// the sampling goroutine and must not mutate the sampler; they exist for
// visibility only and never influence control flow.
type Observer interface {
	// OnDocument is called after each document finishes its sweep.
	// Iteration 0 is the initialization sweep.
	OnDocument(iteration, processed, total int)

	// OnIteration is called after each completed iteration (>= 1) with the
	// corpus log-likelihood and its relative change against the previous
	// iteration.
	OnIteration(iteration int, likelihood, relChange float64)
}

// NoopObserver is a no-op implementation of Observer.
type NoopObserver struct{}

// Compile-time check that NoopObserver satisfies Observer.
var _ Observer = NoopObserver{}

func (NoopObserver) OnDocument(int, int, int)          {}
func (NoopObserver) OnIteration(int, float64, float64) {}
