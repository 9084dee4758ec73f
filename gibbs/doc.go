// Package gibbs implements collapsed Gibbs sampling for Latent Dirichlet
// Allocation.
//
// A Sampler owns three coupled sparse count tables (topic-term, document-
// topic, per-topic totals) and one topic label per token occurrence. Each
// iteration revisits every occurrence: its current label is removed from the
// counts, a new label is drawn from the full conditional implied by the
// remaining counts, and the counts are updated in place. After each full
// sweep the corpus log-likelihood is evaluated against the current counts;
// the run stops early once its relative change falls below the convergence
// threshold.
//
// # Usage
//
//	s, err := gibbs.New(c, func(o *gibbs.Options) {
//	    o.NumTopics = 20
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := s.Run(ctx, 200)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Iterations, res.Converged)
//
// After a run (or a bare Initialize) the count accessors expose the learned
// state for downstream consumers such as distribution exporters.
//
// # Determinism
//
// One sampler consumes a single sequential random stream in a fixed order
// relative to the corpus walk. Runs are reproducible bit for bit only when
// Options.RandomSeed is pinned; by default the stream is seeded from the
// current time. Initialization draws each label against the counts
// accumulated earlier in the same sweep, so the corpus enumeration order
// participates in the result.
//
// # Concurrency
//
// A Sampler is not safe for concurrent use. One running sampler exclusively
// owns its state; the remove/draw/update protocol requires a globally
// consistent snapshot at every step. Context cancellation is honored at
// iteration boundaries only, leaving the counts consistent.
package gibbs
