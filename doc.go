// Package topicgo provides an embedded LDA topic modeling engine for Go.
//
// Topicgo fits latent Dirichlet allocation models with collapsed Gibbs
// sampling. It is built for batch training over bag-of-words corpora with
// reproducible, seeded inference and clean export of the fitted
// distributions.
//
// # Quick Start
//
//	b := corpus.NewBuilder()
//	b.AddText("the quick brown fox")
//	b.AddText("the lazy dog sleeps")
//	c, _ := b.Build()
//
//	m, _ := topicgo.New(c,
//	    topicgo.WithNumTopics(2),
//	    topicgo.WithSeed(42),
//	)
//	res, _ := m.Run(ctx, 200)
//	fmt.Println(res.Iterations, res.Converged, res.Likelihood)
//
//	words, _ := m.TopWords(0, 5)
//
// # Corpora
//
// Corpora come from the Builder (tokenized text with document-frequency
// pruning), the UCI sparse bag-of-words format (plain or gzip), or binary
// snapshots. All of them load from local files or any BlobStore:
//
//	store := s3.NewStore(s3.NewFromConfig(cfg), "my-bucket", "corpora/")
//	c, _ := corpus.OpenBagOfWords(ctx, store, "docword.nips.txt.gz")
//
// # Model Selection
//
// Sweep trains one model per candidate topic count concurrently and reports
// every fit; BestByLikelihood picks the winner:
//
//	results, _ := topicgo.Sweep(ctx, c, []int{5, 10, 20}, 200)
//	best, _ := topicgo.BestByLikelihood(results)
//
// # Observability
//
// Training emits structured logs through a slog-backed Logger, operational
// metrics through a MetricsCollector, and live progress through an Observer:
//
//	m, _ := topicgo.New(c,
//	    topicgo.WithLogLevel(slog.LevelInfo),
//	    topicgo.WithMetricsCollector(&topicgo.BasicMetricsCollector{}),
//	    topicgo.WithObserver(topicgo.NewProgressObserver(topicgo.NewTextLogger(slog.LevelInfo))),
//	)
//
// # Key Features
//
//   - Collapsed Gibbs sampling with seeded, bit-for-bit reproducible runs
//   - Convergence detection on the corpus log-likelihood
//   - Corpus pipeline: tokenizing Builder, UCI bag-of-words, LZ4 snapshots
//   - Cloud-native corpus storage (local mmap, S3, MinIO via BlobStore)
//   - Parallel model selection across topic counts
//   - Dense Phi/Theta export for downstream linear algebra
package topicgo
