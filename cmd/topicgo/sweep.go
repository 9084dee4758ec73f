package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hupe1980/topicgo"
	"github.com/hupe1980/topicgo/gibbs"
)

var (
	sweepTopics      []int
	sweepAlpha       float64
	sweepBeta        float64
	sweepIterations  int
	sweepThreshold   float64
	sweepSeed        int64
	sweepTop         int
	sweepParallelism int
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compare candidate topic counts",
	Long: `Train one model per candidate topic count, compare corpus
log-likelihoods and print the top terms of the best candidate.

Examples:
  topicgo sweep --input docword.kos.txt.gz --vocab vocab.kos.txt --topics 5,10,20
  topicgo sweep --snapshot corpus.tgc --topics 25,50,100 --parallelism 4 --seed 42`,
	RunE: runSweep,
}

func init() {
	rootCmd.AddCommand(sweepCmd)

	addCorpusFlags(sweepCmd)

	sweepCmd.Flags().IntSliceVarP(&sweepTopics, "topics", "k", []int{5, 10, 20}, "Candidate topic counts")
	sweepCmd.Flags().Float64Var(&sweepAlpha, "alpha", gibbs.DefaultOptions.Alpha, "Document-topic smoothing")
	sweepCmd.Flags().Float64Var(&sweepBeta, "beta", gibbs.DefaultOptions.Beta, "Topic-term smoothing")
	sweepCmd.Flags().IntVarP(&sweepIterations, "iterations", "n", 100, "Maximum sampling iterations per candidate")
	sweepCmd.Flags().Float64Var(&sweepThreshold, "threshold", gibbs.DefaultRunOptions.ConvergenceThreshold, "Relative likelihood change for early stopping (negative disables)")
	sweepCmd.Flags().Int64Var(&sweepSeed, "seed", 0, "Base random seed; candidate i runs with seed+i")
	sweepCmd.Flags().IntVar(&sweepTop, "top", 10, "Top terms to print per topic of the best candidate")
	sweepCmd.Flags().IntVar(&sweepParallelism, "parallelism", 0, "Concurrent candidates (0 = GOMAXPROCS)")
}

func runSweep(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := newLogger()
	if err != nil {
		return err
	}

	c, err := loadCorpus(ctx, logger)
	if err != nil {
		return err
	}

	modelOpts := []topicgo.Option{
		topicgo.WithAlpha(sweepAlpha),
		topicgo.WithBeta(sweepBeta),
		topicgo.WithLogger(logger),
	}
	if cmd.Flags().Changed("seed") {
		modelOpts = append(modelOpts, topicgo.WithSeed(sweepSeed))
	}

	results, err := topicgo.Sweep(ctx, c, sweepTopics, sweepIterations, func(o *topicgo.SweepOptions) {
		o.Parallelism = sweepParallelism
		o.ModelOptions = modelOpts
		o.RunOptions = []func(o *gibbs.RunOptions){
			func(o *gibbs.RunOptions) { o.ConvergenceThreshold = sweepThreshold },
		}
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "%-8s %-12s %-10s %s\n", "topics", "iterations", "converged", "log-likelihood")
	for _, r := range results {
		fmt.Fprintf(w, "%-8d %-12d %-10t %.4f\n", r.NumTopics, r.Result.Iterations, r.Result.Converged, r.Result.Likelihood)
	}

	best, ok := topicgo.BestByLikelihood(results)
	if !ok {
		return nil
	}

	fmt.Fprintf(w, "\nbest candidate: %d topics\n\n", best.NumTopics)

	return printTopics(w, best.Model, sweepTop)
}
