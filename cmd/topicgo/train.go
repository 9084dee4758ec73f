package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hupe1980/topicgo"
	"github.com/hupe1980/topicgo/gibbs"
)

var (
	trainTopics     int
	trainAlpha      float64
	trainBeta       float64
	trainIterations int
	trainThreshold  float64
	trainSeed       int64
	trainTop        int
	trainProgress   bool
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a topic model over a corpus",
	Long: `Train an LDA topic model with collapsed Gibbs sampling and print the
top terms of every topic.

Examples:
  topicgo train --input docword.kos.txt.gz --vocab vocab.kos.txt --topics 20
  topicgo train --snapshot corpus.tgc --topics 50 --iterations 500 --seed 42
  topicgo train --input s3://my-bucket/corpora/docword.nips.txt.gz --topics 100`,
	RunE: runTrain,
}

func init() {
	rootCmd.AddCommand(trainCmd)

	addCorpusFlags(trainCmd)

	trainCmd.Flags().IntVarP(&trainTopics, "topics", "k", gibbs.DefaultOptions.NumTopics, "Number of latent topics")
	trainCmd.Flags().Float64Var(&trainAlpha, "alpha", gibbs.DefaultOptions.Alpha, "Document-topic smoothing")
	trainCmd.Flags().Float64Var(&trainBeta, "beta", gibbs.DefaultOptions.Beta, "Topic-term smoothing")
	trainCmd.Flags().IntVarP(&trainIterations, "iterations", "n", 100, "Maximum sampling iterations")
	trainCmd.Flags().Float64Var(&trainThreshold, "threshold", gibbs.DefaultRunOptions.ConvergenceThreshold, "Relative likelihood change for early stopping (negative disables)")
	trainCmd.Flags().Int64Var(&trainSeed, "seed", 0, "Random seed for reproducible runs (time-seeded when omitted)")
	trainCmd.Flags().IntVar(&trainTop, "top", 10, "Top terms to print per topic")
	trainCmd.Flags().BoolVar(&trainProgress, "progress", false, "Print sampling progress")
}

func runTrain(cmd *cobra.Command, args []string) error {
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

	optFns := []topicgo.Option{
		topicgo.WithNumTopics(trainTopics),
		topicgo.WithAlpha(trainAlpha),
		topicgo.WithBeta(trainBeta),
		topicgo.WithLogger(logger),
	}
	if cmd.Flags().Changed("seed") {
		optFns = append(optFns, topicgo.WithSeed(trainSeed))
	}
	if trainProgress {
		optFns = append(optFns, topicgo.WithObserver(topicgo.NewProgressObserver(progressLogger())))
	}

	model, err := topicgo.New(c, optFns...)
	if err != nil {
		return err
	}

	res, err := model.Run(ctx, trainIterations, func(o *gibbs.RunOptions) {
		o.ConvergenceThreshold = trainThreshold
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printResult(w, res)

	return printTopics(w, model, trainTop)
}

// progressLogger always logs at info so --progress works regardless of
// --log-level.
func progressLogger() *topicgo.Logger {
	if logJSON {
		return topicgo.NewJSONLogger(slog.LevelInfo)
	}
	return topicgo.NewTextLogger(slog.LevelInfo)
}

func printResult(w io.Writer, res gibbs.Result) {
	state := "stopped at iteration budget"
	if res.Converged {
		state = "converged"
	}
	fmt.Fprintf(w, "%s after %d iterations, log-likelihood %.4f\n\n", state, res.Iterations, res.Likelihood)
}

func printTopics(w io.Writer, model *topicgo.Model, top int) error {
	for j := 0; j < model.NumTopics(); j++ {
		words, err := model.TopWords(gibbs.TopicID(j), top) //nolint:gosec // j < NumTopics which fits uint32
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "topic %3d:", j)
		for _, ww := range words {
			fmt.Fprintf(w, " %s (%.4f)", ww.Word, ww.Weight)
		}
		fmt.Fprintln(w)
	}

	return nil
}
