package main

import (
	"github.com/spf13/cobra"
)

// version is injected at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "topicgo",
	Short:   "Topicgo - LDA topic modeling",
	Long:    `Topicgo trains latent Dirichlet allocation models over document corpora using collapsed Gibbs sampling.`,
	Version: version,

	// Runtime failures should not dump the flag reference.
	SilenceUsage: true,
}
