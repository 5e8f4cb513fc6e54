// Command arw computes and analyzes exact stationary distributions of
// activated random walks on small graphs with one sink.
//
// Results live as plain files in a data directory, one set per graph
// name: an exact JSON document plus pretty-printed and LaTeX text files.
// "compute" produces them; "analyze" and "survivors" are read-only
// consumers of the JSON.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "arw",
		Short: "Exact stationary distributions of activated random walks",
		Long: `arw computes the exact (symbolic, rational-function-valued) stationary
distribution of the activated random walk on a finite connected simple
graph with one sink, then derives marginals, correlations and
survivor-count probabilities from it.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String("data", "data", "directory for input/output data files")
	root.PersistentFlags().Bool("quiet", false, "suppress the progress display")

	root.AddCommand(
		newComputeCmd(),
		newAnalyzeCmd(),
		newSurvivorsCmd(),
	)

	return root
}

// newLogger builds the CLI logger; logs and progress share stderr so the
// data files stay clean.
func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

// writeFile creates path and streams content into it through render.
func writeFile(path string, render func(w *os.File) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(fh); err != nil {
		fh.Close()

		return err
	}

	return fh.Close()
}
