package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/arw"
	"github.com/katalvlaran/arw/internal/progress"
	"github.com/katalvlaran/arw/rational"
)

func newComputeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the exact stationary distribution for a graph",
		Long: `Compute explores the reachable configuration space of the ARW on the
given graph, solves the fundamental-matrix system exactly, and writes
the resulting distribution into the data directory:

  <name>.json                     exact machine-readable result
  <name>-states.txt               the absorbing configurations
  <name>-distribution.txt         pretty num/den blocks per probability
  <name>-distribution-latex.txt   LaTeX, one expression per line`,
		RunE: runCompute,
	}

	cmd.Flags().String("graph", "", `named graph family, e.g. "4-clique"`)
	cmd.Flags().String("spec", "", "YAML graph spec file (overrides --graph)")

	return cmd
}

func runCompute(cmd *cobra.Command, _ []string) error {
	log := newLogger()
	dataDir, _ := cmd.Flags().GetString("data")
	quiet, _ := cmd.Flags().GetBool("quiet")
	name, _ := cmd.Flags().GetString("graph")
	specPath, _ := cmd.Flags().GetString("spec")

	spec, err := resolveGraph(name, specPath)
	if err != nil {
		return err
	}
	n := len(spec.Adjacency) - 1
	f := rational.Indexed("q", n)
	sleep, err := spec.sleepProbs(f)
	if err != nil {
		return err
	}

	opts := []arw.Option{}
	if !quiet {
		opts = append(opts, arw.WithSolverSink(progress.NewSink(os.Stderr)))
	}

	start := time.Now()
	chain, err := arw.BuildChain(spec.Adjacency, sleep, opts...)
	if err != nil {
		return err
	}
	log.Info("transition matrix built",
		"graph", spec.Name,
		"states", len(chain.States),
		"absorbing", len(chain.Absorbing),
		"elapsed", time.Since(start))

	solveStart := time.Now()
	dist, err := chain.Stationary(opts...)
	if err != nil {
		return err
	}
	log.Info("stationary distribution solved",
		"graph", spec.Name,
		"elapsed", time.Since(solveStart))

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	base := filepath.Join(dataDir, spec.Name)
	if err := writeFile(base+".json", func(w *os.File) error { return dist.WriteJSON(w) }); err != nil {
		return err
	}
	if err := writeFile(base+"-states.txt", func(w *os.File) error { return dist.WriteStates(w) }); err != nil {
		return err
	}
	if err := writeFile(base+"-distribution.txt", func(w *os.File) error { return dist.WriteText(w) }); err != nil {
		return err
	}
	if err := writeFile(base+"-distribution-latex.txt", func(w *os.File) error { return dist.WriteLaTeX(w) }); err != nil {
		return err
	}
	log.Info("results written", "dir", dataDir, "graph", spec.Name)

	return nil
}
