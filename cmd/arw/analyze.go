package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/arw"
	"github.com/katalvlaran/arw/rational"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <name>",
		Short: "Derive marginals and pair correlations from a computed distribution",
		Long: `Analyze reads <name>.json from the data directory and writes:

  <name>-distribution-univar.txt   distribution with all sleep rates = q
  <name>-marginals.txt             one-point intensities per vertex
  <name>-correlations.txt          pair correlations m_ij - m_i*m_j
  <name>-marginals-univar.txt      the same, all sleep rates = q
  <name>-correlations-univar.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}

	return cmd
}

// loadDist reads a previously computed distribution from the data dir.
func loadDist(dataDir, name string) (*arw.Distribution, string, error) {
	base := filepath.Join(dataDir, name)
	fh, err := os.Open(base + ".json")
	if err != nil {
		return nil, "", err
	}
	defer fh.Close()
	dist, err := arw.ReadJSON(fh)
	if err != nil {
		return nil, "", fmt.Errorf("%s.json: %w", base, err)
	}

	return dist, base, nil
}

// writePrettyList writes a sequence of expressions in pretty num/den form.
func writePrettyList(path string, exprs []rational.Expr) error {
	return writeFile(path, func(w *os.File) error {
		for _, e := range exprs {
			if err := arw.WritePretty(w, e); err != nil {
				return err
			}
		}

		return nil
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	log := newLogger()
	dataDir, _ := cmd.Flags().GetString("data")
	name := args[0]

	dist, base, err := loadDist(dataDir, name)
	if err != nil {
		return err
	}

	univar, err := dist.Univariate()
	if err != nil {
		return err
	}
	if err := writeFile(base+"-distribution-univar.txt", func(w *os.File) error { return univar.WriteText(w) }); err != nil {
		return err
	}

	marginals, err := arw.Marginals(dist)
	if err != nil {
		return err
	}
	if err := writePrettyList(base+"-marginals.txt", marginals); err != nil {
		return err
	}
	correlations, err := arw.Correlations(dist)
	if err != nil {
		return err
	}
	corrExprs := make([]rational.Expr, len(correlations))
	for i, c := range correlations {
		corrExprs[i] = c.Prob
	}
	if err := writePrettyList(base+"-correlations.txt", corrExprs); err != nil {
		return err
	}

	// The same statistics with every sleep rate collapsed to q.
	uniMarginals, err := arw.Marginals(univar)
	if err != nil {
		return err
	}
	if err := writePrettyList(base+"-marginals-univar.txt", uniMarginals); err != nil {
		return err
	}
	uniCorrelations, err := arw.Correlations(univar)
	if err != nil {
		return err
	}
	uniCorrExprs := make([]rational.Expr, len(uniCorrelations))
	for i, c := range uniCorrelations {
		uniCorrExprs[i] = c.Prob
	}
	if err := writePrettyList(base+"-correlations-univar.txt", uniCorrExprs); err != nil {
		return err
	}

	log.Info("analysis written", "dir", dataDir, "graph", name,
		"marginals", len(marginals), "correlations", len(correlations))

	return nil
}
