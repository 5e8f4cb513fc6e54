package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/arw"
	"github.com/katalvlaran/arw/rational"
)

func newSurvivorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "survivors <name>",
		Short: "Derive survivor-count probabilities from a computed distribution",
		Long: `Survivors reads <name>.json from the data directory and writes the
probability that at least k and that exactly k particles survive:

  <name>-survivors.txt               k = n down to 0
  <name>-exact-survivors.txt         k = n down to 0
  <name>-survivors-univar.txt        k = 0 up to n, all sleep rates = q
  <name>-exact-survivors-univar.txt  k = 0 up to n, all sleep rates = q`,
		Args: cobra.ExactArgs(1),
		RunE: runSurvivors,
	}

	return cmd
}

func runSurvivors(cmd *cobra.Command, args []string) error {
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
	n := dist.Vertices()

	collect := func(d *arw.Distribution, ks []int, f func(int, *arw.Distribution) (rational.Expr, error)) ([]rational.Expr, error) {
		out := make([]rational.Expr, 0, len(ks))
		for _, k := range ks {
			e, err := f(k, d)
			if err != nil {
				return nil, err
			}
			out = append(out, e)
		}

		return out, nil
	}
	descending := make([]int, 0, n+1)
	for k := n; k >= 0; k-- {
		descending = append(descending, k)
	}
	ascending := make([]int, 0, n+1)
	for k := 0; k <= n; k++ {
		ascending = append(ascending, k)
	}

	atLeast, err := collect(dist, descending, arw.Survivors)
	if err != nil {
		return err
	}
	exact, err := collect(dist, descending, arw.ExactSurvivors)
	if err != nil {
		return err
	}
	// The univariate files run the opposite way, smallest k first.
	uniAtLeast, err := collect(univar, ascending, arw.Survivors)
	if err != nil {
		return err
	}
	uniExact, err := collect(univar, ascending, arw.ExactSurvivors)
	if err != nil {
		return err
	}

	outputs := []struct {
		path  string
		exprs []rational.Expr
	}{
		{base + "-survivors.txt", atLeast},
		{base + "-exact-survivors.txt", exact},
		{base + "-survivors-univar.txt", uniAtLeast},
		{base + "-exact-survivors-univar.txt", uniExact},
	}
	for _, out := range outputs {
		if err := writeFile(out.path, func(w *os.File) error {
			for _, e := range out.exprs {
				if err := arw.WritePretty(w, e); err != nil {
					return err
				}
			}

			return nil
		}); err != nil {
			return err
		}
	}

	log.Info("survivor probabilities written", "dir", dataDir, "graph", name, "k", n)

	return nil
}
