package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/reachlab/matrix"
	"github.com/katalvlaran/reachlab/powers"
)

func (a *app) powersCmd() *cobra.Command {
	var maxK int
	cmd := &cobra.Command{
		Use:   "powers <graph.json>",
		Short: "Print adjacency powers and per-length walk statistics",
		Long: `Print A¹…A^k with exact walk counts, then the number of ordered pairs of
distinct nodes joined by a walk of exactly each length. k defaults to n-1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			a0, err := matrix.Adjacency(g)
			if err != nil {
				return err
			}
			k := maxK
			if k <= 0 {
				k = g.Order() - 1
			}
			if k < 1 {
				a.printf("%s", mutedStyle.Render(fmt.Sprintf("%s: n=%d has no walks to show", doc.Name, g.Order()))+"\n")
				return nil
			}

			seq, err := powers.Sequence(a0, k)
			if err != nil {
				return err
			}
			for p := 1; p <= k; p++ {
				a.printf("%s", title(fmt.Sprintf("A^%d: walks of length %d", p, p)))
				a.printf("%s", walksTable(seq[p]))
			}

			an, err := powers.AnalyzeWalks(a0, k)
			if err != nil {
				return err
			}
			rows := make([][]string, 0, k)
			for p := 1; p <= k; p++ {
				rows = append(rows, []string{strconv.Itoa(p), strconv.Itoa(an.PairsByLength[p])})
			}
			a.printf("%s", title("pairs joined by a walk of exactly length k"))
			a.printf("%s", grid([]string{"k", "pairs"}, rows))

			return nil
		},
	}
	cmd.Flags().IntVarP(&maxK, "max", "k", 0, "highest power to print (default n-1)")

	return cmd
}
