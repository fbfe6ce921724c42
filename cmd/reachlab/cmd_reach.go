package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/reachlab/bfs"
	"github.com/katalvlaran/reachlab/matrix"
	"github.com/katalvlaran/reachlab/powers"
	"github.com/katalvlaran/reachlab/validate"
)

const methodBoth = "both"

func (a *app) reachCmd() *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "reach <graph.json>",
		Short: "Print the reachability matrix of a graph document",
		Long: `Print the reachability matrix of a graph document.

--method matrix  union of adjacency powers A¹…A^{n-1}
--method bfs     breadth-first search from every node
--method both    run both and fail if they disagree`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}

			var reach *matrix.Dense
			switch method {
			case powers.EngineName:
				reach, err = powers.FromGraph(g)
			case bfs.EngineName:
				reach, err = bfs.FromGraph(g)
			case methodBoth:
				var rep *validate.Report
				rep, err = validate.Graph(g)
				if rep != nil {
					reach = rep.Matrix
					a.printf("engines: %s\n", status(rep.Agree))
				}
			default:
				return fmt.Errorf("unknown method %q (want matrix, bfs or both)", method)
			}
			if err != nil {
				return err
			}

			sum, err := powers.Summarize(reach)
			if err != nil {
				return err
			}
			a.printf("%s", title(fmt.Sprintf("%s: reachability (%s, n=%d, edges=%d)", doc.Name, method, g.Order(), g.Size())))
			a.printf("%s", denseTable(reach))
			a.printf("connected pairs: %d/%d (%.2f%%), fully connected: %t\n",
				sum.ConnectedPairs, sum.TotalPairs, 100*sum.Ratio, sum.FullyConnected)

			return nil
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", powers.EngineName, "matrix, bfs or both")

	return cmd
}
