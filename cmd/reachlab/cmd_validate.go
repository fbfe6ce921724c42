package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/reachlab/validate"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [graph.json...]",
		Short: "Cross-check both engines on documents or the default suite",
		Long: `Run the matrix-power and BFS engines on every graph and compare the
results cell by cell. Without arguments the built-in suite is used. The
first disagreement stops the run with an error.`,
		RunE: func(_ *cobra.Command, args []string) error {
			var cases []validate.Case
			if len(args) == 0 {
				suite, err := validate.DefaultSuite()
				if err != nil {
					return err
				}
				cases = suite
			}
			for _, path := range args {
				doc, g, err := a.loadGraph(path)
				if err != nil {
					return err
				}
				name := doc.Name
				if name == "" {
					name = path
				}
				cases = append(cases, validate.Case{Name: name, Graph: g})
			}

			reports, err := validate.Suite(cases)
			rows := make([][]string, 0, len(reports))
			for i, rep := range reports {
				rows = append(rows, []string{
					cases[i].Name,
					strconv.Itoa(rep.N),
					strconv.Itoa(cases[i].Graph.Size()),
					strconv.Itoa(len(rep.Mismatches)),
					status(rep.Agree),
				})
			}
			a.printf("%s", title("matrix vs bfs"))
			a.printf("%s", grid([]string{"graph", "n", "edges", "mismatches", "status"}, rows))
			if err != nil {
				a.log.Warn("validation failed", "err", err)
				return err
			}
			a.printf("%d graph(s) agree\n", len(reports))

			return nil
		},
	}
}
