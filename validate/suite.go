package validate

import (
	"fmt"

	"github.com/katalvlaran/reachlab/builder"
	"github.com/katalvlaran/reachlab/core"
)

// Case is one named graph of a validation suite.
type Case struct {
	Name  string
	Graph *core.Graph
}

// Suite validates every case in order and stops at the first failure,
// returning the reports gathered so far and the error tagged with the
// case name.
func Suite(cases []Case) ([]*Report, error) {
	reports := make([]*Report, 0, len(cases))
	for _, c := range cases {
		rep, err := Graph(c.Graph)
		if rep != nil {
			reports = append(reports, rep)
		}
		if err != nil {
			return reports, fmt.Errorf("validate: case %q: %w", c.Name, err)
		}
	}

	return reports, nil
}

// DefaultSuite builds the standard graph suite: the degenerate orders,
// every deterministic family, disjoint unions, isolated nodes and seeded
// random graphs.
func DefaultSuite() ([]Case, error) {
	type entry struct {
		name string
		opts []builder.BuilderOption
		cons []builder.Constructor
	}
	entries := []entry{
		{name: "empty", cons: []builder.Constructor{builder.Isolated(0)}},
		{name: "single node", cons: []builder.Constructor{builder.Isolated(1)}},
		{name: "two nodes, one edge", cons: []builder.Constructor{builder.Path(2)}},
		{name: "two isolated nodes", cons: []builder.Constructor{builder.Isolated(2)}},
		{name: "path 4", cons: []builder.Constructor{builder.Path(4)}},
		{name: "path 10", cons: []builder.Constructor{builder.Path(10)}},
		{name: "cycle 5", cons: []builder.Constructor{builder.Cycle(5)}},
		{name: "cycle 10", cons: []builder.Constructor{builder.Cycle(10)}},
		{name: "star 6", cons: []builder.Constructor{builder.Star(6)}},
		{name: "wheel 6", cons: []builder.Constructor{builder.Wheel(6)}},
		{name: "grid 3x3", cons: []builder.Constructor{builder.Grid(3, 3)}},
		{name: "grid 2x5", cons: []builder.Constructor{builder.Grid(2, 5)}},
		{name: "complete 5", cons: []builder.Constructor{builder.Complete(5)}},
		{name: "bipartite 2x3", cons: []builder.Constructor{builder.Bipartite(2, 3)}},
		{name: "two paths 3", cons: []builder.Constructor{builder.Path(3), builder.Path(3)}},
		{name: "path with isolated", cons: []builder.Constructor{builder.Path(3), builder.Isolated(2)}},
		{name: "edge with isolated", cons: []builder.Constructor{builder.Path(2), builder.Isolated(1)}},
		{
			name: "clustered 3x4",
			opts: []builder.BuilderOption{builder.WithSeed(21)},
			cons: []builder.Constructor{builder.Clustered(3, 4, 0.5)},
		},
	}
	for _, seed := range []int64{1, 2, 3, 5, 8, 13} {
		entries = append(entries, entry{
			name: fmt.Sprintf("random 12 p=0.15 seed=%d", seed),
			opts: []builder.BuilderOption{builder.WithSeed(seed)},
			cons: []builder.Constructor{builder.RandomSparse(12, 0.15)},
		})
	}

	cases := make([]Case, 0, len(entries))
	for _, s := range entries {
		g, err := builder.BuildGraph(s.opts, s.cons...)
		if err != nil {
			return nil, fmt.Errorf("validate: DefaultSuite %q: %w", s.name, err)
		}
		cases = append(cases, Case{Name: s.name, Graph: g})
	}

	return cases, nil
}
