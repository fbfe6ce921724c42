package builder_test

import (
	"fmt"

	"github.com/katalvlaran/reachlab/builder"
)

// ExampleBuildGraph composes two families into one disjoint graph.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(nil, builder.Cycle(3), builder.Star(3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Order(), g.Size())
	fmt.Println(g.Edges())
	// Output:
	// 6 5
	// [{0 1} {1 2} {2 0} {3 4} {3 5}]
}
