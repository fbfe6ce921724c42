package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/reachlab/core"
)

// ExampleGraph builds the path 0-1-2-3 and inspects it.
func ExampleGraph() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)

	nbrs, _ := g.Neighbors(1)
	fmt.Println("order:", g.Order(), "size:", g.Size())
	fmt.Println("neighbors of 1:", nbrs)

	err := g.AddEdge(3, 3)
	fmt.Println("self-loop rejected:", errors.Is(err, core.ErrInvalidGraph))

	// Output:
	// order: 4 size: 3
	// neighbors of 1: [0 2]
	// self-loop rejected: true
}
