// SPDX-License-Identifier: MIT
// Package: reachlab/builder
//
// impl_complete.go - Complete(n), Bipartite(a, b) and Isolated(n).
//
// Contract:
//   - Complete: n ≥ 1; pairs (i,j), i<j, i ascending then j ascending.
//   - Bipartite: a,b ≥ 1; left block base..base+a-1, right block after it.
//   - Isolated: n ≥ 0 nodes and no edges; Isolated(0) leaves g unchanged.
//
// Complexity: Complete O(n²), Bipartite O(a·b), Isolated O(1).

package builder

import (
	"fmt"

	"github.com/katalvlaran/reachlab/core"
)

const (
	methodComplete   = "Complete"
	methodBipartite  = "Bipartite"
	methodIsolated   = "Isolated"
	minCompleteNodes = 1
	minPartSize      = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		base := g.AddNodes(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, methodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Bipartite returns a Constructor that builds the complete bipartite K_{a,b}.
func Bipartite(a, b int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if a < minPartSize || b < minPartSize {
			return fmt.Errorf("%s: a=%d, b=%d (each must be ≥ %d): %w",
				methodBipartite, a, b, minPartSize, ErrTooFewVertices)
		}
		base := g.AddNodes(a + b)
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				if err := addEdge(g, methodBipartite, base+i, base+a+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Isolated returns a Constructor that appends n nodes with no edges.
func Isolated(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d < 0: %w", methodIsolated, n, ErrTooFewVertices)
		}
		g.AddNodes(n)

		return nil
	}
}
