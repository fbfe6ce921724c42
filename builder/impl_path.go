// SPDX-License-Identifier: MIT
// Package: reachlab/builder
//
// impl_path.go - Path(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); P_1 is a single node.
//   - Emits edges (base+i-1, base+i) for i=1..n-1 in increasing order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/reachlab/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		base := g.AddNodes(n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodPath, base+i-1, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
