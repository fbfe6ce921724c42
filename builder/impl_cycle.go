// SPDX-License-Identifier: MIT
// Package: reachlab/builder
//
// impl_cycle.go - Cycle(n).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices); smaller rings would need a loop or a
//     duplicate edge.
//   - Emits (i, i+1) for i=0..n-2, then the closing edge (n-1, 0).
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/reachlab/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		base := g.AddNodes(n)
		for i := 0; i < n; i++ {
			if err := addEdge(g, methodCycle, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
