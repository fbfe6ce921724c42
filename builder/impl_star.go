// SPDX-License-Identifier: MIT
// Package: reachlab/builder
//
// impl_star.go - Star(n) and Wheel(n).
//
// Contract:
//   - Star: n ≥ 2; node base is the center, base+1..base+n-1 are leaves.
//   - Wheel: n ≥ 4; rim base..base+n-2 forms C_{n-1}, hub is base+n-1.
//     Rim edges first, then spokes in rim order.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/reachlab/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		center := g.AddNodes(n)
		for i := 1; i < n; i++ {
			if err := addEdge(g, methodStar, center, center+i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds W_n: a ring of n-1 plus a hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		base := g.AddNodes(n)
		rim := n - 1
		hub := base + rim
		for i := 0; i < rim; i++ {
			if err := addEdge(g, methodWheel, base+i, base+(i+1)%rim); err != nil {
				return err
			}
		}
		for i := 0; i < rim; i++ {
			if err := addEdge(g, methodWheel, hub, base+i); err != nil {
				return err
			}
		}

		return nil
	}
}
