// SPDX-License-Identifier: MIT
// Package: reachlab/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) is node base + r*cols + c (row-major).
//   - For each cell emit Right then Bottom when present.
//
// Complexity: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/reachlab/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		base := g.AddNodes(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := base + r*cols + c
				if c+1 < cols {
					if err := addEdge(g, methodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
