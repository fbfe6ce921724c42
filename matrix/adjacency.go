// SPDX-License-Identifier: MIT
// Package matrix - graph to adjacency-matrix adapter.
//
// Contract:
//   - M[i][j] = M[j][i] = 1 iff {i,j} is an edge, 0 otherwise; M[i][i] = 0.
//   - 0 nodes ⇒ 0×0 matrix (valid).
//   - Pure: the graph is only read.
//
// Complexity: O(n² + E) time, O(n²) space.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/reachlab/core"
)

// Adjacency builds the dense 0/1 adjacency matrix of g.
// Errors: ErrGraphNil, or the core.ErrInvalidGraph family from FromEdges.
func Adjacency(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return FromEdges(g.Order(), g.Edges())
}

// FromEdges builds the adjacency matrix for n nodes and a raw edge list that
// has not gone through core.Graph validation.
//
// Errors (all wrap core.ErrInvalidGraph):
//   - core.ErrNegativeOrder   n < 0
//   - core.ErrNodeOutOfRange  an endpoint outside [0, n)
//   - core.ErrSelfLoop        an edge (i,i)
//   - core.ErrDuplicateEdge   the same unordered pair twice
func FromEdges(n int, edges []core.Edge) (*Dense, error) {
	if n < 0 {
		return nil, fmt.Errorf("FromEdges(n=%d): %w", n, core.ErrNegativeOrder)
	}
	m := &Dense{r: n, c: n, data: make([]int64, n*n)}
	for idx, e := range edges {
		u, v := e.From, e.To
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("FromEdges: edge #%d (%d,%d) with n=%d: %w", idx, u, v, n, core.ErrNodeOutOfRange)
		}
		if u == v {
			return nil, fmt.Errorf("FromEdges: edge #%d (%d,%d): %w", idx, u, v, core.ErrSelfLoop)
		}
		if m.data[u*n+v] != 0 {
			return nil, fmt.Errorf("FromEdges: edge #%d (%d,%d): %w", idx, u, v, core.ErrDuplicateEdge)
		}
		m.data[u*n+v] = 1
		m.data[v*n+u] = 1
	}

	return m, nil
}
