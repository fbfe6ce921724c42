// Package bfs - adjacency-list view of a dense matrix.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/reachlab/matrix"
)

// List is an immutable adjacency list over nodes 0…n-1. Built once per
// matrix so every source reuses the same neighbor slices.
type List struct {
	adj [][]int
}

// NewList converts a validated adjacency matrix into neighbor lists in
// ascending id order. Any non-zero entry is an edge; a non-zero diagonal
// entry becomes a loop.
func NewList(a *matrix.Dense) (*List, error) {
	if err := matrix.ValidateAdjacency(a); err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	n := a.Rows()
	l := &List{adj: make([][]int, n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, _ := a.At(i, j); v != 0 {
				l.adj[i] = append(l.adj[i], j)
			}
		}
	}

	return l, nil
}

// Len returns the number of nodes.
func (l *List) Len() int { return len(l.adj) }

// Neighbors returns the neighbors of u in ascending order. The slice is
// shared; callers must not modify it. Out-of-range u yields nil.
func (l *List) Neighbors(u int) []int {
	if u < 0 || u >= len(l.adj) {
		return nil
	}

	return l.adj[u]
}
