// SPDX-License-Identifier: MIT
// Package: reachlab/core
//
// methods.go - Graph mutation and queries.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Neighbors(u) is sorted ascending.

package core

import (
	"fmt"
	"sort"
)

// Order returns the number of nodes n.
func (g *Graph) Order() int { return g.n }

// Size returns the number of edges.
func (g *Graph) Size() int { return len(g.edges) }

// AddNodes appends k new isolated nodes and returns the id of the first one.
// The new ids are first…first+k-1. k <= 0 is a no-op that returns Order().
func (g *Graph) AddNodes(k int) int {
	first := g.n
	if k > 0 {
		g.n += k
	}

	return first
}

// AddEdge inserts the undirected edge {u, v}.
//
// Errors (all wrap ErrInvalidGraph):
//   - ErrNodeOutOfRange if u or v is outside [0, n).
//   - ErrSelfLoop if u == v.
//   - ErrDuplicateEdge if {u, v} already exists in either orientation.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fmt.Errorf("AddEdge(%d,%d) with n=%d: %w", u, v, g.n, ErrNodeOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrSelfLoop)
	}
	k := keyOf(u, v)
	if _, dup := g.pairs[k]; dup {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrDuplicateEdge)
	}
	if g.pairs == nil {
		g.pairs = make(map[pairKey]struct{})
	}
	g.pairs[k] = struct{}{}
	g.edges = append(g.edges, Edge{From: u, To: v})

	return nil
}

// HasEdge reports whether {u, v} is an edge. Out-of-range ids yield false.
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.pairs[keyOf(u, v)]

	return ok
}

// Edges returns a copy of the edge list in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Neighbors returns the nodes adjacent to u in ascending order.
// Returns ErrNodeOutOfRange when u is not a node.
// Complexity: O(E + d log d).
func (g *Graph) Neighbors(u int) ([]int, error) {
	if u < 0 || u >= g.n {
		return nil, fmt.Errorf("Neighbors(%d) with n=%d: %w", u, g.n, ErrNodeOutOfRange)
	}
	var out []int
	for _, e := range g.edges {
		switch u {
		case e.From:
			out = append(out, e.To)
		case e.To:
			out = append(out, e.From)
		}
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edges incident to u (0 for unknown ids).
func (g *Graph) Degree(u int) int {
	d := 0
	for _, e := range g.edges {
		if e.From == u || e.To == u {
			d++
		}
	}

	return d
}

// Clone returns an independent copy of g.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		n:     g.n,
		edges: make([]Edge, len(g.edges)),
		pairs: make(map[pairKey]struct{}, len(g.pairs)),
	}
	copy(c.edges, g.edges)
	for k := range g.pairs {
		c.pairs[k] = struct{}{}
	}

	return c
}

// FromIDs builds a Graph from an explicit node id list and edges, the shape
// produced by JSON graph documents. ids may be in any order but must be a
// permutation of 0…len(ids)-1; otherwise ErrNonDenseIDs is returned.
// Edges are validated exactly as in AddEdge.
func FromIDs(ids []int, edges []Edge) (*Graph, error) {
	n := len(ids)
	seen := make([]bool, n)
	for _, id := range ids {
		if id < 0 || id >= n || seen[id] {
			return nil, fmt.Errorf("FromIDs: id %d among %d nodes: %w", id, n, ErrNonDenseIDs)
		}
		seen[id] = true
	}

	g, err := NewGraph(n)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err = g.AddEdge(e.From, e.To); err != nil {
			return nil, fmt.Errorf("FromIDs: edge #%d: %w", i, err)
		}
	}

	return g, nil
}
