// SPDX-License-Identifier: MIT
// Package: reachlab/core
//
// types.go - sentinel errors, Edge and Graph declarations, constructor.

package core

import (
	"errors"
	"fmt"
)

// ErrInvalidGraph is the umbrella sentinel for every malformed-graph condition.
var ErrInvalidGraph = errors.New("core: invalid graph")

// Specific rejections. Each wraps ErrInvalidGraph.
var (
	// ErrNegativeOrder indicates NewGraph was asked for n < 0 nodes.
	ErrNegativeOrder = fmt.Errorf("%w: negative node count", ErrInvalidGraph)

	// ErrNodeOutOfRange indicates an edge endpoint outside [0, n).
	ErrNodeOutOfRange = fmt.Errorf("%w: node id out of range", ErrInvalidGraph)

	// ErrSelfLoop indicates an edge (i,i).
	ErrSelfLoop = fmt.Errorf("%w: self-loop", ErrInvalidGraph)

	// ErrDuplicateEdge indicates the unordered pair is already present.
	ErrDuplicateEdge = fmt.Errorf("%w: duplicate edge", ErrInvalidGraph)

	// ErrNonDenseIDs indicates node ids are not exactly 0…n-1.
	ErrNonDenseIDs = fmt.Errorf("%w: node ids are not dense 0..n-1", ErrInvalidGraph)
)

// Edge is an unordered pair of node ids. From and To carry the orientation
// the caller used; the graph treats {From,To} and {To,From} as the same edge.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// pairKey normalizes an edge to (min,max) for duplicate detection.
type pairKey struct {
	u, v int
}

func keyOf(u, v int) pairKey {
	if u > v {
		u, v = v, u
	}

	return pairKey{u: u, v: v}
}

// Graph is a simple undirected, unweighted graph over nodes 0…n-1.
// The zero value is an empty graph ready for AddNodes and AddEdge.
type Graph struct {
	n     int
	edges []Edge
	pairs map[pairKey]struct{} // membership only; never iterated
}

// NewGraph returns an edgeless graph with n nodes.
// Returns ErrNegativeOrder when n < 0. n == 0 is a valid, empty graph.
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", n, ErrNegativeOrder)
	}

	return &Graph{
		n:     n,
		edges: make([]Edge, 0, n),
		pairs: make(map[pairKey]struct{}, n),
	}, nil
}

// MustGraph builds a graph from n and an edge list and panics on error.
// Intended for fixtures and examples where the input is a literal.
func MustGraph(n int, edges ...Edge) *Graph {
	g, err := NewGraph(n)
	if err != nil {
		panic(err)
	}
	for _, e := range edges {
		if err = g.AddEdge(e.From, e.To); err != nil {
			panic(err)
		}
	}

	return g
}
