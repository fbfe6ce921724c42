// Package bfs - all-pairs reachability and components.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/reachlab/core"
	"github.com/katalvlaran/reachlab/matrix"
)

// Reachability returns the n×n 0/1 matrix with reach[s][v] = 1 iff v ≠ s
// is visited from s, and reach[s][s] = 1 iff the search from s is
// SelfReachable. a must be square, non-negative and symmetric.
func Reachability(a *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	adj, err := NewList(a)
	if err != nil {
		return nil, err
	}

	n := adj.Len()
	out, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}
	for s := 0; s < n; s++ {
		res, err := reachable(adj, s, &o)
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			if v != s {
				_ = out.Set(s, v, 1)
			}
		}
		if res.SelfReachable {
			_ = out.Set(s, s, 1)
		}
	}

	return out, nil
}

// FromGraph builds the adjacency matrix of g and runs Reachability on it.
func FromGraph(g *core.Graph, opts ...Option) (*matrix.Dense, error) {
	a, err := matrix.Adjacency(g)
	if err != nil {
		return nil, fmt.Errorf("bfs: %w", err)
	}

	return Reachability(a, opts...)
}

// Engine adapts FromGraph to the timing harness.
type Engine struct {
	Opts []Option
}

// Name returns EngineName.
func (Engine) Name() string { return EngineName }

// Reachability runs FromGraph with the engine's options.
func (e Engine) Reachability(g *core.Graph) (*matrix.Dense, error) {
	return FromGraph(g, e.Opts...)
}

// Components returns the connected components of a. Components are ordered
// by their smallest node and each one lists its nodes ascending.
func Components(a *matrix.Dense) ([][]int, error) {
	adj, err := NewList(a)
	if err != nil {
		return nil, err
	}
	o := DefaultOptions()
	n := adj.Len()
	seen := make([]bool, n)
	var comps [][]int
	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		res, err := reachable(adj, s, &o)
		if err != nil {
			return nil, err
		}
		comp := make([]int, 0, len(res.Order))
		for v := s; v < n; v++ {
			if res.Depth[v] >= 0 {
				seen[v] = true
				comp = append(comp, v)
			}
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// IsConnected reports whether a has at most one component. The empty
// graph and the single node are connected.
func IsConnected(a *matrix.Dense) (bool, error) {
	comps, err := Components(a)
	if err != nil {
		return false, err
	}

	return len(comps) <= 1, nil
}
