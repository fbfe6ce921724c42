// SPDX-License-Identifier: MIT
// Package: reachlab/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.
//
// Contract:
//   - BuildGraph creates an empty graph, resolves cfg once and runs
//     constructors in order.
//   - Each constructor appends a fresh block of nodes; blocks never share
//     edges, so composition is a disjoint union.
//   - Errors are wrapped once with "BuildGraph: %w".

package builder

import (
	"fmt"

	"github.com/katalvlaran/reachlab/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before adding any node
// and return sentinel errors.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped and returned immediately.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(0)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph g.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// addEdge wraps core errors with the constructor's method tag.
func addEdge(g *core.Graph, method string, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w: %w", method, u, v, ErrConstructFailed, err)
	}

	return nil
}
