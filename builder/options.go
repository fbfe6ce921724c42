// SPDX-License-Identifier: MIT
// Package: reachlab/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs;
// constructors themselves never panic.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// BuilderOption customizes the behavior of constructors by mutating a
// builderConfig before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithProbability sets the edge probability used by the random and
// clustered families. Panics outside [0,1].
func WithProbability(p float64) BuilderOption {
	if math.IsNaN(p) || p < probMin || p > probMax {
		panic(fmt.Sprintf("builder: WithProbability(%v)", p))
	}
	return func(c *builderConfig) {
		c.probability = p
	}
}

// WithClusterSize sets the nodes per cluster of the clustered family.
// Panics on size < 1.
func WithClusterSize(size int) BuilderOption {
	if size < 1 {
		panic(fmt.Sprintf("builder: WithClusterSize(%d)", size))
	}
	return func(c *builderConfig) {
		c.clusterSize = size
	}
}
