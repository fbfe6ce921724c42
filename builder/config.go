// SPDX-License-Identifier: MIT
// Package: reachlab/builder
//
// config.go - internal configuration and deterministic defaults.
//
//   - builderConfig is the single source of truth for all builder knobs.
//   - newBuilderConfig applies options in-order (later overrides earlier).
//   - rng is nil unless WithSeed or WithRand is given.
//   - probability and clusterSize only parameterize Family generators.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand

	// Edge probability for the random and clustered families.
	probability float64

	// Nodes per cluster for the clustered family.
	clusterSize int
}

// Deterministic defaults.
const (
	defaultProbability = 0.2
	defaultClusterSize = 5
)

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:         nil,
		probability: defaultProbability,
		clusterSize: defaultClusterSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
