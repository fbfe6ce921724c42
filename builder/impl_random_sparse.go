// SPDX-License-Identifier: MIT
// Package: reachlab/builder
//
// impl_random_sparse.go - RandomSparse(n, p) and Clustered(k, size, p).
//
// RandomSparse contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource); p=0 and
//     p=1 are deterministic without one.
//   - Trials run over unordered pairs i<j, i ascending then j ascending, one
//     rng.Float64() draw per pair, edge iff draw < p.
//
// Clustered contract:
//   - k ≥ 1 clusters of size ≥ 1 nodes, each sampled as RandomSparse(size, p).
//   - Cluster c's first node is bridged to cluster c+1's first node, so the
//     result is connected whenever every cluster is.
//
// Complexity: O(n²) trials; Clustered O(k·size²).

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/reachlab/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodClustered         = "Clustered"
	minRandomSparseVertices = 1
	minClusters             = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

func checkProbability(method string, p float64, cfg builderConfig) error {
	if math.IsNaN(p) || p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, probMin, probMax, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > probMin && p < probMax {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// sampleBlock wires G(n,p) edges over base..base+n-1.
func sampleBlock(g *core.Graph, cfg builderConfig, method string, base, n int, p float64) error {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var keep bool
			switch {
			case p == probMin:
				keep = false
			case p == probMax:
				keep = true
			default:
				keep = cfg.rng.Float64() < p
			}
			if !keep {
				continue
			}
			if err := addEdge(g, method, base+i, base+j); err != nil {
				return err
			}
		}
	}

	return nil
}

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if err := checkProbability(methodRandomSparse, p, cfg); err != nil {
			return err
		}
		base := g.AddNodes(n)

		return sampleBlock(g, cfg, methodRandomSparse, base, n, p)
	}
}

// Clustered returns a Constructor that builds k G(size,p) clusters joined
// in a chain by single bridge edges.
func Clustered(k, size int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minClusters || size < minRandomSparseVertices {
			return fmt.Errorf("%s: k=%d, size=%d (each must be ≥ 1): %w",
				methodClustered, k, size, ErrTooFewVertices)
		}
		if err := checkProbability(methodClustered, p, cfg); err != nil {
			return err
		}
		base := g.AddNodes(k * size)
		for c := 0; c < k; c++ {
			if err := sampleBlock(g, cfg, methodClustered, base+c*size, size, p); err != nil {
				return err
			}
		}
		for c := 0; c+1 < k; c++ {
			if err := addEdge(g, methodClustered, base+c*size, base+(c+1)*size); err != nil {
				return err
			}
		}

		return nil
	}
}
