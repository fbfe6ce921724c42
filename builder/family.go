// SPDX-License-Identifier: MIT
// Package: reachlab/builder
//
// family.go - named, size-indexed graph families for benchmarks and the CLI.
//
// Size mapping (n is the requested node count):
//   - path, cycle, star, wheel, complete, isolated, random: exactly n nodes.
//   - grid: rows×cols with rows the largest divisor of n not above √n, so a
//     perfect square gives a square grid and a prime gives a 1×n strip.
//   - clustered: ⌈n/size⌉ clusters of size nodes; may exceed n by up to size-1.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/reachlab/core"
)

// Family names accepted by FamilyByName.
const (
	FamilyPath      = "path"
	FamilyCycle     = "cycle"
	FamilyStar      = "star"
	FamilyWheel     = "wheel"
	FamilyGrid      = "grid"
	FamilyComplete  = "complete"
	FamilyIsolated  = "isolated"
	FamilyRandom    = "random"
	FamilyClustered = "clustered"
)

// Family binds a name to a generator of graphs of a requested size.
type Family struct {
	Name  string
	Build func(n int) (*core.Graph, error)
}

// familyFactories maps a name to a Constructor factory over the resolved cfg.
var familyFactories = map[string]func(n int, cfg builderConfig) Constructor{
	FamilyPath:     func(n int, _ builderConfig) Constructor { return Path(n) },
	FamilyCycle:    func(n int, _ builderConfig) Constructor { return Cycle(n) },
	FamilyStar:     func(n int, _ builderConfig) Constructor { return Star(n) },
	FamilyWheel:    func(n int, _ builderConfig) Constructor { return Wheel(n) },
	FamilyComplete: func(n int, _ builderConfig) Constructor { return Complete(n) },
	FamilyIsolated: func(n int, _ builderConfig) Constructor { return Isolated(n) },
	FamilyGrid: func(n int, _ builderConfig) Constructor {
		rows, cols := gridShape(n)
		return Grid(rows, cols)
	},
	FamilyRandom: func(n int, cfg builderConfig) Constructor {
		return RandomSparse(n, cfg.probability)
	},
	FamilyClustered: func(n int, cfg builderConfig) Constructor {
		size := cfg.clusterSize
		return Clustered((n+size-1)/size, size, cfg.probability)
	},
}

// FamilyByName returns the named family. opts are resolved afresh on every
// Build call, so WithSeed yields the same graph for the same n regardless of
// call order.
func FamilyByName(name string, opts ...BuilderOption) (Family, error) {
	factory, ok := familyFactories[name]
	if !ok {
		return Family{}, fmt.Errorf("FamilyByName(%q): %w", name, ErrUnknownFamily)
	}
	bopts := append([]BuilderOption(nil), opts...)

	return Family{
		Name: name,
		Build: func(n int) (*core.Graph, error) {
			cfg := newBuilderConfig(bopts...)
			g, err := BuildGraph(bopts, factory(n, cfg))
			if err != nil {
				return nil, fmt.Errorf("%s(n=%d): %w", name, n, err)
			}

			return g, nil
		},
	}, nil
}

// Families returns every family name in ascending order.
func Families() []string {
	names := make([]string, 0, len(familyFactories))
	for name := range familyFactories {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// gridShape factors n into rows×cols with rows ≤ cols and rows maximal.
func gridShape(n int) (rows, cols int) {
	if n < 1 {
		return 0, 0
	}
	rows = 1
	for r := 1; r*r <= n; r++ {
		if n%r == 0 {
			rows = r
		}
	}

	return rows, n / rows
}
