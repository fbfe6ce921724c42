// Package powers - the Boolean union of adjacency powers.
package powers

import (
	"fmt"

	"github.com/katalvlaran/reachlab/core"
	"github.com/katalvlaran/reachlab/matrix"
)

// Reachability returns the 0/1 union of A¹…A^{n-1}.
// a must be square, non-negative and symmetric; it is never modified.
// n ≤ 1 returns the n×n zero matrix without multiplying.
func Reachability(a *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := matrix.ValidateAdjacency(a); err != nil {
		return nil, fmt.Errorf("powers: %w", err)
	}

	n := a.Rows()
	acc, err := matrix.NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("powers: %w", err)
	}
	if n <= 1 {
		return acc, nil
	}

	current, err := matrix.WalksFrom(a)
	if err != nil {
		return nil, fmt.Errorf("powers: %w", err)
	}
	for k := 1; k <= n-1; k++ {
		if o.OnPower != nil {
			o.OnPower(k, current)
		}
		if err = current.OrInto(acc); err != nil {
			return nil, fmt.Errorf("powers: k=%d: %w", k, err)
		}
		if o.OnAccumulate != nil {
			o.OnAccumulate(k, acc.CountNonZero())
		}
		if k == n-1 {
			break
		}
		if current, err = matrix.MulWalks(current, a); err != nil {
			return nil, fmt.Errorf("powers: k=%d: %w", k+1, err)
		}
	}

	return acc, nil
}

// FromGraph builds the adjacency matrix of g and runs Reachability on it.
func FromGraph(g *core.Graph, opts ...Option) (*matrix.Dense, error) {
	a, err := matrix.Adjacency(g)
	if err != nil {
		return nil, fmt.Errorf("powers: %w", err)
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
