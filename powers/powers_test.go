package powers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reachlab/core"
	"github.com/katalvlaran/reachlab/matrix"
	"github.com/katalvlaran/reachlab/powers"
)

func path(n int) *core.Graph {
	g, _ := core.NewGraph(n)
	for i := 1; i < n; i++ {
		_ = g.AddEdge(i-1, i)
	}

	return g
}

// TestReachability_Path4 checks A¹ and the union on 0-1-2-3.
func TestReachability_Path4(t *testing.T) {
	g := path(4)
	a, err := matrix.Adjacency(g)
	require.NoError(t, err)

	var first *matrix.Dense
	r, err := powers.Reachability(a, powers.WithOnPower(func(k int, p *matrix.Walks) {
		if k == 1 {
			first = p.Threshold()
		}
	}))
	require.NoError(t, err)

	require.True(t, first.Equal(a), "A¹ must be the adjacency matrix")
	require.Equal(t, 6, first.CountNonZero())
	// Every node has a neighbor and n ≥ 3, so A² puts ones on the diagonal.
	require.Equal(t, [][]int64{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	}, r.ToRows())
}

// TestReachability_DisjointPaths checks zero cross-component entries.
func TestReachability_DisjointPaths(t *testing.T) {
	g := core.MustGraph(6,
		core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 2},
		core.Edge{From: 3, To: 4}, core.Edge{From: 4, To: 5},
	)
	r, err := powers.FromGraph(g)
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			v, _ := r.At(i, j)
			same := (i < 3) == (j < 3)
			if same {
				require.Equal(t, int64(1), v, "(%d,%d) within a component", i, j)
			} else {
				require.Equal(t, int64(0), v, "(%d,%d) across components", i, j)
			}
		}
	}
}

// TestReachability_SmallOrders covers n = 0, 1, 2 and isolated nodes.
func TestReachability_SmallOrders(t *testing.T) {
	empty, _ := core.NewGraph(0)
	r, err := powers.FromGraph(empty)
	require.NoError(t, err)
	require.Equal(t, 0, r.Rows())

	single, _ := core.NewGraph(1)
	r, err = powers.FromGraph(single)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{0}}, r.ToRows())

	// n=2: only A¹ is summed, the closed walk 0→1→0 has length 2 > n-1.
	r, err = powers.FromGraph(path(2))
	require.NoError(t, err)
	require.Equal(t, [][]int64{{0, 1}, {1, 0}}, r.ToRows())

	// Isolated node 2 never reaches anything, itself included.
	r, err = powers.FromGraph(core.MustGraph(3, core.Edge{From: 0, To: 1}))
	require.NoError(t, err)
	require.Equal(t, [][]int64{{1, 1, 0}, {1, 1, 0}, {0, 0, 0}}, r.ToRows())
}

// TestReachability_Idempotent runs twice and compares bitwise.
func TestReachability_Idempotent(t *testing.T) {
	g := core.MustGraph(7,
		core.Edge{From: 0, To: 4}, core.Edge{From: 4, To: 2},
		core.Edge{From: 5, To: 6}, core.Edge{From: 1, To: 3},
	)
	r1, err := powers.FromGraph(g)
	require.NoError(t, err)
	r2, err := powers.FromGraph(g)
	require.NoError(t, err)
	require.True(t, r1.Equal(r2))
}

// TestReachability_MonotonicAccumulator checks non-decreasing growth over k.
func TestReachability_MonotonicAccumulator(t *testing.T) {
	g := path(8)
	var counts []int
	_, err := powers.FromGraph(g, powers.WithOnAccumulate(func(k, nz int) {
		require.Equal(t, len(counts)+1, k)
		counts = append(counts, nz)
	}))
	require.NoError(t, err)
	require.Len(t, counts, 7)
	for i := 1; i < len(counts); i++ {
		require.GreaterOrEqual(t, counts[i], counts[i-1])
	}
	require.Equal(t, 64, counts[len(counts)-1])
}

// TestReachability_PowersSeen verifies exactly n-1 powers reach the hook.
func TestReachability_PowersSeen(t *testing.T) {
	var ks []int
	_, err := powers.FromGraph(path(5), powers.WithOnPower(func(k int, _ *matrix.Walks) {
		ks = append(ks, k)
	}), powers.WithOnPower(nil))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, ks)
}

// TestReachability_InvalidMatrix fails before multiplying.
func TestReachability_InvalidMatrix(t *testing.T) {
	called := false
	hook := powers.WithOnPower(func(int, *matrix.Walks) { called = true })

	rect, _ := matrix.NewDense(2, 3)
	_, err := powers.Reachability(rect, hook)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	neg, _ := matrix.FromRows([][]int64{{0, -1}, {-1, 0}})
	_, err = powers.Reachability(neg, hook)
	require.ErrorIs(t, err, matrix.ErrNegativeEntry)

	asym, _ := matrix.FromRows([][]int64{{0, 1, 0}, {0, 0, 1}, {0, 1, 0}})
	_, err = powers.Reachability(asym, hook)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
	require.ErrorIs(t, err, matrix.ErrInvalidMatrix)

	_, err = powers.Reachability(nil, hook)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.False(t, called)

	_, err = powers.FromGraph(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)
}

// TestEngine exposes the harness adapter.
func TestEngine(t *testing.T) {
	e := powers.Engine{}
	require.Equal(t, "matrix", e.Name())
	r, err := e.Reachability(path(3))
	require.NoError(t, err)
	require.Equal(t, 9, r.CountNonZero())
}
