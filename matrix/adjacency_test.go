package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reachlab/core"
	"github.com/katalvlaran/reachlab/matrix"
)

// TestAdjacency_Path4 checks the 0-1-2-3 path: exactly three undirected pairs.
func TestAdjacency_Path4(t *testing.T) {
	g := core.MustGraph(4,
		core.Edge{From: 0, To: 1},
		core.Edge{From: 1, To: 2},
		core.Edge{From: 2, To: 3},
	)
	a, err := matrix.Adjacency(g)
	require.NoError(t, err)
	require.Equal(t, [][]int64{
		{0, 1, 0, 0},
		{1, 0, 1, 0},
		{0, 1, 0, 1},
		{0, 0, 1, 0},
	}, a.ToRows())
	require.Equal(t, 6, a.CountNonZero())
	require.NoError(t, matrix.ValidateAdjacency(a))
	require.NoError(t, matrix.ValidateZeroDiagonal(a))
}

// TestAdjacency_EmptyAndNil covers the 0×0 case and nil input.
func TestAdjacency_EmptyAndNil(t *testing.T) {
	g, err := core.NewGraph(0)
	require.NoError(t, err)
	a, err := matrix.Adjacency(g)
	require.NoError(t, err)
	require.Equal(t, 0, a.Rows())
	require.Equal(t, 0, a.Cols())

	_, err = matrix.Adjacency(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)
}

// TestFromEdges_InvalidGraph rejects raw edges that violate graph invariants.
func TestFromEdges_InvalidGraph(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges []core.Edge
		want  error
	}{
		{"negative order", -2, nil, core.ErrNegativeOrder},
		{"endpoint too large", 3, []core.Edge{{From: 0, To: 3}}, core.ErrNodeOutOfRange},
		{"endpoint negative", 3, []core.Edge{{From: -1, To: 0}}, core.ErrNodeOutOfRange},
		{"self loop", 3, []core.Edge{{From: 1, To: 1}}, core.ErrSelfLoop},
		{"duplicate reversed", 3, []core.Edge{{From: 0, To: 1}, {From: 1, To: 0}}, core.ErrDuplicateEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.FromEdges(tc.n, tc.edges)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, core.ErrInvalidGraph)
		})
	}
}
