package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reachlab/core"
	"github.com/katalvlaran/reachlab/matrix"
)

func mustAdj(t *testing.T, g *core.Graph) *matrix.Dense {
	t.Helper()
	a, err := matrix.Adjacency(g)
	require.NoError(t, err)

	return a
}

// TestMulWalks_Triangle checks A² and A³ of K3 against closed forms:
// A²[i][i] = 2, A²[i][j] = 1; A³[i][i] = 2, A³[i][j] = 3.
func TestMulWalks_Triangle(t *testing.T) {
	a := mustAdj(t, core.MustGraph(3,
		core.Edge{From: 0, To: 1}, core.Edge{From: 1, To: 2}, core.Edge{From: 0, To: 2}))

	w1, err := matrix.WalksFrom(a)
	require.NoError(t, err)
	w2, err := matrix.MulWalks(w1, a)
	require.NoError(t, err)
	require.Equal(t, "[2, 1, 1]\n[1, 2, 1]\n[1, 1, 2]\n", w2.String())

	w3, err := matrix.MulWalks(w2, a)
	require.NoError(t, err)
	require.Equal(t, "[2, 3, 3]\n[3, 2, 3]\n[3, 3, 2]\n", w3.String())
}

// TestMulWalks_NoOverflow pushes K_6 to A^40, far past int64 range, and
// checks the closed form for walks between distinct vertices of K_n:
// ((n-1)^k - (-1)^k) / n.
func TestMulWalks_NoOverflow(t *testing.T) {
	const n, k = 6, 40
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.NoError(t, g.AddEdge(i, j))
		}
	}
	a := mustAdj(t, g)

	w, err := matrix.WalksFrom(a)
	require.NoError(t, err)
	for step := 2; step <= k; step++ {
		w, err = matrix.MulWalks(w, a)
		require.NoError(t, err)
	}

	want := new(big.Int).Exp(big.NewInt(n-1), big.NewInt(k), nil)
	want.Sub(want, big.NewInt(1)) // (-1)^40 = 1
	want.Quo(want, big.NewInt(n))

	got, err := w.At(0, 1)
	require.NoError(t, err)
	require.Zero(t, want.Cmp(got), "got %s want %s", got, want)
	require.Positive(t, got.Cmp(big.NewInt(1<<62)))
}

// TestWalks_ThresholdAndOr verifies the Boolean collapse helpers.
func TestWalks_ThresholdAndOr(t *testing.T) {
	a := mustAdj(t, core.MustGraph(3, core.Edge{From: 0, To: 1}))
	w, err := matrix.WalksFrom(a)
	require.NoError(t, err)
	require.Equal(t, 2, w.CountNonZero())
	require.True(t, w.Threshold().Equal(a))

	acc, _ := matrix.NewSquare(3)
	require.NoError(t, acc.Set(2, 2, 1))
	require.NoError(t, w.OrInto(acc))
	require.Equal(t, [][]int64{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}}, acc.ToRows())

	small, _ := matrix.NewSquare(2)
	require.ErrorIs(t, w.OrInto(small), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, w.OrInto(nil), matrix.ErrNilMatrix)
}

// TestWalks_Errors covers shape validation and bounds.
func TestWalks_Errors(t *testing.T) {
	rect, _ := matrix.NewDense(2, 3)
	_, err := matrix.WalksFrom(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	neg, _ := matrix.FromRows([][]int64{{0, -1}, {-1, 0}})
	_, err = matrix.WalksFrom(neg)
	require.ErrorIs(t, err, matrix.ErrNegativeEntry)

	id, err := matrix.IdentityWalks(2)
	require.NoError(t, err)
	require.Equal(t, "[1, 0]\n[0, 1]\n", id.String())
	_, err = id.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	sq3, _ := matrix.NewSquare(3)
	_, err = matrix.MulWalks(id, sq3)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MulWalks(nil, sq3)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.IdentityWalks(-1)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}
