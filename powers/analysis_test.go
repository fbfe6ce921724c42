package powers_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reachlab/core"
	"github.com/katalvlaran/reachlab/matrix"
	"github.com/katalvlaran/reachlab/powers"
)

// TestSequence_Path3 checks A⁰…A³ on 0-1-2.
func TestSequence_Path3(t *testing.T) {
	a, err := matrix.Adjacency(path(3))
	require.NoError(t, err)

	seq, err := powers.Sequence(a, 3)
	require.NoError(t, err)
	require.Len(t, seq, 4)
	require.Equal(t, "[1, 0, 0]\n[0, 1, 0]\n[0, 0, 1]\n", seq[0].String())
	require.True(t, seq[1].Threshold().Equal(a))
	require.Equal(t, "[1, 0, 1]\n[0, 2, 0]\n[1, 0, 1]\n", seq[2].String())
	require.Equal(t, "[0, 2, 0]\n[2, 0, 2]\n[0, 2, 0]\n", seq[3].String())

	p3, err := powers.Power(a, 3)
	require.NoError(t, err)
	require.True(t, p3.Equal(seq[3]))

	_, err = powers.Sequence(a, -1)
	require.ErrorIs(t, err, powers.ErrNegativePower)
}

// TestAnalyzeWalks_Path3 counts distinct pairs per exact length.
func TestAnalyzeWalks_Path3(t *testing.T) {
	a, _ := matrix.Adjacency(path(3))
	res, err := powers.AnalyzeWalks(a, 3)
	require.NoError(t, err)
	require.Equal(t, 3, res.N)
	// k=1: 0↔1, 1↔2; k=2: 0↔2; k=3: same as k=1 on a bipartite path.
	require.Equal(t, []int{0, 4, 2, 4}, res.PairsByLength)
}

// TestSummarize reports pair counts and the fully-connected flag.
func TestSummarize(t *testing.T) {
	r, err := powers.FromGraph(core.MustGraph(4, core.Edge{From: 0, To: 1}, core.Edge{From: 2, To: 3}))
	require.NoError(t, err)
	s, err := powers.Summarize(r)
	require.NoError(t, err)
	require.Equal(t, 4, s.ConnectedPairs)
	require.Equal(t, 12, s.TotalPairs)
	require.InDelta(t, 1.0/3.0, s.Ratio, 1e-12)
	require.False(t, s.FullyConnected)

	r, _ = powers.FromGraph(path(4))
	s, _ = powers.Summarize(r)
	require.True(t, s.FullyConnected)
	require.Equal(t, 1.0, s.Ratio)

	single, _ := core.NewGraph(1)
	r, _ = powers.FromGraph(single)
	s, err = powers.Summarize(r)
	require.NoError(t, err)
	require.Equal(t, 0.0, s.Ratio)
	require.True(t, s.FullyConnected)

	rect, _ := matrix.NewDense(1, 2)
	_, err = powers.Summarize(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
