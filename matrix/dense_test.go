// Package matrix_test contains unit tests for the Dense implementation.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reachlab/matrix"
)

// TestNewDense_Shapes accepts zero sizes and rejects negative ones.
func TestNewDense_Shapes(t *testing.T) {
	m, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	r, c := m.Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 0, c)
	require.Equal(t, "", m.String())

	_, err = matrix.NewDense(-1, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err = matrix.NewSquare(3)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 0, m.CountNonZero())
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)

	require.NoError(t, m.Set(1, 0, 7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(7), v)
}

// TestFromRows covers ragged input and round-tripping.
func TestFromRows(t *testing.T) {
	rows := [][]int64{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	require.Equal(t, rows, m.ToRows())
	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", m.String())

	_, err = matrix.FromRows([][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err = matrix.FromRows(nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
}

// TestCloneEqualDiff verifies deep copies and row-major mismatch reporting.
func TestCloneEqualDiff(t *testing.T) {
	m, err := matrix.FromRows([][]int64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	c := m.Clone()
	require.True(t, m.Equal(c))
	require.NoError(t, c.Set(0, 0, 1))
	require.NoError(t, c.Set(1, 1, 1))
	require.False(t, m.Equal(c))

	v, _ := m.At(0, 0)
	require.Equal(t, int64(0), v, "clone must not alias the original")

	cells, err := m.Diff(c)
	require.NoError(t, err)
	require.Equal(t, []matrix.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}}, cells)
	require.Equal(t, "(1,1)", cells[1].String())

	other, _ := matrix.NewDense(3, 3)
	_, err = m.Diff(other)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = m.Diff(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.False(t, m.Equal(nil))
}
