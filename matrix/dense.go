// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/Equal/Diff: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf attaches method context and coordinates to a sentinel.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Cell is a (Row, Col) coordinate.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// String renders the cell as "(i,j)".
func (c Cell) String() string {
	return "(" + strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col) + ")"
}

// Dense is a row-major matrix of int64 values.
//   - r,c hold dimensions (rows, cols); zero is allowed.
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense struct {
	r, c int
	data []int64
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix. Zero-sized shapes are legal because
// the empty graph has a 0×0 adjacency matrix.
// Errors: ErrBadShape for negative dimensions.
// Complexity: O(r*c) time and space.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewSquare is NewDense(n, n).
func NewSquare(n int) (*Dense, error) { return NewDense(n, n) }

// FromRows copies a [][]int64 literal into a Dense. All rows must have the
// same length (ErrBadShape otherwise). A nil or empty slice yields 0×0.
// The result is not required to be square; engines validate that themselves.
func FromRows(rows [][]int64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return &Dense{}, nil
	}
	c := len(rows[0])
	m := &Dense{r: r, c: c, data: make([]int64, r*c)}
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("FromRows: row %d has %d cols, want %d: %w", i, len(row), c, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows(), Cols()).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the row-major offset.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (int64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v int64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	buf := make([]int64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// ToRows returns the matrix as a fresh [][]int64.
func (m *Dense) ToRows() [][]int64 {
	out := make([][]int64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]int64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Equal reports whether m and o have the same shape and identical entries.
// A nil operand is only equal to another nil.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Diff lists every cell where m and o differ, in row-major order.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense) Diff(o *Dense) ([]Cell, error) {
	if m == nil || o == nil {
		return nil, fmt.Errorf("Diff: %w", ErrNilMatrix)
	}
	if m.r != o.r || m.c != o.c {
		return nil, fmt.Errorf("Diff: %dx%d vs %dx%d: %w", m.r, m.c, o.r, o.c, ErrDimensionMismatch)
	}
	var cells []Cell
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if m.data[i*m.c+j] != o.data[i*m.c+j] {
				cells = append(cells, Cell{Row: i, Col: j})
			}
		}
	}

	return cells, nil
}

// CountNonZero returns the number of non-zero entries.
func (m *Dense) CountNonZero() int {
	cnt := 0
	for _, v := range m.data {
		if v != 0 {
			cnt++
		}
	}

	return cnt
}

// String renders one bracketed row per line, e.g. "[0, 1]\n[1, 0]\n".
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatInt(m.data[i*m.c+j], 10))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
