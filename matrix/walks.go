// SPDX-License-Identifier: MIT
// Package matrix - exact walk-count matrices.
//
// Walks holds entries of A^k: the number of walks of length exactly k between
// two nodes. Counts grow roughly like λ_max^k, so int64 overflows around
// k≈40 on K_n with modest n; every entry is a math/big.Int instead.
//
// Complexity quicksheet:
//   - WalksFrom/Identity: O(n²); MulWalks: O(n³) big-int multiply-adds;
//     OrInto: O(n²).

package matrix

import (
	"fmt"
	"math/big"
	"strings"
)

// Walks is a square row-major grid of non-negative big integers.
type Walks struct {
	n    int
	data []big.Int
}

var _ fmt.Stringer = (*Walks)(nil)

// WalksFrom copies a square non-negative matrix into a Walks (the k=1 power
// when a is an adjacency matrix).
// Errors: ErrNilMatrix, ErrNonSquare, ErrNegativeEntry.
func WalksFrom(a *Dense) (*Walks, error) {
	if err := ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("WalksFrom: %w", err)
	}
	if err := ValidateNonNegative(a); err != nil {
		return nil, fmt.Errorf("WalksFrom: %w", err)
	}
	w := &Walks{n: a.r, data: make([]big.Int, len(a.data))}
	for i, v := range a.data {
		w.data[i].SetInt64(v)
	}

	return w, nil
}

// IdentityWalks returns A^0 = I_n. Negative n yields ErrBadShape.
func IdentityWalks(n int) (*Walks, error) {
	if n < 0 {
		return nil, fmt.Errorf("IdentityWalks(%d): %w", n, ErrBadShape)
	}
	w := &Walks{n: n, data: make([]big.Int, n*n)}
	for i := 0; i < n; i++ {
		w.data[i*n+i].SetInt64(1)
	}

	return w, nil
}

// N returns the side length.
func (w *Walks) N() int { return w.n }

// At returns a copy of entry (i,j) or ErrOutOfRange.
func (w *Walks) At(i, j int) (*big.Int, error) {
	if i < 0 || i >= w.n || j < 0 || j >= w.n {
		return nil, fmt.Errorf("Walks.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return new(big.Int).Set(&w.data[i*w.n+j]), nil
}

// CountNonZero returns the number of entries with at least one walk.
func (w *Walks) CountNonZero() int {
	cnt := 0
	for i := range w.data {
		if w.data[i].Sign() != 0 {
			cnt++
		}
	}

	return cnt
}

// Equal reports identical shape and entries.
func (w *Walks) Equal(o *Walks) bool {
	if w == nil || o == nil {
		return w == o
	}
	if w.n != o.n {
		return false
	}
	for i := range w.data {
		if w.data[i].Cmp(&o.data[i]) != 0 {
			return false
		}
	}

	return true
}

// Threshold returns the 0/1 matrix with 1 wherever a walk exists.
func (w *Walks) Threshold() *Dense {
	out := &Dense{r: w.n, c: w.n, data: make([]int64, len(w.data))}
	for i := range w.data {
		if w.data[i].Sign() > 0 {
			out.data[i] = 1
		}
	}

	return out
}

// OrInto sets acc[i][j] = 1 wherever w[i][j] > 0; other cells of acc are
// left untouched. This is the Boolean accumulation step.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (w *Walks) OrInto(acc *Dense) error {
	if acc == nil {
		return fmt.Errorf("OrInto: %w", ErrNilMatrix)
	}
	if acc.r != w.n || acc.c != w.n {
		return fmt.Errorf("OrInto: %dx%d into %dx%d: %w", w.n, w.n, acc.r, acc.c, ErrDimensionMismatch)
	}
	for i := range w.data {
		if w.data[i].Sign() > 0 {
			acc.data[i] = 1
		}
	}

	return nil
}

// MulWalks returns W×A computed by the textbook triple loop:
//
//	out[i][j] = Σ_k W[i][k] · A[k][j]
//
// Every (i,j,k) triple is visited, so the cost is Θ(n³) big-int steps
// regardless of sparsity. Zero factors skip the multiply but not the visit.
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
func MulWalks(w *Walks, a *Dense) (*Walks, error) {
	if w == nil {
		return nil, fmt.Errorf("MulWalks: %w", ErrNilMatrix)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("MulWalks: %w", err)
	}
	n := w.n
	if a.r != n {
		return nil, fmt.Errorf("MulWalks: %dx%d × %dx%d: %w", n, n, a.r, a.c, ErrDimensionMismatch)
	}

	out := &Walks{n: n, data: make([]big.Int, n*n)}
	var (
		i, j, k int
		av      int64
		term    big.Int
		factor  big.Int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sum := &out.data[i*n+j]
			for k = 0; k < n; k++ {
				av = a.data[k*n+j]
				if av == 0 {
					continue
				}
				if av == 1 {
					sum.Add(sum, &w.data[i*n+k])
					continue
				}
				factor.SetInt64(av)
				term.Mul(&w.data[i*n+k], &factor)
				sum.Add(sum, &term)
			}
		}
	}

	return out, nil
}

// String renders one bracketed row per line, like Dense.String.
func (w *Walks) String() string {
	var sb strings.Builder
	for i := 0; i < w.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < w.n; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(w.data[i*w.n+j].String())
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
