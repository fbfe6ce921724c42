// SPDX-License-Identifier: MIT
// Package matrix - structural validators.
//
// Contract:
//   - Validators never mutate their input.
//   - Errors carry the first offending cell in row-major order.
//   - ValidateAdjacency checks, in order: nil, square, non-negative, symmetric.

package matrix

import "fmt"

// ValidateSquare returns ErrNilMatrix or ErrNonSquare.
func ValidateSquare(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare)
	}

	return nil
}

// ValidateNonNegative returns ErrNegativeEntry at the first negative cell.
func ValidateNonNegative(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	for off, v := range m.data {
		if v < 0 {
			return fmt.Errorf("%v=%d: %w", Cell{Row: off / m.c, Col: off % m.c}, v, ErrNegativeEntry)
		}
	}

	return nil
}

// ValidateSymmetric returns ErrAsymmetry at the first (i,j), i<j, with
// M[i][j] != M[j][i]. The matrix must already be square.
func ValidateSymmetric(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return fmt.Errorf("%v=%d vs %v=%d: %w",
					Cell{Row: i, Col: j}, m.data[i*n+j], Cell{Row: j, Col: i}, m.data[j*n+i], ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal returns ErrNonZeroDiagonal at the first non-zero M[i][i].
func ValidateZeroDiagonal(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	for i := 0; i < m.r; i++ {
		if v := m.data[i*m.c+i]; v != 0 {
			return fmt.Errorf("%v=%d: %w", Cell{Row: i, Col: i}, v, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateAdjacency is the gate both engines run before any arithmetic:
// square, then non-negative, then symmetric.
func ValidateAdjacency(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateNonNegative(m); err != nil {
		return err
	}

	return ValidateSymmetric(m)
}
