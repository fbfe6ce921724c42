// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels, optionally wrapped with context via
// fmt.Errorf("...: %w", ErrX); callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested shape is negative or rows are ragged.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")
)

// ErrInvalidMatrix is the umbrella for matrices an engine refuses to consume.
var ErrInvalidMatrix = errors.New("matrix: invalid matrix")

// Structural violations. Each wraps ErrInvalidMatrix.
var (
	// ErrNilMatrix indicates a nil matrix operand.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidMatrix)

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = fmt.Errorf("%w: not square", ErrInvalidMatrix)

	// ErrAsymmetry signals M[i][j] != M[j][i] for some i, j.
	ErrAsymmetry = fmt.Errorf("%w: not symmetric", ErrInvalidMatrix)

	// ErrNegativeEntry signals a negative entry.
	ErrNegativeEntry = fmt.Errorf("%w: negative entry", ErrInvalidMatrix)

	// ErrNonZeroDiagonal signals a non-zero diagonal where zero was required.
	ErrNonZeroDiagonal = fmt.Errorf("%w: diagonal not zero", ErrInvalidMatrix)
)
