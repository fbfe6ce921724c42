// Package matrix provides the dense matrix shapes shared by the reachability
// engines.
//
// The matrix package provides:
//
//   - Dense: a row-major int64 grid used for adjacency and reachability
//     matrices. 0×0 is a legal shape (the empty graph).
//   - Walks: a row-major grid of arbitrary-precision integers holding walk
//     counts (entries of A^k). Walk counts grow without bound on dense graphs,
//     so they never use a fixed-width type.
//   - Adjacency / FromEdges: the data-shape adapter from a core.Graph to its
//     symmetric 0/1 adjacency matrix.
//   - MulWalks: the plain triple-loop product W×A. It is deliberately the
//     textbook O(n³) kernel; no blocking, no Strassen, no sparse shortcuts.
//   - Validators that reject malformed matrices before any arithmetic starts.
//
// Errors
//
//	Every structural rejection (non-square, asymmetric, negative entry, nil)
//	wraps ErrInvalidMatrix. Bounds and shape errors (ErrOutOfRange,
//	ErrBadShape, ErrDimensionMismatch) are separate sentinels.
//
// Determinism
//
//	All loops run in fixed row-major order; Diff reports cells in that order.
package matrix
