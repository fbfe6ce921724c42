// Package powers computes all-pairs reachability of an undirected graph as the
// Boolean union of adjacency-matrix powers A¹ ∪ A² ∪ … ∪ A^{n-1}.
//
// What
//
//   - Reachability(A) keeps current = A and a 0/1 accumulator. For k = 1…n-1
//     it ORs current into the accumulator and, unless k == n-1, replaces
//     current by current × A using the dense triple loop of matrix.MulWalks.
//   - Entry (i,j) of the result is 1 iff some walk of length 1…n-1 joins i
//     and j. Shortest paths never exceed n-1 edges, so off the diagonal this
//     is exactly reachability. On the diagonal it is 1 iff i lies on a closed
//     walk of length ≤ n-1, i.e. deg(i) ≥ 1 and n ≥ 3; the value is whatever
//     the powers produce and is never forced.
//   - Hooks expose every intermediate power (WithOnPower) and the
//     accumulator's growth (WithOnAccumulate) for diagnostics.
//   - Power, Sequence, AnalyzeWalks and Summarize are diagnostic helpers that
//     report walk counts, per-length reachability and connectivity ratios.
//
// Why the slow way
//
//	The O(n) multiplications of O(n³) each give O(n⁴) total work. That cost is
//	the quantity being measured against BFS, so there is no repeated squaring,
//	no fast multiplication and no sparse representation.
//
// Numeric policy
//
//	Walk counts are math/big integers (matrix.Walks); nothing overflows and
//	only the sign of each entry feeds the accumulator.
//
// Complexity (n = |V|)
//
//   - Time:   O(n⁴) big-integer steps.
//   - Memory: O(n²) for current plus O(n²) for the accumulator; current is
//     released when Reachability returns.
//
// Errors
//
//   - matrix.ErrInvalidMatrix family (non-square, negative, asymmetric, nil)
//     before any multiplication starts.
//   - core.ErrInvalidGraph family from FromGraph.
//   - ErrNegativePower from Power/Sequence/AnalyzeWalks.
package powers
