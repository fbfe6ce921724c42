// Package core defines the Graph value consumed by both reachability engines:
// a fixed set of densely numbered nodes 0…n-1 and a list of undirected,
// unweighted edges.
//
// What
//
//   - Graph stores its order n and its edges in insertion order.
//   - Node identifiers are dense and contiguous; an edge is an unordered pair
//     {From, To} of distinct identifiers in [0, n).
//   - Self-loops, duplicate edges (in either orientation) and out-of-range
//     endpoints are rejected at insertion time, so a Graph value is always
//     a simple undirected graph.
//
// Determinism
//
//	Edges() preserves insertion order and Neighbors(u) is sorted ascending.
//	No method iterates a Go map, so every derived view is reproducible.
//
// Errors
//
//	Every rejection wraps ErrInvalidGraph, so callers that only care about
//	"the input graph is malformed" can test a single sentinel:
//
//	  - ErrNegativeOrder   n < 0.
//	  - ErrNodeOutOfRange  an endpoint is outside [0, n).
//	  - ErrSelfLoop        From == To.
//	  - ErrDuplicateEdge   the unordered pair is already present.
//	  - ErrNonDenseIDs     FromIDs received ids that are not a permutation of 0…n-1.
//
// Concurrency
//
//	Graph is not synchronized. Build it on one goroutine, then treat it as
//	read-only; the engines never mutate their input.
//
// Complexity
//
//   - AddEdge, HasEdge: O(1) amortized (pair set).
//   - Neighbors: O(E) (scan); engines build their own adjacency view once.
//   - Clone: O(E).
package core
