// Package bfs computes all-pairs reachability by breadth-first search from
// every node of an undirected graph given as a dense adjacency matrix.
//
// What
//
//   - Reachable walks one source and returns a Result with:
//   - Order: visit sequence (ascending neighbor ids within a layer)
//   - Depth: edge distance from the source, -1 when unreached
//   - Parent: predecessor in the BFS tree, -1 for the source and unreached
//   - SelfReachable: whether a closed walk of length ≤ n-1 returns to the source
//   - Reachability runs Reachable from every node and assembles the n×n
//     0/1 matrix; it agrees entrywise with powers.Reachability.
//   - Components and IsConnected reuse the same walker.
//   - Hooks at three stages:
//   - OnEnqueue (when a node is first discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//
// Diagonal
//
//	reach[s][s] is 1 iff some closed walk from s of length 1…n-1 exists. In a
//	simple graph that is the case exactly when s has a neighbor and n ≥ 3.
//	The walker sets SelfReachable when it scans an edge back into s from a
//	node at depth d with d+1 ≤ n-1; the first such edge is always seen from
//	depth 1 (or depth 0 when the matrix carries a loop on s).
//
// Determinism
//
//	NewList stores neighbors in ascending id order, the queue is FIFO and
//	visited state is a slice, so visit order never depends on map iteration.
//
// Complexity (n = nodes, E = edges)
//
//   - NewList:      O(n²)
//   - Reachable:    O(n + E)
//   - Reachability: O(n² + n·E), O(n²) memory for the result
//
// Errors
//
//   - matrix.ErrInvalidMatrix family for malformed input matrices.
//   - ErrListNil, ErrStartOutOfRange for Reachable.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
