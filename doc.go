// Package reachlab computes all-pairs reachability of undirected, unweighted
// graphs two independent ways and checks that they agree.
//
// Engines
//
//	powers/ Boolean union of A¹…A^{n-1}, exact big-integer dense products
//	bfs/    breadth-first search from every node
//
// Around them:
//
//	core/     Graph: dense node ids 0…n-1, simple undirected edges
//	matrix/   Dense int64 matrices, adjacency construction, walk counts
//	validate/ entrywise cross-check of both engines, built-in graph suite
//	timing/   benchmark harness, prometheus recorder, CSV sample log
//	builder/  graph families (path, cycle, star, grid, random, …)
//	graphio/  JSON graph documents
//	config/   YAML benchmark configuration
//
// Quick example (path 0─1─2):
//
//	A        A²       reach
//	0 1 0    1 0 1    1 1 1
//	1 0 1    0 2 0    1 1 1
//	0 1 0    1 0 1    1 1 1
//
// The matrix engine costs O(n⁴); BFS from every node costs O(n·(n+m)).
// The reachlab command (cmd/reachlab) prints matrices, validates documents
// and times both engines:
//
//	go install github.com/katalvlaran/reachlab/cmd/reachlab@latest
package reachlab
