// Package timing measures the reachability engines on growing graphs of a
// named family.
//
// For every requested size the harness builds the graph once (untimed),
// then runs each engine in turn. One timed region covers exactly one engine
// call, adjacency construction included, so engines never interleave and
// graph generation never counts. With repetitions r > 1 a Sample reports
// the mean of r calls.
//
// Results are plain Samples; Speedups derives the matrix/BFS ratio per size
// and WriteCSV dumps the log. A Recorder mirrors every Sample into
// prometheus collectors on a caller-supplied registry.
package timing
