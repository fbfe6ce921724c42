// Package validate cross-checks the matrix-power and BFS reachability
// engines. Graph runs both on the same graph and compares the results
// entrywise; any differing cell is a mismatch and is reported without
// preferring either engine.
package validate
