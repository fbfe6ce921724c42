// Command reachlab computes all-pairs reachability of undirected graphs two
// ways, by matrix powers and by BFS, checks that they agree and times them.
//
// Usage:
//
//	reachlab [--log-level L] [--log-format F] <command> [args]
//
// Commands:
//
//	reach       print the reachability matrix of a graph document
//	powers      print A¹…A^k walk counts and per-length pair counts
//	validate    cross-check both engines on documents or the default suite
//	components  list connected components
//	bench       time both engines over graph families
//	generate    write a sample graph document
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
