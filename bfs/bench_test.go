package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/reachlab/bfs"
	"github.com/katalvlaran/reachlab/core"
	"github.com/katalvlaran/reachlab/matrix"
)

// BenchmarkReachability_Path measures all-sources BFS on paths.
func BenchmarkReachability_Path(b *testing.B) {
	for _, n := range []int{8, 32, 128} {
		edges := make([]core.Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, core.Edge{From: i - 1, To: i})
		}
		a, err := matrix.FromEdges(n, edges)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = bfs.Reachability(a)
			}
		})
	}
}
