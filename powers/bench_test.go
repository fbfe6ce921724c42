package powers_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/reachlab/matrix"
	"github.com/katalvlaran/reachlab/powers"
)

// BenchmarkReachability_Path measures the O(n⁴) union on paths of growing size.
func BenchmarkReachability_Path(b *testing.B) {
	for _, n := range []int{8, 16, 32} {
		a, err := matrix.Adjacency(path(n))
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = powers.Reachability(a)
			}
		})
	}
}
