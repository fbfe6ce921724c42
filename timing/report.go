package timing

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/katalvlaran/reachlab/bfs"
	"github.com/katalvlaran/reachlab/powers"
)

// Speedup compares the two engines on one graph.
type Speedup struct {
	Family string
	N      int
	Edges  int
	Matrix time.Duration
	BFS    time.Duration
	// Ratio is Matrix/BFS; 0 when BFS took no measurable time.
	Ratio float64
}

type sizeKey struct {
	family string
	n      int
}

// Speedups pairs matrix and bfs samples by (family, n) in order of first
// appearance. Sizes missing either engine are skipped.
func Speedups(samples []Sample) []Speedup {
	var order []sizeKey
	byKey := make(map[sizeKey]*Speedup)
	seen := make(map[sizeKey][2]bool)
	for _, s := range samples {
		k := sizeKey{family: s.Family, n: s.N}
		sp, ok := byKey[k]
		if !ok {
			sp = &Speedup{Family: s.Family, N: s.N, Edges: s.Edges}
			byKey[k] = sp
			order = append(order, k)
		}
		flags := seen[k]
		switch s.Engine {
		case powers.EngineName:
			sp.Matrix = s.Elapsed
			flags[0] = true
		case bfs.EngineName:
			sp.BFS = s.Elapsed
			flags[1] = true
		}
		seen[k] = flags
	}

	out := make([]Speedup, 0, len(order))
	for _, k := range order {
		if f := seen[k]; !f[0] || !f[1] {
			continue
		}
		sp := *byKey[k]
		if sp.BFS > 0 {
			sp.Ratio = float64(sp.Matrix) / float64(sp.BFS)
		}
		out = append(out, sp)
	}

	return out
}

// CSVHeader is the first record written by WriteCSV.
var CSVHeader = []string{"family", "n", "edges", "engine", "seconds"}

// WriteCSV writes one record per sample after CSVHeader.
func WriteCSV(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("timing: csv header: %w", err)
	}
	for _, s := range samples {
		rec := []string{
			s.Family,
			strconv.Itoa(s.N),
			strconv.Itoa(s.Edges),
			s.Engine,
			strconv.FormatFloat(s.Seconds(), 'f', 9, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("timing: csv record: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("timing: csv flush: %w", err)
	}

	return nil
}
