package bfs_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/reachlab/bfs"
	"github.com/katalvlaran/reachlab/core"
	"github.com/katalvlaran/reachlab/matrix"
)

// TestReachability_Shapes covers small orders and disjoint paths.
func TestReachability_Shapes(t *testing.T) {
	cases := []struct {
		name string
		g    *core.Graph
		want [][]int64
	}{
		{"empty", core.MustGraph(0), [][]int64{}},
		{"single", core.MustGraph(1), [][]int64{{0}}},
		{"edge", core.MustGraph(2, e(0, 1)), [][]int64{{0, 1}, {1, 0}}},
		{"path4", core.MustGraph(4, e(0, 1), e(1, 2), e(2, 3)), [][]int64{
			{1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1}, {1, 1, 1, 1},
		}},
		{"two P3", core.MustGraph(6, e(0, 1), e(1, 2), e(3, 4), e(4, 5)), [][]int64{
			{1, 1, 1, 0, 0, 0},
			{1, 1, 1, 0, 0, 0},
			{1, 1, 1, 0, 0, 0},
			{0, 0, 0, 1, 1, 1},
			{0, 0, 0, 1, 1, 1},
			{0, 0, 0, 1, 1, 1},
		}},
		{"isolated", core.MustGraph(3, e(0, 1)), [][]int64{{1, 1, 0}, {1, 1, 0}, {0, 0, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bfs.FromGraph(tc.g)
			if err != nil {
				t.Fatal(err)
			}
			if rows := got.ToRows(); !reflect.DeepEqual(rows, tc.want) {
				t.Errorf("got\n%swant %v", got, tc.want)
			}
		})
	}
}

// TestReachability_Idempotent runs twice on the same matrix.
func TestReachability_Idempotent(t *testing.T) {
	a, _ := matrix.FromEdges(5, []core.Edge{e(0, 3), e(3, 4), e(1, 2)})
	before := a.Clone()
	r1, err := bfs.Reachability(a)
	if err != nil {
		t.Fatal(err)
	}
	r2, _ := bfs.Reachability(a)
	if !r1.Equal(r2) {
		t.Errorf("results differ:\n%s\n%s", r1, r2)
	}
	if !a.Equal(before) {
		t.Error("input matrix was modified")
	}
}

// TestComponents orders components by smallest member.
func TestComponents(t *testing.T) {
	a, _ := matrix.FromEdges(7, []core.Edge{e(5, 1), e(1, 3), e(0, 6), e(2, 4)})
	comps, err := bfs.Components(a)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]int{{0, 6}, {1, 3, 5}, {2, 4}}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("Components = %v; want %v", comps, want)
	}
	ok, _ := bfs.IsConnected(a)
	if ok {
		t.Error("IsConnected = true; want false")
	}

	for _, n := range []int{0, 1} {
		empty, _ := matrix.NewSquare(n)
		ok, err := bfs.IsConnected(empty)
		if err != nil || !ok {
			t.Errorf("n=%d: IsConnected = %v, %v; want true", n, ok, err)
		}
	}
}

// TestEngine exposes the harness adapter.
func TestEngine(t *testing.T) {
	var eng bfs.Engine
	if eng.Name() != "bfs" {
		t.Errorf("Name = %q", eng.Name())
	}
	r, err := eng.Reachability(core.MustGraph(3, e(0, 1), e(1, 2)))
	if err != nil {
		t.Fatal(err)
	}
	if r.CountNonZero() != 9 {
		t.Errorf("CountNonZero = %d; want 9", r.CountNonZero())
	}
}
