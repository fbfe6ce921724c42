// Package bfs - options, sentinel errors and result types.
package bfs

import (
	"errors"
	"fmt"
)

// EngineName identifies this engine in timing samples and reports.
const EngineName = "bfs"

// Sentinel errors for BFS execution.
var (
	// ErrStartOutOfRange is returned when the start node is not in [0, n).
	ErrStartOutOfRange = errors.New("bfs: start node out of range")

	// ErrListNil is returned if a nil adjacency list is passed.
	ErrListNil = errors.New("bfs: adjacency list is nil")

	// ErrUnreachable is returned by PathTo for a node the search never reached.
	ErrUnreachable = errors.New("bfs: node not reached")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks invoked while walking.
type Options struct {
	// OnEnqueue is called when a node is discovered, with its depth.
	OnEnqueue func(node, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(node, depth int)

	// OnVisit is called when visiting a node. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(node, depth int) error
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(int, int) {},
		OnDequeue: func(int, int) {},
		OnVisit:   func(int, int) error { return nil },
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of one single-source traversal.
type Result struct {
	Start         int
	Order         []int
	Depth         []int
	Parent        []int
	SelfReachable bool
}

// Reached reports whether v was visited. Out-of-range v is never reached.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

// PathTo reconstructs the shortest path from Start to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: PathTo(%d): %w", dest, ErrUnreachable)
	}
	path := make([]int, 0, r.Depth[dest]+1)
	for cur := dest; cur >= 0; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
