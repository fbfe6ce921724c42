// Package bfs - the single-source walker.
package bfs

import "fmt"

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	node  int
	depth int
}

// walker encapsulates mutable BFS state for one source.
type walker struct {
	adj   *List
	opts  *Options
	queue []queueItem
	res   *Result
}

// Reachable runs breadth-first search on adj from start.
// Returns ErrListNil, ErrStartOutOfRange, or any user-supplied hook error.
func Reachable(adj *List, start int, opts ...Option) (*Result, error) {
	if adj == nil {
		return nil, ErrListNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return reachable(adj, start, &o)
}

func reachable(adj *List, start int, o *Options) (*Result, error) {
	n := adj.Len()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("bfs: start=%d, n=%d: %w", start, n, ErrStartOutOfRange)
	}

	w := &walker{
		adj:   adj,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks node visited at depth d, records its parent, calls
// OnEnqueue and appends it to the queue.
func (w *walker) enqueue(node, d, parent int) {
	w.res.Depth[node] = d
	w.res.Parent[node] = parent
	w.opts.OnEnqueue(node, d)
	w.queue = append(w.queue, queueItem{node: node, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.node, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.node)
	if err := w.opts.OnVisit(item.node, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit(%d): %w", item.node, err)
	}

	return nil
}

// enqueueNeighbors discovers unvisited neighbors and notes edges closing a
// walk back into the source within n-1 steps.
func (w *walker) enqueueNeighbors(item queueItem) {
	limit := w.adj.Len() - 1
	for _, v := range w.adj.Neighbors(item.node) {
		if v == w.res.Start && item.depth+1 <= limit {
			w.res.SelfReachable = true
		}
		if w.res.Depth[v] >= 0 {
			continue
		}
		w.enqueue(v, item.depth+1, item.node)
	}
}
