// Package bfs provides breadth-first traversal over a graph.Graph,
// returning unweighted shortest-path distances, parent links, and visit
// order, while streaming trace.Steps for the animated views.
//
// BFS explores nodes in increasing distance from a start node. A node is
// marked visited at the moment it is enqueued, never when dequeued, so a
// node reachable over several paths enters the frontier exactly once.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/stroll/graph"
	"github.com/katalvlaran/stroll/trace"
)

// queueItem pairs a node ID with its BFS depth and its parent's ID.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph  *graph.Graph
	opts   Options
	queue  []queueItem
	marked []string // visited IDs in marking order, for snapshots
	seen   map[string]bool
	res    *Result
}

// BFS runs breadth-first traversal on g starting from startID, applying
// any number of functional Options. Returns ErrGraphNil or
// ErrStartNotFound for invalid input, ErrOptionViolation for bad
// options, or any user-supplied hook error.
func BFS(g *graph.Graph, startID string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return run(g, startID, o)
}

// run executes BFS with fully-resolved options. Stream reuses this entry
// point so option handling lives in exactly one place.
func run(g *graph.Graph, startID string, o Options) (*Result, error) {
	// 1. Validate input and options.
	if g == nil {
		return nil, ErrGraphNil
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, startID)
	}

	// 2. Prepare walker with capacity hints.
	n := g.VertexCount()
	w := &walker{
		graph:  g,
		opts:   o,
		queue:  make([]queueItem, 0, n),
		marked: make([]string, 0, n),
		seen:   make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// 3. Seed the frontier with the start node and walk.
	w.emit(trace.Step{Kind: trace.StepStart, Node: startID, Depth: 0})
	w.enqueue(startID, 0, "")
	if err := w.loop(); err != nil {
		return nil, err
	}
	w.emit(trace.Step{Kind: trace.StepDone, Depth: -1})

	return w.res, nil
}

// emit forwards a step to the observer, attaching frontier and visited
// snapshots. No-op without an observer, so plain runs pay nothing.
func (w *walker) emit(s trace.Step) {
	if w.opts.Observer == nil {
		return
	}
	s.Frontier = w.frontierIDs()
	s.Visited = trace.Snapshot(w.marked)
	w.opts.Observer(s)
}

// frontierIDs snapshots the queue contents, earliest-out first.
func (w *walker) frontierIDs() []string {
	out := make([]string, len(w.queue))
	for i, item := range w.queue {
		out[i] = item.id
	}

	return out
}

// enqueue marks id visited at depth d, records its parent, calls
// OnEnqueue, and adds it to the queue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.seen[id] = true
	w.marked = append(w.marked, id)
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
	w.emit(trace.Step{Kind: trace.StepEnqueue, Node: id, Depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)
	w.emit(trace.Step{Kind: trace.StepDequeue, Node: item.id, Depth: item.depth})

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	w.emit(trace.Step{Kind: trace.StepVisit, Node: item.id, Depth: item.depth})
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors walks item's adjacency in definition order, applies
// filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		// cancellation check inside neighbor iteration
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		if w.seen[nbr] {
			w.emit(trace.Step{
				Kind:  trace.StepSkip,
				Node:  nbr,
				Depth: w.res.Depth[nbr],
				Note:  fmt.Sprintf("%s was discovered earlier", nbr),
			})
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
	}

	return nil
}
