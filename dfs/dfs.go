// Package dfs implements depth-first traversal on a graph.Graph:
// recursive pre-order descent with cancellation, pre-/post-order hooks,
// depth limiting, neighbor filtering, and trace.Step observation.
//
// The walk emits a node the moment it is entered, marks it visited, then
// descends into each unvisited neighbor in adjacency order, so the
// visit sequence is the classic left-to-right pre-order for the given
// definition. Recursion depth is bounded by the graph's longest simple
// path, which is fine at the interactive scale this tool targets.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/stroll/graph"
	"github.com/katalvlaran/stroll/trace"
)

// walker encapsulates mutable DFS state.
type walker struct {
	graph  *graph.Graph
	opts   Options
	stack  []string // current recursion path, root first
	marked []string // visited IDs in marking order, for snapshots
	seen   map[string]bool
	res    *Result
}

// DFS performs depth-first traversal on g starting from startID,
// applying any number of functional Options. Returns ErrGraphNil or
// ErrStartNotFound for invalid input, ErrOptionViolation for bad
// options, or any user-supplied hook error.
func DFS(g *graph.Graph, startID string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return run(g, startID, o)
}

// run executes DFS with fully-resolved options. Stream reuses this entry
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
		stack:  make([]string, 0, n),
		marked: make([]string, 0, n),
		seen:   make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// 3. Descend.
	w.emit(trace.Step{Kind: trace.StepStart, Node: startID, Depth: 0})
	if err := w.traverse(startID, 0, ""); err != nil {
		return nil, err
	}
	w.emit(trace.Step{Kind: trace.StepDone, Depth: -1})

	return w.res, nil
}

// emit forwards a step to the observer, attaching the recursion path as
// the frontier and the visited snapshot. No-op without an observer.
func (w *walker) emit(s trace.Step) {
	if w.opts.Observer == nil {
		return
	}
	s.Frontier = trace.Snapshot(w.stack)
	s.Visited = trace.Snapshot(w.marked)
	w.opts.Observer(s)
}

// traverse visits id at the given depth, then recurses into unvisited
// neighbors in adjacency order. Honors context cancellation, depth
// limit, hooks, and filtering.
func (w *walker) traverse(id string, depth int, parent string) error {
	// 1. Cancellation check.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited on entry (pre-order) and record the emission.
	w.seen[id] = true
	w.marked = append(w.marked, id)
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.stack = append(w.stack, id)
	w.res.Order = append(w.res.Order, id)
	w.emit(trace.Step{Kind: trace.StepVisit, Node: id, Depth: depth})

	// 3. Pre-order hook.
	if err := w.opts.OnVisit(id, depth); err != nil {
		return fmt.Errorf("dfs: OnVisit error at %q: %w", id, err)
	}

	// 4. Descend into neighbors unless the depth limit forbids it.
	if w.opts.MaxDepth == 0 || depth < w.opts.MaxDepth {
		if err := w.descend(id, depth); err != nil {
			return err
		}
	}

	// 5. Post-order hook and backtrack.
	w.opts.OnExit(id, depth)
	w.stack = w.stack[:len(w.stack)-1]
	w.emit(trace.Step{Kind: trace.StepBacktrack, Node: id, Depth: depth})

	return nil
}

// descend walks id's adjacency in definition order, recursing into each
// unseen neighbor and reporting seen ones as skip steps.
func (w *walker) descend(id string, depth int) error {
	neighbors, err := w.graph.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	for _, nbr := range neighbors {
		// cancellation check inside neighbor iteration
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		if !w.opts.FilterNeighbor(id, nbr) {
			continue
		}
		if w.seen[nbr] {
			w.emit(trace.Step{
				Kind:  trace.StepSkip,
				Node:  nbr,
				Depth: w.res.Depth[nbr],
				Note:  fmt.Sprintf("%s was visited earlier", nbr),
			})
			continue
		}
		if err := w.traverse(nbr, depth+1, id); err != nil {
			return err
		}
	}

	return nil
}
