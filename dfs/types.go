// Package dfs defines types and options for depth-first traversal:
// cancellation, pre-/post-order hooks, depth limiting, neighbor
// filtering, and step observation for the animated views.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/stroll/trace"
)

// VertexState represents the DFS visitation state of a node.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the recursion stack (visiting).
	Black        // Black: the node and all its descendants are explored.
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed to DFS
	// or HasCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that the start node does not exist in
	// the graph. The interactive loop reports it and stays up.
	ErrStartNotFound = errors.New("dfs: node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked upon entering a node (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a node
	// have been explored (post-order), just before backtracking.
	OnExit func(id string, depth int)

	// Observer, if non-nil, receives every trace.Step the walk produces.
	Observer trace.Observer

	// MaxDepth, if > 0, stops descending beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no depth limit, no filtering, no-op hooks, no observer.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		OnExit:         func(string, int) {},
		Observer:       nil,
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook; returning an error from this
// callback stops the walk.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnExit registers a post-order hook, fired while backtracking.
func WithOnExit(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExit = fn
		}
	}
}

// WithObserver streams every trace.Step of the walk to obs.
func WithObserver(obs trace.Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// WithMaxDepth stops the descent beyond the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a depth-first walk:
//   - Order: nodes in pre-order visit sequence (emitted on entry).
//   - Depth: map from node ID to its recursion depth from the start.
//   - Parent: map from node ID to the node that descended into it.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the DFS-tree path from the start node to dest.
// Unlike its BFS counterpart it is not hop-minimal; it reflects the
// branch the descent actually took. Returns an error if dest was not
// reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("dfs: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
