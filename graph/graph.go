// Package graph: ordered adjacency-list implementation.
//
// This file declares Graph, its sentinel errors, the New constructor,
// and all accessors. Mutation is expected to finish before the first
// traversal starts; accessors hand out copies so a caller cannot bend
// adjacency order after the fact.
package graph

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyVertexID indicates an empty string was used as a vertex ID.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrDuplicateEdge indicates the same from→to edge was added twice.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrDanglingNeighbor indicates an adjacency entry references a
	// neighbor that was never declared as a vertex.
	ErrDanglingNeighbor = errors.New("graph: neighbor has no vertex entry")
)

// Graph is a directed adjacency list with stable iteration order.
// Vertices iterate in insertion order; neighbors iterate in edge-insertion
// order. The zero value is not usable; call New.
type Graph struct {
	order []string            // vertex IDs, insertion order
	adj   map[string][]string // vertex ID → neighbor IDs, edge order
}

// New returns an empty Graph ready for AddVertex / AddEdge calls.
func New() *Graph {
	return &Graph{
		order: make([]string, 0),
		adj:   make(map[string][]string),
	}
}

// AddVertex declares id as a vertex. Re-adding an existing vertex is a
// no-op, so definitions may list a vertex before or after its edges.
// Returns ErrEmptyVertexID for the empty string.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.adj[id]; ok {
		return nil
	}
	g.order = append(g.order, id)
	g.adj[id] = nil

	return nil
}

// AddEdge records the directed edge from→to, auto-creating either
// endpoint that does not exist yet. Returns ErrEmptyVertexID if either
// ID is empty, or ErrDuplicateEdge if the exact edge already exists.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}
	for _, nbr := range g.adj[from] {
		if nbr == to {
			return fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, from, to)
		}
	}
	g.adj[from] = append(g.adj[from], to)

	return nil
}

// Entry is one line of a graph definition: a vertex and its neighbor
// list in definition order.
type Entry struct {
	ID        string
	Neighbors []string
}

// FromDefinition builds a Graph from explicit definition entries,
// recording neighbor lists verbatim. Unlike AddEdge it does NOT
// auto-create neighbors: a neighbor that never appears as an entry of
// its own is a malformed definition, surfaced by the Validate call at
// the end. This mirrors how a written-out adjacency mapping reads: every
// node is expected to have its own line, even leaves.
func FromDefinition(entries []Entry) (*Graph, error) {
	g := New()
	// 1. Declare all vertices first, preserving definition order.
	for _, e := range entries {
		if err := g.AddVertex(e.ID); err != nil {
			return nil, err
		}
	}
	// 2. Record adjacency verbatim.
	for _, e := range entries {
		for _, nbr := range e.Neighbors {
			if nbr == "" {
				return nil, ErrEmptyVertexID
			}
			for _, seen := range g.adj[e.ID] {
				if seen == nbr {
					return nil, fmt.Errorf("%w: %s→%s", ErrDuplicateEdge, e.ID, nbr)
				}
			}
			g.adj[e.ID] = append(g.adj[e.ID], nbr)
		}
	}
	// 3. Fail fast on dangling neighbors.
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return g, nil
}

// HasVertex reports whether id exists in the graph.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]
	return ok
}

// Vertices returns all vertex IDs in insertion order. The slice is a copy.
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NeighborIDs returns the neighbors of id in edge-insertion order.
// The slice is a copy. Returns ErrVertexNotFound for unknown IDs.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.order) }

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int {
	var n int
	for _, nbrs := range g.adj {
		n += len(nbrs)
	}

	return n
}

// Clone returns a deep copy of g. The copy shares nothing with the
// original, so it may be mutated freely.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		order: make([]string, len(g.order)),
		adj:   make(map[string][]string, len(g.adj)),
	}
	copy(c.order, g.order)
	for id, nbrs := range g.adj {
		if nbrs == nil {
			c.adj[id] = nil
			continue
		}
		dup := make([]string, len(nbrs))
		copy(dup, nbrs)
		c.adj[id] = dup
	}

	return c
}

// Validate checks referential integrity: every neighbor referenced in an
// adjacency list must exist as a vertex. A malformed definition is a
// source-edit-time mistake, so callers are expected to treat a failure
// here as fatal at startup. Returns the first violation wrapped around
// ErrDanglingNeighbor, or nil.
func (g *Graph) Validate() error {
	for _, id := range g.order {
		for _, nbr := range g.adj[id] {
			if _, ok := g.adj[nbr]; !ok {
				return fmt.Errorf("%w: %q listed under %q", ErrDanglingNeighbor, nbr, id)
			}
		}
	}

	return nil
}

// String renders the adjacency list in definition order, one vertex per
// line, in the form "A → [B C]". Used by the structure view and the
// graph subcommand.
func (g *Graph) String() string {
	var b strings.Builder
	for _, id := range g.order {
		fmt.Fprintf(&b, "%s → %v\n", id, g.adj[id])
	}

	return b.String()
}

// Default returns the six-node demonstration graph:
//
//	    A
//	   / \
//	  B   C
//	 / \   \
//	D   E───F
//
// Edges: A→B, A→C, B→D, B→E, C→F, E→F. Used whenever no graph
// definition file is supplied.
func Default() *Graph {
	g := New()
	for _, e := range [][2]string{
		{"A", "B"}, {"A", "C"},
		{"B", "D"}, {"B", "E"},
		{"C", "F"},
		{"E", "F"},
	} {
		// Default edges are distinct by construction; AddEdge cannot fail.
		_ = g.AddEdge(e[0], e[1])
	}

	return g
}
