// Package bfs provides breadth-first traversal over a graph.Graph,
// returning unweighted shortest-path distances, parent links, and visit
// order, and optionally streaming every intermediate state for display.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - WithObserver streams trace.Steps (enqueue, dequeue, visit, skip)
//     with frontier and visited-set snapshots, which is what the animated
//     terminal views replay.
//   - Stream wraps the same walk as a lazy iter.Seq2 for pull-based
//     consumption (one step per animation tick).
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0), and
//     neighbor filtering via WithFilterNeighbor.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - Show level-by-level discovery: the frontier picture is the whole
//     point of a teaching walkthrough.
//
// Determinism
//
//	graph.Graph returns neighbors in definition order and BFS enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Invariant
//
//	A node is marked visited at the moment it is ENQUEUED, never when it
//	is later dequeued. A node reachable over several paths therefore
//	enters the frontier exactly once.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (queue, Depth map, Parent map, visited set)
//
// Usage
//
//	// Basic BFS with no options:
//	result, err := bfs.BFS(g, "A")
//
//	// Streaming for animation:
//	for step, err := range bfs.Stream(g, "A") {
//	    if err != nil { ... }
//	    fmt.Print(step)
//	}
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrStartNotFound   if the start node does not exist.
//   - ErrOptionViolation if an invalid Option was supplied (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
