// Package dfs implements depth-first traversal and cycle detection on a
// graph.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking, emitting each node in pre-order. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - trace.Step observation (visit, skip, backtrack) with recursion
//     path and visited-set snapshots for the animated views
//   - Stream: the same walk as a lazy iter.Seq2, pulled one step per
//     animation tick.
//   - HasCycle: reports the first directed cycle using vertex coloring
//     (White, Gray, Black) with back-edge detection.
//
// Why:
//
//   - Show branch-at-a-time exploration next to BFS's level-at-a-time;
//     the contrast is the lesson.
//   - Pre-order matches what a hand-run of the algorithm on paper
//     produces for a given adjacency order.
//
// Invariant:
//
//	A node is marked visited at the moment it is ENTERED. Neighbors
//	already marked are reported as skips, never re-entered, so every
//	reachable node appears in Order exactly once.
//
// Recursion:
//
//	The descent is genuinely recursive, as the algorithm is usually
//	taught. The stack is bounded by the longest simple path, which at
//	interactive graph sizes is no concern.
//
// Complexity:
//
//   - DFS:      Time O(V+E), Memory O(V)
//   - HasCycle: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - ErrStartNotFound   start node not in graph
//   - ErrOptionViolation invalid Option (e.g. negative MaxDepth)
//   - context.Canceled   walk canceled via context
//   - hook errors        propagated from OnVisit
package dfs
