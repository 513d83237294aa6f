// Package stroll is an animated walkthrough of graph traversal: watch
// BFS and DFS explore a small in-memory graph one step at a time, with
// the current node, the frontier, and the visited set on screen at every
// step.
//
// What is in the box:
//
//   - graph: ordered adjacency-list structure; insertion order is the
//     traversal order, so every run is deterministic.
//   - bfs, dfs: the traversal engines, with hooks, lazy step streams,
//     depth limits, and cancellation.
//   - trace: the step events the engines emit and their screen rendering.
//   - maze: a grid-as-graph mode that races both engines to an exit.
//   - config: YAML definitions for custom graphs, mazes, and timing.
//   - tui: the interactive full-screen menu built on Bubble Tea.
//   - cmd/stroll: the binary; run it bare for the menu, or use the run,
//     graph, and maze subcommands for plain terminal output.
//
// Quick start:
//
//	g := graph.Default()
//	res, err := bfs.BFS(g, "A")
//	// res.Order is [A B C D E F]
//
// Or interactively:
//
//	$ stroll
//
// Everything is synchronous and single-user; the engines hold no global
// state and a Graph is safe for concurrent reads once built.
package stroll
