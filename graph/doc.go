// Package graph provides the ordered adjacency-list structure that the
// traversal engines and the interactive views walk over.
//
// What:
//
//   - Graph: directed adjacency list that remembers insertion order, so
//     traversals are fully deterministic for a given definition.
//   - AddVertex / AddEdge build the structure; AddEdge auto-creates its
//     endpoints, matching how adjacency definitions read on paper.
//   - Vertices and NeighborIDs return copies in definition order; the
//     engines never see (or need) mutable internals.
//   - Validate checks referential integrity before a run starts.
//   - Default returns the six-node demonstration graph used when no
//     definition file is supplied.
//
// Why:
//
//   - An interactive walkthrough is only teachable if the same input
//     produces the same animation every time; Go's randomized map
//     iteration makes a bare map[string][]string unusable here.
//   - The structure is built once at startup and read-only afterwards,
//     so no locking is required (single menu loop, single traversal at
//     a time).
//
// Errors:
//
//   - ErrEmptyVertexID: empty string used as a vertex ID.
//   - ErrVertexNotFound: neighbor lookup for an unknown vertex.
//   - ErrDuplicateEdge: the same from→to edge added twice.
//   - ErrDanglingNeighbor: Validate found a neighbor with no vertex entry.
package graph
