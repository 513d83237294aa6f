// Cycle detection via the same three-color depth-first descent the
// traversal uses: a Gray→Gray back edge closes a cycle. The structure
// view uses this to annotate the loaded graph.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/stroll/graph"
)

// HasCycle inspects g for directed cycles. It returns the first cycle
// found as a closed node sequence [v0 v1 ... v0], walking vertices and
// neighbors in definition order, so the answer is deterministic for a
// given definition. A cycle-free graph returns (false, nil, nil).
func HasCycle(g *graph.Graph) (bool, []string, error) {
	if g == nil {
		return false, nil, ErrGraphNil
	}

	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	path := make([]string, 0, len(verts))

	for _, v := range verts {
		if state[v] != White {
			continue
		}
		cycle, err := cycleVisit(g, v, state, &path)
		if err != nil {
			return false, nil, fmt.Errorf("dfs: HasCycle: %w", err)
		}
		if cycle != nil {
			return true, cycle, nil
		}
	}

	return false, nil, nil
}

// cycleVisit runs recursive DFS from id. It returns the closed cycle the
// first Gray→Gray back edge produces, or nil when the subtree is clean.
func cycleVisit(g *graph.Graph, id string, state map[string]int, path *[]string) ([]string, error) {
	state[id] = Gray
	*path = append(*path, id)

	neighbors, err := g.NeighborIDs(id)
	if err != nil {
		return nil, err
	}
	for _, nbr := range neighbors {
		switch state[nbr] {
		case White:
			cycle, err := cycleVisit(g, nbr, state, path)
			if err != nil || cycle != nil {
				return cycle, err
			}
		case Gray:
			// back edge: the cycle is the path suffix from nbr, closed
			for i, v := range *path {
				if v == nbr {
					cycle := append([]string(nil), (*path)[i:]...)
					return append(cycle, nbr), nil
				}
			}
		}
	}

	*path = (*path)[:len(*path)-1]
	state[id] = Black

	return nil, nil
}
