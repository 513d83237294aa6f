package maze

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stroll/bfs"
	"github.com/katalvlaran/stroll/dfs"
)

// SolveBFS searches the maze breadth-first and returns the hop-minimal
// start→exit path. Returns ErrNoPath if the exit is unreachable.
func (m *Maze) SolveBFS(ctx context.Context) (*Solution, error) {
	res, err := bfs.BFS(m.Graph(), m.start.ID(), bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("maze: bfs: %w", err)
	}

	return m.solution(res.Order, func(dest string) ([]string, error) {
		return res.PathTo(dest)
	})
}

// SolveDFS searches the maze depth-first and returns the branch that
// reached the exit. Returns ErrNoPath if the exit is unreachable.
func (m *Maze) SolveDFS(ctx context.Context) (*Solution, error) {
	res, err := dfs.DFS(m.Graph(), m.start.ID(), dfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("maze: dfs: %w", err)
	}

	return m.solution(res.Order, func(dest string) ([]string, error) {
		return res.PathTo(dest)
	})
}

// solution converts an engine result into cells. VisitedCount is the
// position of the exit in the deterministic visit order: exactly the
// number of cells a search halting at the exit would have entered.
func (m *Maze) solution(order []string, pathTo func(string) ([]string, error)) (*Solution, error) {
	exitID := m.exit.ID()

	count := 0
	for i, id := range order {
		if id == exitID {
			count = i + 1
			break
		}
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: exit %s", ErrNoPath, m.exit)
	}

	ids, err := pathTo(exitID)
	if err != nil {
		return nil, fmt.Errorf("%w: exit %s", ErrNoPath, m.exit)
	}
	path := make([]Cell, len(ids))
	for i, id := range ids {
		c, err := parseID(id)
		if err != nil {
			return nil, err
		}
		path[i] = c
	}

	return &Solution{Path: path, VisitedCount: count}, nil
}
