// Package maze defines core types and sentinel errors for the maze
// subpackage of github.com/katalvlaran/stroll.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for maze construction and solving.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")

	// ErrBlockedCell indicates start or exit is out of bounds or a wall.
	ErrBlockedCell = errors.New("maze: start and exit must be open in-bounds cells")

	// ErrNoPath indicates the exit is unreachable from the start.
	ErrNoPath = errors.New("maze: no path from start to exit")
)

// Wall and Open are the two cell values a maze grid may contain.
const (
	Open = 0
	Wall = 1
)

// Cell addresses one maze cell by row and column.
type Cell struct {
	Row, Col int
}

// ID returns the node identifier used when the maze is viewed as a
// graph, e.g. "2_1" for row 2, column 1.
func (c Cell) ID() string {
	return fmt.Sprintf("%d_%d", c.Row, c.Col)
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// parseID inverts Cell.ID. The maze only feeds itself IDs it generated,
// so a malformed ID is a programming error surfaced as one.
func parseID(id string) (Cell, error) {
	var c Cell
	if _, err := fmt.Sscanf(id, "%d_%d", &c.Row, &c.Col); err != nil {
		return Cell{}, fmt.Errorf("maze: malformed cell ID %q: %w", id, err)
	}

	return c, nil
}

// Solution is the outcome of one maze search.
type Solution struct {
	// Path is the start→exit route the search produced. For BFS it is
	// hop-minimal; for DFS it is the branch the descent took.
	Path []Cell

	// VisitedCount is the number of cells the search visited before (and
	// including) reaching the exit: the comparison number the BFS-vs-DFS
	// race is about.
	VisitedCount int
}
