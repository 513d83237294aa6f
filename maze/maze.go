// Package maze treats a small 2D grid of open and wall cells as a graph,
// so the same traversal engines that animate the adjacency-list demo can
// race each other to a maze exit.
//
// What:
//
//   - Maze wraps a rectangular [][]int grid (0 open, 1 wall) plus fixed
//     start and exit cells; it is immutable once built.
//   - Graph converts the open cells to a graph.Graph with 4-directional
//     connectivity, row-major, neighbors ordered up, down, left, right.
//   - SolveBFS / SolveDFS run the traversal engines over that graph and
//     reconstruct the start→exit path.
//   - Render draws the grid with the found path for terminal display.
//
// Why:
//
//   - The BFS-vs-DFS contrast is sharpest on a maze: the hop-minimal
//     path versus the first branch that happens to reach the exit.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed grid input.
//   - ErrBlockedCell: start or exit out of bounds or on a wall.
//   - ErrNoPath: the exit is unreachable.
package maze

import (
	"strings"

	"github.com/katalvlaran/stroll/graph"
)

// neighborOffsets is the fixed 4-connectivity order: up, down, left,
// right. The order decides DFS's branch preference, so it is part of
// observable behavior.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Maze is an immutable grid with fixed start and exit cells.
type Maze struct {
	cells  [][]int
	height int
	width  int
	start  Cell
	exit   Cell
}

// New constructs a Maze from a non-empty rectangular grid, deep-copying
// the input. Returns ErrEmptyGrid, ErrNonRectangular, or ErrBlockedCell
// for invalid input.
func New(cells [][]int, start, exit Cell) (*Maze, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	dup := make([][]int, h)
	for r := 0; r < h; r++ {
		dup[r] = make([]int, w)
		copy(dup[r], cells[r])
	}
	m := &Maze{cells: dup, height: h, width: w, start: start, exit: exit}
	if !m.open(start) || !m.open(exit) {
		return nil, ErrBlockedCell
	}

	return m, nil
}

// Default returns the demonstration maze: a 3×3 grid with a single
// center wall, start top-left, exit bottom-right.
func Default() *Maze {
	m, err := New([][]int{
		{Open, Open, Open},
		{Open, Wall, Open},
		{Open, Open, Open},
	}, Cell{0, 0}, Cell{2, 2})
	if err != nil {
		// the literal above is well-formed; reaching here is a bug
		panic(err)
	}

	return m
}

// Start returns the entry cell.
func (m *Maze) Start() Cell { return m.start }

// Exit returns the goal cell.
func (m *Maze) Exit() Cell { return m.exit }

// Size returns (height, width).
func (m *Maze) Size() (int, int) { return m.height, m.width }

// open reports whether c is in bounds and not a wall.
func (m *Maze) open(c Cell) bool {
	return c.Row >= 0 && c.Row < m.height &&
		c.Col >= 0 && c.Col < m.width &&
		m.cells[c.Row][c.Col] == Open
}

// Graph converts the open cells to a graph.Graph. Cells appear in
// row-major order; each cell's neighbors follow neighborOffsets order.
// The conversion cannot produce dangling neighbors, so the result always
// validates.
func (m *Maze) Graph() *graph.Graph {
	g := graph.New()
	for r := 0; r < m.height; r++ {
		for c := 0; c < m.width; c++ {
			cell := Cell{r, c}
			if !m.open(cell) {
				continue
			}
			// declare in row-major order even for isolated cells
			_ = g.AddVertex(cell.ID())
			for _, off := range neighborOffsets {
				nbr := Cell{r + off[0], c + off[1]}
				if m.open(nbr) {
					_ = g.AddEdge(cell.ID(), nbr.ID())
				}
			}
		}
	}

	return g
}

// Render draws the maze, marking walls '#', open cells '.', the start
// 'S', the exit 'E', and the given path cells '*'.
func (m *Maze) Render(path []Cell) string {
	onPath := make(map[Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	var b strings.Builder
	for r := 0; r < m.height; r++ {
		for c := 0; c < m.width; c++ {
			cell := Cell{r, c}
			switch {
			case cell == m.start:
				b.WriteByte('S')
			case cell == m.exit:
				b.WriteByte('E')
			case m.cells[r][c] == Wall:
				b.WriteByte('#')
			case onPath[cell]:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
