package maze_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stroll/maze"
)

func TestNew_Errors(t *testing.T) {
	t.Run("empty grid", func(t *testing.T) {
		_, err := maze.New(nil, maze.Cell{}, maze.Cell{})
		assert.ErrorIs(t, err, maze.ErrEmptyGrid)

		_, err = maze.New([][]int{{}}, maze.Cell{}, maze.Cell{})
		assert.ErrorIs(t, err, maze.ErrEmptyGrid)
	})

	t.Run("ragged rows", func(t *testing.T) {
		_, err := maze.New([][]int{{0, 0}, {0}}, maze.Cell{}, maze.Cell{1, 0})
		assert.ErrorIs(t, err, maze.ErrNonRectangular)
	})

	t.Run("start on a wall", func(t *testing.T) {
		_, err := maze.New([][]int{{1, 0}}, maze.Cell{0, 0}, maze.Cell{0, 1})
		assert.ErrorIs(t, err, maze.ErrBlockedCell)
	})

	t.Run("exit out of bounds", func(t *testing.T) {
		_, err := maze.New([][]int{{0, 0}}, maze.Cell{0, 0}, maze.Cell{5, 5})
		assert.ErrorIs(t, err, maze.ErrBlockedCell)
	})
}

func TestGraph_Conversion(t *testing.T) {
	g := maze.Default().Graph()

	// 8 open cells; the center wall is absent
	assert.Equal(t, 8, g.VertexCount())
	assert.False(t, g.HasVertex("1_1"))
	assert.NoError(t, g.Validate())

	// corner cell: down before right, per the fixed offset order
	nbrs, err := g.NeighborIDs("0_0")
	require.NoError(t, err)
	assert.Equal(t, []string{"1_0", "0_1"}, nbrs)
}

func TestSolveBFS_Default(t *testing.T) {
	sol, err := maze.Default().SolveBFS(context.Background())
	require.NoError(t, err)

	// hop-minimal route around the wall: 5 cells
	require.Len(t, sol.Path, 5)
	assert.Equal(t, maze.Cell{0, 0}, sol.Path[0])
	assert.Equal(t, maze.Cell{2, 2}, sol.Path[4])
	assert.Equal(t, 8, sol.VisitedCount, "BFS sweeps the whole level structure before the exit")
}

func TestSolveDFS_Default(t *testing.T) {
	sol, err := maze.Default().SolveDFS(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []maze.Cell{
		{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2},
	}, sol.Path, "down-first branch preference walks straight around the wall")
	assert.Equal(t, 5, sol.VisitedCount)
}

func TestSolve_NoPath(t *testing.T) {
	m, err := maze.New([][]int{
		{maze.Open, maze.Wall},
		{maze.Wall, maze.Open},
	}, maze.Cell{0, 0}, maze.Cell{1, 1})
	require.NoError(t, err)

	_, err = m.SolveBFS(context.Background())
	assert.ErrorIs(t, err, maze.ErrNoPath)

	_, err = m.SolveDFS(context.Background())
	assert.ErrorIs(t, err, maze.ErrNoPath)
}

func TestRender(t *testing.T) {
	m := maze.Default()
	sol, err := m.SolveBFS(context.Background())
	require.NoError(t, err)

	got := m.Render(sol.Path)
	want := "S..\n*#.\n**E\n"
	assert.Equal(t, want, got)
}

func TestCellID_RoundTrip(t *testing.T) {
	c := maze.Cell{Row: 2, Col: 1}
	assert.Equal(t, "2_1", c.ID())
	assert.Equal(t, "(2,1)", c.String())
}
