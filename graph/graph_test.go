package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stroll/graph"
)

// TestAddVertex_Basics covers insertion order, idempotence and the
// empty-ID rejection.
func TestAddVertex_Basics(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	// re-adding is a no-op
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
	assert.Equal(t, 2, g.VertexCount())

	err := g.AddVertex("")
	assert.ErrorIs(t, err, graph.ErrEmptyVertexID)
}

// TestAddEdge_AutoCreatesEndpoints verifies that edges may be declared
// before their vertices and that order follows the definition.
func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("X", "Y"))
	require.NoError(t, g.AddEdge("X", "Z"))

	assert.Equal(t, []string{"X", "Y", "Z"}, g.Vertices())

	nbrs, err := g.NeighborIDs("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"Y", "Z"}, nbrs)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestAddEdge_Duplicate(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("A", "B"))
	err := g.AddEdge("A", "B")
	assert.ErrorIs(t, err, graph.ErrDuplicateEdge)
	// the duplicate must not have been recorded
	assert.Equal(t, 1, g.EdgeCount())
}

func TestNeighborIDs_UnknownVertex(t *testing.T) {
	g := graph.Default()
	_, err := g.NeighborIDs("Z")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

// TestNeighborIDs_ReturnsCopy ensures a caller cannot reorder adjacency
// through the returned slice.
func TestNeighborIDs_ReturnsCopy(t *testing.T) {
	g := graph.Default()
	nbrs, err := g.NeighborIDs("A")
	require.NoError(t, err)
	nbrs[0], nbrs[1] = nbrs[1], nbrs[0]

	again, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, again)
}

func TestValidate(t *testing.T) {
	t.Run("default graph is well-formed", func(t *testing.T) {
		assert.NoError(t, graph.Default().Validate())
	})

	t.Run("dangling neighbor is caught", func(t *testing.T) {
		_, err := graph.FromDefinition([]graph.Entry{
			{ID: "A", Neighbors: []string{"B", "GHOST"}},
			{ID: "B"},
		})
		assert.ErrorIs(t, err, graph.ErrDanglingNeighbor)
	})
}

func TestFromDefinition(t *testing.T) {
	g, err := graph.FromDefinition([]graph.Entry{
		{ID: "A", Neighbors: []string{"B", "C"}},
		{ID: "B", Neighbors: []string{"D"}},
		{ID: "C", Neighbors: []string{"D"}},
		{ID: "D"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())

	nbrs, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C"}, nbrs)

	t.Run("duplicate neighbor rejected", func(t *testing.T) {
		_, err := graph.FromDefinition([]graph.Entry{
			{ID: "A", Neighbors: []string{"B", "B"}},
			{ID: "B"},
		})
		assert.ErrorIs(t, err, graph.ErrDuplicateEdge)
	})
}

func TestClone_Independent(t *testing.T) {
	g := graph.Default()
	c := g.Clone()

	require.NoError(t, c.AddEdge("F", "A"))
	assert.Equal(t, 7, c.EdgeCount())
	assert.Equal(t, 6, g.EdgeCount(), "original must be untouched")

	if !errors.Is(g.Validate(), nil) {
		t.Fatalf("original no longer validates after cloning")
	}
}

func TestDefault_Shape(t *testing.T) {
	g := graph.Default()
	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F"}, g.Vertices())
	assert.Equal(t, 6, g.EdgeCount())

	leaves := 0
	for _, id := range g.Vertices() {
		nbrs, err := g.NeighborIDs(id)
		require.NoError(t, err)
		if len(nbrs) == 0 {
			leaves++
		}
	}
	assert.Equal(t, 2, leaves, "D and F are the leaf nodes")
}
