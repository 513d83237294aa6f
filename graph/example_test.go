package graph_test

import (
	"fmt"

	"github.com/katalvlaran/stroll/graph"
)

// ExampleFromDefinition builds a small diamond and prints it in
// definition order.
func ExampleFromDefinition() {
	g, err := graph.FromDefinition([]graph.Entry{
		{ID: "A", Neighbors: []string{"B", "C"}},
		{ID: "B", Neighbors: []string{"D"}},
		{ID: "C", Neighbors: []string{"D"}},
		{ID: "D"},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(g)
	// Output:
	// A → [B C]
	// B → [D]
	// C → [D]
	// D → []
}

// ExampleDefault shows the built-in demonstration graph.
func ExampleDefault() {
	g := graph.Default()
	fmt.Println(g.Vertices())
	fmt.Println(g.VertexCount(), "vertices,", g.EdgeCount(), "edges")
	// Output:
	// [A B C D E F]
	// 6 vertices, 6 edges
}
