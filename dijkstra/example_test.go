package dijkstra_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/layoutembed/dijkstra"
	"github.com/katalvlaran/layoutembed/mesh"
)

// ExampleShortestPath routes around a blocked vertex.
func ExampleShortestPath() {
	// 1) A square 0-1-2-3 with unit sides.
	m, _ := mesh.NewTargetMeshFromEdges(make([]r3.Vec, 4),
		[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, []float64{1, 1, 1, 1})

	// 2) Vertex 1 is a wall, so 0→2 goes the other way round.
	vs, _, length, ok, err := dijkstra.ShortestPath(m, 0, 2,
		dijkstra.WithBlockedVertices(func(v int) bool { return v == 1 }))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(vs, length, ok)
	// Output: [0 3 2] 2 true
}
