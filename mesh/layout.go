// File: layout.go
// Role: LayoutGraph construction and queries.
package mesh

import "fmt"

// NewLayoutGraph builds a layout graph on numVertices vertices with one
// layout edge per pair, IDs in input order. Parallel edges are accepted.
//
// Errors: ErrNoVertices, ErrVertexOutOfRange, ErrLoopNotAllowed.
//
// Complexity: O(n + m).
func NewLayoutGraph(numVertices int, pairs [][2]int) (*LayoutGraph, error) {
	if numVertices <= 0 {
		return nil, ErrNoVertices
	}
	l := &LayoutGraph{
		numVertices: numVertices,
		edges:       make([]LayoutEdge, 0, len(pairs)),
		incident:    make([][]int, numVertices),
	}
	var (
		i int
		p [2]int
	)
	for i, p = range pairs {
		if p[0] < 0 || p[0] >= numVertices || p[1] < 0 || p[1] >= numVertices {
			return nil, fmt.Errorf("layout edge %d (%d,%d): %w", i, p[0], p[1], ErrVertexOutOfRange)
		}
		if p[0] == p[1] {
			return nil, fmt.Errorf("layout edge %d (%d,%d): %w", i, p[0], p[1], ErrLoopNotAllowed)
		}
		l.edges = append(l.edges, LayoutEdge{ID: i, From: p[0], To: p[1]})
		l.incident[p[0]] = append(l.incident[p[0]], i)
		l.incident[p[1]] = append(l.incident[p[1]], i)
	}

	return l, nil
}

// NumVertices returns the number of layout vertices.
func (l *LayoutGraph) NumVertices() int { return l.numVertices }

// NumEdges returns the number of layout edges.
func (l *LayoutGraph) NumEdges() int { return len(l.edges) }

// Edge returns layout edge e by value.
func (l *LayoutGraph) Edge(e int) LayoutEdge { return l.edges[e] }

// Edges returns a copy of the layout edges in ID order.
func (l *LayoutGraph) Edges() []LayoutEdge {
	out := make([]LayoutEdge, len(l.edges))
	copy(out, l.edges)

	return out
}

// IncidentEdges returns the ascending IDs of layout edges touching v.
// The slice is shared and must not be modified.
func (l *LayoutGraph) IncidentEdges(v int) []int { return l.incident[v] }

// Adjacent reports whether layout edges e and f share an endpoint.
func (l *LayoutGraph) Adjacent(e, f int) bool {
	return l.edges[e].SharesEndpoint(l.edges[f])
}
