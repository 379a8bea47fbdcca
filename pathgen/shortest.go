package pathgen

import (
	"math"

	"github.com/katalvlaran/layoutembed/dijkstra"
	"github.com/katalvlaran/layoutembed/embedding"
	"github.com/katalvlaran/layoutembed/mesh"
)

// Shortest returns the constrained shortest path for layout edge le of em.
// ok is false when the endpoints are unassigned or no feasible path exists.
func Shortest(em *embedding.Embedding, le int) (p embedding.Path, ok bool) {
	src, dst := em.Endpoints(le)
	if src < 0 || dst < 0 {
		return embedding.Path{}, false
	}

	return search(em.Target(), src, dst,
		func(v int) bool { return em.IsBlockedVertex(le, v) },
		em.IsBlockedEdge,
	)
}

// Relaxed returns the shortest src → dst path of m ignoring any embedding.
func Relaxed(m *mesh.TargetMesh, src, dst int) (embedding.Path, bool) {
	return search(m, src, dst, nil, nil)
}

// RelaxedLength is Relaxed's length, +Inf when dst is unreachable.
func RelaxedLength(m *mesh.TargetMesh, src, dst int) float64 {
	p, ok := Relaxed(m, src, dst)
	if !ok {
		return math.Inf(1)
	}

	return p.Length
}

// search runs one Dijkstra and packs the result into a Path whose Length is
// the left-to-right sum of its edge lengths.
func search(m *mesh.TargetMesh, src, dst int, blockedV, blockedE func(int) bool) (embedding.Path, bool) {
	if src == dst {
		return embedding.Path{}, false
	}
	opts := make([]dijkstra.Option, 0, 2)
	if blockedV != nil {
		opts = append(opts, dijkstra.WithBlockedVertices(blockedV))
	}
	if blockedE != nil {
		opts = append(opts, dijkstra.WithBlockedEdges(blockedE))
	}
	vs, es, _, ok, err := dijkstra.ShortestPath(m, src, dst, opts...)
	if err != nil || !ok {
		return embedding.Path{}, false
	}

	return embedding.Path{Vertices: vs, Edges: es, Length: pathLength(m, es)}, true
}

func pathLength(m *mesh.TargetMesh, edges []int) float64 {
	var l float64
	for _, e := range edges {
		l += m.Length(e)
	}

	return l
}
