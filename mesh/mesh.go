// File: mesh.go
// Role: TargetMesh construction and read-only queries.
//
// Determinism:
//   - Edge IDs follow first appearance order (faces) or input order (pairs).
//   - Incident(v) is sorted by (To, Edge).
//
// Concurrency:
//   - No method mutates the mesh after construction; concurrent reads are safe.
package mesh

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"
)

// NewTargetMesh builds a mesh from vertex positions and triangular faces.
// Every face side becomes an undirected edge (shared sides are merged) whose
// length is the Euclidean distance between its endpoints.
//
// Errors: ErrNoVertices, ErrVertexOutOfRange, ErrDegenerateFace, ErrBadLength
// (two coincident vertices joined by an edge).
//
// Complexity: O(V + F·log d) time, O(V + E + F) space.
func NewTargetMesh(positions []r3.Vec, faces []Face) (*TargetMesh, error) {
	m, err := newEmpty(positions)
	if err != nil {
		return nil, err
	}

	m.faces = make([]Face, len(faces))
	var (
		fi, k int
		f     Face
	)
	for fi, f = range faces {
		for k = 0; k < 3; k++ {
			if f[k] < 0 || f[k] >= len(positions) {
				return nil, fmt.Errorf("face %d corner %d=%d: %w", fi, k, f[k], ErrVertexOutOfRange)
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			return nil, fmt.Errorf("face %d %v: %w", fi, f, ErrDegenerateFace)
		}
		m.faces[fi] = f
		// Each side once; an already known side is simply shared with a neighbour face.
		for k = 0; k < 3; k++ {
			u, v := f[k], f[(k+1)%3]
			if _, ok := m.index[key(u, v)]; ok {
				continue
			}
			if err = m.addEdge(u, v, r3.Norm(r3.Sub(m.positions[u], m.positions[v]))); err != nil {
				return nil, fmt.Errorf("face %d: %w", fi, err)
			}
		}
	}
	m.finish()

	return m, nil
}

// NewTargetMeshFromEdges builds a mesh from explicit vertex pairs.
// If lengths is nil, each length is the Euclidean distance between the
// endpoint positions; otherwise lengths[i] is the length of pairs[i].
// positions may hold zero vectors when only explicit lengths matter.
//
// Errors: ErrNoVertices, ErrVertexOutOfRange, ErrLoopNotAllowed,
// ErrDuplicateEdge, ErrBadLength, ErrLengthMismatch.
//
// Complexity: O(V + E·log d).
func NewTargetMeshFromEdges(positions []r3.Vec, pairs [][2]int, lengths []float64) (*TargetMesh, error) {
	if lengths != nil && len(lengths) != len(pairs) {
		return nil, fmt.Errorf("%d lengths for %d edges: %w", len(lengths), len(pairs), ErrLengthMismatch)
	}
	m, err := newEmpty(positions)
	if err != nil {
		return nil, err
	}

	var (
		i int
		p [2]int
		l float64
	)
	for i, p = range pairs {
		if p[0] < 0 || p[0] >= len(positions) || p[1] < 0 || p[1] >= len(positions) {
			return nil, fmt.Errorf("edge %d (%d,%d): %w", i, p[0], p[1], ErrVertexOutOfRange)
		}
		if p[0] == p[1] {
			return nil, fmt.Errorf("edge %d (%d,%d): %w", i, p[0], p[1], ErrLoopNotAllowed)
		}
		if _, ok := m.index[key(p[0], p[1])]; ok {
			return nil, fmt.Errorf("edge %d (%d,%d): %w", i, p[0], p[1], ErrDuplicateEdge)
		}
		if lengths != nil {
			l = lengths[i]
		} else {
			l = r3.Norm(r3.Sub(m.positions[p[0]], m.positions[p[1]]))
		}
		if err = m.addEdge(p[0], p[1], l); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}
	m.finish()

	return m, nil
}

// newEmpty copies positions and allocates the catalogs.
func newEmpty(positions []r3.Vec) (*TargetMesh, error) {
	if len(positions) == 0 {
		return nil, ErrNoVertices
	}
	m := &TargetMesh{
		positions: make([]r3.Vec, len(positions)),
		incident:  make([][]Incidence, len(positions)),
		index:     make(map[[2]int]int),
	}
	copy(m.positions, positions)

	return m, nil
}

// addEdge appends a validated edge and its two incidence entries.
func (m *TargetMesh) addEdge(u, v int, length float64) error {
	if !(length > 0) || math.IsInf(length, 0) {
		return fmt.Errorf("(%d,%d) length=%g: %w", u, v, length, ErrBadLength)
	}
	a, b := u, v
	if a > b {
		a, b = b, a
	}
	id := len(m.edges)
	m.edges = append(m.edges, Edge{ID: id, A: a, B: b, Length: length})
	m.index[[2]int{a, b}] = id
	m.incident[a] = append(m.incident[a], Incidence{To: b, Edge: id})
	m.incident[b] = append(m.incident[b], Incidence{To: a, Edge: id})
	m.total += length

	return nil
}

// finish sorts incidence lists so traversals are order-stable.
func (m *TargetMesh) finish() {
	for _, inc := range m.incident {
		sort.Slice(inc, func(i, j int) bool {
			if inc[i].To != inc[j].To {
				return inc[i].To < inc[j].To
			}

			return inc[i].Edge < inc[j].Edge
		})
	}
}

func key(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

// NumVertices returns |V|.
func (m *TargetMesh) NumVertices() int { return len(m.positions) }

// NumEdges returns |E|.
func (m *TargetMesh) NumEdges() int { return len(m.edges) }

// NumFaces returns |F| (zero for meshes built from explicit edges).
func (m *TargetMesh) NumFaces() int { return len(m.faces) }

// Position returns the position of vertex v.
func (m *TargetMesh) Position(v int) r3.Vec { return m.positions[v] }

// Edge returns edge e by value.
func (m *TargetMesh) Edge(e int) Edge { return m.edges[e] }

// Length returns the length of edge e.
func (m *TargetMesh) Length(e int) float64 { return m.edges[e].Length }

// Edges returns a copy of the edge catalog in ID order.
func (m *TargetMesh) Edges() []Edge {
	out := make([]Edge, len(m.edges))
	copy(out, m.edges)

	return out
}

// Faces returns a copy of the face list.
func (m *TargetMesh) Faces() []Face {
	out := make([]Face, len(m.faces))
	copy(out, m.faces)

	return out
}

// Incident returns the incidence list of v, sorted by (To, Edge).
// The slice is shared with the mesh and must not be modified.
func (m *TargetMesh) Incident(v int) []Incidence { return m.incident[v] }

// Degree returns the number of edges incident to v.
func (m *TargetMesh) Degree(v int) int { return len(m.incident[v]) }

// EdgeBetween returns the ID of the edge joining u and v.
func (m *TargetMesh) EdgeBetween(u, v int) (int, bool) {
	id, ok := m.index[key(u, v)]

	return id, ok
}

// TotalLength returns the sum of all edge lengths.
func (m *TargetMesh) TotalLength() float64 { return m.total }

// HasVertex reports whether v is a valid vertex index.
func (m *TargetMesh) HasVertex(v int) bool { return v >= 0 && v < len(m.positions) }
