// Package embedding_test covers the embedding state machine:
//  1. Vertex assignment guards (range, double assignment, occupied mesh vertex).
//  2. EmbedEdge structural checks and conflict classification.
//  3. UnembedEdge round trips and Clone independence.
//  4. Validate on consistent and corrupted-by-use states.
package embedding_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/layoutembed/embedding"
	"github.com/katalvlaran/layoutembed/mesh"
)

// gridMesh returns the unit 2×3 grid
//
//	0 - 1 - 2
//	|   |   |
//	3 - 4 - 5
//
// with edge IDs 0:(0,1) 1:(1,2) 2:(3,4) 3:(4,5) 4:(0,3) 5:(1,4) 6:(2,5).
func gridMesh(t *testing.T) *mesh.TargetMesh {
	t.Helper()
	pos := []r3.Vec{{X: 0}, {X: 1}, {X: 2}, {Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1}}
	pairs := [][2]int{{0, 1}, {1, 2}, {3, 4}, {4, 5}, {0, 3}, {1, 4}, {2, 5}}
	m, err := mesh.NewTargetMeshFromEdges(pos, pairs, nil)
	require.NoError(t, err)

	return m
}

// triangle pins a 3-cycle layout at mesh vertices 0, 2, 5.
func triangle(t *testing.T) *embedding.Embedding {
	t.Helper()
	l, err := mesh.NewLayoutGraph(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)
	em, err := embedding.NewPinned(gridMesh(t), l, []int{0, 2, 5})
	require.NoError(t, err)

	return em
}

func path(vs, es []int) embedding.Path {
	return embedding.Path{Vertices: vs, Edges: es}
}

func TestAssignVertex_Guards(t *testing.T) {
	l, err := mesh.NewLayoutGraph(2, [][2]int{{0, 1}})
	require.NoError(t, err)
	em := embedding.New(gridMesh(t), l)

	require.ErrorIs(t, em.AssignVertex(2, 0), embedding.ErrOutOfRange)
	require.ErrorIs(t, em.AssignVertex(0, 6), embedding.ErrOutOfRange)
	require.NoError(t, em.AssignVertex(0, 3))
	require.ErrorIs(t, em.AssignVertex(0, 4), embedding.ErrVertexAlreadyAssigned)
	require.ErrorIs(t, em.AssignVertex(1, 3), embedding.ErrMeshVertexTaken)
	assert.False(t, em.AllAssigned())
	require.NoError(t, em.AssignVertex(1, 5))
	assert.True(t, em.AllAssigned())
	assert.Equal(t, 3, em.VertexImage(0))
	assert.Equal(t, 1, em.LayoutVertexAt(5))
	assert.Equal(t, -1, em.LayoutVertexAt(4))
}

func TestNewPinned_CountMismatch(t *testing.T) {
	l, err := mesh.NewLayoutGraph(2, [][2]int{{0, 1}})
	require.NoError(t, err)
	_, err = embedding.NewPinned(gridMesh(t), l, []int{0})
	require.ErrorIs(t, err, embedding.ErrOutOfRange)
}

func TestEmbedEdge_CompleteTriangle(t *testing.T) {
	em := triangle(t)
	assert.Equal(t, []int{0, 1, 2}, em.Unembedded())

	require.NoError(t, em.EmbedEdge(0, path([]int{0, 1, 2}, []int{0, 1})))
	require.NoError(t, em.EmbedEdge(1, path([]int{2, 5}, []int{6})))
	// Given reversed; stored From → To.
	require.NoError(t, em.EmbedEdge(2, path([]int{5, 4, 3, 0}, []int{3, 2, 4})))

	assert.True(t, em.IsComplete())
	assert.InDelta(t, 6.0, em.Cost(), 1e-12)
	p, ok := em.Path(2)
	require.True(t, ok)
	assert.Equal(t, []int{0, 3, 4, 5}, p.Vertices)
	assert.Equal(t, []int{4, 2, 3}, p.Edges)
	assert.InDelta(t, 3.0, p.Length, 1e-12)
	assert.Equal(t, 2, em.EdgeOwner(3))
	require.NoError(t, em.Validate())
}

func TestEmbedEdge_StructuralErrors(t *testing.T) {
	em := triangle(t)

	require.ErrorIs(t, em.EmbedEdge(7, path([]int{0, 1}, []int{0})), embedding.ErrOutOfRange)
	require.ErrorIs(t, em.EmbedEdge(0, path([]int{0}, nil)), embedding.ErrPathMalformed)
	require.ErrorIs(t, em.EmbedEdge(0, path([]int{0, 1}, []int{0})), embedding.ErrPathEndpoints)
	require.ErrorIs(t, em.EmbedEdge(0, path([]int{0, 4, 2}, []int{0, 1})), embedding.ErrPathMalformed)
	require.ErrorIs(t, em.EmbedEdge(0,
		path([]int{0, 1, 4, 1, 2}, []int{0, 5, 5, 1})), embedding.ErrPathNotSimple)

	require.NoError(t, em.EmbedEdge(0, path([]int{0, 1, 2}, []int{0, 1})))
	require.ErrorIs(t, em.EmbedEdge(0, path([]int{0, 1, 2}, []int{0, 1})), embedding.ErrEdgeAlreadyEmbedded)
	assert.Equal(t, 1, em.NumEmbedded())
	require.NoError(t, em.Validate())
}

func TestEmbedEdge_EndpointsUnassigned(t *testing.T) {
	l, err := mesh.NewLayoutGraph(2, [][2]int{{0, 1}})
	require.NoError(t, err)
	em := embedding.New(gridMesh(t), l)
	require.NoError(t, em.AssignVertex(0, 0))
	require.ErrorIs(t, em.EmbedEdge(0, path([]int{0, 1}, []int{0})), embedding.ErrEndpointsUnassigned)
}

func TestEmbedEdge_Conflicts(t *testing.T) {
	em := triangle(t)
	require.NoError(t, em.EmbedEdge(0, path([]int{0, 1, 2}, []int{0, 1})))

	// 1) Shared mesh edge 0.
	err := em.EmbedEdge(2, path([]int{0, 1, 4, 5}, []int{0, 5, 3}))
	require.ErrorIs(t, err, embedding.ErrConflict)
	var ce *embedding.ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, embedding.EdgeConflict, ce.Kind)
	assert.Equal(t, 0, ce.MeshElement)
	assert.Equal(t, 0, ce.Other)

	// 2) Layout edge 1 detouring over mesh edge 1.
	err = em.EmbedEdge(1, path([]int{2, 1, 4, 5}, []int{1, 5, 3}))
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, embedding.EdgeConflict, ce.Kind)
	assert.Equal(t, 1, ce.MeshElement)

	require.NoError(t, em.Validate())
	assert.Equal(t, 1, em.NumEmbedded())
}

func TestEmbedEdge_VertexAndPinConflicts(t *testing.T) {
	l, err := mesh.NewLayoutGraph(4, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, err)
	em, err := embedding.NewPinned(gridMesh(t), l, []int{0, 5, 1, 4})
	require.NoError(t, err)

	// Pin at 4 blocks 0-3-4-5.
	err = em.EmbedEdge(0, path([]int{0, 3, 4, 5}, []int{4, 2, 3}))
	var ce *embedding.ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, embedding.PinConflict, ce.Kind)
	assert.Equal(t, 4, ce.MeshElement)
	assert.Equal(t, 3, ce.Other)

	// 0-1-2-5 passes pin 1 as well.
	err = em.EmbedEdge(0, path([]int{0, 1, 2, 5}, []int{0, 1, 6}))
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, embedding.PinConflict, ce.Kind)
	assert.Equal(t, 1, ce.MeshElement)

	// 1-2-5-4 crosses the pin of layout vertex 1.
	err = em.EmbedEdge(1, path([]int{1, 2, 5, 4}, []int{1, 6, 3}))
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, embedding.PinConflict, ce.Kind)
	assert.Equal(t, 5, ce.MeshElement)

	require.NoError(t, em.EmbedEdge(1, path([]int{1, 4}, []int{5})))
	assert.False(t, em.IsBlockedVertex(0, 0))
	assert.True(t, em.IsBlockedVertex(0, 4))
	assert.True(t, em.IsBlockedEdge(5))
	assert.False(t, em.IsBlockedEdge(4))
}

func TestEmbedEdge_InteriorVertexConflict(t *testing.T) {
	// Plus shape: hub 0 with arms 1..4; edge i joins 0 and i+1.
	pos := []r3.Vec{{}, {X: 1}, {Y: 1}, {X: -1}, {Y: -1}}
	m, err := mesh.NewTargetMeshFromEdges(pos, [][2]int{{0, 1}, {0, 2}, {0, 3}, {0, 4}}, nil)
	require.NoError(t, err)
	l, err := mesh.NewLayoutGraph(4, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, err)
	em, err := embedding.NewPinned(m, l, []int{1, 3, 2, 4})
	require.NoError(t, err)

	require.NoError(t, em.EmbedEdge(0, path([]int{1, 0, 3}, []int{0, 2})))
	assert.True(t, em.IsBlockedVertex(1, 0))

	// Edge-disjoint, but the hub is interior to both paths.
	err = em.EmbedEdge(1, path([]int{2, 0, 4}, []int{1, 3}))
	require.ErrorIs(t, err, embedding.ErrConflict)
	var ce *embedding.ConflictError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, embedding.VertexConflict, ce.Kind)
	assert.Equal(t, 0, ce.MeshElement)
	assert.Equal(t, 0, ce.Other)
	assert.Contains(t, ce.Error(), "vertex 0")

	require.NoError(t, em.UnembedEdge(0))
	require.NoError(t, em.EmbedEdge(1, path([]int{2, 0, 4}, []int{1, 3})))
	require.NoError(t, em.Validate())
}

func TestUnembedEdge_RoundTrip(t *testing.T) {
	em := triangle(t)
	require.ErrorIs(t, em.UnembedEdge(0), embedding.ErrEdgeNotEmbedded)
	require.ErrorIs(t, em.UnembedEdge(-1), embedding.ErrOutOfRange)

	require.NoError(t, em.EmbedEdge(0, path([]int{0, 1, 2}, []int{0, 1})))
	require.NoError(t, em.EmbedEdge(1, path([]int{2, 5}, []int{6})))
	require.NoError(t, em.UnembedEdge(0))

	assert.Equal(t, []int{0, 2}, em.Unembedded())
	assert.InDelta(t, 1.0, em.Cost(), 1e-12)
	assert.False(t, em.IsBlockedEdge(0))
	assert.False(t, em.IsBlockedVertex(2, 1))
	_, ok := em.Path(0)
	assert.False(t, ok)
	require.NoError(t, em.Validate())

	require.NoError(t, em.UnembedEdge(1))
	assert.Zero(t, em.Cost())
}

func TestClone_Independent(t *testing.T) {
	em := triangle(t)
	require.NoError(t, em.EmbedEdge(0, path([]int{0, 1, 2}, []int{0, 1})))

	c := em.Clone()
	require.NoError(t, c.EmbedEdge(1, path([]int{2, 5}, []int{6})))
	require.NoError(t, c.UnembedEdge(0))

	assert.True(t, em.IsEmbedded(0))
	assert.False(t, em.IsEmbedded(1))
	assert.InDelta(t, 2.0, em.Cost(), 1e-12)
	assert.InDelta(t, 1.0, c.Cost(), 1e-12)
	require.NoError(t, em.Validate())
	require.NoError(t, c.Validate())

	em.ReplaceWith(c)
	assert.False(t, em.IsEmbedded(0))
	assert.True(t, em.IsEmbedded(1))
	assert.Greater(t, em.FootprintBytes(), int64(0))
}

func TestConflicts(t *testing.T) {
	a := path([]int{0, 1, 2}, []int{0, 1})
	b := path([]int{2, 5}, []int{6})
	c := path([]int{3, 4, 1}, []int{2, 5})
	d := path([]int{0, 3}, []int{4})

	assert.False(t, embedding.Conflicts(a, b), "shared end vertex 2 is allowed")
	assert.True(t, embedding.Conflicts(a, c), "1 is interior to a")
	assert.True(t, embedding.Conflicts(c, a))
	assert.False(t, embedding.Conflicts(a, d))
	assert.True(t, embedding.Conflicts(a, a))
}

func TestInsertionSequence(t *testing.T) {
	em := triangle(t)
	seq := embedding.InsertionSequence{
		{LayoutEdge: 1, Path: path([]int{2, 5}, []int{6})},
		{LayoutEdge: 0, Path: path([]int{0, 1, 2}, []int{0, 1})},
	}
	require.NoError(t, seq.Apply(em))
	assert.Equal(t, []int{1, 0}, seq.LayoutEdges())
	assert.Equal(t, "e1 e0", seq.String())

	cp := seq.Clone()
	cp[0].LayoutEdge = 9
	assert.Equal(t, 1, seq[0].LayoutEdge)
}

func TestPath_Helpers(t *testing.T) {
	p := embedding.Path{Vertices: []int{3, 4, 5}, Edges: []int{2, 3}, Length: 2}
	assert.Equal(t, []int{4}, p.Interior())
	r := p.Reversed()
	assert.Equal(t, []int{5, 4, 3}, r.Vertices)
	assert.Equal(t, []int{3, 2}, r.Edges)
	assert.True(t, p.Equal(r.Reversed()))
	assert.False(t, p.Equal(r))
	assert.Equal(t, "3-4-5 (2)", p.String())
	assert.Nil(t, path([]int{0, 1}, []int{0}).Interior())
}
