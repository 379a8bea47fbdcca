package bnb_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/layoutembed/bnb"
	"github.com/katalvlaran/layoutembed/builder"
	"github.com/katalvlaran/layoutembed/embedding"
	"github.com/katalvlaran/layoutembed/mesh"
)

const eps = 1e-9

// crossing builds the two-edge instance whose shortest routes collide on X-Y.
//
// Vertices A=0 X=1 Y=2 B=3 C=4 D=5 P=6.
// Edges: A-X 1, X-Y 1, Y-B 1, C-X 1, Y-D 1, A-B 3.5, C-P 5, P-D 5.
// Layout: A-B and C-D. Unconstrained sum 6, greedy 13, optimum 6.5.
func crossing(t *testing.T) *embedding.Embedding {
	t.Helper()
	pairs := [][2]int{{0, 1}, {1, 2}, {2, 3}, {4, 1}, {2, 5}, {0, 3}, {4, 6}, {6, 5}}
	lengths := []float64{1, 1, 1, 1, 1, 3.5, 5, 5}
	m, err := mesh.NewTargetMeshFromEdges(make([]r3.Vec, 7), pairs, lengths)
	require.NoError(t, err)
	l, err := mesh.NewLayoutGraph(4, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, err)
	em, err := embedding.NewPinned(m, l, []int{0, 3, 4, 5})
	require.NoError(t, err)

	return em
}

// square has a single pinned layout edge 0→2 on a square with sides 1,1,2,2,
// so 0-1-2 (length 2) is the unique shortest route.
func square(t *testing.T) *embedding.Embedding {
	t.Helper()
	m, err := mesh.NewTargetMeshFromEdges(make([]r3.Vec, 4),
		[][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, []float64{1, 1, 2, 2})
	require.NoError(t, err)
	l, err := mesh.NewLayoutGraph(2, [][2]int{{0, 1}})
	require.NoError(t, err)
	em, err := embedding.NewPinned(m, l, []int{0, 2})
	require.NoError(t, err)

	return em
}

// grid3 returns the triangulated 3×3 unit grid (vertex r·3+c).
func grid3(t *testing.T) *mesh.TargetMesh {
	t.Helper()
	m, err := builder.BuildMesh(nil, builder.Grid(3, 3))
	require.NoError(t, err)

	return m
}

// kite pins a four-cycle plus one chord at the edge midpoints of grid3,
// leaving only corners and the centre free for routing.
func kite(t *testing.T) *embedding.Embedding {
	t.Helper()
	l, err := mesh.NewLayoutGraph(4, [][2]int{{0, 1}, {1, 3}, {3, 2}, {2, 0}, {0, 3}})
	require.NoError(t, err)
	em, err := embedding.NewPinned(grid3(t), l, []int{1, 3, 5, 7})
	require.NoError(t, err)

	return em
}

// diagonals pins 0→8 and 2→6 on grid3; the routes must cross, so no
// embedding exists.
func diagonals(t *testing.T) *embedding.Embedding {
	t.Helper()
	l, err := mesh.NewLayoutGraph(4, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, err)
	em, err := embedding.NewPinned(grid3(t), l, []int{0, 8, 2, 6})
	require.NoError(t, err)

	return em
}

// crossedGrid pins the corner diagonals 0→63 and 7→56 on the triangulated
// 8×8 grid. Any route for one separates the endpoints of the other, so no
// embedding exists, while each edge alone has astronomically many paths.
func crossedGrid(t *testing.T) *embedding.Embedding {
	t.Helper()
	m, err := builder.BuildMesh(nil, builder.Grid(8, 8))
	require.NoError(t, err)
	l, err := mesh.NewLayoutGraph(4, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, err)
	em, err := embedding.NewPinned(m, l, []int{0, 63, 7, 56})
	require.NoError(t, err)

	return em
}

// exact disables every early stop so the optimum is proven.
func exact() bnb.Settings {
	s := bnb.DefaultSettings()
	s.OptimalityGap = 0
	s.TimeLimit = 0
	s.RecordLowerBoundEvents = true

	return s
}

// stepClock advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	t := time.Unix(0, 0)

	return func() time.Time {
		t = t.Add(step)

		return t
	}
}
