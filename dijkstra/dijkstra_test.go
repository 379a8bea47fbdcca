// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// validation, distances, path reconstruction, early exit, MaxDistance and
// blocked vertices/edges.
package dijkstra_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/layoutembed/dijkstra"
	"github.com/katalvlaran/layoutembed/mesh"
)

// diamond builds 0-1(1), 1-3(1), 0-2(1), 2-3(2), 0-3(5), 3-4(1).
func diamond(t *testing.T) *mesh.TargetMesh {
	t.Helper()
	m, err := mesh.NewTargetMeshFromEdges(make([]r3.Vec, 5),
		[][2]int{{0, 1}, {1, 3}, {0, 2}, {2, 3}, {0, 3}, {3, 4}},
		[]float64{1, 1, 1, 2, 5, 1})
	if err != nil {
		t.Fatalf("mesh: %v", err)
	}
	return m
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_Validation(t *testing.T) {
	m := diamond(t)

	if _, err := dijkstra.Dijkstra(nil, dijkstra.Source(0)); !errors.Is(err, dijkstra.ErrNilMesh) {
		t.Errorf("nil mesh: got %v", err)
	}
	if _, err := dijkstra.Dijkstra(m); !errors.Is(err, dijkstra.ErrNoSource) {
		t.Errorf("no source: got %v", err)
	}
	if _, err := dijkstra.Dijkstra(m, dijkstra.Source(9)); !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Errorf("bad source: got %v", err)
	}
	if _, err := dijkstra.Dijkstra(m, dijkstra.Source(0), dijkstra.WithTarget(9)); !errors.Is(err, dijkstra.ErrVertexNotFound) {
		t.Errorf("bad target: got %v", err)
	}
}

func TestWithMaxDistance_PanicsOnNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	dijkstra.Dijkstra(diamond(t), dijkstra.Source(0), dijkstra.WithMaxDistance(-1))
}

// ------------------------------------------------------------------------
// 2. Distances and paths
// ------------------------------------------------------------------------

func TestDijkstra_Distances(t *testing.T) {
	res, err := dijkstra.Dijkstra(diamond(t), dijkstra.Source(0))
	if err != nil {
		t.Fatalf("Dijkstra: %v", err)
	}
	want := []float64{0, 1, 1, 2, 3}
	if !reflect.DeepEqual(res.Dist, want) {
		t.Errorf("Dist = %v, want %v", res.Dist, want)
	}
	vs, es, ok := res.PathTo(4)
	if !ok || !reflect.DeepEqual(vs, []int{0, 1, 3, 4}) || !reflect.DeepEqual(es, []int{0, 1, 5}) {
		t.Errorf("PathTo(4) = %v %v %v", vs, es, ok)
	}
	vs, es, ok = res.PathTo(0)
	if !ok || !reflect.DeepEqual(vs, []int{0}) || len(es) != 0 {
		t.Errorf("PathTo(source) = %v %v %v", vs, es, ok)
	}
}

func TestShortestPath_TieKeepsFirstPredecessor(t *testing.T) {
	// 0-1-3 and 0-2-3 both cost 2; strict relaxation keeps the route
	// through the vertex settled first.
	m, err := mesh.NewTargetMeshFromEdges(make([]r3.Vec, 4),
		[][2]int{{0, 1}, {1, 3}, {0, 2}, {2, 3}}, []float64{1, 1, 1, 1})
	if err != nil {
		t.Fatalf("mesh: %v", err)
	}
	vs, _, length, ok, err := dijkstra.ShortestPath(m, 0, 3)
	if err != nil || !ok || length != 2 || !reflect.DeepEqual(vs, []int{0, 1, 3}) {
		t.Errorf("ShortestPath = %v %g %v %v", vs, length, ok, err)
	}
}

// ------------------------------------------------------------------------
// 3. Limits and walls
// ------------------------------------------------------------------------

func TestDijkstra_MaxDistance(t *testing.T) {
	res, err := dijkstra.Dijkstra(diamond(t), dijkstra.Source(0), dijkstra.WithMaxDistance(1.5))
	if err != nil {
		t.Fatalf("Dijkstra: %v", err)
	}
	if !res.Reached(2) || res.Reached(3) || res.Reached(4) {
		t.Errorf("Dist = %v", res.Dist)
	}
	if _, _, ok := res.PathTo(4); ok {
		t.Errorf("PathTo beyond MaxDistance must fail")
	}
}

func TestShortestPath_BlockedVertex(t *testing.T) {
	blocked := func(v int) bool { return v == 1 }
	vs, _, length, ok, err := dijkstra.ShortestPath(diamond(t), 0, 4, dijkstra.WithBlockedVertices(blocked))
	if err != nil || !ok || length != 4 || !reflect.DeepEqual(vs, []int{0, 2, 3, 4}) {
		t.Errorf("ShortestPath = %v %g %v %v", vs, length, ok, err)
	}

	// The target itself is never a wall.
	blocked = func(v int) bool { return v == 4 }
	if _, _, _, ok, _ = dijkstra.ShortestPath(diamond(t), 0, 4, dijkstra.WithBlockedVertices(blocked)); !ok {
		t.Errorf("blocked target must stay reachable")
	}
}

func TestShortestPath_BlockedEdges(t *testing.T) {
	m := diamond(t)
	// Cut 1-3 and 2-3: only the direct edge 0-3 remains.
	blocked := func(e int) bool { return e == 1 || e == 3 }
	vs, es, length, ok, err := dijkstra.ShortestPath(m, 0, 3, dijkstra.WithBlockedEdges(blocked))
	if err != nil || !ok || length != 5 || !reflect.DeepEqual(vs, []int{0, 3}) || !reflect.DeepEqual(es, []int{4}) {
		t.Errorf("ShortestPath = %v %v %g %v %v", vs, es, length, ok, err)
	}

	// Cutting 3-4 isolates 4.
	blocked = func(e int) bool { return e == 5 }
	_, _, length, ok, err = dijkstra.ShortestPath(m, 0, 4, dijkstra.WithBlockedEdges(blocked))
	if err != nil || ok || !math.IsInf(length, 1) {
		t.Errorf("unreachable: length=%g ok=%v err=%v", length, ok, err)
	}
}

func TestDijkstra_TargetStopsEarly(t *testing.T) {
	res, err := dijkstra.Dijkstra(diamond(t), dijkstra.Source(0), dijkstra.WithTarget(1))
	if err != nil {
		t.Fatalf("Dijkstra: %v", err)
	}
	if res.Dist[1] != 1 {
		t.Errorf("Dist[1] = %g", res.Dist[1])
	}
	// 4 is two hops beyond the target and is never relaxed.
	if res.Reached(4) {
		t.Errorf("search continued past the target: %v", res.Dist)
	}
}
