// Package dijkstra implements Dijkstra's shortest-path algorithm on a mesh.TargetMesh.
//
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing incident edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy decrease-key keeps stale heap entries).
//
// Notes on implementation choices:
//
//   - Mesh lengths are validated positive at construction, so no negative-weight scan.
//   - Blocked vertices/edges are skipped during relaxation (“walls”).
//   - Heap ties are broken by vertex index and relaxation is strict (<), so for a
//     fixed mesh and fixed predicates the returned predecessor tree is deterministic.
//   - With a Target the loop stops as soon as the target is settled.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/layoutembed/mesh"
)

// Dijkstra computes shortest distances from Options.Source over m.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilMesh).
//  2. Source must be set (ErrNoSource) and exist (ErrVertexNotFound).
//  3. Target, if set, must exist (ErrVertexNotFound).
func Dijkstra(m *mesh.TargetMesh, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions(noVertex)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if m == nil {
		return nil, ErrNilMesh
	}
	if cfg.Source == noVertex {
		return nil, ErrNoSource
	}
	if !m.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("source %d: %w", cfg.Source, ErrVertexNotFound)
	}
	if cfg.Target != noVertex && !m.HasVertex(cfg.Target) {
		return nil, fmt.Errorf("target %d: %w", cfg.Target, ErrVertexNotFound)
	}

	// 3) Prepare state.
	n := m.NumVertices()
	r := &runner{
		m:       m,
		options: cfg,
		res: &Result{
			Source:     cfg.Source,
			Dist:       make([]float64, n),
			PrevVertex: make([]int, n),
			PrevEdge:   make([]int, n),
		},
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 4) Run.
	r.init()
	r.process()

	return r.res, nil
}

// ShortestPath is a convenience wrapper returning the vertex/edge sequence
// and length of a shortest src→dst path. ok is false when dst is unreachable.
func ShortestPath(m *mesh.TargetMesh, src, dst int, opts ...Option) (vertices, edges []int, length float64, ok bool, err error) {
	all := make([]Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, Source(src), WithTarget(dst))
	res, err := Dijkstra(m, all...)
	if err != nil {
		return nil, nil, 0, false, err
	}
	vertices, edges, ok = res.PathTo(dst)
	if !ok {
		return nil, nil, math.Inf(1), false, nil
	}

	return vertices, edges, res.Dist[dst], true, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	m       *mesh.TargetMesh // read-only input
	options Options
	res     *Result
	visited []bool // finalized vertices
	pq      nodePQ // lazy min-heap
}

// init sets dist=+Inf everywhere except the source and seeds the heap.
func (r *runner) init() {
	inf := math.Inf(1)
	for v := range r.res.Dist {
		r.res.Dist[v] = inf
		r.res.PrevVertex[v] = noVertex
		r.res.PrevEdge[v] = noVertex
	}
	r.res.Dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop: pop the closest unsettled vertex, settle it, relax.
// Terminates when the heap is empty, MaxDistance is exceeded, or Target is settled.
func (r *runner) process() {
	var item *nodeItem
	for r.pq.Len() > 0 {
		item = heap.Pop(&r.pq).(*nodeItem)

		// Skip stale entries.
		if r.visited[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true
		if item.id == r.options.Target {
			return
		}
		r.relax(item.id)
	}
}

// relax examines each incident edge of u and improves neighbour distances.
// Assumes r.res.Dist[u] is final.
func (r *runner) relax(u int) {
	var (
		inc     mesh.Incidence
		newDist float64
	)
	for _, inc = range r.m.Incident(u) {
		if r.visited[inc.To] {
			continue
		}
		if r.options.BlockedEdge != nil && r.options.BlockedEdge(inc.Edge) {
			continue
		}
		// Source and target are always enterable; every other vertex may be a wall.
		if inc.To != r.options.Target && r.options.BlockedVertex != nil && r.options.BlockedVertex(inc.To) {
			continue
		}
		newDist = r.res.Dist[u] + r.m.Length(inc.Edge)
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict improvement only; equal-length alternatives keep the first predecessor.
		if newDist >= r.res.Dist[inc.To] {
			continue
		}
		r.res.Dist[inc.To] = newDist
		r.res.PrevVertex[inc.To] = u
		r.res.PrevEdge[inc.To] = inc.Edge
		heap.Push(&r.pq, &nodeItem{id: inc.To, dist: newDist})
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by vertex index for determinism.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element (heap.Pop moves the minimum there).
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
