// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on a mesh.TargetMesh.
//
// Dijkstra computes minimum-length paths from a single source vertex to all
// other reachable vertices, treating every mesh edge as undirected with its
// (strictly positive) Length as cost. Blocked vertices and edges are treated
// as unreachable walls, which is how embedding constraints are expressed.
//
// Options:
//
//	– Source:        starting vertex (required, must exist in the mesh).
//	– Target:        optional goal; the search stops once it is settled.
//	– MaxDistance:   optional cap; vertices farther away are not explored.
//	– BlockedVertex: predicate; a blocked vertex is never entered. The source
//	                 and the target are exempt.
//	– BlockedEdge:   predicate; a blocked edge is never traversed.
//
// Errors (sentinel):
//
//	– ErrNilMesh        if the provided mesh pointer is nil.
//	– ErrVertexNotFound if the source (or target) is not a mesh vertex.
//	– ErrNoSource       if no Source option was given.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilMesh indicates that a nil *mesh.TargetMesh was passed.
	ErrNilMesh = errors.New("dijkstra: mesh is nil")

	// ErrNoSource indicates that Source was never set.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrVertexNotFound indicates a source or target outside the mesh.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in mesh")

	// ErrBadMaxDistance indicates a negative or NaN MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// noVertex marks an unset source/target and missing predecessors.
const noVertex = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// Source        – starting vertex (must be set).
// Target        – goal vertex or -1 for a full single-source run.
// MaxDistance   – exploration cap, ≥ 0. Default +Inf.
// BlockedVertex – nil or predicate marking impassable vertices.
// BlockedEdge   – nil or predicate marking impassable edges.
type Options struct {
	Source        int
	Target        int
	MaxDistance   float64
	BlockedVertex func(v int) bool
	BlockedEdge   func(e int) bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithTarget makes the run stop as soon as v is settled.
func WithTarget(v int) Option {
	return func(o *Options) {
		o.Target = v
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics on negative or NaN values (ErrBadMaxDistance).
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if !(max >= 0) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithBlockedVertices installs a vertex predicate; blocked vertices are never
// entered (source and target excepted).
func WithBlockedVertices(blocked func(v int) bool) Option {
	return func(o *Options) {
		o.BlockedVertex = blocked
	}
}

// WithBlockedEdges installs an edge predicate; blocked edges are never traversed.
func WithBlockedEdges(blocked func(e int) bool) Option {
	return func(o *Options) {
		o.BlockedEdge = blocked
	}
}

// DefaultOptions returns Options for a full, unconstrained run from source.
//
// Defaults:
//   - Target:        -1 (all vertices).
//   - MaxDistance:   +Inf.
//   - BlockedVertex: nil (nothing blocked).
//   - BlockedEdge:   nil (nothing blocked).
func DefaultOptions(source int) Options {
	return Options{
		Source:      source,
		Target:      noVertex,
		MaxDistance: math.Inf(1),
	}
}

// Result holds the distance and predecessor tables of one run.
//
// Dist[v] is +Inf for vertices that were not reached. PrevVertex[v] and
// PrevEdge[v] are -1 for the source and for unreached vertices.
type Result struct {
	Source     int
	Dist       []float64
	PrevVertex []int
	PrevEdge   []int
}

// Reached reports whether v was settled with a finite distance.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Dist) && !math.IsInf(r.Dist[v], 1)
}

// PathTo reconstructs the vertex and edge sequence from Source to v.
// ok is false if v was not reached.
func (r *Result) PathTo(v int) (vertices []int, edges []int, ok bool) {
	if !r.Reached(v) {
		return nil, nil, false
	}
	for u := v; u != r.Source; u = r.PrevVertex[u] {
		vertices = append(vertices, u)
		edges = append(edges, r.PrevEdge[u])
	}
	vertices = append(vertices, r.Source)
	reverseInts(vertices)
	reverseInts(edges)

	return vertices, edges, true
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
