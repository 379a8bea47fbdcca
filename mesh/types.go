package mesh

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for mesh and layout construction.
var (
	// ErrNoVertices indicates an empty vertex set.
	ErrNoVertices = errors.New("mesh: no vertices")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("mesh: vertex index out of range")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("mesh: self-loop not allowed")

	// ErrDuplicateEdge indicates a second mesh edge between the same two vertices.
	ErrDuplicateEdge = errors.New("mesh: duplicate edge")

	// ErrBadLength indicates a non-positive, NaN or infinite edge length.
	ErrBadLength = errors.New("mesh: edge length must be positive and finite")

	// ErrDegenerateFace indicates a face with repeated corners.
	ErrDegenerateFace = errors.New("mesh: degenerate face")

	// ErrLengthMismatch indicates that explicit lengths do not match the edge list.
	ErrLengthMismatch = errors.New("mesh: lengths do not match edges")
)

// Edge is an undirected mesh edge between vertices A < B.
type Edge struct {
	// ID is the dense index of this edge inside its TargetMesh.
	ID int

	// A and B are the endpoint vertex indices, A < B.
	A, B int

	// Length is the strictly positive traversal cost of the edge.
	Length float64
}

// Other returns the endpoint of e opposite to v.
// The result is undefined when v is not an endpoint of e.
func (e Edge) Other(v int) int {
	if v == e.A {
		return e.B
	}

	return e.A
}

// Face is a triangle given by three vertex indices.
type Face [3]int

// Incidence is one entry of a vertex's incidence list: the neighbour reached
// and the edge used to reach it.
type Incidence struct {
	To   int
	Edge int
}

// TargetMesh is the fine, read-only surface mesh onto which a layout is embedded.
type TargetMesh struct {
	positions []r3.Vec
	edges     []Edge
	faces     []Face
	incident  [][]Incidence // per vertex, sorted by (To, Edge)
	index     map[[2]int]int
	total     float64
}

// LayoutEdge is an undirected edge of the coarse layout graph.
type LayoutEdge struct {
	ID       int
	From, To int
}

// Other returns the endpoint of e opposite to v.
func (e LayoutEdge) Other(v int) int {
	if v == e.From {
		return e.To
	}

	return e.From
}

// SharesEndpoint reports whether e and f have at least one endpoint in common.
func (e LayoutEdge) SharesEndpoint(f LayoutEdge) bool {
	return e.From == f.From || e.From == f.To || e.To == f.From || e.To == f.To
}

// LayoutGraph is the coarse, read-only structure realised on a TargetMesh.
// Parallel layout edges are permitted; loops are not.
type LayoutGraph struct {
	numVertices int
	edges       []LayoutEdge
	incident    [][]int // per layout vertex, ascending layout edge IDs
}
