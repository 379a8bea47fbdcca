package embedding

import (
	"errors"
	"fmt"
)

// Sentinel errors for embedding operations.
var (
	// ErrConflict marks a disjointness violation; see ConflictError.
	ErrConflict = errors.New("embedding: path conflicts with embedded element")

	// ErrOutOfRange indicates a layout or mesh index outside its valid range.
	ErrOutOfRange = errors.New("embedding: index out of range")

	// ErrVertexAlreadyAssigned indicates AssignVertex on an assigned layout vertex.
	ErrVertexAlreadyAssigned = errors.New("embedding: layout vertex already assigned")

	// ErrMeshVertexTaken indicates a mesh vertex already holding a layout vertex or a path.
	ErrMeshVertexTaken = errors.New("embedding: mesh vertex already in use")

	// ErrEdgeAlreadyEmbedded indicates EmbedEdge on an embedded layout edge.
	ErrEdgeAlreadyEmbedded = errors.New("embedding: layout edge already embedded")

	// ErrEdgeNotEmbedded indicates UnembedEdge on an unembedded layout edge.
	ErrEdgeNotEmbedded = errors.New("embedding: layout edge not embedded")

	// ErrEndpointsUnassigned indicates EmbedEdge before both endpoints were assigned.
	ErrEndpointsUnassigned = errors.New("embedding: layout edge endpoints not assigned")

	// ErrPathMalformed indicates a path whose vertices and edges do not chain up.
	ErrPathMalformed = errors.New("embedding: malformed path")

	// ErrPathEndpoints indicates a path not connecting the endpoint images.
	ErrPathEndpoints = errors.New("embedding: path does not connect endpoint images")

	// ErrPathNotSimple indicates a path visiting a mesh vertex twice.
	ErrPathNotSimple = errors.New("embedding: path is not simple")

	// ErrInvariant is returned by Validate when derived state is inconsistent.
	ErrInvariant = errors.New("embedding: invariant violated")
)

// ConflictKind tells which mesh element caused a conflict.
type ConflictKind int

const (
	// EdgeConflict: the mesh edge is already part of another path.
	EdgeConflict ConflictKind = iota
	// VertexConflict: an interior vertex is inside another path.
	VertexConflict
	// PinConflict: an interior vertex is the image of a layout vertex.
	PinConflict
)

// String renders the kind for logs.
func (k ConflictKind) String() string {
	switch k {
	case EdgeConflict:
		return "edge"
	case VertexConflict:
		return "vertex"
	case PinConflict:
		return "pin"
	default:
		return "unknown"
	}
}

// ConflictError reports the first element of a rejected path that is already
// taken. Other is the owning layout edge (EdgeConflict, VertexConflict) or
// the layout vertex pinned there (PinConflict).
type ConflictError struct {
	LayoutEdge  int
	Kind        ConflictKind
	MeshElement int
	Other       int
}

// Error implements error.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("embedding: layout edge %d: mesh %s %d taken by %d",
		e.LayoutEdge, e.Kind, e.MeshElement, e.Other)
}

// Is makes errors.Is(err, ErrConflict) hold.
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }
