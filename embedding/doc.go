// Package embedding holds the mutable state manipulated by every search node:
// an injective map from layout vertices to mesh vertices and, per layout edge,
// a simple mesh path between the images of its endpoints.
//
// Invariants maintained by every mutating method:
//
//   - embedded paths are pairwise edge-disjoint;
//   - a path's interior vertices are used by no other path and are not the
//     image of any layout vertex, so two paths meet only at shared layout
//     endpoints;
//   - Cost() equals the sum of the embedded path lengths.
//
// Embeddings are single-owner values. Clone gives a deep copy of all mutable
// tables; Path slices are immutable once embedded and are shared between
// clones.
//
// Errors:
//
//	ErrConflict (via *ConflictError) – a path would reuse a taken mesh edge/vertex.
//	ErrVertexAlreadyAssigned, ErrMeshVertexTaken, ErrEdgeAlreadyEmbedded,
//	ErrEdgeNotEmbedded, ErrEndpointsUnassigned, ErrPathMalformed,
//	ErrPathEndpoints, ErrPathNotSimple, ErrOutOfRange, ErrInvariant.
package embedding
