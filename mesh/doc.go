// Package mesh defines the immutable input model of a layout embedding:
// the fine TargetMesh (a triangulated surface with positive edge lengths)
// and the coarse LayoutGraph whose vertices and edges are realised on it.
//
// Both types are built once by a constructor that validates the input and
// precomputes every derived structure (edge catalog, sorted incidence lists,
// endpoint index). After construction nothing is ever mutated, so a single
// *TargetMesh / *LayoutGraph pair may be shared by reference between any
// number of embeddings, search nodes and goroutines without locking.
//
// Indexing:
//
//   - Mesh vertices, mesh edges, faces, layout vertices and layout edges are
//     all dense integer indices starting at 0.
//   - Edge IDs follow insertion order: for NewTargetMesh the order in which
//     an unseen (u,v) pair first appears while scanning faces; for
//     NewTargetMeshFromEdges the order of the input slice.
//   - Incident(v) is sorted by (neighbour, edge) ascending, which makes every
//     traversal built on top of it deterministic.
//
// Constructors:
//
//	NewTargetMesh(positions, faces)                  // lengths = Euclidean distances
//	NewTargetMeshFromEdges(positions, pairs, lengths) // explicit lengths (nil ⇒ Euclidean)
//	NewLayoutGraph(numVertices, pairs)
//
// Errors:
//
//	ErrNoVertices       – a mesh or layout without vertices.
//	ErrVertexOutOfRange – an index outside [0, n).
//	ErrLoopNotAllowed   – an edge whose endpoints coincide.
//	ErrDuplicateEdge    – a second mesh edge between the same pair.
//	ErrBadLength        – a non-positive, NaN or infinite edge length.
//	ErrDegenerateFace   – a face with repeated corners.
//	ErrLengthMismatch   – len(lengths) != len(pairs).
package mesh
