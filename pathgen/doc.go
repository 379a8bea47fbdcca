// Package pathgen enumerates candidate mesh paths for a single layout edge of
// a partial embedding.
//
// Every path it yields is simple, joins the images of the layout edge's
// endpoints, avoids mesh edges already used by embedded paths, and has no
// interior vertex that is pinned or used by another path. Such a path can
// therefore always be embedded without a ConflictError.
//
// What:
//
//   - Shortest: the constrained shortest path (Dijkstra with blocked elements).
//   - Relaxed: the unconstrained shortest path between two mesh vertices.
//   - KShortest: Yen's k shortest simple paths with a length ceiling.
//   - KShortestUntil: KShortest that polls a stop hook between spur searches.
//   - Select: choose the next layout edge to branch on (SelectionPolicy).
//
// Ordering: ascending length, ties broken by the lexicographic order of the
// vertex sequences, so output is deterministic for a fixed input.
//
// Complexity: KShortest is O(k·L·(V+E)·log V) where L is the longest path's
// vertex count.
package pathgen
