// Package bnb finds a minimum-length embedding of a layout graph into a
// target mesh by best-first branch-and-bound.
//
// Each search node owns a partial embedding.Embedding and the insertion
// sequence that produced it. Expanding a node picks one unembedded layout
// edge (pathgen.Select) and creates one child per candidate path
// (pathgen.KShortestUntil), at most MaxCandidatePaths of them. With
// BranchOnAllEdges every unembedded edge is branched on instead. Children are scored by an admissible lower bound and
// stored by value in an arena-backed frontier; no node points at another.
//
// Algorithm outline:
//  1. Optionally seed the incumbent with an Initializer (greedy.Embed).
//  2. Push the root with its bound.
//  3. Loop: poll ctx and the time limit (also between path searches of an
//     expansion), pop the lowest (priority, discovery)
//     node, prune it if its bound reaches the incumbent, adopt it if complete,
//     expand it otherwise; refresh the global lower bound; stop once the
//     optimality gap is reached.
//
// Bounds:
//
//	lb(node) = cost(node) + Σ_{unembedded e} shortest(e)
//
// where shortest(e) is the constrained shortest path when
// UseCandidatePathsForLowerBounds is set, otherwise the plain mesh distance
// between the pinned endpoints. When the constrained paths are pairwise
// non-conflicting the bound is attained and the node is completed at once.
//
// Global lower bound = min(least open bound, least bound of skipped
// candidates, incumbent), kept non-decreasing. Gap = (cost − lb)/cost.
//
// Node states: Open → Expanded | Pruned | Complete. Nothing reopens.
//
// Errors:
//
//	ErrInvalidSettings      – Settings.Validate failed.
//	ErrNilEmbedding         – nil root.
//	ErrUnassignedVertices   – root has unpinned layout vertices.
//	ErrInfeasibleEmbedding  – via *InfeasibleError, no complete embedding found.
//
// Invariant violations (a generated path rejected for a reason other than a
// conflict, an incumbent failing Validate) panic.
//
// Concurrency: one goroutine per call. The mesh and layout may be shared
// between concurrent calls; embeddings may not.
package bnb
