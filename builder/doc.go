// Package builder provides deterministic, composable constructors for target
// meshes and matching layouts. It is the fixture factory of the module: tests,
// examples and the CLI all obtain their surfaces here instead of loading
// geometry files.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildMesh(bopts, cons...): resolves options, runs constructors in order
//     against a shared surface accumulator, then validates it into a *mesh.TargetMesh.
//   - Shape constructors (append vertices and faces):
//     – Grid(rows, cols):      triangulated planar grid.
//     – PlatonicSolid(name):   tetrahedron, cube (triangulated), octahedron, icosahedron.
//   - Refinement constructors (rewrite what is already there):
//     – Subdivide(levels):     midpoint 1→4 triangle split, optional sphere projection.
//     – Perturb(amount):       seeded random vertex displacement to break length ties.
//   - Layouts:
//     – SolidLayout(name):     the solid's own edge graph, pinned to mesh vertices 0..n-1
//     (shell vertices keep their indices under Subdivide).
//
// Guarantees:
//
//   - Determinism: identical options, seed and constructor order ⇒ identical meshes.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors (errors.go), never panic at runtime.
package builder
