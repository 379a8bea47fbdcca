// Package layoutembed routes a coarse layout graph through a fine triangle
// mesh: every layout vertex sits on its own mesh vertex and every layout edge
// becomes a mesh path, with no two paths sharing a mesh edge and paths
// touching only at common layout endpoints. Total path length is minimised
// by a best-first branch and bound that reports a proven lower bound next to
// the best embedding it found.
//
// 🚀 What is inside?
//
//	• mesh/      immutable TargetMesh (positions, edges, faces) and LayoutGraph
//	• builder/   grid, Platonic and subdivided meshes plus matching layouts
//	• dijkstra/  shortest paths with blocked vertices and edges
//	• embedding/ vertex images, edge paths, conflict checks, Validate
//	• pathgen/   constrained shortest path, Yen k-shortest, edge selection
//	• greedy/    shortest-first routing used to seed the search
//	• bnb/       the branch-and-bound controller, settings and result
//	• metrics/   Prometheus observer for search progress
//	• config/    TOML problem files
//
// The layoutembed command (cmd/layoutembed) loads a problem file, runs the
// greedy router and the search, and prints cost, bound and paths:
//
//	layoutembed solve --config problem.toml --time-limit 30s --metrics-addr :9090
//
// Quick start:
//
//	m, _ := builder.BuildMesh(nil, builder.Grid(4, 4))
//	l, _ := mesh.NewLayoutGraph(3, [][2]int{{0, 1}, {1, 2}, {2, 0}})
//	em, _ := embedding.NewPinned(m, l, []int{0, 3, 15})
//	res, err := bnb.BranchAndBound(ctx, em, bnb.DefaultSettings(), "bnb")
package layoutembed
