// Package config reads a layoutembed problem file.
//
// A problem file is TOML with two tables:
//
//	[search]            # bnb.Settings; omitted keys keep DefaultSettings
//	optimality_gap = 0.0
//	time_limit = "30s"
//	priority = "lower_bound"
//
//	[problem.mesh]      # generator = "grid" | "platonic" | "explicit"
//	generator = "grid"
//	rows = 4
//	cols = 4
//
//	[problem.layout]
//	vertices = 3
//	edges = [[0, 1], [1, 2], [2, 0]]
//	pins = [0, 3, 15]
//
// A platonic mesh may take its layout from the solid itself with
// from_solid = true; the identity pins are then implied. Paths listed under
// [[problem.paths]] are embedded before the search starts.
package config
