// SPDX-License-Identifier: MIT
// Package: layoutembed/builder
//
// variants_platonic.go — canonical data for Platonic solids.
//
// Design:
//   • Single source of truth for vertex counts, shell edges (layouts) and
//     triangulated faces (meshes).
//   • Face lists use the same labelling as the shell edge lists, so a solid's
//     layout pins onto its own mesh with the identity map.
//
// Determinism:
//   • All edge sets are sorted lexicographically by (U,V) with U < V.

package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/layoutembed/mesh"
)

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs/errors.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6
	Cube                             // V=8,  E=12
	Octahedron                       // V=6,  E=12
	Dodecahedron                     // V=20, E=30
	Icosahedron                      // V=12, E=30
)

// chord is an unordered shell edge with U < V.
type chord struct{ U, V int }

// platonicVertexCounts maps each PlatonicName to its vertex count.
var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// platonicEdgeSets maps each PlatonicName to its canonical shell edge list.
var platonicEdgeSets = map[PlatonicName][]chord{
	// Complete graph K4.
	Tetrahedron: {
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3},
		{U: 1, V: 2}, {U: 1, V: 3},
		{U: 2, V: 3},
	},

	// Bottom face 0-1-2-3, top face 4-5-6-7, verticals i–i+4.
	Cube: {
		{U: 0, V: 1}, {U: 0, V: 3}, {U: 0, V: 4},
		{U: 1, V: 2}, {U: 1, V: 5},
		{U: 2, V: 3}, {U: 2, V: 6},
		{U: 3, V: 7},
		{U: 4, V: 5}, {U: 4, V: 7},
		{U: 5, V: 6},
		{U: 6, V: 7},
	},

	// Poles {0,1}; equator cycle 2-4-3-5-2.
	Octahedron: {
		{U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
		{U: 1, V: 2}, {U: 1, V: 3}, {U: 1, V: 4}, {U: 1, V: 5},
		{U: 2, V: 4}, {U: 2, V: 5}, {U: 3, V: 4}, {U: 3, V: 5},
	},

	// Top pentagon 0..4, bottom pentagon 5..9, middle 10-cycle 10..19,
	// spokes top→even middle, bottom→odd middle.
	Dodecahedron: {
		{U: 0, V: 1}, {U: 0, V: 4}, {U: 0, V: 10},
		{U: 1, V: 2}, {U: 1, V: 12},
		{U: 2, V: 3}, {U: 2, V: 14},
		{U: 3, V: 4}, {U: 3, V: 16},
		{U: 4, V: 18},
		{U: 5, V: 6}, {U: 5, V: 9}, {U: 5, V: 11},
		{U: 6, V: 7}, {U: 6, V: 13},
		{U: 7, V: 8}, {U: 7, V: 15},
		{U: 8, V: 9}, {U: 8, V: 17},
		{U: 9, V: 19},
		{U: 10, V: 11}, {U: 10, V: 19},
		{U: 11, V: 12},
		{U: 12, V: 13},
		{U: 13, V: 14},
		{U: 14, V: 15},
		{U: 15, V: 16},
		{U: 16, V: 17},
		{U: 17, V: 18},
		{U: 18, V: 19},
	},

	// Top pole 0, top ring 1..5, bottom ring 6..10, bottom pole 11;
	// top i joins bottom i+5 and i+6 (10 wraps to 6).
	Icosahedron: {
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 0, V: 3}, {U: 0, V: 4}, {U: 0, V: 5},
		{U: 1, V: 2}, {U: 1, V: 5}, {U: 1, V: 6}, {U: 1, V: 7},
		{U: 2, V: 3}, {U: 2, V: 7}, {U: 2, V: 8},
		{U: 3, V: 4}, {U: 3, V: 8}, {U: 3, V: 9},
		{U: 4, V: 5}, {U: 4, V: 9}, {U: 4, V: 10},
		{U: 5, V: 6}, {U: 5, V: 10},
		{U: 6, V: 7}, {U: 6, V: 10}, {U: 6, V: 11},
		{U: 7, V: 8}, {U: 7, V: 11},
		{U: 8, V: 9}, {U: 8, V: 11},
		{U: 9, V: 10}, {U: 9, V: 11},
		{U: 10, V: 11},
	},
}

// platonicFaces holds triangulated faces for the solids that can be meshed.
// Cube faces are split along the diagonal through the lower-indexed corner.
// Dodecahedron has no entry: its pentagons are not triangles.
var platonicFaces = map[PlatonicName][]mesh.Face{
	Tetrahedron: {{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
	Cube: {
		{0, 1, 2}, {0, 2, 3}, // bottom
		{4, 6, 5}, {4, 7, 6}, // top
		{0, 5, 1}, {0, 4, 5}, // front
		{1, 6, 2}, {1, 5, 6}, // right
		{2, 7, 3}, {2, 6, 7}, // back
		{0, 3, 7}, {0, 7, 4}, // left
	},
	Octahedron: {
		{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
		{1, 4, 2}, {1, 3, 4}, {1, 5, 3}, {1, 2, 5},
	},
	Icosahedron: icosahedronFaces(),
}

// icosahedronFaces derives the 20 faces from the ring labelling above.
func icosahedronFaces() []mesh.Face {
	faces := make([]mesh.Face, 0, 20)
	next := func(i int) int { return i%5 + 1 } // top ring successor
	low := func(i int) int { return i + 5 }    // bottom neighbour "left" of top i
	high := func(i int) int { return (i+5)%5 + 6 }
	for i := 1; i <= 5; i++ {
		faces = append(faces,
			mesh.Face{0, i, next(i)},
			mesh.Face{i, low(i), high(i)},
			mesh.Face{i, high(i), next(i)},
			mesh.Face{11, high(i), low(i)},
		)
	}

	return faces
}

// platonicPositions returns unit-circumradius vertex positions scaled by s.
func platonicPositions(name PlatonicName, s float64) []r3.Vec {
	var pts []r3.Vec
	switch name {
	case Tetrahedron:
		k := 1 / math.Sqrt(3)
		pts = []r3.Vec{{X: k, Y: k, Z: k}, {X: k, Y: -k, Z: -k}, {X: -k, Y: k, Z: -k}, {X: -k, Y: -k, Z: k}}
	case Cube:
		k := 1 / math.Sqrt(3)
		pts = []r3.Vec{
			{X: -k, Y: -k, Z: -k}, {X: k, Y: -k, Z: -k}, {X: k, Y: k, Z: -k}, {X: -k, Y: k, Z: -k},
			{X: -k, Y: -k, Z: k}, {X: k, Y: -k, Z: k}, {X: k, Y: k, Z: k}, {X: -k, Y: k, Z: k},
		}
	case Octahedron:
		pts = []r3.Vec{{Z: 1}, {Z: -1}, {X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	case Icosahedron:
		z := 1 / math.Sqrt(5)
		rho := 2 / math.Sqrt(5)
		pts = make([]r3.Vec, 12)
		pts[0] = r3.Vec{Z: 1}
		pts[11] = r3.Vec{Z: -1}
		for i := 0; i < 5; i++ {
			top := 2 * math.Pi * float64(i) / 5
			bottom := top - math.Pi/5
			pts[1+i] = r3.Vec{X: rho * math.Cos(top), Y: rho * math.Sin(top), Z: z}
			pts[6+i] = r3.Vec{X: rho * math.Cos(bottom), Y: rho * math.Sin(bottom), Z: -z}
		}
	default:
		return nil
	}
	for i := range pts {
		pts[i] = r3.Scale(s, pts[i])
	}

	return pts
}
