// SPDX-License-Identifier: MIT
// Package: layoutembed/builder
//
// impl_platonic.go — implementation of PlatonicSolid(name) constructor.
//
// Contract:
//   • name ∈ {Tetrahedron, Cube, Octahedron, Icosahedron}; Dodecahedron has no
//     triangulation here and, like unknown names, yields ErrOptionViolation.
//   • Appends the solid centred at the origin with circumradius cfg.scale.
//   • Shell vertex i gets index base+i, base = vertices before the call.
//
// Complexity: O(V+F) for the selected solid (V≤12, F≤20).

package builder

import (
	"fmt"

	"github.com/katalvlaran/layoutembed/mesh"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicSolid returns a Constructor that appends the chosen solid.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(s *surface, cfg builderConfig) error {
		faces, ok := platonicFaces[name]
		if !ok {
			return fmt.Errorf("%s: no triangulation for %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}
		base := len(s.positions)
		for _, p := range platonicPositions(name, cfg.scale) {
			s.addVertex(p)
		}
		for _, f := range faces {
			s.faces = append(s.faces, mesh.Face{base + f[0], base + f[1], base + f[2]})
		}

		return nil
	}
}
