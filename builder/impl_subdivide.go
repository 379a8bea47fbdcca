// SPDX-License-Identifier: MIT
// Package: layoutembed/builder
//
// impl_subdivide.go — implementation of Subdivide(levels) constructor.
//
// Canonical model:
//   • Each level splits every triangle {a,b,c} into four using the edge
//     midpoints mab, mbc, mca: {a,mab,mca}, {mab,b,mbc}, {mca,mbc,c}, {mab,mbc,mca}.
//   • Existing vertices keep their indices; midpoints are appended in order of
//     first use while scanning faces, so the result is deterministic.
//   • With WithSphereProjection, midpoints are pushed to the radius of their
//     edge's first endpoint (origin-centred).
//
// Contract:
//   • levels ≥ 0 (else ErrOptionViolation); 0 is a no-op.
//   • At least one face must exist (else ErrConstructFailed).
//
// Complexity: O(4^levels · F).

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/layoutembed/mesh"
)

const methodSubdivide = "Subdivide"

// Subdivide returns a Constructor that refines all faces levels times.
func Subdivide(levels int) Constructor {
	return func(s *surface, cfg builderConfig) error {
		if levels < 0 {
			return fmt.Errorf("%s: levels=%d: %w", methodSubdivide, levels, ErrOptionViolation)
		}
		if len(s.faces) == 0 {
			return fmt.Errorf("%s: no faces to refine: %w", methodSubdivide, ErrConstructFailed)
		}
		for l := 0; l < levels; l++ {
			subdivideOnce(s, cfg.sphere)
		}

		return nil
	}
}

// subdivideOnce performs a single 1→4 split of every face.
func subdivideOnce(s *surface, sphere bool) {
	mid := make(map[[2]int]int, len(s.faces)*3/2)
	midpoint := func(u, v int) int {
		k := [2]int{u, v}
		if u > v {
			k = [2]int{v, u}
		}
		if id, ok := mid[k]; ok {
			return id
		}
		p := r3.Scale(0.5, r3.Add(s.positions[u], s.positions[v]))
		if sphere {
			if n := r3.Norm(p); n > 0 {
				p = r3.Scale(r3.Norm(s.positions[u])/n, p)
			}
		}
		id := s.addVertex(p)
		mid[k] = id

		return id
	}

	faces := make([]mesh.Face, 0, 4*len(s.faces))
	for _, f := range s.faces {
		a, b, c := f[0], f[1], f[2]
		ab, bc, ca := midpoint(a, b), midpoint(b, c), midpoint(c, a)
		faces = append(faces,
			mesh.Face{a, ab, ca},
			mesh.Face{ab, b, bc},
			mesh.Face{ca, bc, c},
			mesh.Face{ab, bc, ca},
		)
	}
	s.faces = faces
}
