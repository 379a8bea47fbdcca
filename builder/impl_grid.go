// SPDX-License-Identifier: MIT
// Package: layoutembed/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • rows×cols vertices on the z=0 plane at (c·scale, r·scale), row-major.
//   • Every cell (r,c)…(r+1,c+1) is split along its main diagonal into
//     {(r,c),(r,c+1),(r+1,c+1)} and {(r,c),(r+1,c+1),(r+1,c)}.
//
// Contract:
//   • rows ≥ 2 and cols ≥ 2 (else ErrTooFewVertices).
//   • Vertex of cell (r,c) gets index base + r·cols + c, base = vertices before the call.
//
// Complexity:
//   • Time: O(rows·cols). Space: O(1) extra.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/layoutembed/mesh"
)

const (
	methodGrid = "Grid"
	minGridDim = 2
)

// Grid returns a Constructor that appends a triangulated rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(s *surface, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) Vertices in row-major order.
		base := len(s.positions)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				s.addVertex(r3.Vec{X: float64(c) * cfg.scale, Y: float64(r) * cfg.scale})
			}
		}

		// 3) Two triangles per cell, cells in row-major order.
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r+1 < rows; r++ {
			for c := 0; c+1 < cols; c++ {
				s.faces = append(s.faces,
					mesh.Face{at(r, c), at(r, c+1), at(r+1, c+1)},
					mesh.Face{at(r, c), at(r+1, c+1), at(r+1, c)},
				)
			}
		}

		return nil
	}
}
