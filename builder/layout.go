// SPDX-License-Identifier: MIT
// Package: layoutembed/builder
//
// layout.go — layouts matching the shape constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/layoutembed/mesh"
)

const methodSolidLayout = "SolidLayout"

// SolidLayout returns the edge graph of a Platonic solid as a layout, plus the
// identity pins (layout vertex i → mesh vertex i). Built on a mesh whose first
// constructor is PlatonicSolid(name), the pins are valid before and after
// any number of Subdivide levels.
func SolidLayout(name PlatonicName) (*mesh.LayoutGraph, []int, error) {
	n, ok := platonicVertexCounts[name]
	if !ok {
		return nil, nil, fmt.Errorf("%s: unknown solid %q: %w", methodSolidLayout, name, ErrOptionViolation)
	}
	chords := platonicEdgeSets[name]
	pairs := make([][2]int, len(chords))
	for i, c := range chords {
		pairs[i] = [2]int{c.U, c.V}
	}
	l, err := mesh.NewLayoutGraph(n, pairs)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodSolidLayout, err)
	}
	pins := make([]int, n)
	for i := range pins {
		pins[i] = i
	}

	return l, pins, nil
}
