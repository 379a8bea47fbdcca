// SPDX-License-Identifier: MIT
// Package: layoutembed/builder
//
// impl_perturb.go — implementation of Perturb(amount) constructor.
//
// Regular meshes have many equal-length shortest paths; a small seeded
// displacement makes shortest paths unique, which keeps fixtures readable.
//
// Contract:
//   • amount ≥ 0 (else ErrOptionViolation); each coordinate moves by U[-amount, amount]·scale.
//   • Requires cfg.rng (WithSeed / WithRand), else ErrNeedRandSource.
//   • Vertices are visited in index order; draws are X, Y, Z per vertex.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

const methodPerturb = "Perturb"

// Perturb returns a Constructor that jitters every vertex position.
func Perturb(amount float64) Constructor {
	return func(s *surface, cfg builderConfig) error {
		if !(amount >= 0) {
			return fmt.Errorf("%s: amount=%g: %w", methodPerturb, amount, ErrOptionViolation)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodPerturb, ErrNeedRandSource)
		}
		span := amount * cfg.scale
		draw := func() float64 { return (2*cfg.rng.Float64() - 1) * span }
		for i := range s.positions {
			d := r3.Vec{X: draw(), Y: draw(), Z: draw()}
			s.positions[i] = r3.Add(s.positions[i], d)
		}

		return nil
	}
}
