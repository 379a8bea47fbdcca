// SPDX-License-Identifier: MIT
// Package: layoutembed/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • scale  = 1.0   (grid spacing / solid circumradius)
//   • rng    = nil   (pure/deterministic unless seeded)
//   • sphere = false (Subdivide keeps midpoints on the flat faces)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Uniform size factor applied by shape constructors.
	scale float64
	// RNG for stochastic constructors; nil means “no randomness”.
	rng *rand.Rand
	// Project subdivision midpoints onto the circumscribed sphere.
	sphere bool
}

const defaultScale = 1.0

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		scale: defaultScale,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
