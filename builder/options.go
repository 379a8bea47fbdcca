// SPDX-License-Identifier: MIT
// Package: layoutembed/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes constructors by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithScale sets the grid spacing / solid size. Panics if s <= 0.
func WithScale(s float64) BuilderOption {
	if !(s > 0) {
		panic("builder: WithScale(s<=0)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSphereProjection makes Subdivide push new midpoints onto the sphere
// through the existing vertices (centred at the origin), turning a subdivided
// Platonic solid into a geodesic sphere.
func WithSphereProjection() BuilderOption {
	return func(c *builderConfig) {
		c.sphere = true
	}
}
