// SPDX-License-Identifier: MIT
// Package: layoutembed/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildMesh(bopts, cons...). Resolves cfg, runs cons in
//     order against one surface, then validates the surface into a mesh.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical meshes.

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/layoutembed/mesh"
)

// surface accumulates geometry while constructors run.
type surface struct {
	positions []r3.Vec
	faces     []mesh.Face
}

// addVertex appends p and returns its index.
func (s *surface) addVertex(p r3.Vec) int {
	s.positions = append(s.positions, p)

	return len(s.positions) - 1
}

// Constructor applies a deterministic mutation to the surface using the
// resolved builderConfig. Constructors validate parameters early and return
// sentinel errors; they never panic.
type Constructor func(s *surface, cfg builderConfig) error

// BuildMesh resolves bopts, applies all constructors in order and returns the
// validated mesh. Any constructor error is wrapped with "BuildMesh: %w".
//
// Errors:
//   - constructor sentinels (ErrTooFewVertices, ErrNeedRandSource, ...);
//   - ErrConstructFailed wrapping the mesh validation error if the final
//     surface is not a valid mesh (e.g. no constructor produced vertices).
func BuildMesh(bopts []BuilderOption, cons ...Constructor) (*mesh.TargetMesh, error) {
	cfg := newBuilderConfig(bopts...)
	s := &surface{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMesh: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildMesh: %w", err)
		}
	}
	m, err := mesh.NewTargetMesh(s.positions, s.faces)
	if err != nil {
		return nil, fmt.Errorf("BuildMesh: %w: %w", ErrConstructFailed, err)
	}

	return m, nil
}
