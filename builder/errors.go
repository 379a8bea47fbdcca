// SPDX-License-Identifier: MIT
// Package: layoutembed/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w, never by rewriting sentinels.
//   • Option constructors panic on meaningless values; constructors return errors.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (rows, cols) is below
// the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor (Perturb) ran
// without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not run on the current
// surface (e.g. Subdivide before any faces exist) or the resulting surface
// failed mesh validation.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an invalid parameter value discovered at
// construction time (unknown or unsupported solid name, negative levels).
var ErrOptionViolation = errors.New("builder: invalid option value")
