// SPDX-License-Identifier: MIT
// Package: citynet/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w:
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
//   • Validation order: size, then probability, then RNG presence.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil graph or constructor, or a core
// mutation that failed while building.
var ErrConstructFailed = errors.New("builder: construction failed")
