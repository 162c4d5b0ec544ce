// SPDX-License-Identifier: MIT
// Package: citynet/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn       ("0","1","2",...)
//   • rng      = nil               (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn   (constant DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
