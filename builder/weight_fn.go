// SPDX-License-Identifier: MIT
// Package: citynet/builder
//
// weight_fn.go: edge distance generators.
//
// Every WeightFn returns a distance ≥ 1 (core rejects non-positive weights).
// A nil RNG makes the stochastic generators fall back to DefaultEdgeWeight.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn draws one edge distance.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 1.
func ConstantWeightFn(value int64) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn returns a WeightFn drawing uniformly from [min,max].
// Panics unless 1 ≤ min ≤ max.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// From1To100WeightFn draws uniformly from [1,100] km.
func From1To100WeightFn(rng *rand.Rand) int64 {
	return UniformWeightFn(1, 100)(rng)
}

// NormalWeightFn returns a WeightFn drawing from N(mean, stddev), rounded
// and clipped to [1, MaxInt64]. Panics if stddev < 0.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return clipWeight(math.Round(rng.NormFloat64()*stddev + mean))
	}
}

// ExponentialWeightFn returns a WeightFn drawing from Exp(rate), rounded and
// clipped to ≥ 1. Panics if rate <= 0.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return clipWeight(math.Round(rng.ExpFloat64() / rate))
	}
}

func clipWeight(x float64) int64 {
	switch {
	case x < 1:
		return 1
	case x >= math.MaxInt64:
		return math.MaxInt64
	default:
		return int64(x)
	}
}

// WithConstantWeight sets every generated distance to w.
func WithConstantWeight(w int64) BuilderOption { return WithWeightFn(ConstantWeightFn(w)) }

// WithUniformWeight draws distances uniformly from [min,max].
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithNormalWeight draws distances from N(mean, stddev).
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight draws distances from Exp(rate).
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
