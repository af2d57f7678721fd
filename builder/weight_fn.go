// SPDX-License-Identifier: MIT
// Package: pathfill/builder
//
// weight_fn.go — edge probability distributions.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge success probability from the configured RNG.
// It must be deterministic for a given RNG state and return values in [0,1].
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields p.
// Panics if p is outside [0,1].
func ConstantWeightFn(p float64) WeightFn {
	if !(p >= 0 && p <= 1) {
		panic(fmt.Sprintf("ConstantWeightFn: p must be in [0,1], got %g", p))
	}

	return func(_ *rand.Rand) float64 {
		return p
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics unless 0 ≤ min ≤ max ≤ 1. A nil rng yields min.
func UniformWeightFn(min, max float64) WeightFn {
	if !(min >= 0 && min <= max && max <= 1) {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max ≤ 1, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}
