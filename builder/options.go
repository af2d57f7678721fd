// SPDX-License-Identifier: MIT
// Package: pathfill/builder
//
// options.go — functional options for the builder package.
//
// Option constructors validate and panic on meaningless input; the
// constructors themselves never panic and return sentinel errors.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/pathfill/colorgraph"
)

// BuilderOption customizes a constructor before it runs.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved, immutable view of all options.
type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
	palette  []colorgraph.Color
}

// defaultPalette is used by RandomImage when WithPalette is absent.
var defaultPalette = []colorgraph.Color{"white", "black"}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil, // no RNG unless explicitly set
		weightFn: DefaultWeightFn,
		palette:  defaultPalette,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed seeds a fresh RNG for random constructors.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithWeightFn sets the edge probability distribution. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithPalette sets the colors RandomImage draws from. Panics on an empty palette.
func WithPalette(colors ...colorgraph.Color) BuilderOption {
	if len(colors) == 0 {
		panic("builder: WithPalette()")
	}
	palette := append([]colorgraph.Color(nil), colors...)

	return func(c *builderConfig) {
		c.palette = palette
	}
}
