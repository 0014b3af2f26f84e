// SPDX-License-Identifier: MIT
// Package: twicearound/builder
//
// options.go - functional options for builderConfig.
//
// Option constructors panic on meaningless values (nil RNG, nil WeightFn,
// non-positive plane), the same fast-fail policy as core option constructors.

package builder

import (
	"math/rand" // RNG source for stochastic builders
)

// BuilderOption mutates builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed uses a fresh rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight is shorthand for WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is shorthand for WithWeightFn(UniformWeightFn(min, max)).
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithPlaneSize sets the side of the square Euclidean points are drawn from.
// Panics on size ≤ 0.
func WithPlaneSize(size float64) BuilderOption {
	if size <= 0 {
		panic("builder: WithPlaneSize(size<=0)")
	}
	return func(c *builderConfig) {
		c.planeSize = size
	}
}
