// SPDX-License-Identifier: MIT
// Package: twicearound/builder
//
// config.go - resolved builder configuration.
//
// builderConfig is immutable once built by newBuilderConfig and passed by
// value to every Constructor, so constructors cannot leak state to each other
// except through the shared *rand.Rand stream, which is what makes seeded
// builds reproducible.

package builder

import "math/rand" // RNG for stochastic builders

// builderConfig holds the knobs resolved from BuilderOption values.
type builderConfig struct {
	// rng drives RandomSparse, Euclidean points and random weights; nil unless set.
	rng *rand.Rand

	// weightFn returns the weight of the next emitted edge.
	weightFn WeightFn

	// planeSize is the side of the square Euclidean points are drawn from (>0).
	planeSize float64
}

// newBuilderConfig applies opts over the defaults:
//   - rng:       nil
//   - weightFn:  DefaultWeightFn (constant DefaultEdgeWeight)
//   - planeSize: DefaultPlaneSize
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:       nil,
		weightFn:  DefaultWeightFn,
		planeSize: DefaultPlaneSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
