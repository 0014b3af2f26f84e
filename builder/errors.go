// SPDX-License-Identifier: MIT
// Package: twicearound/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach constructor context with %w.
//   • Option constructors (WithX) panic on meaningless values; constructors never do.

package builder

import "errors"

// ErrTooFewVertices indicates a graph order below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a rejected edge insertion.
var ErrConstructFailed = errors.New("builder: construction failed")
