// SPDX-License-Identifier: MIT
// Package: twicearound/builder
//
// impl_random_sparse.go - implementation of the RandomSparse(p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - g.Order() ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Weight policy: cfg.weightFn(cfg.rng) per accepted pair.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i).

package builder

import "github.com/katalvlaran/twicearound/core"

// RandomSparse returns a Constructor that samples edges independently with probability p.
// The result may be disconnected; compose with Path() to guarantee connectivity.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.Order()
		if err := validateMin(MethodRandomSparse, n, 1); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(MethodRandomSparse, "rng is required: %w", ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				// p ∈ {0,1} is decided without consuming the RNG.
				take := p == MaxProbability
				if cfg.rng != nil && p > MinProbability && p < MaxProbability {
					take = cfg.rng.Float64() < p
				}
				if !take {
					continue
				}
				if err := addEdge(MethodRandomSparse, g, i, j, cfg.weightFn(cfg.rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
