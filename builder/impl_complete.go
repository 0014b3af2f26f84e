// SPDX-License-Identifier: MIT
// Package: twicearound/builder
//
// impl_complete.go - implementation of the Complete constructor.
//
// Contract:
//   • g.Order() ≥ MinCompleteNodes (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with i<j exactly once.
//   • Weight policy: cfg.weightFn(cfg.rng) per pair.
//
// Complexity:
//   • Time: O(n²) edges emission.
//   • Space: O(1) extra.
//
// Determinism:
//   • Deterministic pair order: lexicographic by (i,j), i<j.
//   • Deterministic weights for a fixed cfg.rng/weightFn.

package builder

import "github.com/katalvlaran/twicearound/core"

// Complete returns a Constructor that builds the complete graph K_n over all
// vertices of g. The Twice-Around-the-Tree walkers assume complete inputs.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.Order()
		if err := validateMin(MethodComplete, n, MinCompleteNodes); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(MethodComplete, g, i, j, cfg.weightFn(cfg.rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
