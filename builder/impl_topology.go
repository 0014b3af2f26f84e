// SPDX-License-Identifier: MIT
// Package: twicearound/builder
//
// impl_topology.go - fixed sparse topologies: Path, Cycle, Star.
//
// All three emit edges in ascending index order with weights from
// cfg.weightFn(cfg.rng). They serve as spanning skeletons for RandomSparse
// and as non-complete inputs on which the walkers must fail loudly.

package builder

import "github.com/katalvlaran/twicearound/core"

// Path returns a Constructor emitting 0-1-…-(n−1).
//
// Complexity: O(n).
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.Order()
		if err := validateMin(MethodPath, n, MinPathNodes); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(MethodPath, g, i-1, i, cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor emitting the path 0-…-(n−1) and the closing edge (n−1)-0.
//
// Complexity: O(n).
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.Order()
		if err := validateMin(MethodCycle, n, MinCycleNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(MethodCycle, g, i, (i+1)%n, cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor emitting 0-i for every i in 1..n−1.
//
// Complexity: O(n).
func Star() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.Order()
		if err := validateMin(MethodStar, n, MinStarNodes); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(MethodStar, g, 0, i, cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
