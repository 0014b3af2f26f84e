// SPDX-License-Identifier: MIT
// Package: twicearound/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors are implemented in impl_*.go and operate on all g.Order() vertices.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same n, options, seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at build time; return sentinel errors from constructors.
//
// Composition example: BuildGraph(n, opts, Path(), RandomSparse(0.2)) yields a
// connected random graph, the Path guaranteeing connectivity.

package builder

import (
	"fmt"

	"github.com/katalvlaran/twicearound/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate g.Order() early and return sentinel errors (no panics).
//   - Emit edges in a documented, stable order.
//   - Draw weights only through cfg.weightFn(cfg.rng).
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an order-n core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Errors:
//   - core.ErrEmptyGraph when n < 1.
//   - ErrConstructFailed for a nil constructor.
//   - Constructor sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
//
// Complexity: O(n) plus the sum of the constructors' costs.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
