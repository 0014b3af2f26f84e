// SPDX-License-Identifier: MIT
//
// Package tsp - Twice-Around-the-Tree pipeline.
//
// Solve is the canonical entry point:
//
//	catalog → MST (prim_kruskal.Compute) → walk (Sweep | Preorder)
//	        → optional 2-opt → ValidateTour
//
// Deterministic for identical input and options; no randomness, no logging.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/twicearound/core"
	"github.com/katalvlaran/twicearound/prim_kruskal"
)

// Solve builds a Hamiltonian circuit over graph.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil.
//   - ErrUnknownWalk  : Options.Walk is neither WalkSweep nor WalkPreorder.
//   - prim_kruskal errors (ErrDisconnected, ErrRootOutOfRange, ErrUnknownMethod, …).
//   - walker errors (ErrNoClosingEdge, ErrIncompleteCircuit, ErrMissingEdge).
//
// Complexity: dominated by the MST method (O(V·E) for the reference Prim)
// plus O(iter·V²) when the 2-opt polish is enabled.
func Solve(graph *core.Graph, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if graph == nil {
		return Result{}, fmt.Errorf("Solve: %w", ErrInvalidGraph)
	}

	var walker func(graph, tree *core.Graph, root int) (Walk, error)
	switch o.Walk {
	case WalkSweep:
		walker = Sweep
	case WalkPreorder:
		walker = Preorder
	default:
		return Result{}, fmt.Errorf("Solve(walk=%q): %w", o.Walk, ErrUnknownWalk)
	}

	// 1. Spanning tree from the graph's catalog.
	mst, err := prim_kruskal.Compute(graph, graph.Edges(),
		prim_kruskal.WithMethod(o.MSTMethod),
		prim_kruskal.WithRoot(o.Root),
	)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}

	// 2. Walk the tree.
	walk, err := walker(graph, mst.Tree, o.Root)
	if err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}

	// 3. Optional polish.
	if o.TwoOpt {
		tour, cost, moves, err := TwoOpt(graph, walk.Tour, o.TwoOptMaxMoves)
		if err != nil {
			return Result{}, fmt.Errorf("Solve: %w", err)
		}
		// An untouched tour keeps the walker's charge for the records it followed.
		if moves > 0 {
			walk.Tour, walk.Cost = tour, cost
		}
		walk.Stats.TwoOptMoves = moves
	}

	// 4. Keep invariants explicit before returning.
	if err = ValidateTour(walk.Tour, graph.Order(), o.Root); err != nil {
		return Result{}, fmt.Errorf("Solve: %w", err)
	}

	return Result{
		Tour:      walk.Tour,
		Cost:      walk.Cost,
		MSTWeight: mst.Weight,
		Stats:     walk.Stats,
		MSTStats:  mst.Stats,
	}, nil
}
