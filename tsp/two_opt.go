// SPDX-License-Identifier: MIT
//
// Package tsp - 2-opt local search on a closed tour.
//
// TwoOpt performs deterministic first-improvement 2-opt:
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d), with a=T[i−1], b=T[i], c=T[k], d=T[k+1].
//
// A move reverses T[i..k] and is accepted only when Δ < 0 and both new edges
// (a,c) and (b,d) exist in the graph, so the polished tour stays a real circuit
// on non-complete inputs.
//
// Complexity:
//   - One pass: O(n²) candidate checks; the scan restarts after each accepted move.
//   - Each accepted move costs O(n) for the reversal.
//   - Setup: O(V² + E) for the dense weight table.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/twicearound/core"
)

// TwoOpt polishes a copy of tour and returns it with its cost and the number
// of accepted moves. Between parallel records the polished tour travels the
// lightest one, and its cost is charged that way. maxMoves caps accepted moves; 0 runs until a local optimum.
// The input tour is not modified.
//
// The root stays at both ends: only interior segments [i..k] with
// 1 ≤ i < k ≤ n−1 are reversed. Tours over fewer than 4 vertices are
// returned unchanged.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil.
//   - ErrInvalidTour, ErrMissingEdge : the input tour is malformed or not a circuit of graph.
func TwoOpt(graph *core.Graph, tour []int, maxMoves int) ([]int, int64, int, error) {
	if graph == nil {
		return nil, 0, 0, fmt.Errorf("TwoOpt: %w", ErrInvalidGraph)
	}
	n := graph.Order()
	if len(tour) < 2 {
		return nil, 0, 0, fmt.Errorf("TwoOpt: len=%d: %w", len(tour), ErrInvalidTour)
	}
	if err := ValidateTour(tour, n, tour[0]); err != nil {
		return nil, 0, 0, fmt.Errorf("TwoOpt: %w", err)
	}
	w := newWeightTable(graph)
	cost, err := w.tourCost(tour)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("TwoOpt: %w", err)
	}

	cur := make([]int, len(tour))
	copy(cur, tour)
	if n < 4 {
		return cur, cost, 0, nil
	}

	moves := 0
	for {
		improved := false
		for i := 1; i <= n-2 && !improved; i++ {
			for k := i + 1; k <= n-1; k++ {
				a, b, c, d := cur[i-1], cur[i], cur[k], cur[k+1]
				wac, wbd := w.at(a, c), w.at(b, d)
				if wac < 0 || wbd < 0 {
					continue // new edge missing
				}
				delta := (wac + wbd) - (w.at(a, b) + w.at(c, d))
				if delta >= 0 {
					continue
				}

				reverseArcInPlace(cur, i, k)
				moves++
				improved = true

				break
			}
		}
		if !improved || (maxMoves > 0 && moves >= maxMoves) {
			break
		}
	}

	if cost, err = w.tourCost(cur); err != nil {
		return nil, 0, 0, fmt.Errorf("TwoOpt: %w", err)
	}

	return cur, cost, moves, nil
}
