// SPDX-License-Identifier: MIT
//
// Package tsp - cost utilities.
//
// Parallel records make "the weight of a pair" ambiguous, so each stage
// charges the record it actually travels:
//
//	TourCost     first u→v record of the graph (EdgeBetween)
//	treeTourCost tree record when u–v is a tree edge, else TourCost's record
//	weightTable  lightest u→v record, used by the 2-opt polish
//
// Without parallel records all three agree.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/twicearound/core"
)

// TourCost sums w(tour[i], tour[i+1]) over the closed tour.
//
// The single-vertex circuit [r, r] costs 0; any other repeated pair fails,
// since self-loops do not exist.
//
// Errors:
//   - ErrInvalidGraph if graph is nil.
//   - ErrInvalidTour  if len(tour) < 2.
//   - ErrMissingEdge  if a consecutive pair has no record.
//
// Complexity: O(Σ deg(tour[i])) time, O(1) space.
func TourCost(graph *core.Graph, tour []int) (int64, error) {
	if graph == nil {
		return 0, ErrInvalidGraph
	}
	if len(tour) < 2 {
		return 0, fmt.Errorf("TourCost: len=%d: %w", len(tour), ErrInvalidTour)
	}
	if len(tour) == 2 && tour[0] == tour[1] && graph.HasVertex(tour[0]) {
		return 0, nil
	}

	var sum int64
	for i := 0; i+1 < len(tour); i++ {
		e, ok := graph.EdgeBetween(tour[i], tour[i+1])
		if !ok {
			return 0, fmt.Errorf("TourCost: step %d (%d→%d): %w", i, tour[i], tour[i+1], ErrMissingEdge)
		}
		sum += e.Weight
	}

	return sum, nil
}

// treeTourCost charges tree records on tree pairs and graph records on
// shortcuts, so a preorder tour that only retraces tree edges costs exactly
// what the doubled tree costs.
func treeTourCost(graph, tree *core.Graph, tour []int) (int64, error) {
	if len(tour) == 2 && tour[0] == tour[1] && graph.HasVertex(tour[0]) {
		return 0, nil
	}

	var sum int64
	for i := 0; i+1 < len(tour); i++ {
		e, ok := tree.EdgeBetween(tour[i], tour[i+1])
		if !ok {
			if e, ok = graph.EdgeBetween(tour[i], tour[i+1]); !ok {
				return 0, fmt.Errorf("step %d (%d→%d): %w", i, tour[i], tour[i+1], ErrMissingEdge)
			}
		}
		sum += e.Weight
	}

	return sum, nil
}

// weightTable is a dense n×n lookup of the lightest record per ordered pair,
// −1 where no edge exists. It keeps the 2-opt inner loop free of adjacency scans.
type weightTable struct {
	n int
	w []int64
}

// newWeightTable records, for every ordered pair, its lightest record.
//
// Complexity: O(V² + E) time and O(V²) space.
func newWeightTable(graph *core.Graph) weightTable {
	n := graph.Order()
	t := weightTable{n: n, w: make([]int64, n*n)}
	for i := range t.w {
		t.w[i] = -1
	}
	for _, e := range graph.Edges() {
		if cur := t.w[e.From*n+e.To]; cur < 0 || e.Weight < cur {
			t.w[e.From*n+e.To] = e.Weight
		}
	}

	return t
}

// at returns w(u,v), or −1 when u and v are not adjacent.
func (t weightTable) at(u, v int) int64 {
	return t.w[u*t.n+v]
}

// tourCost sums at() over the closed tour; [r, r] costs 0.
func (t weightTable) tourCost(tour []int) (int64, error) {
	if len(tour) == 2 && tour[0] == tour[1] {
		return 0, nil
	}

	var sum int64
	for i := 0; i+1 < len(tour); i++ {
		w := t.at(tour[i], tour[i+1])
		if w < 0 {
			return 0, fmt.Errorf("step %d (%d→%d): %w", i, tour[i], tour[i+1], ErrMissingEdge)
		}
		sum += w
	}

	return sum, nil
}
