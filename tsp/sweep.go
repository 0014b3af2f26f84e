// SPDX-License-Identifier: MIT
//
// Package tsp - the sweep walker, the reference circuit construction of the
// Twice-Around-the-Tree pipeline.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/twicearound/core"
)

// Sweep turns a spanning tree into a Hamiltonian circuit by enumerating the
// vertices in index order.
//
// Steps:
//  1. visited = {root}; circuit = [root].
//  2. For v = 0..n−1:
//     a. Append the first unvisited neighbour in v's tree adjacency.
//     b. If there is none, append the first unvisited neighbour in v's
//     graph adjacency (counted in Stats.Fallbacks).
//     An append made while v is not the circuit tail is counted in Stats.Detached.
//  3. Close the circuit with the edge from the last visited vertex back to root.
//
// The cost charges every record actually followed: the tree or graph record
// chosen in step 2, the first tail→u record for a detached append, and the
// first tail→root record in the tail's graph adjacency for the close. With
// parallel records this may differ from TourCost, which reads the first
// record of each pair. The bound Cost ≤ 2·w(tree) holds only when no
// fallback was taken on a metric graph.
//
// Error Conditions:
//   - ErrInvalidGraph, ErrTreeMismatch, ErrRootOutOfRange : bad inputs.
//   - ErrIncompleteCircuit : the sweep left vertices unvisited (non-complete graph).
//   - ErrNoClosingEdge     : no edge between the last vertex and root.
//   - ErrMissingEdge       : a detached append joined two non-adjacent vertices.
//
// Complexity: O(V + E) time, O(V) memory.
func Sweep(graph, tree *core.Graph, root int) (Walk, error) {
	n, err := checkWalkInputs(graph, tree, root)
	if err != nil {
		return Walk{}, fmt.Errorf("Sweep: %w", err)
	}

	visited := make([]bool, n)
	visited[root] = true
	tour := make([]int, 1, n+1)
	tour[0] = root

	var (
		st   Stats
		cost int64
	)
	for v := 0; v < n && len(tour) < n; v++ {
		branch, _ := tree.Neighbors(v)
		e, ok := firstUnvisited(branch, visited)
		if !ok {
			full, _ := graph.Neighbors(v)
			if e, ok = firstUnvisited(full, visited); !ok {
				continue
			}
			st.Fallbacks++
		}
		if tail := tour[len(tour)-1]; v != tail {
			// The circuit steps tail→e.To, not v→e.To.
			st.Detached++
			u := e.To
			if e, ok = graph.EdgeBetween(tail, u); !ok {
				return Walk{}, fmt.Errorf("Sweep: detached step %d→%d: %w", tail, u, ErrMissingEdge)
			}
		}
		visited[e.To] = true
		tour = append(tour, e.To)
		cost += e.Weight
	}
	if len(tour) < n {
		return Walk{}, fmt.Errorf("Sweep: %d of %d vertices reached: %w", len(tour), n, ErrIncompleteCircuit)
	}

	tail := tour[n-1]
	if tail != root {
		closing, ok := graph.EdgeBetween(tail, root)
		if !ok {
			return Walk{}, fmt.Errorf("Sweep: %d→%d: %w", tail, root, ErrNoClosingEdge)
		}
		cost += closing.Weight
	}
	tour = append(tour, root)

	return Walk{Tour: tour, Cost: cost, Stats: st}, nil
}

// firstUnvisited returns the first record in list leading to an unvisited vertex.
func firstUnvisited(list []core.Edge, visited []bool) (core.Edge, bool) {
	for _, e := range list {
		if !visited[e.To] {
			return e, true
		}
	}

	return core.Edge{}, false
}

// checkWalkInputs validates the arguments shared by every walker and returns n.
func checkWalkInputs(graph, tree *core.Graph, root int) (int, error) {
	if graph == nil || tree == nil {
		return 0, ErrInvalidGraph
	}
	n := graph.Order()
	if tree.Order() != n {
		return 0, fmt.Errorf("graph order %d, tree order %d: %w", n, tree.Order(), ErrTreeMismatch)
	}
	if root < 0 || root >= n {
		return 0, fmt.Errorf("root=%d, n=%d: %w", root, n, ErrRootOutOfRange)
	}

	return n, nil
}
