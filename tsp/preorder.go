// SPDX-License-Identifier: MIT
//
// Package tsp - textbook Twice-Around-the-Tree walk.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/twicearound/core"
)

// Preorder walks the Euler circuit of the doubled tree from root and skips
// revisits. On graphs satisfying the triangle inequality every shortcut is no
// longer than the detour it replaces, so Cost ≤ 2·w(tree).
//
// Steps:
//  1. euler = EulerianCircuit(tree, root).
//  2. tour  = ShortcutEulerianToHamiltonian(euler, n, root).
//  3. Cost  = tree record weight on tree pairs, first graph record on
//     shortcuts; every shortcut must be a graph edge.
//
// Error Conditions:
//   - ErrInvalidGraph, ErrTreeMismatch, ErrRootOutOfRange : bad inputs.
//   - ErrIncompleteCircuit : the tree does not span the graph.
//   - ErrMissingEdge       : a shortcut pair is not adjacent in graph.
//
// Complexity: O(V + Σ deg) time, O(V) memory.
func Preorder(graph, tree *core.Graph, root int) (Walk, error) {
	n, err := checkWalkInputs(graph, tree, root)
	if err != nil {
		return Walk{}, fmt.Errorf("Preorder: %w", err)
	}

	euler := EulerianCircuit(tree, root)
	tour, err := ShortcutEulerianToHamiltonian(euler, n, root)
	if err != nil {
		return Walk{}, fmt.Errorf("Preorder: %w", err)
	}

	cost, err := treeTourCost(graph, tree, tour)
	if err != nil {
		return Walk{}, fmt.Errorf("Preorder: %w", err)
	}

	return Walk{Tour: tour, Cost: cost}, nil
}
