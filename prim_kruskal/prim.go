// SPDX-License-Identifier: MIT
//
// Package prim_kruskal provides the catalog-scan implementation of Prim's
// Minimum Spanning Tree algorithm, the reference method of the pipeline.
package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/twicearound/core"
)

// Prim grows a minimum spanning tree from root by repeatedly scanning the
// edge catalog for the lightest record that crosses the known/unknown frontier.
//
// Error Conditions:
//   - ErrInvalidGraph   : graph is nil.
//   - ErrEmptyGraph     : graph has no vertices.
//   - ErrRootOutOfRange : root ∉ [0, n).
//   - ErrDisconnected   : some step finds no record (u,v) with u known and v unknown.
//
// Steps:
//  1. known = {root}; tree = n empty adjacency lists; work = copy of catalog.
//  2. Repeat n−1 times:
//     a. Scan work for the first minimum-weight record (u,v) with u known and
//     v unknown. Strict comparison keeps the first minimum, so equal weights
//     resolve by catalog order.
//     b. Insert (u,v) and (v,u) into tree; accumulate the weight.
//     c. Mark v known.
//     d. Drop records whose endpoints are both known. This never changes
//     the result; it only shortens later scans.
//  3. Return the tree, the selected records and their total weight.
//
// The caller's catalog is never modified.
//
// Complexity: O(V·E) time, O(V+E) memory.
func Prim(graph *core.Graph, catalog core.EdgeCatalog, root int) (MST, error) {
	// 1. Validate graph and root.
	n, err := validate(graph, root)
	if err != nil {
		return MST{}, fmt.Errorf("Prim: %w", err)
	}

	tree := graph.CloneEmpty()
	known := make([]bool, n)
	known[root] = true
	work := catalog.Clone()
	res := MST{Tree: tree, Edges: make([]core.Edge, 0, n-1), Root: root}

	// 2. One step per vertex after the root.
	for step := 1; step < n; step++ {
		// 2a. Find the lightest crossing record.
		best, found := core.Edge{}, false
		for _, e := range work {
			res.Stats.Scanned++
			if !isKnown(known, e.From) || isKnown(known, e.To) || !graph.HasVertex(e.To) {
				continue
			}
			if !found || e.Less(best) {
				best, found = e, true
			}
		}
		if !found {
			return MST{}, fmt.Errorf("Prim: step %d of %d, %d vertices attached: %w", step, n-1, step, ErrDisconnected)
		}

		// 2b. Insert the record and its reverse.
		if err = attach(tree, best); err != nil {
			return MST{}, fmt.Errorf("Prim: attach %s: %w", best, err)
		}
		res.Edges = append(res.Edges, best)
		res.Weight += best.Weight

		// 2c. Grow the known set.
		known[best.To] = true

		// 2d. Prune known/known records.
		var dropped int
		work, dropped = work.Prune(known)
		res.Stats.Pruned += dropped
	}

	return res, nil
}

// isKnown reports known[v] with a range guard for foreign catalog records.
func isKnown(known []bool, v int) bool {
	return v >= 0 && v < len(known) && known[v]
}
