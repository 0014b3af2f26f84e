// SPDX-License-Identifier: MIT
//
// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It serves as an independent cross-check of Prim's total weight.
package prim_kruskal

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/twicearound/core"
)

// Kruskal computes a minimum spanning tree with a disjoint-set forest
// (path halving and union by rank).
//
// Both records of an undirected edge appear in the catalog; the second one
// always joins an already merged pair and is skipped, so no deduplication
// pass is needed.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil.
//   - ErrEmptyGraph   : graph has no vertices.
//   - ErrDisconnected : fewer than n−1 edges could be selected.
//
// Steps:
//  1. Copy the catalog and stable-sort it by weight (ties keep catalog order).
//  2. Initialize parent[v] = v and rank[v] = 0.
//  3. For each record (u,v): if find(u) != find(v), union and select it.
//  4. Stop at n−1 edges; fewer after the loop → ErrDisconnected.
//
// The tree weight always equals Prim's; under weight ties the chosen edges may differ.
// MST.Root is fixed at 0.
//
// Complexity: O(E log E + α(V)·E) time, O(V+E) memory.
func Kruskal(graph *core.Graph, catalog core.EdgeCatalog) (MST, error) {
	// 1. Validate.
	n, err := validate(graph, 0)
	if err != nil {
		return MST{}, fmt.Errorf("Kruskal: %w", err)
	}

	edges := catalog.Clone()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 2. Disjoint-set forest over dense indices.
	parent := make([]int, n)
	rank := make([]int, n)
	for v := range parent {
		parent[v] = v
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		switch {
		case rank[ru] < rank[rv]:
			parent[ru] = rv
		case rank[ru] > rank[rv]:
			parent[rv] = ru
		default:
			parent[rv] = ru
			rank[ru]++
		}
	}

	// 3. Scan records in weight order.
	res := MST{Tree: graph.CloneEmpty(), Edges: make([]core.Edge, 0, n-1), Root: 0}
	for _, e := range edges {
		if len(res.Edges) == n-1 {
			break
		}
		res.Stats.Scanned++
		if !graph.HasVertex(e.From) || !graph.HasVertex(e.To) {
			continue
		}
		if find(e.From) == find(e.To) {
			continue
		}
		union(e.From, e.To)
		if err = attach(res.Tree, e); err != nil {
			return MST{}, fmt.Errorf("Kruskal: attach %s: %w", e, err)
		}
		res.Edges = append(res.Edges, e)
		res.Weight += e.Weight
	}

	// 4. Disconnected when the forest did not merge into one tree.
	if len(res.Edges) < n-1 {
		return MST{}, fmt.Errorf("Kruskal: %d of %d edges selected: %w", len(res.Edges), n-1, ErrDisconnected)
	}

	return res, nil
}
