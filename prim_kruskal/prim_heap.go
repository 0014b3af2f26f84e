// SPDX-License-Identifier: MIT
//
// Package prim_kruskal provides a heap-accelerated Prim that returns exactly
// the tree of the catalog-scan Prim.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/twicearound/core"
)

// PrimHeap computes the same spanning tree as Prim using a min-heap frontier.
//
// Heap entries are keyed by (weight, catalog index). Prim's scan keeps the
// first minimum in catalog order among crossing records, and pruning keeps
// relative order, so the smallest key among pushed crossing records is the
// record the scan would pick.
//
// Error Conditions: same as Prim.
//
// Steps:
//  1. Index catalog records by start vertex, remembering catalog positions.
//  2. Mark root known and push its records.
//  3. While fewer than n−1 edges: pop the minimum; skip it if its end is
//     already known (lazy deletion); otherwise attach it, mark the end known
//     and push the records leaving it.
//  4. If the heap empties early → ErrDisconnected.
//
// Complexity: O(E log E) time, O(V+E) memory.
func PrimHeap(graph *core.Graph, catalog core.EdgeCatalog, root int) (MST, error) {
	// 1. Validate graph and root.
	n, err := validate(graph, root)
	if err != nil {
		return MST{}, fmt.Errorf("PrimHeap: %w", err)
	}

	// 1a. Bucket catalog positions by start vertex.
	byStart := make([][]int, n)
	for i, e := range catalog {
		if graph.HasVertex(e.From) && graph.HasVertex(e.To) {
			byStart[e.From] = append(byStart[e.From], i)
		}
	}

	tree := graph.CloneEmpty()
	known := make([]bool, n)
	res := MST{Tree: tree, Edges: make([]core.Edge, 0, n-1), Root: root}
	pq := &edgePQ{}
	heap.Init(pq)

	// push marks v known and queues every record leaving v towards an unknown vertex.
	push := func(v int) {
		known[v] = true
		for _, idx := range byStart[v] {
			if !known[catalog[idx].To] {
				heap.Push(pq, pqItem{edge: catalog[idx], idx: idx})
			}
		}
	}

	// 2. Seed the frontier.
	push(root)

	// 3. Main loop.
	for len(res.Edges) < n-1 {
		if pq.Len() == 0 {
			return MST{}, fmt.Errorf("PrimHeap: %d of %d vertices attached: %w", len(res.Edges)+1, n, ErrDisconnected)
		}
		it := heap.Pop(pq).(pqItem)
		res.Stats.Scanned++
		if known[it.edge.To] {
			res.Stats.Pruned++

			continue
		}
		if err = attach(tree, it.edge); err != nil {
			return MST{}, fmt.Errorf("PrimHeap: attach %s: %w", it.edge, err)
		}
		res.Edges = append(res.Edges, it.edge)
		res.Weight += it.edge.Weight
		push(it.edge.To)
	}

	return res, nil
}

// pqItem is a catalog record together with its catalog position.
type pqItem struct {
	edge core.Edge
	idx  int
}

// edgePQ implements heap.Interface for a min-heap of pqItem ordered by
// (Weight, catalog index).
type edgePQ []pqItem

// Len returns the number of queued records.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by weight, then by catalog position.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].edge.Weight != pq[j].edge.Weight {
		return pq[i].edge.Weight < pq[j].edge.Weight
	}

	return pq[i].idx < pq[j].idx
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a pqItem. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
