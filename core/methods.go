// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Edge lifecycle and read-only queries on Graph.
// Determinism:
//   - Neighbors and Edges preserve insertion order.
//   - EdgeBetween returns the first matching record in the start's adjacency.

package core

import "fmt"

// Order returns the number of vertices.
//
// Complexity: O(1).
func (g *Graph) Order() int {
	return len(g.adj)
}

// Size returns the number of undirected edges, i.e. half the directed records.
//
// Complexity: O(1).
func (g *Graph) Size() int {
	return g.arcs / 2
}

// HasVertex reports whether v is a valid index.
//
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < len(g.adj)
}

// AddEdge inserts the undirected edge {u,v} of weight w as the two records
// (u,v,w) appended to adj[u] and (v,u,w) appended to adj[v].
//
// Errors: ErrVertexOutOfRange, ErrLoopNotAllowed, ErrNegativeWeight.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) error {
	if err := g.checkArc(u, v, w); err != nil {
		return fmt.Errorf("AddEdge(%d,%d,%d): %w", u, v, w, err)
	}
	g.adj[u] = append(g.adj[u], Edge{From: u, To: v, Weight: w})
	g.adj[v] = append(g.adj[v], Edge{From: v, To: u, Weight: w})
	g.arcs += 2

	return nil
}

// AddArc appends the single directed record (u,v,w) to adj[u].
// The graph is only valid once every record has its mirror; call Validate
// after the last AddArc.
//
// Errors: ErrVertexOutOfRange, ErrLoopNotAllowed, ErrNegativeWeight.
//
// Complexity: O(1) amortized.
func (g *Graph) AddArc(u, v int, w int64) error {
	if err := g.checkArc(u, v, w); err != nil {
		return fmt.Errorf("AddArc(%d,%d,%d): %w", u, v, w, err)
	}
	g.adj[u] = append(g.adj[u], Edge{From: u, To: v, Weight: w})
	g.arcs++

	return nil
}

// checkArc validates endpoints and weight for a single record.
func (g *Graph) checkArc(u, v int, w int64) error {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrVertexOutOfRange
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	if w < 0 {
		return ErrNegativeWeight
	}

	return nil
}

// Neighbors returns the adjacency of v in insertion order.
// The returned slice aliases internal storage and must not be modified.
//
// Complexity: O(1).
func (g *Graph) Neighbors(v int) ([]Edge, error) {
	if !g.HasVertex(v) {
		return nil, fmt.Errorf("Neighbors(%d): %w", v, ErrVertexOutOfRange)
	}

	return g.adj[v], nil
}

// EdgeBetween returns the first record u→v in u's adjacency.
// The boolean is false when no such record exists or an index is invalid.
//
// Complexity: O(deg(u)).
func (g *Graph) EdgeBetween(u, v int) (Edge, bool) {
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return Edge{}, false
	}
	for _, e := range g.adj[u] {
		if e.To == v {
			return e, true
		}
	}

	return Edge{}, false
}

// Edges returns every directed record in adjacency order: all of vertex 0's
// records, then vertex 1's, and so on. The result is a fresh slice.
//
// Complexity: O(V+E).
func (g *Graph) Edges() EdgeCatalog {
	out := make(EdgeCatalog, 0, g.arcs)
	for _, list := range g.adj {
		out = append(out, list...)
	}

	return out
}

// TotalWeight returns the sum of weights over undirected edges
// (each mirrored pair counted once).
//
// Complexity: O(V+E).
func (g *Graph) TotalWeight() int64 {
	return g.Edges().Weight() / 2
}

// Validate checks the symmetry invariant: records are matched as a multiset,
// so k parallel (u,v,w) records need k mirrors (v,u,w).
// Returns ErrAsymmetric wrapped with the first unmatched record.
//
// Complexity: O(V+E) time and space.
func (g *Graph) Validate() error {
	type key struct {
		from, to int
		w        int64
	}
	pending := make(map[key]int, g.arcs)
	for _, list := range g.adj {
		for _, e := range list {
			pending[key{e.From, e.To, e.Weight}]++
		}
	}
	for _, list := range g.adj {
		for _, e := range list {
			if pending[key{e.From, e.To, e.Weight}] != pending[key{e.To, e.From, e.Weight}] {
				return fmt.Errorf("Validate: record %s has no mirror %s: %w", e, e.Reverse(), ErrAsymmetric)
			}
		}
	}

	return nil
}

// Connected reports whether every vertex is reachable from vertex 0.
//
// Implementation: breadth-first search over the adjacency slices with an
// index-based queue.
//
// Complexity: O(V+E) time, O(V) space.
func (g *Graph) Connected() bool {
	n := len(g.adj)
	seen := make([]bool, n)
	queue := make([]int, 0, n)
	seen[0] = true
	queue = append(queue, 0)
	for head := 0; head < len(queue); head++ {
		for _, e := range g.adj[queue[head]] {
			if !seen[e.To] {
				seen[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}

	return len(queue) == n
}

// Complete reports whether every ordered pair of distinct vertices has at
// least one record, i.e. the graph is K_n (possibly with parallel edges).
//
// Complexity: O(V² + E).
func (g *Graph) Complete() bool {
	n := len(g.adj)
	mark := make([]int, n) // mark[x] == u+1 when u→x was seen
	for u, list := range g.adj {
		distinct := 0
		for _, e := range list {
			if mark[e.To] != u+1 {
				mark[e.To] = u + 1
				distinct++
			}
		}
		if distinct != n-1 {
			return false
		}
	}

	return true
}

// Clone returns a deep copy of g.
//
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	cp := &Graph{adj: make([][]Edge, len(g.adj)), arcs: g.arcs}
	for v, list := range g.adj {
		cp.adj[v] = append([]Edge(nil), list...)
	}

	return cp
}

// CloneEmpty returns a graph of the same order with no edges.
// Spanning trees are grown into such a graph.
//
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	return &Graph{adj: make([][]Edge, len(g.adj))}
}
