// SPDX-License-Identifier: MIT
//
// Package core provides the index-based, undirected, weighted Graph used by
// every algorithm in twicearound, together with the flat EdgeCatalog that
// Prim's catalog scan consumes.
//
// Model:
//
//   - Vertices are dense indices 0..n-1; they carry no attributes.
//   - An undirected edge {u,v} of weight w is stored as two directed records
//     (u→v,w) and (v→u,w). AddEdge writes both; AddArc writes one and is meant
//     for loaders that read adjacency lists, which then call Validate.
//   - Each vertex owns an adjacency slice in insertion order. That order is
//     observable: Prim breaks weight ties by catalog order and the circuit
//     walkers take the first unvisited neighbour.
//
// Invariants (checked by Validate):
//
//   - Symmetry: every (u,v,w) has a matching (v,u,w), counted as a multiset.
//   - No self-loops; weights are non-negative.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)              // O(n)
//	AddEdge(u, v int, w int64) error             // O(1) amortized, both records
//	AddArc(u, v int, w int64) error              // O(1) amortized, one record
//	Neighbors(v int) ([]Edge, error)             // O(1), read-only view
//	EdgeBetween(u, v int) (Edge, bool)           // O(deg(u))
//	Edges() EdgeCatalog                          // O(E), adjacency order
//	Validate() error                             // O(E)
//	Connected() bool                             // O(V+E), BFS from 0
//	Complete() bool                              // O(V+E)
//	Clone() *Graph                               // O(V+E)
//
// Concurrency:
//
//	Graph is not safe for concurrent mutation. Once built it is read-only for
//	the rest of a run, and concurrent readers need no locking.
//
// Errors:
//
//	ErrEmptyGraph          – NewGraph with n < 1
//	ErrVertexOutOfRange    – an index outside [0, n)
//	ErrNegativeWeight      – weight < 0
//	ErrLoopNotAllowed      – u == v
//	ErrAsymmetric          – a directed record has no mirror
package core
