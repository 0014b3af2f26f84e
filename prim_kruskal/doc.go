// SPDX-License-Identifier: MIT
//
// Package prim_kruskal computes Minimum Spanning Trees over an undirected,
// weighted *core.Graph: the catalog-scan Prim used by the Twice-Around-the-Tree
// pipeline, a heap-accelerated equivalent, and Kruskal as a cross-check.
//
// What & Why
//
//   - What is an MST?
//     Given a connected weighted graph G = (V, E), an MST is a subset T ⊆ E
//     that connects all of V with minimum total weight. It has |V|−1 edges.
//
//   - Why it matters here:
//     Walking around an MST twice and shortcutting repeated vertices yields a
//     Hamiltonian circuit of weight at most 2·w(T) on metric inputs, and
//     w(T) is a lower bound on any tour.
//
// Algorithms Provided
//
//   - Prim(g, catalog, root) (MST, error)
//
//   - Strategy: keep a known set grown from root. Each of the |V|−1 steps
//     scans the flat catalog for the first lightest record leaving the known
//     set, attaches it, then prunes records whose endpoints are both known.
//
//   - Complexity: O(V·E) time. Pruning only lowers the constant.
//
//   - Determinism: ties resolve by catalog scan order.
//
//   - PrimHeap(g, catalog, root) (MST, error)
//
//   - Strategy: the same frontier held in a container/heap min-heap keyed by
//     (weight, catalog position), with lazy deletion of stale records.
//
//   - Complexity: O(E log E) time.
//
//   - Determinism: identical tree, edge order and weight to Prim.
//
//   - Kruskal(g, catalog) (MST, error)
//
//   - Strategy: stable sort by weight, then union-find.
//
//   - Complexity: O(E log E + α(V)·E).
//
//   - Determinism: same weight as Prim; the tree may differ under ties.
//
// Error Conditions
//
//	- ErrInvalidGraph   – graph is nil.
//	- ErrEmptyGraph     – |V| == 0.
//	- ErrRootOutOfRange – Prim root outside [0, |V|).
//	- ErrDisconnected   – no spanning tree exists.
//	- ErrUnknownMethod  – Compute with an unrecognized method name.
//
// The cut property makes any rule that always adds the lightest frontier edge
// correct, whatever the tie-break. The tie-break only fixes which of several
// equal-weight trees is returned, and that choice is visible downstream
// because the circuit walkers scan tree adjacency in order.
package prim_kruskal
