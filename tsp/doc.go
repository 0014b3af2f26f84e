// Package tsp turns a minimum spanning tree into a Hamiltonian circuit, the
// second half of the Twice-Around-the-Tree heuristic for the Travelling
// Salesman Problem on an undirected weighted *core.Graph.
//
// It provides two walkers over a spanning tree:
//
//   - Sweep - the reference walk. Vertices are enumerated in index order;
//     each appends its first unvisited tree neighbour, falling back to the
//     original graph when the tree offers none.
//
//   - Complexity: O(V + E)
//
//   - Bound: Cost ≤ 2·MST only when no fallback fires on a metric graph.
//
//   - Preorder - the textbook walk. Euler circuit of the doubled tree
//     (Hierholzer), then shortcut of revisits.
//
//   - Complexity: O(V + E)
//
//   - Bound: Cost ≤ 2·MST on graphs obeying the triangle inequality.
//
// TwoOpt optionally polishes either result, accepting only moves whose new
// edges exist. Solve chains prim_kruskal.Compute, a walker and the polish.
//
// Every tour is closed: len == n+1, tour[0] == tour[n] == root. n = 1 gives
// [root, root] at cost 0. Inputs should be complete or metric graphs; when the
// last vertex has no edge back to root the walk fails with ErrNoClosingEdge.
package tsp
