// SPDX-License-Identifier: MIT
//
// Package tsp - Eulerian circuit of the doubled spanning tree (Hierholzer).
package tsp

import "github.com/katalvlaran/twicearound/core"

// halfEdge is one direction of an undirected multigraph edge; id is shared
// by both directions so that traversing one retires the other.
type halfEdge struct {
	to int
	id int
}

// doubleTree returns the multigraph in which every tree edge appears twice,
// rooted at start. Tree edge parent(c)-c carries ids 2c (down) and 2c+1 (up).
//
// Each list is ordered: down copy from parent, then for every child in tree
// adjacency order its down and up copies, then the up copy to parent. With
// that order a first-unused walk from start never strands an edge.
// Vertices the tree does not reach get no half-edges.
//
// Complexity: O(V) time and memory.
func doubleTree(tree *core.Graph, start int) [][]halfEdge {
	n := tree.Order()
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	parent[start] = start

	// Iterative DFS; children keep tree adjacency order.
	adj := make([][]halfEdge, n)
	type frame struct{ v, pos int }
	stack := []frame{{v: start}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		list, _ := tree.Neighbors(top.v)
		if top.pos == len(list) {
			if v := top.v; v != start {
				adj[v] = append(adj[v], halfEdge{to: parent[v], id: 2*v + 1})
			}
			stack = stack[:len(stack)-1]

			continue
		}
		c := list[top.pos].To
		top.pos++
		if parent[c] != -1 {
			continue
		}
		parent[c] = top.v
		adj[top.v] = append(adj[top.v], halfEdge{to: c, id: 2 * c}, halfEdge{to: c, id: 2*c + 1})
		adj[c] = append(adj[c], halfEdge{to: top.v, id: 2 * c})
		stack = append(stack, frame{v: c})
	}

	return adj
}

// EulerianCircuit returns an Eulerian circuit of the doubled tree starting and
// ending at start. A tree with V vertices yields 2(V−1)+1 entries; a single
// vertex yields [start]. Shortcutting it gives the depth-first preorder.
//
// Hierholzer's algorithm: follow unused half-edges from the stack top, emit a
// vertex when it has none left, and reverse the emitted sequence.
//
// Complexity: O(V) time and memory.
func EulerianCircuit(tree *core.Graph, start int) []int {
	adj := doubleTree(tree, start)
	used := make([]bool, 2*len(adj))
	next := make([]int, len(adj)) // next unread position in adj[u]

	var circuit []int
	stack := []int{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		for next[u] < len(adj[u]) && used[adj[u][next[u]].id] {
			next[u]++
		}
		if next[u] == len(adj[u]) {
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]

			continue
		}
		h := adj[u][next[u]]
		used[h.id] = true
		stack = append(stack, h.to)
	}

	for i, j := 0, len(circuit)-1; i < j; i, j = i+1, j-1 {
		circuit[i], circuit[j] = circuit[j], circuit[i]
	}

	return circuit
}
