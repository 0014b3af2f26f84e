// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph and Edge types, the flat EdgeCatalog,
// sentinel errors, and the NewGraph constructor.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyGraph indicates a graph with no vertices was requested.
	ErrEmptyGraph = errors.New("core: graph has no vertices")

	// ErrVertexOutOfRange indicates an operation referenced an index outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrAsymmetric indicates a directed record (u,v,w) without its mirror (v,u,w).
	ErrAsymmetric = errors.New("core: adjacency is not symmetric")
)

// Edge is one directed record of an undirected edge.
//
// Edges compare by Weight only; callers that need a total order break ties
// by position (catalog scan order or adjacency order).
type Edge struct {
	// From is the start vertex index.
	From int

	// To is the end vertex index.
	To int

	// Weight is the non-negative cost of the edge.
	Weight int64
}

// Reverse returns the mirror record (To→From) with the same weight.
func (e Edge) Reverse() Edge {
	return Edge{From: e.To, To: e.From, Weight: e.Weight}
}

// Less reports whether e is strictly lighter than other.
// Equal weights are not ordered, so a scan keeping the first minimum
// resolves ties by scan position.
func (e Edge) Less(other Edge) bool {
	return e.Weight < other.Weight
}

// String renders the record as "(from,to,weight)".
func (e Edge) String() string {
	return fmt.Sprintf("(%d,%d,%d)", e.From, e.To, e.Weight)
}

// Graph is an undirected weighted graph over vertices 0..n-1.
//
// adj[v] holds the directed records leaving v in insertion order.
// arcs counts directed records, so an undirected graph holds arcs/2 edges.
type Graph struct {
	adj  [][]Edge
	arcs int
}

// NewGraph creates a graph with n isolated vertices.
// Returns ErrEmptyGraph when n < 1.
//
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewGraph(n=%d): %w", n, ErrEmptyGraph)
	}

	return &Graph{adj: make([][]Edge, n)}, nil
}
