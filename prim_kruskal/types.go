// SPDX-License-Identifier: MIT
//
// Package prim_kruskal defines configuration options, the MST result type and
// sentinel errors for spanning-tree computation.
// It supports selecting between the catalog-scan Prim, the heap-accelerated
// Prim and Kruskal via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/twicearound/core"
)

// ErrInvalidGraph indicates that a nil graph was supplied.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil graph")

// ErrEmptyGraph indicates a graph without vertices.
var ErrEmptyGraph = errors.New("prim_kruskal: graph has no vertices")

// ErrRootOutOfRange indicates that the Prim root is not a vertex of the graph.
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrDisconnected indicates that no catalog record crosses the known/unknown
// frontier at some step, so a spanning tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method outside the Method* constants.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm with a linear catalog scan and pruning.
const MethodPrim = "prim"

// MethodPrimHeap selects Prim's algorithm with a binary-heap frontier.
const MethodPrimHeap = "prim-heap"

// MethodKruskal selects Kruskal's algorithm (stable sort and union-find).
const MethodKruskal = "kruskal"

// Stats counts the basic operations of one MST run.
type Stats struct {
	// Scanned is the number of catalog records examined (scan) or popped (heap).
	Scanned int

	// Pruned is the number of records removed from the catalog as known/known.
	Pruned int
}

// MST is a spanning tree grown over a graph.
//
// Tree has the same order as the source graph and holds every selected edge
// as two mirrored records, so Tree.Size() == Order()-1.
// Edges lists the selected records in selection order, oriented from the
// vertex that was already in the tree to the newly attached one (Prim) or
// in catalog orientation (Kruskal).
type MST struct {
	Tree   *core.Graph
	Edges  []core.Edge
	Weight int64
	Root   int
	Stats  Stats
}

// MSTOptions configures which MST algorithm to run, and for Prim, which root to grow from.
// Use DefaultOptions() to get the reference setup (catalog-scan Prim from vertex 0).
//
// Fields:
//
//	Method string - one of MethodPrim, MethodPrimHeap or MethodKruskal.
//	Root   int    - start vertex for Prim; recorded but unused by Kruskal.
//
// Complexity: O(V·E) for Prim, O(E log E) for PrimHeap and Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim, MethodPrimHeap or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm.
	Root int
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root int) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions for the reference pipeline:
//
//	– Method = MethodPrim
//	– Root   = 0
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodPrim,
		Root:   0,
	}
}

// Compute selects and runs the MST algorithm chosen by opts over graph and catalog.
//
//	– MethodPrim:     Prim(graph, catalog, Root)
//	– MethodPrimHeap: PrimHeap(graph, catalog, Root)
//	– MethodKruskal:  Kruskal(graph, catalog)
//	– otherwise:      ErrUnknownMethod
func Compute(graph *core.Graph, catalog core.EdgeCatalog, opts ...Option) (MST, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	switch o.Method {
	case MethodPrim:
		return Prim(graph, catalog, o.Root)
	case MethodPrimHeap:
		return PrimHeap(graph, catalog, o.Root)
	case MethodKruskal:
		return Kruskal(graph, catalog)
	default:
		return MST{}, fmt.Errorf("Compute(method=%q): %w", o.Method, ErrUnknownMethod)
	}
}

// validate applies the checks shared by every method and returns the order of graph.
func validate(graph *core.Graph, root int) (int, error) {
	if graph == nil {
		return 0, ErrInvalidGraph
	}
	n := graph.Order()
	if n == 0 {
		return 0, ErrEmptyGraph
	}
	if root < 0 || root >= n {
		return 0, fmt.Errorf("root=%d, n=%d: %w", root, n, ErrRootOutOfRange)
	}

	return n, nil
}

// attach inserts e and its mirror into tree.
func attach(tree *core.Graph, e core.Edge) error {
	return tree.AddEdge(e.From, e.To, e.Weight)
}
