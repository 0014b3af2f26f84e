// SPDX-License-Identifier: MIT
//
// Package tsp - shared types, options and sentinel errors.
//
// Contracts (all walkers and helpers):
//   - A tour over n vertices is a closed sequence of length n+1 with
//     tour[0] == tour[n] == root, every vertex 0..n−1 exactly once in tour[0..n−1].
//   - Every consecutive pair is joined by a real record of the source graph;
//     its weight is the weight of the first such record (core.Graph.EdgeBetween).
//   - Errors are sentinels below, wrapped with the failing operation and index.
package tsp

import (
	"errors"

	"github.com/katalvlaran/twicearound/prim_kruskal"
)

// Sentinel errors.
var (
	// ErrInvalidGraph indicates a nil graph or tree.
	ErrInvalidGraph = errors.New("tsp: graph and tree must be non-nil")

	// ErrTreeMismatch indicates a tree whose order differs from the graph's.
	ErrTreeMismatch = errors.New("tsp: tree order does not match graph order")

	// ErrRootOutOfRange indicates a root outside [0, n).
	ErrRootOutOfRange = errors.New("tsp: root vertex out of range")

	// ErrIncompleteCircuit indicates a walk that could not reach every vertex.
	ErrIncompleteCircuit = errors.New("tsp: circuit does not cover every vertex")

	// ErrMissingEdge indicates two consecutive tour vertices with no edge between them.
	ErrMissingEdge = errors.New("tsp: consecutive tour vertices are not adjacent")

	// ErrNoClosingEdge indicates that the last visited vertex has no edge back to root.
	ErrNoClosingEdge = errors.New("tsp: no direct edge to close tour")

	// ErrInvalidTour indicates a sequence that violates the closed-tour contract.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrUnknownWalk indicates an Options.Walk outside the Walk* constants.
	ErrUnknownWalk = errors.New("tsp: unknown walk method")
)

// WalkSweep selects the reference walk: vertices in index order, tree
// adjacency first, original-graph adjacency as fallback.
const WalkSweep = "sweep"

// WalkPreorder selects the doubled-tree Euler tour with shortcutting.
const WalkPreorder = "preorder"

// Stats counts what happened during one walk and its optional polish.
type Stats struct {
	// Fallbacks counts sweep steps served by the original graph instead of the tree.
	Fallbacks int

	// Detached counts sweep appends whose enumeration vertex was not the circuit tail.
	Detached int

	// TwoOptMoves counts accepted 2-opt reversals.
	TwoOptMoves int
}

// Walk is a closed tour produced by a walker, with its cost.
type Walk struct {
	Tour  []int
	Cost  int64
	Stats Stats
}

// Result is the outcome of Solve.
type Result struct {
	// Tour is the closed Hamiltonian circuit, Tour[0] == Tour[n] == root.
	Tour []int

	// Cost is the sum of the weights of consecutive Tour pairs.
	Cost int64

	// MSTWeight is the weight of the spanning tree the walk started from.
	MSTWeight int64

	// Stats are the walk counters.
	Stats Stats

	// MSTStats are the spanning-tree counters.
	MSTStats prim_kruskal.Stats
}

// WithinBound reports whether Cost ≤ 2·MSTWeight, the Twice-Around-the-Tree
// guarantee on metric inputs. The sweep walker may exceed it when it falls back.
func (r Result) WithinBound() bool {
	return r.Cost <= 2*r.MSTWeight
}

// Options configures Solve.
//
// Fields:
//
//	Root           int    - start and end vertex of the tour.
//	Walk           string - WalkSweep or WalkPreorder.
//	MSTMethod      string - prim_kruskal.MethodPrim, MethodPrimHeap or MethodKruskal.
//	TwoOpt         bool   - run the 2-opt polish after the walk.
//	TwoOptMaxMoves int    - cap on accepted 2-opt moves; 0 means until local optimum.
type Options struct {
	Root           int
	Walk           string
	MSTMethod      string
	TwoOpt         bool
	TwoOptMaxMoves int
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns the reference pipeline: root 0, catalog-scan Prim,
// sweep walker, no polish.
func DefaultOptions() Options {
	return Options{
		Root:      0,
		Walk:      WalkSweep,
		MSTMethod: prim_kruskal.MethodPrim,
	}
}

// WithRoot sets the tour root.
func WithRoot(root int) Option {
	return func(o *Options) { o.Root = root }
}

// WithWalk sets the walker.
func WithWalk(walk string) Option {
	return func(o *Options) { o.Walk = walk }
}

// WithMSTMethod sets the spanning-tree algorithm.
func WithMSTMethod(method string) Option {
	return func(o *Options) { o.MSTMethod = method }
}

// WithTwoOpt enables the 2-opt polish with a cap on accepted moves (0 = no cap).
func WithTwoOpt(maxMoves int) Option {
	return func(o *Options) {
		o.TwoOpt = true
		o.TwoOptMaxMoves = maxMoves
	}
}
