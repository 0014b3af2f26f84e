// Package tsp_test validates the walkers and the Solve pipeline via the public API.
// Focus:
//  1. The pinned 4-vertex scenario (sweep and preorder).
//  2. Boundaries n = 1 and n = 2.
//  3. Loud failures on non-complete inputs.
//  4. Properties on random complete and Euclidean graphs: tour shape,
//     determinism, Cost ≥ MST, preorder ≤ 2·MST.
package tsp_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/twicearound/builder"
	"github.com/katalvlaran/twicearound/core"
	"github.com/katalvlaran/twicearound/prim_kruskal"
	"github.com/katalvlaran/twicearound/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildGraph constructs an order-n graph from undirected (u,v,w) triples.
func buildGraph(t testing.TB, n int, edges [][3]int64) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}

	return g
}

// buildScenario is the 4-vertex complete graph whose MST is the star at 0.
func buildScenario(t testing.TB) *core.Graph {
	return buildGraph(t, 4, [][3]int64{
		{0, 1, 1}, {0, 2, 3}, {0, 3, 4}, {1, 2, 5}, {1, 3, 6}, {2, 3, 7},
	})
}

// mstOf returns the reference Prim tree rooted at 0.
func mstOf(t testing.TB, g *core.Graph) prim_kruskal.MST {
	t.Helper()
	mst, err := prim_kruskal.Prim(g, g.Edges(), 0)
	require.NoError(t, err)

	return mst
}

// randomComplete returns K_n with uniform weights in [1,100].
func randomComplete(t testing.TB, n int, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n,
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 100)},
		builder.Complete(),
	)
	require.NoError(t, err)

	return g
}

// randomEuclidean returns a complete metric graph over n random points.
func randomEuclidean(t testing.TB, n int, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n, []builder.BuilderOption{builder.WithSeed(seed)}, builder.Euclidean())
	require.NoError(t, err)

	return g
}

// -----------------------------------------------------------------------------
// 1) Pinned scenario.
// -----------------------------------------------------------------------------

// TestSweep_Scenario pins the reference walk: 0 appends its tree child 1,
// vertices 1 and 2 fall back to the graph, and 3 closes back to 0.
// 17 exceeds 2·MST = 16: the fallback forfeits the bound, which is flagged here.
func TestSweep_Scenario(t *testing.T) {
	g := buildScenario(t)
	mst := mstOf(t, g)
	require.Equal(t, int64(8), mst.Weight)

	walk, err := tsp.Sweep(g, mst.Tree, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 0}, walk.Tour)
	assert.Equal(t, int64(17), walk.Cost)
	assert.Equal(t, 2, walk.Stats.Fallbacks)
	assert.Zero(t, walk.Stats.Detached)
	assert.Greater(t, walk.Cost, 2*mst.Weight, "fallback walk exceeds the 2×MST bound")
}

func TestPreorder_Scenario(t *testing.T) {
	g := buildScenario(t)
	mst := mstOf(t, g)

	walk, err := tsp.Preorder(g, mst.Tree, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 0}, walk.Tour)
	assert.Equal(t, int64(17), walk.Cost)
}

func TestSolve_Scenario(t *testing.T) {
	g := buildScenario(t)

	res, err := tsp.Solve(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, res.Tour)
	assert.Equal(t, int64(17), res.Cost)
	assert.Equal(t, int64(8), res.MSTWeight)
	assert.Equal(t, 2, res.Stats.Fallbacks)
	assert.False(t, res.WithinBound())
	assert.Positive(t, res.MSTStats.Scanned)

	// 17 is optimal on this graph: the polish finds nothing.
	res, err = tsp.Solve(g, tsp.WithTwoOpt(0))
	require.NoError(t, err)
	assert.Equal(t, int64(17), res.Cost)
	assert.Zero(t, res.Stats.TwoOptMoves)
}

// TestSweep_Detached pins a walk whose appends come from a vertex that is not the tail.
func TestSweep_Detached(t *testing.T) {
	g := buildGraph(t, 4, [][3]int64{
		{0, 2, 1}, {0, 1, 2}, {0, 3, 3}, {1, 2, 10}, {1, 3, 10}, {2, 3, 10},
	})
	mst := mstOf(t, g)

	walk, err := tsp.Sweep(g, mst.Tree, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 3, 1, 0}, walk.Tour)
	assert.Equal(t, int64(23), walk.Cost)
	assert.Equal(t, 2, walk.Stats.Fallbacks)
	assert.Equal(t, 2, walk.Stats.Detached)
}

// -----------------------------------------------------------------------------
// 2) Boundaries.
// -----------------------------------------------------------------------------

func TestWalkers_Boundaries(t *testing.T) {
	for _, walk := range []string{tsp.WalkSweep, tsp.WalkPreorder} {
		t.Run(walk, func(t *testing.T) {
			single := buildGraph(t, 1, nil)
			res, err := tsp.Solve(single, tsp.WithWalk(walk))
			require.NoError(t, err)
			assert.Equal(t, []int{0, 0}, res.Tour)
			assert.Zero(t, res.Cost)

			pair := buildGraph(t, 2, [][3]int64{{0, 1, 7}})
			res, err = tsp.Solve(pair, tsp.WithWalk(walk))
			require.NoError(t, err)
			assert.Equal(t, []int{0, 1, 0}, res.Tour)
			assert.Equal(t, int64(14), res.Cost)
			assert.True(t, res.WithinBound())
		})
	}
}

// TestWalkers_ParallelPair: the tree keeps the light record (0,1,1). The
// sweep charges it going out and the first 1→0 record (5) coming back; the
// preorder walk retraces the tree edge both ways.
func TestWalkers_ParallelPair(t *testing.T) {
	g := buildGraph(t, 2, [][3]int64{{0, 1, 5}, {0, 1, 1}})
	mst := mstOf(t, g)
	require.Equal(t, int64(1), mst.Weight)

	sweep, err := tsp.Sweep(g, mst.Tree, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0}, sweep.Tour)
	assert.Equal(t, int64(6), sweep.Cost)

	pre, err := tsp.Preorder(g, mst.Tree, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0}, pre.Tour)
	assert.Equal(t, int64(2), pre.Cost)

	res, err := tsp.Solve(g, tsp.WithTwoOpt(0))
	require.NoError(t, err)
	assert.Equal(t, int64(6), res.Cost, "an unchanged tour keeps the walk's cost")
	assert.Zero(t, res.Stats.TwoOptMoves)

	res, err = tsp.Solve(g, tsp.WithWalk(tsp.WalkPreorder))
	require.NoError(t, err)
	assert.True(t, res.WithinBound())
}

// TestWalkers_HeavyParallelFirst: a heavy 0-1 record listed before the light
// one must not leak into the cost of a walk that follows the tree edge.
func TestWalkers_HeavyParallelFirst(t *testing.T) {
	g := buildGraph(t, 4, [][3]int64{
		{0, 1, 20}, {0, 1, 1}, {0, 2, 3}, {0, 3, 4}, {1, 2, 5}, {1, 3, 6}, {2, 3, 7},
	})
	mst := mstOf(t, g)
	require.Equal(t, int64(8), mst.Weight)

	for _, walk := range []func(graph, tree *core.Graph, root int) (tsp.Walk, error){tsp.Sweep, tsp.Preorder} {
		w, err := walk(g, mst.Tree, 0)
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3, 0}, w.Tour)
		assert.Equal(t, int64(17), w.Cost)
	}

	first, err := tsp.TourCost(g, []int{0, 1, 2, 3, 0})
	require.NoError(t, err)
	assert.Equal(t, int64(36), first, "TourCost reads the first record of each pair")
}

func TestSolve_NonZeroRoot(t *testing.T) {
	g := buildScenario(t)

	for _, walk := range []string{tsp.WalkSweep, tsp.WalkPreorder} {
		res, err := tsp.Solve(g, tsp.WithRoot(2), tsp.WithWalk(walk))
		require.NoError(t, err, walk)
		assert.NoError(t, tsp.ValidateTour(res.Tour, 4, 2), walk)
		assert.Equal(t, 2, res.Tour[0], walk)
	}
}

// -----------------------------------------------------------------------------
// 3) Failures.
// -----------------------------------------------------------------------------

func TestSweep_NoClosingEdge(t *testing.T) {
	g, err := builder.BuildGraph(4, nil, builder.Path())
	require.NoError(t, err)

	_, err = tsp.Sweep(g, mstOf(t, g).Tree, 0)
	assert.ErrorIs(t, err, tsp.ErrNoClosingEdge)
	assert.Contains(t, err.Error(), "no direct edge to close tour")
}

func TestWalkers_StarGraph(t *testing.T) {
	g, err := builder.BuildGraph(4, nil, builder.Star())
	require.NoError(t, err)
	tree := mstOf(t, g).Tree

	_, err = tsp.Sweep(g, tree, 0)
	assert.ErrorIs(t, err, tsp.ErrIncompleteCircuit)

	_, err = tsp.Preorder(g, tree, 0)
	assert.ErrorIs(t, err, tsp.ErrMissingEdge)
}

func TestWalkers_CycleGraph(t *testing.T) {
	g, err := builder.BuildGraph(4, nil, builder.Cycle())
	require.NoError(t, err)
	tree := mstOf(t, g).Tree

	sweep, err := tsp.Sweep(g, tree, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, sweep.Tour)
	assert.Equal(t, int64(4), sweep.Cost)
	assert.Equal(t, 1, sweep.Stats.Fallbacks)

	pre, err := tsp.Preorder(g, tree, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, pre.Tour)
}

func TestWalkers_InvalidInputs(t *testing.T) {
	g := buildScenario(t)
	tree := mstOf(t, g).Tree
	small := buildGraph(t, 2, [][3]int64{{0, 1, 1}})

	for name, walker := range map[string]func(g, tree *core.Graph, root int) (tsp.Walk, error){
		"sweep":    tsp.Sweep,
		"preorder": tsp.Preorder,
	} {
		_, err := walker(nil, tree, 0)
		assert.ErrorIs(t, err, tsp.ErrInvalidGraph, name)
		_, err = walker(g, nil, 0)
		assert.ErrorIs(t, err, tsp.ErrInvalidGraph, name)
		_, err = walker(g, small, 0)
		assert.ErrorIs(t, err, tsp.ErrTreeMismatch, name)
		_, err = walker(g, tree, 4)
		assert.ErrorIs(t, err, tsp.ErrRootOutOfRange, name)
	}
}

func TestSolve_Errors(t *testing.T) {
	_, err := tsp.Solve(nil)
	assert.ErrorIs(t, err, tsp.ErrInvalidGraph)

	g := buildScenario(t)
	_, err = tsp.Solve(g, tsp.WithWalk("spiral"))
	assert.ErrorIs(t, err, tsp.ErrUnknownWalk)

	_, err = tsp.Solve(g, tsp.WithMSTMethod("boruvka"))
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)

	_, err = tsp.Solve(g, tsp.WithRoot(9))
	assert.ErrorIs(t, err, prim_kruskal.ErrRootOutOfRange)

	split := buildGraph(t, 4, [][3]int64{{0, 1, 1}, {2, 3, 1}})
	_, err = tsp.Solve(split)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

// -----------------------------------------------------------------------------
// 4) Properties.
// -----------------------------------------------------------------------------

// TestSolve_TourShape checks len n+1, closed at root, each vertex once, on
// every MST method and walker.
func TestSolve_TourShape(t *testing.T) {
	methods := []string{prim_kruskal.MethodPrim, prim_kruskal.MethodPrimHeap, prim_kruskal.MethodKruskal}
	walks := []string{tsp.WalkSweep, tsp.WalkPreorder}

	for seed := int64(1); seed <= 6; seed++ {
		g := randomComplete(t, 9, seed)
		for _, m := range methods {
			for _, w := range walks {
				name := fmt.Sprintf("seed=%d/%s/%s", seed, m, w)
				res, err := tsp.Solve(g, tsp.WithMSTMethod(m), tsp.WithWalk(w))
				require.NoError(t, err, name)

				assert.NoError(t, tsp.ValidateTour(res.Tour, 9, 0), name)
				cost, err := tsp.TourCost(g, res.Tour)
				require.NoError(t, err, name)
				assert.Equal(t, cost, res.Cost, name)
				assert.GreaterOrEqual(t, res.Cost, res.MSTWeight, name)
			}
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	g := randomComplete(t, 15, 99)

	first, err := tsp.Solve(g)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := tsp.Solve(g)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestPreorder_WithinTwiceMST checks the classical bound on metric inputs.
func TestPreorder_WithinTwiceMST(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := randomEuclidean(t, 25, seed)

		res, err := tsp.Solve(g, tsp.WithWalk(tsp.WalkPreorder))
		require.NoError(t, err)
		assert.True(t, res.WithinBound(), "seed %d: cost %d, 2·MST %d", seed, res.Cost, 2*res.MSTWeight)
		assert.GreaterOrEqual(t, res.Cost, res.MSTWeight)
	}
}

// TestSweep_BoundWithoutFallback: a sweep that only follows tree edges from
// the tail is a tree path plus a metric closing edge, hence within 2·MST.
func TestSweep_BoundWithoutFallback(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g := randomEuclidean(t, 10, seed)

		res, err := tsp.Solve(g)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.Cost, res.MSTWeight)
		if res.Stats.Fallbacks == 0 && res.Stats.Detached == 0 {
			assert.True(t, res.WithinBound(), "seed %d", seed)
		}
	}
}

// TestSolve_NotBelowOptimum compares against brute force for small n.
func TestSolve_NotBelowOptimum(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := randomComplete(t, 7, seed)
		opt := bruteForceTour(t, g)

		for _, w := range []string{tsp.WalkSweep, tsp.WalkPreorder} {
			res, err := tsp.Solve(g, tsp.WithWalk(w), tsp.WithTwoOpt(0))
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.Cost, opt, "seed %d walk %s", seed, w)
			assert.GreaterOrEqual(t, opt, res.MSTWeight)
		}
	}
}

// bruteForceTour returns the optimal tour cost over all permutations fixing vertex 0.
func bruteForceTour(t testing.TB, g *core.Graph) int64 {
	t.Helper()
	n := g.Order()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	best := int64(-1)
	var permute func(k int)
	permute = func(k int) {
		if k == n {
			tour, err := tsp.MakeTourFromPermutation(perm, 0)
			require.NoError(t, err)
			cost, err := tsp.TourCost(g, tour)
			require.NoError(t, err)
			if best < 0 || cost < best {
				best = cost
			}
			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			permute(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	permute(1)

	return best
}
