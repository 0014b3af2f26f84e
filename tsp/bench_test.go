// Package tsp_test - benchmarks for the walkers, the polish and Solve.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/twicearound/tsp"
)

func BenchmarkSweep(b *testing.B) {
	g := randomComplete(b, 200, 1)
	tree := mstOf(b, g).Tree
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.Sweep(g, tree, 0)
	}
}

func BenchmarkPreorder(b *testing.B) {
	g := randomComplete(b, 200, 1)
	tree := mstOf(b, g).Tree
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.Preorder(g, tree, 0)
	}
}

func BenchmarkTwoOpt(b *testing.B) {
	g := randomEuclidean(b, 100, 1)
	walk, err := tsp.Preorder(g, mstOf(b, g).Tree, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _, _ = tsp.TwoOpt(g, walk.Tour, 0)
	}
}

func BenchmarkSolve(b *testing.B) {
	g := randomComplete(b, 120, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.Solve(g)
	}
}
