package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/twicearound/prim_kruskal"
)

// BenchmarkPrim measures the catalog scan on a random graph with 300 vertices and 1200 extra edges.
func BenchmarkPrim(b *testing.B) {
	g := buildRandomConnected(b, 300, 1200, 42) // pre‐build graph once
	cat := g.Edges()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Prim(g, cat, 0)
	}
}

// BenchmarkPrimHeap measures the heap frontier on the same input as BenchmarkPrim.
func BenchmarkPrimHeap(b *testing.B) {
	g := buildRandomConnected(b, 300, 1200, 42)
	cat := g.Edges()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.PrimHeap(g, cat, 0)
	}
}

// BenchmarkKruskal measures sort plus union-find on the same input as BenchmarkPrim.
func BenchmarkKruskal(b *testing.B) {
	g := buildRandomConnected(b, 300, 1200, 42)
	cat := g.Edges()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = prim_kruskal.Kruskal(g, cat)
	}
}
