package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/twicearound/core"
	"github.com/katalvlaran/twicearound/tsp"
)

// ExampleSolve runs the reference pipeline on the 4-vertex complete graph
// (0,1,1) (0,2,3) (0,3,4) (1,2,5) (1,3,6) (2,3,7).
// The MST is the star at 0 (weight 8); vertices 1 and 2 fall back to the graph.
func ExampleSolve() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(0, 2, 3)
	_ = g.AddEdge(0, 3, 4)
	_ = g.AddEdge(1, 2, 5)
	_ = g.AddEdge(1, 3, 6)
	_ = g.AddEdge(2, 3, 7)

	res, err := tsp.Solve(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("tour:", res.Tour)
	fmt.Println("cost:", res.Cost, "mst:", res.MSTWeight, "fallbacks:", res.Stats.Fallbacks)
	fmt.Println("within 2×MST:", res.WithinBound())
	// Output:
	// tour: [0 1 2 3 0]
	// cost: 17 mst: 8 fallbacks: 2
	// within 2×MST: false
}

// ExamplePreorder walks the doubled tree of a square with a diagonal.
func ExamplePreorder() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 1)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(3, 0, 1)
	_ = g.AddEdge(0, 2, 2)

	res, err := tsp.Solve(g, tsp.WithWalk(tsp.WalkPreorder))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Tour, res.Cost)
	// Output: [0 1 2 3 0] 4
}
