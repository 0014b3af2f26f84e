// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/twicearound/core"
)

// ExampleGraph_Edges shows that every undirected edge appears as two records
// and that the catalog follows adjacency order.
func ExampleGraph_Edges() {
	g, _ := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(1, 2, 2)

	for i, e := range g.Edges() {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(e)
	}
	fmt.Println()
	fmt.Println("edges:", g.Size(), "weight:", g.TotalWeight())
	// Output:
	// (0,1,4) (1,0,4) (1,2,2) (2,1,2)
	// edges: 2 weight: 6
}
