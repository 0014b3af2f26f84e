package loader_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/twicearound/loader"
)

// ExampleLoad reads a triangle and writes it back.
func ExampleLoad() {
	src := "0: 1 2 2 9\n1: 0 2 2 4\n2: 0 9 1 4\n"
	g, err := loader.Load(context.Background(), strings.NewReader(src), loader.FormatAdjacency)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("vertices:", g.Order(), "edges:", g.Size())
	_ = loader.WriteAdjacency(os.Stdout, g)
	// Output:
	// vertices: 3 edges: 3
	// 0: 1 2 2 9
	// 1: 0 2 2 4
	// 2: 0 9 1 4
}
