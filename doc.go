// Package twicearound approximates travelling-salesman circuits on undirected
// weighted graphs by walking twice around a minimum spanning tree.
//
// The pipeline is split into subpackages:
//
//	core/          - Graph, Edge and the flat EdgeCatalog
//	prim_kruskal/  - spanning trees: catalog-scan Prim, heap Prim, Kruskal
//	tsp/           - sweep and preorder walks, 2-opt polish, Solve
//	loader/        - adjacency text, HCL and YAML/JSON graph input
//	report/        - text, JSON and YAML output
//	metrics/       - Prometheus textfile metrics for a run
//	builder/       - complete, Euclidean and sparse test graphs
//	cmd/twicearound - the command-line front end
//
// Quick example:
//
//	g, _ := loader.LoadFile(ctx, "graph.txt", loader.FormatAuto)
//	res, _ := tsp.Solve(g, tsp.WithWalk(tsp.WalkPreorder))
//	_ = report.WriteText(os.Stdout, res.Tour, res.Cost)
//
// On graphs obeying the triangle inequality the preorder walk is at most
// twice the optimum. The default sweep walk may exceed that bound when
// it falls back to non-tree edges.
//
//	go install github.com/katalvlaran/twicearound/cmd/twicearound@latest
package twicearound
