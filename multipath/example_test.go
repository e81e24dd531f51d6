package multipath_test

import (
	"fmt"

	"github.com/katalvlaran/camelot/core"
	"github.com/katalvlaran/camelot/multipath"
)

// ExampleSearch enumerates arrivals on a two-vertex cycle. The target is not
// absorbing, so every later result loops back through it.
func ExampleSearch() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("S", "T", 0, core.WithEdgeLabel("out"))
	_, _ = g.AddEdge("T", "S", 0, core.WithEdgeLabel("back"))

	paths, err := multipath.Search(g, "S", "T", 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range paths {
		fmt.Println(p.Cost, p.Nodes, p.Labels)
	}
	// Output:
	// 1 [S T] [out]
	// 3 [S T S T] [out back out]
	// 5 [S T S T S T] [out back out back out]
}

// ExampleSearchWithStats shows the work counters of a diamond search.
func ExampleSearchWithStats() {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("S", "A", 1)
	_, _ = g.AddEdge("S", "B", 2)
	_, _ = g.AddEdge("A", "T", 2)
	_, _ = g.AddEdge("B", "T", 1)

	paths, stats, _ := multipath.SearchWithStats(g, "S", "T", 2)
	fmt.Println(len(paths), paths[0].Nodes, paths[1].Nodes)
	fmt.Printf("%+v\n", stats)
	// Output:
	// 2 [S A T] [S B T]
	// {Pops:5 Pushes:5 PeakFrontier:2 Emitted:2}
}
