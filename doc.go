// Package camelot explores the Camelot wheel: the 24 musical keys written
// 1A..12A (minor) and 1B..12B (major), connected by ten key-change rules.
//
// What is in the module?
//
//	scale/      : Scale (index, kind), Flip, Shift and the 24-key enumeration
//	transition/ : the rule catalog as a tagged variant with one Apply dispatch
//	core/       : thread-safe directed labeled multigraph
//	bfs/        : hop distances and reachability over a core graph
//	keygraph/   : builds the wheel graph, resolves keys to vertices, runs searches
//	multipath/  : lazily enumerates the N cheapest arrival paths between two vertices
//	render/     : formats routes as "12A -> Vertical -> 12B -> ..."
//	cmd/camelot : CLI (paths, graph, version)
//
// Quick example:
//
//	kg := keygraph.MustBuild()
//	routes, _ := kg.Search(scale.Scale{Index: 11, Kind: scale.Minor}, scale.Scale{Index: 0, Kind: scale.Major}, 10)
//	for _, r := range routes {
//		fmt.Println(r.Cost, render.Route(r))
//	}
//
// The search permits revisits and treats the target as non-absorbing, so
// it returns arrival paths in non-decreasing cost order rather than the
// k shortest simple paths.
package camelot
