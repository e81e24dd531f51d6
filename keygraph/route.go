package keygraph

import (
	"fmt"

	"github.com/katalvlaran/camelot/bfs"
	"github.com/katalvlaran/camelot/multipath"
	"github.com/katalvlaran/camelot/scale"
	"github.com/katalvlaran/camelot/transition"
)

// Route is a multipath result expressed in wheel terms.
type Route struct {
	Cost        int64
	Scales      []scale.Scale
	Transitions []transition.Transition
}

// Search returns up to n routes from source to target, cheapest first.
// Ties keep discovery order, which for this graph follows catalog order.
func (kg *Graph) Search(source, target scale.Scale, n int, opts ...multipath.Option) ([]Route, error) {
	routes, _, err := kg.SearchWithStats(source, target, n, opts...)

	return routes, err
}

// SearchWithStats is Search that also reports the frontier counters.
// Routes emitted before a frontier limit is hit are returned with the error.
func (kg *Graph) SearchWithStats(source, target scale.Scale, n int, opts ...multipath.Option) ([]Route, multipath.Stats, error) {
	from, err := kg.FindNode(source)
	if err != nil {
		return nil, multipath.Stats{}, err
	}
	to, err := kg.FindNode(target)
	if err != nil {
		return nil, multipath.Stats{}, err
	}

	paths, stats, searchErr := multipath.SearchWithStats(kg.g, string(from), string(to), n, opts...)
	routes := make([]Route, 0, len(paths))
	for _, p := range paths {
		r, err := kg.route(p)
		if err != nil {
			return nil, stats, err
		}
		routes = append(routes, r)
	}

	return routes, stats, searchErr
}

// Distance returns the fewest rule applications that lead from source to
// target, or -1 when target cannot be reached.
func (kg *Graph) Distance(source, target scale.Scale) (int, error) {
	from, err := kg.FindNode(source)
	if err != nil {
		return 0, err
	}
	to, err := kg.FindNode(target)
	if err != nil {
		return 0, err
	}
	res, err := bfs.BFS(kg.g, string(from))
	if err != nil {
		return 0, fmt.Errorf("keygraph: distance: %w", err)
	}
	d, ok := res.Depth[string(to)]
	if !ok {
		return -1, nil
	}

	return d, nil
}

// route converts vertex IDs and labels back into scales and rules.
func (kg *Graph) route(p multipath.Path) (Route, error) {
	r := Route{
		Cost:        p.Cost,
		Scales:      make([]scale.Scale, 0, len(p.Nodes)),
		Transitions: make([]transition.Transition, 0, len(p.Labels)),
	}
	for _, id := range p.Nodes {
		s, err := kg.Scale(NodeID(id))
		if err != nil {
			return Route{}, err
		}
		r.Scales = append(r.Scales, s)
	}
	for _, label := range p.Labels {
		t, err := kg.Transition(label)
		if err != nil {
			return Route{}, err
		}
		r.Transitions = append(r.Transitions, t)
	}
	if len(r.Transitions) != len(r.Scales)-1 {
		return Route{}, fmt.Errorf("keygraph: route with %d scales and %d transitions", len(r.Scales), len(r.Transitions))
	}

	return r, nil
}
