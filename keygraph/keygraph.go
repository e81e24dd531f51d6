// Package keygraph builds the Camelot wheel as a directed labeled graph
// and runs multi-path searches over it.
//
// Every scale is a vertex; every (scale, rule) pair is an edge of weight 1
// labelled with the rule name. Self-loops and parallel edges are kept, so
// the graph always has len(scale.All()) * len(catalog) edges.
package keygraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/camelot/core"
	"github.com/katalvlaran/camelot/scale"
	"github.com/katalvlaran/camelot/transition"
)

// Sentinel errors.
var (
	// ErrConstructionDefect indicates that the catalog does not map the state
	// space onto itself; the graph cannot be built.
	ErrConstructionDefect = errors.New("keygraph: construction defect")

	// ErrNodeNotFound indicates a scale, vertex or label outside the graph.
	ErrNodeNotFound = errors.New("keygraph: node not found")
)

// edgeWeight is the cost of applying any rule.
const edgeWeight = 1

// NodeID is the vertex handle of a scale inside the graph.
type NodeID string

// Graph is the immutable key wheel graph.
type Graph struct {
	g       *core.Graph
	catalog []transition.Transition
	nodes   map[scale.Scale]NodeID
	scales  map[NodeID]scale.Scale
	rules   map[string]transition.Transition
}

// Build creates one vertex per scale and one edge per (scale, rule) pair.
//
// Build fails with ErrConstructionDefect if the catalog is invalid, if a
// rule is undefined for some scale, if a rule leaves the enumeration, or
// if any vertex ends up with an out-degree other than len(catalog).
func Build(catalog []transition.Transition) (*Graph, error) {
	if err := transition.Validate(catalog); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstructionDefect, err)
	}

	all := scale.All()
	kg := &Graph{
		g:       core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges(), core.WithLoops()),
		catalog: append([]transition.Transition(nil), catalog...),
		nodes:   make(map[scale.Scale]NodeID, len(all)),
		scales:  make(map[NodeID]scale.Scale, len(all)),
		rules:   make(map[string]transition.Transition, len(catalog)),
	}

	// 1) Vertices
	for _, s := range all {
		id := NodeID(s.String())
		if err := kg.g.AddVertex(string(id)); err != nil {
			return nil, fmt.Errorf("%w: vertex %s: %w", ErrConstructionDefect, s, err)
		}
		kg.nodes[s] = id
		kg.scales[id] = s
	}
	for _, t := range kg.catalog {
		kg.rules[t.String()] = t
	}

	// 2) Edges
	for _, s := range all {
		for _, t := range kg.catalog {
			next, err := transition.Apply(s, t)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrConstructionDefect, err)
			}
			to, ok := kg.nodes[next]
			if !ok {
				return nil, fmt.Errorf("%w: %s on %s reaches %+v outside the wheel", ErrConstructionDefect, t, s, next)
			}
			if _, err = kg.g.AddEdge(string(kg.nodes[s]), string(to), edgeWeight, core.WithEdgeLabel(t.String())); err != nil {
				return nil, fmt.Errorf("%w: edge %s -%s-> %s: %w", ErrConstructionDefect, s, t, next, err)
			}
		}
	}

	// 3) Every state must support every rule.
	for _, s := range all {
		deg, err := kg.g.OutDegree(string(kg.nodes[s]))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConstructionDefect, err)
		}
		if deg != len(kg.catalog) {
			return nil, fmt.Errorf("%w: %s has out-degree %d, want %d", ErrConstructionDefect, s, deg, len(kg.catalog))
		}
	}

	return kg, nil
}

// MustBuild is Build for the static default catalog; it panics on a defect.
func MustBuild() *Graph {
	kg, err := Build(transition.Catalog())
	if err != nil {
		panic(err)
	}

	return kg
}

// FindNode resolves a scale to its vertex handle in O(1).
func (kg *Graph) FindNode(s scale.Scale) (NodeID, error) {
	id, ok := kg.nodes[s]
	if !ok {
		return "", fmt.Errorf("%w: %+v", ErrNodeNotFound, s)
	}

	return id, nil
}

// Scale resolves a vertex handle back to its scale.
func (kg *Graph) Scale(id NodeID) (scale.Scale, error) {
	s, ok := kg.scales[id]
	if !ok {
		return scale.Scale{}, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return s, nil
}

// Transition resolves an edge label back to its rule.
func (kg *Graph) Transition(label string) (transition.Transition, error) {
	t, ok := kg.rules[label]
	if !ok {
		return transition.Transition{}, fmt.Errorf("%w: label %q", ErrNodeNotFound, label)
	}

	return t, nil
}

// Core exposes the underlying graph. It must not be mutated.
func (kg *Graph) Core() *core.Graph { return kg.g }

// Catalog returns a copy of the rules the graph was built from.
func (kg *Graph) Catalog() []transition.Transition {
	return append([]transition.Transition(nil), kg.catalog...)
}

// NodeCount returns the number of vertices.
func (kg *Graph) NodeCount() int { return kg.g.VertexCount() }

// EdgeCount returns the number of edges.
func (kg *Graph) EdgeCount() int { return kg.g.EdgeCount() }
