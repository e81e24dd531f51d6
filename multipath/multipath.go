package multipath

import (
	"fmt"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/camelot/bfs"
	"github.com/katalvlaran/camelot/core"
)

// Search returns up to n paths from source to target in non-decreasing
// cost order. The cost of a path is the sum of its edge weights, or its
// edge count when g is unweighted. See SearchWithStats.
func Search(g *core.Graph, source, target string, n int, opts ...Option) ([]Path, error) {
	paths, _, err := SearchWithStats(g, source, target, n, opts...)

	return paths, err
}

// SearchWithStats runs the multi-path search and reports its work counters.
//
// Algorithm:
//  1. Seed the frontier with a zero-cost candidate at source.
//  2. Pop the cheapest candidate (ties: first pushed, first popped).
//  3. Extend its histories with its node and, unless it is the seed, the
//     label of the edge that reached it.
//  4. If the node is target, emit the path; stop after n emissions.
//  5. Push one child per outgoing edge (cost + weight), target included:
//     the target is not absorbing, so later results may pass through it.
//  6. An empty frontier ends the search with fewer than n paths.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. n must be ≥ 0 (ErrNegativeCount).
//  3. g must contain source and target (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// n == 0 returns an empty result without expanding anything, and so
// does a target that no walk from source reaches. If the
// frontier outgrows Options.MaxFrontier, the paths emitted so far are
// returned together with ErrFrontierExceeded.
func SearchWithStats(g *core.Graph, source, target string, n int, opts ...Option) ([]Path, Stats, error) {
	// 1) Build options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, Stats{}, ErrNilGraph
	}
	if n < 0 {
		return nil, Stats{}, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if !g.HasVertex(source) {
		return nil, Stats{}, fmt.Errorf("%w: source %q", ErrVertexNotFound, source)
	}
	if !g.HasVertex(target) {
		return nil, Stats{}, fmt.Errorf("%w: target %q", ErrVertexNotFound, target)
	}
	var e *core.Edge
	for _, e = range g.Edges() {
		if e.Weight < 0 {
			return nil, Stats{}, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	if n == 0 {
		return []Path{}, Stats{}, nil
	}

	// A cyclic graph never exhausts its frontier, so unreachable targets
	// are ruled out up front.
	reach, err := bfs.BFS(g, source)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("multipath: reachability: %w", err)
	}
	if !reach.Reached(target) {
		return []Path{}, Stats{}, nil
	}

	// 3) Run
	r := &runner{
		g:       g,
		options: cfg,
		target:  target,
		want:    n,
		unit:    !g.Weighted(),
		paths:   make([]Path, 0, min(n, resultPrealloc)),
		adj:     make(map[string][]*core.Edge),
		pq:      priorityqueue.NewWith(byCostThenSeq),
	}
	r.push(&candidate{node: source})
	err = r.process()

	r.stats.Emitted = len(r.paths)

	return r.paths, r.stats, err
}

// resultPrealloc caps the initial capacity of the result slice.
const resultPrealloc = 64

// candidate is an in-flight path held in the frontier.
type candidate struct {
	cost   int64
	node   string
	label  string // label of the edge that reached node
	hasVia bool   // false only for the seed
	nodes  *trail // nodes visited before node
	labels *trail // labels taken before label
	seq    uint64 // push order, secondary heap key
}

// byCostThenSeq orders candidates by cost, then FIFO by push sequence.
func byCostThenSeq(a, b interface{}) int {
	ca, cb := a.(*candidate), b.(*candidate)
	switch {
	case ca.cost < cb.cost:
		return -1
	case ca.cost > cb.cost:
		return 1
	case ca.seq < cb.seq:
		return -1
	case ca.seq > cb.seq:
		return 1
	default:
		return 0
	}
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *core.Graph
	options Options
	target  string
	want    int
	unit    bool // unweighted graph: every edge costs 1
	paths   []Path
	adj     map[string][]*core.Edge // outgoing edges, cached per vertex
	pq      *priorityqueue.Queue
	nextSeq uint64
	stats   Stats
}

// push assigns the next sequence number and enqueues c.
func (r *runner) push(c *candidate) {
	c.seq = r.nextSeq
	r.nextSeq++
	r.pq.Enqueue(c)
	r.stats.Pushes++
	if size := r.pq.Size(); size > r.stats.PeakFrontier {
		r.stats.PeakFrontier = size
	}
}

// process pops candidates until n paths are emitted or the frontier empties.
func (r *runner) process() error {
	hooks := r.options.Hooks
	for !r.pq.Empty() {
		v, _ := r.pq.Dequeue()
		c := v.(*candidate)
		r.stats.Pops++
		if hooks.OnPop != nil {
			hooks.OnPop(c.node, c.cost)
		}

		nodes := c.nodes.push(c.node)
		labels := c.labels
		if c.hasVia {
			labels = labels.push(c.label)
		}

		if c.node == r.target {
			p := Path{Cost: c.cost, Nodes: nodes.slice(), Labels: labels.slice()}
			r.paths = append(r.paths, p)
			if hooks.OnEmit != nil {
				hooks.OnEmit(p)
			}
			if len(r.paths) >= r.want {
				return nil
			}
		}

		if err := r.expand(c, nodes, labels); err != nil {
			return err
		}
	}

	return nil
}

// expand pushes one child per outgoing edge of c.node.
func (r *runner) expand(c *candidate, nodes, labels *trail) error {
	edges, err := r.outgoing(c.node)
	if err != nil {
		return err
	}

	var e *core.Edge
	var cost int64
	for _, e = range edges {
		if r.unit {
			cost = c.cost + 1
		} else {
			cost = c.cost + e.Weight
		}
		if cost > r.options.MaxCost {
			continue
		}
		r.push(&candidate{
			cost:   cost,
			node:   e.Other(c.node),
			label:  e.Label,
			hasVia: true,
			nodes:  nodes,
			labels: labels,
		})
		if r.pq.Size() > r.options.MaxFrontier {
			return fmt.Errorf("%w: %d candidates", ErrFrontierExceeded, r.pq.Size())
		}
	}

	return nil
}

// outgoing returns the cached neighbor list of id.
func (r *runner) outgoing(id string) ([]*core.Edge, error) {
	if edges, ok := r.adj[id]; ok {
		return edges, nil
	}
	edges, err := r.g.Neighbors(id)
	if err != nil {
		return nil, fmt.Errorf("multipath: failed to get neighbors of %q: %w", id, err)
	}
	r.adj[id] = edges

	return edges, nil
}
