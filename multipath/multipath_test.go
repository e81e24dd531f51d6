package multipath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/camelot/core"
	"github.com/katalvlaran/camelot/multipath"
)

// directed builds an unweighted directed multigraph with loops from
// (from, to, label) triples.
func directed(t *testing.T, edges ...[3]string) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges(), core.WithLoops())
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], 0, core.WithEdgeLabel(e[2]))
		require.NoError(t, err)
	}

	return g
}

func costs(paths []multipath.Path) []int64 {
	out := make([]int64, 0, len(paths))
	for _, p := range paths {
		out = append(out, p.Cost)
	}

	return out
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_NilGraph(t *testing.T) {
	_, err := multipath.Search(nil, "A", "B", 1)
	require.ErrorIs(t, err, multipath.ErrNilGraph)
}

func TestSearch_NegativeCount(t *testing.T) {
	g := directed(t, [3]string{"A", "B", "ab"})
	_, err := multipath.Search(g, "A", "B", -1)
	require.ErrorIs(t, err, multipath.ErrNegativeCount)
}

func TestSearch_MissingEndpoints(t *testing.T) {
	g := directed(t, [3]string{"A", "B", "ab"})
	_, err := multipath.Search(g, "X", "B", 1)
	require.ErrorIs(t, err, multipath.ErrVertexNotFound)
	_, err = multipath.Search(g, "A", "X", 1)
	require.ErrorIs(t, err, multipath.ErrVertexNotFound)
	_, err = multipath.Search(g, "", "B", 1)
	require.ErrorIs(t, err, multipath.ErrVertexNotFound)
}

func TestSearch_NegativeWeight(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("A", "B", -1)
	_, err := multipath.Search(g, "A", "B", 1)
	require.ErrorIs(t, err, multipath.ErrNegativeWeight)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { multipath.WithMaxFrontier(0)(&multipath.Options{}) })
	assert.Panics(t, func() { multipath.WithMaxCost(-1)(&multipath.Options{}) })
}

// ------------------------------------------------------------------------
// 2. Core semantics
// ------------------------------------------------------------------------

func TestSearch_ZeroCount(t *testing.T) {
	g := directed(t, [3]string{"A", "B", "ab"})
	paths, stats, err := multipath.SearchWithStats(g, "A", "B", 0)
	require.NoError(t, err)
	assert.NotNil(t, paths)
	assert.Empty(t, paths)
	assert.Zero(t, stats.Pops)
}

func TestSearch_SourceIsTarget(t *testing.T) {
	g := directed(t, [3]string{"A", "B", "ab"}, [3]string{"B", "A", "ba"})

	paths, err := multipath.Search(g, "A", "A", 3)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	assert.Equal(t, int64(0), paths[0].Cost)
	assert.Equal(t, []string{"A"}, paths[0].Nodes)
	assert.Empty(t, paths[0].Labels)

	assert.Equal(t, []int64{0, 2, 4}, costs(paths))
	assert.Equal(t, []string{"A", "B", "A"}, paths[1].Nodes)
	assert.Equal(t, []string{"ab", "ba"}, paths[1].Labels)
	assert.Equal(t, 4, paths[2].Len())
}

// Equal-cost candidates leave the frontier in discovery order.
func TestSearch_FIFOTieBreak(t *testing.T) {
	g := directed(t,
		[3]string{"S", "X", "x"},
		[3]string{"S", "Y", "y"},
		[3]string{"X", "T", "xt"},
		[3]string{"Y", "T", "yt"},
	)

	paths, stats, err := multipath.SearchWithStats(g, "S", "T", 5)
	require.NoError(t, err)
	require.Len(t, paths, 2, "frontier exhausts after both arrivals")

	assert.Equal(t, []string{"S", "X", "T"}, paths[0].Nodes)
	assert.Equal(t, []string{"x", "xt"}, paths[0].Labels)
	assert.Equal(t, []string{"S", "Y", "T"}, paths[1].Nodes)
	assert.Equal(t, []string{"y", "yt"}, paths[1].Labels)

	assert.Equal(t, multipath.Stats{Pops: 5, Pushes: 5, PeakFrontier: 2, Emitted: 2}, stats)
}

// The target is not absorbing: later results may pass through it.
func TestSearch_TargetNotAbsorbing(t *testing.T) {
	g := directed(t, [3]string{"S", "T", "go"}, [3]string{"T", "S", "back"})

	paths, err := multipath.Search(g, "S", "T", 2)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, []string{"S", "T"}, paths[0].Nodes)
	assert.Equal(t, []string{"S", "T", "S", "T"}, paths[1].Nodes)
	assert.Equal(t, []string{"go", "back", "go"}, paths[1].Labels)
}

func TestSearch_Unreachable(t *testing.T) {
	g := directed(t, [3]string{"S", "X", "sx"})
	require.NoError(t, g.AddVertex("T"))

	paths, err := multipath.Search(g, "S", "T", 3)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

// A cycle that never meets the target would otherwise run forever.
func TestSearch_UnreachableCyclic(t *testing.T) {
	g := directed(t, [3]string{"S", "X", "sx"}, [3]string{"X", "S", "xs"}, [3]string{"T", "S", "ts"})

	paths, stats, err := multipath.SearchWithStats(g, "S", "T", 3)
	require.NoError(t, err)
	assert.NotNil(t, paths)
	assert.Empty(t, paths)
	assert.Zero(t, stats.Pops)
}

func TestSearch_Weighted(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, _ = g.AddEdge("S", "T", 5, core.WithEdgeLabel("direct"))
	_, _ = g.AddEdge("S", "M", 1, core.WithEdgeLabel("hop"))
	_, _ = g.AddEdge("M", "T", 1, core.WithEdgeLabel("hop"))

	paths, err := multipath.Search(g, "S", "T", 2)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, []int64{2, 5}, costs(paths))
	assert.Equal(t, []string{"S", "M", "T"}, paths[0].Nodes)
	assert.Equal(t, []string{"direct"}, paths[1].Labels)
}

func TestSearch_Undirected(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 0, core.WithEdgeLabel("ab"))

	paths, err := multipath.Search(g, "A", "B", 2)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, []string{"A", "B"}, paths[0].Nodes)
	assert.Equal(t, []string{"A", "B", "A", "B"}, paths[1].Nodes)
	assert.Equal(t, []int64{1, 3}, costs(paths))
}

// Results of a branching, cyclic graph must be sorted, and every history
// must be a walk in the graph.
func TestSearch_NonDecreasingAndConsistent(t *testing.T) {
	g := directed(t,
		[3]string{"A", "B", "1"},
		[3]string{"A", "C", "2"},
		[3]string{"B", "C", "3"},
		[3]string{"C", "A", "4"},
		[3]string{"C", "D", "5"},
		[3]string{"D", "D", "6"},
		[3]string{"D", "B", "7"},
	)

	paths, err := multipath.Search(g, "A", "D", 25)
	require.NoError(t, err)
	require.Len(t, paths, 25)

	for i, p := range paths {
		if i > 0 {
			assert.LessOrEqual(t, paths[i-1].Cost, p.Cost)
		}
		require.Len(t, p.Labels, len(p.Nodes)-1)
		assert.Equal(t, int64(p.Len()), p.Cost)
		assert.Equal(t, "A", p.Nodes[0])
		assert.Equal(t, "D", p.Nodes[len(p.Nodes)-1])
		for j := 1; j < len(p.Nodes); j++ {
			assert.True(t, g.HasEdge(p.Nodes[j-1], p.Nodes[j]), "%v", p.Nodes)
		}
	}
}

// Histories are shared between siblings; emitted slices must not alias.
func TestSearch_HistoriesIndependent(t *testing.T) {
	g := directed(t, [3]string{"A", "A", "loop"})

	paths, err := multipath.Search(g, "A", "A", 3)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	paths[1].Nodes[0] = "mutated"
	assert.Equal(t, "A", paths[2].Nodes[0])
	assert.Equal(t, []string{"loop", "loop"}, paths[2].Labels)
}

// ------------------------------------------------------------------------
// 3. Options
// ------------------------------------------------------------------------

func TestSearch_MaxCost(t *testing.T) {
	g := directed(t, [3]string{"A", "B", "ab"}, [3]string{"B", "A", "ba"})

	paths, err := multipath.Search(g, "A", "A", 10, multipath.WithMaxCost(4))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 4}, costs(paths))
}

func TestSearch_MaxFrontier(t *testing.T) {
	g := directed(t,
		[3]string{"S", "L1", "1"},
		[3]string{"S", "L2", "2"},
		[3]string{"S", "L3", "3"},
		[3]string{"S", "L4", "4"},
		[3]string{"S", "L5", "5"},
	)

	paths, err := multipath.Search(g, "S", "L5", 1, multipath.WithMaxFrontier(3))
	require.ErrorIs(t, err, multipath.ErrFrontierExceeded)
	assert.Empty(t, paths)

	paths, err = multipath.Search(g, "S", "L5", 1, multipath.WithMaxFrontier(5))
	require.NoError(t, err)
	require.Len(t, paths, 1)
}

func TestSearch_Hooks(t *testing.T) {
	g := directed(t, [3]string{"A", "B", "ab"}, [3]string{"B", "A", "ba"})

	var popped []string
	var emitted []int64
	hooks := multipath.Hooks{
		OnPop:  func(node string, _ int64) { popped = append(popped, node) },
		OnEmit: func(p multipath.Path) { emitted = append(emitted, p.Cost) },
	}

	paths, stats, err := multipath.SearchWithStats(g, "A", "B", 2, multipath.WithHooks(hooks))
	require.NoError(t, err)
	assert.Equal(t, costs(paths), emitted)
	assert.Equal(t, []string{"A", "B", "A", "B"}, popped)
	assert.Equal(t, stats.Pops, len(popped))
	assert.Equal(t, 2, stats.Emitted)
}
