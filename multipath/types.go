package multipath

import (
	"errors"
	"math"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Search.
	ErrNilGraph = errors.New("multipath: graph is nil")

	// ErrVertexNotFound indicates that the source or target is absent from the graph.
	ErrVertexNotFound = errors.New("multipath: vertex not found in graph")

	// ErrNegativeCount indicates a negative number of requested paths.
	ErrNegativeCount = errors.New("multipath: path count must be non-negative")

	// ErrNegativeWeight indicates an edge with negative weight, which would
	// break the non-decreasing emission order.
	ErrNegativeWeight = errors.New("multipath: negative edge weight encountered")

	// ErrFrontierExceeded indicates the frontier grew past Options.MaxFrontier.
	ErrFrontierExceeded = errors.New("multipath: frontier size limit exceeded")

	// ErrBadMaxFrontier indicates a non-positive frontier limit.
	ErrBadMaxFrontier = errors.New("multipath: MaxFrontier must be positive")

	// ErrBadMaxCost indicates a negative cost limit.
	ErrBadMaxCost = errors.New("multipath: MaxCost must be non-negative")
)

// Path is one arrival at the target.
//
// Nodes holds every vertex visited from source to target inclusive;
// Labels holds the label of every edge taken, so len(Labels) == len(Nodes)-1.
type Path struct {
	Cost   int64
	Nodes  []string
	Labels []string
}

// Len returns the number of edges in the path.
func (p Path) Len() int { return len(p.Labels) }

// Stats summarizes the work done by one search.
type Stats struct {
	Pops         int // candidates removed from the frontier
	Pushes       int // candidates added to the frontier, seed included
	PeakFrontier int // largest frontier size observed
	Emitted      int // paths returned
}

// Hooks observe a running search. Nil hooks are skipped.
type Hooks struct {
	// OnPop is called for every candidate removed from the frontier.
	OnPop func(node string, cost int64)

	// OnEmit is called for every completed path, in emission order.
	OnEmit func(p Path)
}

// Options configures Search.
//
// MaxFrontier – fail with ErrFrontierExceeded once the frontier holds more
// candidates than this. Default math.MaxInt (no limit).
// MaxCost     – candidates whose cost would exceed this are not pushed.
// Default math.MaxInt64 (no limit).
type Options struct {
	MaxFrontier int
	MaxCost     int64
	Hooks       Hooks
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithMaxFrontier bounds the number of pending candidates.
// Panics on a non-positive limit.
func WithMaxFrontier(limit int) Option {
	return func(o *Options) {
		if limit <= 0 {
			panic(ErrBadMaxFrontier.Error())
		}
		o.MaxFrontier = limit
	}
}

// WithMaxCost stops the search from exploring candidates costlier than max.
// Panics on a negative limit.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithHooks installs observation callbacks.
func WithHooks(h Hooks) Option {
	return func(o *Options) {
		o.Hooks = h
	}
}

// DefaultOptions returns Options with no limits and no hooks.
func DefaultOptions() Options {
	return Options{
		MaxFrontier: math.MaxInt,
		MaxCost:     math.MaxInt64,
	}
}
