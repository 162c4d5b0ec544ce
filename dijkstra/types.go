// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors, Options and Result of the shortest-path engine.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrStartNotFound   if the start city does not exist.
//	– ErrEndNotFound     if the end city does not exist.
//	– ErrBothNotFound    if neither city exists.
//	– ErrTooFewVertices  if the graph holds fewer than two cities.
//	– ErrDistanceOverflow if end is reachable but every route to it exceeds math.MaxInt64.
//	– ErrBadMaxDistance  (panic) if WithMaxDistance gets a negative value.
//	– ErrBadInfThreshold (panic) if WithInfEdgeThreshold gets a non-positive value.
//
// The three not-found errors wrap ErrVertexNotFound.

package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/citynet/frontier"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound is the parent of the start/end/both not-found errors.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrStartNotFound indicates the start city is unknown.
	ErrStartNotFound = fmt.Errorf("%w: start", ErrVertexNotFound)

	// ErrEndNotFound indicates the end city is unknown.
	ErrEndNotFound = fmt.Errorf("%w: end", ErrVertexNotFound)

	// ErrBothNotFound indicates neither city is known.
	ErrBothNotFound = fmt.Errorf("%w: start and end", ErrVertexNotFound)

	// ErrTooFewVertices indicates a query on a graph holding fewer than two cities.
	ErrTooFewVertices = errors.New("dijkstra: graph must contain at least 2 vertices")

	// ErrDistanceOverflow indicates that end is connected to start but no
	// route total fits in an int64.
	ErrDistanceOverflow = errors.New("dijkstra: route distance overflows int64")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a ShortestPath query.
//
// FrontierCapacity – initial capacity of the per-query frontier (default frontier.DefaultCapacity).
// FrontierGrowth   – whether the frontier doubles when full (default true).
// MaxDistance      – cities farther than this are never finalized (default math.MaxInt64).
// InfEdgeThreshold – edges with weight ≥ threshold are impassable; 0 closes no edge (default 0).
type Options struct {
	FrontierCapacity int
	FrontierGrowth   bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithFrontierCapacity sets the initial frontier capacity. Panics if n < 1.
func WithFrontierCapacity(n int) Option {
	if n < 1 {
		panic("dijkstra: WithFrontierCapacity(n<1)")
	}

	return func(o *Options) { o.FrontierCapacity = n }
}

// WithoutFrontierGrowth disables frontier doubling; a query whose frontier
// overflows fails with frontier.ErrCapacityExceeded.
func WithoutFrontierGrowth() Option {
	return func(o *Options) { o.FrontierGrowth = false }
}

// WithMaxDistance stops the search once the nearest unfinalized city is
// farther than max. Panics on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}

	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as closed roads.
// Panics on a non-positive value.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}

	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		FrontierCapacity: frontier.DefaultCapacity,
		FrontierGrowth:   true,
		MaxDistance:      math.MaxInt64,
	}
}

// Step is one city on a path and the weight of the edge that led to it.
// The first step of a path has EdgeDistance 0.
type Step struct {
	Name         string
	EdgeDistance int64
}

// Result is the outcome of a successfully executed query.
//
// Found == false means the cities are unreachable from each other; Path is
// then nil and TotalDistance is 0.
type Result struct {
	Start         string
	End           string
	Found         bool
	TotalDistance int64
	Path          []Step
	Visited       int           // cities finalized before termination
	Elapsed       time.Duration // search time, validation excluded
}

// ElapsedSeconds returns Elapsed in seconds.
func (r *Result) ElapsedSeconds() float64 { return r.Elapsed.Seconds() }

// Names returns the city names along the path.
func (r *Result) Names() []string {
	out := make([]string, len(r.Path))
	for i, s := range r.Path {
		out[i] = s.Name
	}

	return out
}

// EdgeDistances returns the per-hop edge weights along the path; the first is 0.
func (r *Result) EdgeDistances() []int64 {
	out := make([]int64, len(r.Path))
	for i, s := range r.Path {
		out[i] = s.EdgeDistance
	}

	return out
}
