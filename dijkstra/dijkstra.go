// SPDX-License-Identifier: MIT
//
// File: dijkstra.go
// Role: ShortestPath and its per-query runner.
//
// Complexity:
//   - Time:  O((V + E) log V). Each city is finalized at most once and every
//     improving relaxation is a Push or a decrease-key Update.
//   - Space: O(V). One label per city; the frontier never holds duplicates.

package dijkstra

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/citynet/core"
	"github.com/katalvlaran/citynet/frontier"
)

// ShortestPath computes the shortest path between the cities start and end.
//
// Returns:
//
//   - *Result with Found=true, the path from start to end and its total
//     distance, or Found=false when end is unreachable from start.
//   - err: a validation error; no search is run in that case.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must exist (ErrBothNotFound, ErrStartNotFound, ErrEndNotFound).
//  3. g must hold at least two cities (ErrTooFewVertices).
//
// When end is connected to start but every route total exceeds
// math.MaxInt64, ShortestPath fails with ErrDistanceOverflow instead of
// reporting the cities as unreachable.
//
// start == end is valid: the path is [start] with distance 0.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
func ShortestPath(g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	src, srcErr := g.FindVertex(start)
	dst, dstErr := g.FindVertex(end)
	switch {
	case srcErr != nil && dstErr != nil:
		return nil, fmt.Errorf("%w: %q and %q", ErrBothNotFound, start, end)
	case srcErr != nil:
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	case dstErr != nil:
		return nil, fmt.Errorf("%w: %q", ErrEndNotFound, end)
	}
	if g.VertexCount() < 2 {
		return nil, ErrTooFewVertices
	}

	// 3) Run the search
	began := time.Now()
	r := newRunner(g, cfg)
	r.init(src)
	found, err := r.process(dst)
	if err != nil {
		return nil, err
	}
	if !found && r.overflowed && r.options.MaxDistance == math.MaxInt64 && r.connected(src, dst) {
		return nil, fmt.Errorf("%w: %q to %q", ErrDistanceOverflow, start, end)
	}
	res := &Result{
		Start:   start,
		End:     end,
		Found:   found,
		Visited: r.visited,
	}
	res.Elapsed = time.Since(began)

	// 4) Reconstruct the path
	if found {
		res.TotalDistance = r.labels[dst].dist
		res.Path = r.path(dst)
	}

	return res, nil
}

// label is the transient per-city state of one query.
type label struct {
	visited bool
	dist    int64        // tentative distance, math.MaxInt64 = unreached
	edge    int64        // weight of the edge from pred
	pred    *core.Vertex // nil for the start and unreached cities
}

// runner holds the mutable state for a single query.
type runner struct {
	g          *core.Graph
	options    Options
	labels     map[*core.Vertex]*label
	front      *frontier.Frontier[*core.Vertex]
	current    *core.Vertex
	visited    int
	overflowed bool // some relaxation was skipped because the sum overflowed
}

func newRunner(g *core.Graph, cfg Options) *runner {
	fopts := []frontier.Option{frontier.WithCapacity(cfg.FrontierCapacity)}
	if !cfg.FrontierGrowth {
		fopts = append(fopts, frontier.WithoutGrowth())
	}

	return &runner{
		g:       g,
		options: cfg,
		front:   frontier.New[*core.Vertex](fopts...),
	}
}

// init gives every city a fresh label and seeds the start at distance 0.
func (r *runner) init(src *core.Vertex) {
	vertices := r.g.VertexList()
	r.labels = make(map[*core.Vertex]*label, len(vertices))
	for _, v := range vertices {
		r.labels[v] = &label{dist: math.MaxInt64}
	}
	r.labels[src].dist = 0
	r.current = src
}

// process finalizes cities in distance order until dst is finalized or the
// frontier runs dry. It reports whether dst was reached.
func (r *runner) process(dst *core.Vertex) (bool, error) {
	cur := r.current
	for {
		lc := r.labels[cur]
		if lc.dist > r.options.MaxDistance {
			return false, nil
		}
		lc.visited = true
		r.visited++
		if cur == dst {
			return true, nil
		}

		if err := r.relax(cur, lc); err != nil {
			return false, err
		}

		next, ok := r.front.Pop()
		if !ok {
			return false, nil
		}
		cur = next.Key
	}
}

// relax examines each connection of u and improves its unvisited neighbors.
// Ties keep the earlier predecessor (strict <).
func (r *runner) relax(u *core.Vertex, lu *label) error {
	var (
		c       core.Connection
		lv      *label
		newDist int64
		ok      bool
	)
	for _, c = range r.g.Neighbors(u) {
		lv, ok = r.labels[c.Vertex]
		if !ok || lv.visited {
			continue // already final, or added after the query started
		}
		if r.closed(c.Weight) {
			continue
		}
		if c.Weight > math.MaxInt64-lu.dist {
			r.overflowed = true
			continue
		}

		newDist = lu.dist + c.Weight
		if newDist >= lv.dist {
			continue
		}
		lv.dist = newDist
		lv.edge = c.Weight
		lv.pred = u

		if r.front.Update(c.Vertex, newDist, c.Weight) {
			continue
		}
		if err := r.front.Push(c.Vertex, newDist, c.Weight); err != nil {
			return fmt.Errorf("dijkstra: queue %q: %w", c.Name(), err)
		}
	}

	return nil
}

// closed reports whether a road of weight w is impassable.
func (r *runner) closed(w int64) bool {
	return r.options.InfEdgeThreshold > 0 && w >= r.options.InfEdgeThreshold
}

// connected reports whether dst can be reached from src over open roads,
// ignoring distances. Only used to tell an overflow from a true dead end.
func (r *runner) connected(src, dst *core.Vertex) bool {
	seen := map[*core.Vertex]bool{src: true}
	queue := []*core.Vertex{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == dst {
			return true
		}
		for _, c := range r.g.Neighbors(u) {
			if seen[c.Vertex] || r.closed(c.Weight) {
				continue
			}
			seen[c.Vertex] = true
			queue = append(queue, c.Vertex)
		}
	}

	return false
}

// path follows predecessor links back from dst and returns them start-first.
func (r *runner) path(dst *core.Vertex) []Step {
	var steps []Step
	for v := dst; v != nil; v = r.labels[v].pred {
		steps = append(steps, Step{Name: v.Name(), EdgeDistance: r.labels[v].edge})
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}

	return steps
}
