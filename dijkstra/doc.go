// SPDX-License-Identifier: MIT

// Package dijkstra finds the shortest route between two cities of a
// core.Graph whose edge weights are positive.
//
// Overview:
//
//   - ShortestPath runs a point-to-point Dijkstra search: cities are finalized
//     in order of increasing distance from the start until the destination is
//     finalized or nothing more is reachable.
//   - The frontier is a frontier.Frontier keyed by *core.Vertex with
//     decrease-key; every city is queued at most once.
//   - The graph is only read. Transient state lives in a per-query side table,
//     so concurrent queries over an unchanging graph are safe.
//
// Results:
//
//   - Found=true: Path lists the cities from start to end with the weight of
//     the edge that reached each one (0 for the start); TotalDistance is the
//     sum of those weights.
//   - Found=false: the cities are in different components (or beyond
//     MaxDistance). This is a successful query, not an error.
//   - start == end yields Path=[start], TotalDistance=0.
//   - Equal-distance alternatives keep the predecessor discovered first.
//
// Options:
//
//   - WithFrontierCapacity(n) / WithoutFrontierGrowth(): frontier sizing.
//   - WithMaxDistance(x): stop once the nearest candidate is farther than x.
//   - WithInfEdgeThreshold(t): skip edges whose weight is ≥ t. Without it
//     every road is open, whatever its weight.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph: nil graph.
//   - ErrBothNotFound, ErrStartNotFound, ErrEndNotFound: unknown cities
//     (all match ErrVertexNotFound).
//   - ErrTooFewVertices: fewer than two cities in the graph.
//   - ErrDistanceOverflow: end is connected to start, but every route total
//     exceeds math.MaxInt64.
//   - frontier.ErrCapacityExceeded (wrapped): the frontier overflowed with
//     growth disabled.
//
// Example:
//
//	res, err := dijkstra.ShortestPath(g, "A", "C")
//	if err != nil {
//	    return err
//	}
//	if res.Found {
//	    fmt.Println(res.Names(), res.TotalDistance)
//	}
package dijkstra
