// SPDX-License-Identifier: MIT
// Package: citynet/builder
//
// constants.go: shared constants used by network builders.

package builder

// CenterVertexID is the identifier of the hub vertex in Star and Wheel.
const CenterVertexID = "Center"

// DefaultEdgeWeight is the weight of every edge when no WeightFn is set.
const DefaultEdgeWeight int64 = 1

// Minimum sizes per topology.
const (
	// MinPathNodes: a path of fewer than 2 nodes has no edges.
	MinPathNodes = 2
	// MinCycleNodes: a ring needs 3 nodes without loops or parallel edges.
	MinCycleNodes = 3
	// MinStarNodes: one center plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a 3-ring plus a hub.
	MinWheelNodes = 4
	// MinCompleteNodes: K_2 is the smallest complete network that is a valid graph.
	MinCompleteNodes = 2
	// MinGridNodes: rows*cols must give a valid graph (core needs 2 vertices for any edge).
	MinGridNodes = 2
	// MinRandomSparseNodes: core rejects edges below two vertices.
	MinRandomSparseNodes = 2
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
