// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for citynet/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep magic numbers and names out of test bodies.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynet/core"
)

// Common vertex names used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexE = "E"

	VertexX = "X"

	VertexBase = "Base"
)

// Common weights used across core tests.
const (
	Weight0    = 0
	Weight1    = 1
	Weight2    = 2
	Weight3    = 3
	Weight5    = 5
	Weight7    = 7
	WeightNeg1 = -1
)

// Common sizes used across core tests.
const (
	NConcurrentAdds   = 200
	NConcurrentRounds = 100
	NReaders          = 50
	SmallCapacity     = 2
)

// newNetwork returns a default graph holding the given vertices in order.
func newNetwork(t *testing.T, names ...string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, n := range names {
		require.NoError(t, g.AddVertex(n))
	}

	return g
}

// mustConnect adds an edge and fails the test on error.
func mustConnect(t *testing.T, g *core.Graph, a, b string, w int64) {
	t.Helper()
	require.NoError(t, g.AddEdge(a, b, w))
}

// connectionNames returns the neighbor names of name in adjacency order.
func connectionNames(t *testing.T, g *core.Graph, name string) []string {
	t.Helper()
	conns, err := g.Connections(name)
	require.NoError(t, err)
	out := make([]string, len(conns))
	for i, c := range conns {
		out[i] = c.Name()
	}

	return out
}

// connectionWeights returns the weights of name's connections in adjacency order.
func connectionWeights(t *testing.T, g *core.Graph, name string) []int64 {
	t.Helper()
	conns, err := g.Connections(name)
	require.NoError(t, err)
	out := make([]int64, len(conns))
	for i, c := range conns {
		out[i] = c.Weight
	}

	return out
}
