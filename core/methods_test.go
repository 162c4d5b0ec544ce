// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in vertex/edge lifecycle rules and the validation order of AddEdge/RemoveEdge.
//   - Check symmetry and insertion-order enumeration after every mutation.

package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citynet/core"
)

// TestGraph_AddVertex VERIFIES name validation and duplicate rejection.
//
// Implementation:
//   - Stage 1: Reject the empty name and an over-long name.
//   - Stage 2: Add X twice; the second call returns ErrDuplicateVertex and
//     the vertex count stays 1.
func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph(core.WithMaxNameLength(4))

	require.ErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexName)
	require.ErrorIs(t, g.AddVertex("Tokyo"), core.ErrNameTooLong)
	require.NoError(t, g.AddVertex("Nara"), "a name of exactly the limit is accepted")

	require.NoError(t, g.AddVertex(VertexX))
	err := g.AddVertex(VertexX)
	require.ErrorIs(t, err, core.ErrDuplicateVertex)
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, []string{"Nara", VertexX}, g.Vertices())
}

func TestGraph_DefaultNameLimit(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(strings.Repeat("a", core.DefaultMaxNameLength)))
	require.ErrorIs(t, g.AddVertex(strings.Repeat("a", core.DefaultMaxNameLength+1)), core.ErrNameTooLong)
	assert.Equal(t, core.DefaultMaxNameLength, g.MaxNameLength())
}

func TestGraph_NamesAreCaseSensitive(t *testing.T) {
	g := newNetwork(t, "paris")
	require.NoError(t, g.AddVertex("Paris"))
	assert.Equal(t, 2, g.VertexCount())
	assert.True(t, g.HasVertex("Paris"))
	assert.False(t, g.HasVertex("PARIS"))
}

// TestGraph_AddEdgeSymmetry VERIFIES that AddEdge writes one entry per side
// with the identical weight.
func TestGraph_AddEdgeSymmetry(t *testing.T) {
	g := newNetwork(t, VertexA, VertexB, VertexC)
	mustConnect(t, g, VertexA, VertexB, Weight5)
	mustConnect(t, g, VertexB, VertexC, Weight3)

	assert.Equal(t, []string{VertexB}, connectionNames(t, g, VertexA))
	assert.Equal(t, []int64{Weight5}, connectionWeights(t, g, VertexA))
	assert.Equal(t, []string{VertexA, VertexC}, connectionNames(t, g, VertexB))
	assert.Equal(t, []int64{Weight5, Weight3}, connectionWeights(t, g, VertexB))
	assert.Equal(t, []string{VertexB}, connectionNames(t, g, VertexC))
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.HasEdge(VertexA, VertexB))
	assert.True(t, g.HasEdge(VertexB, VertexA))
	assert.False(t, g.HasEdge(VertexA, VertexC))
	assert.False(t, g.HasEdge(VertexX, VertexA))
}

// TestGraph_AddEdgeValidationOrder VERIFIES the failure kind reported for
// each invalid call, and that no adjacency entry is written.
func TestGraph_AddEdgeValidationOrder(t *testing.T) {
	cases := []struct {
		name   string
		verts  []string
		a, b   string
		weight int64
		want   error
	}{
		{"both missing", []string{VertexA, VertexB}, VertexX, VertexE, Weight1, core.ErrBothVerticesNotFound},
		{"first missing", []string{VertexA, VertexB}, VertexX, VertexB, Weight1, core.ErrFirstVertexNotFound},
		{"second missing", []string{VertexA, VertexB}, VertexA, VertexX, Weight1, core.ErrSecondVertexNotFound},
		{"missing beats weight", []string{VertexA, VertexB}, VertexA, VertexX, WeightNeg1, core.ErrSecondVertexNotFound},
		{"single vertex", []string{VertexA}, VertexA, VertexA, Weight1, core.ErrTooFewVertices},
		{"size beats weight", []string{VertexA}, VertexA, VertexA, Weight0, core.ErrTooFewVertices},
		{"negative weight", []string{VertexA, VertexB}, VertexA, VertexB, WeightNeg1, core.ErrInvalidWeight},
		{"zero weight", []string{VertexA, VertexB}, VertexA, VertexB, Weight0, core.ErrInvalidWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newNetwork(t, tc.verts...)
			err := g.AddEdge(tc.a, tc.b, tc.weight)
			require.ErrorIs(t, err, tc.want)
			assert.Equal(t, 0, g.EdgeCount(), "failed AddEdge must not write")
			for _, v := range tc.verts {
				d, derr := g.Degree(v)
				require.NoError(t, derr)
				assert.Zero(t, d)
			}
		})
	}
}

func TestGraph_NotFoundKindsShareParent(t *testing.T) {
	for _, err := range []error{core.ErrFirstVertexNotFound, core.ErrSecondVertexNotFound, core.ErrBothVerticesNotFound} {
		assert.True(t, errors.Is(err, core.ErrVertexNotFound), "%v", err)
	}
	assert.False(t, errors.Is(core.ErrFirstVertexNotFound, core.ErrSecondVertexNotFound))
}

// TestGraph_ParallelEdges VERIFIES that repeated AddEdge calls are kept and
// that RemoveEdge takes the oldest one per call.
func TestGraph_ParallelEdges(t *testing.T) {
	g := newNetwork(t, VertexA, VertexB)
	mustConnect(t, g, VertexA, VertexB, Weight5)
	mustConnect(t, g, VertexA, VertexB, Weight7)

	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []int64{Weight5, Weight7}, connectionWeights(t, g, VertexA))
	assert.Equal(t, []int64{Weight5, Weight7}, connectionWeights(t, g, VertexB))

	require.NoError(t, g.RemoveEdge(VertexB, VertexA))
	assert.Equal(t, []int64{Weight7}, connectionWeights(t, g, VertexA))
	assert.Equal(t, []int64{Weight7}, connectionWeights(t, g, VertexB))

	require.NoError(t, g.RemoveEdge(VertexA, VertexB))
	require.ErrorIs(t, g.RemoveEdge(VertexA, VertexB), core.ErrEdgeNotFound)
}

func TestGraph_SelfLoop(t *testing.T) {
	g := newNetwork(t, VertexA, VertexB)
	mustConnect(t, g, VertexA, VertexA, Weight2)

	d, err := g.Degree(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 2, d, "a loop is stored twice in the same list")
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 1, g.Stats().SelfLoopCount)

	require.NoError(t, g.RemoveEdge(VertexA, VertexA))
	d, err = g.Degree(VertexA)
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestGraph_RemoveEdgeValidation(t *testing.T) {
	g := newNetwork(t, VertexA, VertexB, VertexC)
	mustConnect(t, g, VertexA, VertexB, Weight1)

	require.ErrorIs(t, g.RemoveEdge(VertexX, VertexE), core.ErrBothVerticesNotFound)
	require.ErrorIs(t, g.RemoveEdge(VertexX, VertexA), core.ErrFirstVertexNotFound)
	require.ErrorIs(t, g.RemoveEdge(VertexA, VertexX), core.ErrSecondVertexNotFound)
	require.ErrorIs(t, g.RemoveEdge(VertexA, VertexC), core.ErrEdgeNotFound)

	single := newNetwork(t, VertexA)
	require.ErrorIs(t, single.RemoveEdge(VertexA, VertexA), core.ErrTooFewVertices)

	require.NoError(t, g.RemoveEdge(VertexA, VertexB))
	assert.False(t, g.HasEdge(VertexA, VertexB))
	assert.False(t, g.HasEdge(VertexB, VertexA))
}

// TestGraph_RemoveVertex VERIFIES that removing a first, interior or last
// vertex leaves no back-reference and keeps the order of the survivors.
func TestGraph_RemoveVertex(t *testing.T) {
	for _, victim := range []string{VertexA, VertexC, VertexE} {
		t.Run(victim, func(t *testing.T) {
			names := []string{VertexA, VertexB, VertexC, VertexD, VertexE}
			g := newNetwork(t, names...)
			// Star around C plus a ring, with a parallel edge to exercise multiplicity.
			for _, n := range []string{VertexA, VertexB, VertexD, VertexE} {
				mustConnect(t, g, VertexC, n, Weight2)
			}
			mustConnect(t, g, VertexA, VertexE, Weight1)
			mustConnect(t, g, VertexA, VertexE, Weight3)

			before := g.VertexCount()
			require.NoError(t, g.RemoveVertex(victim))
			assert.Equal(t, before-1, g.VertexCount())
			assert.False(t, g.HasVertex(victim))

			for _, n := range g.Vertices() {
				assert.NotContains(t, connectionNames(t, g, n), victim)
			}

			var want []string
			for _, n := range names {
				if n != victim {
					want = append(want, n)
				}
			}
			assert.Equal(t, want, g.Vertices())
		})
	}
}

func TestGraph_RemoveVertexNotFound(t *testing.T) {
	g := newNetwork(t, VertexA)
	require.ErrorIs(t, g.RemoveVertex(VertexX), core.ErrVertexNotFound)
	assert.Equal(t, 1, g.VertexCount())
}

func TestGraph_Lookups(t *testing.T) {
	g := newNetwork(t, VertexA, VertexB)
	mustConnect(t, g, VertexA, VertexB, Weight3)

	v, err := g.FindVertex(VertexB)
	require.NoError(t, err)
	assert.Equal(t, VertexB, v.Name())
	assert.Equal(t, VertexB, v.String())
	assert.Equal(t, uint64(2), v.Seq())

	_, err = g.FindVertex(VertexX)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Connections(VertexX)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree(VertexX)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	first, err := g.VertexAt(0)
	require.NoError(t, err)
	assert.Equal(t, VertexA, first.Name())
	_, err = g.VertexAt(2)
	require.ErrorIs(t, err, core.ErrIndexOutOfRange)

	nbs := g.Neighbors(first)
	require.Len(t, nbs, 1)
	assert.Same(t, v, nbs[0].Vertex)
	assert.Nil(t, g.Neighbors(nil))

	list := g.VertexList()
	require.Len(t, list, 2)
	assert.Same(t, first, list[0])
}

func TestGraph_NeighborsOfRemovedVertex(t *testing.T) {
	g := newNetwork(t, VertexA, VertexB)
	mustConnect(t, g, VertexA, VertexB, Weight1)
	a, err := g.FindVertex(VertexA)
	require.NoError(t, err)
	require.NoError(t, g.RemoveVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexA))
	assert.Nil(t, g.Neighbors(a), "stale pointer must not resolve to the new vertex")
}

// TestGraph_FixedAdjacency VERIFIES ErrCapacityExceeded and that a rejected
// AddEdge leaves both sides untouched.
func TestGraph_FixedAdjacency(t *testing.T) {
	g := core.NewGraph(core.WithAdjacencyCapacity(1), core.WithFixedAdjacency())
	for _, n := range []string{VertexA, VertexB, VertexC} {
		require.NoError(t, g.AddVertex(n))
	}
	assert.True(t, g.FixedAdjacency())
	assert.Equal(t, 1, g.AdjacencyCapacity())

	mustConnect(t, g, VertexA, VertexB, Weight1)
	require.ErrorIs(t, g.AddEdge(VertexC, VertexA, Weight1), core.ErrCapacityExceeded)
	assert.Empty(t, connectionNames(t, g, VertexC), "C must not keep a half edge")
	require.ErrorIs(t, g.AddEdge(VertexC, VertexC, Weight1), core.ErrCapacityExceeded, "a loop needs two slots")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_GrowthPreservesOrder(t *testing.T) {
	g := core.NewGraph(core.WithAdjacencyCapacity(SmallCapacity))
	require.NoError(t, g.AddVertex(VertexBase))
	var want []string
	for i := 0; i < 9; i++ {
		n := string(rune('a' + i))
		require.NoError(t, g.AddVertex(n))
		mustConnect(t, g, VertexBase, n, int64(i+1))
		want = append(want, n)
	}
	assert.Equal(t, want, connectionNames(t, g, VertexBase))
}

func TestGraph_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { core.WithAdjacencyCapacity(0) })
	assert.Panics(t, func() { core.WithMaxNameLength(0) })
}

func TestGraph_CloneIsDeep(t *testing.T) {
	g := newNetwork(t, VertexA, VertexB, VertexC)
	mustConnect(t, g, VertexA, VertexB, Weight5)
	mustConnect(t, g, VertexB, VertexC, Weight3)

	c := g.Clone()
	require.NoError(t, c.RemoveVertex(VertexB))
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, []string{VertexA, VertexC}, connectionNames(t, g, VertexB))

	c2 := g.Clone()
	a, err := c2.FindVertex(VertexA)
	require.NoError(t, err)
	b, err := c2.FindVertex(VertexB)
	require.NoError(t, err)
	nbs := c2.Neighbors(a)
	require.Len(t, nbs, 1)
	assert.Same(t, b, nbs[0].Vertex, "clone entries point at clone vertices")
}

func TestGraph_ClearAndStats(t *testing.T) {
	g := newNetwork(t, VertexA, VertexB, VertexC, VertexD)
	mustConnect(t, g, VertexA, VertexB, Weight1)
	mustConnect(t, g, VertexA, VertexC, Weight1)

	st := g.Stats()
	assert.Equal(t, 4, st.VertexCount)
	assert.Equal(t, 2, st.EdgeCount)
	assert.Equal(t, 1, st.IsolatedCount)
	assert.Equal(t, 2, st.MaxDegree)
	assert.Equal(t, core.DefaultAdjacencyCapacity, st.AdjacencyCapacity)

	g.Clear()
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.Empty(t, g.Vertices())
	require.NoError(t, g.AddVertex(VertexA), "graph is reusable after Clear")
}
