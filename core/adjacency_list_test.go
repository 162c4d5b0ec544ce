// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/citynet/core"
)

type AdjacencySuite struct {
	suite.Suite
	g       *core.Graph
	a, b, c *core.Vertex
}

func (s *AdjacencySuite) SetupTest() {
	require := require.New(s.T())
	s.g = newNetwork(s.T(), VertexA, VertexB, VertexC)
	var err error
	s.a, err = s.g.FindVertex(VertexA)
	require.NoError(err)
	s.b, err = s.g.FindVertex(VertexB)
	require.NoError(err)
	s.c, err = s.g.FindVertex(VertexC)
	require.NoError(err)
}

func (s *AdjacencySuite) TestNewListIsEmpty() {
	require := require.New(s.T())
	l := core.NewAdjacencyList(SmallCapacity, true)
	require.True(l.IsEmpty())
	require.Equal(0, l.Len())
	require.Equal(SmallCapacity, l.Cap())
	require.True(l.Growable())
	require.Empty(l.Connections())
}

func (s *AdjacencySuite) TestNewListPanicsOnZeroCapacity() {
	s.Require().Panics(func() { core.NewAdjacencyList(0, true) })
}

func (s *AdjacencySuite) TestAddDoublesCapacity() {
	require := require.New(s.T())
	l := core.NewAdjacencyList(SmallCapacity, true)
	require.NoError(l.Add(s.a, Weight1))
	require.NoError(l.Add(s.b, Weight2))
	require.Equal(SmallCapacity, l.Cap())

	require.NoError(l.Add(s.c, Weight3))
	require.Equal(2*SmallCapacity, l.Cap(), "full list should double")
	require.Equal(3, l.Len())

	got := l.Connections()
	require.Equal(VertexA, got[0].Name())
	require.Equal(VertexB, got[1].Name())
	require.Equal(VertexC, got[2].Name())
	require.Equal(int64(Weight3), got[2].Weight)
}

func (s *AdjacencySuite) TestAddFixedListFails() {
	require := require.New(s.T())
	l := core.NewAdjacencyList(1, false)
	require.NoError(l.Add(s.a, Weight1))
	err := l.Add(s.b, Weight1)
	require.ErrorIs(err, core.ErrCapacityExceeded)
	require.Equal(1, l.Len(), "failed Add must not change the list")
}

func (s *AdjacencySuite) TestRemoveCompactsInOrder() {
	require := require.New(s.T())
	l := core.NewAdjacencyList(SmallCapacity, true)
	require.NoError(l.Add(s.a, Weight1))
	require.NoError(l.Add(s.b, Weight2))
	require.NoError(l.Add(s.c, Weight3))

	require.NoError(l.Remove(0))
	require.Equal(2, l.Len())
	require.Equal(0, l.Search(VertexB))
	require.Equal(1, l.Search(VertexC))
	require.Equal(-1, l.Search(VertexA))

	require.NoError(l.Remove(1)) // last entry
	require.Equal(1, l.Len())
	c, err := l.At(0)
	require.NoError(err)
	require.Equal(VertexB, c.Name())
}

func (s *AdjacencySuite) TestRemoveOutOfRange() {
	require := require.New(s.T())
	l := core.NewAdjacencyList(SmallCapacity, true)
	require.ErrorIs(l.Remove(0), core.ErrIndexOutOfRange)
	require.NoError(l.Add(s.a, Weight1))
	require.ErrorIs(l.Remove(-1), core.ErrIndexOutOfRange)
	require.ErrorIs(l.Remove(1), core.ErrIndexOutOfRange)
	_, err := l.At(1)
	require.ErrorIs(err, core.ErrIndexOutOfRange)
}

func (s *AdjacencySuite) TestSearchFirstMatch() {
	require := require.New(s.T())
	l := core.NewAdjacencyList(SmallCapacity, true)
	require.Equal(-1, l.Search(VertexA), "empty list")
	require.NoError(l.Add(s.b, Weight5))
	require.NoError(l.Add(s.a, Weight1))
	require.NoError(l.Add(s.a, Weight7))
	require.Equal(1, l.Search(VertexA))
	require.Equal(-1, l.Search(VertexX))
}

func (s *AdjacencySuite) TestConnectionsIsACopy() {
	require := require.New(s.T())
	l := core.NewAdjacencyList(SmallCapacity, true)
	require.NoError(l.Add(s.a, Weight1))
	got := l.Connections()
	got[0].Weight = Weight7
	c, err := l.At(0)
	require.NoError(err)
	require.Equal(int64(Weight1), c.Weight)
}

func TestAdjacencySuite(t *testing.T) {
	suite.Run(t, new(AdjacencySuite))
}
