// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Vertex, Connection, Graph, GraphOption, sentinel errors and NewGraph.
// Policy:
//   - Option constructors panic on meaningless arguments; methods never panic.
//   - Sentinels are compared with errors.Is; context is attached with %w.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexName indicates that a vertex name is the empty string.
	ErrEmptyVertexName = errors.New("core: vertex name is empty")

	// ErrNameTooLong indicates that a vertex name exceeds the configured maximum length.
	ErrNameTooLong = errors.New("core: vertex name too long")

	// ErrDuplicateVertex indicates that AddVertex was called with a name already present.
	ErrDuplicateVertex = errors.New("core: vertex already present")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrFirstVertexNotFound indicates the first endpoint of an edge operation is unknown.
	ErrFirstVertexNotFound = fmt.Errorf("%w: first endpoint", ErrVertexNotFound)

	// ErrSecondVertexNotFound indicates the second endpoint of an edge operation is unknown.
	ErrSecondVertexNotFound = fmt.Errorf("%w: second endpoint", ErrVertexNotFound)

	// ErrBothVerticesNotFound indicates neither endpoint of an edge operation is known.
	ErrBothVerticesNotFound = fmt.Errorf("%w: both endpoints", ErrVertexNotFound)

	// ErrTooFewVertices indicates an edge operation on a graph holding fewer than two vertices.
	ErrTooFewVertices = errors.New("core: graph must contain at least 2 vertices")

	// ErrInvalidWeight indicates a non-positive edge weight.
	ErrInvalidWeight = errors.New("core: edge weight must be greater than 0")

	// ErrEdgeNotFound indicates the two vertices are not connected in both directions.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrCapacityExceeded indicates a full AdjacencyList whose growth is disabled.
	ErrCapacityExceeded = errors.New("core: adjacency capacity exceeded")

	// ErrIndexOutOfRange indicates an AdjacencyList index outside [0, Len()).
	ErrIndexOutOfRange = errors.New("core: index out of range")
)

const (
	// DefaultAdjacencyCapacity is the initial capacity of every AdjacencyList.
	DefaultAdjacencyCapacity = 16

	// DefaultMaxNameLength is the longest accepted vertex name, in bytes.
	DefaultMaxNameLength = 126
)

// Vertex is a named point of the network.
//
// A Vertex is owned by exactly one Graph. Its adjacency is mutated only
// through Graph methods; callers get copies via Graph.Connections/Neighbors.
type Vertex struct {
	name string
	seq  uint64 // insertion sequence, stable for the vertex lifetime
	adj  *AdjacencyList
}

// Name returns the vertex name.
func (v *Vertex) Name() string { return v.name }

// Seq returns the insertion sequence number assigned by the owning Graph.
// Sequence numbers are unique within a Graph and never reused.
func (v *Vertex) Seq() uint64 { return v.seq }

// String implements fmt.Stringer.
func (v *Vertex) String() string {
	if v == nil {
		return "<nil>"
	}

	return v.name
}

// Connection is one adjacency entry: a non-owning reference to the neighbor
// plus the weight of the edge leading to it.
type Connection struct {
	Vertex *Vertex
	Weight int64
}

// Name returns the neighbor name, or "" for a zero Connection.
func (c Connection) Name() string {
	if c.Vertex == nil {
		return ""
	}

	return c.Vertex.name
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithAdjacencyCapacity sets the initial capacity of each new AdjacencyList.
// Panics if n < 1.
func WithAdjacencyCapacity(n int) GraphOption {
	if n < 1 {
		panic("core: WithAdjacencyCapacity(n<1)")
	}

	return func(g *Graph) { g.adjCapacity = n }
}

// WithFixedAdjacency disables doubling growth of adjacency lists.
// AddEdge then fails with ErrCapacityExceeded once a list is full.
func WithFixedAdjacency() GraphOption {
	return func(g *Graph) { g.adjGrowable = false }
}

// WithMaxNameLength sets the longest accepted vertex name in bytes.
// Panics if n < 1.
func WithMaxNameLength(n int) GraphOption {
	if n < 1 {
		panic("core: WithMaxNameLength(n<1)")
	}

	return func(g *Graph) { g.maxNameLen = n }
}

// Graph is the city network.
//
// vertices keeps insertion order, index maps names to the same pointers.
// mu guards both plus every vertex adjacency list.
type Graph struct {
	mu sync.RWMutex

	// Configuration
	adjCapacity int
	adjGrowable bool
	maxNameLen  int

	// Storage
	nextSeq  uint64
	vertices []*Vertex
	index    map[string]*Vertex
}

// NewGraph creates an empty Graph.
// Defaults: adjacency capacity 16 with doubling growth, names up to 126 bytes.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjCapacity: DefaultAdjacencyCapacity,
		adjGrowable: true,
		maxNameLen:  DefaultMaxNameLength,
		index:       make(map[string]*Vertex),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
