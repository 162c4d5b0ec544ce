// SPDX-License-Identifier: MIT

// Package core provides the in-memory city network used by citynet: an
// undirected graph of uniquely named vertices joined by positive integer
// weighted edges.
//
// The Graph G = (V,E) keeps:
//
//   - An insertion-ordered vertex catalog plus a name index, so enumeration
//     (Vertices, Connections) is deterministic and lookups are O(1).
//   - One AdjacencyList per vertex: a dense, explicitly doubling array of
//     (neighbor, weight) connections.
//   - Symmetric edges: AddEdge(a, b, w) writes (b,w) into a's list and (a,w)
//     into b's list. Parallel edges are kept as independent entries.
//
// Why use core.Graph?
//
//   - Validation always precedes mutation: a failed AddEdge/RemoveEdge/
//     RemoveVertex leaves the graph untouched.
//   - Failures are sentinel errors (errors.Is), never printed or fatal.
//   - Algorithm state is not stored on vertices; read-only queries (see
//     package dijkstra) keep their own side tables.
//
// Configuration Options (GraphOption):
//
//	– WithAdjacencyCapacity(n)
//	    Initial capacity of every new AdjacencyList (default 16).
//
//	– WithFixedAdjacency()
//	    Disables doubling growth; a full list rejects AddEdge with ErrCapacityExceeded.
//
//	– WithMaxNameLength(n)
//	    Longest accepted vertex name in bytes (default 126).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(name string) error          // O(1) amortized
//	HasVertex(name string) bool           // O(1)
//	RemoveVertex(name string) error       // O(V + Σ deg(neighbor))
//
//	// Edge lifecycle
//	AddEdge(a, b string, weight int64) error // O(1) amortized
//	RemoveEdge(a, b string) error            // O(deg(a) + deg(b))
//
//	// Query (insertion order)
//	Vertices() []string
//	Connections(name string) ([]Connection, error)
//	Degree(name string) (int, error)
//	VertexCount() int
//	EdgeCount() int
//
//	// Maintenance
//	Clear()                               // teardown, configuration kept
//
// Errors:
//
//	ErrEmptyVertexName       – zero-length vertex name
//	ErrNameTooLong           – name longer than MaxNameLength
//	ErrDuplicateVertex       – AddVertex on an existing name
//	ErrVertexNotFound        – unknown vertex (parent of the three below)
//	ErrFirstVertexNotFound   – first endpoint unknown
//	ErrSecondVertexNotFound  – second endpoint unknown
//	ErrBothVerticesNotFound  – neither endpoint known
//	ErrTooFewVertices        – edge operation on a graph with fewer than 2 vertices
//	ErrInvalidWeight         – weight <= 0
//	ErrEdgeNotFound          – RemoveEdge on unconnected vertices
//	ErrCapacityExceeded      – full AdjacencyList with growth disabled
//	ErrIndexOutOfRange       – AdjacencyList index outside [0,len)
//
// Concurrency: a single sync.RWMutex guards the catalog and all adjacency
// lists. Mutations take the write lock, queries the read lock.
package core
