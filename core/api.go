// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters for construction-time configuration and the
//       Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking.

package core

// GraphStats is a read-only snapshot of network sizes and configuration.
type GraphStats struct {
	VertexCount   int
	EdgeCount     int // undirected edges, parallel edges and self-loops included
	SelfLoopCount int
	IsolatedCount int // vertices with no connection at all
	MaxDegree     int

	AdjacencyCapacity int
	FixedAdjacency    bool
	MaxNameLength     int
}

// AdjacencyCapacity returns the initial capacity of new adjacency lists.
// Complexity: O(1).
func (g *Graph) AdjacencyCapacity() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.adjCapacity
}

// FixedAdjacency reports whether adjacency growth is disabled.
// Complexity: O(1).
func (g *Graph) FixedAdjacency() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return !g.adjGrowable
}

// MaxNameLength returns the longest accepted vertex name in bytes.
// Complexity: O(1).
func (g *Graph) MaxNameLength() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.maxNameLen
}

// Stats produces a deterministic snapshot of catalog sizes and configuration.
//
// Implementation:
//   - Stage 1: Under the read lock, copy the configuration.
//   - Stage 2: Scan every adjacency list once, counting degrees and
//     self-loop entries.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		VertexCount:       len(g.vertices),
		AdjacencyCapacity: g.adjCapacity,
		FixedAdjacency:    !g.adjGrowable,
		MaxNameLength:     g.maxNameLen,
	}

	var (
		entries, loops int
		v              *Vertex
	)
	for _, v = range g.vertices {
		entries += v.adj.size
		if v.adj.size == 0 {
			stats.IsolatedCount++
		}
		if v.adj.size > stats.MaxDegree {
			stats.MaxDegree = v.adj.size
		}
		for i := 0; i < v.adj.size; i++ {
			if v.adj.entries[i].Vertex == v {
				loops++
			}
		}
	}
	stats.EdgeCount = entries / 2
	stats.SelfLoopCount = loops / 2 // each loop is stored twice in the same list

	return &stats
}
