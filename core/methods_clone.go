// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone keeps vertex order, adjacency order and sequence numbers.
// Concurrency:
//   - Clone reads under the source read lock; Clear takes the write lock.

package core

// Clone returns a deep copy of the Graph: configuration, vertices and every
// adjacency list, with neighbor references remapped to the clone's vertices.
//
// Behavior highlights:
//   - Parallel edges and self-loops are copied entry by entry.
//   - The clone continues the source's sequence counter.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		adjCapacity: g.adjCapacity,
		adjGrowable: g.adjGrowable,
		maxNameLen:  g.maxNameLen,
		nextSeq:     g.nextSeq,
		vertices:    make([]*Vertex, len(g.vertices)),
		index:       make(map[string]*Vertex, len(g.vertices)),
	}

	remap := make(map[*Vertex]*Vertex, len(g.vertices))
	var (
		i  int
		v  *Vertex
		nv *Vertex
	)
	for i, v = range g.vertices {
		nv = &Vertex{name: v.name, seq: v.seq}
		clone.vertices[i] = nv
		clone.index[v.name] = nv
		remap[v] = nv
	}

	for i, v = range g.vertices {
		nv = clone.vertices[i]
		nv.adj = &AdjacencyList{
			entries:  make([]Connection, len(v.adj.entries)),
			size:     v.adj.size,
			growable: v.adj.growable,
		}
		for j := 0; j < v.adj.size; j++ {
			nv.adj.entries[j] = Connection{Vertex: remap[v.adj.entries[j].Vertex], Weight: v.adj.entries[j].Weight}
		}
	}

	return clone
}

// Clear tears the network down: every vertex and edge is dropped while the
// configuration is kept. Sequence numbers keep increasing after Clear.
// Complexity: O(V).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, v := range g.vertices {
		v.adj = NewAdjacencyList(g.adjCapacity, g.adjGrowable) // release neighbor references
	}
	g.vertices = nil
	g.index = make(map[string]*Vertex)
}
