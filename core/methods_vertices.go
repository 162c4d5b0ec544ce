// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns names in insertion order.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddVertex inserts a new vertex named name.
//
// Implementation:
//   - Stage 1: Validate the name (non-empty, within MaxNameLength).
//   - Stage 2: Under the write lock, reject duplicates, then append to the
//     ordered catalog and register in the name index.
//
// Errors:
//   - ErrEmptyVertexName, ErrNameTooLong: invalid name.
//   - ErrDuplicateVertex: a vertex with this name already exists; the graph
//     is unchanged. Callers loading edge lists usually treat it as benign.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) plus the new adjacency list.
func (g *Graph) AddVertex(name string) error {
	if err := g.validateName(name); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, name)
	}

	g.nextSeq++
	v := &Vertex{
		name: name,
		seq:  g.nextSeq,
		adj:  NewAdjacencyList(g.adjCapacity, g.adjGrowable),
	}
	g.vertices = append(g.vertices, v)
	g.index[name] = v

	return nil
}

// validateName checks the name domain; it needs no lock (maxNameLen is immutable).
func (g *Graph) validateName(name string) error {
	if name == "" {
		return ErrEmptyVertexName
	}
	if len(name) > g.maxNameLen {
		return fmt.Errorf("%w: %d > %d bytes", ErrNameTooLong, len(name), g.maxNameLen)
	}

	return nil
}

// HasVertex reports whether a vertex named name exists.
// Complexity: O(1).
func (g *Graph) HasVertex(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[name]

	return ok
}

// FindVertex returns the vertex named name.
//
// Errors:
//   - ErrVertexNotFound: no such vertex.
//
// Complexity: O(1).
func (g *Graph) FindVertex(name string) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, name)
	}

	return v, nil
}

// RemoveVertex deletes the vertex named name together with every incident edge.
//
// Implementation:
//   - Stage 1: Under the write lock, resolve the vertex (ErrVertexNotFound).
//   - Stage 2: For each connection of the vertex, find the back-reference in
//     the neighbor's list by name and remove it. Self-loop entries live in the
//     vertex's own list and are discarded with it.
//   - Stage 3: Unlink the vertex from the ordered catalog and the index.
//
// Behavior highlights:
//   - Works for the first, last and any interior vertex; the relative order
//     of the remaining vertices is unchanged.
//   - Parallel edges leave one back-reference per entry; each is removed.
//
// Complexity:
//   - Time O(V + Σ deg(neighbor)), Space O(1).
func (g *Graph) RemoveVertex(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.index[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, name)
	}

	var (
		i   int
		c   Connection
		idx int
	)
	for i = 0; i < v.adj.size; i++ {
		c = v.adj.entries[i]
		if c.Vertex == v {
			continue
		}
		idx = c.Vertex.adj.Search(v.name)
		if idx >= 0 {
			_ = c.Vertex.adj.Remove(idx) // idx comes from Search, always in range
		}
	}

	for i = range g.vertices {
		if g.vertices[i] == v {
			copy(g.vertices[i:], g.vertices[i+1:])
			g.vertices[len(g.vertices)-1] = nil
			g.vertices = g.vertices[:len(g.vertices)-1]
			break
		}
	}
	delete(g.index, name)

	return nil
}

// Vertices returns all vertex names in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	names := make([]string, len(g.vertices))
	for i, v := range g.vertices {
		names[i] = v.name
	}

	return names
}

// VertexList returns the vertex pointers in insertion order.
// The slice is a copy; the vertices are shared with the graph.
// Complexity: O(V).
func (g *Graph) VertexList() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of adjacency entries of the vertex named name.
// Parallel edges count once each; a self-loop counts twice.
//
// Errors:
//   - ErrVertexNotFound: no such vertex.
func (g *Graph) Degree(name string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, name)
	}

	return v.adj.size, nil
}

// VertexAt returns the i-th vertex in insertion order.
//
// Errors:
//   - ErrIndexOutOfRange: i outside [0, VertexCount()).
func (g *Graph) VertexAt(i int) (*Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if i < 0 || i >= len(g.vertices) {
		return nil, fmt.Errorf("%w: index=%d len=%d", ErrIndexOutOfRange, i, len(g.vertices))
	}

	return g.vertices[i], nil
}
