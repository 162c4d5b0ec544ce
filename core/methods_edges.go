// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeCount,
//       Connections/Neighbors enumeration.
// Determinism:
//   - Connections() and Neighbors() return entries in insertion order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddEdge connects a and b with an undirected edge of the given weight.
//
// Implementation:
//   - Stage 1: Under the write lock, resolve both endpoints and check the
//     graph size (see resolvePair for the exact order).
//   - Stage 2: Reject weight <= 0.
//   - Stage 3: Pre-check capacity of both lists so that no half-written
//     edge can remain when growth is disabled.
//   - Stage 4: Append (b,w) to a's list and (a,w) to b's list.
//
// Behavior highlights:
//   - Repeated calls for the same pair add parallel entries; nothing is deduplicated.
//   - a == b is accepted and stores two entries in the same list.
//
// Errors:
//   - ErrBothVerticesNotFound, ErrFirstVertexNotFound, ErrSecondVertexNotFound
//     (all match ErrVertexNotFound).
//   - ErrTooFewVertices: fewer than two vertices in the graph.
//   - ErrInvalidWeight: weight <= 0.
//   - ErrCapacityExceeded: a fixed-capacity list is full.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(a, b string, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	va, vb, err := g.resolvePair(a, b)
	if err != nil {
		return err
	}
	if weight <= 0 {
		return fmt.Errorf("%w: %s-%s weight=%d", ErrInvalidWeight, a, b, weight)
	}

	if va == vb {
		if !va.adj.growable && va.adj.size+2 > len(va.adj.entries) {
			return fmt.Errorf("%w: vertex %q", ErrCapacityExceeded, a)
		}
	} else {
		if !va.adj.hasRoom() {
			return fmt.Errorf("%w: vertex %q", ErrCapacityExceeded, a)
		}
		if !vb.adj.hasRoom() {
			return fmt.Errorf("%w: vertex %q", ErrCapacityExceeded, b)
		}
	}

	// Room was checked above, neither Add can fail.
	_ = va.adj.Add(vb, weight)
	_ = vb.adj.Add(va, weight)

	return nil
}

// RemoveEdge disconnects a and b.
//
// Implementation:
//   - Stage 1: Under the write lock, resolve both endpoints and check the
//     graph size (see resolvePair).
//   - Stage 2: Locate b in a's list and a in b's list; both must exist.
//   - Stage 3: Remove the first matching entry in each direction.
//
// Behavior highlights:
//   - With parallel edges only the oldest one is removed per call.
//   - For a self-loop both of its entries are removed.
//
// Errors:
//   - ErrBothVerticesNotFound, ErrFirstVertexNotFound, ErrSecondVertexNotFound.
//   - ErrTooFewVertices: fewer than two vertices in the graph.
//   - ErrEdgeNotFound: the vertices are not connected in both directions.
//
// Complexity:
//   - Time O(deg(a) + deg(b)), Space O(1).
func (g *Graph) RemoveEdge(a, b string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	va, vb, err := g.resolvePair(a, b)
	if err != nil {
		return err
	}

	ia := va.adj.Search(b)
	ib := vb.adj.Search(a)
	if ia < 0 || ib < 0 {
		return fmt.Errorf("%w: %s-%s", ErrEdgeNotFound, a, b)
	}

	_ = va.adj.Remove(ia)
	if va == vb {
		// The loop's second entry shifted into the search range; find it again.
		ib = va.adj.Search(a)
		if ib < 0 {
			return nil
		}
	}
	_ = vb.adj.Remove(ib)

	return nil
}

// resolvePair looks both names up and checks the minimum graph size.
// The caller must hold g.mu.
//
// Validation order: both missing, first missing, second missing, then
// fewer than two vertices.
func (g *Graph) resolvePair(a, b string) (*Vertex, *Vertex, error) {
	va, okA := g.index[a]
	vb, okB := g.index[b]
	switch {
	case !okA && !okB:
		return nil, nil, fmt.Errorf("%w: %q and %q", ErrBothVerticesNotFound, a, b)
	case !okA:
		return nil, nil, fmt.Errorf("%w: %q", ErrFirstVertexNotFound, a)
	case !okB:
		return nil, nil, fmt.Errorf("%w: %q", ErrSecondVertexNotFound, b)
	case len(g.vertices) < 2:
		return nil, nil, ErrTooFewVertices
	}

	return va, vb, nil
}

// HasEdge reports whether a and b are connected by at least one edge.
// Unknown names yield false.
// Complexity: O(deg(a)).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	va, ok := g.index[a]
	if !ok {
		return false
	}

	return va.adj.Search(b) >= 0
}

// EdgeCount returns the number of undirected edges, parallel edges and
// self-loops included.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	total := 0
	for _, v := range g.vertices {
		total += v.adj.size
	}

	return total / 2
}

// Connections returns a copy of the adjacency entries of the vertex named
// name, in insertion order.
//
// Errors:
//   - ErrVertexNotFound: no such vertex.
//
// Complexity: O(deg).
func (g *Graph) Connections(name string) ([]Connection, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, name)
	}

	return v.adj.Connections(), nil
}

// Neighbors returns a copy of v's adjacency entries in insertion order.
// It is the pointer-keyed fast path used by traversal algorithms; a vertex
// that no longer belongs to g yields nil.
// Complexity: O(deg).
func (g *Graph) Neighbors(v *Vertex) []Connection {
	if v == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.index[v.name] != v {
		return nil
	}

	return v.adj.Connections()
}
