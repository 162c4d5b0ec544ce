// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: AdjacencyList, the per-vertex dense array of connections.
// Determinism:
//   - Entries keep insertion order; Remove compacts without reordering.
// Growth:
//   - Capacity doubles when a growable list is full and never shrinks.

package core

import "fmt"

// AdjacencyList is a dense array of connections with a logical length
// Len() ≤ Cap(). Entries occupy [0, Len()) contiguously.
//
// AdjacencyList is not safe for concurrent use on its own; lists owned by a
// Graph are guarded by the Graph lock.
type AdjacencyList struct {
	entries  []Connection // physical storage, len(entries) == capacity
	size     int          // logical length
	growable bool
}

// NewAdjacencyList returns an empty list with the given initial capacity.
// When growable is false, Add fails with ErrCapacityExceeded once full.
// Panics if capacity < 1.
// Complexity: O(capacity).
func NewAdjacencyList(capacity int, growable bool) *AdjacencyList {
	if capacity < 1 {
		panic("core: NewAdjacencyList(capacity<1)")
	}

	return &AdjacencyList{
		entries:  make([]Connection, capacity),
		growable: growable,
	}
}

// Len returns the number of stored connections.
func (l *AdjacencyList) Len() int { return l.size }

// Cap returns the physical capacity.
func (l *AdjacencyList) Cap() int { return len(l.entries) }

// IsEmpty reports whether the list holds no connections.
func (l *AdjacencyList) IsEmpty() bool { return l.size == 0 }

// Growable reports whether the list doubles its capacity when full.
func (l *AdjacencyList) Growable() bool { return l.growable }

// hasRoom reports whether one more Add would succeed.
func (l *AdjacencyList) hasRoom() bool {
	return l.growable || l.size < len(l.entries)
}

// Add appends (neighbor, weight) at the next free slot, doubling the
// capacity first if the list is full.
//
// Errors:
//   - ErrCapacityExceeded: list is full and growth is disabled.
//
// Complexity: O(1) amortized; O(n) on the doubling step.
func (l *AdjacencyList) Add(neighbor *Vertex, weight int64) error {
	if l.size == len(l.entries) {
		if !l.growable {
			return fmt.Errorf("%w: cap=%d", ErrCapacityExceeded, len(l.entries))
		}
		l.grow()
	}
	l.entries[l.size] = Connection{Vertex: neighbor, Weight: weight}
	l.size++

	return nil
}

// grow doubles the physical capacity, preserving entries and their order.
func (l *AdjacencyList) grow() {
	next := make([]Connection, 2*len(l.entries))
	copy(next, l.entries[:l.size])
	l.entries = next
}

// Remove deletes the entry at index and shifts the following entries left
// by one, preserving their relative order.
//
// Errors:
//   - ErrIndexOutOfRange: index outside [0, Len()).
//
// Complexity: O(Len() - index).
func (l *AdjacencyList) Remove(index int) error {
	if index < 0 || index >= l.size {
		return fmt.Errorf("%w: index=%d len=%d", ErrIndexOutOfRange, index, l.size)
	}
	copy(l.entries[index:], l.entries[index+1:l.size])
	l.size--
	l.entries[l.size] = Connection{} // drop the stale reference

	return nil
}

// Search returns the index of the first connection whose neighbor is named
// name, or -1 when there is none.
// Complexity: O(Len()).
func (l *AdjacencyList) Search(name string) int {
	for i := 0; i < l.size; i++ {
		if l.entries[i].Vertex.name == name {
			return i
		}
	}

	return -1
}

// At returns the connection stored at index.
//
// Errors:
//   - ErrIndexOutOfRange: index outside [0, Len()).
func (l *AdjacencyList) At(index int) (Connection, error) {
	if index < 0 || index >= l.size {
		return Connection{}, fmt.Errorf("%w: index=%d len=%d", ErrIndexOutOfRange, index, l.size)
	}

	return l.entries[index], nil
}

// Connections returns a copy of the stored connections in order.
// Complexity: O(Len()).
func (l *AdjacencyList) Connections() []Connection {
	out := make([]Connection, l.size)
	copy(out, l.entries[:l.size])

	return out
}
