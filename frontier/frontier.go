// SPDX-License-Identifier: MIT
//
// File: frontier.go
// Role: Frontier[K], its options and the container/heap adapter.

package frontier

import (
	"container/heap"
	"errors"
	"fmt"
)

// Sentinel errors for frontier operations.
var (
	// ErrCapacityExceeded indicates Push on a full frontier with growth disabled.
	ErrCapacityExceeded = errors.New("frontier: capacity exceeded")

	// ErrDuplicateKey indicates Push of a key that is already queued; use Update instead.
	ErrDuplicateKey = errors.New("frontier: key already queued")
)

// DefaultCapacity is the initial size of the backing array.
const DefaultCapacity = 32

// Item is one queued candidate.
type Item[K comparable] struct {
	Key          K
	Distance     int64 // tentative distance, the priority
	EdgeDistance int64 // weight of the edge the candidate was reached by

	seq   uint64 // insertion order, tie-break
	index int    // position in the heap, -1 once popped
}

// Option configures a Frontier.
type Option func(*config)

type config struct {
	capacity int
	growable bool
}

// WithCapacity sets the initial capacity. Panics if n < 1.
func WithCapacity(n int) Option {
	if n < 1 {
		panic("frontier: WithCapacity(n<1)")
	}

	return func(c *config) { c.capacity = n }
}

// WithoutGrowth disables doubling; Push fails with ErrCapacityExceeded when full.
func WithoutGrowth() Option {
	return func(c *config) { c.growable = false }
}

// Frontier is a min-priority queue keyed by K.
type Frontier[K comparable] struct {
	h        itemHeap[K]
	pos      map[K]*Item[K]
	growable bool
	nextSeq  uint64
}

// New returns an empty Frontier.
func New[K comparable](opts ...Option) *Frontier[K] {
	cfg := config{capacity: DefaultCapacity, growable: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Frontier[K]{
		h:        make(itemHeap[K], 0, cfg.capacity),
		pos:      make(map[K]*Item[K], cfg.capacity),
		growable: cfg.growable,
	}
}

// Len returns the number of queued items.
func (f *Frontier[K]) Len() int { return len(f.h) }

// Cap returns the capacity of the backing array.
func (f *Frontier[K]) Cap() int { return cap(f.h) }

// IsEmpty reports whether nothing is queued.
func (f *Frontier[K]) IsEmpty() bool { return len(f.h) == 0 }

// Contains reports whether key is queued.
func (f *Frontier[K]) Contains(key K) bool {
	_, ok := f.pos[key]

	return ok
}

// Push queues key with the given priority.
//
// Errors:
//   - ErrDuplicateKey: key is already queued.
//   - ErrCapacityExceeded: the frontier is full and growth is disabled.
func (f *Frontier[K]) Push(key K, distance, edgeDistance int64) error {
	if _, ok := f.pos[key]; ok {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
	}
	if len(f.h) == cap(f.h) {
		if !f.growable {
			return fmt.Errorf("%w: cap=%d", ErrCapacityExceeded, cap(f.h))
		}
		f.grow()
	}

	f.nextSeq++
	it := &Item[K]{Key: key, Distance: distance, EdgeDistance: edgeDistance, seq: f.nextSeq}
	heap.Push(&f.h, it)
	f.pos[key] = it

	return nil
}

// grow doubles the backing array so append inside heap.Push never reallocates.
func (f *Frontier[K]) grow() {
	next := make(itemHeap[K], len(f.h), 2*cap(f.h))
	copy(next, f.h)
	f.h = next
}

// Update changes the priority of a queued key and restores heap order.
// It reports false when key is not queued.
func (f *Frontier[K]) Update(key K, distance, edgeDistance int64) bool {
	it, ok := f.pos[key]
	if !ok {
		return false
	}
	it.Distance = distance
	it.EdgeDistance = edgeDistance
	heap.Fix(&f.h, it.index)

	return true
}

// Pop removes and returns the item with the smallest distance.
// The boolean is false when the frontier is empty.
func (f *Frontier[K]) Pop() (Item[K], bool) {
	if len(f.h) == 0 {
		return Item[K]{}, false
	}
	it := heap.Pop(&f.h).(*Item[K])
	delete(f.pos, it.Key)

	return *it, true
}

// Peek returns the item Pop would return, without removing it.
func (f *Frontier[K]) Peek() (Item[K], bool) {
	if len(f.h) == 0 {
		return Item[K]{}, false
	}

	return *f.h[0], true
}

// itemHeap implements heap.Interface over queued items.
type itemHeap[K comparable] []*Item[K]

func (h itemHeap[K]) Len() int { return len(h) }

func (h itemHeap[K]) Less(i, j int) bool { return before(h[i], h[j]) }

func (h itemHeap[K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *itemHeap[K]) Push(x any) {
	it := x.(*Item[K])
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *itemHeap[K]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]

	return it
}

// before is the frontier order: smaller distance first, then earlier insertion.
func before[K comparable](a, b *Item[K]) bool {
	if a.Distance != b.Distance {
		return a.Distance < b.Distance
	}

	return a.seq < b.seq
}
