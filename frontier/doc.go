// SPDX-License-Identifier: MIT

// Package frontier provides the priority frontier used by shortest-path
// search: a binary min-heap of (key, distance, edge distance) items with
// decrease-key and a stable tie-break.
//
// Ordering:
//
//	Items are ordered by Distance ascending. Equal distances pop in
//	insertion order (earliest Push first). Update keeps an item's
//	insertion order, so a relaxed entry does not jump ahead of peers it
//	ties with.
//
// Storage:
//
//	The backing array starts at the configured capacity (default 32) and
//	doubles when full. WithoutGrowth makes a full frontier reject Push with
//	ErrCapacityExceeded instead.
//
// Methods:
//
//	Push(key, distance, edgeDistance) error // O(log n) amortized
//	Update(key, distance, edgeDistance) bool // O(log n)
//	Pop() (Item[K], bool)                    // O(log n)
//	Peek() (Item[K], bool)                   // O(1)
//	Contains(key) bool                       // O(1)
//	Sorted() []Item[K]                       // O(n log n), non-destructive
//
// Sorted returns the items heap-sorted in descending order, so the item Pop
// would return next sits at the last index.
//
// A Frontier is not safe for concurrent use. The dijkstra package creates
// one per query and drops it afterwards.
package frontier
