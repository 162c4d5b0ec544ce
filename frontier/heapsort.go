// SPDX-License-Identifier: MIT
//
// File: heapsort.go
// Role: Sorted(), an in-place heap sort over a snapshot of the queue.

package frontier

// Sorted returns every queued item in descending priority order: the item
// Pop would return next is last. The frontier itself is not modified.
//
// Implementation:
//   - Stage 1: Copy the items.
//   - Stage 2: Heapify the copy so that the root is the next item to pop.
//   - Stage 3: Repeatedly swap the root with the last unsorted slot and
//     sift the shrinking prefix down.
//
// Complexity: O(n log n) time, O(n) space.
func (f *Frontier[K]) Sorted() []Item[K] {
	out := make([]Item[K], len(f.h))
	for i, it := range f.h {
		out[i] = *it
	}

	n := len(out)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(out, i, n)
	}
	for end := n - 1; end > 0; end-- {
		out[0], out[end] = out[end], out[0]
		siftDown(out, 0, end)
	}

	return out
}

// siftDown restores heap order for out[:n] below root.
func siftDown[K comparable](out []Item[K], root, n int) {
	for {
		top := root
		l, r := 2*root+1, 2*root+2
		if l < n && before(&out[l], &out[top]) {
			top = l
		}
		if r < n && before(&out[r], &out[top]) {
			top = r
		}
		if top == root {
			return
		}
		out[root], out[top] = out[top], out[root]
		root = top
	}
}
