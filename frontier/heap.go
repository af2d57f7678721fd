package frontier

import "golang.org/x/exp/constraints"

// MinHeap is a binary min-heap of (key, value) entries stored in a slice.
//
// Heap order: items[parent(i)].Key <= items[i].Key for every i > 0.
// Duplicate keys and duplicate values are allowed. The zero value is an
// empty heap ready for use.
//
// Float keys must not be NaN; NaN compares false both ways and would
// silently break heap order.
type MinHeap[K constraints.Ordered, V any] struct {
	items []Entry[K, V]
}

// NewMinHeap returns an empty heap with room for capacity entries
// before the backing slice has to grow.
func NewMinHeap[K constraints.Ordered, V any](capacity int) *MinHeap[K, V] {
	if capacity < 0 {
		capacity = 0
	}

	return &MinHeap[K, V]{items: make([]Entry[K, V], 0, capacity)}
}

// Insert adds (key, value) and restores heap order by sifting up.
// O(log m).
func (h *MinHeap[K, V]) Insert(key K, value V) {
	h.items = append(h.items, Entry[K, V]{Key: key, Value: value})
	h.siftUp(len(h.items) - 1)
}

// ExtractMin removes and returns the entry with the smallest key.
// The last entry fills the vacated root and is sifted down.
// Returns ErrEmpty when the heap holds nothing. O(log m).
func (h *MinHeap[K, V]) ExtractMin() (Entry[K, V], error) {
	if len(h.items) == 0 {
		return Entry[K, V]{}, ErrEmpty
	}
	root := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items[last] = Entry[K, V]{} // release references held by V
	h.items = h.items[:last]
	if last > 0 {
		h.siftDown(0)
	}

	return root, nil
}

// Peek returns the entry with the smallest key without removing it.
// Returns ErrEmpty when the heap holds nothing. O(1).
func (h *MinHeap[K, V]) Peek() (Entry[K, V], error) {
	if len(h.items) == 0 {
		return Entry[K, V]{}, ErrEmpty
	}

	return h.items[0], nil
}

// IsEmpty reports whether the heap holds no entries.
func (h *MinHeap[K, V]) IsEmpty() bool { return len(h.items) == 0 }

// Len returns the number of entries in the heap, stale ones included.
func (h *MinHeap[K, V]) Len() int { return len(h.items) }

func (h *MinHeap[K, V]) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if h.items[p].Key <= h.items[i].Key {
			return
		}
		h.items[p], h.items[i] = h.items[i], h.items[p]
		i = p
	}
}

func (h *MinHeap[K, V]) siftDown(i int) {
	n := len(h.items)
	for {
		smallest := i
		l, r := 2*i+1, 2*i+2
		if l < n && h.items[l].Key < h.items[smallest].Key {
			smallest = l
		}
		if r < n && h.items[r].Key < h.items[smallest].Key {
			smallest = r
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
