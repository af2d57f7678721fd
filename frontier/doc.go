// Package frontier provides the container primitives used as traversal
// frontiers by the probability and floodfill packages:
//
//   - Stack[T]        – LIFO over a singly-linked chain of nodes.
//   - Queue[T]        – FIFO over a singly-linked chain with front/rear links.
//   - MinHeap[K, V]   – array-backed binary min-heap of (key, value) entries.
//
// All three are generic, allocation-light, and usable as zero values.
// None of them is safe for concurrent use; callers serialize access.
//
// Complexity:
//
//   - Stack.Push / Stack.Pop / Stack.Peek:          O(1)
//   - Queue.Enqueue / Queue.Dequeue / Queue.Peek:   O(1)
//   - MinHeap.Insert / MinHeap.ExtractMin:          O(log m), m = heap size
//   - MinHeap.Peek:                                 O(1)
//
// Errors:
//
//   - ErrEmpty – Pop, Dequeue, Peek or ExtractMin on an empty container.
//     Check IsEmpty first to avoid it.
//
// MinHeap tolerates duplicate keys and duplicate values. This is what makes
// the lazy-deletion pattern work: a caller may insert a fresher entry for a
// value that is already present and discard the stale one when it is
// extracted later. No ordering is promised among equal keys.
package frontier
