package frontier

import "errors"

// ErrEmpty is returned when an item is requested from an empty container.
var ErrEmpty = errors.New("frontier: container is empty")

// node is one link of the chains behind Stack and Queue.
// A node is owned by exactly one container and dropped once popped.
type node[T any] struct {
	item T
	next *node[T]
}

// Entry is a (key, value) pair stored in a MinHeap.
type Entry[K any, V any] struct {
	Key   K
	Value V
}
