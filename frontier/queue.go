package frontier

// Queue is a FIFO container backed by a singly-linked list with
// separate front and rear links.
//
// Invariant: front == nil ⇔ rear == nil ⇔ size == 0.
// The zero value is an empty queue ready for use.
type Queue[T any] struct {
	front *node[T]
	rear  *node[T]
	size  int
}

// NewQueue returns an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends item at the rear of the queue. O(1).
func (q *Queue[T]) Enqueue(item T) {
	n := &node[T]{item: item}
	if q.rear == nil {
		q.front = n
	} else {
		q.rear.next = n
	}
	q.rear = n
	q.size++
}

// Dequeue removes and returns the oldest item.
// Dequeuing the last item clears both ends, so the queue is back in its
// zero state. Returns ErrEmpty when the queue holds nothing. O(1).
func (q *Queue[T]) Dequeue() (T, error) {
	if q.front == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := q.front
	q.front = n.next
	if q.front == nil {
		q.rear = nil
	}
	n.next = nil
	q.size--

	return n.item, nil
}

// Peek returns the oldest item without removing it.
// Returns ErrEmpty when the queue holds nothing. O(1).
func (q *Queue[T]) Peek() (T, error) {
	if q.front == nil {
		var zero T
		return zero, ErrEmpty
	}

	return q.front.item, nil
}

// IsEmpty reports whether the queue holds no items.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// Len returns the number of items in the queue.
func (q *Queue[T]) Len() int { return q.size }
