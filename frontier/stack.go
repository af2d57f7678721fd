package frontier

// Stack is a LIFO container backed by a singly-linked list.
//
// Invariant: size == 0 ⇔ top == nil.
// The zero value is an empty stack ready for use.
type Stack[T any] struct {
	top  *node[T]
	size int
}

// NewStack returns an empty stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places item on top of the stack. O(1).
func (s *Stack[T]) Push(item T) {
	s.top = &node[T]{item: item, next: s.top}
	s.size++
}

// Pop removes and returns the most recently pushed item.
// Returns ErrEmpty when the stack holds nothing. O(1).
func (s *Stack[T]) Pop() (T, error) {
	if s.top == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := s.top
	s.top = n.next
	n.next = nil // detach so the popped node does not pin the chain
	s.size--

	return n.item, nil
}

// Peek returns the most recently pushed item without removing it.
// Returns ErrEmpty when the stack holds nothing. O(1).
func (s *Stack[T]) Peek() (T, error) {
	if s.top == nil {
		var zero T
		return zero, ErrEmpty
	}

	return s.top.item, nil
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool { return s.size == 0 }

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int { return s.size }
