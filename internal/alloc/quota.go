package alloc

import "fmt"

// Quota wraps an inner allocator with an element budget. Requests that
// would push the number of live elements past the budget fail with
// ErrOutOfMemory; frees refund the budget.
//
// Quota is how callers bound the memory a tensor-producing computation may
// claim, and how tests exercise allocation-failure paths deterministically.
type Quota[T any] struct {
	inner Allocator[T]
	limit int
	live  int
}

// NewQuota returns an allocator that delegates to inner but refuses to
// exceed limit live elements in total.
func NewQuota[T any](inner Allocator[T], limit int) *Quota[T] {
	return &Quota[T]{inner: inner, limit: limit}
}

// Allocate requests n elements from the inner allocator if the budget
// allows it.
func (q *Quota[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("allocate %d elements: negative size", n)
	}
	if q.live+n > q.limit {
		return nil, fmt.Errorf("allocate %d elements (live %d, limit %d): %w", n, q.live, q.limit, ErrOutOfMemory)
	}
	buf, err := q.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	q.live += n
	return buf, nil
}

// Free returns the buffer to the inner allocator and refunds its elements.
func (q *Quota[T]) Free(buf []T) {
	q.live -= len(buf)
	q.inner.Free(buf)
}

// Live reports the number of elements currently allocated.
func (q *Quota[T]) Live() int {
	return q.live
}
