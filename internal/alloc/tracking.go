package alloc

// Tracking wraps an inner allocator and counts what passes through it.
// Leak checks compare Allocs against Frees after the code under test has
// released everything it owns.
type Tracking[T any] struct {
	inner Allocator[T]

	allocs int
	frees  int
	live   int
}

// NewTracking returns a counting wrapper around inner.
func NewTracking[T any](inner Allocator[T]) *Tracking[T] {
	return &Tracking[T]{inner: inner}
}

// Allocate delegates to the inner allocator, counting successful requests.
func (t *Tracking[T]) Allocate(n int) ([]T, error) {
	buf, err := t.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	t.allocs++
	t.live += n
	return buf, nil
}

// Free delegates to the inner allocator and records the return.
func (t *Tracking[T]) Free(buf []T) {
	t.frees++
	t.live -= len(buf)
	t.inner.Free(buf)
}

// Allocs reports the number of successful allocations.
func (t *Tracking[T]) Allocs() int { return t.allocs }

// Frees reports the number of frees.
func (t *Tracking[T]) Frees() int { return t.frees }

// Live reports the number of elements allocated but not yet freed.
func (t *Tracking[T]) Live() int { return t.live }
