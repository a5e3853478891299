// Package alloc provides the memory allocation capability consumed by the
// tensor package. Tensors never call make directly: every element buffer is
// obtained from, and returned to, an Allocator chosen by the caller.
package alloc

import (
	"errors"
	"fmt"
)

// ErrOutOfMemory is returned when an allocator cannot satisfy a request.
var ErrOutOfMemory = errors.New("allocator out of memory")

// Allocator hands out and reclaims contiguous element buffers.
//
// Allocate returns a slice of exactly n elements, or an error wrapping
// ErrOutOfMemory. The contents of the returned buffer are unspecified;
// allocators are free to recycle memory. Free returns a buffer previously
// obtained from Allocate on the same allocator. Passing a buffer to Free
// more than once, or to a different allocator, is a caller bug.
//
// Allocators must never panic on exhaustion; failure is an error return.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Free(buf []T)
}

// Heap is the default allocator, backed by the Go heap.
// Free drops the reference and leaves reclamation to the garbage collector.
type Heap[T any] struct{}

// NewHeap returns a heap-backed allocator.
func NewHeap[T any]() *Heap[T] {
	return &Heap[T]{}
}

// Allocate returns a zeroed slice of n elements.
func (h *Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("allocate %d elements: negative size", n)
	}
	return make([]T, n), nil
}

// Free releases the buffer. For the heap allocator this is a no-op; the
// garbage collector reclaims the memory once the last reference is gone.
func (h *Heap[T]) Free(buf []T) {}
