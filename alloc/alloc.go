// Package alloc provides the public API for the allocation capability used
// by tensors. An Allocator hands out and reclaims the contiguous element
// buffers that tensors own; callers pick an implementation (or bring their
// own) and pass it to the tensor constructors.
package alloc

import "github.com/dense-ml/dense/internal/alloc"

// Allocator hands out and reclaims contiguous element buffers.
// Implementations must return errors, never panic, on exhaustion.
type Allocator[T any] = alloc.Allocator[T]

// Heap is the default allocator, backed by the Go heap.
type Heap[T any] = alloc.Heap[T]

// Quota wraps an inner allocator with an element budget.
type Quota[T any] = alloc.Quota[T]

// Tracking wraps an inner allocator and counts allocations and frees.
type Tracking[T any] = alloc.Tracking[T]

// Arena is a chunked bump allocator with bulk reclamation.
type Arena[T any] = alloc.Arena[T]

// ErrOutOfMemory is returned when an allocator cannot satisfy a request.
var ErrOutOfMemory = alloc.ErrOutOfMemory

// NewHeap returns a heap-backed allocator.
func NewHeap[T any]() *Heap[T] {
	return alloc.NewHeap[T]()
}

// NewQuota returns an allocator that delegates to inner but refuses to
// exceed limit live elements in total.
func NewQuota[T any](inner Allocator[T], limit int) *Quota[T] {
	return alloc.NewQuota(inner, limit)
}

// NewTracking returns a counting wrapper around inner.
func NewTracking[T any](inner Allocator[T]) *Tracking[T] {
	return alloc.NewTracking(inner)
}

// NewArena returns an arena that grows in chunks of chunkElements elements.
// A chunkElements of 0 selects the default chunk size.
func NewArena[T any](chunkElements int) *Arena[T] {
	return alloc.NewArena[T](chunkElements)
}
