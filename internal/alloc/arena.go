package alloc

import "fmt"

// defaultChunkElements is the chunk size used when NewArena is given 0.
const defaultChunkElements = 64 * 1024

// Arena is a chunked bump allocator. Buffers are carved sequentially out of
// large chunks; individual Free calls are no-ops and memory is reclaimed in
// bulk by Reset or Release. This suits workloads that build many short-lived
// tensors and drop them together.
//
// Buffers handed out before a Reset or Release must not be used afterwards.
// Arena is not safe for concurrent use.
type Arena[T any] struct {
	chunkSize int
	chunks    [][]T
	current   []T
	offset    int
	released  bool
}

// NewArena returns an arena that grows in chunks of chunkElements elements.
// A chunkElements of 0 selects the default chunk size.
func NewArena[T any](chunkElements int) *Arena[T] {
	if chunkElements <= 0 {
		chunkElements = defaultChunkElements
	}
	return &Arena[T]{chunkSize: chunkElements}
}

// Allocate carves n elements off the current chunk, growing the arena when
// the chunk is exhausted. Requests larger than the chunk size get a
// dedicated chunk. The returned buffer may contain recycled values.
func (a *Arena[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("allocate %d elements: negative size", n)
	}
	if a.released {
		return nil, fmt.Errorf("allocate %d elements: arena released: %w", n, ErrOutOfMemory)
	}
	if n == 0 {
		return []T{}, nil
	}
	if n > a.chunkSize {
		chunk := make([]T, n)
		a.chunks = append(a.chunks, chunk)
		return chunk, nil
	}
	if a.current == nil || a.offset+n > len(a.current) {
		a.current = make([]T, a.chunkSize)
		a.chunks = append(a.chunks, a.current)
		a.offset = 0
	}
	buf := a.current[a.offset : a.offset+n : a.offset+n]
	a.offset += n
	return buf, nil
}

// Free is a no-op; arena memory is reclaimed by Reset or Release.
func (a *Arena[T]) Free(buf []T) {}

// Reset makes the arena's memory available for reuse without returning it
// to the runtime. Buffers allocated before the reset are invalidated.
func (a *Arena[T]) Reset() {
	if len(a.chunks) > 0 {
		a.current = a.chunks[0]
		a.chunks = a.chunks[:1]
	}
	a.offset = 0
}

// Release drops all chunks. The arena cannot be used again.
func (a *Arena[T]) Release() {
	a.chunks = nil
	a.current = nil
	a.offset = 0
	a.released = true
}
