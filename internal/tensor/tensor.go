package tensor

import (
	"fmt"

	"github.com/dense-ml/dense/internal/alloc"
)

// Tensor is a dense multidimensional array of elements of type T.
//
// The shape is fixed at construction and the element buffer always holds
// exactly shape.NumElements() elements, laid out contiguously in row-major
// order. The buffer is owned exclusively by the tensor: it is obtained from
// the allocator passed to the constructor and returned to it by Release.
//
// A Tensor is not safe for concurrent mutation. Concurrent reads are fine
// as long as no Set or Release is in flight.
type Tensor[T DType] struct {
	shape    Shape
	stride   []int
	data     []T
	alloc    alloc.Allocator[T]
	released bool
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape.Clone()
}

// Rank returns the number of dimensions.
func (t *Tensor[T]) Rank() int {
	return t.shape.Rank()
}

// NumElements returns the total number of elements.
func (t *Tensor[T]) NumElements() int {
	return t.shape.NumElements()
}

// Strides returns the tensor's row-major element strides.
func (t *Tensor[T]) Strides() []int {
	return append([]int(nil), t.stride...)
}

// DType returns the tensor's runtime data type.
func (t *Tensor[T]) DType() DataType {
	var dummy T
	return inferDataType(dummy)
}

// Indexes returns an iterator over every valid coordinate of the tensor.
func (t *Tensor[T]) Indexes() *IndexIterator {
	return t.shape.Indexes()
}

// Data returns the tensor's element buffer in row-major order.
// The slice aliases the tensor's memory: writes through it are visible to
// Get and At. Returns nil after Release.
func (t *Tensor[T]) Data() []T {
	if t.released {
		return nil
	}
	return t.data
}

// Get returns the element at the given coordinate.
// Fails with ErrIndexOutOfBounds when any index is outside its dimension
// or the number of indices does not match the rank, and with
// ErrTensorReleased after Release.
func (t *Tensor[T]) Get(indices ...int) (T, error) {
	var zero T
	if t.released {
		return zero, ErrTensorReleased
	}
	offset, err := t.shape.OffsetOf(indices)
	if err != nil {
		return zero, err
	}
	return t.data[offset], nil
}

// Set stores value at the given coordinate. It fails under the same
// conditions as Get and performs no mutation on failure.
func (t *Tensor[T]) Set(value T, indices ...int) error {
	if t.released {
		return ErrTensorReleased
	}
	offset, err := t.shape.OffsetOf(indices)
	if err != nil {
		return err
	}
	t.data[offset] = value
	return nil
}

// At returns the element at the given coordinate.
// It is the panicking convenience form of Get.
//
// Example:
//
//	t, _ := tensor.Zeros[float32](tensor.Shape{3, 4}, a)
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor[T]) At(indices ...int) T {
	v, err := t.Get(indices...)
	if err != nil {
		panic(err)
	}
	return v
}

// Item returns the scalar value of a 0-D tensor.
// Panics if the tensor is not a scalar.
func (t *Tensor[T]) Item() T {
	if t.Rank() != 0 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.shape))
	}
	return t.At()
}

// Release returns the element buffer to the allocator and invalidates the
// tensor. Further Get/Set calls fail with ErrTensorReleased. Calling
// Release again is a no-op, so the buffer is freed at most once.
func (t *Tensor[T]) Release() {
	if t.released {
		return
	}
	t.alloc.Free(t.data)
	t.data = nil
	t.released = true
}

// Released reports whether the tensor has been released.
func (t *Tensor[T]) Released() bool {
	return t.released
}

// Clone creates a deep copy of the tensor, allocating the new buffer from
// the same allocator.
func (t *Tensor[T]) Clone() (*Tensor[T], error) {
	if t.released {
		return nil, ErrTensorReleased
	}
	data, err := t.alloc.Allocate(len(t.data))
	if err != nil {
		return nil, fmt.Errorf("clone: %w", err)
	}
	copy(data, t.data)
	return &Tensor[T]{
		shape:  t.shape.Clone(),
		stride: append([]int(nil), t.stride...),
		data:   data,
		alloc:  t.alloc,
	}, nil
}

// String returns a human-readable representation of the tensor.
func (t *Tensor[T]) String() string {
	if t.released {
		return fmt.Sprintf("Tensor[%s]%v (released)", t.DType(), t.shape)
	}
	return fmt.Sprintf("Tensor[%s]%v", t.DType(), t.shape)
}
