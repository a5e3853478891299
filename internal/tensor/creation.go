package tensor

import (
	"fmt"

	"github.com/x448/float16"

	"github.com/dense-ml/dense/internal/alloc"
)

// FromFunc builds a tensor by evaluating fn at every coordinate of the
// shape in row-major order (ascending linear offset). Each of the
// NumElements slots is written exactly once.
//
// If fn fails for any coordinate the partially filled buffer is returned
// to the allocator before the error is surfaced, so a failed construction
// leaks nothing and yields no tensor. Allocation failures propagate from
// the allocator unchanged (wrapped for context).
func FromFunc[T DType](shape Shape, a alloc.Allocator[T], fn func(Index) (T, error)) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	n := shape.NumElements()
	data, err := a.Allocate(n)
	if err != nil {
		return nil, fmt.Errorf("allocate %d elements for shape %v: %w", n, shape, err)
	}

	it := shape.Indexes()
	for idx, ok := it.Next(); ok; idx, ok = it.Next() {
		v, err := fn(idx)
		if err != nil {
			a.Free(data)
			return nil, fmt.Errorf("element function at %v: %w", idx, err)
		}
		data[it.Cursor()-1] = v
	}

	return &Tensor[T]{
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		data:   data,
		alloc:  a,
	}, nil
}

// Zeros creates a tensor filled with the zero value of T.
// It fails only on an invalid shape or allocation failure.
//
// Example:
//
//	a := alloc.NewHeap[float32]()
//	t, err := tensor.Zeros[float32](tensor.Shape{3, 4}, a)
func Zeros[T DType](shape Shape, a alloc.Allocator[T]) (*Tensor[T], error) {
	// Written explicitly: allocators may hand back recycled memory.
	var zero T
	return FromFunc(shape, a, func(Index) (T, error) { return zero, nil })
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T, a alloc.Allocator[T]) (*Tensor[T], error) {
	return FromFunc(shape, a, func(Index) (T, error) { return value, nil })
}

// Ones creates a tensor filled with ones (true for bool).
func Ones[T DType](shape Shape, a alloc.Allocator[T]) (*Tensor[T], error) {
	return Full(shape, oneValue[T](), a)
}

// FromSlice creates a tensor from a Go slice, copying it into a buffer
// obtained from the allocator. The slice length must match the shape's
// element count exactly.
func FromSlice[T DType](data []T, shape Shape, a alloc.Allocator[T]) (*Tensor[T], error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}
	t, err := Zeros[T](shape, a)
	if err != nil {
		return nil, err
	}
	copy(t.data, data)
	return t, nil
}

// Eye creates an n-by-n identity matrix.
func Eye[T DType](n int, a alloc.Allocator[T]) (*Tensor[T], error) {
	one := oneValue[T]()
	var zero T
	return FromFunc(Shape{n, n}, a, func(idx Index) (T, error) {
		if idx[0] == idx[1] {
			return one, nil
		}
		return zero, nil
	})
}

// Arange creates a 1-D tensor holding 0, 1, ..., n-1.
// Bool is not supported.
//
//nolint:gocyclo,cyclop // Type-specific logic for each supported numeric type
func Arange[T DType](n int, a alloc.Allocator[T]) (*Tensor[T], error) {
	t, err := Zeros[T](Shape{n}, a)
	if err != nil {
		return nil, err
	}

	switch data := any(t.data).(type) {
	case []float32:
		for i := range data {
			data[i] = float32(i)
		}
	case []float64:
		for i := range data {
			data[i] = float64(i)
		}
	case []int32:
		for i := range data {
			data[i] = int32(i)
		}
	case []int64:
		for i := range data {
			data[i] = int64(i)
		}
	case []uint8:
		for i := range data {
			data[i] = uint8(i)
		}
	case []float16.Float16:
		for i := range data {
			data[i] = float16.Fromfloat32(float32(i))
		}
	case []uint16:
		for i := range data {
			data[i] = uint16(i)
		}
	default:
		t.Release()
		return nil, fmt.Errorf("arange not supported for %s", t.DType())
	}
	return t, nil
}
