package tensor

import (
	"github.com/dense-ml/dense/internal/alloc"
	"github.com/dense-ml/dense/internal/tensor"
)

// Type aliases for the public API

// DType is a constraint for tensor element types.
type DType = tensor.DType

// DataType represents the runtime data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
	Uint8   DataType = tensor.Uint8
	Uint16  DataType = tensor.Uint16
	Float16 DataType = tensor.Float16
	Bool    DataType = tensor.Bool
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Index is a per-dimension coordinate identifying one element.
type Index = tensor.Index

// IndexIterator enumerates the coordinates of a shape in row-major order.
type IndexIterator = tensor.IndexIterator

// Tensor is a dense multidimensional array of elements of type T with an
// allocator-owned contiguous buffer.
type Tensor[T DType] = tensor.Tensor[T]

// Errors

// ErrIndexOutOfBounds reports a coordinate or offset outside the shape.
var ErrIndexOutOfBounds = tensor.ErrIndexOutOfBounds

// ErrTensorReleased reports access to a tensor after Release.
var ErrTensorReleased = tensor.ErrTensorReleased

// IndexError carries the axis and bound of a failed index check.
type IndexError = tensor.IndexError

// Creation functions

// FromFunc builds a tensor by evaluating fn at every coordinate in
// row-major order. See the package documentation for the failure contract.
func FromFunc[T DType](shape Shape, a alloc.Allocator[T], fn func(Index) (T, error)) (*Tensor[T], error) {
	return tensor.FromFunc(shape, a, fn)
}

// Zeros creates a tensor filled with the zero value of T.
func Zeros[T DType](shape Shape, a alloc.Allocator[T]) (*Tensor[T], error) {
	return tensor.Zeros[T](shape, a)
}

// Ones creates a tensor filled with ones (true for bool).
func Ones[T DType](shape Shape, a alloc.Allocator[T]) (*Tensor[T], error) {
	return tensor.Ones[T](shape, a)
}

// Full creates a tensor filled with a specific value.
func Full[T DType](shape Shape, value T, a alloc.Allocator[T]) (*Tensor[T], error) {
	return tensor.Full(shape, value, a)
}

// FromSlice creates a tensor by copying a Go slice.
func FromSlice[T DType](data []T, shape Shape, a alloc.Allocator[T]) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape, a)
}

// Eye creates an n-by-n identity matrix.
func Eye[T DType](n int, a alloc.Allocator[T]) (*Tensor[T], error) {
	return tensor.Eye[T](n, a)
}

// Arange creates a 1-D tensor holding 0, 1, ..., n-1.
func Arange[T DType](n int, a alloc.Allocator[T]) (*Tensor[T], error) {
	return tensor.Arange[T](n, a)
}
