// Package tensor provides a dense, fixed-shape multidimensional array.
//
// # Overview
//
// A Tensor[T] couples an immutable Shape with a contiguous element buffer
// laid out in row-major order (the last dimension varies fastest). The
// package is a storage and indexing primitive, not a compute engine: it
// offers coordinate/offset conversion, bounds-checked element access,
// coordinate iteration, and explicit buffer lifetime management. There is
// no arithmetic, broadcasting, or shape transformation here.
//
// # Basic Usage
//
//	import (
//	    "github.com/dense-ml/dense/alloc"
//	    "github.com/dense-ml/dense/tensor"
//	)
//
//	func main() {
//	    a := alloc.NewHeap[float32]()
//
//	    t, err := tensor.FromFunc(tensor.Shape{3, 3}, a, func(idx tensor.Index) (float32, error) {
//	        if idx[0] == idx[1] {
//	            return 1, nil
//	        }
//	        return 0, nil
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer t.Release()
//
//	    v, _ := t.Get(1, 1) // 1
//	}
//
// # Memory Management
//
// Every tensor's buffer comes from an alloc.Allocator supplied at
// construction and is returned to it by Release. Construction either fully
// populates the buffer and succeeds, or frees it and fails; a failed
// construction never leaks. After Release all access fails with
// ErrTensorReleased, and a second Release is a no-op.
//
// # Indexing
//
// Shape.OffsetOf and Shape.IndexOf convert between coordinates and linear
// offsets and are exact inverses over the valid domain. Out-of-range
// coordinates and offsets fail with ErrIndexOutOfBounds. Shape.Indexes
// returns a restartable iterator over all coordinates in ascending offset
// order; Shape.All is the same sequence in range-over-func form.
//
// # Supported Element Types
//
// The DType constraint admits float32, float64, int32, int64, uint8,
// uint16, bool, and float16.Float16 (github.com/x448/float16) for
// half-precision storage.
package tensor
