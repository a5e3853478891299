// Package tensor provides a dense, fixed-shape multidimensional array with
// row-major index arithmetic and allocator-owned element storage.
package tensor

import "github.com/x448/float16"

// DType is a constraint for supported tensor element types.
// float16.Float16 satisfies ~uint16 and is treated as a distinct type at
// runtime by inferDataType.
type DType interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~bool
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
	Uint8
	Uint16
	Float16
	Bool
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	case Uint16, Float16:
		return 2
	case Uint8, Bool:
		return 1
	default:
		panic("unknown data type")
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Float16:
		return "float16"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// inferDataType infers DataType from a generic type T.
func inferDataType[T DType](dummy T) DataType {
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return Uint8
	case float16.Float16:
		return Float16
	case uint16:
		return Uint16
	case bool:
		return Bool
	default:
		panic("unsupported type")
	}
}

// oneValue returns the multiplicative identity (true for bool) of T.
func oneValue[T DType]() T {
	var dummy T
	var one any
	switch any(dummy).(type) {
	case float32:
		one = float32(1)
	case float64:
		one = float64(1)
	case int32:
		one = int32(1)
	case int64:
		one = int64(1)
	case uint8:
		one = uint8(1)
	case float16.Float16:
		one = float16.Fromfloat32(1)
	case uint16:
		one = uint16(1)
	case bool:
		one = true
	default:
		panic("unsupported type")
	}
	return one.(T)
}
