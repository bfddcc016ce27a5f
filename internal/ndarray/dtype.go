// Package ndarray implements a fixed-shape, homogeneously typed N-dimensional
// numeric array stored as a contiguous row-major buffer.
package ndarray

import "golang.org/x/exp/constraints"

// Numeric is the constraint for array element types.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Float is the constraint for operations that only make sense on
// floating-point elements (random draws, Sqrt, Exp, Linspace).
type Float interface {
	constraints.Float
}

// DataType is the runtime description of an array's element type.
type DataType int

// Supported element types.
const (
	Float32 DataType = iota
	Float64
	Int8
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Unknown
)

// Size returns the byte size of one element.
func (dt DataType) Size() int {
	switch dt {
	case Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Float32, Int32, Uint32:
		return 4
	case Float64, Int64, Uint64, Int, Uint:
		return 8
	default:
		return 0
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Int:
		return "int"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Uint:
		return "uint"
	default:
		return "unknown"
	}
}

// IsFloat reports whether the data type is a floating-point type.
func (dt DataType) IsFloat() bool {
	return dt == Float32 || dt == Float64
}

// inferDataType infers DataType from a generic type T.
// Named types (~float64 etc.) report Unknown.
func inferDataType[T Numeric]() DataType {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return Float32
	case float64:
		return Float64
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case int:
		return Int
	case uint8:
		return Uint8
	case uint16:
		return Uint16
	case uint32:
		return Uint32
	case uint64:
		return Uint64
	case uint:
		return Uint
	default:
		return Unknown
	}
}
