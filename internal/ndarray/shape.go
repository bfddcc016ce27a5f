package ndarray

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Shape represents the dimensions of an array.
type Shape []int

// NumElements returns the total number of elements.
// A rank-0 shape describes a scalar and has one element.
// The product is only meaningful for shapes that pass Validate.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s)
}

// Validate checks that no dimension is negative and that the element count
// fits in an int. Zero-sized dimensions are allowed and produce an empty
// array, whatever the other extents are.
func (s Shape) Validate() error {
	zero := false
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be >= 0)", ErrInvalidShape, i, dim)
		}
		if dim == 0 {
			zero = true
		}
	}
	if zero {
		return nil
	}

	n := 1
	for _, dim := range s {
		if n > math.MaxInt/dim {
			return fmt.Errorf("%w: element count of %v overflows int", ErrInvalidShape, s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes have the same rank and extents.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape:
// stride[r-1] = 1 and stride[i] = stride[i+1] * shape[i+1].
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// String formats the shape as a tuple: (2, 3), (5,) or ().
func (s Shape) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, dim := range s {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(dim))
	}
	if len(s) == 1 {
		sb.WriteByte(',')
	}
	sb.WriteByte(')')
	return sb.String()
}
