package ndarray

import (
	"fmt"
	"unsafe"
)

// maxAllocBytes caps buffer sizes below the runtime's address-space limit,
// above which make panics instead of returning.
const maxAllocBytes = 1 << 47

// NDArray is a fixed-shape N-dimensional array of numeric elements.
//
// Elements live in a single contiguous buffer in row-major order (the last
// dimension varies fastest). Every NDArray exclusively owns its buffer:
// constructors copy caller data in, accessors copy data out, and Clone
// duplicates storage.
//
// Example:
//
//	x, _ := ndarray.New[int](Shape{2, 3}, 5)
//	_ = x.Set(42, 1, 2)
//	v, _ := x.At(1, 2) // 42
type NDArray[T Numeric] struct {
	shape   Shape
	strides []int
	data    []T
}

// New creates an array of the given shape with every element set to fill.
// Returns ErrInvalidShape if any dimension is negative or the element count
// is too large to allocate.
func New[T Numeric](shape Shape, fill T) (*NDArray[T], error) {
	a, err := alloc[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range a.data {
		a.data[i] = fill
	}
	return a, nil
}

// checkAlloc validates the shape and that a buffer of its size can be
// allocated, returning the element count.
func checkAlloc[T Numeric](shape Shape) (int, error) {
	if err := shape.Validate(); err != nil {
		return 0, err
	}
	var zero T
	n := shape.NumElements()
	if uint64(n) > uint64(maxAllocBytes)/uint64(unsafe.Sizeof(zero)) {
		return 0, fmt.Errorf("%w: %v needs %d elements of %d bytes, above the allocation limit",
			ErrInvalidShape, shape, n, unsafe.Sizeof(zero))
	}
	return n, nil
}

// alloc validates the shape and returns a zero-filled array.
func alloc[T Numeric](shape Shape) (*NDArray[T], error) {
	n, err := checkAlloc[T](shape)
	if err != nil {
		return nil, err
	}
	return &NDArray[T]{
		shape:   shape.Clone(),
		strides: shape.ComputeStrides(),
		data:    make([]T, n),
	}, nil
}

// like returns a zero-filled array with the same shape as a.
// a's shape has already been validated.
func like[T Numeric](a *NDArray[T]) *NDArray[T] {
	return &NDArray[T]{
		shape:   a.shape.Clone(),
		strides: append([]int(nil), a.strides...),
		data:    make([]T, len(a.data)),
	}
}

// Must unwraps the result of a constructor, panicking on error.
//
// Example:
//
//	x := ndarray.Must(ndarray.New[float64](Shape{5}, 1.5))
func Must[T Numeric](a *NDArray[T], err error) *NDArray[T] {
	if err != nil {
		panic(err)
	}
	return a
}

// Shape returns a copy of the array's shape.
func (a *NDArray[T]) Shape() Shape {
	return a.shape.Clone()
}

// Strides returns a copy of the row-major strides, in elements.
func (a *NDArray[T]) Strides() []int {
	return append([]int(nil), a.strides...)
}

// Rank returns the number of dimensions.
func (a *NDArray[T]) Rank() int {
	return len(a.shape)
}

// Size returns the total number of elements.
func (a *NDArray[T]) Size() int {
	return len(a.data)
}

// DType returns the runtime element type.
func (a *NDArray[T]) DType() DataType {
	return inferDataType[T]()
}

// Data returns a copy of the elements in row-major order.
func (a *NDArray[T]) Data() []T {
	return append([]T(nil), a.data...)
}

// offset converts coordinates into a flat buffer offset.
func (a *NDArray[T]) offset(indices []int) (int, error) {
	if len(indices) != len(a.shape) {
		return 0, fmt.Errorf("%w: expected %d indices for shape %v, got %d",
			ErrOutOfBounds, len(a.shape), a.shape, len(indices))
	}

	off := 0
	for i, idx := range indices {
		if idx < 0 || idx >= a.shape[i] {
			return 0, fmt.Errorf("%w: index %d out of range for dimension %d (size %d)",
				ErrOutOfBounds, idx, i, a.shape[i])
		}
		off += idx * a.strides[i]
	}
	return off, nil
}

// At returns the element at the given coordinates.
// A rank-0 array is read with no indices.
func (a *NDArray[T]) At(indices ...int) (T, error) {
	off, err := a.offset(indices)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.data[off], nil
}

// MustAt is like At but panics if the coordinates are invalid.
func (a *NDArray[T]) MustAt(indices ...int) T {
	v, err := a.At(indices...)
	if err != nil {
		panic(err)
	}
	return v
}

// Set assigns value to the element at the given coordinates.
// On error the array is left unmodified.
func (a *NDArray[T]) Set(value T, indices ...int) error {
	off, err := a.offset(indices)
	if err != nil {
		return err
	}
	a.data[off] = value
	return nil
}

// Fill sets every element to value.
func (a *NDArray[T]) Fill(value T) {
	for i := range a.data {
		a.data[i] = value
	}
}

// Clone creates a deep copy of the array.
func (a *NDArray[T]) Clone() *NDArray[T] {
	c := like(a)
	copy(c.data, a.data)
	return c
}

// Reshape returns a copy of the array with a new shape holding the same
// elements in the same row-major order.
//
// Example:
//
//	x, _ := ndarray.Arange[int](0, 6, 1) // shape (6,)
//	y, _ := x.Reshape(Shape{2, 3})       // [[0, 1, 2], [3, 4, 5]]
func (a *NDArray[T]) Reshape(shape Shape) (*NDArray[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if n := shape.NumElements(); n != len(a.data) {
		return nil, fmt.Errorf("%w: cannot reshape %v (%d elements) to %v (%d elements)",
			ErrShapeMismatch, a.shape, len(a.data), shape, n)
	}
	out, err := alloc[T](shape)
	if err != nil {
		return nil, err
	}
	copy(out.data, a.data)
	return out, nil
}

// Flatten returns a rank-1 copy of the array.
func (a *NDArray[T]) Flatten() *NDArray[T] {
	out := &NDArray[T]{
		shape:   Shape{len(a.data)},
		strides: []int{1},
		data:    make([]T, len(a.data)),
	}
	copy(out.data, a.data)
	return out
}

// Equal reports whether b has the same shape and elements as a.
func (a *NDArray[T]) Equal(b *NDArray[T]) bool {
	if !a.shape.Equal(b.shape) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}
