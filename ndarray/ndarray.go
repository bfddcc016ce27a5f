// Copyright 2025 NumBits Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"gonum.org/v1/gonum/mat"

	"github.com/numbits/numbits/internal/ndarray"
)

// Numeric is the constraint for array element types: every integer and
// floating-point type.
type Numeric = ndarray.Numeric

// Float is the constraint for floating-point element types.
type Float = ndarray.Float

// DataType is the runtime description of an array's element type.
type DataType = ndarray.DataType

// Data type constants.
const (
	Float32 DataType = ndarray.Float32
	Float64 DataType = ndarray.Float64
	Int8    DataType = ndarray.Int8
	Int16   DataType = ndarray.Int16
	Int32   DataType = ndarray.Int32
	Int64   DataType = ndarray.Int64
	Int     DataType = ndarray.Int
	Uint8   DataType = ndarray.Uint8
	Uint16  DataType = ndarray.Uint16
	Uint32  DataType = ndarray.Uint32
	Uint64  DataType = ndarray.Uint64
	Uint    DataType = ndarray.Uint
	Unknown DataType = ndarray.Unknown
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} is a rank-3 array with 24 elements.
type Shape = ndarray.Shape

// NDArray is a fixed-shape N-dimensional array stored in row-major order.
//
// Methods:
//   - Shape, Strides, Rank, Size, DType, Data: introspection (copies)
//   - At, MustAt, Set: coordinate access
//   - Fill, Clone, Reshape, Flatten, Equal
//   - String, Fprint, Print: textual dump
type NDArray[T Numeric] = ndarray.NDArray[T]

// Source is a seedable, concurrency-safe random generator.
type Source = ndarray.Source

// Errors.
var (
	ErrShapeMismatch       = ndarray.ErrShapeMismatch
	ErrOutOfBounds         = ndarray.ErrOutOfBounds
	ErrDegenerateReduction = ndarray.ErrDegenerateReduction
	ErrInvalidShape        = ndarray.ErrInvalidShape
	ErrDataLength          = ndarray.ErrDataLength
	ErrInvalidRange        = ndarray.ErrInvalidRange
	ErrRank                = ndarray.ErrRank
	ErrAxis                = ndarray.ErrAxis
)

// Creation functions

// New creates an array of the given shape with every element set to fill.
//
// Example:
//
//	x, err := ndarray.New[int](ndarray.Shape{2, 3}, 5)
func New[T Numeric](shape Shape, fill T) (*NDArray[T], error) {
	return ndarray.New(shape, fill)
}

// Must unwraps a constructor result, panicking on error.
//
// Example:
//
//	x := ndarray.Must(ndarray.Zeros[float64](ndarray.Shape{3}))
func Must[T Numeric](a *NDArray[T], err error) *NDArray[T] {
	return ndarray.Must(a, err)
}

// Zeros creates an array filled with zeros.
func Zeros[T Numeric](shape Shape) (*NDArray[T], error) {
	return ndarray.Zeros[T](shape)
}

// Ones creates an array filled with ones.
func Ones[T Numeric](shape Shape) (*NDArray[T], error) {
	return ndarray.Ones[T](shape)
}

// Full creates an array filled with value.
func Full[T Numeric](shape Shape, value T) (*NDArray[T], error) {
	return ndarray.Full(shape, value)
}

// FromSlice creates an array from row-major data. The slice is copied.
//
// Example:
//
//	x, err := ndarray.FromSlice([]float32{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})
func FromSlice[T Numeric](data []T, shape Shape) (*NDArray[T], error) {
	return ndarray.FromSlice(data, shape)
}

// Arange creates a rank-1 array over [start, stop) with the given step.
//
// Example:
//
//	x, err := ndarray.Arange(0, 10, 2) // [0, 2, 4, 6, 8]
func Arange[T Numeric](start, stop, step T) (*NDArray[T], error) {
	return ndarray.Arange(start, stop, step)
}

// Linspace creates num evenly spaced values over [start, stop], or
// [start, stop) when endpoint is false.
func Linspace[T Float](start, stop T, num int, endpoint bool) (*NDArray[T], error) {
	return ndarray.Linspace(start, stop, num, endpoint)
}

// Eye creates an n×n identity matrix.
func Eye[T Numeric](n int) (*NDArray[T], error) {
	return ndarray.Eye[T](n)
}

// Element-wise operations

// Add returns a + b for arrays of identical shape.
func Add[T Numeric](a, b *NDArray[T]) (*NDArray[T], error) {
	return ndarray.Add(a, b)
}

// Subtract returns a - b for arrays of identical shape.
func Subtract[T Numeric](a, b *NDArray[T]) (*NDArray[T], error) {
	return ndarray.Subtract(a, b)
}

// Multiply returns a * b for arrays of identical shape.
func Multiply[T Numeric](a, b *NDArray[T]) (*NDArray[T], error) {
	return ndarray.Multiply(a, b)
}

// Map returns a new array with f applied to every element.
func Map[T Numeric](a *NDArray[T], f func(T) T) *NDArray[T] {
	return ndarray.Map(a, f)
}

// Abs returns the element-wise absolute value.
func Abs[T Numeric](a *NDArray[T]) *NDArray[T] {
	return ndarray.Abs(a)
}

// Sqrt returns the element-wise square root.
func Sqrt[T Float](a *NDArray[T]) *NDArray[T] {
	return ndarray.Sqrt(a)
}

// Exp returns the element-wise natural exponential.
func Exp[T Float](a *NDArray[T]) *NDArray[T] {
	return ndarray.Exp(a)
}

// Divide returns a / b for float arrays of identical shape.
func Divide[T Float](a, b *NDArray[T]) (*NDArray[T], error) {
	return ndarray.Divide(a, b)
}

// Sign returns -1, 0 or 1 per element.
func Sign[T Numeric](a *NDArray[T]) *NDArray[T] {
	return ndarray.Sign(a)
}

// Clip limits every element to [lo, hi].
//
// Example:
//
//	y, err := ndarray.Clip(x, 0, 255)
func Clip[T Numeric](a *NDArray[T], lo, hi T) (*NDArray[T], error) {
	return ndarray.Clip(a, lo, hi)
}

// Log returns the element-wise natural logarithm.
func Log[T Float](a *NDArray[T]) *NDArray[T] {
	return ndarray.Log(a)
}

// Pow raises every element to the power p.
func Pow[T Float](a *NDArray[T], p T) *NDArray[T] {
	return ndarray.Pow(a, p)
}

// Floor rounds every element down.
func Floor[T Float](a *NDArray[T]) *NDArray[T] {
	return ndarray.Floor(a)
}

// Ceil rounds every element up.
func Ceil[T Float](a *NDArray[T]) *NDArray[T] {
	return ndarray.Ceil(a)
}

// Round rounds every element to the nearest integer, halves to even.
func Round[T Float](a *NDArray[T]) *NDArray[T] {
	return ndarray.Round(a)
}

// Sin returns the element-wise sine.
func Sin[T Float](a *NDArray[T]) *NDArray[T] {
	return ndarray.Sin(a)
}

// Cos returns the element-wise cosine.
func Cos[T Float](a *NDArray[T]) *NDArray[T] {
	return ndarray.Cos(a)
}

// Tan returns the element-wise tangent.
func Tan[T Float](a *NDArray[T]) *NDArray[T] {
	return ndarray.Tan(a)
}

// Where picks x's element where cond is non-zero and y's element elsewhere.
func Where[T, C Numeric](cond *NDArray[C], x, y *NDArray[T]) (*NDArray[T], error) {
	return ndarray.Where(cond, x, y)
}

// Joining and slicing along an axis

// Concatenate joins arrays along an existing axis.
//
// Example:
//
//	c, err := ndarray.Concatenate([]*ndarray.NDArray[float32]{a, b}, 1)
func Concatenate[T Numeric](arrays []*NDArray[T], axis int) (*NDArray[T], error) {
	return ndarray.Concatenate(arrays, axis)
}

// Stack joins arrays of identical shape along a new axis.
func Stack[T Numeric](arrays []*NDArray[T], axis int) (*NDArray[T], error) {
	return ndarray.Stack(arrays, axis)
}

// Split divides a along axis at ascending split points.
func Split[T Numeric](a *NDArray[T], axis int, indices []int) ([]*NDArray[T], error) {
	return ndarray.Split(a, axis, indices)
}

// Take gathers the slices at the given positions along axis.
func Take[T Numeric](a *NDArray[T], indices []int, axis int) (*NDArray[T], error) {
	return ndarray.Take(a, indices, axis)
}

// Tile repeats the whole array reps[d] times along each dimension d.
func Tile[T Numeric](a *NDArray[T], reps []int) (*NDArray[T], error) {
	return ndarray.Tile(a, reps)
}

// Repeat repeats the whole array along a single axis.
func Repeat[T Numeric](a *NDArray[T], repeats, axis int) (*NDArray[T], error) {
	return ndarray.Repeat(a, repeats, axis)
}

// Reductions

// Sum returns the sum of all elements (0 for an empty array).
func Sum[T Numeric](a *NDArray[T]) T {
	return ndarray.Sum(a)
}

// Mean returns the arithmetic mean as a float64.
func Mean[T Numeric](a *NDArray[T]) (float64, error) {
	return ndarray.Mean(a)
}

// Variance returns the population variance.
func Variance[T Numeric](a *NDArray[T]) (float64, error) {
	return ndarray.Variance(a)
}

// Stddev returns the population standard deviation.
func Stddev[T Numeric](a *NDArray[T]) (float64, error) {
	return ndarray.Stddev(a)
}

// Dot returns the flattened dot product of two arrays of identical shape.
func Dot[T Numeric](a, b *NDArray[T]) (T, error) {
	return ndarray.Dot(a, b)
}

// Min returns the smallest element.
func Min[T Numeric](a *NDArray[T]) (T, error) {
	return ndarray.Min(a)
}

// Max returns the largest element.
func Max[T Numeric](a *NDArray[T]) (T, error) {
	return ndarray.Max(a)
}

// Random arrays

// NewSource returns a deterministic random source seeded with seed.
func NewSource(seed uint64) *Source {
	return ndarray.NewSource(seed)
}

// Rand creates an array of values uniform over [0, 1) from the default source.
//
// Example:
//
//	r, err := ndarray.Rand[float64](ndarray.Shape{2, 3})
func Rand[T Float](shape Shape) (*NDArray[T], error) {
	return ndarray.Rand[T](shape)
}

// RandFrom creates an array of values uniform over [0, 1) from src.
//
// Example:
//
//	src := ndarray.NewSource(42)
//	r, err := ndarray.RandFrom[float64](src, ndarray.Shape{2, 3})
func RandFrom[T Float](src *Source, shape Shape) (*NDArray[T], error) {
	return ndarray.RandFrom[T](src, shape)
}

// Uniform creates an array of values uniform over [low, high).
func Uniform[T Float](src *Source, shape Shape, low, high T) (*NDArray[T], error) {
	return ndarray.Uniform(src, shape, low, high)
}

// Randn creates an array of standard normal values.
func Randn[T Float](src *Source, shape Shape) (*NDArray[T], error) {
	return ndarray.Randn[T](src, shape)
}

// Interop

// ToDense copies a rank-2 float64 array into a gonum dense matrix.
func ToDense(a *NDArray[float64]) (*mat.Dense, error) {
	return ndarray.ToDense(a)
}

// FromDense copies a gonum matrix into a rank-2 float64 array.
func FromDense(m mat.Matrix) *NDArray[float64] {
	return ndarray.FromDense(m)
}
