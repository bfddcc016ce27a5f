package ndarray

import (
	"fmt"
	"math"
)

// checkSameShape returns ErrShapeMismatch unless a and b have identical shapes.
// Equal flat sizes are not enough: (2, 3) and (3, 2) are rejected.
func checkSameShape[T Numeric](op string, a, b *NDArray[T]) error {
	if !a.shape.Equal(b.shape) {
		return fmt.Errorf("%s: %w: %v vs %v", op, ErrShapeMismatch, a.shape, b.shape)
	}
	return nil
}

// binaryOp applies f to corresponding elements of a and b.
func binaryOp[T Numeric](op string, a, b *NDArray[T], f func(x, y T) T) (*NDArray[T], error) {
	if err := checkSameShape(op, a, b); err != nil {
		return nil, err
	}
	out := like(a)
	for i := range out.data {
		out.data[i] = f(a.data[i], b.data[i])
	}
	return out, nil
}

// Add returns the element-wise sum of two arrays of identical shape.
//
// Example:
//
//	a, _ := ndarray.New[float64](Shape{5}, 1.5)
//	b, _ := ndarray.New[float64](Shape{5}, 2.0)
//	c, _ := ndarray.Add(a, b) // every element 3.5
func Add[T Numeric](a, b *NDArray[T]) (*NDArray[T], error) {
	return binaryOp("add", a, b, func(x, y T) T { return x + y })
}

// Subtract returns the element-wise difference a - b.
func Subtract[T Numeric](a, b *NDArray[T]) (*NDArray[T], error) {
	return binaryOp("subtract", a, b, func(x, y T) T { return x - y })
}

// Multiply returns the element-wise product of two arrays of identical shape.
func Multiply[T Numeric](a, b *NDArray[T]) (*NDArray[T], error) {
	return binaryOp("multiply", a, b, func(x, y T) T { return x * y })
}

// Map returns a new array with f applied to every element.
func Map[T Numeric](a *NDArray[T], f func(T) T) *NDArray[T] {
	out := like(a)
	for i, v := range a.data {
		out.data[i] = f(v)
	}
	return out
}

// Abs returns the element-wise absolute value.
func Abs[T Numeric](a *NDArray[T]) *NDArray[T] {
	return Map(a, func(v T) T {
		if v < 0 {
			return -v
		}
		return v
	})
}

// Sqrt returns the element-wise square root. Negative inputs yield NaN.
func Sqrt[T Float](a *NDArray[T]) *NDArray[T] { return mathFunc(a, math.Sqrt) }

// Exp returns the element-wise natural exponential.
func Exp[T Float](a *NDArray[T]) *NDArray[T] { return mathFunc(a, math.Exp) }

// Divide returns the element-wise quotient a / b. It is float only: integer
// division by zero would panic.
func Divide[T Float](a, b *NDArray[T]) (*NDArray[T], error) {
	return binaryOp("divide", a, b, func(x, y T) T { return x / y })
}

// Sign returns -1, 0 or 1 per element according to its sign. NaN stays NaN.
func Sign[T Numeric](a *NDArray[T]) *NDArray[T] {
	one := T(1)
	return Map(a, func(v T) T {
		switch {
		case v > 0:
			return one
		case v < 0:
			return -one
		}
		return v
	})
}

// Clip limits every element to [lo, hi]. NaN elements are kept.
// Returns ErrInvalidRange unless lo <= hi.
//
// Example:
//
//	x, _ := ndarray.FromSlice([]int{-5, 0, 5}, Shape{3})
//	y, _ := ndarray.Clip(x, -1, 1) // [-1, 0, 1]
func Clip[T Numeric](a *NDArray[T], lo, hi T) (*NDArray[T], error) {
	if !(lo <= hi) {
		return nil, fmt.Errorf("clip: %w: [%v, %v]", ErrInvalidRange, lo, hi)
	}
	return Map(a, func(v T) T {
		switch {
		case v < lo:
			return lo
		case v > hi:
			return hi
		}
		return v
	}), nil
}

// mathFunc lifts a float64 function from package math to any float type.
func mathFunc[T Float](a *NDArray[T], f func(float64) float64) *NDArray[T] {
	return Map(a, func(v T) T { return T(f(float64(v))) })
}

// Log returns the element-wise natural logarithm. Log(0) is -Inf and
// negative inputs yield NaN.
func Log[T Float](a *NDArray[T]) *NDArray[T] { return mathFunc(a, math.Log) }

// Pow raises every element to the power p.
func Pow[T Float](a *NDArray[T], p T) *NDArray[T] {
	return mathFunc(a, func(v float64) float64 { return math.Pow(v, float64(p)) })
}

// Floor rounds every element down.
func Floor[T Float](a *NDArray[T]) *NDArray[T] { return mathFunc(a, math.Floor) }

// Ceil rounds every element up.
func Ceil[T Float](a *NDArray[T]) *NDArray[T] { return mathFunc(a, math.Ceil) }

// Round rounds every element to the nearest integer, halves to even
// (Round(2.5) == 2, Round(3.5) == 4).
func Round[T Float](a *NDArray[T]) *NDArray[T] { return mathFunc(a, math.RoundToEven) }

func Sin[T Float](a *NDArray[T]) *NDArray[T] { return mathFunc(a, math.Sin) }

func Cos[T Float](a *NDArray[T]) *NDArray[T] { return mathFunc(a, math.Cos) }

func Tan[T Float](a *NDArray[T]) *NDArray[T] { return mathFunc(a, math.Tan) }
