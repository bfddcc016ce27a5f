package ndarray

import (
	"fmt"
	"math"
)

// Sum returns the sum of all elements, accumulated in T in row-major order.
// The sum of an empty array is 0. Integer sums wrap on overflow.
func Sum[T Numeric](a *NDArray[T]) T {
	var s T
	for _, v := range a.data {
		s += v
	}
	return s
}

// Mean returns the arithmetic mean as a float64. Elements are accumulated
// in float64 in row-major order, so narrow integer types neither wrap nor
// truncate. Returns ErrDegenerateReduction for an empty array, for float
// element types too.
func Mean[T Numeric](a *NDArray[T]) (float64, error) {
	if len(a.data) == 0 {
		return 0, fmt.Errorf("mean: %w: shape %v", ErrDegenerateReduction, a.shape)
	}
	var s float64
	for _, v := range a.data {
		s += float64(v)
	}
	return s / float64(len(a.data)), nil
}

// Variance returns the population variance (divides by N, not N-1).
// It uses Welford's single-pass update in float64: when every element is
// identical each deviation is exactly 0, so the variance is exactly 0.
func Variance[T Numeric](a *NDArray[T]) (float64, error) {
	if len(a.data) == 0 {
		return 0, fmt.Errorf("variance: %w: shape %v", ErrDegenerateReduction, a.shape)
	}
	var mean, m2 float64
	for i, v := range a.data {
		x := float64(v)
		d := x - mean
		mean += d / float64(i+1)
		m2 += d * (x - mean)
	}
	return m2 / float64(len(a.data)), nil
}

// Stddev returns the population standard deviation, sqrt(Variance(a)).
// An array whose elements are all identical has a standard deviation of
// exactly 0.
func Stddev[T Numeric](a *NDArray[T]) (float64, error) {
	v, err := Variance(a)
	if err != nil {
		return 0, fmt.Errorf("stddev: %w", err)
	}
	return math.Sqrt(v), nil
}

// Dot returns Σ a[i]*b[i] over the flattened elements of two arrays with
// identical shapes. Any rank is accepted; the shapes themselves must match,
// not just the element counts.
//
// Example:
//
//	a, _ := ndarray.New[float64](Shape{5}, 1.5)
//	b, _ := ndarray.New[float64](Shape{5}, 2.0)
//	d, _ := ndarray.Dot(a, b) // 15
func Dot[T Numeric](a, b *NDArray[T]) (T, error) {
	var s T
	if err := checkSameShape("dot", a, b); err != nil {
		return s, err
	}
	for i := range a.data {
		s += a.data[i] * b.data[i]
	}
	return s, nil
}

// Min returns the smallest element. NaN elements are skipped unless every
// element is NaN.
func Min[T Numeric](a *NDArray[T]) (T, error) {
	return extremum("min", a, func(x, best T) bool { return x < best })
}

// Max returns the largest element. NaN elements are skipped unless every
// element is NaN.
func Max[T Numeric](a *NDArray[T]) (T, error) {
	return extremum("max", a, func(x, best T) bool { return x > best })
}

func extremum[T Numeric](op string, a *NDArray[T], better func(x, best T) bool) (T, error) {
	var best T
	if len(a.data) == 0 {
		return best, fmt.Errorf("%s: %w: shape %v", op, ErrDegenerateReduction, a.shape)
	}
	best = a.data[0]
	for _, v := range a.data[1:] {
		// best != best only holds for NaN.
		if better(v, best) || best != best {
			best = v
		}
	}
	return best, nil
}
