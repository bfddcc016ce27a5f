package ndarray

import "fmt"

// Zeros creates an array filled with zeros.
//
// Example:
//
//	x, _ := ndarray.Zeros[float32](Shape{3, 4})
func Zeros[T Numeric](shape Shape) (*NDArray[T], error) {
	return alloc[T](shape)
}

// Ones creates an array filled with ones.
func Ones[T Numeric](shape Shape) (*NDArray[T], error) {
	return New[T](shape, 1)
}

// Full creates an array filled with a specific value. It is New under the
// name the rest of the creation family uses.
//
// Example:
//
//	x, _ := ndarray.Full[float64](Shape{3, 3}, 3.14)
func Full[T Numeric](shape Shape, value T) (*NDArray[T], error) {
	return New(shape, value)
}

// FromSlice creates an array from a Go slice laid out in row-major order.
// The slice is copied.
//
// Example:
//
//	x, _ := ndarray.FromSlice([]int{1, 2, 3, 4, 5, 6}, Shape{2, 3})
func FromSlice[T Numeric](data []T, shape Shape) (*NDArray[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if n := shape.NumElements(); n != len(data) {
		return nil, fmt.Errorf("%w: shape %v requires %d elements, got %d",
			ErrDataLength, shape, n, len(data))
	}
	a, err := alloc[T](shape)
	if err != nil {
		return nil, err
	}
	copy(a.data, data)
	return a, nil
}

// Arange creates a rank-1 array with values start, start+step, ... up to but
// not including stop. An empty interval yields an empty array; a zero step is
// ErrInvalidRange.
//
// Example:
//
//	x, _ := ndarray.Arange[int](0, 10, 2) // [0, 2, 4, 6, 8]
func Arange[T Numeric](start, stop, step T) (*NDArray[T], error) {
	if step == 0 {
		return nil, fmt.Errorf("%w: arange step must be non-zero", ErrInvalidRange)
	}

	// next <= v (resp. >= v) catches integer wrap-around and float steps
	// too small to move v.
	var data []T
	if step > 0 {
		for v := start; v < stop; {
			data = append(data, v)
			next := v + step
			if next <= v {
				break
			}
			v = next
		}
	} else {
		for v := start; v > stop; {
			data = append(data, v)
			next := v + step
			if next >= v {
				break
			}
			v = next
		}
	}

	return FromSlice(data, Shape{len(data)})
}

// Linspace creates a rank-1 array of num evenly spaced values over
// [start, stop]. If endpoint is false, stop is excluded.
//
// Example:
//
//	x, _ := ndarray.Linspace[float64](0, 1, 5, true) // [0, 0.25, 0.5, 0.75, 1]
func Linspace[T Float](start, stop T, num int, endpoint bool) (*NDArray[T], error) {
	if num < 0 {
		return nil, fmt.Errorf("%w: linspace num must be >= 0, got %d", ErrInvalidRange, num)
	}

	a, err := alloc[T](Shape{num})
	if err != nil {
		return nil, err
	}
	if num == 0 {
		return a, nil
	}
	if num == 1 {
		a.data[0] = start
		return a, nil
	}

	div := num
	if endpoint {
		div = num - 1
	}
	step := (stop - start) / T(div)
	for i := range a.data {
		a.data[i] = start + T(i)*step
	}
	if endpoint {
		a.data[num-1] = stop
	}
	return a, nil
}

// Eye creates an n×n identity matrix.
func Eye[T Numeric](n int) (*NDArray[T], error) {
	a, err := alloc[T](Shape{n, n})
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		a.data[i*n+i] = 1
	}
	return a, nil
}
