package ndarray

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToDense copies a rank-2 float64 array into a gonum dense matrix.
// gonum cannot represent empty matrices, so zero-sized arrays are rejected
// with ErrInvalidShape; arrays of any other rank return ErrRank.
func ToDense(a *NDArray[float64]) (*mat.Dense, error) {
	if len(a.shape) != 2 {
		return nil, fmt.Errorf("to dense: %w: need rank 2, got shape %v", ErrRank, a.shape)
	}
	if len(a.data) == 0 {
		return nil, fmt.Errorf("to dense: %w: zero-sized shape %v", ErrInvalidShape, a.shape)
	}
	return mat.NewDense(a.shape[0], a.shape[1], a.Data()), nil
}

// FromDense copies any gonum matrix into a rank-2 float64 array.
func FromDense(m mat.Matrix) *NDArray[float64] {
	r, c := m.Dims()
	a := Must(alloc[float64](Shape{r, c}))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			a.data[i*c+j] = m.At(i, j)
		}
	}
	return a
}
