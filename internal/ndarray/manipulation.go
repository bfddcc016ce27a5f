package ndarray

import (
	"fmt"
	"math"
)

// normalizeAxis maps axis onto [0, rank). Negative values count from the
// end, so -1 is the last axis.
func normalizeAxis(op string, axis, rank int) (int, error) {
	ax := axis
	if ax < 0 {
		ax += rank
	}
	if ax < 0 || ax >= rank {
		return 0, fmt.Errorf("%s: %w: axis %d for rank %d", op, ErrAxis, axis, rank)
	}
	return ax, nil
}

// around returns the element counts of the dimensions before and after axis.
// In row-major order the array is outer blocks of shape[axis]*inner elements.
func around(shape Shape, axis int) (outer, inner int) {
	return shape[:axis].NumElements(), shape[axis+1:].NumElements()
}

// sameExcept reports whether a and b have the same rank and agree on every
// dimension other than axis.
func sameExcept(a, b Shape, axis int) bool {
	if len(a) != len(b) {
		return false
	}
	for d := range a {
		if d != axis && a[d] != b[d] {
			return false
		}
	}
	return true
}

// interleave fills dst with, for each of outer blocks, the next chunks[i]
// elements of every srcs[i] in turn.
func interleave[T Numeric](dst []T, srcs []*NDArray[T], outer int, chunks []int) {
	pos := 0
	for o := 0; o < outer; o++ {
		for i, s := range srcs {
			n := chunks[i]
			pos += copy(dst[pos:pos+n], s.data[o*n:(o+1)*n])
		}
	}
}

// Concatenate joins arrays along an existing axis. Every array must have the
// same rank and the same extents outside axis. Negative axes count from the
// end.
//
// Example:
//
//	a, _ := ndarray.Zeros[float32](Shape{2, 3})
//	b, _ := ndarray.Ones[float32](Shape{2, 5})
//	c, _ := ndarray.Concatenate([]*NDArray[float32]{a, b}, 1) // shape (2, 8)
func Concatenate[T Numeric](arrays []*NDArray[T], axis int) (*NDArray[T], error) {
	if len(arrays) == 0 {
		return nil, fmt.Errorf("concatenate: %w: no arrays", ErrShapeMismatch)
	}
	first := arrays[0]
	ax, err := normalizeAxis("concatenate", axis, first.Rank())
	if err != nil {
		return nil, err
	}

	_, inner := around(first.shape, ax)
	shape := first.shape.Clone()
	shape[ax] = 0
	chunks := make([]int, len(arrays))
	for i, a := range arrays {
		if !sameExcept(a.shape, first.shape, ax) {
			return nil, fmt.Errorf("concatenate: %w: array %d has shape %v, want %v outside axis %d",
				ErrShapeMismatch, i, a.shape, first.shape, ax)
		}
		if shape[ax] > math.MaxInt-a.shape[ax] {
			return nil, fmt.Errorf("concatenate: %w: axis %d overflows int", ErrInvalidShape, ax)
		}
		shape[ax] += a.shape[ax]
		chunks[i] = a.shape[ax] * inner
	}

	out, err := alloc[T](shape)
	if err != nil {
		return nil, err
	}
	if len(out.data) > 0 {
		outer, _ := around(shape, ax)
		interleave(out.data, arrays, outer, chunks)
	}
	return out, nil
}

// Stack joins arrays of identical shape along a new axis, which becomes
// dimension axis of the result. axis may range over [-(rank+1), rank].
//
// Example:
//
//	a, _ := ndarray.FromSlice([]int{1, 2}, Shape{2})
//	b, _ := ndarray.FromSlice([]int{3, 4}, Shape{2})
//	s, _ := ndarray.Stack([]*NDArray[int]{a, b}, 0) // [[1, 2], [3, 4]]
//	t, _ := ndarray.Stack([]*NDArray[int]{a, b}, 1) // [[1, 3], [2, 4]]
func Stack[T Numeric](arrays []*NDArray[T], axis int) (*NDArray[T], error) {
	if len(arrays) == 0 {
		return nil, fmt.Errorf("stack: %w: no arrays", ErrShapeMismatch)
	}
	first := arrays[0]
	ax, err := normalizeAxis("stack", axis, first.Rank()+1)
	if err != nil {
		return nil, err
	}
	for i, a := range arrays {
		if !a.shape.Equal(first.shape) {
			return nil, fmt.Errorf("stack: %w: array %d has shape %v, want %v",
				ErrShapeMismatch, i, a.shape, first.shape)
		}
	}

	shape := make(Shape, 0, first.Rank()+1)
	shape = append(shape, first.shape[:ax]...)
	shape = append(shape, len(arrays))
	shape = append(shape, first.shape[ax:]...)
	out, err := alloc[T](shape)
	if err != nil {
		return nil, err
	}
	if len(out.data) > 0 {
		chunk := first.shape[ax:].NumElements()
		chunks := make([]int, len(arrays))
		for i := range chunks {
			chunks[i] = chunk
		}
		interleave(out.data, arrays, first.shape[:ax].NumElements(), chunks)
	}
	return out, nil
}

// Split divides a along axis at the given split points and returns
// len(indices)+1 arrays. Points must be ascending within [0, shape[axis]];
// equal neighbours produce an empty piece.
//
// Example:
//
//	x, _ := ndarray.Arange[int](0, 6, 1)
//	parts, _ := ndarray.Split(x, 0, []int{2, 3}) // [0, 1], [2], [3, 4, 5]
func Split[T Numeric](a *NDArray[T], axis int, indices []int) ([]*NDArray[T], error) {
	ax, err := normalizeAxis("split", axis, a.Rank())
	if err != nil {
		return nil, err
	}
	n := a.shape[ax]
	prev := 0
	for _, p := range indices {
		if p < prev || p > n {
			return nil, fmt.Errorf("split: %w: points %v must ascend within [0, %d]",
				ErrInvalidRange, indices, n)
		}
		prev = p
	}

	outer, inner := around(a.shape, ax)
	bounds := make([]int, 0, len(indices)+2)
	bounds = append(bounds, 0)
	bounds = append(bounds, indices...)
	bounds = append(bounds, n)

	parts := make([]*NDArray[T], 0, len(bounds)-1)
	for i := 0; i+1 < len(bounds); i++ {
		lo, hi := bounds[i], bounds[i+1]
		shape := a.shape.Clone()
		shape[ax] = hi - lo
		part, err := alloc[T](shape)
		if err != nil {
			return nil, err
		}
		if w := (hi - lo) * inner; w > 0 {
			for o := 0; o < outer; o++ {
				src := (o*n + lo) * inner
				copy(part.data[o*w:(o+1)*w], a.data[src:src+w])
			}
		}
		parts = append(parts, part)
	}
	return parts, nil
}

// Take gathers the slices at the given positions along axis, in order.
// Positions may repeat. Returns ErrOutOfBounds for a position outside
// [0, shape[axis]).
//
// Example:
//
//	x, _ := ndarray.FromSlice([]int{1, 2, 3, 4, 5, 6}, Shape{3, 2})
//	y, _ := ndarray.Take(x, []int{2, 0}, 0) // [[5, 6], [1, 2]]
func Take[T Numeric](a *NDArray[T], indices []int, axis int) (*NDArray[T], error) {
	ax, err := normalizeAxis("take", axis, a.Rank())
	if err != nil {
		return nil, err
	}
	n := a.shape[ax]
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return nil, fmt.Errorf("take: %w: index %d out of range for axis %d (size %d)",
				ErrOutOfBounds, idx, ax, n)
		}
	}

	shape := a.shape.Clone()
	shape[ax] = len(indices)
	out, err := alloc[T](shape)
	if err != nil {
		return nil, err
	}
	if len(out.data) == 0 {
		return out, nil
	}
	outer, inner := around(a.shape, ax)
	pos := 0
	for o := 0; o < outer; o++ {
		for _, idx := range indices {
			src := (o*n + idx) * inner
			pos += copy(out.data[pos:pos+inner], a.data[src:src+inner])
		}
	}
	return out, nil
}

// Tile repeats the whole array reps[d] times along each dimension d.
// len(reps) must equal the rank (ErrRank otherwise).
//
// Example:
//
//	x, _ := ndarray.FromSlice([]int{1, 2}, Shape{2, 1})
//	y, _ := ndarray.Tile(x, []int{2, 3}) // shape (4, 3)
func Tile[T Numeric](a *NDArray[T], reps []int) (*NDArray[T], error) {
	return tile("tile", a, reps)
}

// Repeat is Tile along a single axis: [1, 2] repeated twice along axis 0 is
// [1, 2, 1, 2]. Zero repeats give an empty axis.
func Repeat[T Numeric](a *NDArray[T], repeats, axis int) (*NDArray[T], error) {
	ax, err := normalizeAxis("repeat", axis, a.Rank())
	if err != nil {
		return nil, err
	}
	reps := make([]int, a.Rank())
	for d := range reps {
		reps[d] = 1
	}
	reps[ax] = repeats
	return tile("repeat", a, reps)
}

func tile[T Numeric](op string, a *NDArray[T], reps []int) (*NDArray[T], error) {
	if len(reps) != a.Rank() {
		return nil, fmt.Errorf("%s: %w: %d repetitions for rank %d", op, ErrRank, len(reps), a.Rank())
	}
	shape := make(Shape, len(reps))
	for d, r := range reps {
		if r < 0 {
			return nil, fmt.Errorf("%s: %w: repetitions %v must be >= 0", op, ErrInvalidRange, reps)
		}
		if r > 0 && a.shape[d] > math.MaxInt/r {
			return nil, fmt.Errorf("%s: %w: dimension %d overflows int", op, ErrInvalidShape, d)
		}
		shape[d] = a.shape[d] * r
	}

	out, err := alloc[T](shape)
	if err != nil {
		return nil, err
	}
	// A non-empty result implies every source dimension is non-zero.
	coord := make([]int, len(shape))
	for i := range out.data {
		src := 0
		for d, c := range coord {
			src += (c % a.shape[d]) * a.strides[d]
		}
		out.data[i] = a.data[src]
		for d := len(coord) - 1; d >= 0; d-- {
			coord[d]++
			if coord[d] < shape[d] {
				break
			}
			coord[d] = 0
		}
	}
	return out, nil
}

// Where returns an array holding x's element wherever cond is non-zero and
// y's element elsewhere. cond, x and y must share one shape; there is no
// broadcasting. A NaN condition counts as non-zero.
//
// Example:
//
//	mask, _ := ndarray.FromSlice([]uint8{1, 0, 1}, Shape{3})
//	x, _ := ndarray.Full[float64](Shape{3}, 1)
//	y, _ := ndarray.Zeros[float64](Shape{3})
//	z, _ := ndarray.Where(mask, x, y) // [1, 0, 1]
func Where[T, C Numeric](cond *NDArray[C], x, y *NDArray[T]) (*NDArray[T], error) {
	if err := checkSameShape("where", x, y); err != nil {
		return nil, err
	}
	if !cond.shape.Equal(x.shape) {
		return nil, fmt.Errorf("where: %w: condition %v vs %v", ErrShapeMismatch, cond.shape, x.shape)
	}
	out := like(x)
	for i, c := range cond.data {
		if c != 0 {
			out.data[i] = x.data[i]
		} else {
			out.data[i] = y.data[i]
		}
	}
	return out, nil
}
