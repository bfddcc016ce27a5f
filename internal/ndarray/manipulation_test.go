package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAxis(t *testing.T) {
	tests := []struct {
		axis, rank, want int
	}{
		{0, 3, 0},
		{2, 3, 2},
		{-1, 3, 2},
		{-3, 3, 0},
	}
	for _, tt := range tests {
		got, err := normalizeAxis("op", tt.axis, tt.rank)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "axis %d rank %d", tt.axis, tt.rank)
	}

	for _, axis := range []int{3, -4} {
		_, err := normalizeAxis("op", axis, 3)
		assert.ErrorIs(t, err, ErrAxis)
	}
	_, err := normalizeAxis("op", 0, 0)
	assert.ErrorIs(t, err, ErrAxis, "a scalar has no axes")
}

func TestConcatenate(t *testing.T) {
	a := Must(FromSlice([]int{1, 2, 3, 4, 5, 6}, Shape{2, 3}))
	b := Must(FromSlice([]int{7, 8, 9}, Shape{1, 3}))
	c := Must(FromSlice([]int{10, 20, 30, 40}, Shape{2, 2}))

	rows, err := Concatenate([]*NDArray[int]{a, b}, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 3}, rows.Shape())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, rows.Data())

	cols, err := Concatenate([]*NDArray[int]{a, c}, -1)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 5}, cols.Shape())
	assert.Equal(t, []int{1, 2, 3, 10, 20, 4, 5, 6, 30, 40}, cols.Data())

	// Element-wise check against the source coordinates.
	for _, co := range allCoords(cols.Shape()) {
		var want int
		if co[1] < 3 {
			want = a.MustAt(co[0], co[1])
		} else {
			want = c.MustAt(co[0], co[1]-3)
		}
		assert.Equal(t, want, cols.MustAt(co...), "at %v", co)
	}

	single, err := Concatenate([]*NDArray[int]{a}, 1)
	require.NoError(t, err)
	assert.True(t, single.Equal(a))
	require.NoError(t, single.Set(0, 0, 0))
	assert.Equal(t, 1, a.MustAt(0, 0), "result does not alias its input")
}

func TestConcatenateEmptyPieces(t *testing.T) {
	a := Must(Zeros[float64](Shape{0, 3}))
	b := Must(Ones[float64](Shape{2, 3}))

	out, err := Concatenate([]*NDArray[float64]{a, b, a}, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, out.Shape())
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 1}, out.Data())

	out, err = Concatenate([]*NDArray[float64]{a, a}, 1)
	require.NoError(t, err)
	assert.Equal(t, Shape{0, 6}, out.Shape())
}

func TestConcatenateErrors(t *testing.T) {
	a := Must(Zeros[int](Shape{2, 3}))

	_, err := Concatenate[int](nil, 0)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Concatenate([]*NDArray[int]{a, Must(Zeros[int](Shape{3, 3}))}, 1)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.ErrorContains(t, err, "array 1")

	_, err = Concatenate([]*NDArray[int]{a, Must(Zeros[int](Shape{6}))}, 0)
	assert.ErrorIs(t, err, ErrShapeMismatch, "rank differs")

	_, err = Concatenate([]*NDArray[int]{a, a}, 2)
	assert.ErrorIs(t, err, ErrAxis)

	s := Must(New[int](Shape{}, 1))
	_, err = Concatenate([]*NDArray[int]{s, s}, 0)
	assert.ErrorIs(t, err, ErrAxis)
}

func TestStack(t *testing.T) {
	a := Must(FromSlice([]int{1, 2}, Shape{2}))
	b := Must(FromSlice([]int{3, 4}, Shape{2}))

	tests := []struct {
		name  string
		axis  int
		shape Shape
		data  []int
	}{
		{"new leading axis", 0, Shape{2, 2}, []int{1, 2, 3, 4}},
		{"new trailing axis", 1, Shape{2, 2}, []int{1, 3, 2, 4}},
		{"negative axis", -1, Shape{2, 2}, []int{1, 3, 2, 4}},
		{"negative leading axis", -2, Shape{2, 2}, []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Stack([]*NDArray[int]{a, b}, tt.axis)
			require.NoError(t, err)
			assert.Equal(t, tt.shape, out.Shape())
			assert.Equal(t, tt.data, out.Data())
		})
	}

	m := Must(Arange[int](0, 6, 1))
	m = Must(m.Reshape(Shape{2, 3}))
	n := Map(m, func(v int) int { return v + 10 })
	out, err := Stack([]*NDArray[int]{m, n, m}, 1)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3, 3}, out.Shape())
	for _, co := range allCoords(out.Shape()) {
		src := []*NDArray[int]{m, n, m}[co[1]]
		assert.Equal(t, src.MustAt(co[0], co[2]), out.MustAt(co...), "at %v", co)
	}

	scalars, err := Stack([]*NDArray[float64]{
		Must(New[float64](Shape{}, 1)),
		Must(New[float64](Shape{}, 2)),
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{2}, scalars.Shape())
	assert.Equal(t, []float64{1, 2}, scalars.Data())
}

func TestStackErrors(t *testing.T) {
	a := Must(Zeros[int](Shape{2}))

	_, err := Stack[int](nil, 0)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = Stack([]*NDArray[int]{a, Must(Zeros[int](Shape{3}))}, 0)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = Stack([]*NDArray[int]{a, a}, 2)
	assert.ErrorIs(t, err, ErrAxis)
	_, err = Stack([]*NDArray[int]{a, a}, -3)
	assert.ErrorIs(t, err, ErrAxis)
}

func TestSplit(t *testing.T) {
	x := Must(Arange[int](0, 6, 1))

	parts, err := Split(x, 0, []int{2, 3})
	require.NoError(t, err)
	require.Len(t, parts, 3)
	assert.Equal(t, []int{0, 1}, parts[0].Data())
	assert.Equal(t, []int{2}, parts[1].Data())
	assert.Equal(t, []int{3, 4, 5}, parts[2].Data())

	parts, err = Split(x, 0, []int{0, 3, 3, 6})
	require.NoError(t, err)
	require.Len(t, parts, 5)
	assert.Equal(t, 0, parts[0].Size())
	assert.Equal(t, 0, parts[2].Size())
	assert.Equal(t, 0, parts[4].Size())

	parts, err = Split(x, 0, nil)
	require.NoError(t, err)
	require.Len(t, parts, 1)
	assert.True(t, parts[0].Equal(x))
}

func TestSplitConcatenateRoundTrip(t *testing.T) {
	a := Must(RandFrom[float64](NewSource(11), Shape{3, 5, 2}))

	for axis, points := range [][]int{{1}, {2, 4}, {1}} {
		parts, err := Split(a, axis, points)
		require.NoError(t, err)
		back, err := Concatenate(parts, axis)
		require.NoError(t, err)
		assert.True(t, back.Equal(a), "axis %d", axis)
	}

	parts, err := Split(a, 1, []int{2, 4})
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2, 2}, parts[0].Shape())
	assert.Equal(t, Shape{3, 1, 2}, parts[2].Shape())
	for _, co := range allCoords(parts[1].Shape()) {
		assert.Equal(t, a.MustAt(co[0], co[1]+2, co[2]), parts[1].MustAt(co...))
	}
}

func TestSplitErrors(t *testing.T) {
	x := Must(Arange[int](0, 6, 1))

	_, err := Split(x, 0, []int{4, 2})
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = Split(x, 0, []int{7})
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = Split(x, 0, []int{-1})
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = Split(x, 1, []int{1})
	assert.ErrorIs(t, err, ErrAxis)
}

func TestTake(t *testing.T) {
	x := Must(FromSlice([]int{1, 2, 3, 4, 5, 6}, Shape{3, 2}))

	rows, err := Take(x, []int{2, 0, 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, rows.Shape())
	assert.Equal(t, []int{5, 6, 1, 2, 5, 6}, rows.Data())

	cols, err := Take(x, []int{1}, -1)
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 1}, cols.Shape())
	assert.Equal(t, []int{2, 4, 6}, cols.Data())

	none, err := Take(x, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{0, 2}, none.Shape())

	_, err = Take(x, []int{3}, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = Take(x, []int{-1}, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = Take(x, []int{0}, 2)
	assert.ErrorIs(t, err, ErrAxis)
}

func TestTile(t *testing.T) {
	x := Must(FromSlice([]int{1, 2}, Shape{2, 1}))

	y, err := Tile(x, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 3}, y.Shape())
	assert.Equal(t, []int{1, 1, 1, 2, 2, 2, 1, 1, 1, 2, 2, 2}, y.Data())

	m := Must(FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}))
	tiled, err := Tile(m, []int{3, 2})
	require.NoError(t, err)
	for _, co := range allCoords(tiled.Shape()) {
		assert.Equal(t, m.MustAt(co[0]%2, co[1]%3), tiled.MustAt(co...), "at %v", co)
	}

	empty, err := Tile(m, []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, Shape{0, 6}, empty.Shape())

	s, err := Tile(Must(New[int](Shape{}, 4)), nil)
	require.NoError(t, err)
	assert.Equal(t, 4, s.MustAt())

	_, err = Tile(m, []int{2})
	assert.ErrorIs(t, err, ErrRank)
	_, err = Tile(m, []int{1, -1})
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = Tile(m, []int{1, 1 << 62})
	assert.ErrorIs(t, err, ErrInvalidShape)
}

func TestRepeat(t *testing.T) {
	x := Must(FromSlice([]int{1, 2, 3, 4}, Shape{2, 2}))

	rows, err := Repeat(x, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, Shape{4, 2}, rows.Shape())
	assert.Equal(t, []int{1, 2, 3, 4, 1, 2, 3, 4}, rows.Data())

	cols, err := Repeat(x, 3, -1)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 6}, cols.Shape())
	assert.Equal(t, []int{1, 2, 1, 2, 1, 2, 3, 4, 3, 4, 3, 4}, cols.Data())

	zero, err := Repeat(x, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 0}, zero.Shape())

	_, err = Repeat(x, -1, 0)
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = Repeat(x, 2, 2)
	assert.ErrorIs(t, err, ErrAxis)
}

func TestWhere(t *testing.T) {
	cond := Must(FromSlice([]uint8{1, 0, 1, 0}, Shape{2, 2}))
	x := Must(FromSlice([]float64{1, 2, 3, 4}, Shape{2, 2}))
	y := Must(FromSlice([]float64{-1, -2, -3, -4}, Shape{2, 2}))

	out, err := Where(cond, x, y)
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, out.Shape())
	assert.Equal(t, []float64{1, -2, 3, -4}, out.Data())

	// Any non-zero value selects x.
	fcond := Must(FromSlice([]float32{0.5, 0, -2, 0}, Shape{2, 2}))
	out, err = Where(fcond, x, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -2, 3, -4}, out.Data())

	_, err = Where(Must(Zeros[uint8](Shape{4})), x, y)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = Where(cond, x, Must(Zeros[float64](Shape{4})))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
