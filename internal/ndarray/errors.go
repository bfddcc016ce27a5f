package ndarray

import "errors"

// Sentinel errors returned by the package. Call sites wrap them with
// fmt.Errorf("op: %w ...") to add context; callers match with errors.Is.
var (
	// ErrShapeMismatch is returned when two operands of a binary operation
	// do not have identical shapes, or a reshape changes the element count.
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrOutOfBounds is returned by At/Set when the number of indices does not
	// match the rank, or an index lies outside its dimension.
	ErrOutOfBounds = errors.New("ndarray: index out of bounds")

	// ErrDegenerateReduction is returned by Mean, Variance, Stddev, Min and Max
	// on an array with zero elements.
	ErrDegenerateReduction = errors.New("ndarray: reduction over empty array")

	// ErrInvalidShape is returned when a shape contains a negative dimension
	// or describes more elements than can be allocated.
	ErrInvalidShape = errors.New("ndarray: invalid shape")

	// ErrDataLength is returned by FromSlice when the data length does not
	// match the number of elements implied by the shape.
	ErrDataLength = errors.New("ndarray: data length does not match shape")

	// ErrInvalidRange is returned for empty, inverted or non-finite numeric
	// ranges (Arange, Linspace, Uniform, Clip) and bad counts or split points.
	ErrInvalidRange = errors.New("ndarray: invalid range")

	// ErrRank is returned when an operation requires a specific rank.
	ErrRank = errors.New("ndarray: unsupported rank")

	// ErrAxis is returned when an axis argument is outside the array's rank.
	ErrAxis = errors.New("ndarray: axis out of range")
)
