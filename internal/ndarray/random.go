package ndarray

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
)

// Source is a pseudo-random generator for array creation.
// It is safe for concurrent use.
//
// Two sources created with the same seed produce identical arrays for the
// same sequence of calls, shapes and element types.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSource returns a deterministic source seeded with seed.
func NewSource(seed uint64) *Source {
	return &Source{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint:gosec // G404: statistical use, not crypto
	}
}

// defaultSource backs Rand and nil-source calls. It is seeded from the
// runtime's random state, so each process run differs.
var defaultSource = NewSource(rand.Uint64()) //nolint:gosec // G404: statistical use, not crypto

func orDefault(src *Source) *Source {
	if src == nil {
		return defaultSource
	}
	return src
}

// drawInto draws one value per element of a under the source's lock.
func drawInto[T Float](src *Source, a *NDArray[T], draw func(r *rand.Rand) float64) {
	src.mu.Lock()
	defer src.mu.Unlock()
	for i := range a.data {
		a.data[i] = T(draw(src.rng))
	}
}

// Rand creates an array of values drawn uniformly from [0, 1) using the
// package default source. Results differ between runs; use RandFrom with a
// seeded Source for reproducible arrays.
//
// Example:
//
//	r, _ := ndarray.Rand[float64](Shape{2, 3})
func Rand[T Float](shape Shape) (*NDArray[T], error) {
	return RandFrom[T](nil, shape)
}

// RandFrom is like Rand but draws from src. A nil src uses the default source.
func RandFrom[T Float](src *Source, shape Shape) (*NDArray[T], error) {
	a, err := alloc[T](shape)
	if err != nil {
		return nil, err
	}
	drawInto(orDefault(src), a, func(r *rand.Rand) float64 {
		for {
			// float64 values just below 1 round up to 1 in float32.
			v := r.Float64()
			if T(v) < 1 {
				return v
			}
		}
	})
	return a, nil
}

// Uniform creates an array of values drawn uniformly from [low, high).
// Returns ErrInvalidRange unless low < high and high-low is finite in T.
func Uniform[T Float](src *Source, shape Shape, low, high T) (*NDArray[T], error) {
	if !(low < high) {
		return nil, fmt.Errorf("uniform: %w: [%v, %v)", ErrInvalidRange, low, high)
	}
	span := high - low
	if math.IsInf(float64(span), 0) {
		return nil, fmt.Errorf("uniform: %w: width of [%v, %v) overflows", ErrInvalidRange, low, high)
	}
	a, err := RandFrom[T](src, shape)
	if err != nil {
		return nil, err
	}
	for i, v := range a.data {
		x := low + v*span
		// Rounding can land exactly on high.
		if x >= high {
			x = low
		}
		a.data[i] = x
	}
	return a, nil
}

// Randn creates an array of values drawn from the standard normal
// distribution N(0, 1). A nil src uses the default source.
func Randn[T Float](src *Source, shape Shape) (*NDArray[T], error) {
	a, err := alloc[T](shape)
	if err != nil {
		return nil, err
	}
	drawInto(orDefault(src), a, func(r *rand.Rand) float64 { return r.NormFloat64() })
	return a, nil
}
