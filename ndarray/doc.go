// Copyright 2025 NumBits Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides a generic, fixed-shape N-dimensional numeric array.
//
// # Overview
//
// An NDArray[T] owns a single contiguous buffer of T laid out in row-major
// order (the last dimension varies fastest), plus the shape and strides that
// map coordinates onto it. The package provides:
//   - Construction (New, Zeros, Ones, Full, FromSlice, Arange, Linspace, Eye)
//   - Coordinate indexing (At, Set) with bounds checking
//   - Element-wise arithmetic on equally shaped arrays (Add, Subtract,
//     Multiply, Divide) and element-wise math (Abs, Sign, Clip, Sqrt, Exp, Log,
//     Pow, Floor, Ceil, Round, Sin, Cos, Tan, Where)
//   - Joining and slicing along an axis (Concatenate, Stack, Split, Take,
//     Tile, Repeat)
//   - Whole-array reductions (Sum, Mean, Variance, Stddev, Min, Max, Dot)
//   - Uniform and normal random arrays with an optional seeded Source
//   - A stable textual dump (String, Fprint, Print)
//
// # Basic Usage
//
//	a, _ := ndarray.New[float64](ndarray.Shape{5}, 1.5)
//	b, _ := ndarray.New[float64](ndarray.Shape{5}, 2.0)
//
//	c, _ := ndarray.Add(a, b)      // every element 3.5
//	d, _ := ndarray.Multiply(c, b) // every element 7
//
//	ndarray.Sum(d)          // 35
//	ndarray.Mean(d)         // 7, nil
//	ndarray.Dot(a, b)       // 15, nil
//
// # Supported Element Types
//
// Any type satisfying Numeric: the signed and unsigned integer types and
// float32/float64 (including named types built on them). Random generation,
// Divide, the math package wrappers (Sqrt, Exp, Log, Pow, ...) and Linspace
// require a Float element type.
//
// # Numeric Policy
//
// Sum and Dot accumulate in T in row-major order, so integer results wrap on
// overflow. Mean, Variance and Stddev are computed in float64 and use the
// population convention (divide by N). Reductions that divide by the element
// count return ErrDegenerateReduction for empty arrays, whatever T is.
//
// # Shapes
//
// Binary operations require identical shapes: there is no broadcasting, and
// two arrays with equal element counts but different shapes are rejected with
// ErrShapeMismatch. Dot accepts any rank and treats both operands as flat
// vectors once their shapes match.
//
// # Errors
//
// Failures are reported through the sentinel errors ErrShapeMismatch,
// ErrOutOfBounds, ErrDegenerateReduction, ErrInvalidShape, ErrDataLength,
// ErrInvalidRange, ErrRank and ErrAxis; match them with errors.Is. No
// operation panics on invalid input except the Must and MustAt helpers.
// Shapes whose element count overflows int, or whose buffer is too large to
// allocate, are rejected with ErrInvalidShape.
//
// # Axes
//
// Functions taking an axis accept negative values counting from the end
// (-1 is the last axis) and return ErrAxis outside the rank.
//
// # Randomness
//
// Rand draws from a package-level Source seeded differently on every run.
// For reproducible arrays create a Source with NewSource and pass it to
// RandFrom, Uniform or Randn. Sources are safe for concurrent use.
//
// # Output Format
//
// String renders a shape line followed by a nested listing:
//
//	shape: (2, 3)
//	[[5, 5, 5],
//	 [5, 5, 42]]
package ndarray
