// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides strided N-dimensional arrays and broadcasting
// elementwise drivers.
//
// # Overview
//
// An Array[T] is a flat Store plus a shape, row-major strides and an
// offset. Stores are either slices (direct indexing) or accessor arrays
// such as array.Complex128Array. Arrays of any array-like value can be
// built with FromArraylike, which reads and writes through the accessors
// resolved by package array.
//
// # Broadcasting
//
// Shapes of equal rank broadcast NumPy style: per dimension the sizes must
// agree, ignoring 1s. Ranks are never extended implicitly; use Shape.Pad.
//
//	x, _ := ndarray.FromSlice([]float64{1, 2}, ndarray.Shape{1, 2})
//	y, _ := ndarray.FromSlice([]float64{3, 4}, ndarray.Shape{2, 1})
//	z, _ := ndarray.MapBinary(x, y, func(a, b float64) float64 { return a + b })
//	// z = [[4 5] [5 6]]
//
// # Drivers
//
// Unary, Binary, Ternary, Quaternary and Quinary write into a caller
// supplied output of the broadcast shape, calling the callback exactly once
// per output element, outermost dimension first. Size-1 input dimensions
// are replayed with zero strides. If the output has a zero dimension the
// callback is never called and the output is not touched. Inputs whose
// shapes cannot broadcast to the output cause a panic wrapping
// ErrShapeMismatch.
//
// The Masked variants take an extra uint8 mask and only call the callback
// and write the output where the mask is 0.
//
// The Map variants compute the broadcast shape, allocate the output and
// return ErrShapeMismatch instead of panicking.
//
// # Concurrency
//
// Drivers run on the calling goroutine unless WithParallel is given, in
// which case the outermost output dimension is split across goroutines and
// the callback must be safe for concurrent use.
package ndarray
