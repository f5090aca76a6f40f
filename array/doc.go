// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package array resolves element accessors for heterogeneous array-like values.
//
// # Overview
//
// Algorithms that work over "any array" need to read and write elements
// without branching on the concrete representation in their inner loop.
// This package resolves the representation once and hands back a
// getter/setter pair:
//
//	get, set := array.ResolveGetter(x), array.ResolveSetter(x)
//	for i := 0; i < n; i++ {
//	    v, _ := get(x, i)
//	    set(y, i, v)
//	}
//
// # Representations
//
// Plain Go slices ([]float64, []int32, []complex128, []bool, []any, ...)
// are indexed directly. Accessor arrays store their logical elements in a
// different layout and must go through the accessors:
//   - Complex128Array, Complex64Array: interleaved real/imaginary floats
//   - BoolArray: one 0/1 byte per element
//   - any user type implementing Accessor
//
// ArraylikeToObject reports which path applies so callers can pick a
// direct loop or an accessor loop up front.
//
// # Errors
//
// Accessors never fail loudly: out-of-range reads return (nil, false) and
// rejected writes return false. Only resolution of an unrecognized value
// through ArraylikeToObject, Len, Fill, Copy or ToSlice reports
// ErrUnrecognizedDataType.
package array
