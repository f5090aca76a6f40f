// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array

import (
	"github.com/born-ml/ndarray/internal/array"
)

// DataType is the logical element type of an array-like value.
type DataType = array.DataType

// Data type constants.
const (
	Float64    DataType = array.Float64
	Float32    DataType = array.Float32
	Int64      DataType = array.Int64
	Int32      DataType = array.Int32
	Int16      DataType = array.Int16
	Int8       DataType = array.Int8
	Uint64     DataType = array.Uint64
	Uint32     DataType = array.Uint32
	Uint16     DataType = array.Uint16
	Uint8      DataType = array.Uint8
	Uint8c     DataType = array.Uint8c
	Complex128 DataType = array.Complex128
	Complex64  DataType = array.Complex64
	Bool       DataType = array.Bool
	Generic    DataType = array.Generic
)

// Errors.
var (
	ErrUnrecognizedDataType = array.ErrUnrecognizedDataType
	ErrOddLength            = array.ErrOddLength
	ErrInvalidValue         = array.ErrInvalidValue
)

// Accessor is implemented by arrays read and written through Get/Set.
type Accessor = array.Accessor

// GetFunc reads one element; see ResolveGetter.
type GetFunc = array.GetFunc

// SetFunc writes one element; see ResolveSetter.
type SetFunc = array.SetFunc

// Accessors is a resolved getter/setter pair.
type Accessors = array.Accessors

// Object bundles an array-like value with its resolved accessors.
type Object = array.Object

// Complex128Array stores complex128 values as interleaved float64 components.
type Complex128Array = array.Complex128Array

// Complex64Array stores complex64 values as interleaved float32 components.
type Complex64Array = array.Complex64Array

// BoolArray stores booleans as 0/1 bytes.
type BoolArray = array.BoolArray

// Uint8ClampedArray is a byte slice whose setter clamps to [0, 255].
type Uint8ClampedArray = array.Uint8ClampedArray

// ParseDataType returns the data type named by tag.
func ParseDataType(tag string) (DataType, error) {
	return array.ParseDataType(tag)
}

// DataTypes returns every supported data type.
func DataTypes() []DataType {
	return array.DataTypes()
}

// DataTypeOf returns the data type of x, or false if x is not recognized.
//
// Example:
//
//	dt, ok := array.DataTypeOf(array.NewComplex64Array(4)) // complex64, true
func DataTypeOf(x any) (DataType, bool) {
	return array.DataTypeOf(x)
}

// IsAccessorArray reports whether x must be accessed through accessors.
func IsAccessorArray(x any) bool {
	return array.IsAccessorArray(x)
}

// ResolveGetter returns a getter specialised to x's representation.
func ResolveGetter(x any) GetFunc {
	return array.ResolveGetter(x)
}

// ResolveSetter returns a setter specialised to x's representation.
func ResolveSetter(x any) SetFunc {
	return array.ResolveSetter(x)
}

// ArraylikeToObject resolves x once, reporting whether the accessor path applies.
func ArraylikeToObject(x any) (Object, error) {
	return array.ArraylikeToObject(x)
}

// Len returns the number of logical elements in x.
func Len(x any) (int, error) {
	return array.Len(x)
}

// Fill sets every element of x to v.
func Fill(x any, v any) error {
	return array.Fill(x, v)
}

// Copy copies min(len(dst), len(src)) elements from src to dst.
func Copy(dst, src any) (int, error) {
	return array.Copy(dst, src)
}

// ToSlice returns the logical elements of x as a new []any.
func ToSlice(x any) ([]any, error) {
	return array.ToSlice(x)
}

// NewComplex128Array allocates a zeroed array of n elements.
func NewComplex128Array(n int) *Complex128Array {
	return array.NewComplex128Array(n)
}

// Complex128ArrayFrom wraps an interleaved buffer without copying.
func Complex128ArrayFrom(buf []float64) (*Complex128Array, error) {
	return array.Complex128ArrayFrom(buf)
}

// Complex128ArrayFromValues copies values into a new array.
func Complex128ArrayFromValues(values []complex128) *Complex128Array {
	return array.Complex128ArrayFromValues(values)
}

// NewComplex64Array allocates a zeroed array of n elements.
func NewComplex64Array(n int) *Complex64Array {
	return array.NewComplex64Array(n)
}

// Complex64ArrayFrom wraps an interleaved buffer without copying.
func Complex64ArrayFrom(buf []float32) (*Complex64Array, error) {
	return array.Complex64ArrayFrom(buf)
}

// Complex64ArrayFromValues copies values into a new array.
func Complex64ArrayFromValues(values []complex64) *Complex64Array {
	return array.Complex64ArrayFromValues(values)
}

// NewBoolArray allocates an array of n false values.
func NewBoolArray(n int) *BoolArray {
	return array.NewBoolArray(n)
}

// BoolArrayFrom wraps buf without copying.
func BoolArrayFrom(buf []uint8) *BoolArray {
	return array.BoolArrayFrom(buf)
}

// BoolArrayFromValues copies values into a new array.
func BoolArrayFromValues(values []bool) *BoolArray {
	return array.BoolArrayFromValues(values)
}

// NewUint8ClampedArray allocates a zeroed clamped array.
func NewUint8ClampedArray(n int) Uint8ClampedArray {
	return array.NewUint8ClampedArray(n)
}

// ReinterpretComplex128 views x as interleaved float64 components without copying.
func ReinterpretComplex128(x []complex128) []float64 {
	return array.ReinterpretComplex128(x)
}

// ReinterpretComplex64 views x as interleaved float32 components without copying.
func ReinterpretComplex64(x []complex64) []float32 {
	return array.ReinterpretComplex64(x)
}

// ReinterpretBool views x as 0/1 bytes without copying.
func ReinterpretBool(x []bool) []uint8 {
	return array.ReinterpretBool(x)
}
