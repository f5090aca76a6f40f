// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/born-ml/ndarray/internal/ndarray"
	"github.com/born-ml/ndarray/internal/parallel"
)

// Shape represents array dimensions, outermost first.
type Shape = ndarray.Shape

// Store is the flat backing storage of an Array.
type Store[T any] = ndarray.Store[T]

// SliceStore is a Store backed by a slice.
type SliceStore[T any] = ndarray.SliceStore[T]

// Array is an N-dimensional strided view over a Store.
type Array[T any] = ndarray.Array[T]

// ShapeMismatchError describes conflicting shapes.
type ShapeMismatchError = ndarray.ShapeMismatchError

// Option configures a driver call.
type Option = ndarray.Option

// ParallelConfig controls how WithParallel splits work.
type ParallelConfig = parallel.Config

// Errors.
var (
	ErrShapeMismatch = ndarray.ErrShapeMismatch
	ErrInvalidShape  = ndarray.ErrInvalidShape
	ErrDataLength    = ndarray.ErrDataLength
	ErrIndex         = ndarray.ErrIndex
)

// DefaultParallelConfig returns a configuration using every CPU.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// WithParallel splits the outermost output dimension across goroutines.
func WithParallel(cfg ParallelConfig) Option {
	return ndarray.WithParallel(cfg)
}

// BroadcastShapes computes the broadcast shape of equal-rank shapes.
//
// Example:
//
//	s, err := ndarray.BroadcastShapes(ndarray.Shape{3, 1}, ndarray.Shape{1, 4})
//	// s = [3 4]
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	return ndarray.BroadcastShapes(shapes...)
}

// IsBroadcastCompatible reports whether two equal-rank shapes broadcast.
func IsBroadcastCompatible(a, b Shape) bool {
	return ndarray.IsBroadcastCompatible(a, b)
}

// BroadcastStrides maps strides of shape in onto out, zeroing size-1 dimensions.
func BroadcastStrides(in, out Shape, strides []int) []int {
	return ndarray.BroadcastStrides(in, out, strides)
}

// New creates a contiguous array over store.
func New[T any](store Store[T], shape Shape) (*Array[T], error) {
	return ndarray.New[T](store, shape)
}

// NewView creates an array over store with explicit strides and offset.
func NewView[T any](store Store[T], shape Shape, strides []int, offset int) (*Array[T], error) {
	return ndarray.NewView[T](store, shape, strides, offset)
}

// FromSlice creates an array that indexes data directly.
func FromSlice[T any](data []T, shape Shape) (*Array[T], error) {
	return ndarray.FromSlice(data, shape)
}

// FromNested builds an array from nested slices.
func FromNested[T any](v any) (*Array[T], error) {
	return ndarray.FromNested[T](v)
}

// FromArraylike wraps any array-like value recognized by package array.
func FromArraylike(x any, shape Shape) (*Array[any], error) {
	return ndarray.FromArraylike(x, shape)
}

// Zeros allocates a zero-valued array.
func Zeros[T any](shape Shape) *Array[T] {
	return ndarray.Zeros[T](shape)
}

// Filled allocates an array with every element set to v.
func Filled[T any](v T, shape Shape) *Array[T] {
	return ndarray.Filled(v, shape)
}

// Unary applies f to every element of x, writing into out.
func Unary[T, U any](x *Array[T], out *Array[U], f func(T) U, opts ...Option) {
	ndarray.Unary(x, out, f, opts...)
}

// Binary applies f to broadcast pairs, writing into out.
func Binary[T1, T2, U any](x *Array[T1], y *Array[T2], out *Array[U], f func(T1, T2) U, opts ...Option) {
	ndarray.Binary(x, y, out, f, opts...)
}

// Ternary applies f to broadcast triples, writing into out.
func Ternary[T1, T2, T3, U any](x *Array[T1], y *Array[T2], z *Array[T3], out *Array[U], f func(T1, T2, T3) U, opts ...Option) {
	ndarray.Ternary(x, y, z, out, f, opts...)
}

// Quaternary applies f to broadcast 4-tuples, writing into out.
func Quaternary[T1, T2, T3, T4, U any](x *Array[T1], y *Array[T2], z *Array[T3], v *Array[T4], out *Array[U], f func(T1, T2, T3, T4) U, opts ...Option) {
	ndarray.Quaternary(x, y, z, v, out, f, opts...)
}

// Quinary applies f to broadcast 5-tuples, writing into out.
func Quinary[T1, T2, T3, T4, T5, U any](x *Array[T1], y *Array[T2], z *Array[T3], v *Array[T4], u *Array[T5], out *Array[U], f func(T1, T2, T3, T4, T5) U, opts ...Option) {
	ndarray.Quinary(x, y, z, v, u, out, f, opts...)
}

// MaskedUnary is Unary writing only where mask is 0.
func MaskedUnary[T, U any](x *Array[T], mask *Array[uint8], out *Array[U], f func(T) U, opts ...Option) {
	ndarray.MaskedUnary(x, mask, out, f, opts...)
}

// MaskedBinary is Binary writing only where mask is 0.
func MaskedBinary[T1, T2, U any](x *Array[T1], y *Array[T2], mask *Array[uint8], out *Array[U], f func(T1, T2) U, opts ...Option) {
	ndarray.MaskedBinary(x, y, mask, out, f, opts...)
}

// MaskedTernary is Ternary writing only where mask is 0.
func MaskedTernary[T1, T2, T3, U any](x *Array[T1], y *Array[T2], z *Array[T3], mask *Array[uint8], out *Array[U], f func(T1, T2, T3) U, opts ...Option) {
	ndarray.MaskedTernary(x, y, z, mask, out, f, opts...)
}

// MaskedQuaternary is Quaternary writing only where mask is 0.
func MaskedQuaternary[T1, T2, T3, T4, U any](x *Array[T1], y *Array[T2], z *Array[T3], v *Array[T4], mask *Array[uint8], out *Array[U], f func(T1, T2, T3, T4) U, opts ...Option) {
	ndarray.MaskedQuaternary(x, y, z, v, mask, out, f, opts...)
}

// MaskedQuinary is Quinary writing only where mask is 0.
func MaskedQuinary[T1, T2, T3, T4, T5, U any](x *Array[T1], y *Array[T2], z *Array[T3], v *Array[T4], u *Array[T5], mask *Array[uint8], out *Array[U], f func(T1, T2, T3, T4, T5) U, opts ...Option) {
	ndarray.MaskedQuinary(x, y, z, v, u, mask, out, f, opts...)
}

// MapUnary returns a new array of f applied to x.
func MapUnary[T, U any](x *Array[T], f func(T) U, opts ...Option) *Array[U] {
	return ndarray.MapUnary(x, f, opts...)
}

// MapBinary broadcasts x and y into a new array of f's results.
func MapBinary[T1, T2, U any](x *Array[T1], y *Array[T2], f func(T1, T2) U, opts ...Option) (*Array[U], error) {
	return ndarray.MapBinary(x, y, f, opts...)
}

// MapTernary broadcasts three inputs into a new array of f's results.
func MapTernary[T1, T2, T3, U any](x *Array[T1], y *Array[T2], z *Array[T3], f func(T1, T2, T3) U, opts ...Option) (*Array[U], error) {
	return ndarray.MapTernary(x, y, z, f, opts...)
}

// MapQuaternary broadcasts four inputs into a new array of f's results.
func MapQuaternary[T1, T2, T3, T4, U any](x *Array[T1], y *Array[T2], z *Array[T3], v *Array[T4], f func(T1, T2, T3, T4) U, opts ...Option) (*Array[U], error) {
	return ndarray.MapQuaternary(x, y, z, v, f, opts...)
}

// MapQuinary broadcasts five inputs into a new array of f's results.
func MapQuinary[T1, T2, T3, T4, T5, U any](x *Array[T1], y *Array[T2], z *Array[T3], v *Array[T4], u *Array[T5], f func(T1, T2, T3, T4, T5) U, opts ...Option) (*Array[U], error) {
	return ndarray.MapQuinary(x, y, z, v, u, f, opts...)
}
