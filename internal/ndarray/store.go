package ndarray

import (
	"fmt"

	"github.com/born-ml/ndarray/internal/array"
)

// Store is the flat backing storage of an Array.
//
// Accessor arrays such as *array.Complex128Array, *array.Complex64Array and
// *array.BoolArray satisfy Store directly.
type Store[T any] interface {
	Len() int
	At(i int) T
	SetAt(i int, v T)
}

// SliceStore is a Store backed by a slice and read by direct indexing.
type SliceStore[T any] []T

// Len returns the slice length.
func (s SliceStore[T]) Len() int { return len(s) }

// At returns s[i].
func (s SliceStore[T]) At(i int) T { return s[i] }

// SetAt sets s[i].
func (s SliceStore[T]) SetAt(i int, v T) { s[i] = v }

// arraylikeStore adapts any recognized array-like value through its resolved accessors.
type arraylikeStore struct {
	x   any
	n   int
	get array.GetFunc
	set array.SetFunc
}

func (s *arraylikeStore) Len() int { return s.n }

func (s *arraylikeStore) At(i int) any {
	v, _ := s.get(s.x, i)
	return v
}

func (s *arraylikeStore) SetAt(i int, v any) {
	s.set(s.x, i, v)
}

// FromArraylike wraps an array-like value (see array.DataTypeOf) as an
// Array[any] of the given shape. Elements are read and written through the
// value's resolved accessors; values the setter cannot convert are dropped.
func FromArraylike(x any, shape Shape) (*Array[any], error) {
	obj, err := array.ArraylikeToObject(x)
	if err != nil {
		return nil, err
	}
	n, err := array.Len(x)
	if err != nil {
		return nil, err
	}
	store := &arraylikeStore{x: obj.Data, n: n, get: obj.Accessors.Get, set: obj.Accessors.Set}
	a, err := New[any](store, shape)
	if err != nil {
		return nil, fmt.Errorf("from %s array: %w", obj.DataType, err)
	}
	return a, nil
}
