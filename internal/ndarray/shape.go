// Package ndarray provides strided N-dimensional arrays and broadcasting
// elementwise drivers over them.
package ndarray

import "fmt"

// Shape represents the dimensions of an array, outermost first.
type Shape []int

// NumElements returns the total number of elements.
// A rank-0 shape has one element; any zero dimension gives zero.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks that no dimension is negative.
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d is %d", ErrInvalidShape, i, dim)
		}
	}
	return nil
}

// HasZero reports whether any dimension is zero.
func (s Shape) HasZero() bool {
	for _, dim := range s {
		if dim == 0 {
			return true
		}
	}
	return false
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Pad returns the shape left-padded with 1s to the given rank.
// Shapes already at or above rank are returned as a copy.
func (s Shape) Pad(rank int) Shape {
	if len(s) >= rank {
		return s.Clone()
	}
	out := make(Shape, rank)
	offset := rank - len(s)
	for i := 0; i < offset; i++ {
		out[i] = 1
	}
	copy(out[offset:], s)
	return out
}
