package ndarray

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")
	ErrInvalidShape  = errors.New("ndarray: invalid shape")
	ErrDataLength    = errors.New("ndarray: data length does not match shape")
	ErrIndex         = errors.New("ndarray: index out of range")
)

// ShapeMismatchError describes the dimension at which shapes conflict.
type ShapeMismatchError struct {
	Dim    int     // Offending dimension, or -1 when ranks differ
	Sizes  []int   // Sizes at Dim, or ranks when Dim is -1
	Shapes []Shape // Shapes that were compared
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	if e.Dim < 0 {
		return fmt.Sprintf("%v: ranks differ %v (shapes %v)", ErrShapeMismatch, e.Sizes, e.Shapes)
	}
	return fmt.Sprintf("%v: dimension %d sizes %v (shapes %v)", ErrShapeMismatch, e.Dim, e.Sizes, e.Shapes)
}

// Is reports whether target is ErrShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}
