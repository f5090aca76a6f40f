package array

import "errors"

// Common errors.
var (
	// ErrUnrecognizedDataType is returned when a value or tag does not name a supported data type.
	ErrUnrecognizedDataType = errors.New("array: unrecognized data type")

	// ErrOddLength is returned when an interleaved complex buffer has an odd number of components.
	ErrOddLength = errors.New("array: interleaved buffer length must be even")
)

// ErrInvalidValue is returned when a value cannot be stored in an array's element type.
var ErrInvalidValue = errors.New("array: value not representable in element type")
