package array

import "unsafe"

// ReinterpretComplex128 returns the real/imaginary components of x as a
// []float64 sharing x's memory. Element i occupies indices 2i and 2i+1.
func ReinterpretComplex128(x []complex128) []float64 {
	if len(x) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy view, complex128 is two packed float64
	return unsafe.Slice((*float64)(unsafe.Pointer(&x[0])), 2*len(x))
}

// ReinterpretComplex64 returns the components of x as a []float32 sharing x's memory.
func ReinterpretComplex64(x []complex64) []float32 {
	if len(x) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy view, complex64 is two packed float32
	return unsafe.Slice((*float32)(unsafe.Pointer(&x[0])), 2*len(x))
}

// ReinterpretBool returns x as a []uint8 of 0/1 bytes sharing x's memory.
// Writing values other than 0 or 1 through the view is undefined.
func ReinterpretBool(x []bool) []uint8 {
	if len(x) == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy view, bool is one byte
	return unsafe.Slice((*uint8)(unsafe.Pointer(&x[0])), len(x))
}
