package array

import "fmt"

// Complex128Array is an accessor array of complex128 values stored as
// interleaved real/imaginary float64 components.
type Complex128Array struct {
	buf []float64
}

// NewComplex128Array allocates a zeroed array of n elements.
func NewComplex128Array(n int) *Complex128Array {
	return &Complex128Array{buf: make([]float64, 2*n)}
}

// Complex128ArrayFrom wraps an interleaved buffer without copying.
func Complex128ArrayFrom(buf []float64) (*Complex128Array, error) {
	if len(buf)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddLength, len(buf))
	}
	return &Complex128Array{buf: buf}, nil
}

// Complex128ArrayFromValues copies values into a new array.
func Complex128ArrayFromValues(values []complex128) *Complex128Array {
	buf := make([]float64, 2*len(values))
	copy(buf, ReinterpretComplex128(values))
	return &Complex128Array{buf: buf}
}

// Len returns the number of complex elements.
func (a *Complex128Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.buf) / 2
}

// At returns element i. It panics if i is out of range.
func (a *Complex128Array) At(i int) complex128 {
	return complex(a.buf[2*i], a.buf[2*i+1])
}

// SetAt stores v at element i. It panics if i is out of range.
func (a *Complex128Array) SetAt(i int, v complex128) {
	a.buf[2*i] = real(v)
	a.buf[2*i+1] = imag(v)
}

// Get implements Accessor.
func (a *Complex128Array) Get(i int) (any, bool) {
	if i < 0 || i >= a.Len() {
		return nil, false
	}
	return a.At(i), true
}

// Set implements Accessor.
func (a *Complex128Array) Set(i int, v any) bool {
	c, ok := toComplex128(v)
	if !ok || i < 0 || i >= a.Len() {
		return false
	}
	a.SetAt(i, c)
	return true
}

// Float64View returns the interleaved backing store.
func (a *Complex128Array) Float64View() []float64 {
	return a.buf
}

// Complex64Array is an accessor array of complex64 values stored as
// interleaved real/imaginary float32 components.
type Complex64Array struct {
	buf []float32
}

// NewComplex64Array allocates a zeroed array of n elements.
func NewComplex64Array(n int) *Complex64Array {
	return &Complex64Array{buf: make([]float32, 2*n)}
}

// Complex64ArrayFrom wraps an interleaved buffer without copying.
func Complex64ArrayFrom(buf []float32) (*Complex64Array, error) {
	if len(buf)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrOddLength, len(buf))
	}
	return &Complex64Array{buf: buf}, nil
}

// Complex64ArrayFromValues copies values into a new array.
func Complex64ArrayFromValues(values []complex64) *Complex64Array {
	buf := make([]float32, 2*len(values))
	copy(buf, ReinterpretComplex64(values))
	return &Complex64Array{buf: buf}
}

// Len returns the number of complex elements.
func (a *Complex64Array) Len() int {
	if a == nil {
		return 0
	}
	return len(a.buf) / 2
}

// At returns element i. It panics if i is out of range.
func (a *Complex64Array) At(i int) complex64 {
	return complex(a.buf[2*i], a.buf[2*i+1])
}

// SetAt stores v at element i. It panics if i is out of range.
func (a *Complex64Array) SetAt(i int, v complex64) {
	a.buf[2*i] = real(v)
	a.buf[2*i+1] = imag(v)
}

// Get implements Accessor.
func (a *Complex64Array) Get(i int) (any, bool) {
	if i < 0 || i >= a.Len() {
		return nil, false
	}
	return a.At(i), true
}

// Set implements Accessor.
func (a *Complex64Array) Set(i int, v any) bool {
	c, ok := toComplex64(v)
	if !ok || i < 0 || i >= a.Len() {
		return false
	}
	a.SetAt(i, c)
	return true
}

// Float32View returns the interleaved backing store.
func (a *Complex64Array) Float32View() []float32 {
	return a.buf
}
