package ndarray

import "fmt"

// Array is an N-dimensional view over a flat Store with row-major strides.
type Array[T any] struct {
	store   Store[T]
	data    []T // non-nil when store is a SliceStore
	shape   Shape
	strides []int
	offset  int
}

// New creates a contiguous row-major array over store.
// store.Len() must equal shape.NumElements().
func New[T any](store Store[T], shape Shape) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if n := shape.NumElements(); store.Len() != n {
		return nil, fmt.Errorf("%w: have %d, shape %v needs %d", ErrDataLength, store.Len(), shape, n)
	}
	return newArray(store, shape.Clone(), shape.ComputeStrides(), 0), nil
}

// NewView creates an array over store with explicit strides and offset.
// Every reachable index must lie within the store.
func NewView[T any](store Store[T], shape Shape, strides []int, offset int) (*Array[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(strides) != len(shape) {
		return nil, fmt.Errorf("%w: %d strides for rank %d", ErrInvalidShape, len(strides), len(shape))
	}
	if !shape.HasZero() {
		lo, hi := offset, offset
		for i, dim := range shape {
			span := strides[i] * (dim - 1)
			if span < 0 {
				lo += span
			} else {
				hi += span
			}
		}
		if lo < 0 || hi >= store.Len() {
			return nil, fmt.Errorf("%w: view spans [%d, %d] of %d elements", ErrIndex, lo, hi, store.Len())
		}
	}
	return newArray(store, shape.Clone(), append([]int(nil), strides...), offset), nil
}

func newArray[T any](store Store[T], shape Shape, strides []int, offset int) *Array[T] {
	a := &Array[T]{store: store, shape: shape, strides: strides, offset: offset}
	if s, ok := store.(SliceStore[T]); ok {
		a.data = s
	}
	return a
}

// FromSlice creates an array that indexes data directly.
func FromSlice[T any](data []T, shape Shape) (*Array[T], error) {
	return New[T](SliceStore[T](data), shape)
}

// Zeros allocates a zero-valued array. It panics on a negative dimension.
func Zeros[T any](shape Shape) *Array[T] {
	if err := shape.Validate(); err != nil {
		panic(fmt.Sprintf("zeros: %v", err))
	}
	return newArray[T](make(SliceStore[T], shape.NumElements()), shape.Clone(), shape.ComputeStrides(), 0)
}

// Filled allocates an array with every element set to v.
func Filled[T any](v T, shape Shape) *Array[T] {
	a := Zeros[T](shape)
	for i := range a.data {
		a.data[i] = v
	}
	return a
}

// Shape returns the array's shape.
func (a *Array[T]) Shape() Shape {
	return a.shape
}

// Strides returns the array's strides.
func (a *Array[T]) Strides() []int {
	return a.strides
}

// Offset returns the store index of the first element.
func (a *Array[T]) Offset() int {
	return a.offset
}

// Rank returns the number of dimensions.
func (a *Array[T]) Rank() int {
	return len(a.shape)
}

// Len returns the number of elements.
func (a *Array[T]) Len() int {
	return a.shape.NumElements()
}

// Store returns the backing store.
func (a *Array[T]) Store() Store[T] {
	return a.store
}

// IsContiguous reports whether the array covers its store in row-major order
// starting at offset 0.
func (a *Array[T]) IsContiguous() bool {
	if a.offset != 0 || a.store.Len() != a.Len() {
		return false
	}
	want := a.shape.ComputeStrides()
	for i := range want {
		if a.shape[i] > 1 && a.strides[i] != want[i] {
			return false
		}
	}
	return true
}

// Slice returns the backing slice when the array indexes a contiguous slice directly.
func (a *Array[T]) Slice() ([]T, bool) {
	if a.data == nil || !a.IsContiguous() {
		return nil, false
	}
	return a.data, true
}

// index maps a coordinate to a store index.
func (a *Array[T]) index(idx []int) (int, bool) {
	if len(idx) != len(a.shape) {
		return 0, false
	}
	flat := a.offset
	for i, c := range idx {
		if c < 0 || c >= a.shape[i] {
			return 0, false
		}
		flat += c * a.strides[i]
	}
	return flat, true
}

// Get returns the element at idx, or false if idx is out of range.
func (a *Array[T]) Get(idx ...int) (T, bool) {
	flat, ok := a.index(idx)
	if !ok {
		var zero T
		return zero, false
	}
	return a.store.At(flat), true
}

// At returns the element at idx. It panics if idx is out of range.
func (a *Array[T]) At(idx ...int) T {
	flat, ok := a.index(idx)
	if !ok {
		panic(fmt.Sprintf("at: %v: index %v for shape %v", ErrIndex, idx, a.shape))
	}
	return a.store.At(flat)
}

// Set stores v at idx. It panics if idx is out of range.
func (a *Array[T]) Set(v T, idx ...int) {
	flat, ok := a.index(idx)
	if !ok {
		panic(fmt.Sprintf("set: %v: index %v for shape %v", ErrIndex, idx, a.shape))
	}
	a.store.SetAt(flat, v)
}

// ToSlice copies the elements in row-major order.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, 0, a.Len())
	read := a.reader()
	w := newWalker(a.shape, 0, dim0(a.shape), a.layout())
	for w.next() {
		o, s := w.off[0], w.inner[0]
		for i := 0; i < w.n; i++ {
			out = append(out, read(o))
			o += s
		}
	}
	return out
}

func (a *Array[T]) layout() layout {
	return layout{shape: a.shape, strides: a.strides, offset: a.offset}
}

// reader resolves element reads once per call.
func (a *Array[T]) reader() func(int) T {
	if a.data != nil {
		d := a.data
		return func(i int) T { return d[i] }
	}
	return a.store.At
}

// writer resolves element writes once per call.
func (a *Array[T]) writer() func(int, T) {
	if a.data != nil {
		d := a.data
		return func(i int, v T) { d[i] = v }
	}
	return a.store.SetAt
}
