package array

// BoolArray is an accessor array of booleans stored as 0/1 bytes.
type BoolArray struct {
	buf []uint8
}

// NewBoolArray allocates an array of n false values.
func NewBoolArray(n int) *BoolArray {
	return &BoolArray{buf: make([]uint8, n)}
}

// BoolArrayFrom wraps buf without copying. Nonzero bytes read as true.
func BoolArrayFrom(buf []uint8) *BoolArray {
	return &BoolArray{buf: buf}
}

// BoolArrayFromValues copies values into a new array.
func BoolArrayFromValues(values []bool) *BoolArray {
	buf := make([]uint8, len(values))
	copy(buf, ReinterpretBool(values))
	return &BoolArray{buf: buf}
}

// Len returns the number of elements.
func (a *BoolArray) Len() int {
	if a == nil {
		return 0
	}
	return len(a.buf)
}

// At returns element i. It panics if i is out of range.
func (a *BoolArray) At(i int) bool {
	return a.buf[i] != 0
}

// SetAt stores v at element i. It panics if i is out of range.
func (a *BoolArray) SetAt(i int, v bool) {
	if v {
		a.buf[i] = 1
	} else {
		a.buf[i] = 0
	}
}

// Get implements Accessor.
func (a *BoolArray) Get(i int) (any, bool) {
	if i < 0 || i >= len(a.buf) {
		return nil, false
	}
	return a.At(i), true
}

// Set implements Accessor.
func (a *BoolArray) Set(i int, v any) bool {
	b, ok := toBool(v)
	if !ok || i < 0 || i >= len(a.buf) {
		return false
	}
	a.SetAt(i, b)
	return true
}

// Uint8View returns the backing store.
func (a *BoolArray) Uint8View() []uint8 {
	return a.buf
}

// Uint8ClampedArray is a byte slice whose setter clamps values to [0, 255]
// instead of wrapping.
type Uint8ClampedArray []uint8

// NewUint8ClampedArray allocates a zeroed array of n elements.
func NewUint8ClampedArray(n int) Uint8ClampedArray {
	return make(Uint8ClampedArray, n)
}
