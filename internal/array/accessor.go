package array

import "fmt"

// Accessor is implemented by arrays whose elements are not addressable by
// plain slice indexing.
type Accessor interface {
	Len() int
	Get(i int) (any, bool)
	Set(i int, v any) bool
}

// GetFunc reads element i of x. It reports false when i is out of range or
// x is not the representation the function was resolved for.
type GetFunc func(x any, i int) (any, bool)

// SetFunc writes v to element i of x. It reports false and leaves x
// untouched when i is out of range or v cannot be converted to the element type.
type SetFunc func(x any, i int, v any) bool

// Accessors is a resolved getter/setter pair.
type Accessors struct {
	Get GetFunc
	Set SetFunc
}

// Object bundles an array-like value with its resolved accessors.
type Object struct {
	Data      any
	DataType  DataType
	Accessors Accessors

	// AccessorProtocol is true when elements must go through Accessors.
	// When false Data is a slice and may be indexed directly.
	AccessorProtocol bool
}

var (
	float64Accessors    = sliceAccessors[[]float64](toFloat[float64])
	float32Accessors    = sliceAccessors[[]float32](toFloat[float32])
	int64Accessors      = sliceAccessors[[]int64](toInteger[int64])
	int32Accessors      = sliceAccessors[[]int32](toInteger[int32])
	int16Accessors      = sliceAccessors[[]int16](toInteger[int16])
	int8Accessors       = sliceAccessors[[]int8](toInteger[int8])
	uint64Accessors     = sliceAccessors[[]uint64](toInteger[uint64])
	uint32Accessors     = sliceAccessors[[]uint32](toInteger[uint32])
	uint16Accessors     = sliceAccessors[[]uint16](toInteger[uint16])
	uint8Accessors      = sliceAccessors[[]uint8](toInteger[uint8])
	uint8cAccessors     = sliceAccessors[Uint8ClampedArray](toClamped)
	complex128Accessors = sliceAccessors[[]complex128](toComplex128)
	complex64Accessors  = sliceAccessors[[]complex64](toComplex64)
	boolAccessors       = sliceAccessors[[]bool](toBool)
	genericAccessors    = sliceAccessors[[]any](func(v any) (any, bool) { return v, true })

	complex128ArrayAccessors = Accessors{
		Get: func(x any, i int) (any, bool) {
			a, ok := x.(*Complex128Array)
			if !ok || a == nil || i < 0 || i >= a.Len() {
				return nil, false
			}
			return complex(a.buf[2*i], a.buf[2*i+1]), true
		},
		Set: func(x any, i int, v any) bool {
			a, ok := x.(*Complex128Array)
			if !ok || a == nil {
				return false
			}
			return a.Set(i, v)
		},
	}
	complex64ArrayAccessors = Accessors{
		Get: func(x any, i int) (any, bool) {
			a, ok := x.(*Complex64Array)
			if !ok || a == nil || i < 0 || i >= a.Len() {
				return nil, false
			}
			return complex(a.buf[2*i], a.buf[2*i+1]), true
		},
		Set: func(x any, i int, v any) bool {
			a, ok := x.(*Complex64Array)
			if !ok || a == nil {
				return false
			}
			return a.Set(i, v)
		},
	}
	boolArrayAccessors = Accessors{
		Get: func(x any, i int) (any, bool) {
			a, ok := x.(*BoolArray)
			if !ok || a == nil || i < 0 || i >= len(a.buf) {
				return nil, false
			}
			return a.buf[i] != 0, true
		},
		Set: func(x any, i int, v any) bool {
			a, ok := x.(*BoolArray)
			if !ok || a == nil {
				return false
			}
			return a.Set(i, v)
		},
	}
	interfaceAccessors = Accessors{
		Get: func(x any, i int) (any, bool) {
			a, ok := x.(Accessor)
			if !ok {
				return nil, false
			}
			return a.Get(i)
		},
		Set: func(x any, i int, v any) bool {
			a, ok := x.(Accessor)
			if !ok {
				return false
			}
			return a.Set(i, v)
		},
	}
	unrecognizedAccessors = Accessors{
		Get: func(any, int) (any, bool) { return nil, false },
		Set: func(any, int, any) bool { return false },
	}
)

// sliceAccessors builds direct-indexing accessors for slices of type S.
func sliceAccessors[S ~[]E, E any](conv func(any) (E, bool)) Accessors {
	return Accessors{
		Get: func(x any, i int) (any, bool) {
			a, ok := x.(S)
			if !ok || i < 0 || i >= len(a) {
				return nil, false
			}
			return a[i], true
		},
		Set: func(x any, i int, v any) bool {
			a, ok := x.(S)
			if !ok || i < 0 || i >= len(a) {
				return false
			}
			e, ok := conv(v)
			if !ok {
				return false
			}
			a[i] = e
			return true
		},
	}
}

// resolve inspects the concrete type of x once.
func resolve(x any) (dt DataType, acc Accessors, protocol, ok bool) {
	switch x.(type) {
	case []float64:
		return Float64, float64Accessors, false, true
	case []float32:
		return Float32, float32Accessors, false, true
	case []int64:
		return Int64, int64Accessors, false, true
	case []int32:
		return Int32, int32Accessors, false, true
	case []int16:
		return Int16, int16Accessors, false, true
	case []int8:
		return Int8, int8Accessors, false, true
	case []uint64:
		return Uint64, uint64Accessors, false, true
	case []uint32:
		return Uint32, uint32Accessors, false, true
	case []uint16:
		return Uint16, uint16Accessors, false, true
	case []uint8:
		return Uint8, uint8Accessors, false, true
	case Uint8ClampedArray:
		return Uint8c, uint8cAccessors, false, true
	case []complex128:
		return Complex128, complex128Accessors, false, true
	case []complex64:
		return Complex64, complex64Accessors, false, true
	case []bool:
		return Bool, boolAccessors, false, true
	case []any:
		return Generic, genericAccessors, false, true
	case *Complex128Array:
		return Complex128, complex128ArrayAccessors, true, true
	case *Complex64Array:
		return Complex64, complex64ArrayAccessors, true, true
	case *BoolArray:
		return Bool, boolArrayAccessors, true, true
	case Accessor:
		return Generic, interfaceAccessors, true, true
	default:
		return 0, unrecognizedAccessors, false, false
	}
}

// DataTypeOf returns the data type of x, or false if x is not a recognized
// array-like value.
func DataTypeOf(x any) (DataType, bool) {
	dt, _, _, ok := resolve(x)
	return dt, ok
}

// IsAccessorArray reports whether x must be accessed through accessors.
func IsAccessorArray(x any) bool {
	_, _, protocol, _ := resolve(x)
	return protocol
}

// ResolveGetter returns a getter for x's representation.
// Unrecognized values get a getter that never yields a value.
func ResolveGetter(x any) GetFunc {
	_, acc, _, _ := resolve(x)
	return acc.Get
}

// ResolveSetter returns a setter for x's representation.
// Unrecognized values get a setter that never writes.
func ResolveSetter(x any) SetFunc {
	_, acc, _, _ := resolve(x)
	return acc.Set
}

// ArraylikeToObject resolves x once so callers can choose between a direct
// indexing loop and an accessor loop.
func ArraylikeToObject(x any) (Object, error) {
	dt, acc, protocol, ok := resolve(x)
	if !ok {
		return Object{}, fmt.Errorf("%w: %T", ErrUnrecognizedDataType, x)
	}
	return Object{
		Data:             x,
		DataType:         dt,
		Accessors:        acc,
		AccessorProtocol: protocol,
	}, nil
}

// Len returns the number of logical elements in x.
func Len(x any) (int, error) {
	switch a := x.(type) {
	case []float64:
		return len(a), nil
	case []float32:
		return len(a), nil
	case []int64:
		return len(a), nil
	case []int32:
		return len(a), nil
	case []int16:
		return len(a), nil
	case []int8:
		return len(a), nil
	case []uint64:
		return len(a), nil
	case []uint32:
		return len(a), nil
	case []uint16:
		return len(a), nil
	case []uint8:
		return len(a), nil
	case Uint8ClampedArray:
		return len(a), nil
	case []complex128:
		return len(a), nil
	case []complex64:
		return len(a), nil
	case []bool:
		return len(a), nil
	case []any:
		return len(a), nil
	case Accessor:
		return a.Len(), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnrecognizedDataType, x)
	}
}
