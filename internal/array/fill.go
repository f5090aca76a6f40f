package array

import (
	"fmt"
	"reflect"
)

// Fill sets every element of x to v.
func Fill(x any, v any) error {
	obj, err := ArraylikeToObject(x)
	if err != nil {
		return err
	}
	if !obj.AccessorProtocol {
		if fillDirect(obj.Data, v) {
			return nil
		}
		return fmt.Errorf("%w: %T into %s", ErrInvalidValue, v, obj.DataType)
	}

	n, _ := Len(x)
	set := obj.Accessors.Set
	for i := 0; i < n; i++ {
		if !set(x, i, v) {
			return fmt.Errorf("%w: %T into %s", ErrInvalidValue, v, obj.DataType)
		}
	}
	return nil
}

func fillDirect(x any, v any) bool {
	switch a := x.(type) {
	case []float64:
		return fillSlice(a, v, toFloat[float64])
	case []float32:
		return fillSlice(a, v, toFloat[float32])
	case []int64:
		return fillSlice(a, v, toInteger[int64])
	case []int32:
		return fillSlice(a, v, toInteger[int32])
	case []int16:
		return fillSlice(a, v, toInteger[int16])
	case []int8:
		return fillSlice(a, v, toInteger[int8])
	case []uint64:
		return fillSlice(a, v, toInteger[uint64])
	case []uint32:
		return fillSlice(a, v, toInteger[uint32])
	case []uint16:
		return fillSlice(a, v, toInteger[uint16])
	case []uint8:
		return fillSlice(a, v, toInteger[uint8])
	case Uint8ClampedArray:
		return fillSlice(a, v, toClamped)
	case []complex128:
		return fillSlice(a, v, toComplex128)
	case []complex64:
		return fillSlice(a, v, toComplex64)
	case []bool:
		return fillSlice(a, v, toBool)
	case []any:
		for i := range a {
			a[i] = v
		}
		return true
	default:
		return false
	}
}

func fillSlice[S ~[]E, E any](a S, v any, conv func(any) (E, bool)) bool {
	e, ok := conv(v)
	if !ok {
		return false
	}
	for i := range a {
		a[i] = e
	}
	return true
}

// Copy copies min(len(dst), len(src)) elements from src to dst, converting
// element types as the destination setter does. It returns the number of
// elements copied.
func Copy(dst, src any) (int, error) {
	d, err := ArraylikeToObject(dst)
	if err != nil {
		return 0, fmt.Errorf("copy destination: %w", err)
	}
	s, err := ArraylikeToObject(src)
	if err != nil {
		return 0, fmt.Errorf("copy source: %w", err)
	}

	if !d.AccessorProtocol && !s.AccessorProtocol && reflect.TypeOf(dst) == reflect.TypeOf(src) {
		return reflect.Copy(reflect.ValueOf(dst), reflect.ValueOf(src)), nil
	}

	dn, _ := Len(dst)
	sn, _ := Len(src)
	n := min(dn, sn)
	get, set := s.Accessors.Get, d.Accessors.Set
	for i := 0; i < n; i++ {
		v, _ := get(src, i)
		if !set(dst, i, v) {
			return i, fmt.Errorf("%w: %s element %d into %s", ErrInvalidValue, s.DataType, i, d.DataType)
		}
	}
	return n, nil
}

// ToSlice returns the logical elements of x as a new []any.
func ToSlice(x any) ([]any, error) {
	obj, err := ArraylikeToObject(x)
	if err != nil {
		return nil, err
	}
	n, _ := Len(x)
	out := make([]any, n)
	get := obj.Accessors.Get
	for i := range out {
		out[i], _ = get(x, i)
	}
	return out, nil
}
