package ndarray

import (
	"fmt"
	"reflect"
)

// FromNested builds an array from nested slices such as [][]float64 or
// []any{[]any{1.0, 2.0}, ...}. The shape is taken from the first element at
// each level; ragged input is rejected with ErrInvalidShape.
func FromNested[T any](v any) (*Array[T], error) {
	elemType := reflect.TypeOf((*T)(nil)).Elem()
	root := unwrap(reflect.ValueOf(v))
	if !root.IsValid() {
		return nil, fmt.Errorf("%w: nil value", ErrInvalidShape)
	}

	var shape Shape
	for cur := root; isLevel(cur, elemType); {
		shape = append(shape, cur.Len())
		if cur.Len() == 0 {
			break
		}
		cur = unwrap(cur.Index(0))
	}

	data := make([]T, 0, shape.NumElements())
	if err := flatten(root, shape, 0, elemType, &data); err != nil {
		return nil, err
	}
	return FromSlice(data, shape)
}

func flatten[T any](v reflect.Value, shape Shape, depth int, elemType reflect.Type, data *[]T) error {
	if depth == len(shape) {
		if !v.IsValid() {
			var zero T
			*data = append(*data, zero)
			return nil
		}
		if !v.Type().AssignableTo(elemType) {
			return fmt.Errorf("%w: element of type %s is not %s", ErrInvalidShape, v.Type(), elemType)
		}
		var e T
		reflect.ValueOf(&e).Elem().Set(v)
		*data = append(*data, e)
		return nil
	}
	if !isLevel(v, elemType) || v.Len() != shape[depth] {
		return fmt.Errorf("%w: ragged nesting at depth %d, want length %d", ErrInvalidShape, depth, shape[depth])
	}
	for i := 0; i < v.Len(); i++ {
		if err := flatten(unwrap(v.Index(i)), shape, depth+1, elemType, data); err != nil {
			return err
		}
	}
	return nil
}

// isLevel reports whether v is a nesting level rather than an element.
func isLevel(v reflect.Value, elemType reflect.Type) bool {
	if !v.IsValid() {
		return false
	}
	if k := v.Kind(); k != reflect.Slice && k != reflect.Array {
		return false
	}
	return elemType.Kind() == reflect.Interface || !v.Type().AssignableTo(elemType)
}

func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	return v
}

// ToNested returns the elements as nested []any, one level per dimension.
// A rank-0 array yields its single element.
func (a *Array[T]) ToNested() any {
	flat := a.ToSlice()
	if len(a.shape) == 0 {
		return flat[0]
	}
	pos := 0
	var build func(d int) []any
	build = func(d int) []any {
		out := make([]any, a.shape[d])
		for i := range out {
			if d == len(a.shape)-1 {
				out[i] = flat[pos]
				pos++
			} else {
				out[i] = build(d + 1)
			}
		}
		return out
	}
	return build(0)
}
