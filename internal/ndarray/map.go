package ndarray

// MapUnary returns a new array holding f applied to every element of x.
func MapUnary[T, U any](x *Array[T], f func(T) U, opts ...Option) *Array[U] {
	out := Zeros[U](x.shape)
	Unary(x, out, f, opts...)
	return out
}

// MapBinary broadcasts x and y and returns a new array of f's results.
func MapBinary[T1, T2, U any](x *Array[T1], y *Array[T2], f func(T1, T2) U, opts ...Option) (*Array[U], error) {
	shape, err := BroadcastShapes(x.shape, y.shape)
	if err != nil {
		return nil, err
	}
	out := Zeros[U](shape)
	Binary(x, y, out, f, opts...)
	return out, nil
}

// MapTernary broadcasts x, y and z and returns a new array of f's results.
func MapTernary[T1, T2, T3, U any](x *Array[T1], y *Array[T2], z *Array[T3], f func(T1, T2, T3) U, opts ...Option) (*Array[U], error) {
	shape, err := BroadcastShapes(x.shape, y.shape, z.shape)
	if err != nil {
		return nil, err
	}
	out := Zeros[U](shape)
	Ternary(x, y, z, out, f, opts...)
	return out, nil
}

// MapQuaternary broadcasts four inputs and returns a new array of f's results.
func MapQuaternary[T1, T2, T3, T4, U any](x *Array[T1], y *Array[T2], z *Array[T3], v *Array[T4], f func(T1, T2, T3, T4) U, opts ...Option) (*Array[U], error) {
	shape, err := BroadcastShapes(x.shape, y.shape, z.shape, v.shape)
	if err != nil {
		return nil, err
	}
	out := Zeros[U](shape)
	Quaternary(x, y, z, v, out, f, opts...)
	return out, nil
}

// MapQuinary broadcasts five inputs and returns a new array of f's results.
func MapQuinary[T1, T2, T3, T4, T5, U any](x *Array[T1], y *Array[T2], z *Array[T3], v *Array[T4], u *Array[T5], f func(T1, T2, T3, T4, T5) U, opts ...Option) (*Array[U], error) {
	shape, err := BroadcastShapes(x.shape, y.shape, z.shape, v.shape, u.shape)
	if err != nil {
		return nil, err
	}
	out := Zeros[U](shape)
	Quinary(x, y, z, v, u, out, f, opts...)
	return out, nil
}
