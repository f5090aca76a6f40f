package array

import "math"

type integer interface {
	~int64 | ~int32 | ~int16 | ~int8 | ~uint64 | ~uint32 | ~uint16 | ~uint8
}

type float interface {
	~float64 | ~float32
}

// toFloat converts a real numeric value. Complex and bool values are rejected.
func toFloat[T float](v any) (T, bool) {
	switch n := v.(type) {
	case float64:
		return T(n), true
	case float32:
		return T(n), true
	case int:
		return T(n), true
	case int64:
		return T(n), true
	case int32:
		return T(n), true
	case int16:
		return T(n), true
	case int8:
		return T(n), true
	case uint:
		return T(n), true
	case uint64:
		return T(n), true
	case uint32:
		return T(n), true
	case uint16:
		return T(n), true
	case uint8:
		return T(n), true
	default:
		return 0, false
	}
}

// toInteger converts a real numeric value with wrap-around on overflow.
// Floats are truncated toward zero; NaN and infinities become 0.
func toInteger[T integer](v any) (T, bool) {
	switch n := v.(type) {
	case int:
		return T(n), true
	case int64:
		return T(n), true
	case int32:
		return T(n), true
	case int16:
		return T(n), true
	case int8:
		return T(n), true
	case uint:
		return T(n), true
	case uint64:
		return T(n), true
	case uint32:
		return T(n), true
	case uint16:
		return T(n), true
	case uint8:
		return T(n), true
	case float64:
		return truncate[T](n), true
	case float32:
		return truncate[T](float64(n)), true
	default:
		return 0, false
	}
}

func truncate[T integer](f float64) T {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Mod(math.Trunc(f), 1<<64)
	if f < 0 {
		if f < -(1 << 63) {
			f += 1 << 64
		}
		return T(int64(f))
	}
	return T(uint64(f))
}

// toClamped converts to a byte, clamping to [0, 255] and rounding half to even.
func toClamped(v any) (uint8, bool) {
	f, ok := toFloat[float64](v)
	if !ok {
		return 0, false
	}
	switch {
	case math.IsNaN(f), f <= 0:
		return 0, true
	case f >= 255:
		return 255, true
	default:
		return uint8(math.RoundToEven(f)), true
	}
}

func toComplex128(v any) (complex128, bool) {
	switch n := v.(type) {
	case complex128:
		return n, true
	case complex64:
		return complex128(n), true
	default:
		f, ok := toFloat[float64](v)
		return complex(f, 0), ok
	}
}

func toComplex64(v any) (complex64, bool) {
	c, ok := toComplex128(v)
	return complex64(c), ok
}

// toBool accepts bools and numbers; any nonzero number is true.
func toBool(v any) (bool, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	if c, ok := v.(complex128); ok {
		return c != 0, true
	}
	if c, ok := v.(complex64); ok {
		return c != 0, true
	}
	f, ok := toFloat[float64](v)
	return f != 0 && !math.IsNaN(f), ok
}
