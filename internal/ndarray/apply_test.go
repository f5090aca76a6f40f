package ndarray

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/internal/array"
	"github.com/born-ml/ndarray/internal/parallel"
)

func mustFromSlice[T any](t *testing.T, data []T, shape Shape) *Array[T] {
	t.Helper()
	a, err := FromSlice(data, shape)
	require.NoError(t, err)
	return a
}

func arange(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// recoverError runs f and returns the error it panicked with.
func recoverError(f func()) (err error) {
	defer func() {
		r := recover()
		if e, ok := r.(error); ok {
			err = e
		} else if r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	f()
	return nil
}

func add(a, b float64) float64 { return a + b }

func TestBinary_Broadcast5D(t *testing.T) {
	x := mustFromSlice(t, []float64{1, 2}, Shape{2}.Pad(5))
	y := mustFromSlice(t, []float64{3, 4}, Shape{2, 1}.Pad(5))
	out := Zeros[float64](Shape{2, 2, 2, 2, 2})

	var calls int
	Binary(x, y, out, func(a, b float64) float64 {
		calls++
		return a + b
	})

	assert.Equal(t, 32, calls)

	block := []any{[]any{4.0, 5.0}, []any{5.0, 6.0}}
	l2 := []any{block, block}
	l1 := []any{l2, l2}
	want := []any{l1, l1}
	assert.Empty(t, cmp.Diff(want, out.ToNested()))
}

func TestBinary_ZeroDimensionShortCircuit(t *testing.T) {
	x := mustFromSlice(t, arange(4), Shape{1, 1, 1, 2, 2})
	y := mustFromSlice(t, arange(4), Shape{1, 1, 1, 2, 2})

	backing := SliceStore[float64](make([]float64, 32))
	out, err := NewView[float64](backing, Shape{0, 2, 2, 2, 2}, Shape{0, 2, 2, 2, 2}.ComputeStrides(), 0)
	require.NoError(t, err)

	Binary(x, y, out, func(float64, float64) float64 {
		t.Fatal("callback must not be called for an empty output")
		return 0
	})

	assert.Equal(t, make([]float64, 32), []float64(backing))
	assert.Empty(t, out.ToSlice())
}

func TestDrivers_ZeroDimensionSkipsShapeChecks(t *testing.T) {
	x := mustFromSlice(t, arange(3), Shape{3})
	out := Zeros[float64](Shape{0})

	assert.NotPanics(t, func() {
		Unary(x, out, func(v float64) float64 { return v })
	})
}

func TestBinary_CallsPerElement(t *testing.T) {
	shapes := []struct {
		x, y, out Shape
	}{
		{Shape{1, 4}, Shape{3, 1}, Shape{3, 4}},
		{Shape{2, 1, 3}, Shape{1, 5, 1}, Shape{2, 5, 3}},
		{Shape{1, 1, 1, 1}, Shape{2, 2, 2, 2}, Shape{2, 2, 2, 2}},
	}
	for _, s := range shapes {
		x := Zeros[float64](s.x)
		y := Zeros[float64](s.y)
		out := Zeros[float64](s.out)

		var calls int
		Binary(x, y, out, func(a, b float64) float64 { calls++; return 0 })
		assert.Equal(t, s.out.NumElements(), calls, "%v", s.out)
	}
}

func TestUnary_VisitOrder(t *testing.T) {
	x := mustFromSlice(t, arange(24), Shape{2, 3, 4})
	out := Zeros[float64](Shape{2, 3, 4})

	var seen []float64
	Unary(x, out, func(v float64) float64 {
		seen = append(seen, v)
		return -v
	})

	assert.Equal(t, arange(24), seen)
	for i, v := range out.ToSlice() {
		assert.Equal(t, -float64(i), v)
	}
}

func TestUnary_Broadcast(t *testing.T) {
	x := mustFromSlice(t, []float64{1, 2, 3}, Shape{1, 3})
	out := Zeros[float64](Shape{2, 3})

	Unary(x, out, func(v float64) float64 { return v * 10 })
	assert.Equal(t, []float64{10, 20, 30, 10, 20, 30}, out.ToSlice())
}

func TestUnary_RankZero(t *testing.T) {
	x := mustFromSlice(t, []int{7}, Shape{})
	out := Zeros[string](Shape{})

	Unary(x, out, func(v int) string { return fmt.Sprint(v) })
	assert.Equal(t, "7", out.At())
}

func TestTernary(t *testing.T) {
	cond := mustFromSlice(t, []bool{true, false}, Shape{2, 1})
	x := mustFromSlice(t, []float64{1, 2, 3}, Shape{1, 3})
	y := mustFromSlice(t, []float64{-1}, Shape{1, 1})
	out := Zeros[float64](Shape{2, 3})

	Ternary(cond, x, y, out, func(c bool, a, b float64) float64 {
		if c {
			return a
		}
		return b
	})
	assert.Equal(t, []float64{1, 2, 3, -1, -1, -1}, out.ToSlice())
}

func TestQuaternaryAndQuinary(t *testing.T) {
	a := mustFromSlice(t, []int{1, 2}, Shape{2, 1})
	b := mustFromSlice(t, []int{10, 20, 30}, Shape{1, 3})
	c := mustFromSlice(t, []int{100}, Shape{1, 1})
	d := mustFromSlice(t, []int{1000, 2000, 3000, 4000, 5000, 6000}, Shape{2, 3})
	e := mustFromSlice(t, []int{10000, 20000}, Shape{2, 1})

	out4 := Zeros[int](Shape{2, 3})
	Quaternary(a, b, c, d, out4, func(p, q, r, s int) int { return p + q + r + s })
	assert.Equal(t, []int{1111, 2121, 3131, 4112, 5122, 6132}, out4.ToSlice())

	out5 := Zeros[int](Shape{2, 3})
	Quinary(a, b, c, d, e, out5, func(p, q, r, s, u int) int { return p + q + r + s + u })
	assert.Equal(t, []int{11111, 12121, 13131, 24112, 25122, 26132}, out5.ToSlice())
}

func TestDrivers_ShapeMismatchPanics(t *testing.T) {
	x := Zeros[float64](Shape{2, 3})
	y := Zeros[float64](Shape{2, 4})
	out := Zeros[float64](Shape{2, 4})

	err := recoverError(func() { Binary(x, y, out, add) })
	require.ErrorIs(t, err, ErrShapeMismatch)
	assert.Contains(t, err.Error(), "binary: operand 0")

	var sme *ShapeMismatchError
	require.True(t, errors.As(err, &sme))
	assert.Equal(t, 1, sme.Dim)

	err = recoverError(func() { Unary(Zeros[float64](Shape{4}), out, func(v float64) float64 { return v }) })
	require.ErrorIs(t, err, ErrShapeMismatch)
	require.True(t, errors.As(err, &sme))
	assert.Equal(t, -1, sme.Dim)
}

func TestBinary_AccessorStores(t *testing.T) {
	xs := array.Complex128ArrayFromValues([]complex128{complex(1, 1), complex(2, 2)})
	ys := array.Complex128ArrayFromValues([]complex128{complex(0, 1)})
	outs := array.NewComplex128Array(2)

	x, err := New[complex128](xs, Shape{2})
	require.NoError(t, err)
	y, err := New[complex128](ys, Shape{1})
	require.NoError(t, err)
	out, err := New[complex128](outs, Shape{2})
	require.NoError(t, err)

	Binary(x, y, out, func(a, b complex128) complex128 { return a * b })
	assert.Equal(t, []float64{-1, 1, -2, 2}, outs.Float64View())

	_, ok := out.Slice()
	assert.False(t, ok, "accessor-backed arrays have no direct slice")
}

func TestBinary_Arraylike(t *testing.T) {
	x, err := FromArraylike([]float32{1, 2, 3}, Shape{1, 3})
	require.NoError(t, err)
	y, err := FromArraylike(array.BoolArrayFromValues([]bool{true, false}), Shape{2, 1})
	require.NoError(t, err)
	outBuf := make([]float64, 6)
	out, err := FromArraylike(outBuf, Shape{2, 3})
	require.NoError(t, err)

	Binary(x, y, out, func(a, b any) any {
		if b.(bool) {
			return a
		}
		return 0
	})
	assert.Equal(t, []float64{1, 2, 3, 0, 0, 0}, outBuf)
}

func TestFromArraylike_Errors(t *testing.T) {
	_, err := FromArraylike([]string{"a"}, Shape{1})
	require.ErrorIs(t, err, array.ErrUnrecognizedDataType)

	_, err = FromArraylike([]float64{1, 2}, Shape{3})
	require.ErrorIs(t, err, ErrDataLength)
}

func TestUnary_StridedViews(t *testing.T) {
	base := SliceStore[float64](arange(6))

	transposed, err := NewView[float64](base, Shape{3, 2}, []int{1, 3}, 0)
	require.NoError(t, err)
	out := Zeros[float64](Shape{3, 2})
	Unary(transposed, out, func(v float64) float64 { return v })
	assert.Equal(t, []float64{0, 3, 1, 4, 2, 5}, out.ToSlice())

	reversed, err := NewView[float64](base, Shape{6}, []int{-1}, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 4, 3, 2, 1, 0}, reversed.ToSlice())

	_, err = NewView[float64](base, Shape{6}, []int{-1}, 4)
	require.ErrorIs(t, err, ErrIndex)
	_, err = NewView[float64](base, Shape{2, 2}, []int{1}, 0)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestBinary_WriteThroughView(t *testing.T) {
	backing := make([]float64, 6)
	out, err := NewView[float64](SliceStore[float64](backing), Shape{2, 2}, []int{3, 1}, 1)
	require.NoError(t, err)

	x := mustFromSlice(t, []float64{1, 2}, Shape{1, 2})
	y := mustFromSlice(t, []float64{10, 20}, Shape{2, 1})
	Binary(x, y, out, add)

	assert.Equal(t, []float64{0, 11, 12, 0, 21, 22}, backing)
}

func TestBinary_Parallel(t *testing.T) {
	x := mustFromSlice(t, arange(64), Shape{16, 4})
	y := mustFromSlice(t, arange(4), Shape{1, 4})
	cfg := parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1}

	var calls atomic.Int64
	got, err := MapBinary(x, y, func(a, b float64) float64 {
		calls.Add(1)
		return a * b
	}, WithParallel(cfg))
	require.NoError(t, err)

	want, err := MapBinary(x, y, func(a, b float64) float64 { return a * b })
	require.NoError(t, err)

	assert.Equal(t, int64(64), calls.Load())
	assert.Equal(t, want.ToSlice(), got.ToSlice())
}

func TestMapBinary_Mismatch(t *testing.T) {
	_, err := MapBinary(Zeros[float64](Shape{2}), Zeros[float64](Shape{3}), add)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestMapFamily(t *testing.T) {
	x := mustFromSlice(t, []float64{1, 2}, Shape{2, 1})
	y := mustFromSlice(t, []float64{3, 4, 5}, Shape{1, 3})

	neg := MapUnary(x, func(v float64) float64 { return -v })
	assert.Equal(t, Shape{2, 1}, neg.Shape())
	assert.Equal(t, []float64{-1, -2}, neg.ToSlice())

	sum, err := MapTernary(x, y, x, func(a, b, c float64) float64 { return a + b + c })
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6, 7, 7, 8, 9}, sum.ToSlice())

	prod, err := MapQuaternary(x, y, x, y, func(a, b, c, d float64) float64 { return a * b * c * d })
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 16, 25, 36, 64, 100}, prod.ToSlice())

	mx, err := MapQuinary(x, y, x, y, x, func(a, b, c, d, e float64) float64 {
		return math.Max(a, math.Max(b, math.Max(c, math.Max(d, e))))
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4, 5, 3, 4, 5}, mx.ToSlice())
}
