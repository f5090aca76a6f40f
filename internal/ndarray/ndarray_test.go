package ndarray

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	_, err := FromSlice([]float64{1, 2, 3}, Shape{2, 2})
	require.ErrorIs(t, err, ErrDataLength)

	_, err = FromSlice([]float64{}, Shape{-1})
	require.ErrorIs(t, err, ErrInvalidShape)

	a, err := FromSlice([]float64{}, Shape{0, 3})
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())
}

func TestArrayAccess(t *testing.T) {
	a, err := FromSlice(arange(6), Shape{2, 3})
	require.NoError(t, err)

	assert.Equal(t, 2, a.Rank())
	assert.Equal(t, []int{3, 1}, a.Strides())
	assert.Equal(t, 5.0, a.At(1, 2))

	a.Set(42, 0, 1)
	assert.Equal(t, 42.0, a.At(0, 1))

	v, ok := a.Get(2, 0)
	assert.False(t, ok)
	assert.Zero(t, v)
	_, ok = a.Get(0)
	assert.False(t, ok)

	assert.Panics(t, func() { a.At(0, 3) })
	assert.Panics(t, func() { a.Set(1, -1, 0) })
}

func TestArraySlice(t *testing.T) {
	data := arange(4)
	a, err := FromSlice(data, Shape{2, 2})
	require.NoError(t, err)

	s, ok := a.Slice()
	require.True(t, ok)
	s[0] = 9
	assert.Equal(t, 9.0, data[0])
	assert.True(t, a.IsContiguous())

	view, err := NewView[float64](SliceStore[float64](data), Shape{2, 2}, []int{1, 2}, 0)
	require.NoError(t, err)
	assert.False(t, view.IsContiguous())
	_, ok = view.Slice()
	assert.False(t, ok)
}

func TestFilled(t *testing.T) {
	a := Filled("x", Shape{2, 1})
	assert.Equal(t, []string{"x", "x"}, a.ToSlice())
	assert.Panics(t, func() { Zeros[int](Shape{-2}) })
}

func TestFromNested(t *testing.T) {
	a, err := FromNested[float64]([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, a.Shape())
	assert.Equal(t, arange(7)[1:], a.ToSlice())

	b, err := FromNested[float64]([]any{[]any{1.0}, []any{2.0}})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 1}, b.Shape())

	g, err := FromNested[any]([]any{[]any{"a", nil}, []any{1, 2.5}})
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 2}, g.Shape())
	assert.Equal(t, []any{"a", nil, 1, 2.5}, g.ToSlice())

	s, err := FromNested[int](7)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Rank())
	assert.Equal(t, 7, s.At())
}

func TestFromNested_Errors(t *testing.T) {
	_, err := FromNested[float64]([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, ErrInvalidShape)

	_, err = FromNested[float64]([]any{1.0, "two"})
	require.ErrorIs(t, err, ErrInvalidShape)

	_, err = FromNested[float64](nil)
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestToNested(t *testing.T) {
	a, err := FromSlice(arange(6), Shape{1, 2, 3})
	require.NoError(t, err)

	want := []any{[]any{
		[]any{0.0, 1.0, 2.0},
		[]any{3.0, 4.0, 5.0},
	}}
	assert.Empty(t, cmp.Diff(want, a.ToNested()))

	back, err := FromNested[float64](a.ToNested())
	require.NoError(t, err)
	assert.Equal(t, a.Shape(), back.Shape())
	assert.Equal(t, a.ToSlice(), back.ToSlice())
}
