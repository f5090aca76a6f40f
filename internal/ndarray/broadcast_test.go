package ndarray

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name   string
		shapes []Shape
		want   Shape
	}{
		{"same", []Shape{{3, 5}, {3, 5}}, Shape{3, 5}},
		{"column", []Shape{{3, 1}, {3, 5}}, Shape{3, 5}},
		{"outer", []Shape{{1, 5}, {3, 1}}, Shape{3, 5}},
		{"three", []Shape{{1, 1, 4}, {2, 1, 1}, {1, 3, 1}}, Shape{2, 3, 4}},
		{"all ones", []Shape{{1, 1}, {1, 1}}, Shape{1, 1}},
		{"zero with one", []Shape{{0, 2}, {1, 2}}, Shape{0, 2}},
		{"zero agreed", []Shape{{0, 2}, {0, 2}}, Shape{0, 2}},
		{"rank zero", []Shape{{}, {}}, Shape{}},
		{"single", []Shape{{4, 1}}, Shape{4, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BroadcastShapes(tt.shapes...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBroadcastShapes_NoInput(t *testing.T) {
	got, err := BroadcastShapes()
	require.NoError(t, err)
	assert.Equal(t, Shape{}, got)
}

func TestBroadcastShapes_Mismatch(t *testing.T) {
	_, err := BroadcastShapes(Shape{2, 3, 4}, Shape{2, 1, 5})
	require.ErrorIs(t, err, ErrShapeMismatch)

	var sme *ShapeMismatchError
	require.True(t, errors.As(err, &sme))
	assert.Equal(t, 2, sme.Dim)
	assert.Equal(t, []int{4, 5}, sme.Sizes)
	assert.Contains(t, err.Error(), "dimension 2")
}

func TestBroadcastShapes_NegativeDimension(t *testing.T) {
	_, err := BroadcastShapes(Shape{-1}, Shape{1})
	require.ErrorIs(t, err, ErrInvalidShape)
	assert.NotErrorIs(t, err, ErrShapeMismatch)

	_, err = BroadcastShapes(Shape{2, 3}, Shape{2, -3})
	require.ErrorIs(t, err, ErrInvalidShape)
}

func TestBroadcastShapes_ZeroConflict(t *testing.T) {
	_, err := BroadcastShapes(Shape{0, 2}, Shape{3, 2})
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestBroadcastShapes_RankMismatch(t *testing.T) {
	_, err := BroadcastShapes(Shape{2, 3}, Shape{3})

	var sme *ShapeMismatchError
	require.True(t, errors.As(err, &sme))
	assert.Equal(t, -1, sme.Dim)
	assert.Equal(t, []int{2, 1}, sme.Sizes)

	got, err := BroadcastShapes(Shape{2, 3}, Shape{3}.Pad(2))
	require.NoError(t, err)
	assert.Equal(t, Shape{2, 3}, got)
}

func TestBroadcastShapes_OrderIndependent(t *testing.T) {
	a, b, c := Shape{1, 3, 1}, Shape{2, 1, 1}, Shape{1, 3, 4}
	perms := [][]Shape{
		{a, b, c}, {a, c, b}, {b, a, c}, {b, c, a}, {c, a, b}, {c, b, a},
	}
	for _, p := range perms {
		got, err := BroadcastShapes(p...)
		require.NoError(t, err)
		assert.Equal(t, Shape{2, 3, 4}, got)
	}
}

func TestIsBroadcastCompatible_Symmetric(t *testing.T) {
	shapes := []Shape{{1, 3}, {2, 3}, {2, 1}, {2, 4}, {0, 3}, {1, 1}, {3}}
	for _, a := range shapes {
		for _, b := range shapes {
			assert.Equal(t, IsBroadcastCompatible(a, b), IsBroadcastCompatible(b, a), "%v %v", a, b)

			_, err := BroadcastShapes(a, b)
			assert.Equal(t, err == nil, IsBroadcastCompatible(a, b), "%v %v", a, b)
		}
	}
}

func TestBroadcastStrides(t *testing.T) {
	in := Shape{3, 1, 4}
	out := Shape{3, 5, 4}
	assert.Equal(t, []int{4, 0, 1}, BroadcastStrides(in, out, in.ComputeStrides()))
}
