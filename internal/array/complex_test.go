package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplex128ArrayLayout(t *testing.T) {
	a := NewComplex128Array(2)
	a.SetAt(1, complex(3, 4))

	assert.Equal(t, 2, a.Len())
	assert.Equal(t, []float64{0, 0, 3, 4}, a.Float64View())
	assert.Equal(t, complex(3, 4), a.At(1))
}

func TestComplex128ArrayFrom_SharesBuffer(t *testing.T) {
	buf := []float64{1, 2, 3, 4}
	a, err := Complex128ArrayFrom(buf)
	require.NoError(t, err)

	a.SetAt(0, complex(9, 8))
	assert.Equal(t, []float64{9, 8, 3, 4}, buf)

	_, err = Complex128ArrayFrom([]float64{1, 2, 3})
	require.ErrorIs(t, err, ErrOddLength)
}

func TestComplex64ArrayFrom(t *testing.T) {
	a, err := Complex64ArrayFrom([]float32{1, 2})
	require.NoError(t, err)
	assert.Equal(t, complex64(complex(1, 2)), a.At(0))

	_, err = Complex64ArrayFrom([]float32{1})
	require.ErrorIs(t, err, ErrOddLength)
}

func TestFromValuesCopies(t *testing.T) {
	values := []complex128{complex(1, 1)}
	a := Complex128ArrayFromValues(values)
	values[0] = 0
	assert.Equal(t, complex(1, 1), a.At(0))

	flags := []bool{true}
	b := BoolArrayFromValues(flags)
	flags[0] = false
	assert.True(t, b.At(0))
}

func TestReinterpret(t *testing.T) {
	c := []complex128{complex(1, 2), complex(3, 4)}
	view := ReinterpretComplex128(c)
	assert.Equal(t, []float64{1, 2, 3, 4}, view)
	view[3] = -4
	assert.Equal(t, complex(3, -4), c[1])

	c64 := []complex64{complex(5, 6)}
	assert.Equal(t, []float32{5, 6}, ReinterpretComplex64(c64))

	b := []bool{true, false, true}
	assert.Equal(t, []uint8{1, 0, 1}, ReinterpretBool(b))

	assert.Nil(t, ReinterpretComplex128(nil))
	assert.Nil(t, ReinterpretComplex64(nil))
	assert.Nil(t, ReinterpretBool(nil))
}
