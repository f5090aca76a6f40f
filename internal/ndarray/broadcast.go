package ndarray

import "fmt"

// BroadcastShapes computes the broadcast shape of equal-rank shapes.
//
// For every dimension the sizes must agree, ignoring 1s:
//
//	(3, 1) + (3, 5) → (3, 5)
//	(1, 5) + (3, 1) → (3, 5)
//	(0, 2) + (1, 2) → (0, 2)
//	(3, 4) + (3, 5) → error at dimension 1
//
// Ranks are not extended; use Shape.Pad first. Incompatible shapes return a
// *ShapeMismatchError, negative dimensions ErrInvalidShape.
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	if len(shapes) == 0 {
		return Shape{}, nil
	}
	for i, s := range shapes {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("operand %d: %w", i, err)
		}
	}

	rank := len(shapes[0])
	for _, s := range shapes[1:] {
		if len(s) != rank {
			ranks := make([]int, len(shapes))
			for i, s := range shapes {
				ranks[i] = len(s)
			}
			return nil, &ShapeMismatchError{Dim: -1, Sizes: ranks, Shapes: shapes}
		}
	}

	out := make(Shape, rank)
	for d := 0; d < rank; d++ {
		size := 1
		for _, s := range shapes {
			dim := s[d]
			switch {
			case dim == 1:
			case size == 1:
				size = dim
			case dim != size:
				sizes := make([]int, len(shapes))
				for i, s := range shapes {
					sizes[i] = s[d]
				}
				return nil, &ShapeMismatchError{Dim: d, Sizes: sizes, Shapes: shapes}
			}
		}
		out[d] = size
	}
	return out, nil
}

// IsBroadcastCompatible reports whether two equal-rank shapes broadcast.
func IsBroadcastCompatible(a, b Shape) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] && a[i] != 1 && b[i] != 1 {
			return false
		}
	}
	return true
}

// BroadcastStrides maps the strides of an array with shape in onto out.
// Dimensions where in has size 1 get stride 0 so the same element is replayed.
// in and out must have equal rank.
func BroadcastStrides(in, out Shape, strides []int) []int {
	bs := make([]int, len(out))
	for i := range out {
		if in[i] == 1 {
			bs[i] = 0
		} else {
			bs[i] = strides[i]
		}
	}
	return bs
}

// checkBroadcastable panics unless in can be broadcast to out.
// The panic value is an error wrapping ErrShapeMismatch.
func checkBroadcastable(op string, pos int, in, out Shape) {
	if len(in) != len(out) {
		panic(fmt.Errorf("%s: operand %d: %w", op, pos,
			&ShapeMismatchError{Dim: -1, Sizes: []int{len(in), len(out)}, Shapes: []Shape{in, out}}))
	}
	for d := range out {
		if in[d] != 1 && in[d] != out[d] {
			panic(fmt.Errorf("%s: operand %d: %w", op, pos,
				&ShapeMismatchError{Dim: d, Sizes: []int{in[d], out[d]}, Shapes: []Shape{in, out}}))
		}
	}
}
