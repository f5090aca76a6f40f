package ndarray

// layout is the addressing information of one operand.
type layout struct {
	shape   Shape
	strides []int
	offset  int
}

// walker visits an output index space one innermost row at a time,
// outermost dimension first. For every operand it tracks the store offset
// of the row's first element and the stride along the row; operands with
// size 1 in a dimension get stride 0 there and replay the same elements.
type walker struct {
	shape   Shape   // output shape restricted to [lo, hi) along dim 0
	strides [][]int // broadcast strides per operand
	off     []int   // row start offset per operand
	inner   []int   // innermost stride per operand
	n       int     // row length
	idx     []int   // odometer over the outer dimensions
	started bool
}

// newWalker prepares a walk of out restricted to [lo, hi) along dimension 0.
// For rank-0 outputs lo and hi are ignored.
func newWalker(out Shape, lo, hi int, ops ...layout) *walker {
	rank := len(out)
	sub := out.Clone()
	if rank > 0 {
		sub[0] = hi - lo
	}

	w := &walker{
		shape:   sub,
		strides: make([][]int, len(ops)),
		off:     make([]int, len(ops)),
		inner:   make([]int, len(ops)),
		n:       1,
	}
	for k, op := range ops {
		st := BroadcastStrides(op.shape, out, op.strides)
		w.strides[k] = st
		w.off[k] = op.offset
		if rank > 0 {
			w.off[k] += lo * st[0]
			w.inner[k] = st[rank-1]
		}
	}
	if rank > 0 {
		w.n = sub[rank-1]
		w.idx = make([]int, rank-1)
	}
	return w
}

// next advances to the next row. It returns false when the walk is done.
func (w *walker) next() bool {
	if !w.started {
		w.started = true
		return !w.shape.HasZero()
	}
	for d := len(w.shape) - 2; d >= 0; d-- {
		w.idx[d]++
		for k := range w.off {
			w.off[k] += w.strides[k][d]
		}
		if w.idx[d] < w.shape[d] {
			return true
		}
		for k := range w.off {
			w.off[k] -= w.strides[k][d] * w.shape[d]
		}
		w.idx[d] = 0
	}
	return false
}

// dim0 returns the extent of the outermost dimension, or 1 for rank 0.
func dim0(s Shape) int {
	if len(s) == 0 {
		return 1
	}
	return s[0]
}
