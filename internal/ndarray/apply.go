package ndarray

// Elementwise drivers.
//
// Every driver walks the index space of out, outermost dimension first,
// and calls f exactly once per output element with one element from each
// input. Inputs must have the rank of out and, per dimension, size 1 or
// the size of out; size-1 dimensions are replayed. A violation panics with
// an error wrapping ErrShapeMismatch. When out has a zero dimension the
// driver returns before checking anything: f is never called and out is
// not touched.
//
// Aliasing out with an input that it broadcasts against is unsupported.

// Unary applies f to every element of x and stores the result in out.
func Unary[T, U any](x *Array[T], out *Array[U], f func(T) U, opts ...Option) {
	if out.shape.HasZero() {
		return
	}
	checkBroadcastable("unary", 0, x.shape, out.shape)

	xr, ow := x.reader(), out.writer()
	run(out.shape, opts, func(lo, hi int) {
		w := newWalker(out.shape, lo, hi, x.layout(), out.layout())
		for w.next() {
			ox, oo := w.off[0], w.off[1]
			sx, so := w.inner[0], w.inner[1]
			for i := 0; i < w.n; i++ {
				ow(oo, f(xr(ox)))
				ox += sx
				oo += so
			}
		}
	})
}

// Binary applies f to broadcast pairs from x and y and stores the result in out.
func Binary[T1, T2, U any](x *Array[T1], y *Array[T2], out *Array[U], f func(T1, T2) U, opts ...Option) {
	if out.shape.HasZero() {
		return
	}
	checkBroadcastable("binary", 0, x.shape, out.shape)
	checkBroadcastable("binary", 1, y.shape, out.shape)

	xr, yr, ow := x.reader(), y.reader(), out.writer()
	run(out.shape, opts, func(lo, hi int) {
		w := newWalker(out.shape, lo, hi, x.layout(), y.layout(), out.layout())
		for w.next() {
			ox, oy, oo := w.off[0], w.off[1], w.off[2]
			sx, sy, so := w.inner[0], w.inner[1], w.inner[2]
			for i := 0; i < w.n; i++ {
				ow(oo, f(xr(ox), yr(oy)))
				ox += sx
				oy += sy
				oo += so
			}
		}
	})
}

// Ternary applies f to broadcast triples and stores the result in out.
func Ternary[T1, T2, T3, U any](x *Array[T1], y *Array[T2], z *Array[T3], out *Array[U], f func(T1, T2, T3) U, opts ...Option) {
	if out.shape.HasZero() {
		return
	}
	checkBroadcastable("ternary", 0, x.shape, out.shape)
	checkBroadcastable("ternary", 1, y.shape, out.shape)
	checkBroadcastable("ternary", 2, z.shape, out.shape)

	xr, yr, zr, ow := x.reader(), y.reader(), z.reader(), out.writer()
	run(out.shape, opts, func(lo, hi int) {
		w := newWalker(out.shape, lo, hi, x.layout(), y.layout(), z.layout(), out.layout())
		for w.next() {
			ox, oy, oz, oo := w.off[0], w.off[1], w.off[2], w.off[3]
			sx, sy, sz, so := w.inner[0], w.inner[1], w.inner[2], w.inner[3]
			for i := 0; i < w.n; i++ {
				ow(oo, f(xr(ox), yr(oy), zr(oz)))
				ox += sx
				oy += sy
				oz += sz
				oo += so
			}
		}
	})
}

// Quaternary applies f to broadcast 4-tuples and stores the result in out.
func Quaternary[T1, T2, T3, T4, U any](x *Array[T1], y *Array[T2], z *Array[T3], v *Array[T4], out *Array[U], f func(T1, T2, T3, T4) U, opts ...Option) {
	if out.shape.HasZero() {
		return
	}
	checkBroadcastable("quaternary", 0, x.shape, out.shape)
	checkBroadcastable("quaternary", 1, y.shape, out.shape)
	checkBroadcastable("quaternary", 2, z.shape, out.shape)
	checkBroadcastable("quaternary", 3, v.shape, out.shape)

	xr, yr, zr, vr, ow := x.reader(), y.reader(), z.reader(), v.reader(), out.writer()
	run(out.shape, opts, func(lo, hi int) {
		w := newWalker(out.shape, lo, hi, x.layout(), y.layout(), z.layout(), v.layout(), out.layout())
		for w.next() {
			o := [5]int{w.off[0], w.off[1], w.off[2], w.off[3], w.off[4]}
			for i := 0; i < w.n; i++ {
				ow(o[4], f(xr(o[0]), yr(o[1]), zr(o[2]), vr(o[3])))
				for k := range o {
					o[k] += w.inner[k]
				}
			}
		}
	})
}

// Quinary applies f to broadcast 5-tuples and stores the result in out.
func Quinary[T1, T2, T3, T4, T5, U any](x *Array[T1], y *Array[T2], z *Array[T3], v *Array[T4], u *Array[T5], out *Array[U], f func(T1, T2, T3, T4, T5) U, opts ...Option) {
	if out.shape.HasZero() {
		return
	}
	checkBroadcastable("quinary", 0, x.shape, out.shape)
	checkBroadcastable("quinary", 1, y.shape, out.shape)
	checkBroadcastable("quinary", 2, z.shape, out.shape)
	checkBroadcastable("quinary", 3, v.shape, out.shape)
	checkBroadcastable("quinary", 4, u.shape, out.shape)

	xr, yr, zr, vr, ur, ow := x.reader(), y.reader(), z.reader(), v.reader(), u.reader(), out.writer()
	run(out.shape, opts, func(lo, hi int) {
		w := newWalker(out.shape, lo, hi, x.layout(), y.layout(), z.layout(), v.layout(), u.layout(), out.layout())
		for w.next() {
			o := [6]int{w.off[0], w.off[1], w.off[2], w.off[3], w.off[4], w.off[5]}
			for i := 0; i < w.n; i++ {
				ow(o[5], f(xr(o[0]), yr(o[1]), zr(o[2]), vr(o[3]), ur(o[4])))
				for k := range o {
					o[k] += w.inner[k]
				}
			}
		}
	})
}
