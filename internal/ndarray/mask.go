package ndarray

// Masked drivers behave like their unmasked counterparts except that mask,
// broadcast like any other input, gates each output element: f is called
// and out written only where the mask element is 0. Elsewhere out is left
// exactly as it was.

// MaskedUnary is Unary gated by mask.
func MaskedUnary[T, U any](x *Array[T], mask *Array[uint8], out *Array[U], f func(T) U, opts ...Option) {
	if out.shape.HasZero() {
		return
	}
	checkBroadcastable("masked unary", 0, x.shape, out.shape)
	checkBroadcastable("masked unary", 1, mask.shape, out.shape)

	xr, mr, ow := x.reader(), mask.reader(), out.writer()
	run(out.shape, opts, func(lo, hi int) {
		w := newWalker(out.shape, lo, hi, x.layout(), mask.layout(), out.layout())
		for w.next() {
			ox, om, oo := w.off[0], w.off[1], w.off[2]
			sx, sm, so := w.inner[0], w.inner[1], w.inner[2]
			for i := 0; i < w.n; i++ {
				if mr(om) == 0 {
					ow(oo, f(xr(ox)))
				}
				ox += sx
				om += sm
				oo += so
			}
		}
	})
}

// MaskedBinary is Binary gated by mask.
func MaskedBinary[T1, T2, U any](x *Array[T1], y *Array[T2], mask *Array[uint8], out *Array[U], f func(T1, T2) U, opts ...Option) {
	if out.shape.HasZero() {
		return
	}
	checkBroadcastable("masked binary", 0, x.shape, out.shape)
	checkBroadcastable("masked binary", 1, y.shape, out.shape)
	checkBroadcastable("masked binary", 2, mask.shape, out.shape)

	xr, yr, mr, ow := x.reader(), y.reader(), mask.reader(), out.writer()
	run(out.shape, opts, func(lo, hi int) {
		w := newWalker(out.shape, lo, hi, x.layout(), y.layout(), mask.layout(), out.layout())
		for w.next() {
			ox, oy, om, oo := w.off[0], w.off[1], w.off[2], w.off[3]
			sx, sy, sm, so := w.inner[0], w.inner[1], w.inner[2], w.inner[3]
			for i := 0; i < w.n; i++ {
				if mr(om) == 0 {
					ow(oo, f(xr(ox), yr(oy)))
				}
				ox += sx
				oy += sy
				om += sm
				oo += so
			}
		}
	})
}

// MaskedTernary is Ternary gated by mask.
func MaskedTernary[T1, T2, T3, U any](x *Array[T1], y *Array[T2], z *Array[T3], mask *Array[uint8], out *Array[U], f func(T1, T2, T3) U, opts ...Option) {
	if out.shape.HasZero() {
		return
	}
	checkBroadcastable("masked ternary", 0, x.shape, out.shape)
	checkBroadcastable("masked ternary", 1, y.shape, out.shape)
	checkBroadcastable("masked ternary", 2, z.shape, out.shape)
	checkBroadcastable("masked ternary", 3, mask.shape, out.shape)

	xr, yr, zr, mr, ow := x.reader(), y.reader(), z.reader(), mask.reader(), out.writer()
	run(out.shape, opts, func(lo, hi int) {
		w := newWalker(out.shape, lo, hi, x.layout(), y.layout(), z.layout(), mask.layout(), out.layout())
		for w.next() {
			o := [5]int{w.off[0], w.off[1], w.off[2], w.off[3], w.off[4]}
			for i := 0; i < w.n; i++ {
				if mr(o[3]) == 0 {
					ow(o[4], f(xr(o[0]), yr(o[1]), zr(o[2])))
				}
				for k := range o {
					o[k] += w.inner[k]
				}
			}
		}
	})
}

// MaskedQuaternary is Quaternary gated by mask.
func MaskedQuaternary[T1, T2, T3, T4, U any](x *Array[T1], y *Array[T2], z *Array[T3], v *Array[T4], mask *Array[uint8], out *Array[U], f func(T1, T2, T3, T4) U, opts ...Option) {
	if out.shape.HasZero() {
		return
	}
	checkBroadcastable("masked quaternary", 0, x.shape, out.shape)
	checkBroadcastable("masked quaternary", 1, y.shape, out.shape)
	checkBroadcastable("masked quaternary", 2, z.shape, out.shape)
	checkBroadcastable("masked quaternary", 3, v.shape, out.shape)
	checkBroadcastable("masked quaternary", 4, mask.shape, out.shape)

	xr, yr, zr, vr, mr, ow := x.reader(), y.reader(), z.reader(), v.reader(), mask.reader(), out.writer()
	run(out.shape, opts, func(lo, hi int) {
		w := newWalker(out.shape, lo, hi, x.layout(), y.layout(), z.layout(), v.layout(), mask.layout(), out.layout())
		for w.next() {
			o := [6]int{w.off[0], w.off[1], w.off[2], w.off[3], w.off[4], w.off[5]}
			for i := 0; i < w.n; i++ {
				if mr(o[4]) == 0 {
					ow(o[5], f(xr(o[0]), yr(o[1]), zr(o[2]), vr(o[3])))
				}
				for k := range o {
					o[k] += w.inner[k]
				}
			}
		}
	})
}

// MaskedQuinary is Quinary gated by mask.
func MaskedQuinary[T1, T2, T3, T4, T5, U any](x *Array[T1], y *Array[T2], z *Array[T3], v *Array[T4], u *Array[T5], mask *Array[uint8], out *Array[U], f func(T1, T2, T3, T4, T5) U, opts ...Option) {
	if out.shape.HasZero() {
		return
	}
	checkBroadcastable("masked quinary", 0, x.shape, out.shape)
	checkBroadcastable("masked quinary", 1, y.shape, out.shape)
	checkBroadcastable("masked quinary", 2, z.shape, out.shape)
	checkBroadcastable("masked quinary", 3, v.shape, out.shape)
	checkBroadcastable("masked quinary", 4, u.shape, out.shape)
	checkBroadcastable("masked quinary", 5, mask.shape, out.shape)

	xr, yr, zr, vr, ur, mr, ow := x.reader(), y.reader(), z.reader(), v.reader(), u.reader(), mask.reader(), out.writer()
	run(out.shape, opts, func(lo, hi int) {
		w := newWalker(out.shape, lo, hi, x.layout(), y.layout(), z.layout(), v.layout(), u.layout(), mask.layout(), out.layout())
		for w.next() {
			o := [7]int{w.off[0], w.off[1], w.off[2], w.off[3], w.off[4], w.off[5], w.off[6]}
			for i := 0; i < w.n; i++ {
				if mr(o[5]) == 0 {
					ow(o[6], f(xr(o[0]), yr(o[1]), zr(o[2]), vr(o[3]), ur(o[4])))
				}
				for k := range o {
					o[k] += w.inner[k]
				}
			}
		}
	})
}
