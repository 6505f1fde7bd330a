package bitidx

import "iter"

// IdxRange is a finite, double-ended, exact-size, fused iterator over Idx
// values, produced by Idx.Range and RangeAllIdx.
type IdxRange[R Register] struct {
	lo, hi uint8
	done   bool
}

// Len reports the number of values remaining in the iterator.
func (r *IdxRange[R]) Len() int {
	if r.done || r.lo >= r.hi {
		return 0
	}
	return int(r.hi) - int(r.lo)
}

// Next returns the next value from the front of the range, or false once
// exhausted. A fused iterator keeps returning false after the first such
// call.
func (r *IdxRange[R]) Next() (Idx[R], bool) {
	if r.done || r.lo >= r.hi {
		r.done = true
		return Idx[R]{}, false
	}
	v := r.lo
	r.lo++
	return newIdxUnchecked[R](v), true
}

// NextBack returns the next value from the back of the range, or false
// once exhausted.
func (r *IdxRange[R]) NextBack() (Idx[R], bool) {
	if r.done || r.lo >= r.hi {
		r.done = true
		return Idx[R]{}, false
	}
	r.hi--
	return newIdxUnchecked[R](r.hi), true
}

// All adapts the range to the range-over-func form so it can be used
// directly in a for...range loop.
func (r *IdxRange[R]) All() iter.Seq[Idx[R]] {
	return func(yield func(Idx[R]) bool) {
		for {
			v, ok := r.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// TailRange is a finite, double-ended, exact-size, fused iterator over Tail
// values, produced by RangeFrom.
type TailRange[R Register] struct {
	lo, hi uint8
	done   bool
}

// Len reports the number of values remaining in the iterator.
func (r *TailRange[R]) Len() int {
	if r.done || r.lo >= r.hi {
		return 0
	}
	return int(r.hi) - int(r.lo)
}

// Next returns the next value from the front of the range, or false once
// exhausted.
func (r *TailRange[R]) Next() (Tail[R], bool) {
	if r.done || r.lo >= r.hi {
		r.done = true
		return Tail[R]{}, false
	}
	v := r.lo
	r.lo++
	return newTailUnchecked[R](v), true
}

// NextBack returns the next value from the back of the range, or false
// once exhausted.
func (r *TailRange[R]) NextBack() (Tail[R], bool) {
	if r.done || r.lo >= r.hi {
		r.done = true
		return Tail[R]{}, false
	}
	r.hi--
	return newTailUnchecked[R](r.hi), true
}

// All adapts the range to the range-over-func form.
func (r *TailRange[R]) All() iter.Seq[Tail[R]] {
	return func(yield func(Tail[R]) bool) {
		for {
			v, ok := r.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// PosRange is a finite, double-ended, exact-size, fused iterator over Pos
// values, produced by PosRangeAll.
type PosRange[R Register] struct {
	lo, hi uint8
	done   bool
}

// Len reports the number of values remaining in the iterator.
func (r *PosRange[R]) Len() int {
	if r.done || r.lo >= r.hi {
		return 0
	}
	return int(r.hi) - int(r.lo)
}

// Next returns the next value from the front of the range, or false once
// exhausted.
func (r *PosRange[R]) Next() (Pos[R], bool) {
	if r.done || r.lo >= r.hi {
		r.done = true
		return Pos[R]{}, false
	}
	v := r.lo
	r.lo++
	return newPosUnchecked[R](v), true
}

// NextBack returns the next value from the back of the range, or false
// once exhausted.
func (r *PosRange[R]) NextBack() (Pos[R], bool) {
	if r.done || r.lo >= r.hi {
		r.done = true
		return Pos[R]{}, false
	}
	r.hi--
	return newPosUnchecked[R](r.hi), true
}

// All adapts the range to the range-over-func form.
func (r *PosRange[R]) All() iter.Seq[Pos[R]] {
	return func(yield func(Pos[R]) bool) {
		for {
			v, ok := r.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// SelRange is a finite, double-ended, exact-size, fused iterator over Sel
// values, produced by SelRangeAll. It is a thin projection of a PosRange
// through Pos.Select.
type SelRange[R Register] struct {
	inner *PosRange[R]
}

// Len reports the number of values remaining in the iterator.
func (r *SelRange[R]) Len() int { return r.inner.Len() }

// Next returns the next value from the front of the range, or false once
// exhausted.
func (r *SelRange[R]) Next() (Sel[R], bool) {
	p, ok := r.inner.Next()
	if !ok {
		return Sel[R]{}, false
	}
	return p.Select(), true
}

// NextBack returns the next value from the back of the range, or false
// once exhausted.
func (r *SelRange[R]) NextBack() (Sel[R], bool) {
	p, ok := r.inner.NextBack()
	if !ok {
		return Sel[R]{}, false
	}
	return p.Select(), true
}

// All adapts the range to the range-over-func form.
func (r *SelRange[R]) All() iter.Seq[Sel[R]] {
	return func(yield func(Sel[R]) bool) {
		for {
			v, ok := r.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
