package bitidx

import "fmt"

// Tail is a dead-bit marker immediately after some region of a register of
// kind R: the only index value permitted to equal Bits[R]() itself. It
// marks an exclusive upper bound.
type Tail[R Register] struct {
	v uint8
}

// NewTail wraps v as a Tail if 0 <= v <= Bits[R](), reporting false
// otherwise.
func NewTail[R Register](v uint8) (Tail[R], bool) {
	if v > Bits[R]() {
		return Tail[R]{}, false
	}
	return Tail[R]{v: v}, true
}

// newTailUnchecked trusts the caller to have already established
// v <= Bits[R](); see newIdxUnchecked for why this is unexported.
func newTailUnchecked[R Register](v uint8) Tail[R] {
	if v > Bits[R]() {
		panic(fmt.Sprintf("bitidx: internal invariant violated: tail %d exceeds %d-bit register", v, Bits[R]()))
	}
	return Tail[R]{v: v}
}

// TailLast is the one-past-end tail marker, Bits[R]().
func TailLast[R Register]() Tail[R] {
	return Tail[R]{v: Bits[R]()}
}

// TailZero is the tail marker at the start of a register, 0.
func TailZero[R Register]() Tail[R] {
	return Tail[R]{v: 0}
}

// Value returns the wrapped tail counter.
func (t Tail[R]) Value() uint8 { return t.v }

// RangeFrom returns a finite, double-ended, exact-size, fused iterator over
// the tail values from start.Value() up to and including Bits[R]().
func RangeFrom[R Register](start Idx[R]) *TailRange[R] {
	return &TailRange[R]{lo: start.v, hi: Bits[R]() + 1}
}

// Span computes the span information for a region of length live bits
// beginning at the live bit immediately following the dead bit t (or, if t
// is TailZero, at the start of a register).
//
// If length is 0, this returns (0, t): the span has no live bits. The
// result's first component is the number of register elements, starting in
// the element that contains t, holding any live bit of the region; the
// second is the tail marking the first dead bit after the region.
func (t Tail[R]) Span(length uint) (int, Tail[R]) {
	if length == 0 {
		return 0, t
	}

	bitsR := Bits[R]()
	maskR := bitsR - 1
	head := t.v & maskR
	bitsInHead := uint(bitsR - head)

	if length <= bitsInHead {
		return 1, newTailUnchecked[R](head + uint8(length))
	}

	bitsAfterHead := length - bitsInHead
	elements := bitsAfterHead >> Indx[R]()
	tailBits := uint8(bitsAfterHead) & maskR

	if tailBits == 0 {
		return int(elements) + 1, newTailUnchecked[R](bitsR)
	}
	return int(elements) + 2, newTailUnchecked[R](tailBits)
}
