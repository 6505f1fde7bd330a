package bitidx

import "fmt"

// Idx is a semantic bit index within one register of kind R, in the virtual
// coordinate range 0..Bits[R](). It has not yet been translated to an
// electrical shift distance through an Ordering.
//
// Idx can only be produced by this package: by NewIdx from a checked byte,
// or internally from region computation (Offset, Next, Prev, and the range
// iterators). Every Idx that reaches calling code is therefore known
// to lie within some register.
type Idx[R Register] struct {
	v uint8
}

// IdxErr reports that a byte offered to NewIdx was not a valid index for
// the register kind R: it was not less than Bits[R]().
type IdxErr[R Register] struct {
	v uint8
}

// Error implements the error interface.
func (e IdxErr[R]) Error() string {
	return fmt.Sprintf("bitidx: index %d out of range for %d-bit register", e.v, Bits[R]())
}

// Value returns the out-of-range byte that was rejected.
func (e IdxErr[R]) Value() uint8 { return e.v }

// NewIdx wraps v as an Idx if it is a valid semantic index for R, or
// reports an IdxErr carrying the offending byte.
func NewIdx[R Register](v uint8) (Idx[R], error) {
	if v >= Bits[R]() {
		return Idx[R]{}, IdxErr[R]{v: v}
	}
	return Idx[R]{v: v}, nil
}

// newIdxUnchecked trusts the caller to have already established v < Bits[R]().
// It is unexported: only region computations inside this package may skip
// the range check, which is what keeps the chain of custody on Idx intact.
func newIdxUnchecked[R Register](v uint8) Idx[R] {
	if v >= Bits[R]() {
		panic(fmt.Sprintf("bitidx: internal invariant violated: index %d exceeds %d-bit register", v, Bits[R]()))
	}
	return Idx[R]{v: v}
}

// Value returns the wrapped index.
func (i Idx[R]) Value() uint8 { return i.v }

// Next returns the successor index, wrapping at the register's back edge,
// and reports whether the successor lies in the next register element.
func (i Idx[R]) Next() (Idx[R], bool) {
	bitsR := Bits[R]()
	next := i.v + 1
	return newIdxUnchecked[R](next & (bitsR - 1)), next == bitsR
}

// Prev returns the predecessor index, wrapping at the register's front
// edge, and reports whether the predecessor lies in the previous register
// element.
func (i Idx[R]) Prev() (Idx[R], bool) {
	bitsR := Bits[R]()
	prev := i.v - 1 // wraps to 255 in uint8 when i.v == 0
	return newIdxUnchecked[R](prev & (bitsR - 1)), i.v == 0
}

// Position computes the electrical bit position that o assigns to i. This
// is the only route by which calling code obtains a Pos.
func (i Idx[R]) Position(o Ordering[R]) Pos[R] {
	return o.At(i)
}

// Select computes the one-hot selector that o assigns to i.
func (i Idx[R]) Select(o Ordering[R]) Sel[R] {
	return o.Select(i)
}

// Mask computes the accessor mask that o assigns to i. It is a type cast
// over Select.
func (i Idx[R]) Mask(o Ordering[R]) Mask[R] {
	return i.Select(o).Mask()
}

// Range returns a finite, double-ended, exact-size, fused iterator over the
// indices from i (inclusive) up to upto (exclusive). i.Value() must not
// exceed upto.Value(); violating this is a programmer error and panics.
func (i Idx[R]) Range(upto Tail[R]) *IdxRange[R] {
	if i.v > upto.v {
		panic("bitidx: range start exceeds range end")
	}
	return &IdxRange[R]{lo: i.v, hi: upto.v}
}

// RangeAllIdx returns an iterator over every semantic index of the register
// kind R, i.e. the range 0..Bits[R]().
func RangeAllIdx[R Register]() *IdxRange[R] {
	return &IdxRange[R]{lo: 0, hi: Bits[R]()}
}

// Offset computes, for a jump of by bits away from i, the number of
// register elements by which to adjust a base pointer and the index of the
// destination bit within the destination element.
//
// by is interpreted as a signed distance in a machine word (here, int64,
// matching the widest practical pointer-sized integer); it is independent
// of the register width R, which only governs how the result is folded
// back into a single element's index space.
func (i Idx[R]) Offset(by int64) (int64, Idx[R]) {
	v := int64(i.v)
	far := by + v // wrapping signed add; Go's two's-complement semantics match
	overflowed := (by > 0 && v > 0 && far < 0) || (by < 0 && v < 0 && far >= 0)

	bitsR := int64(Bits[R]())
	indx := uint(Indx[R]())
	maskR := Bits[R]() - 1

	if !overflowed {
		if far >= 0 && far < bitsR {
			return 0, newIdxUnchecked[R](uint8(far))
		}
		return far >> indx, newIdxUnchecked[R](uint8(far)&maskR)
	}

	unsignedFar := uint64(far)
	return int64(unsignedFar >> indx), newIdxUnchecked[R](uint8(unsignedFar)&maskR)
}

// Span computes the span information for a region of length bits beginning
// at the live bit i. It forwards to Tail.Span: beginning a span at any Idx
// is equivalent to beginning it at the tail of a preceding span.
func (i Idx[R]) Span(length uint) (int, Tail[R]) {
	return Tail[R]{v: i.v}.Span(length)
}
