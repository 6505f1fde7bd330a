package bitidx

import "fmt"

// Pos is an electrical bit position within a register of kind R, in the
// range 0..Bits[R](). It is the shift distance used in 1 << p, and is
// produced only by an Ordering's At or, internally, by trusted
// construction.
type Pos[R Register] struct {
	v uint8
}

// NewPos wraps v as a Pos if it is a valid electrical position for R, or
// reports an error carrying the offending byte.
func NewPos[R Register](v uint8) (Pos[R], error) {
	if v >= Bits[R]() {
		return Pos[R]{}, fmt.Errorf("bitidx: position %d out of range for %d-bit register", v, Bits[R]())
	}
	return Pos[R]{v: v}, nil
}

// newPosUnchecked trusts the caller to have already established
// v < Bits[R](); see newIdxUnchecked for why this is unexported.
func newPosUnchecked[R Register](v uint8) Pos[R] {
	if v >= Bits[R]() {
		panic(fmt.Sprintf("bitidx: internal invariant violated: position %d exceeds %d-bit register", v, Bits[R]()))
	}
	return Pos[R]{v: v}
}

// Value returns the wrapped electrical position.
func (p Pos[R]) Value() uint8 { return p.v }

// Select computes the one-hot selector 1 << p.
func (p Pos[R]) Select() Sel[R] {
	return newSelUnchecked[R](RegOne[R]() << p.v)
}

// Mask widens the selector 1 << p into a Mask.
func (p Pos[R]) Mask() Mask[R] {
	return p.Select().Mask()
}

// PosRangeAll returns a finite, double-ended, exact-size, fused iterator
// over every electrical position of the register kind R.
func PosRangeAll[R Register]() *PosRange[R] {
	return &PosRange[R]{lo: 0, hi: Bits[R]()}
}
