package bitidx

// Ordering is a pure, stateless mapping from semantic indices to electrical
// bit positions for a register kind R. Implementations must satisfy, for
// every R:
//
//  1. At restricted to 0..Bits[R]() is a bijection onto 0..Bits[R]().
//  2. At is deterministic and side-effect-free.
//  3. Select(i).Value() == 1 << At(i).Value() (when Select is overridden).
//
// These obligations are verified by the test suite, not by the type
// system.
type Ordering[R Register] interface {
	// At is the authoritative semantic-index-to-electrical-position
	// mapping.
	At(i Idx[R]) Pos[R]
	// Select computes the one-hot selector for i. Implementations that
	// have nothing cheaper to offer than At should forward to
	// DefaultSelect.
	Select(i Idx[R]) Sel[R]
	// MaskOf computes the accessor mask covering every index in idxs.
	// Implementations that have nothing cheaper to offer than Select
	// should forward to DefaultMaskOf.
	MaskOf(idxs ...Idx[R]) Mask[R]
}

// DefaultSelect is the standard implementation of Ordering.Select, in terms
// of At: 1 << At(i).Value().
func DefaultSelect[R Register](o Ordering[R], i Idx[R]) Sel[R] {
	return o.At(i).Select()
}

// DefaultMaskOf is the standard implementation of Ordering.MaskOf: fold the
// selector of every index with bitwise OR.
func DefaultMaskOf[R Register](o Ordering[R], idxs ...Idx[R]) Mask[R] {
	m := MaskZero[R]()
	for _, i := range idxs {
		m = m.Combine(o.Select(i))
	}
	return m
}

// RangeMask folds the selector of every index in lo.Range(hi) under o into
// a single Mask. This is the standard way library code turns a region into
// a multi-bit mask.
func RangeMask[R Register](o Ordering[R], lo Idx[R], hi Tail[R]) Mask[R] {
	m := MaskZero[R]()
	it := lo.Range(hi)
	for {
		i, ok := it.Next()
		if !ok {
			break
		}
		m = m.Combine(o.Select(i))
	}
	return m
}

// LowEdge is the canonical ordering where semantic index 0 is the least
// significant bit: At(i) = i.
type LowEdge[R Register] struct{}

// At implements Ordering.
func (LowEdge[R]) At(i Idx[R]) Pos[R] {
	return newPosUnchecked[R](i.Value())
}

// Select implements Ordering.
func (o LowEdge[R]) Select(i Idx[R]) Sel[R] {
	return DefaultSelect[R](o, i)
}

// MaskOf implements Ordering.
func (o LowEdge[R]) MaskOf(idxs ...Idx[R]) Mask[R] {
	return DefaultMaskOf[R](o, idxs...)
}

// HighEdge is the canonical ordering where semantic index 0 is the most
// significant bit: At(i) = Bits[R]() - 1 - i.
type HighEdge[R Register] struct{}

// At implements Ordering.
func (HighEdge[R]) At(i Idx[R]) Pos[R] {
	return newPosUnchecked[R](Bits[R]() - 1 - i.Value())
}

// Select implements Ordering.
func (o HighEdge[R]) Select(i Idx[R]) Sel[R] {
	return DefaultSelect[R](o, i)
}

// MaskOf implements Ordering.
func (o HighEdge[R]) MaskOf(idxs ...Idx[R]) Mask[R] {
	return DefaultMaskOf[R](o, idxs...)
}
