package bitidx

// Mask is an arbitrary-bit subset of a register of kind R. Unlike Sel, it
// carries no invariant beyond being a valid register value; it is the
// accumulation point that selectors fold into.
type Mask[R Register] struct {
	v R
}

// MaskZero is the empty mask.
func MaskZero[R Register]() Mask[R] { return Mask[R]{v: RegZero[R]()} }

// MaskAll is the full mask, every bit of the register set.
func MaskAll[R Register]() Mask[R] { return Mask[R]{v: RegAll[R]()} }

// NewMask wraps an arbitrary register value as a Mask. Unlike Idx, Tail,
// Pos, and Sel, Mask has no range invariant to enforce, so this never
// fails.
func NewMask[R Register](v R) Mask[R] { return Mask[R]{v: v} }

// Value returns the wrapped register value.
func (m Mask[R]) Value() R { return m.v }

// Test reports whether s shares any bit with m.
func (m Mask[R]) Test(s Sel[R]) bool {
	return m.v&s.v != 0
}

// Insert ORs s into m in place.
func (m *Mask[R]) Insert(s Sel[R]) {
	m.v |= s.v
}

// Combine returns m with s ORed in.
func (m Mask[R]) Combine(s Sel[R]) Mask[R] {
	return Mask[R]{v: m.v | s.v}
}

// And returns the bitwise AND of m with a raw register value.
func (m Mask[R]) And(v R) Mask[R] {
	return Mask[R]{v: m.v & v}
}

// Or returns the bitwise OR of m with a raw register value.
func (m Mask[R]) Or(v R) Mask[R] {
	return Mask[R]{v: m.v | v}
}

// Not returns the bitwise complement of m.
func (m Mask[R]) Not() Mask[R] {
	return Mask[R]{v: ^m.v}
}

// SumSelectors folds sels into a single Mask, starting from MaskZero and
// combining each selector in turn. This is the standard way to form a
// multi-bit mask from a sequence of selectors; the spec does not constrain
// the order of combination, since bitwise OR is a commutative monoid.
func SumSelectors[R Register](sels ...Sel[R]) Mask[R] {
	m := MaskZero[R]()
	for _, s := range sels {
		m = m.Combine(s)
	}
	return m
}
