// Package bitidx implements the typed-index and region-arithmetic core of a
// bit-addressable container: it turns an abstract bit coordinate into
// concrete register-level read/write operations while guaranteeing that
// every computed register address stays in bounds and every computed shift
// distance stays strictly less than the register width.
//
// The package is built around five small value types, each generic over a
// register kind R (uint8, uint16, uint32, or uint64):
//
//   - Idx, a semantic bit index in the virtual coordinate space 0..Bits[R]().
//   - Tail, a dead-bit marker in 0..=Bits[R](), used for exclusive region ends.
//   - Pos, the electrical bit position produced from an Idx by an Ordering.
//   - Sel, a one-hot selector produced from a Pos.
//   - Mask, an arbitrary-bit accumulation of selectors.
//
// An Ordering maps semantic indices to electrical positions; LowEdge and
// HighEdge are the two canonical orderings. The region algebra, Idx.Offset
// and Tail.Span, maps (head index, bit length) triples to the register
// counts and tail markers that a bit slice needs to safely address memory.
//
// Every wrapper is an immutable value carried by copy; none of them name an
// external resource. Construction from untrusted integers is checked and
// reports failure (an error from NewIdx and NewPos, false from NewTail and
// NewSel); construction from values already known to be in range
// is unexported and reserved for this package's own region computations, so
// external callers can never forge a value that violates the range
// invariants the rest of the package relies on.
package bitidx
