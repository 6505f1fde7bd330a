package bitidx

import "fmt"

// String renders i in Indx[R]() binary digits, e.g. "101" for Idx[uint8](5).
func (i Idx[R]) String() string {
	return fmt.Sprintf("%0*b", int(Indx[R]()), i.v)
}

// GoString renders i with its type and register-width name prefixed, for
// use with the %#v verb.
func (i Idx[R]) GoString() string {
	return fmt.Sprintf("Idx[%s](%s)", regName[R](), i.String())
}

// String renders t in Indx[R]()+1 binary digits, e.g. "1000" for
// Tail[uint8](8).
func (t Tail[R]) String() string {
	return fmt.Sprintf("%0*b", int(Indx[R]())+1, t.v)
}

// GoString renders t with its type and register-width name prefixed.
func (t Tail[R]) GoString() string {
	return fmt.Sprintf("Tail[%s](%s)", regName[R](), t.String())
}

// String renders p in Indx[R]() binary digits.
func (p Pos[R]) String() string {
	return fmt.Sprintf("%0*b", int(Indx[R]()), p.v)
}

// GoString renders p with its type and register-width name prefixed.
func (p Pos[R]) GoString() string {
	return fmt.Sprintf("Pos[%s](%s)", regName[R](), p.String())
}

// String renders s in Bits[R]() binary digits.
func (s Sel[R]) String() string {
	return fmt.Sprintf("%0*b", int(Bits[R]()), s.v)
}

// GoString renders s with its type and register-width name prefixed.
func (s Sel[R]) GoString() string {
	return fmt.Sprintf("Sel[%s](%s)", regName[R](), s.String())
}

// String renders m in Bits[R]() binary digits.
func (m Mask[R]) String() string {
	return fmt.Sprintf("%0*b", int(Bits[R]()), m.v)
}

// GoString renders m with its type and register-width name prefixed.
func (m Mask[R]) GoString() string {
	return fmt.Sprintf("Mask[%s](%s)", regName[R](), m.String())
}
