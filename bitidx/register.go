package bitidx

import (
	"math/bits"
	"unsafe"
)

// Register is the set of primitive unsigned integer widths that a register
// array can be built from. The bitidx types are generic over this
// constraint: everything they know about a given width (BITS, INDX, MASK,
// ZERO, ONE, ALL) is derived from it at instantiation time.
type Register interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bits reports the width, in bits, of the register kind R: 8, 16, 32, or 64.
func Bits[R Register]() uint8 {
	var z R
	return uint8(unsafe.Sizeof(z)) * 8
}

// Indx reports the base-2 logarithm of Bits[R](): 3, 4, 5, or 6. It is the
// shift distance used to divide a bit count by the register width.
func Indx[R Register]() uint8 {
	switch Bits[R]() {
	case 8:
		return 3
	case 16:
		return 4
	case 32:
		return 5
	default:
		return 6
	}
}

// WidthMask reports BITS-1 for the register kind R, the and-mask used to
// take a bit count modulo the register width.
func WidthMask[R Register]() R {
	return R(Bits[R]() - 1)
}

// RegZero is the zero value of R.
func RegZero[R Register]() R { return 0 }

// RegOne is the one value of R.
func RegOne[R Register]() R { return 1 }

// RegAll is the all-ones value of R.
func RegAll[R Register]() R { return ^R(0) }

// PopCount counts the set bits of v. Registers are unsigned, so widening to
// uint64 never sign-extends and the population count is unaffected.
func PopCount[R Register](v R) int {
	return bits.OnesCount64(uint64(v))
}

func regName[R Register]() string {
	switch Bits[R]() {
	case 8:
		return "uint8"
	case 16:
		return "uint16"
	case 32:
		return "uint32"
	default:
		return "uint64"
	}
}
