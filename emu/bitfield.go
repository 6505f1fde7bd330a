// Package emu is a small worked example of register-field arithmetic built
// directly on bitidx: ARM64's UBFM/SBFM/BFM bitfield-move semantics, and a
// SIMD vector register file addressed by uniform-width lanes. Neither type
// here decodes instructions or drives an execution loop; both are exported
// so they can be called directly, exercising the region algebra without an
// entire instruction set architecture around it.
package emu

import "github.com/sarchlab/bitreg/bitidx"

// BitfieldMask builds the mask of the low width bits of a register of kind R
// using the region algebra rather than a hand-rolled shift-and-subtract.
func BitfieldMask[R bitidx.Register](width uint8) R {
	if width == 0 {
		return bitidx.RegZero[R]()
	}
	head, err := bitidx.NewIdx[R](0)
	if err != nil {
		panic(err)
	}
	_, tail := head.Span(uint(width))
	return bitidx.RangeMask[R](bitidx.LowEdge[R]{}, head, tail).Value()
}

// SignExtendField sign-extends the low width bits of v, kind R, to the full
// register width using the sign bit at width-1.
func SignExtendField[R bitidx.Register](v R, width uint8) R {
	signBit := bitidx.RegOne[R]() << (width - 1)
	mask := BitfieldMask[R](width)
	if v&signBit != 0 {
		return v | ^mask
	}
	return v
}

// BitfieldMove computes the UBFM/SBFM/BFM result for a register of kind R,
// given the source and destination register contents, the immr/imms
// encoding, whether the field is sign-extended, and whether unselected
// destination bits are preserved (BFM) or zeroed (UBFM/SBFM).
func BitfieldMove[R bitidx.Register](rnVal, rdVal R, immr, imms uint8, signed, insert bool) R {
	bits := bitidx.Bits[R]()

	if imms >= immr {
		// Extract: field [imms:immr] of rnVal, right-justified.
		width := imms - immr + 1
		mask := BitfieldMask[R](width)
		extracted := (rnVal >> immr) & mask
		if signed {
			extracted = SignExtendField[R](extracted, width)
		}
		if !insert {
			return extracted
		}
		return (rdVal &^ mask) | extracted
	}

	// Insert: field [imms:0] of rnVal, shifted left into place.
	shift := bits - immr
	width := imms + 1
	mask := BitfieldMask[R](width)
	extracted := rnVal & mask
	if signed {
		extracted = SignExtendField[R](extracted, width)
	}
	result := extracted << shift
	if !insert {
		return result
	}
	dstMask := mask << shift
	return (rdVal &^ dstMask) | result
}

// ExecuteBitfieldOp dispatches BitfieldMove at the register width an ARM64
// bitfield instruction actually operates at (W or X), widening the uint32
// result back into the zero-extended 64-bit register slot.
func ExecuteBitfieldOp(rnVal, rdVal uint64, immr, imms uint8, is64 bool, signed, insert bool) uint64 {
	if is64 {
		return BitfieldMove[uint64](rnVal, rdVal, immr, imms, signed, insert)
	}
	return uint64(BitfieldMove[uint32](uint32(rnVal), uint32(rdVal), immr, imms, signed, insert))
}
