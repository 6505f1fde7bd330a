package bitidx_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/bitreg/bitidx"
)

var _ = Describe("Canonical binary rendering", func() {
	It("renders Idx in Indx[R]() digits", func() {
		idx, _ := bitidx.NewIdx[uint8](5)
		Expect(idx.String()).To(Equal("101"))
	})

	It("renders Tail in Indx[R]()+1 digits", func() {
		tail := bitidx.TailLast[uint8]()
		Expect(tail.String()).To(Equal("1000"))
	})

	It("renders Pos in Indx[R]() digits", func() {
		pos, _ := bitidx.NewPos[uint8](2)
		Expect(pos.String()).To(Equal("010"))
	})

	It("renders Sel and Mask in Bits[R]() digits", func() {
		sel, _ := bitidx.NewSel[uint8](0b0010_0000)
		Expect(sel.String()).To(Equal("00100000"))

		mask := bitidx.NewMask[uint8](0b0000_0011)
		Expect(mask.String()).To(Equal("00000011"))
	})

	It("pads a value shorter than Indx[R]() digits with leading zeros", func() {
		idx, _ := bitidx.NewIdx[uint32](5)
		Expect(idx.String()).To(Equal("00101"))
	})
})

var _ = Describe("GoString debug rendering", func() {
	It("prefixes the type and register-width name for Idx", func() {
		idx, _ := bitidx.NewIdx[uint8](5)
		Expect(idx.GoString()).To(Equal("Idx[uint8](101)"))
		Expect(fmt.Sprintf("%#v", idx)).To(Equal("Idx[uint8](101)"))
	})

	It("prefixes the type and register-width name for Tail, Pos, Sel, and Mask", func() {
		tail, _ := bitidx.NewTail[uint16](3)
		pos, _ := bitidx.NewPos[uint16](3)
		sel, _ := bitidx.NewSel[uint16](0b1000)
		mask := bitidx.NewMask[uint16](0x00FF)

		Expect(tail.GoString()).To(Equal("Tail[uint16](00011)"))
		Expect(pos.GoString()).To(Equal("Pos[uint16](0011)"))
		Expect(sel.GoString()).To(Equal("Sel[uint16](0000000000001000)"))
		Expect(mask.GoString()).To(Equal("Mask[uint16](0000000011111111)"))
	})
})
