package bitidx_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/bitreg/bitidx"
)

var _ = Describe("Mask construction and constants", func() {
	It("never fails for any raw register value", func() {
		mask := bitidx.NewMask[uint8](0xAB)
		Expect(mask.Value()).To(Equal(uint8(0xAB)))
	})

	It("exposes MaskZero and MaskAll", func() {
		Expect(bitidx.MaskZero[uint8]().Value()).To(Equal(uint8(0)))
		Expect(bitidx.MaskAll[uint8]().Value()).To(Equal(uint8(0xFF)))
		Expect(bitidx.MaskAll[uint32]().Value()).To(Equal(uint32(0xFFFFFFFF)))
	})
})

var _ = Describe("Mask.Test, Insert, Combine", func() {
	It("reports whether a selector shares a bit with the mask", func() {
		mask := bitidx.NewMask[uint8](0b0000_1100)
		hit, _ := bitidx.NewSel[uint8](0b0000_0100)
		miss, _ := bitidx.NewSel[uint8](0b0001_0000)

		Expect(mask.Test(hit)).To(BeTrue())
		Expect(mask.Test(miss)).To(BeFalse())
	})

	It("inserts a selector in place", func() {
		mask := bitidx.MaskZero[uint8]()
		sel, _ := bitidx.NewSel[uint8](0b0000_0010)
		mask.Insert(sel)
		Expect(mask.Value()).To(Equal(uint8(0b0000_0010)))
	})

	It("combines a selector without mutating the receiver", func() {
		mask := bitidx.NewMask[uint8](0b0000_0001)
		sel, _ := bitidx.NewSel[uint8](0b0000_0010)
		combined := mask.Combine(sel)

		Expect(mask.Value()).To(Equal(uint8(0b0000_0001)))
		Expect(combined.Value()).To(Equal(uint8(0b0000_0011)))
	})
})

var _ = Describe("Mask bitwise arithmetic", func() {
	It("ANDs, ORs, and NOTs against a raw register value", func() {
		mask := bitidx.NewMask[uint8](0b1111_0000)

		Expect(mask.And(0b1100_1100).Value()).To(Equal(uint8(0b1100_0000)))
		Expect(mask.Or(0b0000_1111).Value()).To(Equal(uint8(0b1111_1111)))
		Expect(mask.Not().Value()).To(Equal(uint8(0b0000_1111)))
	})

	It("complements MaskAll to MaskZero and vice versa", func() {
		Expect(bitidx.MaskAll[uint8]().Not().Value()).To(Equal(bitidx.MaskZero[uint8]().Value()))
		Expect(bitidx.MaskZero[uint8]().Not().Value()).To(Equal(bitidx.MaskAll[uint8]().Value()))
	})
})

var _ = Describe("SumSelectors", func() {
	It("folds a sequence of selectors into a single mask", func() {
		a, _ := bitidx.NewSel[uint8](0b0000_0001)
		b, _ := bitidx.NewSel[uint8](0b0000_0100)
		c, _ := bitidx.NewSel[uint8](0b0001_0000)

		mask := bitidx.SumSelectors(a, b, c)
		Expect(mask.Value()).To(Equal(uint8(0b0001_0101)))
	})

	It("returns MaskZero for an empty sequence", func() {
		mask := bitidx.SumSelectors[uint8]()
		Expect(mask.Value()).To(Equal(bitidx.MaskZero[uint8]().Value()))
	})

	It("is insensitive to the order selectors are combined in", func() {
		a, _ := bitidx.NewSel[uint8](0b0000_0001)
		b, _ := bitidx.NewSel[uint8](0b0000_0100)

		Expect(bitidx.SumSelectors(a, b).Value()).To(Equal(bitidx.SumSelectors(b, a).Value()))
	})
})
