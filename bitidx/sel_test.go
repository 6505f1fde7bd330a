package bitidx_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/bitreg/bitidx"
)

var _ = Describe("Sel construction", func() {
	It("accepts any one-hot register value", func() {
		sel, ok := bitidx.NewSel[uint8](0b0001_0000)
		Expect(ok).To(BeTrue())
		Expect(sel.Value()).To(Equal(uint8(0b0001_0000)))
	})

	It("rejects a value whose population count is not 1", func() {
		// S12: Selector<u8>::new(3) is none (popcount != 1).
		_, ok := bitidx.NewSel[uint8](3)
		Expect(ok).To(BeFalse())
	})

	It("rejects zero, which has population count 0", func() {
		_, ok := bitidx.NewSel[uint8](0)
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Sel.Mask", func() {
	It("widens a selector to a mask carrying the identical bit pattern", func() {
		sel, _ := bitidx.NewSel[uint8](0b0100_0000)
		mask := sel.Mask()
		Expect(mask.Value()).To(Equal(uint8(0b0100_0000)))
	})
})

var _ = Describe("SelRangeAll", func() {
	It("enumerates every one-hot selector of the register width, in position order", func() {
		r := bitidx.SelRangeAll[uint8]()
		Expect(r.Len()).To(Equal(int(bitidx.Bits[uint8]())))

		var got []uint8
		for {
			v, ok := r.Next()
			if !ok {
				break
			}
			got = append(got, v.Value())
			Expect(bitidx.PopCount(v.Value())).To(Equal(1))
		}
		Expect(got).To(Equal([]uint8{1, 2, 4, 8, 16, 32, 64, 128}))
	})

	It("folds into Mask.ALL when summed, for an 8-bit register", func() {
		// S13: fold all Selector<u8>::range_all() into a Mask yields Mask::ALL.
		r := bitidx.SelRangeAll[uint8]()
		m := bitidx.MaskZero[uint8]()
		for {
			s, ok := r.Next()
			if !ok {
				break
			}
			m = m.Combine(s)
		}
		Expect(m.Value()).To(Equal(bitidx.MaskAll[uint8]().Value()))
	})
})
