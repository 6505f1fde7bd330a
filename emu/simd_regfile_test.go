package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/bitreg/emu"
)

var _ = Describe("SIMDRegFile lane addressing", func() {
	var f *emu.SIMDRegFile

	BeforeEach(func() {
		f = emu.NewSIMDRegFile()
	})

	Describe("8-bit lanes", func() {
		It("round-trips every lane of a 128-bit register", func() {
			for lane := uint8(0); lane < 16; lane++ {
				f.WriteLane8(3, lane, lane+1)
			}
			for lane := uint8(0); lane < 16; lane++ {
				Expect(f.ReadLane8(3, lane)).To(Equal(lane + 1))
			}
		})

		It("never perturbs an adjacent lane when writing", func() {
			for lane := uint8(0); lane < 16; lane++ {
				f.WriteLane8(0, lane, 0xAA)
			}

			f.WriteLane8(0, 5, 0x7F)

			for lane := uint8(0); lane < 16; lane++ {
				if lane == 5 {
					Expect(f.ReadLane8(0, lane)).To(Equal(uint8(0x7F)))
					continue
				}
				Expect(f.ReadLane8(0, lane)).To(Equal(uint8(0xAA)))
			}
		})
	})

	Describe("16-bit lanes", func() {
		It("round-trips every lane and leaves neighbors untouched", func() {
			for lane := uint8(0); lane < 8; lane++ {
				f.WriteLane16(1, lane, 0x1111*uint16(lane+1))
			}
			f.WriteLane16(1, 3, 0xBEEF)

			for lane := uint8(0); lane < 8; lane++ {
				if lane == 3 {
					Expect(f.ReadLane16(1, lane)).To(Equal(uint16(0xBEEF)))
					continue
				}
				Expect(f.ReadLane16(1, lane)).To(Equal(0x1111 * uint16(lane+1)))
			}
		})
	})

	Describe("32-bit lanes", func() {
		It("round-trips every lane and leaves neighbors untouched", func() {
			f.WriteLane32(2, 0, 0x11111111)
			f.WriteLane32(2, 1, 0x22222222)
			f.WriteLane32(2, 2, 0x33333333)
			f.WriteLane32(2, 3, 0x44444444)

			f.WriteLane32(2, 2, 0xDEADBEEF)

			Expect(f.ReadLane32(2, 0)).To(Equal(uint32(0x11111111)))
			Expect(f.ReadLane32(2, 1)).To(Equal(uint32(0x22222222)))
			Expect(f.ReadLane32(2, 2)).To(Equal(uint32(0xDEADBEEF)))
			Expect(f.ReadLane32(2, 3)).To(Equal(uint32(0x44444444)))
		})
	})

	Describe("64-bit lanes", func() {
		It("round-trips both lanes independently", func() {
			f.WriteLane64(4, 0, 0x1122334455667788)
			f.WriteLane64(4, 1, 0x8877665544332211)

			Expect(f.ReadLane64(4, 0)).To(Equal(uint64(0x1122334455667788)))
			Expect(f.ReadLane64(4, 1)).To(Equal(uint64(0x8877665544332211)))

			f.WriteLane64(4, 0, 0)
			Expect(f.ReadLane64(4, 1)).To(Equal(uint64(0x8877665544332211)))
		})
	})

	Describe("ReadQ/WriteQ", func() {
		It("returns the low/high words written via WriteQ", func() {
			f.WriteQ(5, 0x1234, 0x5678)
			low, high := f.ReadQ(5)
			Expect(low).To(Equal(uint64(0x1234)))
			Expect(high).To(Equal(uint64(0x5678)))
		})
	})
})
