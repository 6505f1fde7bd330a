package emu

import "github.com/sarchlab/bitreg/bitidx"

// SIMDRegFile holds the 32 128-bit SIMD/FP vector registers (V0-V31), each
// stored as a pair of uint64 words (low, high). Lane access for every
// arrangement width (8/16/32/64 bits) is expressed uniformly through the
// bitidx region algebra instead of four hand-written lane-width cases.
type SIMDRegFile struct {
	V [32][2]uint64
}

// NewSIMDRegFile creates a zeroed SIMD register file.
func NewSIMDRegFile() *SIMDRegFile {
	return &SIMDRegFile{}
}

// laneLocation returns which of the two uint64 words backing a V register
// holds lane `lane` of width `width` bits, and the bit position within that
// word, by walking the register pair as one 128-bit address space through
// Idx.Offset.
func laneLocation(lane uint8, width uint8) (word int, bit bitidx.Idx[uint64]) {
	zero, err := bitidx.NewIdx[uint64](0)
	if err != nil {
		panic(err)
	}
	delta, idx := zero.Offset(int64(lane) * int64(width))
	return int(delta), idx
}

func (f *SIMDRegFile) readLane(reg, lane, width uint8) uint64 {
	word, bit := laneLocation(lane, width)
	mask := BitfieldMask[uint64](width)
	return (f.V[reg][word] >> bit.Value()) & mask
}

func (f *SIMDRegFile) writeLane(reg, lane, width uint8, value uint64) {
	word, bit := laneLocation(lane, width)
	mask := BitfieldMask[uint64](width)
	cleared := f.V[reg][word] &^ (mask << bit.Value())
	f.V[reg][word] = cleared | ((value & mask) << bit.Value())
}

// ReadLane8 reads an 8-bit lane.
func (f *SIMDRegFile) ReadLane8(reg, lane uint8) uint8 { return uint8(f.readLane(reg, lane, 8)) }

// ReadLane16 reads a 16-bit lane.
func (f *SIMDRegFile) ReadLane16(reg, lane uint8) uint16 { return uint16(f.readLane(reg, lane, 16)) }

// ReadLane32 reads a 32-bit lane.
func (f *SIMDRegFile) ReadLane32(reg, lane uint8) uint32 { return uint32(f.readLane(reg, lane, 32)) }

// ReadLane64 reads a 64-bit lane.
func (f *SIMDRegFile) ReadLane64(reg, lane uint8) uint64 { return f.readLane(reg, lane, 64) }

// WriteLane8 writes an 8-bit lane.
func (f *SIMDRegFile) WriteLane8(reg, lane uint8, v uint8) { f.writeLane(reg, lane, 8, uint64(v)) }

// WriteLane16 writes a 16-bit lane.
func (f *SIMDRegFile) WriteLane16(reg, lane uint8, v uint16) { f.writeLane(reg, lane, 16, uint64(v)) }

// WriteLane32 writes a 32-bit lane.
func (f *SIMDRegFile) WriteLane32(reg, lane uint8, v uint32) { f.writeLane(reg, lane, 32, uint64(v)) }

// WriteLane64 writes a 64-bit lane.
func (f *SIMDRegFile) WriteLane64(reg, lane uint8, v uint64) { f.writeLane(reg, lane, 64, v) }

// ReadQ returns the full 128-bit contents of a V register as low/high words.
func (f *SIMDRegFile) ReadQ(reg uint8) (low, high uint64) {
	return f.V[reg][0], f.V[reg][1]
}

// WriteQ sets the full 128-bit contents of a V register from low/high words.
func (f *SIMDRegFile) WriteQ(reg uint8, low, high uint64) {
	f.V[reg][0] = low
	f.V[reg][1] = high
}
