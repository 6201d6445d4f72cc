package keccak

// roundConstants stores the round constants for use in the ι step.
var roundConstants = [Rounds]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// rhoOffsets holds the ρ rotation amount of each lane, indexed x + 5*y.
var rhoOffsets = [Lanes]uint{
	0, 1, 62, 28, 27,
	36, 44, 6, 55, 20,
	3, 10, 43, 25, 39,
	41, 45, 15, 21, 8,
	18, 2, 61, 56, 14,
}

// RoundConstant returns the ι constant of round i. It panics if i is not in [0, Rounds).
func RoundConstant(i int) uint64 {
	return roundConstants[i]
}

// RotationOffset returns the ρ rotation amount of lane (x, y). Coordinates are reduced modulo 5.
func RotationOffset(x, y int) uint {
	return rhoOffsets[index(x, y)]
}

// RoundConstants returns a copy of the round constant table.
func RoundConstants() [Rounds]uint64 {
	return roundConstants
}

// roundConstantLFSR derives the constant of round i from the rc(t) recurrence of FIPS 202, section 3.2.5.
func roundConstantLFSR(i int) uint64 {
	var c uint64
	for j := 0; j < 7; j++ {
		c |= rcBit(j+7*i) << ((1 << j) - 1)
	}
	return c
}

func rcBit(t int) uint64 {
	r := uint16(1)
	for n := t % 255; n > 0; n-- {
		r <<= 1
		if r&0x100 != 0 {
			r ^= 0x171
		}
	}
	return uint64(r & 1)
}
