package keccak

import "math/bits"

// Theta XORs every lane with the parities of its two neighbouring columns.
func Theta(s State) State {
	var c [5]uint64
	for x := 0; x < 5; x++ {
		c[x] = s[x] ^ s[x+5] ^ s[x+10] ^ s[x+15] ^ s[x+20]
	}
	var out State
	for x := 0; x < 5; x++ {
		d := c[(x+4)%5] ^ bits.RotateLeft64(c[(x+1)%5], 1)
		for y := 0; y < Lanes; y += 5 {
			out[x+y] = s[x+y] ^ d
		}
	}
	return out
}

// Rho rotates every lane left by its fixed offset.
func Rho(s State) State {
	var out State
	for i, lane := range s {
		out[i] = bits.RotateLeft64(lane, int(rhoOffsets[i]))
	}
	return out
}

// Pi moves lane (x, y) to (y, 2x+3y mod 5).
func Pi(s State) State {
	var out State
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			out[y+5*((2*x+3*y)%5)] = s[x+5*y]
		}
	}
	return out
}

// Chi is the row-wise nonlinear step: a[x] ^= ^a[x+1] & a[x+2].
func Chi(s State) State {
	var out State
	for y := 0; y < Lanes; y += 5 {
		for x := 0; x < 5; x++ {
			out[x+y] = s[x+y] ^ (^s[(x+1)%5+y] & s[(x+2)%5+y])
		}
	}
	return out
}

// Iota XORs rc into lane (0, 0).
func Iota(s State, rc uint64) State {
	s[0] ^= rc
	return s
}

// ApplyRound applies one full round θ, ρ, π, χ, ι with round constant rc.
func ApplyRound(s State, rc uint64) State {
	return Iota(Chi(Pi(Rho(Theta(s)))), rc)
}
