// Package keccak implements the Keccak-f[1600] permutation.
//
// The permutation is exposed two ways. Permute and F1600 run all 24 rounds in a single
// call. Sequencer drives the same rounds one step at a time behind a start/ready
// handshake, mirroring a round-per-cycle hardware core: one latch step followed by one
// step per round, 25 steps in total.
//
// The sponge construction, padding and the SHA-3 parameter family are out of scope;
// callers absorb and squeeze on top of F1600 themselves.
package keccak

const (
	// Rounds is the number of rounds of Keccak-f[1600].
	Rounds = 24
	// Lanes is the number of 64-bit lanes in the state.
	Lanes = 25
	// StateSize is the size of the byte-encoded state: 1600 bits.
	StateSize = 200
)

// Permute applies Keccak-f[1600] to s and returns the result. s is not modified.
func Permute(s State) State {
	for _, rc := range roundConstants {
		s = ApplyRound(s, rc)
	}
	return s
}

// PermuteRounds applies Keccak-p[1600, n], the last n rounds of Keccak-f[1600].
// It panics if n is not in [0, Rounds].
func PermuteRounds(s State, n int) State {
	if n < 0 || n > Rounds {
		panic("keccak: round count out of range")
	}
	for _, rc := range roundConstants[Rounds-n:] {
		s = ApplyRound(s, rc)
	}
	return s
}

// F1600 applies Keccak-f[1600] in place to a byte-encoded state.
func F1600(a *[StateSize]byte) {
	s := StateFromBytes(a)
	s = Permute(s)
	*a = s.Bytes()
}
