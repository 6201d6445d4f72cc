package keccak

import "github.com/pkg/errors"

// State is the 1600-bit Keccak state as 25 lanes, lane (x, y) at index x + 5*y.
//
// State is a value type: every transform takes a State and returns a new one, so no
// step ever observes a partially updated state.
type State [Lanes]uint64

func index(x, y int) int {
	return mod5(x) + 5*mod5(y)
}

func mod5(v int) int {
	v %= 5
	if v < 0 {
		v += 5
	}
	return v
}

// Lane returns lane (x, y). Coordinates are reduced modulo 5.
func (s *State) Lane(x, y int) uint64 {
	return s[index(x, y)]
}

// SetLane sets lane (x, y). Coordinates are reduced modulo 5.
func (s *State) SetLane(x, y int, v uint64) {
	s[index(x, y)] = v
}

// Bytes returns the canonical 200-byte encoding: lanes in index order, each little-endian.
func (s *State) Bytes() [StateSize]byte {
	var b [StateSize]byte
	for i, lane := range s {
		putLE64(b[8*i:], lane)
	}
	return b
}

// StateFromBytes decodes the canonical 200-byte encoding.
func StateFromBytes(b *[StateSize]byte) State {
	var s State
	for i := range s {
		s[i] = le64(b[8*i:])
	}
	return s
}

// ParseState decodes a byte slice that must hold exactly StateSize bytes.
func ParseState(b []byte) (State, error) {
	if len(b) != StateSize {
		return State{}, errors.Wrapf(ErrStateLength, "got %d bytes", len(b))
	}
	return StateFromBytes((*[StateSize]byte)(b)), nil
}

// Matrix returns the lanes as a 5x5 array indexed [x][y].
func (s *State) Matrix() [5][5]uint64 {
	var m [5][5]uint64
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			m[x][y] = s[x+5*y]
		}
	}
	return m
}

// StateFromMatrix is the inverse of Matrix.
func StateFromMatrix(m [5][5]uint64) State {
	var s State
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			s[x+5*y] = m[x][y]
		}
	}
	return s
}

// le64 reads a little-endian uint64 from at least 8 bytes.
func le64(b []byte) uint64 {
	_ = b[7]
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// putLE64 writes v little-endian into at least 8 bytes.
func putLE64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
