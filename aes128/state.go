package aes128

import (
	"fmt"
	"strings"
)

// BlockSize is the AES block size in bytes.
const BlockSize = 16

// Block is one 16-byte unit of plaintext or ciphertext.
type Block [BlockSize]byte

// State is the 4x4 working matrix, indexed [row][column].
type State [4][4]byte

// loadState maps a block onto the state column by column.
func loadState(b *Block) State {
	var s State
	for i, v := range b {
		s[i%4][i/4] = v
	}
	return s
}

// store is the inverse of loadState.
func (s *State) store() Block {
	var b Block
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			b[4*c+r] = s[r][c]
		}
	}
	return b
}

// String renders the state one row per line in hex.
func (s State) String() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&sb, "%02x %02x %02x %02x\n", s[r][0], s[r][1], s[r][2], s[r][3])
	}
	return sb.String()
}

func (s *State) subBytes() {
	for r := range s {
		for c := range s[r] {
			s[r][c] = sbox[s[r][c]]
		}
	}
}

func (s *State) invSubBytes() {
	for r := range s {
		for c := range s[r] {
			s[r][c] = invSbox[s[r][c]]
		}
	}
}

// shiftRows rotates row r left by r positions.
func (s *State) shiftRows() {
	tmp := *s
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = tmp[r][(r+c)%4]
		}
	}
}

// invShiftRows rotates row r right by r positions.
func (s *State) invShiftRows() {
	tmp := *s
	for r := 1; r < 4; r++ {
		for c := 0; c < 4; c++ {
			s[r][c] = tmp[r][(c-r+4)%4]
		}
	}
}

func (s *State) mixColumns() {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[0][c], s[1][c], s[2][c], s[3][c]
		s[0][c] = gmul(2, a0) ^ gmul(3, a1) ^ a2 ^ a3
		s[1][c] = a0 ^ gmul(2, a1) ^ gmul(3, a2) ^ a3
		s[2][c] = a0 ^ a1 ^ gmul(2, a2) ^ gmul(3, a3)
		s[3][c] = gmul(3, a0) ^ a1 ^ a2 ^ gmul(2, a3)
	}
}

func (s *State) invMixColumns() {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[0][c], s[1][c], s[2][c], s[3][c]
		s[0][c] = gmul(14, a0) ^ gmul(11, a1) ^ gmul(13, a2) ^ gmul(9, a3)
		s[1][c] = gmul(9, a0) ^ gmul(14, a1) ^ gmul(11, a2) ^ gmul(13, a3)
		s[2][c] = gmul(13, a0) ^ gmul(9, a1) ^ gmul(14, a2) ^ gmul(11, a3)
		s[3][c] = gmul(11, a0) ^ gmul(13, a1) ^ gmul(9, a2) ^ gmul(14, a3)
	}
}

// addRoundKey XORs round key words into the state, word c into column c
// with its low byte in row 0. Applying it twice is a no-op.
func (s *State) addRoundKey(round int, ks *Schedule) {
	for c, w := range ks.RoundKey(round) {
		s[0][c] ^= byte(w)
		s[1][c] ^= byte(w >> 8)
		s[2][c] ^= byte(w >> 16)
		s[3][c] ^= byte(w >> 24)
	}
}
