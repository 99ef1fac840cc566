package aes128

import "encoding/binary"

const (
	// KeySize is the AES-128 key length in bytes.
	KeySize = 16

	rounds        = 10
	scheduleWords = 4 * (rounds + 1)
)

// Key is a 128-bit AES key held as four words. Byte i of the raw key is
// byte i%4 of word i/4, least significant byte first.
type Key [4]uint32

// KeyFromBytes packs a raw 16-byte key into words.
func KeyFromBytes(b [KeySize]byte) Key {
	var k Key
	for i := range k {
		k[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return k
}

// Bytes returns the raw 16-byte form of k.
func (k Key) Bytes() [KeySize]byte {
	var b [KeySize]byte
	for i, w := range k {
		binary.LittleEndian.PutUint32(b[4*i:], w)
	}
	return b
}

// Schedule is the expanded key: eleven round keys of four words each.
type Schedule [scheduleWords]uint32

// RoundKey returns the four words added to the state in the given round.
func (s *Schedule) RoundKey(round int) [4]uint32 {
	return [4]uint32(s[4*round : 4*round+4])
}

// Wipe zeroes the schedule.
func (s *Schedule) Wipe() {
	clear(s[:])
}

// ExpandKey derives the round key schedule from key.
func ExpandKey(key Key) Schedule {
	var w Schedule
	copy(w[:], key[:])
	for i := len(key); i < scheduleWords; i++ {
		temp := w[i-1]
		if i%len(key) == 0 {
			temp = subWord(rotWord(temp)) ^ rcon[i/len(key)-1]
		}
		w[i] = w[i-len(key)] ^ temp
	}
	return w
}

// rotWord moves byte 0 of w to position 3, shifting the others down.
func rotWord(w uint32) uint32 {
	return w>>8 | w<<24
}

// subWord applies the S-box to each byte of w.
func subWord(w uint32) uint32 {
	return uint32(sbox[byte(w)]) |
		uint32(sbox[byte(w>>8)])<<8 |
		uint32(sbox[byte(w>>16)])<<16 |
		uint32(sbox[byte(w>>24)])<<24
}
