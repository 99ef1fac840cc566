// Package aes128 implements the AES-128 block cipher as specified in FIPS-197:
// key expansion and single-block encryption and decryption.
//
// The implementation is table-driven and is not constant time. It keeps no
// package-level mutable state, so all functions are safe for concurrent use.
package aes128

// Encrypt encrypts one block under key.
func Encrypt(block Block, key Key) Block {
	s := loadState(&block)
	ks := ExpandKey(key)
	defer ks.Wipe()

	s.addRoundKey(0, &ks)
	for round := 1; round < rounds; round++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(round, &ks)
	}

	// Final round (no mixColumns).
	s.subBytes()
	s.shiftRows()
	s.addRoundKey(rounds, &ks)

	return s.store()
}

// Decrypt decrypts one block under key. It reuses the forward key schedule and
// walks it from the last round key back to the first.
func Decrypt(block Block, key Key) Block {
	s := loadState(&block)
	ks := ExpandKey(key)
	defer ks.Wipe()

	s.addRoundKey(rounds, &ks)
	for round := rounds - 1; round > 0; round-- {
		s.invShiftRows()
		s.invSubBytes()
		s.addRoundKey(round, &ks)
		s.invMixColumns()
	}

	s.invShiftRows()
	s.invSubBytes()
	s.addRoundKey(0, &ks)

	return s.store()
}
