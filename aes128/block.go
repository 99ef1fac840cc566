package aes128

import (
	"crypto/cipher"
	"strconv"
)

// KeySizeError is returned for keys that are not exactly KeySize bytes.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "aes128: invalid key size " + strconv.Itoa(int(k))
}

// BlockSizeError is returned for blocks that are not exactly BlockSize bytes.
type BlockSizeError int

func (b BlockSizeError) Error() string {
	return "aes128: invalid block size " + strconv.Itoa(int(b))
}

func checkSizes(src, key []byte) error {
	if len(key) != KeySize {
		return KeySizeError(len(key))
	}
	if len(src) != BlockSize {
		return BlockSizeError(len(src))
	}
	return nil
}

// EncryptBlock encrypts a single 16-byte block with a 16-byte key.
func EncryptBlock(src, key []byte) ([]byte, error) {
	if err := checkSizes(src, key); err != nil {
		return nil, err
	}
	out := Encrypt(Block(src), KeyFromBytes([KeySize]byte(key)))
	return out[:], nil
}

// DecryptBlock decrypts a single 16-byte block with a 16-byte key.
func DecryptBlock(src, key []byte) ([]byte, error) {
	if err := checkSizes(src, key); err != nil {
		return nil, err
	}
	out := Decrypt(Block(src), KeyFromBytes([KeySize]byte(key)))
	return out[:], nil
}

// blockCipher adapts the package to cipher.Block. The key schedule is
// rebuilt on every call and never stored.
type blockCipher struct {
	key Key
}

// NewCipher returns a cipher.Block for key, which must be 16 bytes.
func NewCipher(key []byte) (cipher.Block, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	return &blockCipher{key: KeyFromBytes([KeySize]byte(key))}, nil
}

func (c *blockCipher) BlockSize() int { return BlockSize }

func (c *blockCipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes128: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes128: output not full block")
	}
	out := Encrypt(Block(src[:BlockSize]), c.key)
	copy(dst, out[:])
}

func (c *blockCipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("aes128: input not full block")
	}
	if len(dst) < BlockSize {
		panic("aes128: output not full block")
	}
	out := Decrypt(Block(src[:BlockSize]), c.key)
	copy(dst, out[:])
}
