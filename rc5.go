// Package rc5 implements the [RC5] block cipher, parameterized over word
// size and round count.
//
// RC5 is a symmetric cipher: the same secret key encrypts and decrypts. A
// parameterization is written RC5-w/r/b, where w is the word size in bits
// (16, 32, or 64; a block is two words), r is the number of rounds (0 to
// 256), and b is the secret key length in bytes (0 to 256). The nominal
// choice is RC5-32/16/16: 32-bit words, 16 rounds, a 16-byte key.
//
// This is the bare block cipher. There is no mode of operation or padding
// here; Encode and Decode transform each block independently, so equal
// plaintext blocks produce equal ciphertext blocks. Compose a Cipher with a
// proper mode before encrypting anything larger than a block.
//
// [RC5]: https://www.grc.com/r&d/rc5.pdf
package rc5

import (
	"crypto/cipher"

	"github.com/codahale/rc5/internal/mem"
)

// A Cipher holds the round-key table expanded from one secret key and round
// count. It is immutable after construction and safe for concurrent use.
type Cipher[W Word[W]] struct {
	table  []W
	rounds int
}

// New returns a Cipher for the given secret key, using the nominal round
// count for the width W: 12 for Word16, 16 for Word32, 20 for Word64.
func New[W Word[W]](key []byte) (*Cipher[W], error) {
	var zero W
	return NewWithRounds[W](key, zero.NominalRounds())
}

// NewWithRounds returns a Cipher for the given secret key and round count.
//
// The key may be 0 to MaxKeySize bytes and rounds 0 to MaxRounds; otherwise a
// KeySizeError or RoundCountError is returned before any expansion runs. The
// key is copied, and the copy is wiped once the round-key table is built.
func NewWithRounds[W Word[W]](key []byte, rounds int) (*Cipher[W], error) {
	sk, err := NewSecretKey(key)
	if err != nil {
		return nil, err
	}
	defer sk.Destroy()

	if rounds < 0 || rounds > MaxRounds {
		return nil, RoundCountError(rounds)
	}

	return &Cipher[W]{table: expandKey[W](sk, rounds), rounds: rounds}, nil
}

// Rounds returns the cipher's round count.
func (c *Cipher[W]) Rounds() int { return c.rounds }

// BlockSize returns the cipher's block size in bytes: two words.
func (c *Cipher[W]) BlockSize() int {
	var zero W
	return 2 * zero.Bytes()
}

// Encode encrypts src and appends the ciphertext to dst, returning the
// updated slice. The length of src must be a multiple of BlockSize; blocks
// are transformed independently.
func (c *Cipher[W]) Encode(dst, src []byte) []byte {
	return c.transform(dst, src, encryptBlock[W])
}

// Decode decrypts src and appends the plaintext to dst, returning the
// updated slice. The length of src must be a multiple of BlockSize.
func (c *Cipher[W]) Decode(dst, src []byte) []byte {
	return c.transform(dst, src, decryptBlock[W])
}

// Encrypt encrypts the first block of src into dst, per the
// [crypto/cipher.Block] contract. Dst and src may overlap entirely.
func (c *Cipher[W]) Encrypt(dst, src []byte) {
	var zero W
	u := zero.Bytes()
	if len(src) < 2*u {
		panic("rc5: input not full block")
	}
	if len(dst) < 2*u {
		panic("rc5: output not full block")
	}

	a, b := encryptBlock(c.table, c.rounds, zero.LoadLE(src), zero.LoadLE(src[u:]))
	a.PutLE(dst)
	b.PutLE(dst[u:])
}

// Decrypt decrypts the first block of src into dst, per the
// [crypto/cipher.Block] contract. Dst and src may overlap entirely.
func (c *Cipher[W]) Decrypt(dst, src []byte) {
	var zero W
	u := zero.Bytes()
	if len(src) < 2*u {
		panic("rc5: input not full block")
	}
	if len(dst) < 2*u {
		panic("rc5: output not full block")
	}

	a, b := decryptBlock(c.table, c.rounds, zero.LoadLE(src), zero.LoadLE(src[u:]))
	a.PutLE(dst)
	b.PutLE(dst[u:])
}

func (c *Cipher[W]) transform(dst, src []byte, f func([]W, int, W, W) (W, W)) []byte {
	var zero W
	u := zero.Bytes()
	bs := 2 * u
	if len(src)%bs != 0 {
		panic("rc5: input not a multiple of the block size")
	}

	ret, out := mem.SliceForAppend(dst, len(src))
	for off := 0; off < len(src); off += bs {
		a, b := f(c.table, c.rounds, zero.LoadLE(src[off:]), zero.LoadLE(src[off+u:]))
		a.PutLE(out[off:])
		b.PutLE(out[off+u:])
	}
	return ret
}

var (
	_ cipher.Block = (*Cipher[Word16])(nil)
	_ cipher.Block = (*Cipher[Word32])(nil)
	_ cipher.Block = (*Cipher[Word64])(nil)
)
