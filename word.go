package rc5

import (
	"encoding/binary"
	"math/bits"
)

// A Word is one of the cipher's native register widths. The constraint is
// satisfied by [Word16], [Word32], and [Word64]; the method set covers the
// primitive operations the algorithm is built from: wrapping addition and
// subtraction, XOR, rotation, and little-endian packing, plus the per-width
// magic constants P and Q from section 4.3 of the RC5 paper.
//
// Rotation amounts are interpreted modulo the word's bit size. RotateLeftBy
// and RotateRightBy take a full word as the amount because intermediate sums
// used as rotation counts (A+B in the key schedule) routinely exceed the
// width; only the low lg(w) bits determine the rotation.
type Word[W any] interface {
	comparable

	// Bits is the word size w in bits.
	Bits() uint
	// Bytes is the word size in bytes, w/8.
	Bytes() int
	// NominalRounds is the published recommended round count for this width.
	NominalRounds() int
	// P and Q are the key-schedule constants, odd binary expansions of e-2
	// and the golden ratio minus one.
	P() W
	Q() W

	Add(W) W
	Sub(W) W
	Xor(W) W

	// RotateLeft rotates by a fixed count. The count must be smaller than
	// the word size; it is not reduced.
	RotateLeft(n int) W
	// RotateLeftBy rotates left by n modulo the word size.
	RotateLeftBy(n W) W
	// RotateRightBy rotates right by n modulo the word size.
	RotateRightBy(n W) W

	// FromByte widens a single key byte into a word.
	FromByte(b byte) W
	// LoadLE reads a word from the first Bytes of b, little-endian.
	LoadLE(b []byte) W
	// PutLE writes the word into the first Bytes of b, little-endian.
	PutLE(b []byte)
	// AppendLE appends the word's little-endian bytes to b.
	AppendLE(b []byte) []byte
}

// Word16 is the 16-bit register of RC5-16, giving a 32-bit block.
type Word16 uint16

func (Word16) Bits() uint         { return 16 }
func (Word16) Bytes() int         { return 2 }
func (Word16) NominalRounds() int { return 12 }
func (Word16) P() Word16          { return 0xb7e1 }
func (Word16) Q() Word16          { return 0x9e37 }

func (w Word16) Add(x Word16) Word16 { return w + x }
func (w Word16) Sub(x Word16) Word16 { return w - x }
func (w Word16) Xor(x Word16) Word16 { return w ^ x }

func (w Word16) RotateLeft(n int) Word16 { return Word16(bits.RotateLeft16(uint16(w), n)) }
func (w Word16) RotateLeftBy(n Word16) Word16 {
	return Word16(bits.RotateLeft16(uint16(w), int(n&15)))
}
func (w Word16) RotateRightBy(n Word16) Word16 {
	return Word16(bits.RotateLeft16(uint16(w), -int(n&15)))
}

func (Word16) FromByte(b byte) Word16     { return Word16(b) }
func (Word16) LoadLE(b []byte) Word16     { return Word16(binary.LittleEndian.Uint16(b)) }
func (w Word16) PutLE(b []byte)           { binary.LittleEndian.PutUint16(b, uint16(w)) }
func (w Word16) AppendLE(b []byte) []byte { return binary.LittleEndian.AppendUint16(b, uint16(w)) }

// Word32 is the 32-bit register of RC5-32, the nominal width, giving a
// 64-bit block.
type Word32 uint32

func (Word32) Bits() uint         { return 32 }
func (Word32) Bytes() int         { return 4 }
func (Word32) NominalRounds() int { return 16 }
func (Word32) P() Word32          { return 0xb7e15163 }
func (Word32) Q() Word32          { return 0x9e3779b9 }

func (w Word32) Add(x Word32) Word32 { return w + x }
func (w Word32) Sub(x Word32) Word32 { return w - x }
func (w Word32) Xor(x Word32) Word32 { return w ^ x }

func (w Word32) RotateLeft(n int) Word32 { return Word32(bits.RotateLeft32(uint32(w), n)) }
func (w Word32) RotateLeftBy(n Word32) Word32 {
	return Word32(bits.RotateLeft32(uint32(w), int(n&31)))
}
func (w Word32) RotateRightBy(n Word32) Word32 {
	return Word32(bits.RotateLeft32(uint32(w), -int(n&31)))
}

func (Word32) FromByte(b byte) Word32     { return Word32(b) }
func (Word32) LoadLE(b []byte) Word32     { return Word32(binary.LittleEndian.Uint32(b)) }
func (w Word32) PutLE(b []byte)           { binary.LittleEndian.PutUint32(b, uint32(w)) }
func (w Word32) AppendLE(b []byte) []byte { return binary.LittleEndian.AppendUint32(b, uint32(w)) }

// Word64 is the 64-bit register of RC5-64, giving a 128-bit block.
type Word64 uint64

func (Word64) Bits() uint         { return 64 }
func (Word64) Bytes() int         { return 8 }
func (Word64) NominalRounds() int { return 20 }
func (Word64) P() Word64          { return 0xb7e151628aed2a6b }
func (Word64) Q() Word64          { return 0x9e3779b97f4a7c15 }

func (w Word64) Add(x Word64) Word64 { return w + x }
func (w Word64) Sub(x Word64) Word64 { return w - x }
func (w Word64) Xor(x Word64) Word64 { return w ^ x }

func (w Word64) RotateLeft(n int) Word64 { return Word64(bits.RotateLeft64(uint64(w), n)) }
func (w Word64) RotateLeftBy(n Word64) Word64 {
	return Word64(bits.RotateLeft64(uint64(w), int(n&63)))
}
func (w Word64) RotateRightBy(n Word64) Word64 {
	return Word64(bits.RotateLeft64(uint64(w), -int(n&63)))
}

func (Word64) FromByte(b byte) Word64     { return Word64(b) }
func (Word64) LoadLE(b []byte) Word64     { return Word64(binary.LittleEndian.Uint64(b)) }
func (w Word64) PutLE(b []byte)           { binary.LittleEndian.PutUint64(b, uint64(w)) }
func (w Word64) AppendLE(b []byte) []byte { return binary.LittleEndian.AppendUint64(b, uint64(w)) }
