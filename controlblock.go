package rc5

import (
	"encoding"
	"errors"
)

// ControlBlockVersion is the version byte this package emits: 1.0 in
// packed-BCD, per the original RC5 key-management scheme.
const ControlBlockVersion = 0x10

// ErrControlBlockKeySize is returned when a control block's key does not fit
// the record's one-byte length field.
var ErrControlBlockKeySize = errors.New("rc5: control block key too long")

// ErrInvalidControlBlock is returned when unmarshaling a malformed control
// block.
var ErrInvalidControlBlock = errors.New("rc5: invalid control block")

// A ControlBlock packages a full RC5 parameterization together with its
// secret key for transmission to other implementations. The wire layout is
// b+4 bytes: one byte each of version, word size in bits, round count, and
// key length, followed by the key itself.
//
// The one-byte length field caps the key at 255 bytes, one short of the
// cipher's own MaxKeySize; the record format, not the cipher, imposes that
// limit.
type ControlBlock struct {
	Version  uint8
	WordSize uint8
	Rounds   uint8
	Key      []byte
}

// NominalControlBlock returns a ControlBlock for the given key with the
// nominal RC5-32/16 parameters.
func NominalControlBlock(key []byte) ControlBlock {
	return ControlBlock{
		Version:  ControlBlockVersion,
		WordSize: 32,
		Rounds:   16,
		Key:      key,
	}
}

// AppendBinary appends the packed record to b.
func (cb ControlBlock) AppendBinary(b []byte) ([]byte, error) {
	if len(cb.Key) > 255 {
		return nil, ErrControlBlockKeySize
	}
	b = append(b, cb.Version, cb.WordSize, cb.Rounds, uint8(len(cb.Key)))
	return append(b, cb.Key...), nil
}

// MarshalBinary returns the packed record.
func (cb ControlBlock) MarshalBinary() ([]byte, error) {
	return cb.AppendBinary(make([]byte, 0, 4+len(cb.Key)))
}

// UnmarshalBinary unpacks a record produced by MarshalBinary. The key is
// copied out of data.
func (cb *ControlBlock) UnmarshalBinary(data []byte) error {
	if len(data) < 4 || len(data) != 4+int(data[3]) {
		return ErrInvalidControlBlock
	}
	cb.Version = data[0]
	cb.WordSize = data[1]
	cb.Rounds = data[2]
	cb.Key = append([]byte(nil), data[4:]...)
	return nil
}

var (
	_ encoding.BinaryAppender    = ControlBlock{}
	_ encoding.BinaryMarshaler   = ControlBlock{}
	_ encoding.BinaryUnmarshaler = (*ControlBlock)(nil)
)
