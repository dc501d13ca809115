// Package bitfield provides a packed bit array backed by a byte buffer.
//
// Bit i lives in byte i/8 at position i%8, LSB-first: bit 0 is the
// least-significant bit of byte 0. The ordering is part of the persisted
// snapshot format and must not change.
package bitfield

import "fmt"

// bitField is a concrete implementation of the BitField interface.
type bitField struct {
	data     []byte // Backing storage: each byte stores 8 bits
	bitCount uint64 // Total number of addressable bits
}

// New creates a bit field with the specified number of bits, all zero.
// The buffer is exactly ceil(bitCount/8) bytes.
func New(bitCount uint64) BitField {
	numBytes := (bitCount + 7) / 8
	return &bitField{
		data:     make([]byte, numBytes),
		bitCount: bitCount,
	}
}

// NewFromBytes reconstructs a bit field from a persisted buffer. The buffer
// must be exactly ceil(bitCount/8) bytes; it is copied, not aliased.
func NewFromBytes(bitCount uint64, data []byte) (BitField, error) {
	numBytes := (bitCount + 7) / 8
	if uint64(len(data)) != numBytes {
		return nil, fmt.Errorf("bitfield: buffer is %d bytes, want %d for %d bits", len(data), numBytes, bitCount)
	}
	buf := make([]byte, numBytes)
	copy(buf, data)
	return &bitField{
		data:     buf,
		bitCount: bitCount,
	}, nil
}

// SetBit sets the bit at position i to 1.
func (b *bitField) SetBit(i uint64) {
	if i >= b.bitCount {
		panic(fmt.Sprintf("bitfield: index %d out of range [0, %d)", i, b.bitCount))
	}
	b.data[i/8] |= 1 << (i % 8)
}

// GetBit returns true if the bit at position i is set.
func (b *bitField) GetBit(i uint64) bool {
	if i >= b.bitCount {
		panic(fmt.Sprintf("bitfield: index %d out of range [0, %d)", i, b.bitCount))
	}
	return (b.data[i/8] & (1 << (i % 8))) != 0
}

// Len returns the total number of addressable bits.
func (b *bitField) Len() uint64 {
	return b.bitCount
}

// Bytes returns the underlying byte buffer.
func (b *bitField) Bytes() []byte {
	return b.data
}
