package common

import (
	"encoding/binary"
	"errors"
	"io"
)

// ErrValueOverflow reports a 16-byte field whose value does not fit in a
// uint64. The snapshot format admits values up to 2^128-1; this
// implementation only represents the low 64 bits and refuses to truncate.
var ErrValueOverflow = errors.New("common: value exceeds 64 bits")

// Uint128Len is the encoded width of a snapshot header field.
const Uint128Len = 16

// WriteUint128LE writes v as a 16-byte little-endian unsigned integer.
// The high 8 bytes are always zero.
func WriteUint128LE(w io.Writer, v uint64) (int, error) {
	var buf [Uint128Len]byte
	binary.LittleEndian.PutUint64(buf[:8], v)
	return w.Write(buf[:])
}

// ReadUint128LE reads a 16-byte little-endian unsigned integer. Returns
// ErrValueOverflow if the high 8 bytes are nonzero.
func ReadUint128LE(r io.Reader) (uint64, error) {
	var buf [Uint128Len]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	for _, b := range buf[8:] {
		if b != 0 {
			return 0, ErrValueOverflow
		}
	}
	return binary.LittleEndian.Uint64(buf[:8]), nil
}

func WriteBytes(w io.Writer, data []byte) (int, error) {
	return w.Write(data)
}

func ReadBytes(r io.Reader, length uint64) ([]byte, error) {
	if length == 0 {
		return nil, nil
	}
	data := make([]byte, length)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, err
	}
	return data, nil
}
