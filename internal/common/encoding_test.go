package common

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteReadUint128LE(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
	}{
		{"Zero", 0},
		{"One", 1},
		{"Mid", 0x8000000000000000},
		{"Max", 0xFFFFFFFFFFFFFFFF},
		{"Large", 1234567890123456789},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := WriteUint128LE(&buf, tt.value)
			require.NoError(t, err)
			require.Equal(t, Uint128Len, n)

			result, err := ReadUint128LE(&buf)
			require.NoError(t, err)
			require.Equal(t, tt.value, result)
		})
	}
}

func TestWriteUint128LELayout(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteUint128LE(&buf, 0x0102)
	require.NoError(t, err)

	expected := make([]byte, 16)
	expected[0] = 0x02
	expected[1] = 0x01
	require.Equal(t, expected, buf.Bytes(), "little-endian, high 8 bytes zero")
}

func TestReadUint128LEOverflow(t *testing.T) {
	raw := make([]byte, 16)
	raw[8] = 1 // 2^64, one past what a uint64 can hold

	_, err := ReadUint128LE(bytes.NewReader(raw))
	require.ErrorIs(t, err, ErrValueOverflow)
}

func TestReadUint128LEShortInput(t *testing.T) {
	_, err := ReadUint128LE(bytes.NewReader(make([]byte, 7)))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, err = ReadUint128LE(bytes.NewReader(nil))
	require.ErrorIs(t, err, io.EOF)
}

func TestWriteReadBytes(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"Empty", nil},
		{"SingleByte", []byte{0x42}},
		{"SmallData", []byte("hello")},
		{"LargeData", bytes.Repeat([]byte("x"), 1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n, err := WriteBytes(&buf, tt.data)
			require.NoError(t, err)
			require.Equal(t, len(tt.data), n)

			result, err := ReadBytes(&buf, uint64(len(tt.data)))
			require.NoError(t, err)
			if len(tt.data) == 0 {
				require.Nil(t, result)
			} else {
				require.Equal(t, tt.data, result)
			}
		})
	}
}

func TestReadBytesShortInput(t *testing.T) {
	_, err := ReadBytes(bytes.NewReader([]byte("abc")), 10)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
