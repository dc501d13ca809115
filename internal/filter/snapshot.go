package filter

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"bloomkit/internal/bitfield"
	"bloomkit/internal/common"
)

// Snapshot layout, little-endian throughout:
//
//	offset 0:  size as a 16-byte unsigned integer
//	offset 16: hashcount as a 16-byte unsigned integer
//	offset 32: raw bit buffer, exactly ceil(size/8) bytes
//
// The 16-byte field width admits values up to 2^128-1 and is fixed for file
// compatibility. Bit buffer bytes are LSB-first (see bitfield).

// ErrCorruptData reports a snapshot that is truncated or whose header is
// inconsistent with the remaining bytes.
var ErrCorruptData = errors.New("filter: corrupt snapshot")

// Write serializes f to w in the snapshot layout.
// Returns the number of bytes written.
func Write(w io.Writer, f Filter) (int, error) {
	bf := f.(*bloomFilter)
	total := 0

	n, err := common.WriteUint128LE(w, bf.size)
	total += n
	if err != nil {
		return total, err
	}

	n, err = common.WriteUint128LE(w, uint64(bf.hashCount))
	total += n
	if err != nil {
		return total, err
	}

	n, err = common.WriteBytes(w, bf.bits.Bytes())
	total += n
	if err != nil {
		return total, err
	}

	return total, nil
}

// Read deserializes a filter from r. The size and hash count come from the
// snapshot header; the sizing formulas are not consulted. The header is
// validated against the remaining byte count, and a fresh bit field is built
// from the decoded buffer.
func Read(r io.Reader, opts ...Option) (Filter, error) {
	o := DefaultOptions
	for _, fn := range opts {
		fn(&o)
	}

	size, err := readHeaderField(r, "size")
	if err != nil {
		return nil, err
	}
	hashCount, err := readHeaderField(r, "hashcount")
	if err != nil {
		return nil, err
	}

	if size == 0 {
		return nil, fmt.Errorf("%w: size is zero", ErrCorruptData)
	}
	if hashCount == 0 {
		return nil, fmt.Errorf("%w: hashcount is zero", ErrCorruptData)
	}
	if hashCount > math.MaxUint32 {
		return nil, fmt.Errorf("%w: hashcount %d is implausible", ErrCorruptData, hashCount)
	}

	numBytes := (size + 7) / 8
	buf, err := common.ReadBytes(r, numBytes)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: bit buffer shorter than %d bytes", ErrCorruptData, numBytes)
		}
		return nil, fmt.Errorf("failed to read bit buffer: %w", err)
	}
	var tail [1]byte
	if _, err := io.ReadFull(r, tail[:]); err == nil {
		return nil, fmt.Errorf("%w: trailing bytes after bit buffer", ErrCorruptData)
	}

	bits, err := bitfield.NewFromBytes(size, buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	return &bloomFilter{
		bits:      bits,
		size:      size,
		hashCount: uint32(hashCount),
		hash:      o.Hash,
	}, nil
}

// readHeaderField reads one 16-byte header field, mapping truncation and
// overflow to ErrCorruptData.
func readHeaderField(r io.Reader, name string) (uint64, error) {
	v, err := common.ReadUint128LE(r)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, fmt.Errorf("%w: truncated header reading %s", ErrCorruptData, name)
		}
		if errors.Is(err, common.ErrValueOverflow) {
			return 0, fmt.Errorf("%w: %s exceeds 64 bits", ErrCorruptData, name)
		}
		return 0, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return v, nil
}

// Save writes f to a snapshot file at path, replacing any existing file.
func Save(f Filter, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := Write(file, f); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}

// Load reads a snapshot file written by Save.
func Load(path string, opts ...Option) (Filter, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	f, err := Read(file, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return f, nil
}
