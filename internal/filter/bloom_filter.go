// Package filter implements a Bloom filter over a packed bit field.
package filter

import (
	"errors"
	"fmt"

	"bloomkit/internal/bitfield"
	"bloomkit/internal/common"
)

// ErrInvalidParameters reports construction inputs that cannot produce a
// usable filter.
var ErrInvalidParameters = errors.New("filter: invalid parameters")

// bloomFilter maps elements to bit positions by hashing with seeds
// 0..hashCount-1 and reducing each result modulo size.
type bloomFilter struct {
	bits      bitfield.BitField
	size      uint64 // number of bits
	hashCount uint32 // seeded hash rounds per element
	hash      SeededHash
}

var _ Filter = (*bloomFilter)(nil)

// New creates a filter sized for expectedItems elements at the target false
// positive rate fpRate, which must lie strictly between 0 and 1.
func New(expectedItems uint64, fpRate float64, opts ...Option) (Filter, error) {
	if expectedItems == 0 {
		return nil, fmt.Errorf("%w: expected items must be positive", ErrInvalidParameters)
	}
	if !(fpRate > 0 && fpRate < 1) { // also rejects NaN
		return nil, fmt.Errorf("%w: false positive rate must be in (0, 1), got %g", ErrInvalidParameters, fpRate)
	}

	o := DefaultOptions
	for _, fn := range opts {
		fn(&o)
	}

	size := IdealSize(expectedItems, fpRate)
	return &bloomFilter{
		bits:      bitfield.New(size),
		size:      size,
		hashCount: IdealHashCount(size, expectedItems),
		hash:      o.Hash,
	}, nil
}

// Add inserts an element into the filter.
func (bf *bloomFilter) Add(element []byte) {
	for seed := uint32(0); seed < bf.hashCount; seed++ {
		bf.bits.SetBit(bf.hash(element, seed) % bf.size)
	}
}

// Lookup reports whether element might be in the set. Short-circuits on the
// first unset bit.
func (bf *bloomFilter) Lookup(element []byte) bool {
	for seed := uint32(0); seed < bf.hashCount; seed++ {
		if !bf.bits.GetBit(bf.hash(element, seed) % bf.size) {
			return false
		}
	}
	return true
}

// Size returns the filter's bit count.
func (bf *bloomFilter) Size() uint64 {
	return bf.size
}

// HashCount returns the number of seeded hash rounds per element.
func (bf *bloomFilter) HashCount() uint32 {
	return bf.hashCount
}

// ByteSize returns the size of the bit buffer in bytes.
func (bf *bloomFilter) ByteSize() uint64 {
	return (bf.size + 7) / 8
}

// ByteSizeHuman returns ByteSize formatted with binary magnitude suffixes.
func (bf *bloomFilter) ByteSizeHuman() string {
	return common.FormatBytes(bf.ByteSize())
}
