package bitfield

// BitField is a fixed-size, densely packed array of bits. Bits can only be
// set, never cleared; the field never resizes after construction.
type BitField interface {
	// SetBit sets the bit at position i to 1.
	SetBit(i uint64)

	// GetBit returns true if the bit at position i is set.
	GetBit(i uint64) bool

	// Len returns the total number of addressable bits.
	Len() uint64

	// Bytes returns the underlying byte buffer. The buffer is live, not a
	// copy; callers must not modify it.
	Bytes() []byte
}
