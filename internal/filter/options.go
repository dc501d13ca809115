package filter

import "github.com/spaolacci/murmur3"

// SeededHash maps an element and an integer seed to a bit position
// candidate. Each seed must behave as an independent hash function; the
// filter reduces results modulo its bit count before indexing. The hash must
// be deterministic: saved snapshots are only meaningful to filters using the
// same hash.
type SeededHash func(element []byte, seed uint32) uint64

// Murmur3 is the default SeededHash: murmur3 x64 128-bit, low word.
func Murmur3(element []byte, seed uint32) uint64 {
	return murmur3.Sum64WithSeed(element, seed)
}

type Options struct {
	Hash SeededHash
}

var DefaultOptions = Options{
	Hash: Murmur3,
}

type Option func(*Options)

// WithHash overrides the seeded hash used to derive bit positions. The
// choice is fixed at construction or load time.
func WithHash(h SeededHash) Option {
	return func(o *Options) {
		o.Hash = h
	}
}
