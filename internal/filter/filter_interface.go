package filter

// Filter is a probabilistic membership set. Lookup can return false
// positives but never false negatives: an added element is always reported
// as present.
type Filter interface {
	// Add inserts an element into the filter. Re-adding an element is a
	// no-op: it sets the same bits.
	Add(element []byte)

	// Lookup reports whether element might be in the set. A false result
	// is definitive; a true result may be a false positive.
	Lookup(element []byte) bool

	// Size returns the filter's bit count.
	Size() uint64

	// HashCount returns the number of seeded hash rounds per element.
	HashCount() uint32

	// ByteSize returns the size of the bit buffer in bytes, ceil(Size/8).
	ByteSize() uint64

	// ByteSizeHuman returns ByteSize formatted with binary magnitude
	// suffixes, e.g. "1.1709Kb".
	ByteSizeHuman() string
}
