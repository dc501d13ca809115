package filter

import "math"

// IdealSize returns the optimal bit count for a filter expected to hold
// expectedItems elements at the target false positive rate:
//
//	m = ceil(-n * ln(p) / ln(2)^2)
func IdealSize(expectedItems uint64, fpRate float64) uint64 {
	return uint64(math.Ceil(-float64(expectedItems) * math.Log(fpRate) / (math.Ln2 * math.Ln2)))
}

// IdealHashCount returns the optimal number of seeded hash rounds for a
// filter of size bits holding expectedItems elements:
//
//	k = floor((m / n) * ln(2))
//
// clamped to a minimum of 1. A filter with zero hash rounds would set no
// bits and report nothing as present.
func IdealHashCount(size, expectedItems uint64) uint32 {
	k := uint32(float64(size) / float64(expectedItems) * math.Ln2)
	if k < 1 {
		k = 1
	}
	return k
}

// Accuracy estimates the percentage of non-member lookups a filter of size
// bits and hashCount rounds answers correctly after elements insertions:
//
//	fp = (1 - (1 - 1/m)^(k*n))^k
//
// returning 100 - fp*100 rounded to 4 decimal places. Diagnostic only; Add
// and Lookup never consult it.
func Accuracy(size uint64, hashCount uint32, elements uint64) float64 {
	fp := math.Pow(1-math.Pow(1-1/float64(size), float64(hashCount)*float64(elements)), float64(hashCount))
	return math.Round((100-fp*100)*1e4) / 1e4
}
