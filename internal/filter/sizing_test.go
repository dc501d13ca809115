package filter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdealSize(t *testing.T) {
	tests := []struct {
		expectedItems uint64
		fpRate        float64
	}{
		{100, 0.01},
		{1000, 0.01},
		{1000, 0.001},
		{1, 0.5},
		{1000000, 0.05},
	}

	for _, tt := range tests {
		want := uint64(math.Ceil(-float64(tt.expectedItems) * math.Log(tt.fpRate) / (math.Ln2 * math.Ln2)))
		got := IdealSize(tt.expectedItems, tt.fpRate)
		require.Equal(t, want, got, "IdealSize(%d, %g)", tt.expectedItems, tt.fpRate)
		require.Positive(t, got, "IdealSize(%d, %g) must be positive", tt.expectedItems, tt.fpRate)
	}

	// Known value: 1000 items at 1% needs 9586 bits.
	require.Equal(t, uint64(9586), IdealSize(1000, 0.01))
}

func TestIdealHashCount(t *testing.T) {
	tests := []struct {
		size          uint64
		expectedItems uint64
		expected      uint32
	}{
		{9586, 1000, 6},   // floor(9.586 * ln2)
		{4793, 1000, 3},   // floor(4.793 * ln2)
		{1000, 1000, 1},   // floor(ln2) = 0, clamped
		{1, 1, 1},         // clamped
		{100000, 1000, 69}, // floor(100 * ln2)
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, IdealHashCount(tt.size, tt.expectedItems),
			"IdealHashCount(%d, %d)", tt.size, tt.expectedItems)
	}
}

func TestAccuracyMonotonicInElements(t *testing.T) {
	size := uint64(9586)
	hashCount := uint32(6)

	prev := 100.0
	for _, n := range []uint64{1, 100, 500, 1000, 2000, 5000, 10000} {
		a := Accuracy(size, hashCount, n)
		require.LessOrEqual(t, a, prev, "accuracy must not improve as elements grow (n=%d)", n)
		require.GreaterOrEqual(t, a, 0.0)
		require.LessOrEqual(t, a, 100.0)
		prev = a
	}
}

func TestAccuracyAtDesignCapacity(t *testing.T) {
	// A filter sized for 1000 items at 1% should report roughly 99%
	// accuracy when holding 1000 items.
	a := Accuracy(9586, 6, 1000)
	require.InDelta(t, 99.0, a, 0.5)
}

func TestAccuracyRoundedTo4Places(t *testing.T) {
	for _, n := range []uint64{10, 1000, 12345} {
		a := Accuracy(9586, 6, n)
		require.Equal(t, math.Round(a*1e4)/1e4, a, "Accuracy(_, _, %d) not rounded", n)
	}
}
