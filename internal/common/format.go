package common

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Binary (1024-based) magnitude suffixes, smallest first.
var byteSuffixes = []string{"bytes", "Kb", "Mb", "Gb", "Tb", "Pb", "Eb", "Zb", "Yb"}

// FormatBytes renders n using the largest binary magnitude suffix for which
// the scaled value is at least 1, rounded to 4 decimal places.
// Examples: "1023bytes", "1.1709Kb".
func FormatBytes(n uint64) string {
	order := 0
	if n > 0 {
		order = int(math.Log2(float64(n))) / 10
	}
	if order >= len(byteSuffixes) {
		order = len(byteSuffixes) - 1
	}
	scaled := float64(n) / float64(uint64(1)<<(order*10))
	rounded := math.Round(scaled*1e4) / 1e4
	return strconv.FormatFloat(rounded, 'f', -1, 64) + byteSuffixes[order]
}

// formatDuration formats a duration with 2 decimal places, picking seconds,
// milliseconds, or microseconds as appropriate.
func formatDuration(d time.Duration) string {
	ms := float64(d) / float64(time.Millisecond)

	if ms >= 1000 {
		return fmt.Sprintf("%.2f s", ms/1000)
	} else if ms < 0.01 {
		return fmt.Sprintf("%.2f us", ms*1000)
	}
	return fmt.Sprintf("%.2f ms", ms)
}
