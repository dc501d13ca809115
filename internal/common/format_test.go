package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		n        uint64
		expected string
	}{
		{"Zero", 0, "0bytes"},
		{"One", 1, "1bytes"},
		{"JustBelowKb", 1023, "1023bytes"},
		{"OneKb", 1024, "1Kb"},
		{"OneAndAHalfKb", 1536, "1.5Kb"},
		{"FilterSized", 1199, "1.1709Kb"},
		{"OneMb", 1 << 20, "1Mb"},
		{"OneGb", 1 << 30, "1Gb"},
		{"Fractional", 123456789, "117.7376Mb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, FormatBytes(tt.n))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"Microseconds", 5 * time.Microsecond, "5.00 us"},
		{"SubMillisecond", 500 * time.Microsecond, "0.50 ms"},
		{"Milliseconds", 1234 * time.Microsecond, "1.23 ms"},
		{"Seconds", 2500 * time.Millisecond, "2.50 s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, formatDuration(tt.duration))
		})
	}
}
