// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"
	"testing"
)

func TestSampleOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ms   int64
		rate int
		want int64
	}{
		{"zero", 0, 44100, 0},
		{"negative", -50, 44100, 0},
		{"one second", 1000, 44100, 44100},
		{"truncates", 100, 44100, 4410},
		{"sub-sample", 1, 44100, 44},
		{"zero rate", 1000, 0, 0},
		{"max position saturates", math.MaxInt64, 44100, 9223372036854744},
		{"just past the limit saturates", math.MaxInt64/44100 + 1, 44100, 9223372036854744},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SampleOffset(tt.ms, tt.rate)
			if got != tt.want {
				t.Errorf("SampleOffset(%d, %d) = %d, want %d", tt.ms, tt.rate, got, tt.want)
			}
			if got < 0 {
				t.Errorf("SampleOffset(%d, %d) is negative", tt.ms, tt.rate)
			}
		})
	}
}
