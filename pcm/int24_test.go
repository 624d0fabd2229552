// SPDX-License-Identifier: EPL-2.0

package pcm

import "testing"

func TestNewInt24(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    int32
		expected Int24
	}{
		{"zero", 0, Int24{0, 0, 0}},
		{"positive", 0x123456, Int24{0x56, 0x34, 0x12}},
		{"negative", -256, Int24{0x00, 0xFF, 0xFF}},
		{"max", MaxInt24, Int24{0xFF, 0xFF, 0x7F}},
		{"min", MinInt24, Int24{0x00, 0x00, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := NewInt24(tt.input); got != tt.expected {
				t.Errorf("NewInt24(%d) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestInt24_RoundTrip(t *testing.T) {
	t.Parallel()

	for v := int32(MinInt24); v <= MaxInt24; v += 997 {
		if got := NewInt24(v).Int32(); got != v {
			t.Fatalf("NewInt24(%d).Int32() = %d", v, got)
		}
	}

	for _, v := range []int32{MinInt24, -1, 0, 1, MaxInt24} {
		if got := NewInt24(v).Int32(); got != v {
			t.Errorf("NewInt24(%d).Int32() = %d", v, got)
		}
	}
}
