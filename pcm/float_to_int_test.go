// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"math"
	"testing"
)

func TestFloat32ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input float32
		want  int16
	}{
		{
			name:  "zero",
			input: 0.0,
			want:  0,
		},
		{
			name:  "max positive",
			input: 1.0,
			want:  math.MaxInt16,
		},
		{
			name:  "max negative",
			input: -1.0,
			want:  -math.MaxInt16,
		},
		{
			name:  "half positive",
			input: 0.5,
			want:  16384, // 16383.5 rounds away from zero
		},
		{
			name:  "half negative",
			input: -0.5,
			want:  -16384,
		},
		{
			name:  "quarter positive",
			input: 0.25,
			want:  8192, // 8191.75
		},
		{
			name:  "small positive",
			input: 0.001,
			want:  33, // 32.767
		},
		{
			name:  "small negative",
			input: -0.001,
			want:  -33,
		},
		{
			name:  "clamp over max",
			input: 2.0,
			want:  math.MaxInt16,
		},
		{
			name:  "clamp over min",
			input: -2.0,
			want:  math.MinInt16,
		},
		{
			name:  "clamp way over max",
			input: 100.0,
			want:  math.MaxInt16,
		},
		{
			name:  "clamp way under min",
			input: -100.0,
			want:  math.MinInt16,
		},
		{
			name:  "positive infinity",
			input: float32(math.Inf(1)),
			want:  math.MaxInt16,
		},
		{
			name:  "negative infinity",
			input: float32(math.Inf(-1)),
			want:  math.MinInt16,
		},
		{
			name:  "nan",
			input: float32(math.NaN()),
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Float32ToInt16(tt.input); got != tt.want {
				t.Errorf("Float32ToInt16(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloat32ToInt24(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input float32
		want  int32
	}{
		{0, 0},
		{1, MaxInt24},
		{-1, -MaxInt24},
		{0.5, 4194304},
		{-0.5, -4194304},
		{2, MaxInt24},
		{-2, MinInt24},
	}

	for _, tt := range tests {
		if got := Float32ToInt24(tt.input); got != tt.want {
			t.Errorf("Float32ToInt24(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFloat32ToInt32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input float32
		want  int32
	}{
		{0, 0},
		{1, math.MaxInt32},
		{-1, -math.MaxInt32},
		{0.5, 1073741824},
		{-0.5, -1073741824},
		{2, math.MaxInt32},
		{-2, math.MinInt32},
	}

	for _, tt := range tests {
		if got := Float32ToInt32(tt.input); got != tt.want {
			t.Errorf("Float32ToInt32(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

// TestRoundScale_HalfAwayFromZero pins the rounding mode with a factor
// where half-to-even would give a different answer.
func TestRoundScale_HalfAwayFromZero(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  float32
		factor float64
		want   int64
	}{
		{0.5, 5, 3},   // 2.5
		{-0.5, 5, -3}, // -2.5
		{0.5, 9, 5},   // 4.5
		{0.25, 2, 1},  // 0.5
		{-0.25, 2, -1},
	}

	for _, tt := range tests {
		if got := roundScale(tt.input, tt.factor); got != tt.want {
			t.Errorf("roundScale(%v, %v) = %v, want %v", tt.input, tt.factor, got, tt.want)
		}
	}
}

// TestFloat32ToInt16_QuantizationError checks the round trip stays within one step.
func TestFloat32ToInt16_QuantizationError(t *testing.T) {
	t.Parallel()

	const step = 1.0 / 32767.0

	for f := -1.0; f <= 1.0; f += 0.0007 {
		x := float32(f)
		back := float64(Float32ToInt16(x)) / 32767.0

		if diff := math.Abs(back - float64(x)); diff > step {
			t.Errorf("Float32ToInt16(%v) round trip = %v, diff %v > %v", x, back, diff, step)
		}
	}
}

// TestFloat32ToInt16Symmetry tests that conversion is symmetric
func TestFloat32ToInt16Symmetry(t *testing.T) {
	t.Parallel()

	testVals := []float32{0.1, 0.25, 0.5, 0.75, 0.9, 0.99, 1.0}

	for _, val := range testVals {
		pos := Float32ToInt16(val)
		neg := Float32ToInt16(-val)

		if pos != -neg {
			t.Errorf("Float32ToInt16 not symmetric: +%v=%v, -%v=%v",
				val, pos, val, neg)
		}
	}
}

// TestFloat32ToInt16Monotonic tests that function is monotonic
func TestFloat32ToInt16Monotonic(t *testing.T) {
	t.Parallel()

	prev := Float32ToInt16(-1.5)

	for f := -1.49; f <= 1.5; f += 0.01 {
		curr := Float32ToInt16(float32(f))
		if curr < prev {
			t.Errorf("Float32ToInt16 not monotonic: f=%v gives %v, but previous was %v",
				f, curr, prev)
		}
		prev = curr
	}
}

// BenchmarkFloat32ToInt16 tests performance and allocations
func BenchmarkFloat32ToInt16(b *testing.B) {
	var result int16
	input := float32(0.5)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		result = Float32ToInt16(input)
	}

	_ = result
}

// BenchmarkFloat32ToInt16WithClamping tests performance with out-of-range values
func BenchmarkFloat32ToInt16WithClamping(b *testing.B) {
	var result int16
	inputs := []float32{-2.0, -1.0, 0.0, 1.0, 2.0}

	b.ResetTimer()
	b.ReportAllocs()

	for i := range b.N {
		result = Float32ToInt16(inputs[i%len(inputs)])
	}

	_ = result
}

// TestFloat32ToInt16_ZeroAllocs verifies no heap allocations
func TestFloat32ToInt16_ZeroAllocs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping allocation test in short mode")
	}

	allocs := testing.AllocsPerRun(1000, func() {
		_ = Float32ToInt16(0.5)
	})

	if allocs > 0 {
		t.Errorf("Float32ToInt16 allocated %v times, want 0", allocs)
	}
}
