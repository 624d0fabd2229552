// SPDX-License-Identifier: EPL-2.0

package pcm

import "math"

const (
	// MaxInt24 is the largest value of a signed 24-bit sample.
	MaxInt24 = 1<<23 - 1
	// MinInt24 is the smallest value of a signed 24-bit sample.
	MinInt24 = -1 << 23
)

// roundScale multiplies x by factor, rounds half away from zero and
// saturates the result to [-(factor+1), factor]. NaN maps to 0.
func roundScale(x float32, factor float64) int64 {
	if math.IsNaN(float64(x)) {
		return 0
	}

	v := math.Round(float64(x) * factor)
	if v > factor {
		return int64(factor)
	}
	if v < -factor-1 {
		return int64(-factor - 1)
	}

	return int64(v)
}

// Float32ToInt16 scales a normalized sample by 32767.
// Values outside [-1, 1] saturate to the int16 range.
func Float32ToInt16(x float32) int16 {
	return int16(roundScale(x, math.MaxInt16))
}

// Float32ToInt24 scales a normalized sample by 8388607 and returns the
// 24-bit value sign-extended in an int32.
func Float32ToInt24(x float32) int32 {
	return int32(roundScale(x, MaxInt24))
}

// Float32ToInt32 scales a normalized sample by 2147483647.
func Float32ToInt32(x float32) int32 {
	return int32(roundScale(x, math.MaxInt32))
}
