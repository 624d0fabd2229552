// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Converter turns normalized float32 samples into integer PCM.
//
// It keeps one scratch buffer per output type and reuses it between calls,
// so a slice returned by any method is only valid until the next call of
// the same method. A Converter must not be shared by concurrent callers.
type Converter struct {
	s16   []int16
	s24   []int32
	s32   []int32
	s24p3 []Int24
	raw   []byte
}

// NewConverter returns a Converter with empty scratch buffers.
func NewConverter() *Converter {
	return &Converter{}
}

func grow[T any](buf []T, n int) []T {
	if cap(buf) < n {
		return make([]T, n)
	}
	return buf[:n]
}

// F32ToS16 converts samples to signed 16-bit values.
func (c *Converter) F32ToS16(samples []float32) []int16 {
	c.s16 = grow(c.s16, len(samples))
	for i, x := range samples {
		c.s16[i] = Float32ToInt16(x)
	}
	return c.s16
}

// F32ToS24 converts samples to 24-bit values sign-extended in int32.
func (c *Converter) F32ToS24(samples []float32) []int32 {
	c.s24 = grow(c.s24, len(samples))
	for i, x := range samples {
		c.s24[i] = Float32ToInt24(x)
	}
	return c.s24
}

// F32ToS32 converts samples to signed 32-bit values.
func (c *Converter) F32ToS32(samples []float32) []int32 {
	c.s32 = grow(c.s32, len(samples))
	for i, x := range samples {
		c.s32[i] = Float32ToInt32(x)
	}
	return c.s32
}

// F32ToS24Packed3 converts samples to packed 3-byte 24-bit values.
func (c *Converter) F32ToS24Packed3(samples []float32) []Int24 {
	c.s24p3 = grow(c.s24p3, len(samples))
	for i, x := range samples {
		c.s24p3[i] = NewInt24(Float32ToInt24(x))
	}
	return c.s24p3
}

// Bytes returns the little-endian wire representation of samples in the
// given format. The result has len(samples)*format.SampleSize() bytes.
// For F32 the samples are only serialized, not converted.
//
// Bytes panics if format is not a defined Format.
func (c *Converter) Bytes(format Format, samples []float32) []byte {
	if !format.Valid() {
		panic(fmt.Sprintf("pcm: unknown format %d", int(format)))
	}

	c.raw = grow(c.raw, len(samples)*format.SampleSize())
	out := c.raw

	switch format {
	case F32:
		for i, x := range samples {
			binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(x))
		}
	case S32:
		for i, v := range c.F32ToS32(samples) {
			binary.LittleEndian.PutUint32(out[i*4:], uint32(v))
		}
	case S24:
		for i, v := range c.F32ToS24(samples) {
			binary.LittleEndian.PutUint32(out[i*4:], uint32(v))
		}
	case S24Packed3:
		for i, v := range c.F32ToS24Packed3(samples) {
			copy(out[i*3:i*3+3], v[:])
		}
	case S16:
		for i, v := range c.F32ToS16(samples) {
			binary.LittleEndian.PutUint16(out[i*2:], uint16(v))
		}
	}

	return out
}
