// SPDX-License-Identifier: EPL-2.0

// Package pcm converts normalized float32 samples into the integer PCM
// layouts output devices expect.
//
// # Formats
//
//   - F32: float32, no conversion
//   - S32: round(x * 2147483647)
//   - S24: round(x * 8388607), sign-extended in a 4-byte word
//   - S24_3: the same 24-bit value packed in exactly 3 bytes
//   - S16: round(x * 32767)
//
// All multi-byte layouts are little-endian.
//
// # Rounding and Saturation
//
// Every integer target rounds half away from zero after scaling and then
// saturates to the full signed range of the target. Inputs are expected in
// [-1.0, 1.0]; larger magnitudes never wrap:
//
//	pcm.Float32ToInt16(2.0)  // 32767
//	pcm.Float32ToInt16(-2.0) // -32768
//
// # Converter
//
// A Converter amortizes allocations by reusing one scratch buffer per
// output type:
//
//	c := pcm.NewConverter()
//	wire := c.Bytes(pcm.S24Packed3, samples) // len(wire) == 3*len(samples)
//
// Returned slices are only valid until the next call of the same method.
package pcm
