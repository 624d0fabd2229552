// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's standard audio file format, commonly used on macOS.
//
// # Supported Formats
//
// Currently supported:
//   - AIFF (Audio Interchange File Format)
//   - PCM 16, 24 and 32 bits, big-endian on disk
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aif")
//	dec, err := aiff.New(file)
//	if err != nil {
//	    // *audio.Error of kind audio.KindAIFF
//	}
//	defer dec.Close()
//
//	p, err := dec.NextPacket()
//
// Packets are audio.Samples with values normalized to [-1.0, 1.0].
//
// # Seeking
//
// Seek reparses the header and skips samples, so it costs time
// proportional to the target position.
package aiff
