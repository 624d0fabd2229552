// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV file decoding.
//
// Parsing is done by github.com/go-audio/wav, which walks the RIFF chunks,
// so files with extra chunks before "fmt " or "data" are accepted.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	dec, err := wav.New(file)
//	if err != nil {
//	    // *audio.Error of kind audio.KindWAV
//	}
//	defer dec.Close()
//
//	p, err := dec.NextPacket()
//
// # Supported Formats
//
//   - Integer PCM (format tag 1)
//   - WAVE_FORMAT_EXTENSIBLE (tag 0xFFFE) with the PCM sub-format
//   - 16, 24 and 32 bits per sample
//   - Any channel count and sample rate
//
// Samples are normalized to float32 by dividing by 2^(bits-1).
//
// # Writing
//
// Writing WAV files is done by the wav playback backend in package backend.
package wav
