// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides an Ogg Vorbis decoding strategy.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// streams into audio.Samples packets, float32 values normalized to the
// range [-1.0, 1.0].
//
// # Decoding
//
//	file, _ := os.Open("audio.ogg")
//	dec, err := vorbis.New(file)
//	if err != nil {
//	    // *audio.Error of kind audio.KindVorbis
//	}
//	defer dec.Close()
//
//	for {
//	    p, err := dec.NextPacket()
//	    if err == io.EOF {
//	        break
//	    }
//	    ...
//	}
//
// # Output Format
//
//   - Sample format: float32 in range [-1.0, 1.0]
//   - Channels: depends on the stream, interleaved [L0, R0, L1, R1, ...]
//   - Packet size: up to 4096 values, always whole frames
//
// # Seeking
//
// Seek converts milliseconds to a sample position at the stream's rate and
// calls oggvorbis.Reader.SetPosition. New buffers readers that cannot seek,
// so Seek works on any input.
// Seeking clears the end-of-stream state.
//
// # Errors
//
// Decode and seek failures are *audio.Error values. They are sticky: once
// returned, every later call returns the same error.
package vorbis
