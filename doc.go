// SPDX-License-Identifier: EPL-2.0

// Package audplay is the core of a streaming audio player.
//
// It sits between decoding and the output device:
//
//   - audio defines the Packet type (decoded samples or raw Ogg pages), the
//     Decoder and Sink contracts, and the backend Registry.
//   - pcm converts float samples into the integer PCM a device needs,
//     including packed 3-byte 24-bit.
//   - formats and its subpackages implement decoding strategies for Ogg
//     Vorbis (decoded or passed through), MP3, WAV and AIFF.
//   - backend holds the compiled-in sinks: oto, pipe, subprocess and wav.
//
// # Quick Start
//
//	dec, err := audplay.OpenFile("song.ogg", "")
//	if err != nil {
//	    return err
//	}
//	defer dec.Close()
//
//	sink, err := audplay.OpenSink("", "", "S16") // default backend
//	if err != nil {
//	    return err
//	}
//
//	err = audplay.Play(ctx, dec, sink, nil)
//
// # Passthrough
//
// Some devices accept Ogg Vorbis directly. Pair the "passthrough" decoder
// with the pipe or subprocess backend and the pages are written unmodified:
//
//	dec, _ := audplay.OpenFile("song.ogg", "passthrough")
//	sink, _ := audplay.OpenSink("subprocess", "ogg123 -", "S16")
//
// # Fixed Output Layout
//
// Sinks play interleaved stereo at 44.1kHz. Resampling and channel
// remixing are out of scope; Play logs a warning when a decoder reports a
// different layout.
package audplay
