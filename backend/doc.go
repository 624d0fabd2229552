// SPDX-License-Identifier: EPL-2.0

// Package backend holds the playback sinks compiled into audplay.
//
// Every backend registers itself from init with a fixed rank; Registry
// sorts them by rank, so the default (first) backend does not depend on
// file order. Build tags decide what is compiled in:
//
//	name        rank  device                         formats
//	oto         10    ignored (system default)       F32, S16
//	pipe        20    file path, "" or "-" = stdout  all, OggData passed through
//	subprocess  30    shell command fed on stdin     all, OggData passed through
//	wav         40    output file path (required)    S16, S24, S24_3, S32
//
// Building with -tags nooto drops the oto backend, making pipe the default.
//
// # Usage
//
//	sink, err := backend.Open("", "", pcm.S16) // default backend
//	if err != nil {
//	    return err
//	}
//	if err := sink.Start(); err != nil {
//	    return err
//	}
//	defer sink.Stop()
//
// All sinks play interleaved stereo at 44.1kHz (audio.SampleRate,
// audio.Channels).
package backend
