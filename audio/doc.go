// SPDX-License-Identifier: EPL-2.0

// Package audio defines the contracts between decoders and output sinks.
//
// This package contains:
//   - Packet, the unit of audio flowing from decode to output
//   - Decoder, the capability of every decoding strategy
//   - Sink and ByteSink, the capabilities of output backends
//   - Registry, the ordered list of backends with a default
//   - Error, the decode fault union
//
// # Packets
//
// A Packet is exactly one of two types:
//
//	audio.Samples // interleaved float32 in [-1.0, 1.0]
//	audio.OggData // one raw Ogg page for passthrough playback
//
// Consumers use a type switch. AsSamples and AsOggData exist for code
// that cannot know the variant in advance. An empty packet marks the end
// of a segment, not the end of the stream.
//
// # Decoders
//
// A Decoder yields packets until it returns io.EOF, and then keeps
// returning io.EOF:
//
//	for {
//	    p, err := dec.NextPacket()
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // *audio.Error, the stream is finished
//	    }
//	    if err := sink.Write(p, conv); err != nil {
//	        return err
//	    }
//	}
//
// # Sinks
//
// Backends that only push bytes implement ByteSink and delegate Write to
// WriteBytes, which converts Samples to the sink's pcm.Format and passes
// OggData through:
//
//	func (s *mySink) Write(p audio.Packet, c *pcm.Converter) error {
//	    return audio.WriteBytes(s, s.format, p, c)
//	}
//
// Embedding NopLifecycle gives a sink no-op Start and Stop methods.
//
// # Backend Registry
//
// The registry keeps backends in registration order; the first one is the
// default:
//
//	reg := audio.NewRegistry()
//	reg.Register("pipe", openPipe)
//	open, err := reg.Find("") // pipe
//
// # Error Handling
//
// Decode faults are *audio.Error values carrying the strategy Kind and the
// original cause. Sink errors are plain I/O errors. Nothing in this package
// retries; the caller decides whether to skip a track or stop playback.
package audio
