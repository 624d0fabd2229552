// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	"github.com/ik5/audplay/pcm"
)

const (
	// SampleRate of the stream every sink plays, in Hz.
	SampleRate = 44100
	// Channels of the stream every sink plays (interleaved stereo).
	Channels = 2
)

// SampleOffset converts a position in milliseconds to a per-channel sample
// index at rate. Negative positions map to 0 and positions too large for
// int64 arithmetic saturate.
func SampleOffset(ms int64, rate int) int64 {
	if ms <= 0 || rate <= 0 {
		return 0
	}
	return min(ms, math.MaxInt64/int64(rate)) * int64(rate) / 1000
}

// Decoder produces a finite sequence of packets from one stream.
//
// NextPacket returns (nil, io.EOF) once the stream is exhausted and keeps
// returning it on every later call. Any other error is an *Error and ends
// the stream; recovering means opening a new Decoder.
//
// Seek moves to the nearest decodable point at or before ms and drops any
// buffered data. It may be called at any time, including before the first
// NextPacket and after io.EOF.
type Decoder interface {
	Seek(ms int64) error
	NextPacket() (Packet, error)
	Close() error
}

// StreamInfo is implemented by decoders that know the layout of their output.
type StreamInfo interface {
	SampleRate() int
	Channels() int
}

// Sink consumes packets and owns the output device.
//
// Start is called once before the first Write and Stop once after the last.
// Stop must be safe to call when Start was never called or failed.
type Sink interface {
	Start() error
	Stop() error
	Write(p Packet, c *pcm.Converter) error
}

// Opener creates a sink for a device (backend-defined, may be empty) and
// the format the device requires.
type Opener func(device string, format pcm.Format) (Sink, error)

// NopLifecycle gives a sink no-op Start and Stop methods when embedded.
type NopLifecycle struct{}

func (NopLifecycle) Start() error { return nil }
func (NopLifecycle) Stop() error  { return nil }
