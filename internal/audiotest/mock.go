// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"

	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/pcm"
)

// MockDecoder is a test helper that generates audio packets.
// It implements audio.Decoder and audio.StreamInfo.
type MockDecoder struct {
	sampleRate   int
	channels     int
	totalFrames  int // Total frames to generate
	packetFrames int // Frames per packet
	generated    int // Frames generated so far
	waveform     func(frame int, channel int) float32

	// Err, when set, is returned by NextPacket once FailAfter packets
	// have been delivered, and on every call after that.
	Err       error
	FailAfter int

	delivered int
	closed    bool
}

var (
	_ audio.Decoder    = (*MockDecoder)(nil)
	_ audio.StreamInfo = (*MockDecoder)(nil)
)

// NewMockDecoder creates a new mock decoder.
// waveform generates sample values given frame index and channel.
func NewMockDecoder(sampleRate, channels, totalFrames, packetFrames int, waveform func(frame int, channel int) float32) *MockDecoder {
	return &MockDecoder{
		sampleRate:   sampleRate,
		channels:     channels,
		totalFrames:  totalFrames,
		packetFrames: packetFrames,
		waveform:     waveform,
	}
}

// NewSilentDecoder creates a mock decoder that generates silence.
func NewSilentDecoder(sampleRate, channels, totalFrames int) *MockDecoder {
	return NewMockDecoder(sampleRate, channels, totalFrames, 1024, func(int, int) float32 {
		return 0.0
	})
}

// NewSineDecoder creates a mock decoder that generates a sine wave.
func NewSineDecoder(sampleRate, channels, totalFrames int, frequency float64) *MockDecoder {
	return NewMockDecoder(sampleRate, channels, totalFrames, 1024, func(frame int, _ int) float32 {
		t := float64(frame) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewRampDecoder creates a mock decoder where every sample holds its
// frame index divided by totalFrames, which makes positions easy to check.
func NewRampDecoder(sampleRate, channels, totalFrames, packetFrames int) *MockDecoder {
	return NewMockDecoder(sampleRate, channels, totalFrames, packetFrames, func(frame int, _ int) float32 {
		return float32(frame) / float32(totalFrames)
	})
}

func (m *MockDecoder) SampleRate() int { return m.sampleRate }
func (m *MockDecoder) Channels() int   { return m.channels }

// Closed reports whether Close was called.
func (m *MockDecoder) Closed() bool { return m.closed }

func (m *MockDecoder) Close() error {
	m.closed = true
	return nil
}

func (m *MockDecoder) Seek(ms int64) error {
	if m.Err != nil && m.delivered >= m.FailAfter {
		return m.Err
	}

	frame := int(max(ms, 0) * int64(m.sampleRate) / 1000)
	m.generated = min(frame, m.totalFrames)
	return nil
}

func (m *MockDecoder) NextPacket() (audio.Packet, error) {
	if m.Err != nil && m.delivered >= m.FailAfter {
		return nil, m.Err
	}
	if m.generated >= m.totalFrames {
		return nil, io.EOF
	}

	frames := min(m.packetFrames, m.totalFrames-m.generated)
	p := make(audio.Samples, frames*m.channels)
	for frame := range frames {
		for ch := range m.channels {
			p[frame*m.channels+ch] = m.waveform(m.generated+frame, ch)
		}
	}

	m.generated += frames
	m.delivered++
	return p, nil
}

// ScriptedDecoder returns a fixed list of packets, then io.EOF.
type ScriptedDecoder struct {
	Packets []audio.Packet
	next    int
}

var _ audio.Decoder = (*ScriptedDecoder)(nil)

func NewScriptedDecoder(packets ...audio.Packet) *ScriptedDecoder {
	return &ScriptedDecoder{Packets: packets}
}

// Seek treats ms as a packet index.
func (s *ScriptedDecoder) Seek(ms int64) error {
	s.next = int(min(max(ms, 0), int64(len(s.Packets))))
	return nil
}

func (s *ScriptedDecoder) NextPacket() (audio.Packet, error) {
	if s.next >= len(s.Packets) {
		return nil, io.EOF
	}
	p := s.Packets[s.next]
	s.next++
	return p, nil
}

func (s *ScriptedDecoder) Close() error { return nil }

// RecordingSink is an audio.ByteSink that keeps everything written to it.
type RecordingSink struct {
	Format pcm.Format

	Starts int
	Stops  int

	// Packets holds copies of the packets passed to Write.
	Packets []audio.Packet
	// Bytes holds the converted output, as a byte backend would send it.
	Bytes []byte

	StartErr error
	StopErr  error
	// WriteErr is returned by Write once FailAfter packets were accepted.
	WriteErr  error
	FailAfter int
}

var (
	_ audio.Sink     = (*RecordingSink)(nil)
	_ audio.ByteSink = (*RecordingSink)(nil)
)

func NewRecordingSink(format pcm.Format) *RecordingSink {
	return &RecordingSink{Format: format}
}

func (r *RecordingSink) Start() error {
	r.Starts++
	return r.StartErr
}

func (r *RecordingSink) Stop() error {
	r.Stops++
	return r.StopErr
}

func (r *RecordingSink) Write(p audio.Packet, c *pcm.Converter) error {
	if r.WriteErr != nil && len(r.Packets) >= r.FailAfter {
		return r.WriteErr
	}

	switch p := p.(type) {
	case audio.Samples:
		r.Packets = append(r.Packets, append(audio.Samples(nil), p...))
	case audio.OggData:
		r.Packets = append(r.Packets, append(audio.OggData(nil), p...))
	}

	return audio.WriteBytes(r, r.Format, p, c)
}

func (r *RecordingSink) WriteBytes(data []byte) error {
	r.Bytes = append(r.Bytes, data...)
	return nil
}

// Samples concatenates every Samples packet written.
func (r *RecordingSink) Samples() []float32 {
	var out []float32
	for _, p := range r.Packets {
		if s, ok := audio.AsSamples(p); ok {
			out = append(out, s...)
		}
	}
	return out
}
