// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"errors"
	"fmt"
	"os"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/pcm"
)

// wavFormatPCM is the WAVE format tag for integer PCM.
const wavFormatPCM = 1

func init() {
	register(rankWAV, "wav", openWAV)
}

// WAVSink writes integer PCM to a WAV file. The header is finalized on Stop.
type WAVSink struct {
	path     string
	format   pcm.Format
	bitDepth int

	f   *os.File
	enc *wav.Encoder
	buf *goaudio.IntBuffer
}

var _ audio.Sink = (*WAVSink)(nil)

// NewWAVSink returns a sink writing to the file at path. F32 is rejected
// because the file is always integer PCM; S24 and S24_3 both produce
// 24-bit files.
func NewWAVSink(path string, format pcm.Format) (*WAVSink, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: wav needs an output path", audio.ErrDeviceRequired)
	}

	switch format {
	case pcm.S16, pcm.S24, pcm.S24Packed3, pcm.S32:
	default:
		return nil, fmt.Errorf("%w: wav cannot store %s", audio.ErrUnsupportedFormat, format)
	}

	return &WAVSink{
		path:     path,
		format:   format,
		bitDepth: format.BitDepth(),
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: audio.Channels,
				SampleRate:  audio.SampleRate,
			},
			SourceBitDepth: format.BitDepth(),
		},
	}, nil
}

func openWAV(device string, format pcm.Format) (audio.Sink, error) {
	return NewWAVSink(device, format)
}

func (s *WAVSink) Start() error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	s.f = f
	s.enc = wav.NewEncoder(f, audio.SampleRate, s.bitDepth, audio.Channels, wavFormatPCM)

	log().Debug("wav sink started", "path", s.path, "bits", s.bitDepth)
	return nil
}

// Stop writes the final chunk sizes and closes the file.
func (s *WAVSink) Stop() error {
	if s.enc == nil {
		return nil
	}

	err := errors.Join(s.enc.Close(), s.f.Close())
	s.enc, s.f = nil, nil

	if err != nil {
		return fmt.Errorf("finalize %s: %w", s.path, err)
	}

	log().Debug("wav sink stopped", "path", s.path)
	return nil
}

func (s *WAVSink) Write(p audio.Packet, c *pcm.Converter) error {
	samples, ok := audio.AsSamples(p)
	if !ok {
		if _, isOgg := audio.AsOggData(p); isOgg {
			return fmt.Errorf("%w: wav stores decoded samples only", audio.ErrCompressedPacket)
		}
		panic(fmt.Sprintf("backend: unexpected packet %T", p))
	}
	if s.enc == nil {
		return audio.ErrNotStarted
	}

	data := s.buf.Data[:0]
	switch s.bitDepth {
	case 16:
		for _, v := range c.F32ToS16(samples) {
			data = append(data, int(v))
		}
	case 24:
		for _, v := range c.F32ToS24(samples) {
			data = append(data, int(v))
		}
	default:
		for _, v := range c.F32ToS32(samples) {
			data = append(data, int(v))
		}
	}
	s.buf.Data = data

	if err := s.enc.Write(s.buf); err != nil {
		return fmt.Errorf("wav write: %w", err)
	}
	return nil
}
