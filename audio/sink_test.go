// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"testing"

	"github.com/ik5/audplay/pcm"
)

type bufferSink struct {
	NopLifecycle

	format pcm.Format
	buf    bytes.Buffer
	writes int
	err    error
}

func (s *bufferSink) WriteBytes(data []byte) error {
	if s.err != nil {
		return s.err
	}
	s.writes++
	s.buf.Write(data)
	return nil
}

func (s *bufferSink) Write(p Packet, c *pcm.Converter) error {
	return WriteBytes(s, s.format, p, c)
}

var _ Sink = (*bufferSink)(nil)

func TestWriteBytes_Samples(t *testing.T) {
	t.Parallel()

	samples := Samples{0.5, -0.5, 1, -1}

	for _, format := range []pcm.Format{pcm.F32, pcm.S32, pcm.S24, pcm.S24Packed3, pcm.S16} {
		t.Run(format.String(), func(t *testing.T) {
			t.Parallel()

			s := &bufferSink{format: format}
			if err := s.Write(samples, pcm.NewConverter()); err != nil {
				t.Fatalf("Write() error = %v", err)
			}

			want := pcm.NewConverter().Bytes(format, samples)
			if !bytes.Equal(s.buf.Bytes(), want) {
				t.Errorf("wrote % x, want % x", s.buf.Bytes(), want)
			}
			if s.buf.Len() != len(samples)*format.SampleSize() {
				t.Errorf("wrote %d bytes, want %d", s.buf.Len(), len(samples)*format.SampleSize())
			}
		})
	}
}

func TestWriteBytes_OggDataUnmodified(t *testing.T) {
	t.Parallel()

	page := OggData("OggS\x00\x02 raw page bytes")

	for _, format := range []pcm.Format{pcm.F32, pcm.S16, pcm.S24Packed3} {
		s := &bufferSink{format: format}
		if err := s.Write(page, pcm.NewConverter()); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
		if !bytes.Equal(s.buf.Bytes(), page) {
			t.Errorf("%s: wrote %q, want %q", format, s.buf.Bytes(), page)
		}
	}
}

func TestWriteBytes_PropagatesError(t *testing.T) {
	t.Parallel()

	ioErr := errors.New("device gone")
	s := &bufferSink{format: pcm.S16, err: ioErr}

	if err := s.Write(Samples{0}, pcm.NewConverter()); !errors.Is(err, ioErr) {
		t.Errorf("Write() error = %v, want %v", err, ioErr)
	}
}

func TestWriteBytes_NilPacketPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WriteBytes(nil packet) did not panic")
		}
	}()

	_ = WriteBytes(&bufferSink{}, pcm.S16, nil, pcm.NewConverter())
}

func TestNopLifecycle(t *testing.T) {
	t.Parallel()

	s := &bufferSink{}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop() before Start() error = %v", err)
	}
	if err := s.Start(); err != nil {
		t.Errorf("Start() error = %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
}
