// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/pcm"
)

const pipeBufferSize = 64 * 1024

func init() {
	register(rankPipe, "pipe", openPipe)
}

// PipeSink writes raw sample bytes to a writer, with no header.
type PipeSink struct {
	w      *bufio.Writer
	closer io.Closer
	format pcm.Format
}

var (
	_ audio.Sink     = (*PipeSink)(nil)
	_ audio.ByteSink = (*PipeSink)(nil)
)

// NewPipeSink returns a sink writing format to w. Stop flushes w but does
// not close it.
func NewPipeSink(w io.Writer, format pcm.Format) *PipeSink {
	return &PipeSink{
		w:      bufio.NewWriterSize(w, pipeBufferSize),
		format: format,
	}
}

// openPipe writes to stdout when device is "" or "-", otherwise it creates
// (or truncates) the file named by device.
func openPipe(device string, format pcm.Format) (audio.Sink, error) {
	if device == "" || device == "-" {
		return NewPipeSink(os.Stdout, format), nil
	}

	f, err := os.Create(device)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s := NewPipeSink(f, format)
	s.closer = f
	return s, nil
}

func (s *PipeSink) Start() error {
	log().Debug("pipe sink started", "format", s.format)
	return nil
}

func (s *PipeSink) Stop() error {
	err := s.w.Flush()
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
		s.closer = nil
	}
	if err != nil {
		return fmt.Errorf("stop pipe sink: %w", err)
	}

	log().Debug("pipe sink stopped")
	return nil
}

func (s *PipeSink) Write(p audio.Packet, c *pcm.Converter) error {
	return audio.WriteBytes(s, s.format, p, c)
}

func (s *PipeSink) WriteBytes(data []byte) error {
	if _, err := s.w.Write(data); err != nil {
		return fmt.Errorf("pipe write: %w", err)
	}
	return nil
}
